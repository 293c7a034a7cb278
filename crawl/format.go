package crawl

import "unicode/utf8"

// TruncateTitle returns at most n runes of title, never splitting a rune.
func TruncateTitle(title string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(title) <= n {
		return title
	}
	return string([]rune(title)[:n])
}
