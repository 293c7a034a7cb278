// Package fs writes run results to the local filesystem.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/govjobs"
)

// Stdout is the output path that writes to standard output instead of a file.
const Stdout = "-"

// Ensure ResultWriter implements govjobs.ResultWriter at compile time.
var _ govjobs.ResultWriter = (*ResultWriter)(nil)

// ResultWriter writes a RunResult as indented JSON to a fixed path,
// replacing the previous file.
type ResultWriter struct {
	path   string
	stdout io.Writer
}

// NewResultWriter creates a ResultWriter for path. When path is Stdout the
// document goes to stdout.
func NewResultWriter(path string, stdout io.Writer) *ResultWriter {
	return &ResultWriter{path: path, stdout: stdout}
}

// WriteResult validates result and writes it. Files are written to a
// temporary sibling and renamed into place, so readers never observe a
// partial document.
func (w *ResultWriter) WriteResult(ctx context.Context, result *govjobs.RunResult) error {
	if err := result.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out := *result
	if out.Jobs == nil {
		out.Jobs = []*govjobs.Job{}
	}

	if w.path == Stdout {
		return Encode(w.stdout, &out)
	}

	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, &out); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), w.path); err != nil {
		return fmt.Errorf("replacing %s: %w", w.path, err)
	}
	return nil
}

// Encode writes v as JSON with two-space indentation. HTML characters are
// left unescaped and non-ASCII text is written as-is.
func Encode(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
