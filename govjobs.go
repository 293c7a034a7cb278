// Package govjobs scrapes a government recruitment-news site into a
// structured job feed. It fetches the index page, picks out the links that
// look like job postings, and pulls dates, fees, age limits, vacancy counts
// and eligibility snippets out of each detail page with text patterns.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, rod/, regex/).
package govjobs
