// Package render provides text helpers for the page views.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize strips control characters and normalizes non-breaking spaces
// so catalog strings cannot break terminal rendering. Invalid UTF-8
// bytes come out as the replacement character.
func Sanitize(s string) string {
	if plainASCII(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return ' '
		case r == '\t':
			return r
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// plainASCII reports whether s is printable ASCII (plus tab), meaning
// Sanitize can return it unchanged.
func plainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 {
			return false
		}
		if b < 0x20 && b != '\t' {
			return false
		}
	}
	return true
}

// TruncateEllipsis shortens s to fit maxWidth terminal cells, ending in
// a single-cell ellipsis when anything was cut. Wide runes count by
// display width.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// Row lays out left and right aligned content on one line of exactly
// width cells, with at least one space between them.
func Row(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// Separator draws a horizontal rule of the given width.
func Separator(width int) string {
	if width < 0 {
		width = 0
	}
	return strings.Repeat("─", width)
}
