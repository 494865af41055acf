// Package text provides pure normalization helpers for free-text form answers.
//
// Every function here is total: malformed input resolves to a zero value rather
// than an error, so callers can defer missing-data handling to the directory
// writer instead of rejecting whole submissions.
package text

import (
	"strings"
	"unicode"
)

// labelPrefix namespaces derived contact label keys.
const labelPrefix = "custom."

// leadershipMarker identifies leadership roles inside comma-separated titles.
const leadershipMarker = "head"

// NormalizePhone strips separator characters (hyphens, parentheses, spaces)
// and reformats a ten-digit number as ddd-ddd-dddd. Anything that does not
// reduce to exactly ten digits returns the empty string; a missing phone is
// data to flag, not an error.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case '-', '(', ')', ' ':
			continue
		default:
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) != 10 {
		return ""
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return digits[0:3] + "-" + digits[3:6] + "-" + digits[6:10]
}

// NormalizeName title-cases each whitespace-delimited run and drops any rune
// outside the 0-255 code point range, which removes emoji and non-Latin glyphs
// without substitution. Internal whitespace is preserved as typed; only
// SplitName collapses it.
func NormalizeName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	startOfWord := true
	for _, r := range raw {
		if r > 0xFF {
			continue
		}
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return strings.TrimSpace(b.String())
}

// SplitName splits a full name into first and last parts. Repeated internal
// whitespace is collapsed before splitting; a single-token name yields an
// empty last part, and everything after the first token becomes the last part.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// NormalizeLabelKey converts a human label into a namespaced camel-case key,
// e.g. "Chapter Head" becomes "custom.chapterHead". The second return is
// false when the label is empty.
func NormalizeLabelKey(label string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(label))
	if trimmed == "" {
		return "", false
	}
	var b strings.Builder
	b.Grow(len(trimmed))
	upperNext := false
	for _, r := range trimmed {
		switch {
		case r == ' ':
			upperNext = true
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_':
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		}
	}
	return labelPrefix + b.String(), true
}

// IsLeadershipTitle reports whether any comma-separated segment of the title
// contains the leadership marker, case-insensitively.
func IsLeadershipTitle(title string) bool {
	for _, seg := range strings.Split(title, ",") {
		seg = strings.ToLower(strings.TrimSpace(seg))
		if seg != "" && strings.Contains(seg, leadershipMarker) {
			return true
		}
	}
	return false
}
