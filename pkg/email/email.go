// Package email provides address normalization and display-name derivation.
package email

import (
	"strings"
	"unicode"
)

// Normalize trims surrounding whitespace and lowercases the address so it can
// be compared and stored consistently. It normalizes only; format validation
// is left to upper layers.
func Normalize(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// SplitList splits a comma-separated list of addresses, normalizing each and
// dropping empties. An empty input yields nil, not a one-element slice.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if addr := Normalize(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// DeriveName builds a first/last display name from the local part of an
// address. Guardian contacts arrive as bare addresses, so this is the only
// name source available for them.
func DeriveName(addr string) (first, last string) {
	localPart := addr
	if at := strings.IndexByte(addr, '@'); at > 0 {
		localPart = addr[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 {
		return "Guardian", "Contact"
	}

	first = capitalize(parts[0])
	last = "Contact"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}
	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
