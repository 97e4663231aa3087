// Package sql provides utilities for working with SQL types and database operations.
package sql

import (
	"database/sql"
	"strings"
	"unicode/utf8"
)

// NullFloatOr converts sql.NullFloat64 to a float64, substituting fallback
// when the value is not valid. Unrated records report 0 instead of null so
// sort expressions stay total.
func NullFloatOr(value sql.NullFloat64, fallback float64) float64 {
	if value.Valid {
		return value.Float64
	}
	return fallback
}

// NormalizeQueryText lowercases and trims a raw query string for use as a
// query-log key, so "Tacos " and "tacos" aggregate to one entry.
func NormalizeQueryText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ClampText truncates a string to at most maxBytes bytes, cutting on a
// rune boundary so the result stays valid UTF-8.
func ClampText(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
