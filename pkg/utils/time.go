package utils

import "strings"

// NormalizeSlotTime cleans up a slot time string for display and sorting:
// trims whitespace and replaces the '.' separator some app versions wrote
// with ':' (e.g. "9.30" -> "9:30").
func NormalizeSlotTime(t string) string {
	return strings.ReplaceAll(strings.TrimSpace(t), ".", ":")
}
