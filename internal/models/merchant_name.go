package models

import (
	"regexp"
	"strings"
)

var (
	corporateSuffixPattern = regexp.MustCompile(`\b(inc|llc|ltd|corp|corporation|company|co)\b\.?`)
	whitespacePattern      = regexp.MustCompile(`\s+`)
)

// NormalizeMerchantName reduces a raw merchant string to the form used as a
// mapping key. Applying it twice yields the same result as applying it once.
func NormalizeMerchantName(name string) string {
	normalized := strings.TrimSpace(strings.ToLower(name))
	normalized = corporateSuffixPattern.ReplaceAllString(normalized, "")
	normalized = whitespacePattern.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}
