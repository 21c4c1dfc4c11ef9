// Package normalize holds small input-normalization helpers applied
// before values are stored or used as lookup keys.
package normalize

import "strings"

// Email trims whitespace and lowercases so lookups and the unique index
// are case-insensitive.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace. Case is preserved; the folded
// full_name_ci field handles case-insensitive matching.
func Name(s string) string {
	return strings.TrimSpace(s)
}
