// Package normalize cleans user-supplied identity fields before they reach
// the stores.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are matched
// case-insensitively everywhere, so normalization happens once on the way in.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
