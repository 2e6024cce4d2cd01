// Package sanitize strips markup from client-supplied free text before it is
// persisted. Profile names and publication titles come straight from request
// bodies and are later rendered by dashboard clients.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from s, leaving plain text.
func Text(s string) string {
	return policy.Sanitize(s)
}
