// Package sanitize strips markup from free-text form input before it leaves the service.
//
// Values are sanitized after validation, never before, so validation messages
// describe what the visitor actually typed.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy allows no elements and no attributes; script and style bodies are dropped.
var policy = bluemonday.StrictPolicy()

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Sanitize removes all HTML tags, attributes and script content from raw, then trims it.
// The result never contains '<' or '>', and Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(raw string) string {
	// every pass that changes the value decodes an entity layer or drops markup,
	// so the input length bounds the number of passes to the fixpoint
	current := raw
	for range len(raw) + 1 {
		next := pass(current)
		if next == current {
			return next
		}
		current = next
	}
	return current
}

func pass(s string) string {
	if s == "" {
		return ""
	}
	// bluemonday re-escapes text; decode it so "&" stays "&" in the delivered email
	stripped := html.UnescapeString(policy.Sanitize(s))
	return strings.TrimSpace(angleBrackets.Replace(stripped))
}

// All returns a new record with every value sanitized. The input is not modified.
func All(record map[string]string) map[string]string {
	out := make(map[string]string, len(record))
	for k, v := range record {
		out[k] = Sanitize(v)
	}
	return out
}
