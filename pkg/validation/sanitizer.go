package validation

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips HTML from free-text input before it reaches storage.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with a strict no-markup policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean removes any HTML markup and trims surrounding whitespace.
func (s *Sanitizer) Clean(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}

// CleanAll sanitizes every element of a string slice in place and
// returns the slice for chaining.
func (s *Sanitizer) CleanAll(inputs []string) []string {
	for i, in := range inputs {
		inputs[i] = s.Clean(in)
	}
	return inputs
}
