// Package forms holds the shared pieces of the simulated form flows:
// a field-error type and the email check both checkout and contact use.
package forms

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidationError carries per-field messages for a rejected form. It is an
// expected condition, not a fault; handlers map it to 422.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}
