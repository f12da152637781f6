package domain

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const msgNUL = "must not contain NUL characters"

// ValidationResult is the outcome of ValidateScript. A result with no
// violations is OK.
type ValidationResult struct {
	Violations []FieldError
}

// OK reports whether no constraint was violated.
func (r ValidationResult) OK() bool { return len(r.Violations) == 0 }

// Err returns nil for an OK result, otherwise a *ValidationError listing
// every violation.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	return NewValidationErrors(r.Violations)
}

// ValidateScript checks the schema constraints of a script and collects all
// violations. It has no storage dependencies.
func ValidateScript(f ScriptFields) ValidationResult {
	var errs []FieldError

	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(f.Content) == "" {
		errs = append(errs, FieldError{Field: "content", Message: "required"})
	}
	if len(f.Tags) > MaxTags {
		errs = append(errs, FieldError{Field: "tags", Message: "max 3 tags allowed"})
	}
	if utf8.RuneCountInString(f.Description) > MaxDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "cannot exceed 150 characters"})
	}

	// PostgreSQL text cannot store U+0000.
	if hasNUL(f.Title) {
		errs = append(errs, FieldError{Field: "title", Message: msgNUL})
	}
	if slices.ContainsFunc(f.Tags, hasNUL) {
		errs = append(errs, FieldError{Field: "tags", Message: msgNUL})
	}
	if hasNUL(f.Description) {
		errs = append(errs, FieldError{Field: "description", Message: msgNUL})
	}
	if hasNUL(f.Content) {
		errs = append(errs, FieldError{Field: "content", Message: msgNUL})
	}

	return ValidationResult{Violations: errs}
}

func hasNUL(s string) bool { return strings.IndexByte(s, 0) >= 0 }

// TruncateDescription returns the first MaxDescriptionLength characters of s.
func TruncateDescription(s string) string {
	if utf8.RuneCountInString(s) <= MaxDescriptionLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxDescriptionLength])
}

// NormalizeFields returns a copy of f with a non-nil tag slice, the form
// persisted by the store.
func NormalizeFields(f ScriptFields) ScriptFields {
	if f.Tags == nil {
		f.Tags = []string{}
	}
	return f
}
