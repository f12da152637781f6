package domain

import (
	"errors"
	"strings"
	"testing"
)

func validFields() ScriptFields {
	return ScriptFields{
		Title:       "Greeting",
		Tags:        []string{"sales", "intro"},
		Description: "Opening lines",
		Content:     "Hello, thanks for calling.",
	}
}

func TestValidateScript(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(f *ScriptFields)
		want   []FieldError
	}{
		{
			name:   "valid",
			mutate: func(f *ScriptFields) {},
		},
		{
			name:   "nil tags allowed",
			mutate: func(f *ScriptFields) { f.Tags = nil },
		},
		{
			name:   "exactly 3 tags",
			mutate: func(f *ScriptFields) { f.Tags = []string{"a", "b", "c"} },
		},
		{
			name:   "duplicate tags allowed",
			mutate: func(f *ScriptFields) { f.Tags = []string{"a", "a"} },
		},
		{
			name:   "4 tags",
			mutate: func(f *ScriptFields) { f.Tags = []string{"a", "b", "c", "d"} },
			want:   []FieldError{{Field: "tags", Message: "max 3 tags allowed"}},
		},
		{
			name:   "empty title",
			mutate: func(f *ScriptFields) { f.Title = "" },
			want:   []FieldError{{Field: "title", Message: "required"}},
		},
		{
			name:   "whitespace title",
			mutate: func(f *ScriptFields) { f.Title = "  \t " },
			want:   []FieldError{{Field: "title", Message: "required"}},
		},
		{
			name:   "empty content",
			mutate: func(f *ScriptFields) { f.Content = "" },
			want:   []FieldError{{Field: "content", Message: "required"}},
		},
		{
			name:   "description 150 chars",
			mutate: func(f *ScriptFields) { f.Description = strings.Repeat("x", 150) },
		},
		{
			name:   "description 150 multibyte chars",
			mutate: func(f *ScriptFields) { f.Description = strings.Repeat("ж", 150) },
		},
		{
			name:   "description 151 chars",
			mutate: func(f *ScriptFields) { f.Description = strings.Repeat("x", 151) },
			want:   []FieldError{{Field: "description", Message: "cannot exceed 150 characters"}},
		},
		{
			name:   "NUL in title",
			mutate: func(f *ScriptFields) { f.Title = "Gree\x00ting" },
			want:   []FieldError{{Field: "title", Message: "must not contain NUL characters"}},
		},
		{
			name:   "NUL in tag",
			mutate: func(f *ScriptFields) { f.Tags = []string{"ok", "b\x00d"} },
			want:   []FieldError{{Field: "tags", Message: "must not contain NUL characters"}},
		},
		{
			name: "NUL in description and content",
			mutate: func(f *ScriptFields) {
				f.Description = "\x00"
				f.Content = "body\x00"
			},
			want: []FieldError{
				{Field: "description", Message: "must not contain NUL characters"},
				{Field: "content", Message: "must not contain NUL characters"},
			},
		},
		{
			name:   "NUL-only content is not blank",
			mutate: func(f *ScriptFields) { f.Content = "\x00" },
			want:   []FieldError{{Field: "content", Message: "must not contain NUL characters"}},
		},
		{
			name: "everything wrong",
			mutate: func(f *ScriptFields) {
				f.Title = ""
				f.Content = ""
				f.Tags = []string{"a", "b", "c", "d"}
				f.Description = strings.Repeat("x", 200)
			},
			want: []FieldError{
				{Field: "title", Message: "required"},
				{Field: "content", Message: "required"},
				{Field: "tags", Message: "max 3 tags allowed"},
				{Field: "description", Message: "cannot exceed 150 characters"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt // capture per-iteration copy (go < 1.22 loop semantics)
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := validFields()
			tt.mutate(&f)

			res := ValidateScript(f)
			if len(res.Violations) != len(tt.want) {
				t.Fatalf("violations = %v, want %v", res.Violations, tt.want)
			}
			for i := range tt.want {
				if res.Violations[i] != tt.want[i] {
					t.Errorf("violation[%d] = %v, want %v", i, res.Violations[i], tt.want[i])
				}
			}
			if res.OK() != (len(tt.want) == 0) {
				t.Errorf("OK() = %v", res.OK())
			}
		})
	}
}

func TestValidationResult_Err(t *testing.T) {
	t.Parallel()

	if err := ValidateScript(validFields()).Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	err := ValidateScript(ScriptFields{}).Err()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %v", err)
	}
}

func TestTruncateDescription(t *testing.T) {
	t.Parallel()

	short := "short body"
	if got := TruncateDescription(short); got != short {
		t.Errorf("TruncateDescription(%q) = %q", short, got)
	}

	long := strings.Repeat("é", 200)
	got := TruncateDescription(long)
	if got != strings.Repeat("é", 150) {
		t.Errorf("expected 150 runes, got %d bytes", len(got))
	}
}

func TestNormalizeFields_NilTags(t *testing.T) {
	t.Parallel()

	f := NormalizeFields(ScriptFields{Title: "t", Content: "c"})
	if f.Tags == nil || len(f.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", f.Tags)
	}
}

func TestScript_Projections(t *testing.T) {
	t.Parallel()

	s := Script{Title: "T", Tags: []string{"x"}, Description: "D", Content: "C"}

	sum := s.Summary()
	if sum.Title != "T" || sum.Description != "D" || len(sum.Tags) != 1 {
		t.Errorf("unexpected summary %+v", sum)
	}
	f := s.Fields()
	if f.Content != "C" || f.Title != "T" {
		t.Errorf("unexpected fields %+v", f)
	}
}
