package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxTags is the maximum number of tags a script may carry.
	MaxTags = 3
	// MaxDescriptionLength is measured in characters (runes), not bytes.
	MaxDescriptionLength = 150
)

// Script is a titled, tagged, described text document. It is the only
// entity in the catalog.
type Script struct {
	ID          uuid.UUID
	Title       string
	Tags        []string
	Description string
	Content     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ScriptSummary is the list projection of a Script: content is omitted.
type ScriptSummary struct {
	ID          uuid.UUID
	Title       string
	Tags        []string
	Description string
}

// ScriptFields is the mutable part of a Script, accepted by create and
// update. Update is a full replace, so every field is taken as given.
type ScriptFields struct {
	Title       string
	Tags        []string
	Description string
	Content     string
}

// Fields returns the mutable part of s.
func (s Script) Fields() ScriptFields {
	return ScriptFields{
		Title:       s.Title,
		Tags:        s.Tags,
		Description: s.Description,
		Content:     s.Content,
	}
}

// Summary projects s onto the list shape.
func (s Script) Summary() ScriptSummary {
	return ScriptSummary{
		ID:          s.ID,
		Title:       s.Title,
		Tags:        s.Tags,
		Description: s.Description,
	}
}
