// Package state holds the terminal client's view state as an explicit finite
// state container. State values are never mutated in place: Reduce returns a
// new State for every Action.
package state

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// Phase is the coarse mode of the client.
type Phase int

const (
	Idle Phase = iota
	Loading
	Editing
	Saving
	Error
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Editing:
		return "editing"
	case Saving:
		return "saving"
	case Error:
		return "error"
	}
	return "unknown"
}

// Op is the mutation currently in flight. At most one runs at a time.
type Op int

const (
	OpNone Op = iota
	OpSave
	OpCreate
	OpDelete
)

// NoticeKind classifies a transient notification.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota + 1
	NoticeInfo
	NoticeError
)

// Notice is a transient status line message. Seq identifies it so that a
// delayed dismissal only clears the notice it was scheduled for.
type Notice struct {
	Kind NoticeKind
	Text string
	Seq  int
}

// Empty reports whether there is no notice to show.
func (n Notice) Empty() bool { return n.Text == "" }

// Notice texts.
const (
	MsgListFailed   = "Failed to load scripts"
	MsgDetailFailed = "Failed to load script details"
	MsgSaved        = "Saved"
	MsgSaveFailed   = "Failed to save"
	MsgCreated      = "Script created"
	MsgCreateFailed = "Failed to create script"
	MsgDeleted      = "Script deleted"
	MsgDeleteFailed = "Failed to delete script"
)

// NewScriptFields is what the create action sends.
func NewScriptFields() domain.ScriptFields {
	return domain.ScriptFields{
		Title:       "Untitled Script",
		Tags:        []string{},
		Description: "",
		Content:     "// Start your script here",
	}
}

// Item is one list entry. Content is only known for scripts this client
// created or saved; plain list entries carry the summary alone.
type Item struct {
	domain.ScriptSummary
	Content string
}

// State is the whole client view state.
type State struct {
	Phase Phase
	Items []Item

	// SelectedID is uuid.Nil when nothing is selected.
	SelectedID uuid.UUID
	// Buffer is the editable copy of the selected script, nil until its
	// detail has loaded.
	Buffer *domain.Script

	Busy    bool
	Pending Op
	Notice  Notice
	Query   string

	noticeSeq int
}

// New returns the initial state.
func New() State {
	return State{Phase: Idle, Items: []Item{}}
}

// HasSelection reports whether a script is selected.
func (s State) HasSelection() bool { return s.SelectedID != uuid.Nil }

// NeedsDetail reports whether the selected script's full record still has
// to be fetched into the buffer.
func (s State) NeedsDetail() bool {
	return s.HasSelection() && (s.Buffer == nil || s.Buffer.ID != s.SelectedID)
}

// CanAddTag reports whether the buffer has room for another tag.
func (s State) CanAddTag() bool {
	return s.Buffer != nil && len(s.Buffer.Tags) < domain.MaxTags
}

// Index returns the position of id in Items, or -1.
func (s State) Index(id uuid.UUID) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Visible returns the items matching Query. Matching is a case-insensitive
// substring test over title, description, held content and tags. A blank
// query matches everything.
func (s State) Visible() []Item {
	q := strings.ToLower(strings.TrimSpace(s.Query))
	if q == "" {
		return s.Items
	}

	out := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.matches(q) {
			out = append(out, it)
		}
	}
	return out
}

func (it Item) matches(q string) bool {
	if strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.Description), q) ||
		strings.Contains(strings.ToLower(it.Content), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
