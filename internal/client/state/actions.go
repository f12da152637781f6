package state

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// Action is a state transition request. The set is closed.
type Action interface {
	action()
}

type (
	ListRequested struct{}
	ListLoaded    struct{ Summaries []domain.ScriptSummary }
	ListFailed    struct{ Err error }

	Selected     struct{ ID uuid.UUID }
	DetailLoaded struct{ Script domain.Script }
	DetailFailed struct {
		ID  uuid.UUID
		Err error
	}

	TitleEdited       struct{ Value string }
	DescriptionEdited struct{ Value string }
	ContentEdited     struct{ Value string }
	TagEdited         struct {
		Index int
		Value string
	}
	TagAdded struct{}

	SaveRequested struct{}
	Saved         struct{ Script domain.Script }
	SaveFailed    struct{ Err error }

	CreateRequested struct{}
	Created         struct{ Script domain.Script }
	CreateFailed    struct{ Err error }

	DeleteRequested struct{}
	Deleted         struct{ ID uuid.UUID }
	DeleteFailed    struct{ Err error }

	SearchChanged   struct{ Query string }
	NoticeDismissed struct{ Seq int }
)

func (ListRequested) action()     {}
func (ListLoaded) action()        {}
func (ListFailed) action()        {}
func (Selected) action()          {}
func (DetailLoaded) action()      {}
func (DetailFailed) action()      {}
func (TitleEdited) action()       {}
func (DescriptionEdited) action() {}
func (ContentEdited) action()     {}
func (TagEdited) action()         {}
func (TagAdded) action()          {}
func (SaveRequested) action()     {}
func (Saved) action()             {}
func (SaveFailed) action()        {}
func (CreateRequested) action()   {}
func (Created) action()           {}
func (CreateFailed) action()      {}
func (DeleteRequested) action()   {}
func (Deleted) action()           {}
func (DeleteFailed) action()      {}
func (SearchChanged) action()     {}
func (NoticeDismissed) action()   {}
