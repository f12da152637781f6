package state

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// Reduce applies a to s and returns the resulting state. It has no side
// effects; the caller performs the network call an accepted request implies
// (see Pending and NeedsDetail).
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ListRequested:
		s.Phase = Loading
		return s

	case ListLoaded:
		s.Items = make([]Item, len(a.Summaries))
		for i, sum := range a.Summaries {
			s.Items[i] = Item{ScriptSummary: cloneSummary(sum)}
		}
		if len(s.Items) == 0 {
			s.Phase = Idle
			return s
		}
		return selectID(s, s.Items[0].ID)

	case ListFailed:
		s.Phase = Error
		return s.notify(NoticeError, MsgListFailed)

	case Selected:
		if a.ID == s.SelectedID {
			return s
		}
		return selectID(s, a.ID)

	case DetailLoaded:
		// Applied even when the selection moved on since the request was
		// issued; the last response to arrive wins.
		sc := cloneScript(a.Script)
		s.Buffer = &sc
		s.Phase = s.settledPhase()
		return s

	case DetailFailed:
		s.Phase = Error
		return s.notify(NoticeError, MsgDetailFailed)

	case TitleEdited:
		return s.edit(func(b *domain.Script) { b.Title = a.Value })

	case DescriptionEdited:
		return s.edit(func(b *domain.Script) { b.Description = a.Value })

	case ContentEdited:
		return s.edit(func(b *domain.Script) { b.Content = a.Value })

	case TagEdited:
		if s.Buffer == nil || a.Index < 0 || a.Index >= len(s.Buffer.Tags) {
			return s
		}
		return s.edit(func(b *domain.Script) { b.Tags[a.Index] = a.Value })

	case TagAdded:
		if !s.CanAddTag() {
			return s
		}
		return s.edit(func(b *domain.Script) { b.Tags = append(b.Tags, "") })

	case SaveRequested:
		if s.Busy || s.Buffer == nil {
			return s
		}
		return s.begin(OpSave)

	case Saved:
		s = s.finish()
		sc := cloneScript(a.Script)
		s.Buffer = &sc
		if i := s.Index(sc.ID); i >= 0 {
			s.Items = cloneItems(s.Items)
			s.Items[i] = itemOf(sc)
		}
		s.Phase = s.settledPhase()
		return s.notify(NoticeSuccess, MsgSaved)

	case SaveFailed:
		s = s.finish()
		s.Phase = Error
		return s.notify(NoticeError, MsgSaveFailed)

	case CreateRequested:
		if s.Busy {
			return s
		}
		return s.begin(OpCreate)

	case Created:
		s = s.finish()
		sc := cloneScript(a.Script)
		items := make([]Item, 0, len(s.Items)+1)
		items = append(items, itemOf(sc))
		s.Items = append(items, s.Items...)
		s.SelectedID = sc.ID
		s.Buffer = &sc
		s.Phase = Editing
		return s.notify(NoticeSuccess, MsgCreated)

	case CreateFailed:
		s = s.finish()
		s.Phase = Error
		return s.notify(NoticeError, MsgCreateFailed)

	case DeleteRequested:
		if s.Busy || s.Buffer == nil {
			return s
		}
		return s.begin(OpDelete)

	case Deleted:
		s = s.finish()
		next := neighbour(s.Items, a.ID)
		s.Items = removeItem(s.Items, a.ID)
		s.Buffer = nil
		s.SelectedID = uuid.Nil
		if next != uuid.Nil {
			s = selectID(s, next)
		} else {
			s.Phase = Idle
		}
		return s.notify(NoticeInfo, MsgDeleted)

	case DeleteFailed:
		s = s.finish()
		s.Phase = Error
		return s.notify(NoticeError, MsgDeleteFailed)

	case SearchChanged:
		s.Query = a.Query
		return s

	case NoticeDismissed:
		if s.Notice.Empty() || a.Seq != s.Notice.Seq {
			return s
		}
		s.Notice = Notice{}
		if s.Phase == Error {
			s.Phase = s.settledPhase()
		}
		return s
	}

	return s
}

// settledPhase is the phase to rest in once nothing is in flight.
func (s State) settledPhase() Phase {
	switch {
	case s.Busy:
		return Saving
	case s.Buffer != nil:
		return Editing
	case s.NeedsDetail():
		return Loading
	default:
		return Idle
	}
}

func (s State) notify(kind NoticeKind, text string) State {
	s.noticeSeq++
	s.Notice = Notice{Kind: kind, Text: text, Seq: s.noticeSeq}
	return s
}

func (s State) begin(op Op) State {
	s.Busy = true
	s.Pending = op
	s.Phase = Saving
	return s
}

func (s State) finish() State {
	s.Busy = false
	s.Pending = OpNone
	return s
}

// edit applies fn to a private copy of the buffer. Edits are local until
// the next save.
func (s State) edit(fn func(b *domain.Script)) State {
	if s.Buffer == nil {
		return s
	}
	b := cloneScript(*s.Buffer)
	fn(&b)
	s.Buffer = &b
	if s.Phase == Error {
		s.Phase = s.settledPhase()
	}
	return s
}

// selectID switches the selection. Whatever was in the buffer is dropped
// without a dirty check.
func selectID(s State, id uuid.UUID) State {
	s.SelectedID = id
	s.Buffer = nil
	s.Phase = Loading
	return s
}

// neighbour picks the entry to select after id is removed: the previous
// entry if there is one, otherwise the entry that becomes first.
func neighbour(items []Item, id uuid.UUID) uuid.UUID {
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}

	switch {
	case idx > 0:
		return items[idx-1].ID
	case idx == 0 && len(items) > 1:
		return items[1].ID
	case idx < 0 && len(items) > 0:
		return items[0].ID
	}
	return uuid.Nil
}

func removeItem(items []Item, id uuid.UUID) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func itemOf(sc domain.Script) Item {
	return Item{ScriptSummary: cloneSummary(sc.Summary()), Content: sc.Content}
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func cloneSummary(sum domain.ScriptSummary) domain.ScriptSummary {
	sum.Tags = cloneTags(sum.Tags)
	return sum
}

func cloneScript(sc domain.Script) domain.Script {
	sc.Tags = cloneTags(sc.Tags)
	return sc
}

func cloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
