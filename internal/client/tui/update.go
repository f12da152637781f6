package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/scriptbook-backend/internal/client/state"
)

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listMsg:
		return m, m.apply(msg.action(), false)
	case detailMsg:
		return m, m.apply(msg.action(), false)
	case savedMsg:
		return m, m.apply(msg.action(), false)
	case createdMsg:
		return m, m.apply(msg.action(), false)
	case deletedMsg:
		return m, m.apply(msg.action(), false)
	case noticeExpiredMsg:
		return m, m.apply(state.NoticeDismissed{Seq: msg.seq}, false)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// apply runs a through the reducer and returns the commands the transition
// implies: the API call for a newly accepted mutation, a detail fetch for a
// new selection, and the expiry of a new notice. typed marks edits that
// came from the focused widget, which already shows the new value.
func (m *Model) apply(a state.Action, typed bool) tea.Cmd {
	prev := m.st
	m.st = state.Reduce(prev, a)
	next := m.st

	if typed && prev.Buffer == m.synced {
		m.synced = next.Buffer
	}
	m.syncWidgets()

	var cmds []tea.Cmd

	if next.Pending != prev.Pending {
		switch next.Pending {
		case state.OpSave:
			cmds = append(cmds, m.saveScript(next.Buffer.ID, next.Buffer.Fields()))
		case state.OpCreate:
			cmds = append(cmds, m.createScript())
		case state.OpDelete:
			cmds = append(cmds, m.deleteScript(next.Buffer.ID))
		}
	}

	if next.NeedsDetail() && (next.SelectedID != prev.SelectedID || !prev.NeedsDetail()) {
		cmds = append(cmds, m.fetchDetail(next.SelectedID))
	}

	if next.Notice.Seq != prev.Notice.Seq && !next.Notice.Empty() {
		cmds = append(cmds, m.expireNotice(next.Notice.Seq))
	}

	return tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyCtrlS:
		return m, m.apply(state.SaveRequested{}, false)

	case tea.KeyCtrlN:
		return m, m.apply(state.CreateRequested{}, false)

	case tea.KeyCtrlD:
		return m, m.apply(state.DeleteRequested{}, false)

	case tea.KeyCtrlT:
		before := len(m.tags)
		cmd := m.apply(state.TagAdded{}, false)
		if len(m.tags) > before {
			m.setFocus(focusTag, len(m.tags)-1)
		}
		return m, cmd

	case tea.KeyTab:
		m.nextFocus()
		return m, nil

	case tea.KeyEsc:
		m.setFocus(focusList, 0)
		return m, nil

	case tea.KeyUp, tea.KeyDown:
		if m.focus == focusList || m.focus == focusSearch {
			delta := 1
			if msg.Type == tea.KeyUp {
				delta = -1
			}
			return m, m.moveSelection(delta)
		}

	case tea.KeyEnter:
		if m.focus == focusList || m.focus == focusSearch {
			m.nextFocus()
			return m, nil
		}
	}

	if m.focus == focusList {
		if msg.String() == "/" {
			m.setFocus(focusSearch, 0)
		}
		return m, nil
	}

	return m, m.updateFocused(msg)
}

// moveSelection selects the visible entry delta rows away from the current
// selection.
func (m *Model) moveSelection(delta int) tea.Cmd {
	visible := m.st.Visible()
	if len(visible) == 0 {
		return nil
	}

	target := 0
	for i := range visible {
		if visible[i].ID == m.st.SelectedID {
			target = i + delta
			break
		}
	}
	if target < 0 {
		target = 0
	}
	if target >= len(visible) {
		target = len(visible) - 1
	}

	return m.apply(state.Selected{ID: visible[target].ID}, false)
}

// updateFocused forwards a key to the focused widget and reports the new
// value to the state container when it changed.
func (m *Model) updateFocused(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	b := m.st.Buffer

	switch m.focus {
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
		if v := m.search.Value(); v != m.st.Query {
			return tea.Batch(cmd, m.apply(state.SearchChanged{Query: v}, true))
		}

	case focusTitle:
		if b == nil {
			return nil
		}
		m.title, cmd = m.title.Update(msg)
		if v := m.title.Value(); v != b.Title {
			return tea.Batch(cmd, m.apply(state.TitleEdited{Value: v}, true))
		}

	case focusTag:
		i := m.tagFocus
		if b == nil || i < 0 || i >= len(m.tags) || i >= len(b.Tags) {
			return nil
		}
		m.tags[i], cmd = m.tags[i].Update(msg)
		if v := m.tags[i].Value(); v != b.Tags[i] {
			return tea.Batch(cmd, m.apply(state.TagEdited{Index: i, Value: v}, true))
		}

	case focusDescription:
		if b == nil {
			return nil
		}
		m.description, cmd = m.description.Update(msg)
		if v := m.description.Value(); v != b.Description {
			return tea.Batch(cmd, m.apply(state.DescriptionEdited{Value: v}, true))
		}

	case focusContent:
		if b == nil {
			return nil
		}
		m.content, cmd = m.content.Update(msg)
		if v := m.content.Value(); v != b.Content {
			return tea.Batch(cmd, m.apply(state.ContentEdited{Value: v}, true))
		}
	}

	return cmd
}
