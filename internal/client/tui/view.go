package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/scriptbook-backend/internal/client/state"
	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

const helpText = "ctrl+s save • ctrl+n new • ctrl+d delete • ctrl+t add tag • / filter • tab focus • ↑/↓ select • ctrl+c quit"

// View renders the whole screen.
func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewList(), m.viewEditor())
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.viewStatus(),
		helpStyle.Render(helpText),
	)
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Scripts"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	visible := m.st.Visible()
	switch {
	case m.st.Phase == state.Loading && len(m.st.Items) == 0:
		b.WriteString(m.spinner.View() + " loading")
	case len(m.st.Items) == 0:
		b.WriteString(mutedStyle.Render("No scripts yet. ctrl+n creates one."))
	case len(visible) == 0:
		b.WriteString(mutedStyle.Render("No matches."))
	}

	width := m.listWidth() - 4
	for _, it := range visible {
		line := truncate(it.Title, width-2)
		if it.ID == m.st.SelectedID {
			b.WriteString(selectedItemStyle.Render("› " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
		if tags := tagLine(it.Tags); tags != "" {
			b.WriteString("  " + tagStyle.Render(truncate(tags, width-2)) + "\n")
		}
	}

	style := paneStyle
	if m.focus == focusList || m.focus == focusSearch {
		style = focusedPaneStyle
	}
	return style.Width(m.listWidth()).Height(m.height - 4).Render(b.String())
}

func (m Model) viewEditor() string {
	width := m.width - m.listWidth() - 4
	style := paneStyle
	if m.focus >= focusTitle {
		style = focusedPaneStyle
	}
	style = style.Width(width).Height(m.height - 4)

	buf := m.st.Buffer
	if buf == nil {
		if m.st.Phase == state.Loading {
			return style.Render(m.spinner.View() + " loading script")
		}
		return style.Render(mutedStyle.Render("Select a script or press ctrl+n."))
	}

	var b strings.Builder

	b.WriteString(labelStyle.Render("Title") + "\n")
	b.WriteString(m.title.View() + "\n\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("Tags (%d/%d)", len(buf.Tags), domain.MaxTags)) + "\n")
	tags := make([]string, 0, len(m.tags)+1)
	for i := range m.tags {
		tags = append(tags, m.tags[i].View())
	}
	if m.st.CanAddTag() {
		tags = append(tags, mutedStyle.Render("+ tag"))
	}
	b.WriteString(strings.Join(tags, "  ") + "\n\n")

	count := utf8.RuneCountInString(buf.Description)
	b.WriteString(labelStyle.Render(fmt.Sprintf("Description (%d/%d)", count, domain.MaxDescriptionLength)) + "\n")
	b.WriteString(m.description.View() + "\n\n")

	b.WriteString(labelStyle.Render("Content") + "\n")
	b.WriteString(m.content.View())

	return style.Render(b.String())
}

func (m Model) viewStatus() string {
	if m.st.Busy {
		return helpStyle.Render(m.spinner.View() + " " + pendingLabel(m.st.Pending))
	}

	n := m.st.Notice
	if n.Empty() {
		return helpStyle.Render(m.st.Phase.String())
	}

	switch n.Kind {
	case state.NoticeSuccess:
		return helpStyle.Render(successStyle.Render(n.Text))
	case state.NoticeError:
		return helpStyle.Render(errorStyle.Render(n.Text))
	default:
		return helpStyle.Render(infoStyle.Render(n.Text))
	}
}

func pendingLabel(op state.Op) string {
	switch op {
	case state.OpSave:
		return "saving"
	case state.OpCreate:
		return "creating"
	case state.OpDelete:
		return "deleting"
	}
	return ""
}

func tagLine(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, "#"+t)
		}
	}
	return strings.Join(out, " ")
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
