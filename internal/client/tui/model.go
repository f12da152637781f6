// Package tui is the terminal client: a bubbletea program showing the script
// list on the left and an editor for the selected script on the right.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/client/state"
	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// scriptAPI is the part of the API client the UI needs. Server-side search
// is deliberately absent: the list is filtered locally.
type scriptAPI interface {
	List(ctx context.Context) ([]domain.ScriptSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Script, error)
	Create(ctx context.Context, f domain.ScriptFields) (*domain.Script, error)
	Update(ctx context.Context, id uuid.UUID, f domain.ScriptFields) (*domain.Script, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const defaultNoticeTTL = 2 * time.Second

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusTitle
	focusTag
	focusDescription
	focusContent
)

// Model is the bubbletea model of the client.
type Model struct {
	api       scriptAPI
	log       *slog.Logger
	noticeTTL time.Duration

	st state.State

	focus    focusArea
	tagFocus int

	search      textinput.Model
	title       textinput.Model
	tags        []textinput.Model
	description textarea.Model
	content     textarea.Model
	spinner     spinner.Model

	// synced is the buffer the widgets currently mirror.
	synced *domain.Script

	width, height int
}

// Option customises a Model.
type Option func(*Model)

// WithNoticeTTL sets how long a notice stays on the status line.
func WithNoticeTTL(d time.Duration) Option {
	return func(m *Model) { m.noticeTTL = d }
}

// New creates the client model.
func New(api scriptAPI, logger *slog.Logger, opts ...Option) Model {
	search := newInput("filter scripts")
	search.Prompt = "/ "

	title := newInput("title")
	title.Prompt = ""

	desc := newArea("short description (150 characters max)")
	desc.CharLimit = domain.MaxDescriptionLength
	desc.SetHeight(3)

	content := newArea("// script body")
	content.CharLimit = 0
	content.MaxHeight = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := Model{
		api:         api,
		log:         logger.With("component", "tui"),
		noticeTTL:   defaultNoticeTTL,
		st:          state.Reduce(state.New(), state.ListRequested{}),
		search:      search,
		title:       title,
		description: desc,
		content:     content,
		spinner:     sp,
		width:       100,
		height:      30,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.resize()
	return m
}

// State returns the current view state.
func (m Model) State() state.State { return m.st }

// Init starts the initial list fetch. The model starts in the Loading phase.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchList(), m.spinner.Tick)
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func newArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Cursor.SetMode(cursor.CursorStatic)
	return ta
}

// syncWidgets loads the buffer into the editor widgets when it was replaced
// by something other than typing (detail load, save, create, delete).
func (m *Model) syncWidgets() {
	if m.st.Buffer == m.synced {
		return
	}
	m.synced = m.st.Buffer

	b := m.st.Buffer
	if b == nil {
		m.title.SetValue("")
		m.tags = nil
		m.description.SetValue("")
		m.content.SetValue("")
		if m.focus != focusSearch {
			m.setFocus(focusList, 0)
		}
		return
	}

	m.title.SetValue(b.Title)
	m.description.SetValue(b.Description)
	m.content.SetValue(b.Content)
	m.tags = make([]textinput.Model, len(b.Tags))
	for i, tag := range b.Tags {
		m.tags[i] = newTagInput(tag)
	}
	if m.focus == focusTag && m.tagFocus >= len(m.tags) {
		m.setFocus(focusTitle, 0)
	}
	m.resize()
}

func newTagInput(value string) textinput.Model {
	ti := newInput("tag")
	ti.Prompt = "#"
	ti.SetValue(value)
	return ti
}

// setFocus moves keyboard focus. Only one widget is focused at a time.
func (m *Model) setFocus(f focusArea, tag int) {
	m.search.Blur()
	m.title.Blur()
	for i := range m.tags {
		m.tags[i].Blur()
	}
	m.description.Blur()
	m.content.Blur()

	m.focus = f
	m.tagFocus = tag

	switch f {
	case focusSearch:
		m.search.Focus()
	case focusTitle:
		m.title.Focus()
	case focusTag:
		if tag >= 0 && tag < len(m.tags) {
			m.tags[tag].Focus()
		}
	case focusDescription:
		m.description.Focus()
	case focusContent:
		m.content.Focus()
	}
}

// nextFocus cycles list, title, each tag, description, content.
func (m *Model) nextFocus() {
	if m.st.Buffer == nil {
		m.setFocus(focusList, 0)
		return
	}

	switch m.focus {
	case focusList, focusSearch:
		m.setFocus(focusTitle, 0)
	case focusTitle:
		if len(m.tags) > 0 {
			m.setFocus(focusTag, 0)
		} else {
			m.setFocus(focusDescription, 0)
		}
	case focusTag:
		if m.tagFocus+1 < len(m.tags) {
			m.setFocus(focusTag, m.tagFocus+1)
		} else {
			m.setFocus(focusDescription, 0)
		}
	case focusDescription:
		m.setFocus(focusContent, 0)
	case focusContent:
		m.setFocus(focusList, 0)
	}
}

func (m *Model) resize() {
	listW := m.listWidth()
	editW := m.width - listW - 6
	if editW < 20 {
		editW = 20
	}

	m.search.Width = listW - 4
	m.title.Width = editW - 4
	for i := range m.tags {
		m.tags[i].Width = 16
	}
	m.description.SetWidth(editW - 2)

	contentH := m.height - 16
	if contentH < 3 {
		contentH = 3
	}
	m.content.SetWidth(editW - 2)
	m.content.SetHeight(contentH)
}

func (m Model) listWidth() int {
	w := m.width / 3
	if w < 24 {
		w = 24
	}
	return w
}
