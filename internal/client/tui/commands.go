package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/client/state"
	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

// Messages produced by API calls. Each maps onto one state action.
type (
	listMsg struct {
		summaries []domain.ScriptSummary
		err       error
	}
	detailMsg struct {
		id     uuid.UUID
		script *domain.Script
		err    error
	}
	savedMsg struct {
		script *domain.Script
		err    error
	}
	createdMsg struct {
		script *domain.Script
		err    error
	}
	deletedMsg struct {
		id  uuid.UUID
		err error
	}
	noticeExpiredMsg struct{ seq int }
)

// action translates an API result into the state action it settles.
func (msg listMsg) action() state.Action {
	if msg.err != nil {
		return state.ListFailed{Err: msg.err}
	}
	return state.ListLoaded{Summaries: msg.summaries}
}

func (msg detailMsg) action() state.Action {
	if msg.err != nil {
		return state.DetailFailed{ID: msg.id, Err: msg.err}
	}
	return state.DetailLoaded{Script: *msg.script}
}

func (msg savedMsg) action() state.Action {
	if msg.err != nil {
		return state.SaveFailed{Err: msg.err}
	}
	return state.Saved{Script: *msg.script}
}

func (msg createdMsg) action() state.Action {
	if msg.err != nil {
		return state.CreateFailed{Err: msg.err}
	}
	return state.Created{Script: *msg.script}
}

func (msg deletedMsg) action() state.Action {
	if msg.err != nil {
		return state.DeleteFailed{Err: msg.err}
	}
	return state.Deleted{ID: msg.id}
}

func (m Model) fetchList() tea.Cmd {
	api, log := m.api, m.log
	return func() tea.Msg {
		sums, err := api.List(context.Background())
		if err != nil {
			log.Error("list scripts", slog.String("error", err.Error()))
		}
		return listMsg{summaries: sums, err: err}
	}
}

func (m Model) fetchDetail(id uuid.UUID) tea.Cmd {
	api, log := m.api, m.log
	return func() tea.Msg {
		sc, err := api.Get(context.Background(), id)
		if err != nil {
			log.Error("get script", slog.String("script_id", id.String()), slog.String("error", err.Error()))
		}
		return detailMsg{id: id, script: sc, err: err}
	}
}

func (m Model) saveScript(id uuid.UUID, f domain.ScriptFields) tea.Cmd {
	api, log := m.api, m.log
	return func() tea.Msg {
		sc, err := api.Update(context.Background(), id, f)
		if err != nil {
			log.Error("save script", slog.String("script_id", id.String()), slog.String("error", err.Error()))
		}
		return savedMsg{script: sc, err: err}
	}
}

func (m Model) createScript() tea.Cmd {
	api, log := m.api, m.log
	return func() tea.Msg {
		sc, err := api.Create(context.Background(), state.NewScriptFields())
		if err != nil {
			log.Error("create script", slog.String("error", err.Error()))
		}
		return createdMsg{script: sc, err: err}
	}
}

func (m Model) deleteScript(id uuid.UUID) tea.Cmd {
	api, log := m.api, m.log
	return func() tea.Msg {
		err := api.Delete(context.Background(), id)
		if err != nil {
			log.Error("delete script", slog.String("script_id", id.String()), slog.String("error", err.Error()))
		}
		return deletedMsg{id: id, err: err}
	}
}

func (m Model) expireNotice(seq int) tea.Cmd {
	return tea.Tick(m.noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
