package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

type scriptService interface {
	ListSummaries(ctx context.Context) ([]domain.ScriptSummary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Script, error)
	Create(ctx context.Context, f domain.ScriptFields) (*domain.Script, error)
	Update(ctx context.Context, id uuid.UUID, f domain.ScriptFields) (*domain.Script, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, pattern string) ([]domain.Script, error)
}

// ScriptHandler serves the script catalog endpoints.
type ScriptHandler struct {
	svc scriptService
	log *slog.Logger
}

// NewScriptHandler creates a ScriptHandler.
func NewScriptHandler(svc scriptService, logger *slog.Logger) *ScriptHandler {
	return &ScriptHandler{
		svc: svc,
		log: logger.With("handler", "script"),
	}
}

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

type scriptRequest struct {
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
}

func (r scriptRequest) fields() domain.ScriptFields {
	return domain.ScriptFields{
		Title:       r.Title,
		Tags:        r.Tags,
		Description: r.Description,
		Content:     r.Content,
	}
}

type scriptResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type summaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toScriptResponse(s *domain.Script) scriptResponse {
	return scriptResponse{
		ID:          s.ID,
		Title:       s.Title,
		Tags:        nonNil(s.Tags),
		Description: s.Description,
		Content:     s.Content,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// List returns every script summary.
// GET /scripts
func (h *ScriptHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListSummaries(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]summaryResponse, len(list))
	for i, s := range list {
		resp[i] = summaryResponse{
			ID:          s.ID,
			Title:       s.Title,
			Tags:        nonNil(s.Tags),
			Description: s.Description,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns one full script.
// GET /scripts/{id}
func (h *ScriptHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scriptID(w, r)
	if !ok {
		return
	}

	script, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toScriptResponse(script))
}

// Create stores a new script.
// POST /scripts
func (h *ScriptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req scriptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	script, err := h.svc.Create(r.Context(), req.fields())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toScriptResponse(script))
}

// Update replaces a script.
// PUT /scripts/{id}
func (h *ScriptHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scriptID(w, r)
	if !ok {
		return
	}

	var req scriptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	script, err := h.svc.Update(r.Context(), id, req.fields())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toScriptResponse(script))
}

// Delete removes a script.
// DELETE /scripts/{id}
func (h *ScriptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scriptID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Deleted"})
}

// Search returns scripts matching the q regular expression. It fails open:
// a storage error still answers with an empty array.
// GET /scripts/search?q=
func (h *ScriptHandler) Search(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.log.ErrorContext(r.Context(), "search scripts", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, []scriptResponse{})
		return
	}

	resp := make([]scriptResponse, len(found))
	for i := range found {
		resp[i] = toScriptResponse(&found[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// scriptID parses the {id} path parameter. A malformed id cannot name a
// stored script, so it answers 404.
func (h *ScriptHandler) scriptID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFoundMessage)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ScriptHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMessage)
	default:
		h.log.ErrorContext(r.Context(), "script request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
