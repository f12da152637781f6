package tui

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/client/apiclient"
	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

var _ scriptAPI = (*fakeAPI)(nil)

// fakeAPI is an in-memory stand-in for the REST API, newest script first.
type fakeAPI struct {
	mu      sync.Mutex
	scripts []domain.Script

	failList, failGet, failUpdate, failCreate, failDelete error

	listCalls, getCalls, updateCalls, createCalls, deleteCalls int
}

func newFakeAPI(titles ...string) *fakeAPI {
	f := &fakeAPI{}
	now := time.Now()
	for i, title := range titles {
		f.scripts = append(f.scripts, domain.Script{
			ID:        uuid.New(),
			Title:     title,
			Tags:      []string{},
			Content:   "body of " + title,
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
			UpdatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	return f
}

func (f *fakeAPI) List(ctx context.Context) ([]domain.ScriptSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.failList != nil {
		return nil, f.failList
	}
	out := make([]domain.ScriptSummary, len(f.scripts))
	for i, s := range f.scripts {
		out[i] = s.Summary()
	}
	return out, nil
}

func (f *fakeAPI) Get(ctx context.Context, id uuid.UUID) (*domain.Script, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.failGet != nil {
		return nil, f.failGet
	}
	if i := f.index(id); i >= 0 {
		s := f.scripts[i]
		return &s, nil
	}
	return nil, &apiclient.APIError{Status: http.StatusNotFound, Message: "Not found"}
}

func (f *fakeAPI) Create(ctx context.Context, fields domain.ScriptFields) (*domain.Script, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	now := time.Now()
	s := domain.Script{
		ID:          uuid.New(),
		Title:       fields.Title,
		Tags:        append([]string{}, fields.Tags...),
		Description: fields.Description,
		Content:     fields.Content,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.scripts = append([]domain.Script{s}, f.scripts...)
	return &s, nil
}

func (f *fakeAPI) Update(ctx context.Context, id uuid.UUID, fields domain.ScriptFields) (*domain.Script, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.failUpdate != nil {
		return nil, f.failUpdate
	}
	if res := domain.ValidateScript(fields); !res.OK() {
		return nil, &apiclient.APIError{Status: http.StatusBadRequest, Message: "validation error", Fields: res.Violations}
	}
	i := f.index(id)
	if i < 0 {
		return nil, &apiclient.APIError{Status: http.StatusNotFound, Message: "Not found"}
	}
	s := f.scripts[i]
	s.Title = fields.Title
	s.Tags = append([]string{}, fields.Tags...)
	s.Description = fields.Description
	s.Content = fields.Content
	s.UpdatedAt = time.Now()
	f.scripts[i] = s
	return &s, nil
}

func (f *fakeAPI) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.failDelete != nil {
		return f.failDelete
	}
	i := f.index(id)
	if i < 0 {
		return &apiclient.APIError{Status: http.StatusNotFound, Message: "Not found"}
	}
	f.scripts = append(f.scripts[:i], f.scripts[i+1:]...)
	return nil
}

func (f *fakeAPI) stored(id uuid.UUID) (domain.Script, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.index(id); i >= 0 {
		return f.scripts[i], true
	}
	return domain.Script{}, false
}

func (f *fakeAPI) index(id uuid.UUID) int {
	for i := range f.scripts {
		if f.scripts[i].ID == id {
			return i
		}
	}
	return -1
}
