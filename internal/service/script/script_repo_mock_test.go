package script

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

var _ scriptRepo = &scriptRepoMock{}

type scriptRepoMock struct {
	ListSummariesFunc func(ctx context.Context) ([]domain.ScriptSummary, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Script, error)
	CreateFunc        func(ctx context.Context, f domain.ScriptFields) (*domain.Script, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, f domain.ScriptFields) (*domain.Script, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	SearchFunc        func(ctx context.Context, pattern string) ([]domain.Script, error)

	calls struct {
		ListSummaries []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			F   domain.ScriptFields
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			F   domain.ScriptFields
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Search []struct {
			Ctx     context.Context
			Pattern string
		}
	}
	lockListSummaries sync.RWMutex
	lockGetByID       sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockSearch        sync.RWMutex
}

func (mock *scriptRepoMock) ListSummaries(ctx context.Context) ([]domain.ScriptSummary, error) {
	if mock.ListSummariesFunc == nil {
		panic("scriptRepoMock.ListSummariesFunc: method is nil but scriptRepo.ListSummaries was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListSummaries.Lock()
	mock.calls.ListSummaries = append(mock.calls.ListSummaries, callInfo)
	mock.lockListSummaries.Unlock()
	return mock.ListSummariesFunc(ctx)
}

func (mock *scriptRepoMock) ListSummariesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSummaries.RLock()
	calls := mock.calls.ListSummaries
	mock.lockListSummaries.RUnlock()
	return calls
}

func (mock *scriptRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Script, error) {
	if mock.GetByIDFunc == nil {
		panic("scriptRepoMock.GetByIDFunc: method is nil but scriptRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *scriptRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *scriptRepoMock) Create(ctx context.Context, f domain.ScriptFields) (*domain.Script, error) {
	if mock.CreateFunc == nil {
		panic("scriptRepoMock.CreateFunc: method is nil but scriptRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ScriptFields
	}{Ctx: ctx, F: f}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, f)
}

func (mock *scriptRepoMock) CreateCalls() []struct {
	Ctx context.Context
	F   domain.ScriptFields
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *scriptRepoMock) Update(ctx context.Context, id uuid.UUID, f domain.ScriptFields) (*domain.Script, error) {
	if mock.UpdateFunc == nil {
		panic("scriptRepoMock.UpdateFunc: method is nil but scriptRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		F   domain.ScriptFields
	}{Ctx: ctx, ID: id, F: f}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, f)
}

func (mock *scriptRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	F   domain.ScriptFields
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *scriptRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("scriptRepoMock.DeleteFunc: method is nil but scriptRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *scriptRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *scriptRepoMock) Search(ctx context.Context, pattern string) ([]domain.Script, error) {
	if mock.SearchFunc == nil {
		panic("scriptRepoMock.SearchFunc: method is nil but scriptRepo.Search was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Pattern string
	}{Ctx: ctx, Pattern: pattern}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, pattern)
}

func (mock *scriptRepoMock) SearchCalls() []struct {
	Ctx     context.Context
	Pattern string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
