package importer

import (
	"context"
	"sync"

	"github.com/heartmarshall/scriptbook-backend/internal/domain"
)

var _ ScriptBulkRepo = &scriptBulkRepoMock{}

type scriptBulkRepoMock struct {
	BulkInsertFunc func(ctx context.Context, scripts []domain.ScriptFields) (int, error)

	calls struct {
		BulkInsert []struct {
			Ctx     context.Context
			Scripts []domain.ScriptFields
		}
	}
	lockBulkInsert sync.RWMutex
}

func (mock *scriptBulkRepoMock) BulkInsert(ctx context.Context, scripts []domain.ScriptFields) (int, error) {
	if mock.BulkInsertFunc == nil {
		panic("scriptBulkRepoMock.BulkInsertFunc: method is nil but ScriptBulkRepo.BulkInsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Scripts []domain.ScriptFields
	}{Ctx: ctx, Scripts: scripts}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, scripts)
}

func (mock *scriptBulkRepoMock) BulkInsertCalls() []struct {
	Ctx     context.Context
	Scripts []domain.ScriptFields
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}
