package activity

import (
	"context"
	"sync"

	"github.com/heartmarshall/crmhub-backend/internal/domain"
)

var _ store = &storeMock{}

type storeMock struct {
	NotesByContentFunc        func(ctx context.Context, contentID string) ([]domain.InternalNote, error)
	ActivityLogsByContentFunc func(ctx context.Context, contentID string) ([]domain.ActivityLog, error)
	FindActivityLogsFunc      func(ctx context.Context, q domain.ActivityLogQuery) ([]domain.ActivityLog, int64, error)
	FindLogsFunc              func(ctx context.Context, q domain.LogQuery) ([]domain.Log, int64, error)

	calls struct {
		NotesByContent []struct {
			Ctx       context.Context
			ContentID string
		}
		ActivityLogsByContent []struct {
			Ctx       context.Context
			ContentID string
		}
		FindActivityLogs []struct {
			Ctx context.Context
			Q   domain.ActivityLogQuery
		}
		FindLogs []struct {
			Ctx context.Context
			Q   domain.LogQuery
		}
	}
	lockNotesByContent        sync.RWMutex
	lockActivityLogsByContent sync.RWMutex
	lockFindActivityLogs      sync.RWMutex
	lockFindLogs              sync.RWMutex
}

func (mock *storeMock) NotesByContent(ctx context.Context, contentID string) ([]domain.InternalNote, error) {
	if mock.NotesByContentFunc == nil {
		panic("storeMock.NotesByContentFunc: method is nil but store.NotesByContent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContentID string
	}{Ctx: ctx, ContentID: contentID}
	mock.lockNotesByContent.Lock()
	mock.calls.NotesByContent = append(mock.calls.NotesByContent, callInfo)
	mock.lockNotesByContent.Unlock()
	return mock.NotesByContentFunc(ctx, contentID)
}

func (mock *storeMock) NotesByContentCalls() []struct {
	Ctx       context.Context
	ContentID string
} {
	mock.lockNotesByContent.RLock()
	calls := mock.calls.NotesByContent
	mock.lockNotesByContent.RUnlock()
	return calls
}

func (mock *storeMock) ActivityLogsByContent(ctx context.Context, contentID string) ([]domain.ActivityLog, error) {
	if mock.ActivityLogsByContentFunc == nil {
		panic("storeMock.ActivityLogsByContentFunc: method is nil but store.ActivityLogsByContent was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContentID string
	}{Ctx: ctx, ContentID: contentID}
	mock.lockActivityLogsByContent.Lock()
	mock.calls.ActivityLogsByContent = append(mock.calls.ActivityLogsByContent, callInfo)
	mock.lockActivityLogsByContent.Unlock()
	return mock.ActivityLogsByContentFunc(ctx, contentID)
}

func (mock *storeMock) ActivityLogsByContentCalls() []struct {
	Ctx       context.Context
	ContentID string
} {
	mock.lockActivityLogsByContent.RLock()
	calls := mock.calls.ActivityLogsByContent
	mock.lockActivityLogsByContent.RUnlock()
	return calls
}

func (mock *storeMock) FindActivityLogs(ctx context.Context, q domain.ActivityLogQuery) ([]domain.ActivityLog, int64, error) {
	if mock.FindActivityLogsFunc == nil {
		panic("storeMock.FindActivityLogsFunc: method is nil but store.FindActivityLogs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.ActivityLogQuery
	}{Ctx: ctx, Q: q}
	mock.lockFindActivityLogs.Lock()
	mock.calls.FindActivityLogs = append(mock.calls.FindActivityLogs, callInfo)
	mock.lockFindActivityLogs.Unlock()
	return mock.FindActivityLogsFunc(ctx, q)
}

func (mock *storeMock) FindActivityLogsCalls() []struct {
	Ctx context.Context
	Q   domain.ActivityLogQuery
} {
	mock.lockFindActivityLogs.RLock()
	calls := mock.calls.FindActivityLogs
	mock.lockFindActivityLogs.RUnlock()
	return calls
}

func (mock *storeMock) FindLogs(ctx context.Context, q domain.LogQuery) ([]domain.Log, int64, error) {
	if mock.FindLogsFunc == nil {
		panic("storeMock.FindLogsFunc: method is nil but store.FindLogs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Q   domain.LogQuery
	}{Ctx: ctx, Q: q}
	mock.lockFindLogs.Lock()
	mock.calls.FindLogs = append(mock.calls.FindLogs, callInfo)
	mock.lockFindLogs.Unlock()
	return mock.FindLogsFunc(ctx, q)
}

func (mock *storeMock) FindLogsCalls() []struct {
	Ctx context.Context
	Q   domain.LogQuery
} {
	mock.lockFindLogs.RLock()
	calls := mock.calls.FindLogs
	mock.lockFindLogs.RUnlock()
	return calls
}
