package taskseg

import (
	"context"
	"sync"
)

var _ taskStore = &taskStoreMock{}

type taskStoreMock struct {
	PipelineIDsByBoardFunc  func(ctx context.Context, boardID string) ([]string, error)
	StageIDsByPipelinesFunc func(ctx context.Context, pipelineIDs []string) ([]string, error)

	calls struct {
		PipelineIDsByBoard []struct {
			Ctx     context.Context
			BoardID string
		}
		StageIDsByPipelines []struct {
			Ctx         context.Context
			PipelineIDs []string
		}
	}
	lockPipelineIDsByBoard  sync.RWMutex
	lockStageIDsByPipelines sync.RWMutex
}

func (mock *taskStoreMock) PipelineIDsByBoard(ctx context.Context, boardID string) ([]string, error) {
	if mock.PipelineIDsByBoardFunc == nil {
		panic("taskStoreMock.PipelineIDsByBoardFunc: method is nil but taskStore.PipelineIDsByBoard was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BoardID string
	}{Ctx: ctx, BoardID: boardID}
	mock.lockPipelineIDsByBoard.Lock()
	mock.calls.PipelineIDsByBoard = append(mock.calls.PipelineIDsByBoard, callInfo)
	mock.lockPipelineIDsByBoard.Unlock()
	return mock.PipelineIDsByBoardFunc(ctx, boardID)
}

func (mock *taskStoreMock) PipelineIDsByBoardCalls() []struct {
	Ctx     context.Context
	BoardID string
} {
	mock.lockPipelineIDsByBoard.RLock()
	calls := mock.calls.PipelineIDsByBoard
	mock.lockPipelineIDsByBoard.RUnlock()
	return calls
}

func (mock *taskStoreMock) StageIDsByPipelines(ctx context.Context, pipelineIDs []string) ([]string, error) {
	if mock.StageIDsByPipelinesFunc == nil {
		panic("taskStoreMock.StageIDsByPipelinesFunc: method is nil but taskStore.StageIDsByPipelines was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PipelineIDs []string
	}{Ctx: ctx, PipelineIDs: pipelineIDs}
	mock.lockStageIDsByPipelines.Lock()
	mock.calls.StageIDsByPipelines = append(mock.calls.StageIDsByPipelines, callInfo)
	mock.lockStageIDsByPipelines.Unlock()
	return mock.StageIDsByPipelinesFunc(ctx, pipelineIDs)
}

func (mock *taskStoreMock) StageIDsByPipelinesCalls() []struct {
	Ctx         context.Context
	PipelineIDs []string
} {
	mock.lockStageIDsByPipelines.RLock()
	calls := mock.calls.StageIDsByPipelines
	mock.lockStageIDsByPipelines.RUnlock()
	return calls
}
