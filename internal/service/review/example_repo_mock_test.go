package review

import (
	"context"
	"sync"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

var _ exampleRepo = &exampleRepoMock{}

type exampleRepoMock struct {
	ListFunc           func(ctx context.Context, filter domain.ExampleFilter) ([]domain.Example, error)
	GetByIDFunc        func(ctx context.Context, id int64) (domain.Example, error)
	SetStatusFunc      func(ctx context.Context, id int64, status domain.ReviewStatus) (domain.Example, error)
	UpdateNotesFunc    func(ctx context.Context, id int64, notes *string) (domain.Example, error)
	BatchSetStatusFunc func(ctx context.Context, ids []int64, status domain.ReviewStatus) (int64, error)
	StatsFunc          func(ctx context.Context) (domain.ReviewStats, error)

	calls struct {
		List      []domain.ExampleFilter
		GetByID   []int64
		SetStatus []struct {
			ID     int64
			Status domain.ReviewStatus
		}
		UpdateNotes []struct {
			ID    int64
			Notes *string
		}
		BatchSetStatus []struct {
			IDs    []int64
			Status domain.ReviewStatus
		}
	}
	lock sync.RWMutex
}

func (mock *exampleRepoMock) List(ctx context.Context, filter domain.ExampleFilter) ([]domain.Example, error) {
	if mock.ListFunc == nil {
		panic("exampleRepoMock.ListFunc: method is nil but exampleRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, filter)
	mock.lock.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *exampleRepoMock) ListCalls() []domain.ExampleFilter {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *exampleRepoMock) GetByID(ctx context.Context, id int64) (domain.Example, error) {
	if mock.GetByIDFunc == nil {
		panic("exampleRepoMock.GetByIDFunc: method is nil but exampleRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, id)
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *exampleRepoMock) GetByIDCalls() []int64 {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *exampleRepoMock) SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) (domain.Example, error) {
	if mock.SetStatusFunc == nil {
		panic("exampleRepoMock.SetStatusFunc: method is nil but exampleRepo.SetStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, struct {
		ID     int64
		Status domain.ReviewStatus
	}{ID: id, Status: status})
	mock.lock.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *exampleRepoMock) SetStatusCalls() []struct {
	ID     int64
	Status domain.ReviewStatus
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetStatus
}

func (mock *exampleRepoMock) UpdateNotes(ctx context.Context, id int64, notes *string) (domain.Example, error) {
	if mock.UpdateNotesFunc == nil {
		panic("exampleRepoMock.UpdateNotesFunc: method is nil but exampleRepo.UpdateNotes was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateNotes = append(mock.calls.UpdateNotes, struct {
		ID    int64
		Notes *string
	}{ID: id, Notes: notes})
	mock.lock.Unlock()
	return mock.UpdateNotesFunc(ctx, id, notes)
}

func (mock *exampleRepoMock) UpdateNotesCalls() []struct {
	ID    int64
	Notes *string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateNotes
}

func (mock *exampleRepoMock) BatchSetStatus(ctx context.Context, ids []int64, status domain.ReviewStatus) (int64, error) {
	if mock.BatchSetStatusFunc == nil {
		panic("exampleRepoMock.BatchSetStatusFunc: method is nil but exampleRepo.BatchSetStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.BatchSetStatus = append(mock.calls.BatchSetStatus, struct {
		IDs    []int64
		Status domain.ReviewStatus
	}{IDs: ids, Status: status})
	mock.lock.Unlock()
	return mock.BatchSetStatusFunc(ctx, ids, status)
}

func (mock *exampleRepoMock) BatchSetStatusCalls() []struct {
	IDs    []int64
	Status domain.ReviewStatus
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.BatchSetStatus
}

func (mock *exampleRepoMock) Stats(ctx context.Context) (domain.ReviewStats, error) {
	if mock.StatsFunc == nil {
		panic("exampleRepoMock.StatsFunc: method is nil but exampleRepo.Stats was just called")
	}
	return mock.StatsFunc(ctx)
}
