package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
	"github.com/heartmarshall/prize2pride-backend/internal/service/review"
)

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	ListFunc           func(ctx context.Context, in review.ListInput) ([]review.LessonView, error)
	GetFunc            func(ctx context.Context, id int64) (review.LessonView, error)
	ApproveFunc        func(ctx context.Context, id int64) (review.LessonView, error)
	RejectFunc         func(ctx context.Context, id int64) (review.LessonView, error)
	UpdateNotesFunc    func(ctx context.Context, id int64, notes string) (review.LessonView, error)
	BatchApproveFunc   func(ctx context.Context, ids []int64) (review.BatchResult, error)
	StatisticsFunc     func(ctx context.Context) (domain.ReviewStats, error)
	ExportApprovedFunc func(ctx context.Context, in review.ExportInput) (review.Export, error)

	mu    sync.Mutex
	calls struct {
		List        []review.ListInput
		Get         []int64
		Approve     []int64
		Reject      []int64
		UpdateNotes []struct {
			ID    int64
			Notes string
		}
		BatchApprove   [][]int64
		ExportApproved []review.ExportInput
	}
}

func (m *reviewServiceMock) List(ctx context.Context, in review.ListInput) ([]review.LessonView, error) {
	if m.ListFunc == nil {
		panic("reviewServiceMock.ListFunc: method is nil but reviewService.List was just called")
	}
	m.mu.Lock()
	m.calls.List = append(m.calls.List, in)
	m.mu.Unlock()
	return m.ListFunc(ctx, in)
}

func (m *reviewServiceMock) Get(ctx context.Context, id int64) (review.LessonView, error) {
	if m.GetFunc == nil {
		panic("reviewServiceMock.GetFunc: method is nil but reviewService.Get was just called")
	}
	m.mu.Lock()
	m.calls.Get = append(m.calls.Get, id)
	m.mu.Unlock()
	return m.GetFunc(ctx, id)
}

func (m *reviewServiceMock) Approve(ctx context.Context, id int64) (review.LessonView, error) {
	if m.ApproveFunc == nil {
		panic("reviewServiceMock.ApproveFunc: method is nil but reviewService.Approve was just called")
	}
	m.mu.Lock()
	m.calls.Approve = append(m.calls.Approve, id)
	m.mu.Unlock()
	return m.ApproveFunc(ctx, id)
}

func (m *reviewServiceMock) Reject(ctx context.Context, id int64) (review.LessonView, error) {
	if m.RejectFunc == nil {
		panic("reviewServiceMock.RejectFunc: method is nil but reviewService.Reject was just called")
	}
	m.mu.Lock()
	m.calls.Reject = append(m.calls.Reject, id)
	m.mu.Unlock()
	return m.RejectFunc(ctx, id)
}

func (m *reviewServiceMock) UpdateNotes(ctx context.Context, id int64, notes string) (review.LessonView, error) {
	if m.UpdateNotesFunc == nil {
		panic("reviewServiceMock.UpdateNotesFunc: method is nil but reviewService.UpdateNotes was just called")
	}
	m.mu.Lock()
	m.calls.UpdateNotes = append(m.calls.UpdateNotes, struct {
		ID    int64
		Notes string
	}{id, notes})
	m.mu.Unlock()
	return m.UpdateNotesFunc(ctx, id, notes)
}

func (m *reviewServiceMock) BatchApprove(ctx context.Context, ids []int64) (review.BatchResult, error) {
	if m.BatchApproveFunc == nil {
		panic("reviewServiceMock.BatchApproveFunc: method is nil but reviewService.BatchApprove was just called")
	}
	m.mu.Lock()
	m.calls.BatchApprove = append(m.calls.BatchApprove, ids)
	m.mu.Unlock()
	return m.BatchApproveFunc(ctx, ids)
}

func (m *reviewServiceMock) Statistics(ctx context.Context) (domain.ReviewStats, error) {
	if m.StatisticsFunc == nil {
		panic("reviewServiceMock.StatisticsFunc: method is nil but reviewService.Statistics was just called")
	}
	return m.StatisticsFunc(ctx)
}

func (m *reviewServiceMock) ExportApproved(ctx context.Context, in review.ExportInput) (review.Export, error) {
	if m.ExportApprovedFunc == nil {
		panic("reviewServiceMock.ExportApprovedFunc: method is nil but reviewService.ExportApproved was just called")
	}
	m.mu.Lock()
	m.calls.ExportApproved = append(m.calls.ExportApproved, in)
	m.mu.Unlock()
	return m.ExportApprovedFunc(ctx, in)
}

func (m *reviewServiceMock) ListCalls() []review.ListInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}

func (m *reviewServiceMock) GetCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Get
}

func (m *reviewServiceMock) ApproveCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Approve
}

func (m *reviewServiceMock) RejectCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Reject
}

func (m *reviewServiceMock) UpdateNotesCalls() []struct {
	ID    int64
	Notes string
} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.UpdateNotes
}

func (m *reviewServiceMock) BatchApproveCalls() [][]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.BatchApprove
}

func (m *reviewServiceMock) ExportApprovedCalls() []review.ExportInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.ExportApproved
}
