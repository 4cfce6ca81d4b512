package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
	"github.com/heartmarshall/prize2pride-backend/pkg/ctxutil"
)

// Approve marks one example approved.
func (s *Service) Approve(ctx context.Context, id int64) (LessonView, error) {
	return s.decide(ctx, id, domain.ReviewStatusApproved)
}

// Reject marks one example rejected.
func (s *Service) Reject(ctx context.Context, id int64) (LessonView, error) {
	return s.decide(ctx, id, domain.ReviewStatusRejected)
}

func (s *Service) decide(ctx context.Context, id int64, status domain.ReviewStatus) (LessonView, error) {
	ex, err := s.examples.SetStatus(ctx, id, status)
	if err != nil {
		return LessonView{}, fmt.Errorf("set status %s: %w", status, err)
	}

	s.log.InfoContext(ctx, "lesson reviewed",
		slog.Int64("lesson_id", id),
		slog.String("status", string(status)),
		slog.String("reviewer_id", reviewerID(ctx)),
	)
	return NewLessonView(ex), nil
}

// UpdateNotes stores notes exactly as given. An empty string clears the field.
func (s *Service) UpdateNotes(ctx context.Context, id int64, notes string) (LessonView, error) {
	var value *string
	if notes != "" {
		value = &notes
	}

	ex, err := s.examples.UpdateNotes(ctx, id, value)
	if err != nil {
		return LessonView{}, fmt.Errorf("update notes: %w", err)
	}
	return NewLessonView(ex), nil
}

// BatchApprove approves every listed id in one statement. Unknown ids are
// not an error; they are reported in Missing.
func (s *Service) BatchApprove(ctx context.Context, ids []int64) (BatchResult, error) {
	if len(ids) == 0 {
		return BatchResult{}, domain.NewValidationError("ids", "at least one id is required")
	}

	unique := dedupe(ids)
	affected, err := s.examples.BatchSetStatus(ctx, unique, domain.ReviewStatusApproved)
	if err != nil {
		return BatchResult{}, fmt.Errorf("batch approve: %w", err)
	}

	res := BatchResult{
		Attempted: len(unique),
		Approved:  int(affected),
		Missing:   len(unique) - int(affected),
	}
	s.log.InfoContext(ctx, "lessons batch approved",
		slog.Int("attempted", res.Attempted),
		slog.Int("approved", res.Approved),
		slog.Int("missing", res.Missing),
		slog.String("reviewer_id", reviewerID(ctx)),
	)
	return res, nil
}

// Statistics returns example counts per review status.
func (s *Service) Statistics(ctx context.Context) (domain.ReviewStats, error) {
	stats, err := s.examples.Stats(ctx)
	if err != nil {
		return domain.ReviewStats{}, fmt.Errorf("review stats: %w", err)
	}
	return stats, nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func reviewerID(ctx context.Context) string {
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return id.String()
	}
	return ""
}
