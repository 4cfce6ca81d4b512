package review

import (
	"context"
	"fmt"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

// List returns the review queue ordered by id. The limit falls back to the
// configured default and is clamped to the configured maximum.
func (s *Service) List(ctx context.Context, in ListInput) ([]LessonView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	examples, err := s.examples.List(ctx, domain.ExampleFilter{
		Status: in.statusFilter(),
		Limit:  s.clampLimit(in.Limit),
		Offset: in.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list examples: %w", err)
	}

	views := make([]LessonView, 0, len(examples))
	for _, ex := range examples {
		views = append(views, NewLessonView(ex))
	}
	return views, nil
}

// Get returns one lesson regardless of its review status.
func (s *Service) Get(ctx context.Context, id int64) (LessonView, error) {
	ex, err := s.examples.GetByID(ctx, id)
	if err != nil {
		return LessonView{}, fmt.Errorf("get example: %w", err)
	}
	return NewLessonView(ex), nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	return limit
}
