// Package review implements moderation of generated language examples:
// listing the queue, approving or rejecting items, notes, statistics and
// export of approved content.
//
// Concurrent decisions on the same example are not coordinated; the last
// write wins.
package review

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/heartmarshall/prize2pride-backend/internal/config"
	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

type exampleRepo interface {
	List(ctx context.Context, filter domain.ExampleFilter) ([]domain.Example, error)
	GetByID(ctx context.Context, id int64) (domain.Example, error)
	SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) (domain.Example, error)
	UpdateNotes(ctx context.Context, id int64, notes *string) (domain.Example, error)
	BatchSetStatus(ctx context.Context, ids []int64, status domain.ReviewStatus) (int64, error)
	Stats(ctx context.Context) (domain.ReviewStats, error)
}

// defaultCategory is shown for examples without a scenario.
const defaultCategory = "general"

// Service provides review queue operations.
type Service struct {
	examples exampleRepo
	cfg      config.ReviewConfig
	log      *slog.Logger
}

// NewService creates a new review service.
func NewService(log *slog.Logger, examples exampleRepo, cfg config.ReviewConfig) *Service {
	return &Service{
		examples: examples,
		cfg:      cfg,
		log:      log.With("component", "review"),
	}
}

// LessonView is how an example is presented to reviewers.
type LessonView struct {
	ID         string              `json:"id"`
	Category   string              `json:"category"`
	ContentRu  string              `json:"contentRu"`
	ContentEn  *string             `json:"contentEn"`
	Level      int                 `json:"level"`
	Status     domain.ReviewStatus `json:"status"`
	CreatedAt  time.Time           `json:"createdAt"`
	ReviewedAt *time.Time          `json:"reviewedAt"`
	Notes      *string             `json:"notes"`
}

// NewLessonView converts a stored example.
func NewLessonView(ex domain.Example) LessonView {
	category := defaultCategory
	if ex.Scenario != nil && *ex.Scenario != "" {
		category = *ex.Scenario
	}
	return LessonView{
		ID:         strconv.FormatInt(ex.ID, 10),
		Category:   category,
		ContentRu:  ex.TextRu,
		ContentEn:  ex.TextEn,
		Level:      ex.LevelID,
		Status:     ex.Status,
		CreatedAt:  ex.CreatedAt,
		ReviewedAt: ex.ReviewedAt,
		Notes:      ex.Notes,
	}
}

// BatchResult reports a batch approval. Missing counts ids that matched no row.
type BatchResult struct {
	Attempted int `json:"attempted"`
	Approved  int `json:"approved"`
	Missing   int `json:"missing"`
}
