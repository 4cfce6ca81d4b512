package review

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

// Export is a rendered export file.
type Export struct {
	ContentType string
	Filename    string
	Body        []byte
	Count       int
}

var csvHeader = []string{"ID", "Level", "Russian", "English", "Category", "Tone"}

// exportRow is the JSON shape of an exported example.
type exportRow struct {
	ID              int64               `json:"id"`
	ModuleID        *int64              `json:"module_id"`
	LevelID         int                 `json:"level_id"`
	TextRu          string              `json:"text_ru"`
	TextEn          *string             `json:"text_en"`
	Transliteration *string             `json:"transliteration"`
	Context         *string             `json:"context"`
	Scenario        *string             `json:"scenario"`
	Tone            *domain.Tone        `json:"tone"`
	Tags            []string            `json:"tags"`
	Notes           *string             `json:"notes"`
	Status          domain.ReviewStatus `json:"review_status"`
	SourceCategory  *string             `json:"source_category"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	ReviewedAt      *time.Time          `json:"reviewed_at"`
}

// ExportApproved renders every approved example, optionally restricted to
// levels, ordered by id.
func (s *Service) ExportApproved(ctx context.Context, in ExportInput) (Export, error) {
	if err := in.Validate(); err != nil {
		return Export{}, err
	}

	approved := domain.ReviewStatusApproved
	examples, err := s.examples.List(ctx, domain.ExampleFilter{Status: &approved, Levels: in.Levels})
	if err != nil {
		return Export{}, fmt.Errorf("list approved: %w", err)
	}

	var out Export
	switch strings.ToLower(in.Format) {
	case FormatCSV:
		out.Body, err = renderCSV(examples)
		out.ContentType = "text/csv; charset=utf-8"
		out.Filename = "approved_lessons.csv"
	default:
		out.Body, err = renderJSON(examples)
		out.ContentType = "application/json"
		out.Filename = "approved_lessons.json"
	}
	if err != nil {
		return Export{}, fmt.Errorf("render export: %w", err)
	}
	out.Count = len(examples)
	return out, nil
}

func renderJSON(examples []domain.Example) ([]byte, error) {
	rows := make([]exportRow, 0, len(examples))
	for _, ex := range examples {
		tags := ex.Tags
		if tags == nil {
			tags = []string{}
		}
		rows = append(rows, exportRow{
			ID:              ex.ID,
			ModuleID:        ex.ModuleID,
			LevelID:         ex.LevelID,
			TextRu:          ex.TextRu,
			TextEn:          ex.TextEn,
			Transliteration: ex.Transliteration,
			Context:         ex.Context,
			Scenario:        ex.Scenario,
			Tone:            ex.Tone,
			Tags:            tags,
			Notes:           ex.Notes,
			Status:          ex.Status,
			SourceCategory:  ex.SourceCategory,
			CreatedAt:       ex.CreatedAt,
			UpdatedAt:       ex.UpdatedAt,
			ReviewedAt:      ex.ReviewedAt,
		})
	}
	return json.MarshalIndent(rows, "", "  ")
}

func renderCSV(examples []domain.Example) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, ex := range examples {
		view := NewLessonView(ex)
		tone := ""
		if ex.Tone != nil {
			tone = string(*ex.Tone)
		}
		record := []string{
			view.ID,
			strconv.Itoa(ex.LevelID),
			ex.TextRu,
			deref(ex.TextEn),
			view.Category,
			tone,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
