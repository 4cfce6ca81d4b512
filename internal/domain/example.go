package domain

import "time"

// Example is one persisted language example (table language_examples).
type Example struct {
	ID              int64
	ModuleID        *int64
	LevelID         int
	TextRu          string
	TextEn          *string
	Transliteration *string
	Context         *string
	Scenario        *string
	Tone            *Tone
	Tags            []string
	Notes           *string
	Status          ReviewStatus
	SourceCategory  *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ReviewedAt      *time.Time
}

// NewExample is the insert shape for an example row. The store assigns
// ID and timestamps.
type NewExample struct {
	ModuleID       *int64
	LevelID        int
	TextRu         string
	TextEn         *string
	Context        *string
	Scenario       *string
	Tone           *Tone
	Tags           []string
	Notes          *string
	Status         ReviewStatus
	SourceCategory *string
}

// Validate checks row-level invariants before insert.
func (e NewExample) Validate() error {
	var c Checker
	c.Check(e.TextRu != "", "text_ru", "required")
	c.Check(IsValidLevel(e.LevelID), "level_id", "must be between 1 and 5")
	if e.Tone != nil {
		c.Check(e.Tone.IsValid(), "tone", "unknown tone "+string(*e.Tone))
	}
	c.Check(e.Status.IsValid(), "status", "unknown review status")
	return c.Err()
}

// ExampleFilter selects examples for the review queue and export.
type ExampleFilter struct {
	// Status nil means no status filter.
	Status *ReviewStatus
	// Levels restricts level_id; empty means all levels.
	Levels []int
	// Limit <= 0 means no limit.
	Limit  int
	Offset int
}

// ReviewStats holds example counts by review status.
// Total == Pending + Approved + Rejected.
type ReviewStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}
