package domain

import "time"

// Transformation is one informal/formal language pair (table language_transformations).
// Generated transformations are inserted without a review step.
type Transformation struct {
	ID            int64
	InformalText  string
	InformalLevel int
	FormalText    string
	FormalLevel   int
	ExplanationRu *string
	ExplanationEn *string
	Category      *string
	UsageNotes    *string
	CreatedAt     time.Time
}

// NewTransformation is the insert shape for a transformation row.
type NewTransformation struct {
	InformalText  string
	InformalLevel int
	FormalText    string
	FormalLevel   int
	ExplanationRu *string
	ExplanationEn *string
	Category      *string
	UsageNotes    *string
}

// Validate checks row-level invariants before insert.
func (t NewTransformation) Validate() error {
	var c Checker
	c.Check(t.InformalText != "", "informal_text", "required")
	c.Check(t.FormalText != "", "formal_text", "required")
	c.Check(IsValidLevel(t.InformalLevel), "informal_level", "must be between 1 and 5")
	c.Check(IsValidLevel(t.FormalLevel), "formal_level", "must be between 1 and 5")
	return c.Err()
}
