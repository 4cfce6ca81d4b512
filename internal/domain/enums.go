package domain

import "strings"

// MinLevel and MaxLevel bound the proficiency/formality tier used by
// examples and transformations.
const (
	MinLevel = 1
	MaxLevel = 5
)

// IsValidLevel reports whether l is within [MinLevel, MaxLevel].
func IsValidLevel(l int) bool {
	return l >= MinLevel && l <= MaxLevel
}

// Tone is the register tag attached to a language example.
type Tone string

const (
	ToneVulgar       Tone = "vulgar"
	ToneCasual       Tone = "casual"
	ToneNeutral      Tone = "neutral"
	ToneFormal       Tone = "formal"
	ToneHighlyFormal Tone = "highly_formal"
	ToneDiplomatic   Tone = "diplomatic"
)

func (t Tone) String() string { return string(t) }

func (t Tone) IsValid() bool {
	switch t {
	case ToneVulgar, ToneCasual, ToneNeutral, ToneFormal, ToneHighlyFormal, ToneDiplomatic:
		return true
	}
	return false
}

// ParseTone normalizes a free-form register label produced by the model.
// "informal" is folded into casual; spaces and dashes become underscores.
func ParseTone(s string) (Tone, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	if norm == "informal" {
		return ToneCasual, true
	}
	t := Tone(norm)
	return t, t.IsValid()
}

// ReviewStatus is the moderation state of a generated example.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}
