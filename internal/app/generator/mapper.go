package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/prize2pride-backend/internal/app/generator/catalog"
	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

// Fixed field values written by the mapper.
const (
	scenarioVocabulary = "vocabulary"
	scenarioStreet     = "street"
	categoryIdioms     = "idioms"
)

// ExampleRow is a validated example insert tagged with its response index.
type ExampleRow struct {
	Index   int
	Example domain.NewExample
}

// TransformationRow is a validated transformation insert tagged with its
// response index.
type TransformationRow struct {
	Index          int
	Transformation domain.NewTransformation
}

// Rows is the store-ready output of one batch.
type Rows struct {
	Examples        []ExampleRow
	Transformations []TransformationRow
}

// Len returns the total number of rows.
func (r Rows) Len() int { return len(r.Examples) + len(r.Transformations) }

// Map converts a decoded payload into rows. Elements that fail validation are
// returned as RowErrors together with the elements rejected by Decode.
func Map(cat catalog.Category, p Payload) (Rows, []RowError) {
	var (
		rows     Rows
		rejected []RowError
	)

	addExample := func(idx int, ex domain.NewExample) {
		if err := ex.Validate(); err != nil {
			rejected = append(rejected, RowError{Index: idx, Err: err})
			return
		}
		rows.Examples = append(rows.Examples, ExampleRow{Index: idx, Example: ex})
	}
	addTransformation := func(idx int, tr domain.NewTransformation) {
		if err := tr.Validate(); err != nil {
			rejected = append(rejected, RowError{Index: idx, Err: err})
			return
		}
		rows.Transformations = append(rows.Transformations, TransformationRow{Index: idx, Transformation: tr})
	}

	source := cat.Name

	switch p := p.(type) {
	case TransformationsPayload:
		rejected = append(rejected, p.Rejected...)
		for _, el := range p.Items {
			v := el.Value
			addTransformation(el.Index, domain.NewTransformation{
				InformalText:  v.SourceRu,
				InformalLevel: domain.MinLevel,
				FormalText:    v.TransformL5Ru,
				FormalLevel:   domain.MaxLevel,
				ExplanationRu: optional(v.Notes),
				ExplanationEn: optional(v.SourceEn),
				Category:      optional(v.Category),
			})
		}

	case VocabularyPayload:
		rejected = append(rejected, p.Rejected...)
		level := vocabularyLevel(cat)
		for _, el := range p.Items {
			v := el.Value
			tone, err := parseRegister(v.Register)
			if err != nil {
				rejected = append(rejected, RowError{Index: el.Index, Err: err})
				continue
			}
			addExample(el.Index, domain.NewExample{
				LevelID:        level,
				TextRu:         v.WordRu,
				TextEn:         optional(v.WordEn),
				Context:        optional(v.DefinitionEn),
				Scenario:       ptr(scenarioVocabulary),
				Tone:           tone,
				Status:         domain.ReviewStatusApproved,
				SourceCategory: &source,
			})
		}

	case IdiomsPayload:
		rejected = append(rejected, p.Rejected...)
		for _, el := range p.Items {
			v := el.Value
			informal := v.Level1Ru
			if informal == "" {
				informal = v.OriginalRu
			}
			addTransformation(el.Index, domain.NewTransformation{
				InformalText:  informal,
				InformalLevel: domain.MinLevel,
				FormalText:    v.Level5Ru,
				FormalLevel:   domain.MaxLevel,
				ExplanationRu: optional(v.Meaning),
				ExplanationEn: optional(v.Origin),
				Category:      ptr(categoryIdioms),
			})
		}

	case VulgarPayload:
		rejected = append(rejected, p.Rejected...)
		for _, el := range p.Items {
			v := el.Value
			addExample(el.Index, streetExample(v.ExpressionRu, v.ExpressionEn, v.ActualUsage, &source))
		}

	case CriminalJargonPayload:
		rejected = append(rejected, p.Rejected...)
		for _, el := range p.Items {
			v := el.Value
			addExample(el.Index, streetExample(v.TermRu, v.TermEn, v.ActualMeaning, &source))
		}

	case UnsupportedPayload:
		// Generated and counted, never stored.

	default:
		panic(fmt.Sprintf("generator: unhandled payload %T", p))
	}

	return rows, rejected
}

func streetExample(ru, en, usage string, source *string) domain.NewExample {
	tone := domain.ToneVulgar
	return domain.NewExample{
		LevelID:        domain.MinLevel,
		TextRu:         ru,
		TextEn:         optional(en),
		Context:        optional(usage),
		Scenario:       ptr(scenarioStreet),
		Tone:           &tone,
		Status:         domain.ReviewStatusApproved,
		SourceCategory: source,
	}
}

// vocabularyLevel reads N from a "_lN" name suffix, falling back to the
// category level.
func vocabularyLevel(cat catalog.Category) int {
	if i := strings.LastIndex(cat.Name, "_l"); i >= 0 {
		if n, err := strconv.Atoi(cat.Name[i+2:]); err == nil && domain.IsValidLevel(n) {
			return n
		}
	}
	return cat.EffectiveLevel()
}

// parseRegister maps the model's register label to a tone. An empty label
// leaves the tone unset.
func parseRegister(s string) (*domain.Tone, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, ok := domain.ParseTone(s)
	if !ok {
		return nil, domain.NewValidationError("register", "unknown tone "+strconv.Quote(s))
	}
	return &t, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptr[T any](v T) *T { return &v }
