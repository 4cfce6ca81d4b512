package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/prize2pride-backend/internal/app/generator/catalog"
)

// ErrMalformedPayload means a response object did not have the shape its
// category expects.
var ErrMalformedPayload = errors.New("malformed payload")

// Payload is the decoded response of one batch. The concrete types below are
// the only implementations.
type Payload interface {
	payload()
}

// Element is one decoded array element with its position in the response.
type Element[T any] struct {
	Index int
	Value T
}

// RowError records an element that was dropped during decode, map or insert.
type RowError struct {
	Index int
	Err   error
}

func (e RowError) Error() string { return fmt.Sprintf("element %d: %v", e.Index, e.Err) }

type TransformationItem struct {
	Category      string `json:"category"`
	SourceRu      string `json:"source_ru"`
	SourceEn      string `json:"source_en"`
	TransformL5Ru string `json:"transform_l5_ru"`
	Notes         string `json:"notes"`
}

type VocabularyItem struct {
	WordRu       string `json:"word_ru"`
	WordEn       string `json:"word_en"`
	DefinitionEn string `json:"definition_en"`
	Register     string `json:"register"`
}

type IdiomItem struct {
	OriginalRu string `json:"original_ru"`
	Level1Ru   string `json:"level_1_ru"`
	Level5Ru   string `json:"level_5_ru"`
	Meaning    string `json:"meaning"`
	Origin     string `json:"origin"`
}

type VulgarItem struct {
	ExpressionRu string `json:"expression_ru"`
	ExpressionEn string `json:"expression_en"`
	ActualUsage  string `json:"actual_usage"`
}

type JargonItem struct {
	TermRu        string `json:"term_ru"`
	TermEn        string `json:"term_en"`
	ActualMeaning string `json:"actual_meaning"`
}

type TransformationsPayload struct {
	Items    []Element[TransformationItem]
	Rejected []RowError
}

type VocabularyPayload struct {
	Items    []Element[VocabularyItem]
	Rejected []RowError
}

type IdiomsPayload struct {
	Items    []Element[IdiomItem]
	Rejected []RowError
}

type VulgarPayload struct {
	Items    []Element[VulgarItem]
	Rejected []RowError
}

type CriminalJargonPayload struct {
	Items    []Element[JargonItem]
	Rejected []RowError
}

// UnsupportedPayload is returned for categories that are generated and
// counted but have no table to go to.
type UnsupportedPayload struct{}

func (TransformationsPayload) payload() {}
func (VocabularyPayload) payload()      {}
func (IdiomsPayload) payload()          {}
func (VulgarPayload) payload()          {}
func (CriminalJargonPayload) payload()  {}
func (UnsupportedPayload) payload()     {}

// Response array keys per kind.
const (
	keyLessons    = "lessons"
	keyVocabulary = "vocabulary"
	keyIdioms     = "idioms"
	keyVulgar     = "vulgar_expressions"
	keyFenya      = "fenya_entries"
)

// Decode parses raw into the payload variant for kind. A missing array key
// yields an empty payload; an element that does not decode is reported in
// Rejected and the rest are kept.
func Decode(kind catalog.Kind, raw json.RawMessage) (Payload, error) {
	if kind == catalog.KindUnsupported {
		return UnsupportedPayload{}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	switch kind {
	case catalog.KindTransformations:
		items, rejected, err := decodeArray[TransformationItem](obj, keyLessons)
		return TransformationsPayload{Items: items, Rejected: rejected}, err
	case catalog.KindVocabulary:
		items, rejected, err := decodeArray[VocabularyItem](obj, keyVocabulary)
		return VocabularyPayload{Items: items, Rejected: rejected}, err
	case catalog.KindIdioms:
		items, rejected, err := decodeArray[IdiomItem](obj, keyIdioms)
		return IdiomsPayload{Items: items, Rejected: rejected}, err
	case catalog.KindVulgar:
		items, rejected, err := decodeArray[VulgarItem](obj, keyVulgar)
		return VulgarPayload{Items: items, Rejected: rejected}, err
	case catalog.KindCriminalJargon:
		items, rejected, err := decodeArray[JargonItem](obj, keyFenya)
		return CriminalJargonPayload{Items: items, Rejected: rejected}, err
	default:
		return nil, fmt.Errorf("decode: unhandled kind %v", kind)
	}
}

func decodeArray[T any](obj map[string]json.RawMessage, key string) ([]Element[T], []RowError, error) {
	raw, ok := obj[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, nil, fmt.Errorf("%w: %q is not an array", ErrMalformedPayload, key)
	}

	items := make([]Element[T], 0, len(elems))
	var rejected []RowError
	for i, e := range elems {
		var v T
		if err := json.Unmarshal(e, &v); err != nil {
			rejected = append(rejected, RowError{Index: i, Err: fmt.Errorf("decode: %w", err)})
			continue
		}
		items = append(items, Element[T]{Index: i, Value: v})
	}
	return items, rejected, nil
}
