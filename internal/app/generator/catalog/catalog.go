// Package catalog holds the fixed set of lesson generation categories: the
// prompt template, batch size and target total of each, in run order.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/prize2pride-backend/internal/domain"
)

// Kind selects how a category's response is decoded and persisted.
type Kind int

const (
	KindUnsupported Kind = iota
	KindTransformations
	KindVocabulary
	KindIdioms
	KindVulgar
	KindCriminalJargon
)

func (k Kind) String() string {
	switch k {
	case KindTransformations:
		return "transformations"
	case KindVocabulary:
		return "vocabulary"
	case KindIdioms:
		return "idioms"
	case KindVulgar:
		return "vulgar"
	case KindCriminalJargon:
		return "criminal_jargon"
	default:
		return "unsupported"
	}
}

// Placeholder tokens substituted by Render.
const (
	TokenBatchSize = "{batch_size}"
	TokenLevel     = "{level}"
)

// Category is one generation job definition. It is immutable once built.
type Category struct {
	Name      string
	Kind      Kind
	Template  string
	BatchSize int
	Total     int
	// Level is 0 when the category has no level parameter.
	Level int
}

// EffectiveLevel is Level, or 1 when unset.
func (c Category) EffectiveLevel() int {
	if c.Level == 0 {
		return domain.MinLevel
	}
	return c.Level
}

// Render substitutes every {batch_size} and {level} token. Other braces in
// the template are left as they are.
func (c Category) Render() string {
	return strings.NewReplacer(
		TokenBatchSize, strconv.Itoa(c.BatchSize),
		TokenLevel, strconv.Itoa(c.EffectiveLevel()),
	).Replace(c.Template)
}

// Batches returns ceil(Total / BatchSize).
func (c Category) Batches() (int, error) {
	if c.BatchSize <= 0 {
		return 0, fmt.Errorf("category %s: batch size must be > 0 (got %d)", c.Name, c.BatchSize)
	}
	if c.Total < 0 {
		return 0, fmt.Errorf("category %s: total must be >= 0 (got %d)", c.Name, c.Total)
	}
	return (c.Total + c.BatchSize - 1) / c.BatchSize, nil
}

// Catalog is an ordered, name-unique set of categories.
type Catalog struct {
	categories []Category
	byName     map[string]int
}

// New builds a Catalog, rejecting duplicate names and invalid batch sizes.
func New(categories ...Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("catalog: category with empty name")
		}
		if _, dup := c.byName[cat.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate category %q", cat.Name)
		}
		if _, err := cat.Batches(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if cat.Level != 0 && !domain.IsValidLevel(cat.Level) {
			return nil, fmt.Errorf("catalog: category %s: level %d out of range", cat.Name, cat.Level)
		}
		c.byName[cat.Name] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// All returns the categories in declaration order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Lookup returns the category with the exact name.
func (c *Catalog) Lookup(name string) (Category, error) {
	i, ok := c.byName[name]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, name)
	}
	return c.categories[i], nil
}

// Select resolves a --category argument. Empty selects everything; otherwise
// every category whose name equals or starts with arg is returned in
// declaration order, so "vocabulary" selects all five vocabulary levels.
func (c *Catalog) Select(arg string) ([]Category, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return c.All(), nil
	}

	var out []Category
	for _, cat := range c.categories {
		if strings.HasPrefix(cat.Name, arg) {
			out = append(out, cat)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q matches no category", domain.ErrUnknownCategory, arg)
	}
	return out, nil
}

// Default returns the production catalog.
func Default() *Catalog {
	c, err := New(defaultCategories()...)
	if err != nil {
		panic(err)
	}
	return c
}

func defaultCategories() []Category {
	return []Category{
		{Name: "transformations", Kind: KindTransformations, Template: promptTransformations, BatchSize: 25, Total: 1500},
		{Name: "vocabulary_l1", Kind: KindVocabulary, Template: promptVocabulary, BatchSize: 30, Total: 300, Level: 1},
		{Name: "vocabulary_l2", Kind: KindVocabulary, Template: promptVocabulary, BatchSize: 30, Total: 300, Level: 2},
		{Name: "vocabulary_l3", Kind: KindVocabulary, Template: promptVocabulary, BatchSize: 30, Total: 200, Level: 3},
		{Name: "vocabulary_l4", Kind: KindVocabulary, Template: promptVocabulary, BatchSize: 30, Total: 200, Level: 4},
		{Name: "vocabulary_l5", Kind: KindVocabulary, Template: promptVocabulary, BatchSize: 30, Total: 200, Level: 5},
		{Name: "dialogues", Kind: KindUnsupported, Template: promptDialogues, BatchSize: 10, Total: 500},
		{Name: "idioms", Kind: KindIdioms, Template: promptIdioms, BatchSize: 20, Total: 800},
		{Name: "professional", Kind: KindUnsupported, Template: promptProfessional, BatchSize: 15, Total: 500},
		{Name: "legal", Kind: KindUnsupported, Template: promptLegal, BatchSize: 20, Total: 400},
		{Name: "diplomatic", Kind: KindUnsupported, Template: promptDiplomatic, BatchSize: 15, Total: 300},
		{Name: "vulgar", Kind: KindVulgar, Template: promptVulgar, BatchSize: 25, Total: 600},
		{Name: "regional", Kind: KindUnsupported, Template: promptRegional, BatchSize: 20, Total: 400},
		{Name: "historical", Kind: KindUnsupported, Template: promptHistorical, BatchSize: 15, Total: 300},
		{Name: "internet_slang", Kind: KindUnsupported, Template: promptInternetSlang, BatchSize: 25, Total: 400},
		{Name: "criminal_jargon", Kind: KindCriminalJargon, Template: promptCriminalJargon, BatchSize: 20, Total: 350},
	}
}
