// Package catalog holds the static question bank for the growth-management
// assessment. A Catalog is built once, validated, and never mutated.
package catalog

import (
	"fmt"
	"slices"
	"sync"
)

// Catalog is an ordered, read-only set of questions with precomputed indices.
type Catalog struct {
	questions  []Question
	byID       map[string]int
	byCategory map[Category][]Question
	sections   []SectionInfo
}

// New validates questions and sections and builds a Catalog from them.
// Presentation order is the order of questions.
func New(questions []Question, sections []SectionInfo) (*Catalog, error) {
	if err := validate(questions, sections); err != nil {
		return nil, err
	}

	c := &Catalog{
		questions:  slices.Clone(questions),
		byID:       make(map[string]int, len(questions)),
		byCategory: make(map[Category][]Question),
		sections:   slices.Clone(sections),
	}
	for i, q := range c.questions {
		c.byID[q.ID] = i
		c.byCategory[q.Category] = append(c.byCategory[q.Category], q)
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(seedQuestions(), seedSections())
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid seed: %v", err))
	}
	return c
})

// Default returns the built-in growth-management question catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Questions returns all questions in presentation order.
func (c *Catalog) Questions() []Question {
	return slices.Clone(c.questions)
}

// Get returns a question by ID, or error if not found.
func (c *Catalog) Get(id string) (Question, error) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return c.questions[i], nil
}

// Has reports whether id names a catalog question.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// ByCategory returns the questions of one category in presentation order.
func (c *Catalog) ByCategory(cat Category) []Question {
	return slices.Clone(c.byCategory[cat])
}

// Sections returns the section headers in section order. Only sections that
// contain questions are included.
func (c *Catalog) Sections() []SectionInfo {
	out := make([]SectionInfo, 0, len(c.sections))
	for _, s := range c.sections {
		if len(c.byCategory[s.Category]) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Section returns the header for a category.
func (c *Catalog) Section(cat Category) (SectionInfo, bool) {
	for _, s := range c.sections {
		if s.Category == cat {
			return s, true
		}
	}
	return SectionInfo{}, false
}
