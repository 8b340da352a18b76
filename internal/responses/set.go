// Package responses collects answers to catalog questions. The collection
// boundary is where values are validated; the scoring engine trusts them.
package responses

import (
	"maps"
	"slices"

	"github.com/abhisek/growthfit/internal/catalog"
)

// Response is one answer. Value is a rating (scale.Min..scale.Max) or a
// zero-based option index, depending on the question type.
type Response struct {
	QuestionID string `json:"questionId"`
	Value      int    `json:"value"`
}

// Set holds at most one value per question ID. A later Put for the same ID
// replaces the earlier value. The zero value is an empty set.
type Set struct {
	values map[string]int
}

// NewSet returns a set containing rs, applied in order.
func NewSet(rs ...Response) *Set {
	s := &Set{values: make(map[string]int, len(rs))}
	for _, r := range rs {
		s.Put(r.QuestionID, r.Value)
	}
	return s
}

// Put stores v for id without validation.
func (s *Set) Put(id string, v int) {
	if s.values == nil {
		s.values = make(map[string]int)
	}
	s.values[id] = v
}

// Value returns the stored value for id.
func (s *Set) Value(id string) (int, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s.values[id]
	return v, ok
}

// Delete removes the answer for id.
func (s *Set) Delete(id string) {
	delete(s.values, id)
}

// Len returns the number of answered questions.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	if s == nil {
		return &Set{}
	}
	return &Set{values: maps.Clone(s.values)}
}

// Responses returns the answers sorted by question ID.
func (s *Set) Responses() []Response {
	if s == nil {
		return nil
	}
	ids := slices.Sorted(maps.Keys(s.values))
	out := make([]Response, 0, len(ids))
	for _, id := range ids {
		out = append(out, Response{QuestionID: id, Value: s.values[id]})
	}
	return out
}

// Missing returns the IDs of catalog questions with no answer, in
// presentation order.
func (s *Set) Missing(c *catalog.Catalog) []string {
	var out []string
	for _, q := range c.Questions() {
		if _, ok := s.Value(q.ID); !ok {
			out = append(out, q.ID)
		}
	}
	return out
}
