package responses

import "github.com/abhisek/growthfit/internal/catalog"

// SectionProgress counts answered questions in one category.
type SectionProgress struct {
	Category catalog.Category
	Answered int
	Total    int
}

// Progress counts answered questions across the catalog.
type Progress struct {
	Answered int
	Total    int
	Sections []SectionProgress
}

// Fraction returns Answered/Total in [0, 1], or 0 for an empty catalog.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Answered) / float64(p.Total)
}

// Complete reports whether every question has an answer.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Answered == p.Total
}

// ProgressOf counts the answers in s that belong to c. Answers for unknown
// IDs are not counted.
func ProgressOf(c *catalog.Catalog, s *Set) Progress {
	var p Progress
	for _, sec := range c.Sections() {
		sp := SectionProgress{Category: sec.Category}
		for _, q := range c.ByCategory(sec.Category) {
			sp.Total++
			if _, ok := s.Value(q.ID); ok {
				sp.Answered++
			}
		}
		p.Answered += sp.Answered
		p.Total += sp.Total
		p.Sections = append(p.Sections, sp)
	}
	return p
}
