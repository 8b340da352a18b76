package catalog

// QuestionType determines how a question is answered and which of Scale or
// Options is populated.
type QuestionType string

const (
	TypeRatingScale    QuestionType = "rating-scale"
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeSituational    QuestionType = "situational"
)

// IsChoice reports whether answers are zero-based option indices.
func (t QuestionType) IsChoice() bool {
	return t == TypeMultipleChoice || t == TypeSituational
}

// Category groups questions into assessment sections.
type Category string

const (
	CategoryPsychometric Category = "psychometric"
	CategoryTechnical    Category = "technical"
	CategoryWiscar       Category = "wiscar"
)

// AllCategories returns all categories in section order.
func AllCategories() []Category {
	return []Category{
		CategoryPsychometric,
		CategoryTechnical,
		CategoryWiscar,
	}
}

// Scale describes a rating-scale answer range. Labels[i] names value Min+i.
type Scale struct {
	Min    int      `json:"min"`
	Max    int      `json:"max"`
	Labels []string `json:"labels"`
}

// Question is a single immutable catalog entry.
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Category    Category     `json:"category"`
	Subcategory string       `json:"subcategory"`
	Prompt      string       `json:"prompt"`
	Scale       *Scale       `json:"scale,omitempty"`
	Options     []string     `json:"options,omitempty"`
}

// Choices returns the labels a respondent picks from, in answer order.
// For rating-scale questions these are the scale labels.
func (q Question) Choices() []string {
	if q.Type == TypeRatingScale && q.Scale != nil {
		return q.Scale.Labels
	}
	return q.Options
}

// ValueRange returns the inclusive range of accepted answer values.
func (q Question) ValueRange() (lo, hi int) {
	if q.Type == TypeRatingScale && q.Scale != nil {
		return q.Scale.Min, q.Scale.Max
	}
	return 0, len(q.Options) - 1
}

// Accepts reports whether v is a valid answer value for q.
func (q Question) Accepts(v int) bool {
	lo, hi := q.ValueRange()
	return v >= lo && v <= hi
}

// ValueForChoice maps a zero-based choice position to the stored answer value.
func (q Question) ValueForChoice(i int) int {
	if q.Type == TypeRatingScale && q.Scale != nil {
		return q.Scale.Min + i
	}
	return i
}

// ChoiceForValue is the inverse of ValueForChoice.
func (q Question) ChoiceForValue(v int) int {
	if q.Type == TypeRatingScale && q.Scale != nil {
		return v - q.Scale.Min
	}
	return v
}

// SectionInfo is the display header for a category.
type SectionInfo struct {
	Category    Category
	Title       string
	Description string
	Icon        string
	// Expect lists what the section covers, shown before it starts.
	Expect []string
}
