package responses

import (
	"github.com/abhisek/growthfit/internal/catalog"
)

// Collector accumulates validated answers for one assessment run.
// It is owned by the interaction flow and is not safe for concurrent use.
type Collector struct {
	catalog *catalog.Catalog
	set     *Set
}

// NewCollector returns an empty collector bound to c.
func NewCollector(c *catalog.Catalog) *Collector {
	return &Collector{catalog: c, set: &Set{}}
}

// Record validates v against question id and stores it, replacing any
// earlier answer. It returns *UnknownQuestionError or *OutOfRangeError.
func (c *Collector) Record(id string, v int) error {
	q, err := c.catalog.Get(id)
	if err != nil {
		return &UnknownQuestionError{QuestionID: id}
	}
	if !q.Accepts(v) {
		lo, hi := q.ValueRange()
		return &OutOfRangeError{QuestionID: id, Value: v, Min: lo, Max: hi}
	}
	c.set.Put(id, v)
	return nil
}

// Value returns the recorded answer for id.
func (c *Collector) Value(id string) (int, bool) {
	return c.set.Value(id)
}

// Set returns a snapshot of the recorded answers.
func (c *Collector) Set() *Set {
	return c.set.Clone()
}

// Reset discards all recorded answers.
func (c *Collector) Reset() {
	c.set = &Set{}
}

// Missing returns unanswered question IDs in presentation order.
func (c *Collector) Missing() []string {
	return c.set.Missing(c.catalog)
}

// Progress reports how much of the catalog has been answered.
func (c *Collector) Progress() Progress {
	return ProgressOf(c.catalog, c.set)
}
