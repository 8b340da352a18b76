package scoring

// Rule pairs a predicate over Scores with an outcome.
type Rule[T any] struct {
	Name string
	When func(s Scores) bool
	Then T
}

// Always matches every input. Use it as the last rule of a ladder.
func Always(Scores) bool { return true }

// FirstMatch evaluates rules in order and returns the outcome of the first
// rule whose predicate holds.
func FirstMatch[T any](rules []Rule[T], s Scores) (T, bool) {
	for _, r := range rules {
		if r.When(s) {
			return r.Then, true
		}
	}
	var zero T
	return zero, false
}

// AllMatches returns the outcomes of every matching rule, in rule order.
func AllMatches[T any](rules []Rule[T], s Scores) []T {
	var out []T
	for _, r := range rules {
		if r.When(s) {
			out = append(out, r.Then)
		}
	}
	return out
}
