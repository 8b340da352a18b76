package scoring

import "github.com/abhisek/growthfit/internal/catalog"

// pointsPerQuestion is the maximum a single answered question contributes.
const pointsPerQuestion = 5

// Answers is read access to a response set.
type Answers interface {
	Value(questionID string) (int, bool)
}

// SectionScore converts the answers to questions into a 0–100 percentage.
//
// A rating-scale answer earns its value out of 5. A choice answer earns 5 out
// of 5 when it matches key and 0 otherwise, including questions the key does
// not cover. Unanswered questions count toward neither total, and a section
// with nothing answered scores 0.
func SectionScore(questions []catalog.Question, answers Answers, key AnswerKey) int {
	earned, possible := 0, 0
	for _, q := range questions {
		v, ok := answers.Value(q.ID)
		if !ok {
			continue
		}
		switch {
		case q.Type == catalog.TypeRatingScale:
			earned += v
			possible += pointsPerQuestion
		case q.Type.IsChoice():
			if correct, keyed := key[q.ID]; keyed && v == correct {
				earned += pointsPerQuestion
			}
			possible += pointsPerQuestion
		}
	}
	if possible == 0 {
		return 0
	}
	return round(float64(earned) / float64(possible) * 100)
}
