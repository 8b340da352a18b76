package scoring

// DimensionScores scores every dimension in m independently.
//
// A keyed question scores 100 when answered correctly and partialCredit
// otherwise. Any other question is a rating scored as value/5. A dimension
// takes the score of its last answered question in mapping order, and a
// dimension with no answers scores 0.
func DimensionScores(m DimensionMapping, answers Answers, key AnswerKey, partialCredit int) WiscarScores {
	scores := make(WiscarScores, len(m))
	for _, src := range m {
		var score float64
		for _, id := range src.QuestionIDs {
			v, ok := answers.Value(id)
			if !ok {
				continue
			}
			correct, keyed := key[id]
			switch {
			case keyed && v == correct:
				score = 100
			case keyed:
				score = float64(partialCredit)
			default:
				score = float64(v) / pointsPerQuestion * 100
			}
		}
		scores[src.Dimension] = round(score)
	}
	return scores
}

// Composite returns the rounded mean of all dimension scores, or 0 when
// there are none.
func (w WiscarScores) Composite() int {
	if len(w) == 0 {
		return 0
	}
	sum := 0
	for _, v := range w {
		sum += v
	}
	return round(float64(sum) / float64(len(w)))
}

// Spread returns the highest minus the lowest dimension score.
func (w WiscarScores) Spread() int {
	if len(w) == 0 {
		return 0
	}
	first := true
	lo, hi := 0, 0
	for _, v := range w {
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return hi - lo
}
