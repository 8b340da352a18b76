package scoring

// answerMap is a minimal Answers for tests.
type answerMap map[string]int

func (m answerMap) Value(id string) (int, bool) {
	v, ok := m[id]
	return v, ok
}

// perfectAnswers answers every rating with 5 and every keyed choice
// correctly. psych_3 has no key and is left unanswered.
func perfectAnswers() answerMap {
	return answerMap{
		"psych_1": 5, "psych_2": 5, "psych_4": 5, "psych_5": 5,
		"tech_1": 0, "tech_2": 0, "tech_3": 0, "tech_4": 1, "tech_5": 5,
		"wiscar_w1": 5, "wiscar_i1": 5, "wiscar_s1": 5, "wiscar_c1": 2, "wiscar_a1": 5, "wiscar_r1": 5,
	}
}

func uniformWiscar(v int) WiscarScores {
	w := make(WiscarScores, 6)
	for _, d := range AllDimensions() {
		w[d] = v
	}
	return w
}
