package scoring

// DefaultRecommendationRules returns the career-fit decision table.
// Rules are evaluated in order and the first match wins.
func DefaultRecommendationRules() []Rule[Recommendation] {
	return []Rule[Recommendation]{
		{
			Name: "strong-fit",
			When: func(s Scores) bool {
				return s.Overall >= 75 && s.Psychometric >= 70 && s.Technical >= 60
			},
			Then: RecommendYes,
		},
		{
			Name: "potential-fit",
			When: func(s Scores) bool {
				return s.Overall >= 60 || (s.Psychometric >= 70 && s.Technical >= 40)
			},
			Then: RecommendMaybe,
		},
		{
			Name: "poor-fit",
			When: Always,
			Then: RecommendNo,
		},
	}
}

// Recommend returns the first matching outcome of rules, or RecommendNo when
// no rule matches.
func Recommend(rules []Rule[Recommendation], s Scores) Recommendation {
	if r, ok := FirstMatch(rules, s); ok {
		return r
	}
	return RecommendNo
}
