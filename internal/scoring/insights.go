package scoring

// InsightRules generates the explanation sentences. Each ladder contributes
// its first matching sentence; every matching bonus rule adds one more.
type InsightRules struct {
	Psychometric []Rule[string]
	Technical    []Rule[string]
	Bonus        []Rule[string]
}

// DefaultInsightRules returns the growth-management insight ladders.
func DefaultInsightRules() InsightRules {
	return InsightRules{
		Psychometric: []Rule[string]{
			{
				Name: "psych-strong",
				When: func(s Scores) bool { return s.Psychometric >= 80 },
				Then: "You show strong psychological alignment with growth management roles.",
			},
			{
				Name: "psych-moderate",
				When: func(s Scores) bool { return s.Psychometric >= 60 },
				Then: "You have moderate personality fit but may need to develop growth mindset.",
			},
			{
				Name: "psych-weak",
				When: Always,
				Then: "Consider whether the analytical and experimental nature of growth work matches your interests.",
			},
		},
		Technical: []Rule[string]{
			{
				Name: "tech-strong",
				When: func(s Scores) bool { return s.Technical >= 80 },
				Then: "Your technical knowledge is strong - you're ready for advanced growth topics.",
			},
			{
				Name: "tech-moderate",
				When: func(s Scores) bool { return s.Technical >= 60 },
				Then: "You have solid foundations but need to strengthen your analytics skills.",
			},
			{
				Name: "tech-weak",
				When: Always,
				Then: "Focus on building fundamental knowledge in growth metrics and analytics tools.",
			},
		},
		Bonus: []Rule[string]{
			{
				Name: "skill-gap",
				When: func(s Scores) bool { return s.Wiscar[DimensionSkill] < 60 },
				Then: "Gaining hands-on experience with analytics tools will significantly boost your readiness.",
			},
			{
				Name: "motivated-and-aligned",
				When: func(s Scores) bool {
					return s.Wiscar[DimensionWill] >= 80 && s.Wiscar[DimensionRealWorld] >= 80
				},
				Then: "Your motivation and career alignment are excellent - persistence will be key to success.",
			},
		},
	}
}

// Apply returns the insights for s in evaluation order.
func (r InsightRules) Apply(s Scores) []string {
	out := []string{}
	if v, ok := FirstMatch(r.Psychometric, s); ok {
		out = append(out, v)
	}
	if v, ok := FirstMatch(r.Technical, s); ok {
		out = append(out, v)
	}
	return append(out, AllMatches(r.Bonus, s)...)
}

// NextStepRules lists, per recommendation, rules whose step groups are all
// emitted in order when they match.
type NextStepRules map[Recommendation][]Rule[[]string]

// DefaultNextStepRules returns the growth-management next-step checklists.
func DefaultNextStepRules() NextStepRules {
	return NextStepRules{
		RecommendYes: {
			{
				Name: "get-started",
				When: Always,
				Then: []string{
					"Start with foundational courses in growth marketing and analytics",
					"Practice with tools like Google Analytics and basic SQL",
					"Build a portfolio of growth experiments and case studies",
					"Network with growth professionals and join communities",
				},
			},
		},
		RecommendMaybe: {
			{
				Name: "technical-foundation",
				When: func(s Scores) bool { return s.Technical < 60 },
				Then: []string{
					"Strengthen your technical foundation with analytics courses",
					"Complete hands-on projects with data analysis tools",
				},
			},
			{
				Name: "build-interest",
				When: func(s Scores) bool { return s.Psychometric < 70 },
				Then: []string{
					"Explore growth case studies to build interest and understanding",
					"Consider shadowing a growth professional or taking an internship",
				},
			},
			{
				Name: "reassess",
				When: Always,
				Then: []string{"Reassess after 3-6 months of focused learning"},
			},
		},
		RecommendNo: {
			{
				Name: "alternatives",
				When: Always,
				Then: []string{
					"Explore adjacent roles like Product Marketing or Customer Success",
					"Consider your core interests and alternative career paths",
					"If still interested, start with basic marketing and analytics courses",
				},
			},
		},
	}
}

// Apply returns the next steps for s.Recommendation.
func (r NextStepRules) Apply(s Scores) []string {
	out := []string{}
	for _, group := range AllMatches(r[s.Recommendation], s) {
		out = append(out, group...)
	}
	return out
}
