package catalog

func agreementScale() *Scale {
	return &Scale{Min: 1, Max: 5, Labels: []string{"Strongly Disagree", "Disagree", "Neutral", "Agree", "Strongly Agree"}}
}

// seedQuestions is the growth-management assessment in presentation order.
func seedQuestions() []Question {
	return []Question{
		// Psychometric: interest and personality
		{
			ID:          "psych_1",
			Type:        TypeRatingScale,
			Category:    CategoryPsychometric,
			Subcategory: "interest",
			Prompt:      "I enjoy analyzing user behavior patterns and finding optimization opportunities.",
			Scale:       agreementScale(),
		},
		{
			ID:          "psych_2",
			Type:        TypeRatingScale,
			Category:    CategoryPsychometric,
			Subcategory: "personality",
			Prompt:      "I am comfortable making decisions with incomplete information.",
			Scale:       agreementScale(),
		},
		{
			ID:          "psych_3",
			Type:        TypeSituational,
			Category:    CategoryPsychometric,
			Subcategory: "problem-solving",
			Prompt:      "Your app's user retention dropped by 15% last month. What would be your first approach?",
			Options: []string{
				"Immediately run user surveys to understand why people are leaving",
				"Analyze user behavior data to identify drop-off points",
				"A/B test different onboarding flows",
				"Review competitor strategies for retention",
			},
		},
		{
			ID:          "psych_4",
			Type:        TypeRatingScale,
			Category:    CategoryPsychometric,
			Subcategory: "motivation",
			Prompt:      "I persist through challenges even when progress is slow.",
			Scale:       agreementScale(),
		},
		{
			ID:          "psych_5",
			Type:        TypeRatingScale,
			Category:    CategoryPsychometric,
			Subcategory: "curiosity",
			Prompt:      "I actively seek to understand why certain marketing campaigns perform better than others.",
			Scale:       agreementScale(),
		},

		// Technical aptitude
		{
			ID:          "tech_1",
			Type:        TypeMultipleChoice,
			Category:    CategoryTechnical,
			Subcategory: "metrics",
			Prompt:      "What does LTV (Customer Lifetime Value) measure?",
			Options: []string{
				"The total revenue a customer generates during their relationship with your company",
				"The cost to acquire a new customer",
				"The percentage of customers who continue using your product",
				"The time it takes for a customer to make their first purchase",
			},
		},
		{
			ID:          "tech_2",
			Type:        TypeMultipleChoice,
			Category:    CategoryTechnical,
			Subcategory: "analytics",
			Prompt:      "In A/B testing, what is statistical significance?",
			Options: []string{
				"When the difference between variants is unlikely due to chance",
				"When you have enough users in your test",
				"When the test has been running for at least a week",
				"When both variants perform better than the control",
			},
		},
		{
			ID:          "tech_3",
			Type:        TypeSituational,
			Category:    CategoryTechnical,
			Subcategory: "funnel-analysis",
			Prompt:      "You notice a 30% drop-off between sign-up and first purchase. Which metric would help you understand this best?",
			Options: []string{
				"Time between sign-up and first purchase attempt",
				"Number of product page views before purchase",
				"Customer acquisition cost",
				"Overall conversion rate",
			},
		},
		{
			ID:          "tech_4",
			Type:        TypeMultipleChoice,
			Category:    CategoryTechnical,
			Subcategory: "tools",
			Prompt:      "Which tool would you primarily use to track user behavior flows?",
			Options: []string{
				"Google Analytics",
				"Mixpanel or Amplitude",
				"Excel spreadsheets",
				"Customer surveys",
			},
		},
		{
			ID:          "tech_5",
			Type:        TypeRatingScale,
			Category:    CategoryTechnical,
			Subcategory: "data-comfort",
			Prompt:      "I am comfortable working with SQL queries and data analysis.",
			Scale:       &Scale{Min: 1, Max: 5, Labels: []string{"Not at all", "Slightly", "Moderately", "Very", "Extremely"}},
		},

		// WISCAR framework
		{
			ID:          "wiscar_w1",
			Type:        TypeRatingScale,
			Category:    CategoryWiscar,
			Subcategory: "will",
			Prompt:      "I finish whatever I begin, even when it becomes challenging.",
			Scale:       agreementScale(),
		},
		{
			ID:          "wiscar_i1",
			Type:        TypeRatingScale,
			Category:    CategoryWiscar,
			Subcategory: "interest",
			Prompt:      "I find user psychology and behavior fascinating.",
			Scale:       agreementScale(),
		},
		{
			ID:          "wiscar_s1",
			Type:        TypeRatingScale,
			Category:    CategoryWiscar,
			Subcategory: "skill",
			Prompt:      "I have experience with marketing analytics tools (Google Analytics, Facebook Ads, etc.).",
			Scale:       &Scale{Min: 1, Max: 5, Labels: []string{"No experience", "Basic", "Intermediate", "Advanced", "Expert"}},
		},
		{
			ID:          "wiscar_c1",
			Type:        TypeSituational,
			Category:    CategoryWiscar,
			Subcategory: "cognitive",
			Prompt:      "If Pattern A = 2, 4, 8, 16 and Pattern B = 3, 6, 12, 24, what comes next in Pattern C = 5, 10, 20, ?",
			Options:     []string{"25", "30", "40", "50"},
		},
		{
			ID:          "wiscar_a1",
			Type:        TypeRatingScale,
			Category:    CategoryWiscar,
			Subcategory: "ability",
			Prompt:      "I believe I can master new skills through effort and practice.",
			Scale:       agreementScale(),
		},
		{
			ID:          "wiscar_r1",
			Type:        TypeRatingScale,
			Category:    CategoryWiscar,
			Subcategory: "realWorld",
			Prompt:      "A career in Lifecycle & Growth Management aligns with my professional goals.",
			Scale:       agreementScale(),
		},
	}
}

func seedSections() []SectionInfo {
	return []SectionInfo{
		{
			Category:    CategoryPsychometric,
			Title:       "Psychological Fit Assessment",
			Description: "Evaluating your personality traits and interests for growth management",
			Icon:        "🧠",
			Expect: []string{
				"Personality and interest assessment",
				"Situational judgment scenarios",
				"Motivation and curiosity evaluation",
			},
		},
		{
			Category:    CategoryTechnical,
			Title:       "Technical Readiness Evaluation",
			Description: "Testing your knowledge of growth metrics and analytical thinking",
			Icon:        "📊",
			Expect: []string{
				"Growth metrics knowledge",
				"Analytics and A/B testing concepts",
				"Tool familiarity assessment",
			},
		},
		{
			Category:    CategoryWiscar,
			Title:       "WISCAR Framework Analysis",
			Description: "Comprehensive evaluation across six key dimensions",
			Icon:        "🎯",
			Expect: []string{
				"Will, Interest, Skill evaluation",
				"Cognitive readiness testing",
				"Career alignment assessment",
			},
		},
	}
}
