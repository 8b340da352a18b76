package scoring

// Dimension names one WISCAR readiness dimension.
type Dimension string

const (
	DimensionWill      Dimension = "will"
	DimensionInterest  Dimension = "interest"
	DimensionSkill     Dimension = "skill"
	DimensionCognitive Dimension = "cognitive"
	DimensionAbility   Dimension = "ability"
	DimensionRealWorld Dimension = "realWorld"
)

// AllDimensions returns the WISCAR dimensions in display order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionWill,
		DimensionInterest,
		DimensionSkill,
		DimensionCognitive,
		DimensionAbility,
		DimensionRealWorld,
	}
}

// DimensionDisplayName returns a human-readable name for a dimension.
func DimensionDisplayName(d Dimension) string {
	switch d {
	case DimensionWill:
		return "Will"
	case DimensionInterest:
		return "Interest"
	case DimensionSkill:
		return "Skill"
	case DimensionCognitive:
		return "Cognitive Readiness"
	case DimensionAbility:
		return "Ability to Learn"
	case DimensionRealWorld:
		return "Real-World Alignment"
	default:
		return string(d)
	}
}

// WiscarScores maps each configured dimension to a 0–100 score.
type WiscarScores map[Dimension]int

// Recommendation is the three-way career-fit verdict.
type Recommendation string

const (
	RecommendYes   Recommendation = "yes"
	RecommendMaybe Recommendation = "maybe"
	RecommendNo    Recommendation = "no"
)

// Headline returns the results-page sentence for r.
func (r Recommendation) Headline() string {
	switch r {
	case RecommendYes:
		return "Yes, Lifecycle & Growth Management is a great fit for you!"
	case RecommendMaybe:
		return "Maybe - You have potential but need some development"
	case RecommendNo:
		return "Consider alternative career paths that better match your profile"
	default:
		return string(r)
	}
}

// CareerMatch is one ranked career path.
type CareerMatch struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Match       int    `json:"match"`
}

// Scores are the numeric outputs that the rule tables read.
type Scores struct {
	Psychometric    int
	Technical       int
	Wiscar          WiscarScores
	WiscarComposite int
	Overall         int
	Recommendation  Recommendation
}

// Result is the full output of one scoring run.
type Result struct {
	PsychometricScore int            `json:"psychometricScore"`
	TechnicalScore    int            `json:"technicalScore"`
	WiscarScores      WiscarScores   `json:"wiscarScores"`
	WiscarComposite   int            `json:"wiscarComposite"`
	OverallScore      int            `json:"overallScore"`
	Recommendation    Recommendation `json:"recommendation"`
	Confidence        int            `json:"confidence"`
	Insights          []string       `json:"insights"`
	NextSteps         []string       `json:"nextSteps"`
	CareerPaths       []CareerMatch  `json:"careerPaths"`
}
