package scoring

const (
	baseConfidence = 85
	minConfidence  = 60

	// sectionGapLimit is the psychometric/technical difference above which
	// confidence drops by sectionGapPenalty.
	sectionGapLimit   = 30
	sectionGapPenalty = 15

	// wiscarSpreadLimit is the WISCAR max−min spread above which confidence
	// drops by wiscarSpreadPenalty.
	wiscarSpreadLimit   = 40
	wiscarSpreadPenalty = 10
)

// Overall blends the section scores and WISCAR composite with w.
func Overall(psychometric, technical, wiscarComposite int, w Weights) int {
	return round(float64(psychometric)*w.Psychometric +
		float64(technical)*w.Technical +
		float64(wiscarComposite)*w.Wiscar)
}

// Confidence estimates result reliability in [60, 85] from the disagreement
// between sections and across WISCAR dimensions.
func Confidence(psychometric, technical int, wiscar WiscarScores) int {
	c := baseConfidence
	gap := psychometric - technical
	if gap < 0 {
		gap = -gap
	}
	if gap > sectionGapLimit {
		c -= sectionGapPenalty
	}
	if wiscar.Spread() > wiscarSpreadLimit {
		c -= wiscarSpreadPenalty
	}
	return max(minConfidence, c)
}
