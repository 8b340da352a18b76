package scoring

import (
	"cmp"
	"slices"
)

// CareerPath is a catalog entry for career matching. BaseMatch is the match
// percentage at an overall score of 100.
type CareerPath struct {
	Title       string
	Description string
	BaseMatch   int
}

// DefaultCareerPaths returns the growth career catalog in tie-break order.
func DefaultCareerPaths() []CareerPath {
	return []CareerPath{
		{
			Title:       "Growth Product Manager",
			Description: "Drive user growth through product experiments and data analysis",
			BaseMatch:   85,
		},
		{
			Title:       "Lifecycle Marketing Manager",
			Description: "Optimize user journeys and messaging across all touchpoints",
			BaseMatch:   80,
		},
		{
			Title:       "User Acquisition Lead",
			Description: "Manage paid and organic channels to drive sustainable growth",
			BaseMatch:   75,
		},
		{
			Title:       "Retention Analyst",
			Description: "Reduce churn through behavioral insights and interventions",
			BaseMatch:   70,
		},
		{
			Title:       "Growth Engineer",
			Description: "Build technical solutions to scale growth operations",
			BaseMatch:   65,
		},
	}
}

// MatchCareers scales each path's base match by overall/100, caps it at
// maxMatch, and ranks the paths by match, highest first. Ties keep catalog
// order.
func MatchCareers(paths []CareerPath, overall, maxMatch int) []CareerMatch {
	out := make([]CareerMatch, 0, len(paths))
	for _, p := range paths {
		out = append(out, CareerMatch{
			Title:       p.Title,
			Description: p.Description,
			Match:       min(maxMatch, round(float64(p.BaseMatch)*(float64(overall)/100))),
		})
	}
	slices.SortStableFunc(out, func(a, b CareerMatch) int {
		return cmp.Compare(b.Match, a.Match)
	})
	return out
}
