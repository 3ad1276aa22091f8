package format

import (
	"strings"

	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) technicalLandscape(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.TechnicalLandscape(raw)

	return Group(
		Section("current-state", "Current State",
			Para(c.CurrentState),
		),
		Section("technology-categories", "Technology Landscape",
			r.categoryTable(c.Categories),
			If(opts.IncludeCharts, r.maturityChart(c.Categories)),
		),
		Section("trends", "Industry Trends",
			List(c.Trends),
			If(len(c.EmergingTechnologies) > 0, Group(
				Sub("Emerging Technologies"),
				List(c.EmergingTechnologies),
			)),
		),
		If(len(c.RisksAndChallenges) > 0,
			Section("technical-risks", "Risks and Challenges",
				List(c.RisksAndChallenges),
			),
		),
		Section("landscape-recommendations", "Recommendations",
			OrderedList(c.Recommendations),
		),
		Section("future-outlook", "Future Outlook",
			Para(c.FutureOutlook),
		),
	)
}

func (r *Registry) categoryTable(categories []domain.TechnologyCategory) Node {
	rows := make([][]string, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, []string{cat.Name, strings.Join(cat.Technologies, ", "), cat.Maturity})
	}
	return Table([]string{"Category", "Technologies", "Maturity"}, rows)
}

// maturityChart plots categories on an adoption/value quadrant from their
// stated maturity. Free-text maturity maps onto the adoption axis; value
// spreads the points so labels stay readable.
func (r *Registry) maturityChart(categories []domain.TechnologyCategory) Node {
	points := make([]QuadrantPoint, 0, len(categories))
	for i, cat := range categories {
		points = append(points, QuadrantPoint{
			Label: cat.Name,
			X:     maturityScore(cat.Maturity),
			Y:     0.25 + 0.5*float64(i%3)/2,
		})
	}
	code := QuadrantChart("Technology Maturity", "Emerging --> Established", "Lower Value --> Higher Value",
		[4]string{"Strategic Bets", "Core Platform", "Watch List", "Utilities"}, points)
	if code == "" {
		return nil
	}
	return Mermaid(code)
}

func maturityScore(maturity string) float64 {
	switch strings.ToLower(strings.TrimSpace(maturity)) {
	case "emerging", "experimental", "incubating":
		return 0.2
	case "growing", "adopting", "trial":
		return 0.45
	case "mature", "established", "adopt":
		return 0.75
	case "legacy", "declining", "hold":
		return 0.9
	default:
		return 0.5
	}
}
