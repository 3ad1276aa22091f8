package normalize

import "github.com/draftdeck/draftdeck/internal/domain"

// TechnicalLandscape normalizes a raw payload into a canonical technical
// landscape analysis.
func (n *Normalizer) TechnicalLandscape(raw any) *domain.TechnicalLandscapeContent {
	d := n.docFromRaw(raw)

	c := &domain.TechnicalLandscapeContent{
		CurrentState: withDefault(
			d.str("currentState", "currentLandscape", "asIs", "overview"),
			tbd("Current state"),
		),
		Categories: normalizeTechCategories(d.maps("categories", "technologyStack", "stack", "technologies")),
		Trends: withDefaults(
			d.strings("trends", "industryTrends", "marketTrends"),
			[]string{"TBD: Relevant industry trends to be researched"},
		),
		EmergingTechnologies: nonNil(d.strings("emergingTechnologies", "emerging", "innovations")),
		Recommendations:      nonNil(d.strings("recommendations", "recommendedActions")),
		RisksAndChallenges:   nonNil(d.strings("risksAndChallenges", "challenges", "technicalRisks")),
		FutureOutlook: withDefault(
			d.str("futureOutlook", "outlook", "futureState", "toBe"),
			tbd("Future outlook"),
		),
	}

	if len(c.Categories) == 0 {
		c.Categories = []domain.TechnologyCategory{{
			Name:         "TBD: Technology category",
			Technologies: []string{},
			Maturity:     "TBD",
		}}
	}

	return c
}

// normalizeTechCategories maps category records onto the canonical shape.
func normalizeTechCategories(items []doc) []domain.TechnologyCategory {
	out := make([]domain.TechnologyCategory, 0, len(items))
	for _, item := range items {
		out = append(out, domain.TechnologyCategory{
			Name:         withDefault(item.str("name", "category", "title"), "TBD"),
			Technologies: nonNil(item.strings("technologies", "items", "tools", "products")),
			Maturity:     withDefault(item.str("maturity", "adoptionStage", "readiness"), "TBD"),
		})
	}
	return out
}
