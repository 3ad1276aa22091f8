package normalize

import "github.com/draftdeck/draftdeck/internal/domain"

// BusinessCase normalizes a raw payload into a canonical business case.
func (n *Normalizer) BusinessCase(raw any) *domain.BusinessCaseContent {
	d := n.docFromRaw(raw)

	c := &domain.BusinessCaseContent{
		ExecutiveSummary: withDefault(
			d.str("executiveSummary", "summary", "overview"),
			tbd("Executive summary"),
		),
		ProblemStatement: withDefault(
			d.str("problemStatement", "problem", "businessNeed", "background"),
			tbd("Problem statement"),
		),
		ProposedSolution: withDefault(
			d.str("proposedSolution", "solution", "recommendation_detail"),
			tbd("Proposed solution"),
		),
		StrategicContext: withDefault(
			d.str("strategicContext", "strategicAlignment", "strategy"),
			tbd("Strategic context"),
		),
		ExpectedBenefits: withDefaults(
			d.strings("expectedBenefits", "benefits"),
			[]string{"TBD: Benefits to be quantified during initiation"},
		),
		// Historical spelling "expectedDisBenefits" folds onto the same key.
		ExpectedDisbenefits: nonNil(d.strings("expectedDisbenefits", "disbenefits")),
		Risks:               normalizeRiskItems(d.maps("risks", "keyRisks", "majorRisks")),
		Timescale: withDefault(
			d.str("timescale", "timeline", "duration"),
			"TBD",
		),
		Recommendation: withDefault(
			d.str("recommendation", "recommendedOption", "conclusion"),
			tbd("Recommendation"),
		),
	}

	costs := d.sub("costs", "costBreakdown", "estimatedCosts")
	c.Costs = domain.CostBreakdown{
		Development: withDefault(costs.str("development", "developmentCosts", "capex", "initial"), "TBD"),
		Operational: withDefault(costs.str("operational", "operationalCosts", "opex", "running"), "TBD"),
		Maintenance: withDefault(costs.str("maintenance", "maintenanceCosts", "support"), "TBD"),
		Total:       withDefault(costs.str("total", "totalCost", "totalCosts"), "TBD"),
	}

	roi := d.sub("roi", "roiAnalysis", "returnOnInvestment", "investmentAppraisal")
	c.ROI = domain.ROIAnalysis{
		PaybackPeriod: withDefault(roi.str("paybackPeriod", "payback"), "TBD"),
		ROI:           withDefault(roi.str("roi", "returnOnInvestment", "expectedROI"), "TBD"),
		NPV:           withDefault(roi.str("npv", "netPresentValue"), "TBD"),
	}

	c.Options = normalizeBusinessOptions(d.maps("options", "optionsAppraisal", "alternatives"))
	if len(c.Options) == 0 {
		c.Options = defaultBusinessOptions()
	}

	return c
}

// normalizeBusinessOptions maps option records onto the canonical shape.
func normalizeBusinessOptions(items []doc) []domain.BusinessOption {
	out := make([]domain.BusinessOption, 0, len(items))
	for _, item := range items {
		out = append(out, domain.BusinessOption{
			Name:        withDefault(item.str("name", "option", "title"), "TBD"),
			Description: withDefault(item.str("description", "details", "summary"), tbd("Option")),
			Costs:       withDefault(item.str("costs", "cost"), "TBD"),
			Benefits:    withDefault(item.str("benefits", "benefit"), "TBD"),
			Risks:       withDefault(item.str("risks", "risk"), "TBD"),
		})
	}
	return out
}

// defaultBusinessOptions provides the standard three-option appraisal
// skeleton when the payload carries none.
func defaultBusinessOptions() []domain.BusinessOption {
	return []domain.BusinessOption{
		{
			Name:        "Do Nothing",
			Description: "Continue with current arrangements; the stated problem persists",
			Costs:       "TBD",
			Benefits:    "None beyond avoided investment",
			Risks:       "Problem impact compounds over time",
		},
		{
			Name:        "Do Minimum",
			Description: "TBD: Minimal intervention addressing only the most acute issues",
			Costs:       "TBD",
			Benefits:    "TBD",
			Risks:       "TBD",
		},
		{
			Name:        "Do Something (Recommended)",
			Description: "TBD: Full solution as described in this business case",
			Costs:       "TBD",
			Benefits:    "TBD",
			Risks:       "TBD",
		},
	}
}
