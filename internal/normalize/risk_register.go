package normalize

import (
	"fmt"

	"github.com/draftdeck/draftdeck/internal/domain"
)

// RiskRegister normalizes a raw payload into a canonical risk register.
func (n *Normalizer) RiskRegister(raw any) *domain.RiskRegisterContent {
	d := n.docFromRaw(raw)

	c := &domain.RiskRegisterContent{
		Risks: normalizeRegisterRisks(d.list("risks", "riskRegister", "register", "entries")),
		OverallRiskLevel: withDefault(
			d.str("overallRiskLevel", "overallRisk", "riskProfile"),
			"TBD",
		),
		ReviewCycle: withDefault(
			d.str("reviewCycle", "reviewFrequency"),
			"Monthly",
		),
	}

	c.Categories = nonNil(d.strings("categories", "riskCategories"))
	if len(c.Categories) == 0 {
		c.Categories = categoriesFromRisks(c.Risks)
	}

	if len(c.Risks) == 0 {
		c.Risks = defaultRegisterRisks()
	}

	return c
}

// normalizeRegisterRisks accepts record lists and plain string lists.
func normalizeRegisterRisks(items []any) []domain.RegisterRisk {
	out := make([]domain.RegisterRisk, 0, len(items))
	for i, item := range items {
		id := fmt.Sprintf("R%03d", i+1)
		if m, ok := asMap(item); ok {
			rd := newDoc(m)
			out = append(out, domain.RegisterRisk{
				ID:          withDefault(rd.str("id", "riskId", "ref"), id),
				Category:    withDefault(rd.str("category", "type", "area"), "General"),
				Description: withDefault(rd.str("description", "risk", "name", "title"), "TBD"),
				Probability: withDefault(rd.str("probability", "likelihood"), "Medium"),
				Impact:      withDefault(rd.str("impact", "severity", "consequence"), "Medium"),
				Response:    withDefault(rd.str("response", "riskResponse", "strategy"), "reduce"),
				Mitigation:  withDefault(rd.str("mitigation", "mitigationPlan", "actions"), tbd("Mitigation")),
				Owner:       withDefault(rd.str("owner", "riskOwner", "assignee"), "TBD"),
				Status:      withDefault(rd.str("status", "state"), "Open"),
			})
			continue
		}
		if s := asString(item); s != "" {
			out = append(out, domain.RegisterRisk{
				ID:          id,
				Category:    "General",
				Description: s,
				Probability: "Medium",
				Impact:      "Medium",
				Response:    "reduce",
				Mitigation:  tbd("Mitigation"),
				Owner:       "TBD",
				Status:      "Open",
			})
		}
	}
	return out
}

// categoriesFromRisks derives the category summary from the entries,
// preserving first-seen order.
func categoriesFromRisks(risks []domain.RegisterRisk) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range risks {
		if r.Category != "" && !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}

// defaultRegisterRisks gives an empty register a worked skeleton covering
// the usual categories.
func defaultRegisterRisks() []domain.RegisterRisk {
	categories := []struct {
		category    string
		description string
	}{
		{"Schedule", "TBD: Delivery timeline slips beyond agreed tolerances"},
		{"Budget", "TBD: Costs exceed the approved budget"},
		{"Resource", "TBD: Key personnel unavailable when required"},
		{"Technical", "TBD: Chosen technology fails to meet requirements"},
		{"External", "TBD: Third-party or regulatory changes affect scope"},
	}
	out := make([]domain.RegisterRisk, 0, len(categories))
	for i, c := range categories {
		out = append(out, domain.RegisterRisk{
			ID:          fmt.Sprintf("R%03d", i+1),
			Category:    c.category,
			Description: c.description,
			Probability: "Medium",
			Impact:      "Medium",
			Response:    "reduce",
			Mitigation:  tbd("Mitigation"),
			Owner:       "TBD",
			Status:      "Open",
		})
	}
	return out
}
