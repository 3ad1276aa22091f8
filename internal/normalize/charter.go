package normalize

import "github.com/draftdeck/draftdeck/internal/domain"

// defaultBusinessObjectives fill an empty charter so reviewers see worked
// examples rather than a blank section.
var defaultBusinessObjectives = []string{
	"TBD: Increase operational efficiency by a measurable percentage",
	"TBD: Deliver the solution within the approved budget and timeline",
	"TBD: Achieve stakeholder satisfaction targets post-delivery",
	"TBD: Establish a foundation for future capability growth",
}

// Charter normalizes a raw payload into a canonical project charter.
func (n *Normalizer) Charter(raw any) *domain.CharterContent {
	d := n.docFromRaw(raw)

	c := &domain.CharterContent{
		ExecutiveSummary: withDefault(
			d.str("executiveSummary", "summary", "overview"),
			tbd("Executive summary"),
		),
		VisionStatement: withDefault(
			d.str("visionStatement", "vision", "mission"),
			tbd("Vision statement"),
		),
		BusinessObjectives: withDefaults(
			d.strings("businessObjectives", "objectives", "goals"),
			defaultBusinessObjectives,
		),
		SuccessCriteria: withDefaults(
			d.strings("successCriteria", "successFactors", "kpis"),
			[]string{"TBD: Success criteria to be agreed with the project board"},
		),
		Deliverables: nonNil(d.strings("deliverables", "outputs", "products")),
		Assumptions:  nonNil(d.strings("assumptions")),
		Constraints:  nonNil(d.strings("constraints", "limitations")),
		Budget: withDefault(
			d.str("budget", "estimatedBudget", "totalBudget"),
			"TBD",
		),
		ApprovalRequirements: withDefaults(
			d.strings("approvalRequirements", "approvals", "signOff"),
			[]string{"Project sponsor approval", "Project board sign-off"},
		),
	}

	scope := d.sub("scope", "projectScope")
	c.Scope = domain.ScopeDefinition{
		InScope:    nonNil(scope.strings("inScope", "included", "in")),
		OutOfScope: nonNil(scope.strings("outOfScope", "excluded", "out", "exclusions")),
	}
	// Flat legacy shape: inScope/outOfScope at the top level.
	if len(c.Scope.InScope) == 0 {
		c.Scope.InScope = nonNil(d.strings("inScope"))
	}
	if len(c.Scope.OutOfScope) == 0 {
		c.Scope.OutOfScope = nonNil(d.strings("outOfScope", "exclusions"))
	}

	c.Stakeholders = normalizeStakeholders(d.maps("stakeholders", "keyStakeholders"))
	c.Milestones = normalizeMilestones(d, "milestones", "keyMilestones", "timeline")
	c.Risks = normalizeRiskItems(d.maps("risks", "keyRisks", "initialRisks"))

	return c
}

// normalizeStakeholders maps heterogeneous stakeholder records onto the
// canonical shape.
func normalizeStakeholders(items []doc) []domain.Stakeholder {
	out := make([]domain.Stakeholder, 0, len(items))
	for _, item := range items {
		out = append(out, domain.Stakeholder{
			Name:     withDefault(item.str("name", "stakeholder", "title"), "TBD"),
			Role:     withDefault(item.str("role", "position", "responsibility"), "TBD"),
			Interest: withDefault(item.str("interest", "stake", "involvement"), "TBD"),
		})
	}
	return out
}

// normalizeMilestones accepts both record lists and plain string lists.
func normalizeMilestones(d doc, keys ...string) []domain.Milestone {
	items := d.list(keys...)
	out := make([]domain.Milestone, 0, len(items))
	for _, item := range items {
		if m, ok := asMap(item); ok {
			md := newDoc(m)
			out = append(out, domain.Milestone{
				Name:        withDefault(md.str("name", "milestone", "title"), "TBD"),
				Description: md.str("description", "details"),
				Date:        withDefault(md.str("date", "targetDate", "dueDate", "deadline"), "TBD"),
			})
			continue
		}
		if s := asString(item); s != "" {
			out = append(out, domain.Milestone{Name: s, Date: "TBD"})
		}
	}
	return out
}

// normalizeRiskItems maps loose risk records onto the charter-level shape.
func normalizeRiskItems(items []doc) []domain.RiskItem {
	out := make([]domain.RiskItem, 0, len(items))
	for _, item := range items {
		out = append(out, domain.RiskItem{
			Description: withDefault(item.str("description", "risk", "name", "title"), "TBD"),
			Probability: withDefault(item.str("probability", "likelihood"), "Medium"),
			Impact:      withDefault(item.str("impact", "severity", "consequence"), "Medium"),
			Mitigation:  withDefault(item.str("mitigation", "response", "mitigationStrategy"), tbd("Mitigation")),
		})
	}
	return out
}
