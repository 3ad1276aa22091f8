package normalize

import "github.com/draftdeck/draftdeck/internal/domain"

// CommunicationPlan normalizes a raw payload into a canonical
// communication plan.
func (n *Normalizer) CommunicationPlan(raw any) *domain.CommunicationPlanContent {
	d := n.docFromRaw(raw)

	c := &domain.CommunicationPlanContent{
		Objectives: withDefaults(
			d.strings("objectives", "communicationObjectives", "goals"),
			[]string{"TBD: Keep all stakeholders informed at the agreed cadence"},
		),
		Stakeholders: normalizeCommStakeholders(d.maps("stakeholders", "audience", "stakeholderAnalysis")),
		Methods: withDefaults(
			d.strings("methods", "communicationMethods", "channels"),
			[]string{"Status report", "Steering committee meeting", "Team stand-up"},
		),
		EscalationPath: withDefaults(
			d.strings("escalationPath", "escalation", "escalationRoute"),
			[]string{"Project Manager", "Project Board", "Executive Sponsor"},
		),
		KeyMessages: nonNil(d.strings("keyMessages", "messages")),
	}

	if len(c.Stakeholders) == 0 {
		c.Stakeholders = []domain.CommunicationStakeholder{
			{Name: "Project Sponsor", Role: "TBD", Interest: "high", Influence: "high", Method: "Steering committee", Frequency: "Monthly"},
			{Name: "Delivery Team", Role: "TBD", Interest: "high", Influence: "medium", Method: "Stand-up", Frequency: "Daily"},
			{Name: "End Users", Role: "TBD", Interest: "medium", Influence: "low", Method: "Newsletter", Frequency: "Monthly"},
		}
	}

	return c
}

// normalizeCommStakeholders maps stakeholder records onto the canonical
// shape, defaulting interest/influence to medium so quadrant placement
// always succeeds.
func normalizeCommStakeholders(items []doc) []domain.CommunicationStakeholder {
	out := make([]domain.CommunicationStakeholder, 0, len(items))
	for _, item := range items {
		out = append(out, domain.CommunicationStakeholder{
			Name:      withDefault(item.str("name", "stakeholder", "group"), "TBD"),
			Role:      withDefault(item.str("role", "position"), "TBD"),
			Interest:  withDefault(item.str("interest", "interestLevel"), "medium"),
			Influence: withDefault(item.str("influence", "influenceLevel", "power"), "medium"),
			Method:    withDefault(item.str("method", "communicationMethod", "channel"), "TBD"),
			Frequency: withDefault(item.str("frequency", "cadence"), "TBD"),
		})
	}
	return out
}
