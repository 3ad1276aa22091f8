package normalize

import "github.com/draftdeck/draftdeck/internal/domain"

// ProjectPlan normalizes a raw payload into a canonical project plan.
// Payloads with no recoverable phases receive the five-phase default
// skeleton rather than an empty schedule.
func (n *Normalizer) ProjectPlan(raw any) *domain.ProjectPlanContent {
	d := n.docFromRaw(raw)

	// The plan envelope sometimes arrives as {plan: {...}}.
	if inner := d.sub("plan", "projectPlan"); len(inner) > 0 {
		d = inner
	}

	c := &domain.ProjectPlanContent{
		Overview: withDefault(
			d.str("overview", "summary", "description", "approach"),
			tbd("Plan overview"),
		),
		Phases:       normalizePhases(d.list("phases", "stages", "workPackages")),
		Dependencies: nonNil(d.strings("dependencies", "externalDependencies")),
		CriticalPath: nonNil(d.strings("criticalPath", "criticalActivities")),
		Resources:    nonNil(d.strings("resources", "resourcePlan", "team")),
	}

	if len(c.Phases) == 0 {
		c.Phases = defaultPhases()
	}

	return c
}

// normalizePhases accepts record lists and plain string lists.
func normalizePhases(items []any) []domain.Phase {
	out := make([]domain.Phase, 0, len(items))
	for _, item := range items {
		if m, ok := asMap(item); ok {
			pd := newDoc(m)
			out = append(out, domain.Phase{
				Name:         withDefault(pd.str("name", "phase", "title"), "TBD"),
				Description:  withDefault(pd.str("description", "details", "summary"), tbd("Phase description")),
				Duration:     withDefault(pd.str("duration", "length", "timeframe"), "TBD"),
				Tasks:        nonNil(pd.strings("tasks", "activities", "workItems")),
				Deliverables: nonNil(pd.strings("deliverables", "outputs")),
				Milestones:   nonNil(pd.strings("milestones", "keyMilestones")),
			})
			continue
		}
		if s := asString(item); s != "" {
			out = append(out, domain.Phase{
				Name:         s,
				Description:  tbd("Phase description"),
				Duration:     "TBD",
				Tasks:        []string{},
				Deliverables: []string{},
				Milestones:   []string{},
			})
		}
	}
	return out
}

// defaultPhases is the five-phase generic delivery skeleton.
func defaultPhases() []domain.Phase {
	phases := []struct{ name, description string }{
		{"Initiation", "Confirm objectives, governance and funding; produce the project charter"},
		{"Planning", "Detailed scheduling, resourcing and risk planning"},
		{"Execution", "Build and deliver the agreed scope"},
		{"Monitoring & Control", "Track progress against plan; manage change and risk"},
		{"Closure", "Handover, lessons learned and formal close-out"},
	}
	out := make([]domain.Phase, 0, len(phases))
	for _, p := range phases {
		out = append(out, domain.Phase{
			Name:         p.name,
			Description:  "TBD: " + p.description,
			Duration:     "TBD",
			Tasks:        []string{},
			Deliverables: []string{},
			Milestones:   []string{},
		})
	}
	return out
}
