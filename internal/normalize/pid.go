package normalize

import "github.com/draftdeck/draftdeck/internal/domain"

// PID normalizes a raw payload into a canonical project initiation
// document.
func (n *Normalizer) PID(raw any) *domain.PIDContent {
	d := n.docFromRaw(raw)

	c := &domain.PIDContent{
		Background: withDefault(
			d.str("background", "projectBackground", "context"),
			"Project background to be defined",
		),
		Objectives: withDefaults(
			d.strings("objectives", "projectObjectives", "goals"),
			[]string{"TBD: Objectives to be agreed at initiation"},
		),
		Deliverables: nonNil(d.strings("deliverables", "products", "outputs")),
		Constraints:  nonNil(d.strings("constraints", "limitations")),
		Assumptions:  nonNil(d.strings("assumptions")),
		BusinessCaseSummary: withDefault(
			d.str("businessCaseSummary", "businessCase", "justification"),
			tbd("Business case summary"),
		),
		Organization: normalizeRoles(d.maps("organization", "organizationStructure", "projectOrganization", "roles")),
		CommunicationSummary: withDefault(
			d.str("communicationSummary", "communicationPlan", "communications"),
			tbd("Communication approach"),
		),
		QualitySummary: withDefault(
			d.str("qualitySummary", "qualityPlan", "qualityApproach"),
			tbd("Quality approach"),
		),
		TailoringApproach: withDefault(
			d.str("tailoringApproach", "tailoring"),
			tbd("Tailoring approach"),
		),
	}

	scope := d.sub("scope", "projectScope")
	c.Scope = domain.ScopeDefinition{
		InScope:    nonNil(scope.strings("inScope", "included", "in")),
		OutOfScope: nonNil(scope.strings("outOfScope", "excluded", "out", "exclusions")),
	}
	if len(c.Scope.OutOfScope) == 0 {
		c.Scope.OutOfScope = nonNil(d.strings("exclusions", "outOfScope"))
	}
	if len(c.Scope.InScope) == 0 {
		c.Scope.InScope = nonNil(d.strings("inScope"))
	}

	tol := d.sub("tolerances", "projectTolerances")
	c.Tolerances = domain.Tolerances{
		Time:     withDefault(tol.str("time", "schedule"), "+/- 2 weeks"),
		Cost:     withDefault(tol.str("cost", "budget"), "+/- 10%"),
		Scope:    withDefault(tol.str("scope"), "Agreed mandatory requirements only"),
		Risk:     withDefault(tol.str("risk"), "Escalate any risk scoring High or above"),
		Quality:  withDefault(tol.str("quality"), "As defined in quality criteria"),
		Benefits: withDefault(tol.str("benefits"), "+/- 5% of business case"),
	}

	if len(c.Organization) == 0 {
		c.Organization = defaultOrganization()
	}

	return c
}

// normalizeRoles maps role records onto the canonical shape.
func normalizeRoles(items []doc) []domain.ProjectRole {
	out := make([]domain.ProjectRole, 0, len(items))
	for _, item := range items {
		out = append(out, domain.ProjectRole{
			Role:           withDefault(item.str("role", "position", "title"), "TBD"),
			Name:           withDefault(item.str("name", "person", "assignee"), "TBD"),
			Responsibility: withDefault(item.str("responsibility", "responsibilities", "description"), "TBD"),
		})
	}
	return out
}

// defaultOrganization is the standard PRINCE2-style governance skeleton.
func defaultOrganization() []domain.ProjectRole {
	return []domain.ProjectRole{
		{Role: "Project Executive", Name: "TBD", Responsibility: "Owns the business case and chairs the project board"},
		{Role: "Senior User", Name: "TBD", Responsibility: "Represents those who will use the project's products"},
		{Role: "Senior Supplier", Name: "TBD", Responsibility: "Represents those designing and building the products"},
		{Role: "Project Manager", Name: "TBD", Responsibility: "Day-to-day management within agreed tolerances"},
	}
}
