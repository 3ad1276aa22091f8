package format

import (
	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) pid(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.PID(raw)

	return Group(
		Section("background", "Project Background",
			Para(c.Background),
		),
		Section("project-definition", "Project Definition",
			Sub("Objectives"),
			OrderedList(c.Objectives),
			Sub("In Scope"),
			List(c.Scope.InScope),
			Sub("Out of Scope"),
			List(c.Scope.OutOfScope),
			If(len(c.Deliverables) > 0, Group(
				Sub("Deliverables"),
				List(c.Deliverables),
			)),
		),
		If(len(c.Assumptions) > 0 || len(c.Constraints) > 0,
			Section("assumptions-constraints", "Assumptions and Constraints",
				Sub("Assumptions"),
				List(c.Assumptions),
				Sub("Constraints"),
				List(c.Constraints),
			),
		),
		Section("business-case-summary", "Business Case Summary",
			Para(c.BusinessCaseSummary),
			DefList([][2]string{
				{"Budget", firstNonEmpty(meta.Budget, "TBD")},
				{"Timeline", firstNonEmpty(meta.Timeline, "TBD")},
			}),
		),
		Section("organization", "Project Organization",
			r.roleTable(c.Organization),
		),
		Section("tolerances", "Project Tolerances",
			Para("Deviation beyond any tolerance below requires escalation to the project board."),
			Table([]string{"Dimension", "Tolerance"}, [][]string{
				{"Time", c.Tolerances.Time},
				{"Cost", c.Tolerances.Cost},
				{"Scope", c.Tolerances.Scope},
				{"Risk", c.Tolerances.Risk},
				{"Quality", c.Tolerances.Quality},
				{"Benefits", c.Tolerances.Benefits},
			}),
		),
		Section("management-approach", "Management Approach",
			Sub("Communication"),
			Para(c.CommunicationSummary),
			Sub("Quality"),
			Para(c.QualitySummary),
			If(c.TailoringApproach != "", Group(
				Sub("Tailoring"),
				Para(c.TailoringApproach),
			)),
		),
	)
}

func (r *Registry) roleTable(roles []domain.ProjectRole) Node {
	rows := make([][]string, 0, len(roles))
	for _, role := range roles {
		rows = append(rows, []string{role.Role, role.Name, role.Responsibility})
	}
	return Table([]string{"Role", "Assigned To", "Responsibility"}, rows)
}
