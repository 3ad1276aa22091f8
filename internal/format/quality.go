package format

import (
	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) qualityManagement(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.QualityManagement(raw)

	return Group(
		Section("quality-approach", "Quality Approach",
			Paraf("This plan defines how quality is specified, assured, and controlled for %s.",
				meta.ProjectName),
			If(len(c.Standards) > 0, Group(
				Sub("Applicable Standards"),
				List(c.Standards),
			)),
		),
		Section("quality-objectives", "Quality Objectives",
			OrderedList(c.Objectives),
		),
		Section("quality-criteria", "Quality Criteria",
			r.criteriaTable(c.Criteria),
		),
		Section("assurance-control", "Assurance and Control",
			Sub("Assurance Activities"),
			List(c.AssuranceActivities),
			Sub("Control Activities"),
			List(c.ControlActivities),
		),
		If(len(c.Roles) > 0,
			Section("quality-roles", "Quality Roles",
				r.roleTable(c.Roles),
			),
		),
		If(len(c.Tools) > 0 || len(c.Metrics) > 0,
			Section("tools-metrics", "Tools and Metrics",
				If(len(c.Tools) > 0, Group(Sub("Tools"), List(c.Tools))),
				If(len(c.Metrics) > 0, Group(Sub("Metrics"), List(c.Metrics))),
			),
		),
	)
}

func (r *Registry) criteriaTable(criteria []domain.QualityCriterion) Node {
	rows := make([][]string, 0, len(criteria))
	for _, crit := range criteria {
		rows = append(rows, []string{crit.Criterion, crit.Target, crit.Measurement})
	}
	return Table([]string{"Criterion", "Target", "Measurement"}, rows)
}
