package format

import (
	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) comparableProjects(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.ComparableProjects(raw)

	sections := []Node{
		Section("comparison-overview", "Comparison Overview",
			Paraf("This analysis reviews %s against %s to surface transferable lessons.",
				meta.ProjectName, plural(len(c.Projects), "comparable project")),
			r.comparableTable(c.Projects),
		),
	}

	for _, p := range c.Projects {
		sections = append(sections,
			Section("comparable-"+slugify(p.Name), p.Name,
				DefList([][2]string{
					{"Organization", p.Organization},
					{"Year", p.Year},
					{"Budget", p.Budget},
					{"Duration", p.Duration},
					{"Outcome", p.Outcome},
				}),
				If(len(p.SuccessFactors) > 0, Group(
					Sub("Success Factors"),
					List(p.SuccessFactors),
				)),
				If(len(p.LessonsLearned) > 0, Group(
					Sub("Lessons Learned"),
					List(p.LessonsLearned),
				)),
			),
		)
	}

	sections = append(sections,
		Section("key-insights", "Key Insights",
			List(c.KeyInsights),
		),
		Section("comparison-recommendations", "Recommendations",
			OrderedList(c.Recommendations),
		),
	)
	return Group(sections...)
}

func (r *Registry) comparableTable(projects []domain.ComparableProject) Node {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{p.Name, p.Organization, p.Year, p.Budget, p.Duration, p.Outcome})
	}
	return Table([]string{"Project", "Organization", "Year", "Budget", "Duration", "Outcome"}, rows)
}
