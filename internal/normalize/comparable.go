package normalize

import "github.com/draftdeck/draftdeck/internal/domain"

// ComparableProjects normalizes a raw payload into a canonical comparable
// projects analysis.
func (n *Normalizer) ComparableProjects(raw any) *domain.ComparableProjectsContent {
	d := n.docFromRaw(raw)

	c := &domain.ComparableProjectsContent{
		Projects: normalizeComparables(d.maps("projects", "comparableProjects", "comparables", "caseStudies")),
		KeyInsights: withDefaults(
			d.strings("keyInsights", "insights", "findings"),
			[]string{"TBD: Insights to be drawn once comparable projects are identified"},
		),
		Recommendations: nonNil(d.strings("recommendations", "recommendedActions")),
	}

	if len(c.Projects) == 0 {
		c.Projects = []domain.ComparableProject{{
			Name:           "TBD: Comparable project to be identified",
			Organization:   "TBD",
			Year:           "TBD",
			Budget:         "TBD",
			Duration:       "TBD",
			Outcome:        tbd("Outcome"),
			SuccessFactors: []string{},
			LessonsLearned: []string{},
		}}
	}

	return c
}

// normalizeComparables maps comparable-project records onto the canonical
// shape.
func normalizeComparables(items []doc) []domain.ComparableProject {
	out := make([]domain.ComparableProject, 0, len(items))
	for _, item := range items {
		out = append(out, domain.ComparableProject{
			Name:           withDefault(item.str("name", "project", "title"), "TBD"),
			Organization:   withDefault(item.str("organization", "company", "client"), "TBD"),
			Year:           withDefault(item.str("year", "date", "period"), "TBD"),
			Budget:         withDefault(item.str("budget", "cost", "value"), "TBD"),
			Duration:       withDefault(item.str("duration", "timeline", "length"), "TBD"),
			Outcome:        withDefault(item.str("outcome", "result", "status"), "TBD"),
			SuccessFactors: nonNil(item.strings("successFactors", "successes", "whatWorked")),
			LessonsLearned: nonNil(item.strings("lessonsLearned", "lessons", "failures", "whatFailed")),
		})
	}
	return out
}
