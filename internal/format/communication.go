package format

import (
	"strings"

	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) communicationPlan(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.CommunicationPlan(raw)

	return Group(
		Section("communication-objectives", "Communication Objectives",
			OrderedList(c.Objectives),
		),
		Section("stakeholder-analysis", "Stakeholder Analysis",
			r.commStakeholderTable(c.Stakeholders),
			If(opts.IncludeCharts, r.stakeholderQuadrant(c.Stakeholders)),
		),
		Section("communication-matrix", "Communication Matrix",
			r.communicationMatrix(c.Stakeholders),
		),
		If(len(c.Methods) > 0,
			Section("communication-methods", "Communication Methods",
				List(c.Methods),
			),
		),
		Section("escalation-path", "Escalation Path",
			OrderedList(c.EscalationPath),
		),
		If(len(c.KeyMessages) > 0,
			Section("key-messages", "Key Messages",
				List(c.KeyMessages),
			),
		),
	)
}

func (r *Registry) commStakeholderTable(stakeholders []domain.CommunicationStakeholder) Node {
	rows := make([][]string, 0, len(stakeholders))
	for _, s := range stakeholders {
		rows = append(rows, []string{
			s.Name, s.Role, titleCase(s.Interest), titleCase(s.Influence), engagementStrategy(s),
		})
	}
	return Table([]string{"Stakeholder", "Role", "Interest", "Influence", "Engagement"}, rows)
}

func (r *Registry) communicationMatrix(stakeholders []domain.CommunicationStakeholder) Node {
	rows := make([][]string, 0, len(stakeholders))
	for _, s := range stakeholders {
		rows = append(rows, []string{s.Name, s.Method, s.Frequency})
	}
	return Table([]string{"Stakeholder", "Method", "Frequency"}, rows)
}

// stakeholderQuadrant plots stakeholders on the standard interest/influence
// grid that drives the engagement strategy.
func (r *Registry) stakeholderQuadrant(stakeholders []domain.CommunicationStakeholder) Node {
	points := make([]QuadrantPoint, 0, len(stakeholders))
	for i, s := range stakeholders {
		// Nudge coincident points apart so labels do not overlap.
		jitter := 0.04 * float64(i%3)
		points = append(points, QuadrantPoint{
			Label: s.Name,
			X:     levelScore(s.Interest) + jitter,
			Y:     levelScore(s.Influence) + jitter,
		})
	}
	code := QuadrantChart("Stakeholder Map", "Low Interest --> High Interest", "Low Influence --> High Influence",
		[4]string{"Manage Closely", "Keep Satisfied", "Monitor", "Keep Informed"}, points)
	if code == "" {
		return nil
	}
	return Mermaid(code)
}

func levelScore(level string) float64 {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return 0.2
	case "high":
		return 0.8
	default:
		return 0.5
	}
}

func engagementStrategy(s domain.CommunicationStakeholder) string {
	highInterest := levelScore(s.Interest) > 0.5
	highInfluence := levelScore(s.Influence) > 0.5
	switch {
	case highInterest && highInfluence:
		return "Manage closely"
	case highInfluence:
		return "Keep satisfied"
	case highInterest:
		return "Keep informed"
	default:
		return "Monitor"
	}
}
