package format

import (
	"time"

	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) charter(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.Charter(raw)

	budget := c.Budget
	if budget == "" {
		budget = meta.Budget
	}
	if budget == "" {
		budget = "TBD"
	}

	return Group(
		Section("executive-summary", "Executive Summary",
			Para(c.ExecutiveSummary),
			If(c.VisionStatement != "",
				HighlightBox("info", "Vision", Para(c.VisionStatement)),
			),
		),
		Section("business-objectives", "Business Objectives",
			OrderedList(c.BusinessObjectives),
		),
		Section("success-criteria", "Success Criteria",
			List(c.SuccessCriteria),
		),
		Section("scope", "Project Scope",
			Sub("In Scope"),
			List(c.Scope.InScope),
			Sub("Out of Scope"),
			List(c.Scope.OutOfScope),
		),
		If(len(c.Deliverables) > 0,
			Section("deliverables", "Key Deliverables",
				List(c.Deliverables),
			),
		),
		Section("stakeholders", "Stakeholders",
			r.stakeholderTable(c.Stakeholders),
		),
		Section("milestones", "Milestones",
			r.milestoneTable(c.Milestones, meta),
			If(opts.IncludeCharts, r.milestoneTimeline(c.Milestones)),
		),
		Section("charter-risks", "Initial Risk Assessment",
			r.riskItemTable(c.Risks, opts),
		),
		If(len(c.Assumptions) > 0 || len(c.Constraints) > 0,
			Section("assumptions-constraints", "Assumptions and Constraints",
				Sub("Assumptions"),
				List(c.Assumptions),
				Sub("Constraints"),
				List(c.Constraints),
			),
		),
		Section("budget-authority", "Budget and Approval",
			DefList([][2]string{
				{"Approved Budget", budget},
				{"Timeline", firstNonEmpty(meta.Timeline, "TBD")},
			}),
			If(len(c.ApprovalRequirements) > 0, Group(
				Sub("Approval Requirements"),
				List(c.ApprovalRequirements),
			)),
		),
	)
}

func (r *Registry) stakeholderTable(stakeholders []domain.Stakeholder) Node {
	rows := make([][]string, 0, len(stakeholders))
	for _, s := range stakeholders {
		rows = append(rows, []string{s.Name, s.Role, s.Interest})
	}
	return Table([]string{"Name", "Role", "Interest"}, rows)
}

func (r *Registry) milestoneTable(milestones []domain.Milestone, meta domain.Metadata) Node {
	rows := make([][]string, 0, len(milestones))
	for i, m := range milestones {
		date := m.Date
		if date == "" || date == "TBD" {
			// Evenly space undated milestones across the schedule when a
			// start date is known.
			date = MilestoneDate(meta.StartDate, (i+1)*2, "full")
		}
		rows = append(rows, []string{m.Name, m.Description, date})
	}
	return Table([]string{"Milestone", "Description", "Target Date"}, rows)
}

func (r *Registry) milestoneTimeline(milestones []domain.Milestone) Node {
	entries := make([]TimelineEntry, 0, len(milestones))
	for _, m := range milestones {
		period := m.Date
		if period == "" {
			period = "TBD"
		}
		if t, ok := ParseFlexibleDate(m.Date); ok {
			period = t.Format("Jan 2006")
		}
		entries = append(entries, TimelineEntry{Period: period, Events: []string{m.Name}})
	}
	code := TimelineChart("Milestone Timeline", entries)
	if code == "" {
		return nil
	}
	return Mermaid(code)
}

func (r *Registry) riskItemTable(risks []domain.RiskItem, opts domain.FormatterOptions) Node {
	rows := make([][]Node, 0, len(risks))
	for _, risk := range risks {
		band := domain.BandForScore(domain.RiskScore(risk.Probability, risk.Impact))
		severity := Node(Text(string(band)))
		if opts.IncludeIndicators {
			severity = Indicator(band)
		}
		rows = append(rows, []Node{
			Text(risk.Description),
			Text(risk.Probability),
			Text(risk.Impact),
			severity,
			Text(risk.Mitigation),
		})
	}
	return TableNodes([]string{"Risk", "Probability", "Impact", "Severity", "Mitigation"}, rows)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// scheduleStart resolves the schedule anchor for calculators, falling back
// to today when metadata carries no usable start date.
func scheduleStart(meta domain.Metadata) string {
	if meta.StartDate != "" {
		return meta.StartDate
	}
	return time.Now().Format("2006-01-02")
}
