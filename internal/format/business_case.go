package format

import (
	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) businessCase(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.BusinessCase(raw)

	return Group(
		Section("executive-summary", "Executive Summary",
			Para(c.ExecutiveSummary),
		),
		Section("strategic-context", "Strategic Context",
			Para(c.StrategicContext),
			Sub("Problem Statement"),
			Para(c.ProblemStatement),
			Sub("Proposed Solution"),
			Para(c.ProposedSolution),
		),
		Section("options-appraisal", "Options Appraisal",
			r.businessOptionTable(c.Options),
		),
		Section("benefits", "Expected Benefits",
			List(c.ExpectedBenefits),
			If(len(c.ExpectedDisbenefits) > 0, Group(
				Sub("Expected Dis-benefits"),
				List(c.ExpectedDisbenefits),
			)),
		),
		Section("costs", "Cost Analysis",
			r.costTable(c.Costs),
			If(opts.IncludeCharts, r.costChart(c.Costs)),
		),
		Section("roi", "Return on Investment",
			DefList([][2]string{
				{"Payback Period", c.ROI.PaybackPeriod},
				{"Return on Investment", c.ROI.ROI},
				{"Net Present Value", c.ROI.NPV},
			}),
		),
		If(len(c.Risks) > 0,
			Section("major-risks", "Major Risks",
				r.riskItemTable(c.Risks, opts),
			),
		),
		Section("timescale", "Timescale",
			Para(firstNonEmpty(c.Timescale, meta.Timeline, "TBD")),
		),
		Section("recommendation", "Recommendation",
			HighlightBox("success", "Recommended Course of Action",
				Para(c.Recommendation),
			),
		),
	)
}

func (r *Registry) businessOptionTable(options []domain.BusinessOption) Node {
	rows := make([][]string, 0, len(options))
	for _, o := range options {
		rows = append(rows, []string{o.Name, o.Description, o.Costs, o.Benefits, o.Risks})
	}
	return Table([]string{"Option", "Description", "Costs", "Benefits", "Risks"}, rows)
}

// costTable lists the cost lines with each line's share of the stated
// total. The share column degrades per row when an amount is free text
// the parser cannot read.
func (r *Registry) costTable(costs domain.CostBreakdown) Node {
	total, totalOK := ParseAmount(costs.Total)

	line := func(label, amount string) []string {
		share := "TBD"
		if v, ok := ParseAmount(amount); ok && totalOK && total > 0 {
			share = Percentage(v, total)
		}
		return []string{label, amount, share}
	}

	rows := [][]string{
		line("Development", costs.Development),
		line("Operational", costs.Operational),
		line("Maintenance", costs.Maintenance),
		{"Total", costs.Total, "100%"},
	}
	if !totalOK {
		rows[len(rows)-1][2] = "TBD"
	}
	return Table([]string{"Cost Category", "Amount", "Share of Total"}, rows)
}

func (r *Registry) costChart(costs domain.CostBreakdown) Node {
	slices := make([]PieSlice, 0, 3)
	for _, entry := range []struct {
		label  string
		amount string
	}{
		{"Development", costs.Development},
		{"Operational", costs.Operational},
		{"Maintenance", costs.Maintenance},
	} {
		if v, ok := ParseAmount(entry.amount); ok {
			slices = append(slices, PieSlice{Label: entry.label, Value: v})
		}
	}
	code := PieChart("Cost Breakdown", slices)
	if code == "" {
		return nil
	}
	return Mermaid(code)
}
