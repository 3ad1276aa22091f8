package format

import (
	"fmt"

	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) riskRegister(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.RiskRegister(raw)

	counts := map[domain.RiskBand]int{}
	for _, risk := range c.Risks {
		counts[domain.BandForScore(domain.RiskScore(risk.Probability, risk.Impact))]++
	}

	return Group(
		Section("risk-summary", "Risk Summary",
			DefList([][2]string{
				{"Total Risks", fmt.Sprintf("%d", len(c.Risks))},
				{"Overall Risk Level", c.OverallRiskLevel},
				{"Review Cycle", c.ReviewCycle},
			}),
			r.bandSummaryTable(counts, opts),
			If(opts.IncludeCharts, r.bandChart(counts)),
		),
		Section("risk-register", "Risk Register",
			r.registerTable(c.Risks, opts),
		),
		If(len(c.Categories) > 0,
			Section("risk-categories", "Risk Categories",
				List(c.Categories),
			),
		),
		Section("response-strategies", "Response Strategies",
			Para("Each risk carries one of four response strategies."),
			DefList([][2]string{
				{"Avoid", "Change the plan so the risk can no longer occur."},
				{"Reduce", "Act to lower the probability or the impact."},
				{"Transfer", "Move the impact to a third party, e.g. insurance or contract."},
				{"Accept", "Take no preventive action and monitor."},
			}),
		),
	)
}

func (r *Registry) bandSummaryTable(counts map[domain.RiskBand]int, opts domain.FormatterOptions) Node {
	bands := []domain.RiskBand{
		domain.RiskBandCritical,
		domain.RiskBandHigh,
		domain.RiskBandMedium,
		domain.RiskBandLow,
	}
	rows := make([][]Node, 0, len(bands))
	for _, band := range bands {
		label := Node(Text(string(band)))
		if opts.IncludeIndicators {
			label = Indicator(band)
		}
		rows = append(rows, []Node{label, Text(fmt.Sprintf("%d", counts[band]))})
	}
	return TableNodes([]string{"Severity", "Count"}, rows)
}

func (r *Registry) bandChart(counts map[domain.RiskBand]int) Node {
	slices := make([]PieSlice, 0, len(counts))
	for _, band := range []domain.RiskBand{
		domain.RiskBandCritical,
		domain.RiskBandHigh,
		domain.RiskBandMedium,
		domain.RiskBandLow,
	} {
		slices = append(slices, PieSlice{Label: string(band), Value: float64(counts[band])})
	}
	code := PieChart("Risks by Severity", slices)
	if code == "" {
		return nil
	}
	return Mermaid(code)
}

func (r *Registry) registerTable(risks []domain.RegisterRisk, opts domain.FormatterOptions) Node {
	rows := make([][]Node, 0, len(risks))
	for _, risk := range risks {
		score := domain.RiskScore(risk.Probability, risk.Impact)
		band := domain.BandForScore(score)
		severity := Node(Text(fmt.Sprintf("%d (%s)", score, band)))
		if opts.IncludeIndicators {
			severity = Group(Indicator(band), Text(fmt.Sprintf(" %d", score)))
		}
		rows = append(rows, []Node{
			Text(risk.ID),
			Text(risk.Category),
			Text(risk.Description),
			Text(risk.Probability),
			Text(risk.Impact),
			severity,
			Text(risk.Response),
			Text(risk.Mitigation),
			Text(risk.Owner),
			Text(risk.Status),
		})
	}
	return TableNodes([]string{
		"ID", "Category", "Description", "Probability", "Impact",
		"Score", "Response", "Mitigation", "Owner", "Status",
	}, rows)
}
