package format

import (
	"strings"

	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) backlog(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.Backlog(raw)

	sprintDays := 14
	if weeks, ok := parseWeeks(c.SprintLength); ok {
		sprintDays = weeks * 7
	} else if months, ok := ParseMonths(c.SprintLength); ok {
		sprintDays = months * 30
	}

	return Group(
		Section("backlog-overview", "Backlog Overview",
			DefList([][2]string{
				{"Total Items", plural(len(c.Items), "item")},
				{"Epics", strings.Join(c.Epics, ", ")},
				{"Velocity Target", c.VelocityTarget},
				{"Sprint Length", c.SprintLength},
			}),
			If(opts.IncludeCharts, r.priorityChart(c.Items)),
		),
		Section("backlog-items", "Backlog Items",
			r.backlogTable(c.Items, opts),
		),
		Section("sprint-outlook", "Sprint Outlook",
			r.sprintTable(c.Items, meta, sprintDays),
		),
		r.epicSections(c),
	)
}

var priorityBands = map[string]domain.RiskBand{
	"critical": domain.RiskBandCritical,
	"high":     domain.RiskBandHigh,
	"medium":   domain.RiskBandMedium,
	"low":      domain.RiskBandLow,
}

func priorityBand(priority string) domain.RiskBand {
	if band, ok := priorityBands[strings.ToLower(strings.TrimSpace(priority))]; ok {
		return band
	}
	return domain.RiskBandMedium
}

func (r *Registry) backlogTable(items []domain.BacklogItem, opts domain.FormatterOptions) Node {
	rows := make([][]Node, 0, len(items))
	for _, item := range items {
		priority := Node(Text(item.Priority))
		if opts.IncludeIndicators {
			priority = Indicator(priorityBand(item.Priority))
		}
		rows = append(rows, []Node{
			Text(item.ID),
			Text(item.Epic),
			Text(item.Story),
			priority,
			Text(item.StoryPoints),
			Text(item.Sprint),
			Text(item.Status),
		})
	}
	return TableNodes([]string{"ID", "Epic", "User Story", "Priority", "Points", "Sprint", "Status"}, rows)
}

func (r *Registry) priorityChart(items []domain.BacklogItem) Node {
	counts := map[domain.RiskBand]int{}
	for _, item := range items {
		counts[priorityBand(item.Priority)]++
	}
	slices := make([]PieSlice, 0, len(counts))
	for _, band := range []domain.RiskBand{
		domain.RiskBandCritical, domain.RiskBandHigh,
		domain.RiskBandMedium, domain.RiskBandLow,
	} {
		slices = append(slices, PieSlice{Label: string(band), Value: float64(counts[band])})
	}
	code := PieChart("Items by Priority", slices)
	if code == "" {
		return nil
	}
	return Mermaid(code)
}

// sprintTable projects the first few sprint windows from the schedule
// start so the backlog reads as a plan, not just a list.
func (r *Registry) sprintTable(items []domain.BacklogItem, meta domain.Metadata, sprintDays int) Node {
	sprints := map[string][]string{}
	order := []string{}
	for _, item := range items {
		sprint := item.Sprint
		if sprint == "" || sprint == "TBD" {
			sprint = "Unscheduled"
		}
		if _, seen := sprints[sprint]; !seen {
			order = append(order, sprint)
		}
		sprints[sprint] = append(sprints[sprint], item.ID)
	}

	rows := make([][]string, 0, len(order))
	for i, sprint := range order {
		start, end := SprintWindow(scheduleStart(meta), i+1, sprintDays)
		if sprint == "Unscheduled" {
			start, end = "TBD", "TBD"
		}
		rows = append(rows, []string{sprint, start, end, strings.Join(sprints[sprint], ", ")})
	}
	return Table([]string{"Sprint", "Start", "End", "Items"}, rows)
}

func (r *Registry) epicSections(c *domain.BacklogContent) Node {
	byEpic := map[string][]domain.BacklogItem{}
	for _, item := range c.Items {
		byEpic[item.Epic] = append(byEpic[item.Epic], item)
	}

	sections := make([]Node, 0, len(c.Epics))
	for _, epic := range c.Epics {
		items := byEpic[epic]
		if len(items) == 0 {
			continue
		}
		children := make([]Node, 0, len(items)*3)
		for _, item := range items {
			children = append(children,
				Sub(item.ID+": "+TruncateText(item.Story, 80)),
				Para(item.Story),
				If(len(item.AcceptanceCriteria) > 0, Group(
					Para("Acceptance criteria:"),
					List(item.AcceptanceCriteria),
				)),
			)
		}
		sections = append(sections, Section("epic-"+slugify(epic), "Epic: "+epic, children...))
	}
	return Group(sections...)
}

func parseWeeks(s string) (int, bool) {
	s = strings.ToLower(s)
	if !strings.Contains(s, "week") {
		return 0, false
	}
	n := 0
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			seen = true
		} else if seen {
			break
		}
	}
	if !seen || n == 0 {
		return 0, false
	}
	return n, true
}
