package format

import (
	"strings"

	"github.com/draftdeck/draftdeck/internal/domain"
)

func (r *Registry) projectPlan(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node {
	c := r.norm.ProjectPlan(raw)

	names := make([]string, 0, len(c.Phases))
	for _, p := range c.Phases {
		names = append(names, p.Name)
	}
	windows := PartitionPhases(meta.StartDate, meta.EndDate, names)

	sections := []Node{
		Section("plan-overview", "Plan Overview",
			Para(c.Overview),
			DefList([][2]string{
				{"Project Duration", DurationText(meta.StartDate, meta.EndDate)},
				{"Number of Phases", plural(len(c.Phases), "phase")},
				{"Methodology", titleCase(meta.Methodology)},
			}),
		),
		Section("phase-schedule", "Phase Schedule",
			r.phaseScheduleTable(c.Phases, windows),
			If(opts.IncludeCharts, r.phaseGantt(c.Phases, windows)),
		),
	}

	for i, phase := range c.Phases {
		sections = append(sections, r.phaseDetail(i, phase, windows))
	}

	sections = append(sections,
		If(len(c.Dependencies) > 0,
			Section("dependencies", "Dependencies",
				List(c.Dependencies),
			),
		),
		If(len(c.CriticalPath) > 0,
			Section("critical-path", "Critical Path",
				If(opts.IncludeCharts, r.criticalPathChart(c.CriticalPath)),
				OrderedList(c.CriticalPath),
			),
		),
		If(len(c.Resources) > 0,
			Section("resources", "Resources",
				List(c.Resources),
			),
		),
	)

	return Group(sections...)
}

func (r *Registry) phaseScheduleTable(phases []domain.Phase, windows []PhaseWindow) Node {
	rows := make([][]string, 0, len(phases))
	for i, p := range phases {
		window, quarter := "TBD", "TBD"
		if i < len(windows) {
			w := windows[i]
			window = w.Start.Format("2 Jan 2006") + " to " + w.End.Format("2 Jan 2006")
			quarter = w.Quarter
		}
		duration := p.Duration
		if duration == "" {
			duration = "TBD"
		}
		rows = append(rows, []string{p.Name, duration, window, quarter})
	}
	return Table([]string{"Phase", "Duration", "Window", "Quarter"}, rows)
}

func (r *Registry) phaseGantt(phases []domain.Phase, windows []PhaseWindow) Node {
	if len(windows) == 0 {
		return nil
	}
	tasks := make([]GanttTask, 0, len(windows))
	for _, w := range windows {
		tasks = append(tasks, GanttTask{
			Name:  w.Name,
			Start: w.Start,
			Days:  int(w.End.Sub(w.Start).Hours() / 24),
		})
	}
	code := GanttChart("Project Phases", tasks)
	if code == "" {
		return nil
	}
	return Mermaid(code)
}

func (r *Registry) phaseDetail(index int, phase domain.Phase, windows []PhaseWindow) Node {
	var schedule Node
	if index < len(windows) {
		w := windows[index]
		schedule = Paraf("Scheduled %s to %s (%s).",
			w.Start.Format("2 January 2006"), w.End.Format("2 January 2006"), w.Quarter)
	}
	return Section("phase-"+slugify(phase.Name), "Phase: "+phase.Name,
		Para(phase.Description),
		schedule,
		If(len(phase.Tasks) > 0, Group(Sub("Tasks"), List(phase.Tasks))),
		If(len(phase.Deliverables) > 0, Group(Sub("Deliverables"), List(phase.Deliverables))),
		If(len(phase.Milestones) > 0, Group(Sub("Milestones"), List(phase.Milestones))),
	)
}

func (r *Registry) criticalPathChart(steps []string) Node {
	code := Flowchart(steps)
	if code == "" {
		return nil
	}
	return Mermaid(code)
}

func titleCase(s string) string {
	if s == "" {
		return "TBD"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// slugify derives a stable lowercase section id fragment from a title.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
