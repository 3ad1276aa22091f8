package format

import (
	"fmt"
	"strings"
	"time"
)

// Builders for the diagram-description blocks embedded in formatter
// output. The blocks are plain text in mermaid syntax, rendered to inline
// vector graphics client-side; labels are sanitized so user content can
// never break out of the diagram grammar.

var mermaidLabelScrubber = strings.NewReplacer(
	`"`, "",
	"'", "",
	";", ",",
	"\n", " ",
	"\r", " ",
	"{", "(",
	"}", ")",
	"[", "(",
	"]", ")",
	"|", "/",
	"#", "",
	"`", "",
)

// sanitizeLabel makes arbitrary text safe inside mermaid syntax.
func sanitizeLabel(s string) string {
	return strings.TrimSpace(mermaidLabelScrubber.Replace(s))
}

// =============================================================================
// Gantt
// =============================================================================

// GanttTask is one bar of a gantt chart.
type GanttTask struct {
	Section string
	Name    string
	Start   time.Time
	Days    int
}

// GanttChart builds a gantt diagram from scheduled tasks. Returns ""
// when there are no tasks, so callers can skip the block entirely.
func GanttChart(title string, tasks []GanttTask) string {
	if len(tasks) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("gantt\n")
	fmt.Fprintf(&b, "    title %s\n", sanitizeLabel(title))
	b.WriteString("    dateFormat YYYY-MM-DD\n")
	currentSection := ""
	for _, t := range tasks {
		if t.Section != "" && t.Section != currentSection {
			currentSection = t.Section
			fmt.Fprintf(&b, "    section %s\n", sanitizeLabel(t.Section))
		}
		days := t.Days
		if days < 1 {
			days = 1
		}
		fmt.Fprintf(&b, "    %s : %s, %dd\n",
			sanitizeLabel(t.Name), t.Start.Format("2006-01-02"), days)
	}
	return b.String()
}

// =============================================================================
// Pie
// =============================================================================

// PieSlice is one labeled value of a pie chart.
type PieSlice struct {
	Label string
	Value float64
}

// PieChart builds a pie diagram; zero and negative slices are dropped.
func PieChart(title string, slices []PieSlice) string {
	kept := make([]PieSlice, 0, len(slices))
	for _, s := range slices {
		if s.Value > 0 {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("pie showData\n")
	fmt.Fprintf(&b, "    title %s\n", sanitizeLabel(title))
	for _, s := range kept {
		fmt.Fprintf(&b, "    \"%s\" : %.2f\n", sanitizeLabel(s.Label), s.Value)
	}
	return b.String()
}

// =============================================================================
// Timeline
// =============================================================================

// TimelineEntry is one period of a timeline diagram.
type TimelineEntry struct {
	Period string
	Events []string
}

// TimelineChart builds a timeline diagram from dated entries.
func TimelineChart(title string, entries []TimelineEntry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("timeline\n")
	fmt.Fprintf(&b, "    title %s\n", sanitizeLabel(title))
	for _, e := range entries {
		fmt.Fprintf(&b, "    %s", sanitizeLabel(e.Period))
		for _, ev := range e.Events {
			fmt.Fprintf(&b, " : %s", sanitizeLabel(ev))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// =============================================================================
// Quadrant
// =============================================================================

// QuadrantPoint is one plotted point; X and Y are in [0,1].
type QuadrantPoint struct {
	Label string
	X     float64
	Y     float64
}

// QuadrantChart builds a quadrant diagram (x: left->right, y: bottom->top)
// with the given quadrant labels in mermaid's 1..4 order.
func QuadrantChart(title, xAxis, yAxis string, quadrants [4]string, points []QuadrantPoint) string {
	if len(points) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("quadrantChart\n")
	fmt.Fprintf(&b, "    title %s\n", sanitizeLabel(title))
	fmt.Fprintf(&b, "    x-axis %s\n", sanitizeLabel(xAxis))
	fmt.Fprintf(&b, "    y-axis %s\n", sanitizeLabel(yAxis))
	for i, q := range quadrants {
		fmt.Fprintf(&b, "    quadrant-%d %s\n", i+1, sanitizeLabel(q))
	}
	for _, p := range points {
		fmt.Fprintf(&b, "    %s: [%.2f, %.2f]\n",
			sanitizeLabel(p.Label), clamp01(p.X), clamp01(p.Y))
	}
	return b.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// =============================================================================
// Flowchart
// =============================================================================

// Flowchart builds a top-down flowchart from sequential steps.
func Flowchart(steps []string) string {
	kept := make([]string, 0, len(steps))
	for _, s := range steps {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	for i, step := range kept {
		fmt.Fprintf(&b, "    S%d[%s]\n", i, sanitizeLabel(step))
	}
	for i := 0; i+1 < len(kept); i++ {
		fmt.Fprintf(&b, "    S%d --> S%d\n", i, i+1)
	}
	return b.String()
}
