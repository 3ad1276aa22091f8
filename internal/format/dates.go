package format

import (
	"fmt"
	"strings"
	"time"
)

// Date and schedule calculators. All are pure functions of their inputs
// and degrade to "TBD" when dates are missing or unparsable.

// placeholderDate is returned by every calculator that cannot resolve a
// real date.
const placeholderDate = "TBD"

// dateLayouts covers the formats project dates arrive in.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"02/01/2006",
	"01/02/2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01",
	"January 2006",
}

// ParseFlexibleDate parses a free-text date, trying the known layouts in
// order.
func ParseFlexibleDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// QuarterFromDate returns the calendar quarter of a date, e.g. "Q2 2026".
func QuarterFromDate(value string) string {
	t, ok := ParseFlexibleDate(value)
	if !ok {
		return placeholderDate
	}
	quarter := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", quarter, t.Year())
}

// MilestoneDate computes a date monthsOffset months after the project
// start. Style "full" yields "2 April 2024"; anything else yields the
// short ISO form.
func MilestoneDate(start string, monthsOffset int, style string) string {
	t, ok := ParseFlexibleDate(start)
	if !ok {
		return placeholderDate
	}
	m := t.AddDate(0, monthsOffset, 0)
	if style == "full" {
		return m.Format("2 January 2006")
	}
	return m.Format("2006-01-02")
}

// SprintWindow computes the start and end dates of a numbered sprint
// given the project start and sprint length in days. Sprint numbers start
// at 1.
func SprintWindow(start string, sprintNumber, sprintDays int) (string, string) {
	t, ok := ParseFlexibleDate(start)
	if !ok || sprintNumber < 1 || sprintDays < 1 {
		return placeholderDate, placeholderDate
	}
	sprintStart := t.AddDate(0, 0, (sprintNumber-1)*sprintDays)
	sprintEnd := sprintStart.AddDate(0, 0, sprintDays-1)
	return sprintStart.Format("2 Jan 2006"), sprintEnd.Format("2 Jan 2006")
}

// PhaseWindow is one partition of the project span.
type PhaseWindow struct {
	Name    string
	Start   time.Time
	End     time.Time
	Quarter string
}

// PartitionPhases splits the project span into len(names) roughly-equal
// named windows with quarter labels. Returns nil when either date is
// unusable so callers fall back to unscheduled rendering.
func PartitionPhases(start, end string, names []string) []PhaseWindow {
	s, okS := ParseFlexibleDate(start)
	e, okE := ParseFlexibleDate(end)
	if !okS || !okE || !e.After(s) || len(names) == 0 {
		return nil
	}
	total := e.Sub(s)
	slice := total / time.Duration(len(names))
	out := make([]PhaseWindow, 0, len(names))
	for i, name := range names {
		ps := s.Add(slice * time.Duration(i))
		pe := s.Add(slice * time.Duration(i+1))
		if i == len(names)-1 {
			pe = e
		}
		out = append(out, PhaseWindow{
			Name:    name,
			Start:   ps,
			End:     pe,
			Quarter: QuarterFromDate(ps.Format("2006-01-02")),
		})
	}
	return out
}

// DurationText renders the project span in human terms ("6 months",
// "3 weeks"), "TBD" when either date is unusable.
func DurationText(start, end string) string {
	s, okS := ParseFlexibleDate(start)
	e, okE := ParseFlexibleDate(end)
	if !okS || !okE || !e.After(s) {
		return placeholderDate
	}
	days := int(e.Sub(s).Hours() / 24)
	switch {
	case days >= 365:
		years := float64(days) / 365.25
		if years == float64(int(years)) {
			return fmt.Sprintf("%d years", int(years))
		}
		return fmt.Sprintf("%.1f years", years)
	case days >= 60:
		return fmt.Sprintf("%d months", days/30)
	case days >= 14:
		return fmt.Sprintf("%d weeks", days/7)
	case days == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", days)
	}
}
