package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{name: "iso", value: "2026-03-15", ok: true},
		{name: "iso with time", value: "2026-03-15T10:00:00Z", ok: true},
		{name: "long form", value: "15 March 2026", ok: true},
		{name: "us form", value: "March 15, 2026", ok: true},
		{name: "month only", value: "March 2026", ok: true},
		{name: "empty", value: "", ok: false},
		{name: "free text", value: "sometime next year", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseFlexibleDate(tt.value)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestQuarterFromDate(t *testing.T) {
	assert.Equal(t, "Q1 2026", QuarterFromDate("2026-02-10"))
	assert.Equal(t, "Q4 2025", QuarterFromDate("2025-12-31"))
	assert.Equal(t, "TBD", QuarterFromDate("no date"))
}

func TestMilestoneDate(t *testing.T) {
	assert.Equal(t, "1 April 2026", MilestoneDate("2026-01-01", 3, "full"))
	assert.Equal(t, "2026-04-01", MilestoneDate("2026-01-01", 3, "iso"))
	assert.Equal(t, "TBD", MilestoneDate("", 3, "full"))
}

func TestSprintWindow(t *testing.T) {
	t.Run("first sprint starts on project start", func(t *testing.T) {
		start, end := SprintWindow("2026-01-05", 1, 14)
		assert.Equal(t, "5 Jan 2026", start)
		assert.Equal(t, "18 Jan 2026", end)
	})

	t.Run("later sprints offset by full sprints", func(t *testing.T) {
		start, end := SprintWindow("2026-01-05", 3, 14)
		assert.Equal(t, "2 Feb 2026", start)
		assert.Equal(t, "15 Feb 2026", end)
	})

	t.Run("degrades without a start date", func(t *testing.T) {
		start, end := SprintWindow("", 1, 14)
		assert.Equal(t, "TBD", start)
		assert.Equal(t, "TBD", end)
	})
}

func TestPartitionPhases(t *testing.T) {
	t.Run("splits span evenly", func(t *testing.T) {
		phases := PartitionPhases("2026-01-01", "2026-07-01", []string{"Initiate", "Deliver", "Close"})
		require.Len(t, phases, 3)
		assert.Equal(t, "Initiate", phases[0].Name)
		assert.Equal(t, phases[0].End, phases[1].Start)
		assert.Equal(t, "2026-07-01", phases[2].End.Format("2006-01-02"))
		assert.Equal(t, "Q1 2026", phases[0].Quarter)
	})

	t.Run("nil on unusable dates", func(t *testing.T) {
		assert.Nil(t, PartitionPhases("", "2026-07-01", []string{"A"}))
		assert.Nil(t, PartitionPhases("2026-07-01", "2026-01-01", []string{"A"}))
	})
}

func TestDurationText(t *testing.T) {
	assert.Equal(t, "6 months", DurationText("2026-01-01", "2026-07-01"))
	assert.Equal(t, "3 weeks", DurationText("2026-01-01", "2026-01-22"))
	assert.Equal(t, "2.0 years", DurationText("2024-01-01", "2026-01-01"))
	assert.Equal(t, "TBD", DurationText("", "2026-07-01"))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
		ok    bool
	}{
		{name: "currency with separators", value: "$500,000", want: 500000, ok: true},
		{name: "k suffix", value: "250k", want: 250000, ok: true},
		{name: "m suffix", value: "£1.5M", want: 1500000, ok: true},
		{name: "plain number", value: "1200", want: 1200, ok: true},
		{name: "no number", value: "to be confirmed", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBudgetThresholds(t *testing.T) {
	warning, critical := BudgetThresholds("$500,000")
	assert.Equal(t, "$400,000", warning)
	assert.Equal(t, "$500,000", critical)

	warning, critical = BudgetThresholds("not yet agreed")
	assert.Equal(t, "80% of approved budget", warning)
	assert.Equal(t, "100% of approved budget", critical)
}

func TestParseMonths(t *testing.T) {
	tests := []struct {
		name     string
		timeline string
		want     int
		ok       bool
	}{
		{name: "months", timeline: "12 months", want: 12, ok: true},
		{name: "years", timeline: "2 years", want: 24, ok: true},
		{name: "weeks", timeline: "8 weeks", want: 2, ok: true},
		{name: "short weeks round up", timeline: "2 weeks", want: 1, ok: true},
		{name: "days", timeline: "90 days", want: 3, ok: true},
		{name: "hyphenated", timeline: "6-month programme", want: 6, ok: true},
		{name: "unparsable", timeline: "ongoing", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMonths(tt.timeline)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDelayThresholds(t *testing.T) {
	warning, critical := DelayThresholds("12 months")
	assert.Equal(t, "4 weeks", warning)
	assert.Equal(t, "12 weeks", critical)

	warning, critical = DelayThresholds("flexible")
	assert.Equal(t, "10% schedule slip", warning)
	assert.Equal(t, "25% schedule slip", critical)
}
