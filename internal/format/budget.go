package format

import (
	"regexp"
	"strconv"
	"strings"
)

// Budget and delay threshold calculators. Budgets and timelines arrive as
// free text ("$500,000", "12 months"); numeric extraction is best-effort
// and falls back to fixed percentage bands on failure.

var amountPattern = regexp.MustCompile(`([\d][\d,]*\.?\d*)\s*([kKmM])?`)

// ParseAmount extracts a numeric value from a free-text amount. Handles
// currency symbols, thousands separators and k/m suffixes.
func ParseAmount(value string) (float64, bool) {
	m := amountPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	switch strings.ToLower(m[2]) {
	case "k":
		n *= 1_000
	case "m":
		n *= 1_000_000
	}
	return n, true
}

// BudgetThresholds derives the warning and critical cost thresholds from
// a free-text budget. On parse success the bands are absolute amounts at
// 80% and 100% of budget; on failure they fall back to percentage bands.
func BudgetThresholds(budget string) (warning, critical string) {
	amount, ok := ParseAmount(budget)
	if !ok || amount <= 0 {
		return "80% of approved budget", "100% of approved budget"
	}
	return "$" + FormatNumber(amount*0.8), "$" + FormatNumber(amount)
}

// ParseMonths extracts a month count from a free-text timeline
// ("12 months", "1 year", "6-month programme").
func ParseMonths(timeline string) (int, bool) {
	lower := strings.ToLower(timeline)
	n, ok := ParseAmount(lower)
	if !ok || n <= 0 {
		return 0, false
	}
	months := int(n)
	switch {
	case strings.Contains(lower, "year"):
		months = int(n * 12)
	case strings.Contains(lower, "week"):
		months = int(n / 4)
		if months == 0 {
			months = 1
		}
	case strings.Contains(lower, "day"):
		months = int(n / 30)
		if months == 0 {
			months = 1
		}
	}
	return months, true
}

// DelayThresholds derives the schedule warning and critical thresholds
// from a free-text timeline. On parse success the bands are absolute
// delays at 10% and 25% of the plan; on failure they fall back to
// percentage bands.
func DelayThresholds(timeline string) (warning, critical string) {
	months, ok := ParseMonths(timeline)
	if !ok {
		return "10% schedule slip", "25% schedule slip"
	}
	warnWeeks := months * 10 * 4 / 100
	critWeeks := months * 25 * 4 / 100
	if warnWeeks < 1 {
		warnWeeks = 1
	}
	if critWeeks <= warnWeeks {
		critWeeks = warnWeeks + 1
	}
	return plural(warnWeeks, "week"), plural(critWeeks, "week")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
