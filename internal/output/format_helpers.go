package output

import (
	"strconv"

	"github.com/rpgo/corpfin-calculator/pkg/decimal"
)

// NotAvailable is rendered in place of NaN or an infinity.
const NotAvailable = "n/a"

// FormatCurrency formats an amount as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string {
	if !decimal.IsFinite(amount) {
		return NotAvailable
	}
	return decimal.NewMoney(amount).Format()
}

// FormatCompact formats an amount in millions or billions.
func FormatCompact(amount float64) string {
	if !decimal.IsFinite(amount) {
		return NotAvailable
	}
	return decimal.NewMoney(amount).Compact()
}

// FormatPercentage formats a percentage value with 2 decimals.
func FormatPercentage(v float64) string {
	if !decimal.IsFinite(v) {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

// FormatMultiple formats a ratio such as leverage or coverage, e.g. "5.31x".
func FormatMultiple(v float64) string {
	if !decimal.IsFinite(v) {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', 2, 64) + "x"
}

// FormatShares formats a share count as a whole number.
func FormatShares(v float64) string {
	if !decimal.IsFinite(v) {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// formatRaw renders a value without rounding for machine-readable outputs.
func formatRaw(v float64) string {
	if !decimal.IsFinite(v) {
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intToString(i int) string { return strconv.Itoa(i) }

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
