// Package pricing holds the money and percentage math shared by checkout,
// the payment adapter and the dashboard, so every caller rounds the same way.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeePercent is the platform cut applied on top of every order line.
const FeePercent = 0.02

var feeRate = decimal.NewFromFloat(FeePercent)

// PlatformFee is floor(total * 2%). Computed in decimal so that e.g. 2% of
// 30000 is exactly 600 rather than a float hair under it.
func PlatformFee(totalPrice int64) int64 {
	return decimal.NewFromInt(totalPrice).Mul(feeRate).Floor().IntPart()
}

// Line totals for one cart line.
func LineAmounts(unitPrice, qty int64) (totalPrice, platformFee, grossTotal int64) {
	totalPrice = unitPrice * qty
	platformFee = PlatformFee(totalPrice)
	grossTotal = totalPrice + platformFee
	return
}

// Growth is the month-over-month percentage change, rounded half away from
// zero. A zero previous period reads as 100% growth when anything happened,
// 0% otherwise.
func Growth(current, previous int64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	ratio := decimal.NewFromInt(current - previous).
		Div(decimal.NewFromInt(previous)).
		Mul(decimal.NewFromInt(100))
	return int(ratio.Round(0).IntPart())
}

// Percent is round(part/total * 100), half away from zero; 0 when total is 0.
func Percent(part, total int64) int {
	if total == 0 {
		return 0
	}
	ratio := decimal.NewFromInt(part).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100))
	return int(ratio.Round(0).IntPart())
}

// MonthWindow returns the calendar month containing t as a half-open
// [start, end) range, so the whole last day is included.
func MonthWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0)
	return
}

// MonthsAgo shifts t back by n calendar months, pinned to the first of the
// month so that AddDate never normalizes across a short month.
func MonthsAgo(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, -n, 0)
}

// Abbreviated month names as the dashboard displays them (id-ID locale).
var shortMonths = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "Mei",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Agu",
	time.September: "Sep",
	time.October:   "Okt",
	time.November:  "Nov",
	time.December:  "Des",
}

func ShortMonth(m time.Month) string {
	return shortMonths[m]
}
