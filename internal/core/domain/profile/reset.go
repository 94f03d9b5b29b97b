package profile

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

// NextMonthlyReset returns the monthly quota reset time following now,
// the start of the next calendar month in UTC.
func NextMonthlyReset(now time.Time) time.Time {
	return carbon.Time2Carbon(now.UTC()).AddMonthsNoOverflow(1).StartOfMonth().Carbon2Time()
}
