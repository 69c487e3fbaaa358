package dateutil

import (
	"time"
)

// Layout is the timestamp layout the WMS backend reads and writes.
const Layout = "2006-01-02 15:04:05"

// DateLayout is the date-only layout used by batch production and expiry dates.
const DateLayout = "2006-01-02"

// StartOfDay returns midnight of the given date in its own location
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay returns the last second of the given date, matching the
// second-resolution timestamps stored by the backend
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())
}

// DaysToExpire counts calendar days from atDate until the expiration date.
// Zero means the batch expires today; negative values mean it already expired.
func DaysToExpire(expiration, atDate time.Time) int {
	exp := time.Date(expiration.Year(), expiration.Month(), expiration.Day(), 0, 0, 0, 0, time.UTC)
	at := time.Date(atDate.Year(), atDate.Month(), atDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(exp.Sub(at).Hours() / 24)
}

// IsExpired reports whether the batch is past its expiration date at atDate.
// A batch expiring today is still usable.
func IsExpired(expiration, atDate time.Time) bool {
	return DaysToExpire(expiration, atDate) < 0
}

// ExpiresWithin reports whether an unexpired batch reaches its expiration
// date within the given number of days
func ExpiresWithin(expiration, atDate time.Time, days int) bool {
	left := DaysToExpire(expiration, atDate)
	return left >= 0 && left <= days
}

// DayRange formats the inclusive [from, to] date range as backend filter
// bounds: from at 00:00:00 and to at 23:59:59.
func DayRange(from, to time.Time) (start, end string) {
	return StartOfDay(from).Format(Layout), EndOfDay(to).Format(Layout)
}

// LastDays returns the range covering the given number of days ending on atDate
func LastDays(atDate time.Time, days int) (start, end string) {
	if days < 1 {
		days = 1
	}
	return DayRange(atDate.AddDate(0, 0, -(days - 1)), atDate)
}
