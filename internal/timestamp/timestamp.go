package timestamp

import (
	"strings"
	"time"

	"github.com/dharmasatrya/fareparse/internal/models"
)

// Layout is the fixed-width leg timestamp format: date, literal T, then
// hour and minute with no separator, no seconds and no zone.
const Layout = "2006-01-02T1504"

// Parse reads a leg timestamp as a naive wall-clock value. The result is
// anchored to UTC only so that two values can be subtracted without any
// daylight-saving adjustment.
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	t, err := time.ParseInLocation(Layout, value, time.UTC)
	if err != nil {
		return time.Time{}, models.NewFieldError(models.ErrMalformedTimestamp, value, "expected "+Layout)
	}
	return t, nil
}

// Elapsed returns arrival minus departure in whole seconds.
func Elapsed(departure, arrival string) (int64, error) {
	dep, err := Parse(departure)
	if err != nil {
		return 0, err
	}
	arr, err := Parse(arrival)
	if err != nil {
		return 0, err
	}
	return int64(arr.Sub(dep) / time.Second), nil
}
