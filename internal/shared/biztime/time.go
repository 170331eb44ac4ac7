// Package biztime computes calendar boundaries in the helpdesk's business
// timezone. Timestamps are stored and queried in UTC; the business timezone
// only decides where a day or month begins and how times are displayed.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when no timezone is configured.
const DefaultTimezone = "UTC"

// DisplayLayout is the layout used by list and detail screens.
const DisplayLayout = "2006-01-02 15:04"

var (
	bizLocation   = time.UTC
	bizLocationMu sync.RWMutex
)

// Init sets the business timezone. An empty name selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	bizLocationMu.Lock()
	bizLocation = loc
	bizLocationMu.Unlock()
	return nil
}

func Location() *time.Location {
	bizLocationMu.RLock()
	defer bizLocationMu.RUnlock()
	return bizLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfMonthUTC returns midnight of the first day of t's month in the
// business timezone, as UTC.
func StartOfMonthUTC(t time.Time) time.Time {
	loc := Location()
	biz := t.In(loc)
	return time.Date(biz.Year(), biz.Month(), 1, 0, 0, 0, 0, loc).UTC()
}

// StartOfDayUTC returns midnight of t's day in the business timezone, as UTC.
func StartOfDayUTC(t time.Time) time.Time {
	loc := Location()
	biz := t.In(loc)
	return time.Date(biz.Year(), biz.Month(), biz.Day(), 0, 0, 0, 0, loc).UTC()
}

// Format renders t in the business timezone. Zero times render as "".
func Format(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Location()).Format(layout)
}
