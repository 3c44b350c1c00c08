package util

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DateLayout is the civil date format every stored date uses. Range checks
// compare these strings directly, which only works because the layout is
// fixed width and zero padded.
const DateLayout = "2006-01-02"

const ClockLayout = "15:04"

var newYorkLocation *time.Location

func init() {
	var err error
	newYorkLocation, err = time.LoadLocation("America/New_York")
	if err != nil {
		newYorkLocation = time.FixedZone("EST", -5*60*60)
	}
}

// Location is the civil timezone all "today" and week computations use,
// independent of the server's local zone.
func Location() *time.Location {
	return newYorkLocation
}

// Week is a Monday..Sunday range of civil dates, both inclusive.
type Week struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func Today(now time.Time) string {
	return now.In(newYorkLocation).Format(DateLayout)
}

func Tomorrow(now time.Time) string {
	return civilDay(now).AddDate(0, 0, 1).Format(DateLayout)
}

func WeekBounds(now time.Time) Week {
	return weekOf(civilDay(now))
}

// Previous steps back seven civil days, so DST transitions never shift the
// result into the wrong week.
func (w Week) Previous() Week {
	start, err := time.Parse(DateLayout, w.Start)
	if err != nil {
		return Week{}
	}
	return weekOf(start.AddDate(0, 0, -7))
}

func (w Week) Contains(date string) bool {
	d := NormalizeDate(date)
	if d == "" {
		return false
	}
	return d >= w.Start && d <= w.End
}

// WeekIdentifier returns the ISO week of now in the civil timezone, e.g. 2024-W10.
func WeekIdentifier(now time.Time) string {
	year, week := now.In(newYorkLocation).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// NormalizeDate keeps the leading YYYY-MM-DD of values such as
// 2024-03-06T10:00:00Z. Anything shorter is returned empty.
func NormalizeDate(s string) string {
	if len(s) < len(DateLayout) {
		return ""
	}
	return s[:len(DateLayout)]
}

func IsCivilDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func IsClockTime(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// civilDay is midnight UTC of now's calendar date in the civil timezone.
// Date arithmetic on it is free of DST effects.
func civilDay(now time.Time) time.Time {
	y, m, d := now.In(newYorkLocation).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekOf(day time.Time) Week {
	// Sunday closes its week.
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)
	return Week{
		Start: monday.Format(DateLayout),
		End:   monday.AddDate(0, 0, 6).Format(DateLayout),
	}
}
