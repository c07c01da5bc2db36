package catalog

import "time"

// DateLayout is the calendar-day layout used for display and persistence.
const DateLayout = "2006-01-02"

// Talk is one speaking engagement. Empty Title or Venue means absent.
type Talk struct {
	ID    int
	Date  time.Time
	Title string
	Venue string
}

// Update overwrites the talk fields with freshly parsed values.
func (t *Talk) Update(date time.Time, title, venue string) {
	t.Date = DateOf(date)
	t.Title = title
	t.Venue = venue
}

// DateString formats the talk date as YYYY-MM-DD.
func (t *Talk) DateString() string {
	return t.Date.Format(DateLayout)
}

// DateOf truncates a timestamp to its calendar day, keeping the day as seen in
// the timestamp's own location.
func DateOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
