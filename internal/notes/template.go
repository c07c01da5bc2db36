package notes

import (
	"fmt"
	"time"
)

// Template returns the starting text for a new talk dated day.
func Template(day time.Time) string {
	return fmt.Sprintf("Year: %d, month: %d, day: %d;\nTitle:\nVenue:\nNotes:", day.Year(), int(day.Month()), day.Day())
}
