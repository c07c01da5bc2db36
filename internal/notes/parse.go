package notes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WarnDate is reported when the date falls back to today.
const WarnDate = "Error parsing date information, using today's date"

// field names a marker and the delimiter that ends its value.
type field struct {
	name   string
	marker string
	delim  string
}

var (
	yearField  = field{name: "year", marker: "Year:", delim: ","}
	monthField = field{name: "month", marker: "month:", delim: ","}
	dayField   = field{name: "day", marker: "day:", delim: ";"}
	titleField = field{name: "title", marker: "Title:", delim: "\n"}
	venueField = field{name: "venue", marker: "Venue:", delim: "\n"}
)

var errMissingMarker = errors.New("marker not found")

// Fields holds the values extracted from a note. Empty Title or Venue means absent.
type Fields struct {
	Date     time.Time
	Title    string
	Venue    string
	Warnings []string
}

// Parse extracts the date, title, and venue from text. today is used when
// the date cannot be read.
func Parse(text string, today time.Time) Fields {
	var out Fields

	date, err := parseDate(text)
	if err != nil {
		out.Date = calendarDay(today)
		out.Warnings = append(out.Warnings, WarnDate)
	} else {
		out.Date = date
	}

	out.Title = scanOptional(text, titleField)
	out.Venue = scanOptional(text, venueField)
	return out
}

// scan returns the trimmed text between the first occurrence of f.marker and
// the next f.delim. A missing delimiter reads to the end of text.
func scan(text string, f field) (string, error) {
	_, rest, ok := strings.Cut(text, f.marker)
	if !ok {
		return "", fmt.Errorf("%s: %w", f.name, errMissingMarker)
	}
	value, _, _ := strings.Cut(rest, f.delim)
	return strings.TrimSpace(value), nil
}

// scanOptional reads a free-text field. A missing marker and an empty value
// both mean the field is absent.
func scanOptional(text string, f field) string {
	value, err := scan(text, f)
	if err != nil {
		return ""
	}
	return value
}

func scanInt(text string, f field) (int, error) {
	value, err := scan(text, f)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", f.name, err)
	}
	return n, nil
}

func parseDate(text string) (time.Time, error) {
	year, err := scanInt(text, yearField)
	if err != nil {
		return time.Time{}, err
	}
	month, err := scanInt(text, monthField)
	if err != nil {
		return time.Time{}, err
	}
	day, err := scanInt(text, dayField)
	if err != nil {
		return time.Time{}, err
	}
	return civilDate(year, month, day)
}

// civilDate builds a calendar date, rejecting values time.Date would normalize.
func civilDate(year, month, day int) (time.Time, error) {
	if year < 1 || year > 9999 {
		return time.Time{}, fmt.Errorf("year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month {
		return time.Time{}, fmt.Errorf("day %d out of range for %04d-%02d", day, year, month)
	}
	return date, nil
}

func calendarDay(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
