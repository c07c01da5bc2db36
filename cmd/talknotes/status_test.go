package main

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"talknotes/internal/catalog"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Warning", statusWarn, "check the note", false)
	want := fmt.Sprintf("%-*s %s", statusLabelWidth, "Warning:", "[WARN] check the note")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Note", statusOK, "saved", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestRenderTalks(t *testing.T) {
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	out := renderTalks([]*catalog.Talk{
		{ID: 0, Date: day, Title: "Engines", Venue: "London"},
		{ID: 1, Date: day.AddDate(0, 1, 0)},
	})
	for _, want := range []string{"2024-03-09", "Engines", "London", "2024-04-09", untitled} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table to contain %q:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	// Rounded style: top border, header, separator, two rows, bottom border.
	if len(lines) != 6 {
		t.Fatalf("expected 6 table lines, got %d:\n%s", len(lines), out)
	}
}
