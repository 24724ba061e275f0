package entity

import (
	"testing"
	"time"
)

func seriesOf(n int) ForecastSeries {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := make([]ForecastEntry, n)
	for i := range entries {
		entries[i] = ForecastEntry{Timestamp: start.Add(time.Duration(i) * 3 * time.Hour)}
	}
	return ForecastSeries{City: "Jakarta", Entries: entries}
}

func TestDisplayReturnsFirstEightInOrder(t *testing.T) {
	for _, n := range []int{8, 9, 40} {
		series := seriesOf(n)
		shown := series.Display()
		if len(shown) != DisplayWindow {
			t.Fatalf("n=%d: expected %d entries, got %d", n, DisplayWindow, len(shown))
		}
		for i := range shown {
			if !shown[i].Timestamp.Equal(series.Entries[i].Timestamp) {
				t.Fatalf("n=%d: entry %d out of order", n, i)
			}
		}
	}
}

func TestDisplayShortSeries(t *testing.T) {
	if got := len(seriesOf(3).Display()); got != 3 {
		t.Errorf("expected 3 entries, got %d", got)
	}
	if got := len(ForecastSeries{}.Display()); got != 0 {
		t.Errorf("expected empty display, got %d", got)
	}
}
