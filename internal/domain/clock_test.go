package domain

import (
	"testing"
	"time"
)

// noon UTC on a fixed date
func fixedClock(fallback string) *Clock {
	c := NewClock(fallback)
	c.Now = func() time.Time {
		return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	return c
}

func TestClock_FixedOffsets(t *testing.T) {
	c := fixedClock("+0000")

	got := c.In("+0530")
	if got.Hour() != 17 || got.Minute() != 30 {
		t.Fatalf("+0530: want 17:30, got %s", got.Format("15:04"))
	}

	got = c.In("-0800")
	if got.Hour() != 4 || got.Minute() != 0 {
		t.Fatalf("-0800: want 04:00, got %s", got.Format("15:04"))
	}
}

func TestClock_NamedZone(t *testing.T) {
	c := fixedClock("+0000")
	got := c.In("UTC")
	if got.Hour() != 12 {
		t.Fatalf("UTC: want 12:00, got %s", got.Format("15:04"))
	}
}

func TestClock_FallsBackOnBadTZ(t *testing.T) {
	c := fixedClock("+0100")
	got := c.In("not-a-zone")
	if got.Hour() != 13 {
		t.Fatalf("want fallback +0100 (13:00), got %s", got.Format("15:04"))
	}
}

func TestClock_UTCWhenFallbackBadToo(t *testing.T) {
	c := fixedClock("also-bad")
	got := c.In("not-a-zone")
	if got.Hour() != 12 {
		t.Fatalf("want UTC noon, got %s", got.Format("15:04"))
	}
}
