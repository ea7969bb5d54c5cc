package domain

import (
	"testing"
	"time"
)

// helper: a fixed date with the given wall-clock time, UTC
func at(hh, mm int) time.Time {
	return time.Date(2025, time.January, 15, hh, mm, 0, 0, time.UTC)
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("22:00-23:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if w.StartHour != 22 || w.StartMin != 0 || w.EndHour != 23 || w.EndMin != 30 {
		t.Fatalf("unexpected window: %+v", w)
	}
	if got := w.String(); got != "22:00-23:30" {
		t.Fatalf("want 22:00-23:30, got %s", got)
	}
}

func TestParseWindow_Rejects(t *testing.T) {
	bad := []string{
		"",
		"9:00-17:00", // missing leading zero
		"0900-1700",
		"22:00–23:00", // en dash
		"22:00-23",
		"aa:bb-cc:dd",
		"22:00-23:00 ",
	}
	for _, s := range bad {
		if _, err := ParseWindow(s); err == nil {
			t.Errorf("ParseWindow(%q): expected error", s)
		}
	}
}

func TestContains_InclusiveBounds(t *testing.T) {
	w := Window{StartHour: 22, StartMin: 0, EndHour: 23, EndMin: 0}
	cases := []struct {
		hh, mm int
		want   bool
	}{
		{21, 59, false},
		{22, 0, true},
		{22, 30, true},
		{23, 0, true},
		{23, 1, false},
	}
	for _, c := range cases {
		if got := w.Contains(at(c.hh, c.mm)); got != c.want {
			t.Errorf("Contains(%02d:%02d) = %v, want %v", c.hh, c.mm, got, c.want)
		}
	}
}

func TestContains_InvertedWindowIsEmpty(t *testing.T) {
	// end before start does not wrap past midnight; nothing is ever inside
	w := Window{StartHour: 23, StartMin: 0, EndHour: 22, EndMin: 0}
	for hh := 0; hh < 24; hh++ {
		if w.Contains(at(hh, 30)) {
			t.Errorf("Contains(%02d:30) = true for inverted window", hh)
		}
	}
}

func TestNear_MatchesShiftedWindow(t *testing.T) {
	w := Window{StartHour: 22, StartMin: 0, EndHour: 23, EndMin: 0}
	shifted := Window{StartHour: 21, StartMin: 45, EndHour: 22, EndMin: 45}
	for hh := 0; hh < 24; hh++ {
		for _, mm := range []int{0, 15, 44, 45, 46, 59} {
			ts := at(hh, mm)
			if got, want := w.Near(ts, 15), shifted.Contains(ts); got != want {
				t.Errorf("Near(%02d:%02d, 15) = %v, shifted Contains = %v", hh, mm, got, want)
			}
		}
	}
}

func TestNear_TiersOverlapNearStart(t *testing.T) {
	w := Window{StartHour: 22, StartMin: 0, EndHour: 23, EndMin: 0}

	// 21:56 sits in both shifted ranges: 21:45-22:45 and 21:55-22:55
	if !w.Near(at(21, 56), 15) {
		t.Error("Near(21:56, 15) = false")
	}
	if !w.Near(at(21, 56), 5) {
		t.Error("Near(21:56, 5) = false")
	}

	// 21:50 only reaches the 15-minute tier
	if !w.Near(at(21, 50), 15) {
		t.Error("Near(21:50, 15) = false")
	}
	if w.Near(at(21, 50), 5) {
		t.Error("Near(21:50, 5) = true")
	}
}

func TestNear_ShiftAcrossMidnight(t *testing.T) {
	// 00:10-01:00 shifted by 15 starts at 23:55 the previous day
	w := Window{StartHour: 0, StartMin: 10, EndHour: 1, EndMin: 0}
	if !w.Near(at(0, 0), 15) {
		t.Error("Near(00:00, 15) = false")
	}
	if !w.Near(at(0, 45), 15) {
		t.Error("Near(00:45, 15) = false")
	}
	if w.Near(at(0, 46), 15) {
		t.Error("Near(00:46, 15) = true")
	}
}
