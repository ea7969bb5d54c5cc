package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// windowPattern is the textual form accepted by rule commands, e.g. "22:00-23:30".
// Leading zeros are required on every field.
var windowPattern = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

// Window is a disallowed time-of-day range in a rule's local timezone.
// Both bounds are inclusive. A window whose end is earlier than its start
// does not wrap past midnight; it contains no instant at all.
type Window struct {
	StartHour, StartMin int
	EndHour, EndMin     int
}

// ParseWindow parses "HH:MM-HH:MM" into a Window. The pair is stored as
// given; bounds are not reordered or range-checked beyond the pattern.
func ParseWindow(s string) (Window, error) {
	if err := validation.Validate(s,
		validation.Required,
		validation.Match(windowPattern).Error("expected HH:MM-HH:MM"),
	); err != nil {
		return Window{}, fmt.Errorf("time range %q: %w", s, err)
	}
	var w Window
	w.StartHour, _ = strconv.Atoi(s[0:2])
	w.StartMin, _ = strconv.Atoi(s[3:5])
	w.EndHour, _ = strconv.Atoi(s[6:8])
	w.EndMin, _ = strconv.Atoi(s[9:11])
	return w, nil
}

// Contains reports whether t falls inside the window, with both bounds
// built on t's own date. Inclusive on both ends.
func (w Window) Contains(t time.Time) bool {
	start := w.startOn(t, 0)
	end := w.endOn(t, 0)
	return !t.Before(start) && !t.After(end)
}

// Near reports whether t falls inside the window shifted earlier by
// leadMinutes. The shifted range spans the whole window duration, so a
// warning tier stays active well past the single instant leadMinutes
// before the start.
func (w Window) Near(t time.Time, leadMinutes int) bool {
	start := w.startOn(t, leadMinutes)
	end := w.endOn(t, leadMinutes)
	return !t.Before(start) && !t.After(end)
}

// startOn and endOn rely on time.Date normalizing negative minutes, so a
// bound shifted before midnight lands on the previous day.
func (w Window) startOn(t time.Time, leadMinutes int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), w.StartHour, w.StartMin-leadMinutes, 0, 0, t.Location())
}

func (w Window) endOn(t time.Time, leadMinutes int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), w.EndHour, w.EndMin-leadMinutes, 0, 0, t.Location())
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", w.StartHour, w.StartMin, w.EndHour, w.EndMin)
}
