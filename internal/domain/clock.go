package domain

import (
	"regexp"
	"strconv"
	"time"
)

// offsetPattern matches fixed UTC offsets like "+0530" or "-0800".
var offsetPattern = regexp.MustCompile(`^([+-])(\d{2})(\d{2})$`)

// Clock yields the current wall-clock time as seen from a rule's timezone.
type Clock struct {
	// Now is the time source; tests swap it for a fixed instant.
	Now func() time.Time
	// FallbackTZ is substituted when a rule's timezone cannot be resolved,
	// so one malformed rule never stalls evaluation of the rest.
	FallbackTZ string
}

func NewClock(fallbackTZ string) *Clock {
	return &Clock{Now: time.Now, FallbackTZ: fallbackTZ}
}

// In returns the current time localized to tz, which is either a fixed
// offset ("+0530") or an IANA zone name ("Asia/Kolkata").
func (c *Clock) In(tz string) time.Time {
	loc, err := resolveZone(tz)
	if err != nil {
		if loc, err = resolveZone(c.FallbackTZ); err != nil {
			loc = time.UTC
		}
	}
	return c.Now().In(loc)
}

func resolveZone(tz string) (*time.Location, error) {
	if m := offsetPattern.FindStringSubmatch(tz); m != nil {
		hours, _ := strconv.Atoi(m[2])
		mins, _ := strconv.Atoi(m[3])
		offset := hours*3600 + mins*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone("UTC"+tz, offset), nil
	}
	return time.LoadLocation(tz)
}
