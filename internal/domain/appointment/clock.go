package appointment

import (
	"strings"
	"time"
)

var clockLayouts = []string{
	"15:04",
	"3:04 PM",
	"3:04PM",
}

// ClockMinutes parses a slot label ("09:00", "2:30 PM") into minutes after
// midnight.
func ClockMinutes(label string) (int, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.Hour()*60 + t.Minute(), true
		}
	}
	return 0, false
}

// compareClock orders parseable labels chronologically ahead of anything
// unparseable, which falls back to byte order.
func compareClock(a, b string) int {
	am, aok := ClockMinutes(a)
	bm, bok := ClockMinutes(b)
	switch {
	case aok && bok:
		if am != bm {
			return cmpInt(am, bm)
		}
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}
