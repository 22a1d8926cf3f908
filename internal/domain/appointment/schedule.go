package appointment

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultPreviewLimit = 3

// Schedule is the bookable vocabulary of a business day: the ordered slot
// template and the closed set of service types.
type Schedule struct {
	SlotTemplate []string
	ServiceTypes []ServiceType
	PreviewLimit int
}

func DefaultSchedule() Schedule {
	return Schedule{
		SlotTemplate: []string{
			"9:00 AM",
			"10:00 AM",
			"11:00 AM",
			"1:00 PM",
			"2:00 PM",
			"3:00 PM",
			"4:00 PM",
		},
		ServiceTypes: DefaultServiceTypes(),
		PreviewLimit: DefaultPreviewLimit,
	}
}

func (s Schedule) Validate() error {
	if len(s.SlotTemplate) == 0 {
		return errors.New("schedule: slot template is empty")
	}
	seen := make(map[string]struct{}, len(s.SlotTemplate))
	for _, label := range s.SlotTemplate {
		if strings.TrimSpace(label) != label || label == "" {
			return fmt.Errorf("schedule: slot label %q must be non-empty and trimmed", label)
		}
		if _, ok := ClockMinutes(label); !ok {
			return fmt.Errorf("schedule: slot label %q is not a clock time", label)
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("schedule: duplicate slot label %q", label)
		}
		seen[label] = struct{}{}
	}

	if len(s.ServiceTypes) == 0 {
		return errors.New("schedule: no service types declared")
	}
	for _, st := range s.ServiceTypes {
		if strings.EqualFold(string(st), AllServices) {
			return fmt.Errorf("schedule: %q is reserved for filtering", AllServices)
		}
	}
	if s.PreviewLimit < 0 {
		return errors.New("schedule: preview limit must not be negative")
	}
	return nil
}

func (s Schedule) HasSlot(label string) bool {
	for _, l := range s.SlotTemplate {
		if l == label {
			return true
		}
	}
	return false
}

// LookupServiceType matches raw case-insensitively against the declared set
// and returns the declared spelling.
func (s Schedule) LookupServiceType(raw string) (ServiceType, bool) {
	raw = strings.TrimSpace(raw)
	for _, st := range s.ServiceTypes {
		if strings.EqualFold(string(st), raw) {
			return st, true
		}
	}
	return "", false
}
