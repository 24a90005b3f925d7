package availability

import (
	"fmt"
	"time"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Touching boundaries (i.End == other.Start) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Slot is one of the nominal daily start times offered for a call.
type Slot struct {
	Hour   int
	Minute int
}

// Label renders the slot as a 12-hour clock label, e.g. "09:00 AM".
func (s Slot) Label() string {
	hour := s.Hour % 12
	if hour == 0 {
		hour = 12
	}
	period := "AM"
	if s.Hour >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", hour, s.Minute, period)
}

// ParseLabel converts a 12-hour clock label back into a Slot.
func ParseLabel(label string) (Slot, error) {
	t, err := time.Parse("03:04 PM", label)
	if err != nil {
		return Slot{}, fmt.Errorf("invalid time slot %q: %w", label, err)
	}
	return Slot{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// WorkingHours is the bookable window of a day, [StartHour:00, EndHour:00).
type WorkingHours struct {
	StartHour int
	EndHour   int
}

// Config holds the candidate slot list and the working window.
type Config struct {
	Slots        []Slot
	WorkingHours WorkingHours
}

// DefaultConfig returns the slots and working hours offered on the site.
func DefaultConfig() Config {
	return Config{
		Slots: []Slot{
			{Hour: 9}, {Hour: 10}, {Hour: 11},
			{Hour: 13}, {Hour: 14}, {Hour: 15}, {Hour: 16},
		},
		WorkingHours: WorkingHours{StartHour: 9, EndHour: 17},
	}
}

// SlotLabels returns the labels of all configured slots in candidate order.
func (c Config) SlotLabels() []string {
	labels := make([]string, 0, len(c.Slots))
	for _, slot := range c.Slots {
		labels = append(labels, slot.Label())
	}
	return labels
}

// SlotInterval projects a slot on the given day to [start, start+duration).
func (c Config) SlotInterval(day time.Time, slot Slot, duration time.Duration) Interval {
	start := time.Date(day.Year(), day.Month(), day.Day(), slot.Hour, slot.Minute, 0, 0, day.Location())
	return Interval{Start: start, End: start.Add(duration)}
}

// AvailableSlots returns the ordered subsequence of configured slot labels
// that are bookable on the given day for the requested duration: the derived
// interval must end no later than the working-hours end and must not overlap
// any busy interval. An oversized duration yields an empty result, not an
// error.
func AvailableSlots(cfg Config, day time.Time, duration time.Duration, busy []Interval) []string {
	workEnd := time.Date(day.Year(), day.Month(), day.Day(), cfg.WorkingHours.EndHour, 0, 0, 0, day.Location())

	available := make([]string, 0, len(cfg.Slots))
	for _, slot := range cfg.Slots {
		candidate := cfg.SlotInterval(day, slot, duration)

		// The meeting must end within working hours. Ending exactly at the
		// boundary is allowed.
		if candidate.End.After(workEnd) {
			continue
		}

		blocked := false
		for _, b := range busy {
			if candidate.Overlaps(b) {
				blocked = true
				break
			}
		}
		if !blocked {
			available = append(available, slot.Label())
		}
	}
	return available
}
