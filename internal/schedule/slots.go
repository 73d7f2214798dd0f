package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/marciopitersena/clinca-neuro/internal/clinic"
)

// ErrBadDate marks a date string that does not parse as YYYY-MM-DD.
var ErrBadDate = errors.New("invalid calendar date")

// DateLayout is the calendar-date form used everywhere: YYYY-MM-DD.
const DateLayout = "2006-01-02"

// SlotCount is the number of half-hour labels in the daily grid.
const SlotCount = 21

// GenerateSlots returns the fixed half-hour labels from 08:00 through 18:00.
// Pure and cheap, so callers recompute it per render instead of caching.
func GenerateSlots() []string {
	slots := make([]string, 0, SlotCount)
	for i := 0; i < SlotCount; i++ {
		min := "00"
		if i%2 == 1 {
			min = "30"
		}
		slots = append(slots, fmt.Sprintf("%02d:%s", 8+i/2, min))
	}
	return slots
}

// ShiftDate moves a calendar date by deltaDays, rolling over months and
// years via standard calendar arithmetic.
func ShiftDate(date string, deltaDays int) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadDate, date)
	}
	return t.AddDate(0, 0, deltaDays).Format(DateLayout), nil
}

// SlotOccupant returns the first appointment stored at exactly (date, slot),
// or nil for an open slot. Comparison is string equality on both fields.
// Lookup is a linear scan: the input is a single day's appointments, at most
// a few dozen records, so indexing by (date, time) would buy nothing.
func SlotOccupant(date, slot string, appts []clinic.Appointment) *clinic.Appointment {
	for i := range appts {
		if appts[i].Date == date && appts[i].Time == slot {
			return &appts[i]
		}
	}
	return nil
}

// SlotView is one rendered row of the day grid.
type SlotView struct {
	Time        string              `json:"time"`
	Appointment *clinic.Appointment `json:"appointment,omitempty"`
	OffGrid     bool                `json:"off_grid,omitempty"`
}

// DayView resolves every grid slot for one date. Stored times outside the
// generated grid still render, appended after the fixed slots, so anomalous
// data degrades to an extra row instead of an error.
func DayView(date string, appts []clinic.Appointment) []SlotView {
	slots := GenerateSlots()
	onGrid := make(map[string]bool, len(slots))
	view := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		onGrid[slot] = true
		view = append(view, SlotView{Time: slot, Appointment: SlotOccupant(date, slot, appts)})
	}
	for i := range appts {
		if appts[i].Date == date && !onGrid[appts[i].Time] {
			view = append(view, SlotView{Time: appts[i].Time, Appointment: &appts[i], OffGrid: true})
		}
	}
	return view
}
