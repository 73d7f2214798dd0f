package schedule

import (
	"testing"

	"github.com/marciopitersena/clinca-neuro/internal/clinic"
)

func TestGenerateSlots(t *testing.T) {
	slots := GenerateSlots()
	if len(slots) != SlotCount {
		t.Fatalf("got %d slots, want %d", len(slots), SlotCount)
	}
	if slots[0] != "08:00" {
		t.Errorf("first slot = %q, want 08:00", slots[0])
	}
	if slots[len(slots)-1] != "18:00" {
		t.Errorf("last slot = %q, want 18:00", slots[len(slots)-1])
	}
	seen := map[string]bool{}
	for i, s := range slots {
		if seen[s] {
			t.Errorf("duplicate slot %q", s)
		}
		seen[s] = true
		if i > 0 && slots[i-1] >= s {
			t.Errorf("slots out of order: %q before %q", slots[i-1], s)
		}
	}
}

func TestShiftDate(t *testing.T) {
	cases := []struct {
		date  string
		delta int
		want  string
	}{
		{"2024-05-20", 1, "2024-05-21"},
		{"2024-05-20", -1, "2024-05-19"},
		{"2024-05-31", 1, "2024-06-01"},
		{"2024-03-01", -1, "2024-02-29"}, // leap year
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-05-20", 0, "2024-05-20"},
	}
	for _, tc := range cases {
		got, err := ShiftDate(tc.date, tc.delta)
		if err != nil {
			t.Fatalf("ShiftDate(%q, %d): %v", tc.date, tc.delta, err)
		}
		if got != tc.want {
			t.Errorf("ShiftDate(%q, %d) = %q, want %q", tc.date, tc.delta, got, tc.want)
		}
	}
}

func TestShiftDateRoundTrip(t *testing.T) {
	start := "2024-05-20"
	fwd, err := ShiftDate(start, 7)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ShiftDate(fwd, -7)
	if err != nil {
		t.Fatal(err)
	}
	if back != start {
		t.Errorf("round trip gave %q, want %q", back, start)
	}
}

func TestShiftDateBadInput(t *testing.T) {
	for _, date := range []string{"", "20-05-2024", "2024/05/20", "not-a-date"} {
		if _, err := ShiftDate(date, 1); err == nil {
			t.Errorf("ShiftDate(%q) accepted invalid date", date)
		}
	}
}

func TestSlotOccupant(t *testing.T) {
	appts := []clinic.Appointment{
		{ID: "101", Date: "2024-05-20", Time: "09:00"},
		{ID: "102", Date: "2024-05-20", Time: "10:30"},
		{ID: "103", Date: "2024-05-21", Time: "09:00"},
	}

	if occ := SlotOccupant("2024-05-20", "09:00", appts); occ == nil || occ.ID != "101" {
		t.Errorf("occupant of 09:00 = %+v, want id 101", occ)
	}
	if occ := SlotOccupant("2024-05-20", "09:30", appts); occ != nil {
		t.Errorf("09:30 should be open, got %+v", occ)
	}
	// Same time on another day must not match.
	if occ := SlotOccupant("2024-05-22", "09:00", appts); occ != nil {
		t.Errorf("other day should be open, got %+v", occ)
	}
}

func TestDayView(t *testing.T) {
	appts := []clinic.Appointment{
		{ID: "101", Date: "2024-05-20", Time: "09:00"},
		{ID: "104", Date: "2024-05-20", Time: "07:15"}, // off the grid
	}
	view := DayView("2024-05-20", appts)
	if len(view) != SlotCount+1 {
		t.Fatalf("got %d rows, want %d", len(view), SlotCount+1)
	}

	var filled, offGrid int
	for _, row := range view {
		if row.Appointment != nil {
			filled++
		}
		if row.OffGrid {
			offGrid++
			if row.Time != "07:15" {
				t.Errorf("off-grid row time = %q, want 07:15", row.Time)
			}
		}
	}
	if filled != 2 {
		t.Errorf("filled rows = %d, want 2", filled)
	}
	if offGrid != 1 {
		t.Errorf("off-grid rows = %d, want 1", offGrid)
	}
}

func TestDayViewEmpty(t *testing.T) {
	view := DayView("2024-05-20", nil)
	if len(view) != SlotCount {
		t.Fatalf("got %d rows, want %d", len(view), SlotCount)
	}
	for _, row := range view {
		if row.Appointment != nil {
			t.Errorf("slot %q unexpectedly occupied", row.Time)
		}
	}
}
