package catalog

import "testing"

func TestTimeSlotsShape(t *testing.T) {
	if len(TimeSlots) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(TimeSlots))
	}

	// Chronological and half-hour spaced within each window.
	for i := 1; i < len(TimeSlots); i++ {
		if TimeSlots[i] <= TimeSlots[i-1] {
			t.Fatalf("slots out of order: %s before %s", TimeSlots[i-1], TimeSlots[i])
		}
	}
	if TimeSlots[0] != "09:00" || TimeSlots[5] != "11:30" {
		t.Fatalf("unexpected morning window: %v", TimeSlots[:6])
	}
	if TimeSlots[6] != "14:00" || TimeSlots[13] != "17:30" {
		t.Fatalf("unexpected afternoon window: %v", TimeSlots[6:])
	}
}

func TestIsTimeSlot(t *testing.T) {
	if !IsTimeSlot("09:00") || !IsTimeSlot("17:30") {
		t.Fatal("catalog slots must be accepted")
	}
	if IsTimeSlot("12:00") || IsTimeSlot("09:15") || IsTimeSlot("") {
		t.Fatal("off-catalog times must be rejected")
	}
}

func TestFindService(t *testing.T) {
	s, ok := FindService("gel")
	if !ok || s.Name == "" || s.Price == "" || s.Duration == "" {
		t.Fatalf("expected a complete gel service, got %+v", s)
	}
	if _, ok := FindService("massage"); ok {
		t.Fatal("unknown service must not be found")
	}
}
