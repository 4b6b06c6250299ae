package availability

import (
	"testing"

	"tutorhive/models"
)

func TestGroupWindows_SplitsOnGap(t *testing.T) {
	slots := []models.Slot{
		slotAt(9, 0), slotAt(9, 30), slotAt(10, 0),
		slotAt(14, 0), slotAt(14, 30),
	}

	windows := GroupWindows(slots)
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if len(windows[0].Slots) != 3 {
		t.Errorf("expected first window to hold 3 slots, got %d", len(windows[0].Slots))
	}
	if len(windows[1].Slots) != 2 {
		t.Errorf("expected second window to hold 2 slots, got %d", len(windows[1].Slots))
	}
	if windows[0].Label != "9:00 AM - 10:30 AM" {
		t.Errorf("unexpected first label %q", windows[0].Label)
	}
	if windows[1].Label != "2:00 PM - 3:00 PM" {
		t.Errorf("unexpected second label %q", windows[1].Label)
	}
}

func TestGroupWindows_SingleRun(t *testing.T) {
	slots := []models.Slot{slotAt(9, 0), slotAt(9, 30), slotAt(10, 0)}
	windows := GroupWindows(slots)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
}

func TestGroupWindows_Empty(t *testing.T) {
	if windows := GroupWindows(nil); windows != nil {
		t.Fatalf("expected nil for empty slot list, got %v", windows)
	}
}

func TestGroupWindows_LoneSlots(t *testing.T) {
	slots := []models.Slot{slotAt(9, 0), slotAt(11, 0), slotAt(13, 0)}
	windows := GroupWindows(slots)
	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}
	for i, w := range windows {
		if len(w.Slots) != 1 {
			t.Errorf("window %d: expected a single slot, got %d", i, len(w.Slots))
		}
	}
}
