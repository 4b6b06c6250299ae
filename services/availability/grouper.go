package availability

import (
	"tutorhive/models"
)

// GroupWindows walks a time-ascending slot list and starts a new display
// window whenever the gap between consecutive slots is not exactly one step.
// A 9am-12pm and a 2pm-5pm schedule window therefore render as two groups,
// as do two adjacent schedule windows with a real gap between them.
func GroupWindows(slots []models.Slot) []models.AvailabilityWindow {
	if len(slots) == 0 {
		return nil
	}

	var windows []models.AvailabilityWindow
	run := []models.Slot{slots[0]}
	for _, s := range slots[1:] {
		if s.MinuteOfDay()-run[len(run)-1].MinuteOfDay() != StepMinutes {
			windows = append(windows, finishWindow(run))
			run = nil
		}
		run = append(run, s)
	}
	windows = append(windows, finishWindow(run))
	return windows
}

func finishWindow(run []models.Slot) models.AvailabilityWindow {
	first := run[0]
	last := run[len(run)-1]
	return models.AvailabilityWindow{
		Slots: run,
		Label: models.FormatClock(first.MinuteOfDay()) + " - " + models.FormatClock(last.MinuteOfDay()+StepMinutes),
	}
}
