package partner

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrShiftWindowIsNotConstructed is returned when using an improperly initialized ShiftWindow.
var ErrShiftWindowIsNotConstructed = errors.New("ShiftWindow must be created via NewShiftWindow constructor")

// ShiftWindow is a value object describing the daily working hours of a
// delivery partner as a pair of time-of-day boundaries.
//
// A window whose start is later than its end wraps around midnight:
// a 22:00-06:00 shift covers the late evening and the early morning of the
// following day. A window whose start equals its end covers the entire day.
type ShiftWindow struct { //nolint:recvcheck //using for validation
	start kernel.TimeOfDay
	end   kernel.TimeOfDay
	guard guard.ConstructorGuard
}

// NewShiftWindow creates a ShiftWindow from validated start and end times.
func NewShiftWindow(start, end kernel.TimeOfDay) (ShiftWindow, error) {
	window := ShiftWindow{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(window.setStart(start), window.setEnd(end)); err != nil {
		return ShiftWindow{}, err
	}

	return window, nil
}

// ParseShiftWindow creates a ShiftWindow from "HH:MM" boundary strings,
// the format used on the wire and in storage.
func ParseShiftWindow(start, end string) (ShiftWindow, error) {
	startTod, err := kernel.ParseTimeOfDay(start)
	if err != nil {
		return ShiftWindow{}, fmt.Errorf("shift start: %w", err)
	}

	endTod, err := kernel.ParseTimeOfDay(end)
	if err != nil {
		return ShiftWindow{}, fmt.Errorf("shift end: %w", err)
	}

	return NewShiftWindow(startTod, endTod)
}

// Start returns the shift's starting time of day.
func (w ShiftWindow) Start() kernel.TimeOfDay {
	return w.start
}

// End returns the shift's ending time of day.
func (w ShiftWindow) End() kernel.TimeOfDay {
	return w.end
}

// Contains reports whether the given time of day falls within the window,
// boundaries inclusive.
//
// For a regular window (start <= end) the check is start <= t <= end.
// For a wrap-around window (start > end) the check is t >= start OR t <= end.
func (w ShiftWindow) Contains(t kernel.TimeOfDay) bool {
	tm := t.MinutesFromMidnight()
	start := w.start.MinutesFromMidnight()
	end := w.end.MinutesFromMidnight()

	if start == end {
		return true
	}

	if start > end {
		return tm >= start || tm <= end
	}

	return tm >= start && tm <= end
}

// WrapsMidnight reports whether the window crosses midnight.
func (w ShiftWindow) WrapsMidnight() bool {
	return w.end.Before(w.start)
}

// String returns the "HH:MM-HH:MM" representation of the window.
func (w ShiftWindow) String() string {
	return fmt.Sprintf("%s-%s", w.start, w.end)
}

// Validate checks if the ShiftWindow was properly constructed.
func (w ShiftWindow) Validate() error {
	return w.guard.Validate(ErrShiftWindowIsNotConstructed)
}

func (w *ShiftWindow) setStart(start kernel.TimeOfDay) error {
	if err := start.Validate(); err != nil {
		return err
	}
	w.start = start
	return nil
}

func (w *ShiftWindow) setEnd(end kernel.TimeOfDay) error {
	if err := end.Validate(); err != nil {
		return err
	}
	w.end = end
	return nil
}
