package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// TimeOfDayMaxHour is the maximum valid hour component of a TimeOfDay.
	TimeOfDayMaxHour = 23
	// TimeOfDayMaxMinute is the maximum valid minute component of a TimeOfDay.
	TimeOfDayMaxMinute = 59

	minutesPerHour = 60
)

// ErrTimeOfDayIsNotConstructed is returned when attempting to use an improperly initialized TimeOfDay.
// A TimeOfDay must be created using NewTimeOfDay or ParseTimeOfDay to ensure validity.
var ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError(
	"time of day must be created via NewTimeOfDay or ParseTimeOfDay constructors")

// TimeOfDay represents a wall-clock time within a single day, without a date
// or time zone attached. It is an immutable value object used to express
// partner shift boundaries (for example 09:00 or 22:30).
//
// The zero value of TimeOfDay is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	start, err := kernel.NewTimeOfDay(9, 0)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(start) // Output: 09:00
type TimeOfDay struct { //nolint:recvcheck //using for validation
	hour   int
	minute int
	guard  guard.ConstructorGuard
}

// NewTimeOfDay creates a new TimeOfDay with the specified hour and minute.
// The hour must be within [0..TimeOfDayMaxHour] and the minute within
// [0..TimeOfDayMaxMinute]. Returns an error if either component is out of range.
func NewTimeOfDay(hour int, minute int) (TimeOfDay, error) {
	tod := TimeOfDay{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(tod.setHour(hour), tod.setMinute(minute)); err != nil {
		return TimeOfDay{}, err
	}

	return tod, nil
}

// ParseTimeOfDay parses a TimeOfDay from its "HH:MM" string representation.
// This is the format used by shift windows on the wire and in storage.
//
// Example:
//
//	tod, err := kernel.ParseTimeOfDay("22:30")
//	if err != nil {
//	    return fmt.Errorf("invalid shift boundary: %w", err)
//	}
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, found := strings.Cut(s, ":")
	if !found || !isTwoDigits(hh) || !isTwoDigits(mm) {
		return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause(
			"time of day",
			fmt.Errorf("%q is not in HH:MM format", s),
		)
	}

	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)

	return NewTimeOfDay(hour, minute)
}

// isTwoDigits reports whether s is exactly two ASCII digits. Anything else,
// including signs and trailing characters, makes the whole string invalid.
func isTwoDigits(s string) bool {
	return len(s) == 2 &&
		s[0] >= '0' && s[0] <= '9' &&
		s[1] >= '0' && s[1] <= '9'
}

// TimeOfDayFromClock extracts the TimeOfDay from a full timestamp.
// The timestamp's seconds and sub-second components are discarded.
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	tod, _ := NewTimeOfDay(t.Hour(), t.Minute())
	return tod
}

// Hour returns the hour component in the range [0..23].
func (t TimeOfDay) Hour() int {
	return t.hour
}

// Minute returns the minute component in the range [0..59].
func (t TimeOfDay) Minute() int {
	return t.minute
}

// MinutesFromMidnight returns the number of minutes elapsed since 00:00.
// This gives TimeOfDay a total order within a single day and is the basis
// for shift window containment checks.
func (t TimeOfDay) MinutesFromMidnight() int {
	return t.hour*minutesPerHour + t.minute
}

// IsEqual compares two times of day for equality.
func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.hour == other.hour && t.minute == other.minute
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.MinutesFromMidnight() < other.MinutesFromMidnight()
}

// String returns the "HH:MM" representation of the time of day.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// Validate checks if the TimeOfDay was properly constructed.
func (t TimeOfDay) Validate() error {
	return t.guard.Validate(ErrTimeOfDayIsNotConstructed)
}

// setHour validates and sets the hour component.
// This is a private setter used only during construction.
func (t *TimeOfDay) setHour(hour int) error {
	if hour < 0 || hour > TimeOfDayMaxHour {
		return errs.NewValueIsOutOfRangeError("hour", hour, 0, TimeOfDayMaxHour)
	}
	t.hour = hour
	return nil
}

// setMinute validates and sets the minute component.
// This is a private setter used only during construction.
func (t *TimeOfDay) setMinute(minute int) error {
	if minute < 0 || minute > TimeOfDayMaxMinute {
		return errs.NewValueIsOutOfRangeError("minute", minute, 0, TimeOfDayMaxMinute)
	}
	t.minute = minute
	return nil
}
