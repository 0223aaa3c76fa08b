package partner

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// RatingMin is the lowest possible partner rating.
	RatingMin = 0.0
	// RatingMax is the highest possible partner rating.
	RatingMax = 5.0
)

// ErrPerformanceIsNotConstructed is returned when using an improperly initialized Performance.
var ErrPerformanceIsNotConstructed = errors.New("Performance must be created via NewPerformance constructor")

// Performance is a value object holding a partner's historical service
// quality figures: rating and completed/cancelled delivery counts.
// The rating participates in dispatch tie-breaking.
type Performance struct { //nolint:recvcheck //using for validation
	rating          float64
	completedOrders int
	cancelledOrders int
	guard           guard.ConstructorGuard
}

// NewPerformance creates a Performance with the given figures.
// Rating must lie within [RatingMin..RatingMax]; counts must not be negative.
func NewPerformance(rating float64, completedOrders, cancelledOrders int) (Performance, error) {
	perf := Performance{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		perf.setRating(rating),
		perf.setCompletedOrders(completedOrders),
		perf.setCancelledOrders(cancelledOrders),
	); err != nil {
		return Performance{}, err
	}

	return perf, nil
}

// NewDefaultPerformance creates the starting figures for a new partner:
// a neutral top rating and zero history.
func NewDefaultPerformance() Performance {
	perf, _ := NewPerformance(RatingMax, 0, 0)
	return perf
}

// Rating returns the partner's rating in [RatingMin..RatingMax].
func (p Performance) Rating() float64 {
	return p.rating
}

// CompletedOrders returns the count of successfully delivered orders.
func (p Performance) CompletedOrders() int {
	return p.completedOrders
}

// CancelledOrders returns the count of cancelled orders.
func (p Performance) CancelledOrders() int {
	return p.cancelledOrders
}

// RecordCompletion returns a copy of the performance with one more
// completed delivery counted.
func (p Performance) RecordCompletion() Performance {
	next := p
	next.completedOrders++
	return next
}

// Validate checks if the Performance was properly constructed.
func (p Performance) Validate() error {
	return p.guard.Validate(ErrPerformanceIsNotConstructed)
}

func (p *Performance) setRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	p.rating = rating
	return nil
}

func (p *Performance) setCompletedOrders(completedOrders int) error {
	if completedOrders < 0 {
		return errs.NewValueIsInvalidError("completed orders")
	}
	p.completedOrders = completedOrders
	return nil
}

func (p *Performance) setCancelledOrders(cancelledOrders int) error {
	if cancelledOrders < 0 {
		return errs.NewValueIsInvalidError("cancelled orders")
	}
	p.cancelledOrders = cancelledOrders
	return nil
}
