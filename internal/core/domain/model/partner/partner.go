package partner

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// MaxConcurrentLoad is the fixed cap on orders a partner may carry at once.
// currentLoad counts orders in assigned or picked status; delivery releases
// the slot.
const MaxConcurrentLoad = 3

// Domain errors for partner operations.
var (
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	// ErrLoadCapExceeded is returned when taking an order would push the
	// partner past MaxConcurrentLoad. Reaching this error indicates the
	// caller skipped the CanTakeOrder capacity check.
	ErrLoadCapExceeded = errors.New("partner load cap exceeded")
	// ErrNoOrderToRelease is returned when releasing a load slot on a
	// partner whose current load is already zero.
	ErrNoOrderToRelease = errors.New("partner has no order to release")
)

// Partner represents a delivery partner in the system.
// It is an aggregate root that manages partner identity, availability,
// coverage, and the concurrent-load counter used by dispatch.
//
// Key responsibilities:
//   - Managing partner identity and contact details
//   - Tracking the concurrent-load counter against MaxConcurrentLoad
//   - Declaring the delivery areas the partner covers
//   - Declaring the daily shift window (which may wrap midnight)
//   - Carrying historical performance figures used for dispatch tie-breaking
//
// Business rules:
//   - currentLoad never exceeds MaxConcurrentLoad and never goes negative
//   - currentLoad equals the count of orders currently assigned or picked;
//     it is mutated only through TakeOrder and the release operations
//   - Only active partners within their shift window are dispatchable
//
// Example usage:
//
//	shift, _ := partner.ParseShiftWindow("09:00", "21:00")
//	p, err := partner.NewPartner(kernel.NewUUID(), "Ravi Kumar",
//	    "ravi@example.com", "+91-98200-00000", []string{"Bandra", "Andheri"}, shift)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Partner is ready to receive dispatched orders
type Partner struct {
	// id uniquely identifies the partner
	id kernel.UUID
	// name is the human-readable name of the partner
	name string
	// email is the partner's contact email
	email string
	// phone is the partner's contact phone number
	phone string
	// status controls whether the partner participates in dispatch
	status Status
	// currentLoad counts orders currently assigned or picked
	currentLoad int
	// areas are the delivery area tags the partner covers
	areas []string
	// shift is the partner's daily working window
	shift ShiftWindow
	// performance holds rating and delivery history figures
	performance Performance
	// guard ensures the partner was properly constructed
	guard guard.ConstructorGuard
}

// NewPartner creates a new Partner with the specified details.
// The partner starts active, with zero load and default performance figures.
//
// Parameters:
//   - id: Unique identifier (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - email: Contact email (must be non-empty)
//   - phone: Contact phone (must be non-empty)
//   - areas: Covered delivery areas (at least one, no empty tags)
//   - shift: Daily working window (must be constructed via NewShiftWindow)
//
// Returns:
//   - *Partner: A fully initialized partner ready for dispatch
//   - error: Validation error if any parameter is invalid (aggregated errors for multiple issues)
func NewPartner(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	areas []string,
	shift ShiftWindow,
) (*Partner, error) {
	p := &Partner{
		status:      StatusActive,
		performance: NewDefaultPerformance(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
		p.setAreas(areas),
		p.setShift(shift),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePartner reconstructs a Partner aggregate from persistent storage,
// including its status, load counter, and performance history. The restored
// partner behaves identically to one mutated through normal domain operations.
func RestorePartner(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	status Status,
	currentLoad int,
	areas []string,
	shift ShiftWindow,
	performance Performance,
) (*Partner, error) {
	p := &Partner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
		p.setStatus(status),
		p.setCurrentLoad(currentLoad),
		p.setAreas(areas),
		p.setShift(shift),
		p.setPerformance(performance),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// IsEqual compares two partners for equality based on their unique identifiers.
func (p *Partner) IsEqual(other *Partner) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks if the Partner was properly constructed using a constructor.
// The zero value of Partner is invalid and will fail this validation.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the unique identifier of the partner.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the human-readable name of the partner.
func (p *Partner) Name() string {
	return p.name
}

// Email returns the partner's contact email.
func (p *Partner) Email() string {
	return p.email
}

// Phone returns the partner's contact phone number.
func (p *Partner) Phone() string {
	return p.phone
}

// Status returns the partner's availability status.
func (p *Partner) Status() Status {
	return p.status
}

// IsActive reports whether the partner participates in dispatch.
func (p *Partner) IsActive() bool {
	return p.status == StatusActive
}

// CurrentLoad returns the count of orders currently carried by the partner.
func (p *Partner) CurrentLoad() int {
	return p.currentLoad
}

// Areas returns the delivery areas the partner covers.
// The returned slice is a copy to prevent external modification.
func (p *Partner) Areas() []string {
	out := make([]string, len(p.areas))
	copy(out, p.areas)
	return out
}

// Shift returns the partner's daily working window.
func (p *Partner) Shift() ShiftWindow {
	return p.shift
}

// Performance returns the partner's rating and delivery history figures.
func (p *Partner) Performance() Performance {
	return p.performance
}

// Activate marks the partner as available for dispatch.
func (p *Partner) Activate() {
	p.status = StatusActive
}

// Deactivate withdraws the partner from dispatch.
// Orders already carried keep their slots until delivered.
func (p *Partner) Deactivate() {
	p.status = StatusInactive
}

// UpdateProfile replaces the partner's contact details, covered areas, and
// shift window. The load counter and performance history are untouched;
// those belong to the dispatch and delivery workflows.
func (p *Partner) UpdateProfile(
	name string,
	email string,
	phone string,
	areas []string,
	shift ShiftWindow,
) error {
	return errors.Join(
		p.setName(name),
		p.setEmail(email),
		p.setPhone(phone),
		p.setAreas(areas),
		p.setShift(shift),
	)
}

// CoversArea reports whether the partner covers the given delivery area.
func (p *Partner) CoversArea(area string) bool {
	for _, a := range p.areas {
		if a == area {
			return true
		}
	}
	return false
}

// IsOnShift reports whether the given moment's time of day falls within
// the partner's shift window, including windows that wrap midnight.
func (p *Partner) IsOnShift(now time.Time) bool {
	return p.shift.Contains(kernel.TimeOfDayFromClock(now))
}

// HasCapacity reports whether the partner can carry one more order.
func (p *Partner) HasCapacity() bool {
	return p.currentLoad < MaxConcurrentLoad
}

// CanTakeOrder reports whether the partner is dispatchable for an order in
// the given area at the given moment: active, under the load cap, covering
// the area, and on shift.
func (p *Partner) CanTakeOrder(area string, now time.Time) bool {
	return p.IsActive() && p.HasCapacity() && p.CoversArea(area) && p.IsOnShift(now)
}

// TakeOrder commits one load slot to a newly assigned order.
//
// Returns ErrLoadCapExceeded if the partner is already at MaxConcurrentLoad;
// the load counter is left unchanged in that case. Capacity should be checked
// with CanTakeOrder or HasCapacity before dispatching.
func (p *Partner) TakeOrder() error {
	if !p.HasCapacity() {
		return ErrLoadCapExceeded
	}

	p.currentLoad++
	return nil
}

// ReleaseOrder frees one load slot without touching the delivery history.
// Used when an order leaves the partner's care for a reason other than a
// completed delivery.
func (p *Partner) ReleaseOrder() error {
	if p.currentLoad == 0 {
		return ErrNoOrderToRelease
	}

	p.currentLoad--
	return nil
}

// CompleteDelivery frees one load slot and counts the completed delivery
// in the partner's performance history. Called when an order carried by
// this partner reaches delivered status.
func (p *Partner) CompleteDelivery() error {
	if err := p.ReleaseOrder(); err != nil {
		return err
	}

	p.performance = p.performance.RecordCompletion()
	return nil
}

// setID sets the partner's unique identifier with validation.
func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

// setName sets the partner's name with validation.
func (p *Partner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = name
	return nil
}

// setEmail sets the partner's contact email with validation.
func (p *Partner) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	p.email = email
	return nil
}

// setPhone sets the partner's contact phone with validation.
func (p *Partner) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	p.phone = phone
	return nil
}

// setStatus sets the partner's status with validation.
// Used during restoration from persistent state.
func (p *Partner) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	p.status = status
	return nil
}

// setCurrentLoad sets the load counter with range validation.
// Used during restoration from persistent state.
func (p *Partner) setCurrentLoad(currentLoad int) error {
	if currentLoad < 0 || currentLoad > MaxConcurrentLoad {
		return errs.NewValueIsOutOfRangeError("current load", currentLoad, 0, MaxConcurrentLoad)
	}

	p.currentLoad = currentLoad
	return nil
}

// setAreas sets the covered areas with validation.
func (p *Partner) setAreas(areas []string) error {
	if len(areas) == 0 {
		return errs.NewValueIsRequiredError("areas")
	}

	for _, area := range areas {
		if area == "" {
			return errs.NewValueIsRequiredError("area")
		}
	}

	p.areas = make([]string, len(areas))
	copy(p.areas, areas)
	return nil
}

// setShift sets the shift window with validation.
func (p *Partner) setShift(shift ShiftWindow) error {
	if err := shift.Validate(); err != nil {
		return err
	}

	p.shift = shift
	return nil
}

// setPerformance sets the performance figures with validation.
// Used during restoration from persistent state.
func (p *Partner) setPerformance(performance Performance) error {
	if err := performance.Validate(); err != nil {
		return err
	}

	p.performance = performance
	return nil
}
