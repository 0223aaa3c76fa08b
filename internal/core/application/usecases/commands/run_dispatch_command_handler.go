package commands

import (
	"context"
	"errors"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// DispatchRecorder observes ledger entries as a dispatch run produces them.
// Implementations export the figures to a metrics backend; recording is
// best-effort and never affects the run itself.
type DispatchRecorder interface {
	RecordAttempt(entry *assignment.Entry)
}

// RunDispatchCommandHandler orchestrates a full dispatch run.
//
// A run walks the pending order backlog in delivery schedule order and, for
// each order, either assigns the best eligible partner or records a
// classified failure. Every attempt becomes exactly one ledger entry.
//
// Consistency rules:
//   - Each order is processed in its own transaction: the order's status,
//     the partner's load counter, and the ledger entry commit together
//   - An infrastructure error aborts the remainder of the run; attempts
//     already committed stand
//   - At most one run executes at a time; concurrent triggers queue behind
//     the run lock
//   - Re-running over an unchanged backlog is harmless: orders assigned by
//     an earlier run are no longer pending and are skipped
type RunDispatchCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
	recorder   DispatchRecorder
	runLock    *sync.Mutex
}

// NewRunDispatchCommandHandler creates a handler for dispatch run operations.
// Requires a UoWFactory covering orders, partners, and the ledger.
// The recorder may be nil when no metrics backend is wired.
func NewRunDispatchCommandHandler(uowFactory UoWFactory, recorder DispatchRecorder) *RunDispatchCommandHandler {
	return &RunDispatchCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		recorder:   recorder,
		runLock:    &sync.Mutex{},
	}
}

// Handle processes the dispatch run command.
// Returns the ledger entries produced by this run, in backlog order.
// On error the returned entries are the attempts committed before the abort.
func (h *RunDispatchCommandHandler) Handle(
	ctx context.Context,
	cmd RunDispatchCommand,
) ([]*assignment.Entry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.runLock.Lock()
	defer h.runLock.Unlock()

	backlog, err := h.pendingBacklog(ctx)
	if err != nil {
		return nil, err
	}

	var entries []*assignment.Entry
	for _, orderID := range backlog {
		entry, err := h.dispatchOne(ctx, orderID)
		if err != nil {
			return entries, err
		}
		if entry == nil {
			continue
		}

		entries = append(entries, entry)
		if h.recorder != nil {
			h.recorder.RecordAttempt(entry)
		}
	}

	return entries, nil
}

// pendingBacklog snapshots the identifiers of all pending orders, ordered by
// scheduled delivery time with creation time as the tie-break.
func (h *RunDispatchCommandHandler) pendingBacklog(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(pending))
	for _, o := range pending {
		ids = append(ids, o.ID())
	}

	return ids, nil
}

// dispatchOne makes one dispatch attempt in its own transaction.
// Returns the committed ledger entry, or nil when the order was no longer
// pending by the time its transaction started.
func (h *RunDispatchCommandHandler) dispatchOne(
	ctx context.Context,
	orderID kernel.UUID,
) (*assignment.Entry, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()
	ledger := uow.AssignmentRepository()

	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if aggregate.Status() != order.Pending {
		return nil, nil
	}

	pool, err := partnerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	assigned, err := h.dispatcher.Dispatch(aggregate, pool, now)
	if errors.Is(err, services.ErrNoEligiblePartner) {
		reason := h.dispatcher.Diagnose(aggregate, pool, now)

		entry, err := assignment.NewFailureEntry(aggregate.ID(), reason, now)
		if err != nil {
			return nil, err
		}
		if err = ledger.Add(ctx, entry); err != nil {
			return nil, err
		}
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}

		return entry, nil
	}
	if err != nil {
		return nil, err
	}

	entry, err := assignment.NewSuccessEntry(aggregate.ID(), assigned.ID(), now)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = partnerRepo.Update(ctx, assigned); err != nil {
		return nil, err
	}
	if err = ledger.Add(ctx, entry); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}
