package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDispatchOrderRepository struct{ mock.Mock }

func (m *MockDispatchOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDispatchOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockDispatchOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockDispatchOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockDispatchOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDispatchPartnerRepository struct{ mock.Mock }

func (m *MockDispatchPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockDispatchPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockDispatchPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockDispatchPartnerRepository) GetAll(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

func (m *MockDispatchPartnerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDispatchAssignmentRepository struct{ mock.Mock }

func (m *MockDispatchAssignmentRepository) Add(ctx context.Context, entry *assignment.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDispatchAssignmentRepository) GetAll(ctx context.Context) ([]*assignment.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Entry), args.Error(1)
}

func (m *MockDispatchAssignmentRepository) GetRecent(ctx context.Context, limit int) ([]*assignment.Entry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Entry), args.Error(1)
}

type MockDispatchUoW struct{ mock.Mock }

func (m *MockDispatchUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDispatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDispatchUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

func (m *MockDispatchUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type recordingDispatchRecorder struct {
	entries []*assignment.Entry
}

func (r *recordingDispatchRecorder) RecordAttempt(entry *assignment.Entry) {
	r.entries = append(r.entries, entry)
}

func pendingDispatchOrder(t *testing.T, area string) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Asha Rao", "+91-98200-11111", "14 Hill Road")
	require.NoError(t, err)
	item, err := order.NewItem("Masala Dosa", 1, 120)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-1001", customer, area, []order.Item{item},
		time.Now().UTC().Add(time.Hour), time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func allDayDispatchPartner(t *testing.T, areas ...string) *partner.Partner {
	t.Helper()
	// equal boundaries cover the whole day, keeping the test clock-independent
	shift, err := partner.ParseShiftWindow("00:00", "00:00")
	require.NoError(t, err)
	p, err := partner.NewPartner(
		kernel.NewUUID(), "Ravi Kumar", "ravi@example.com", "+91-98200-00000", areas, shift,
	)
	require.NoError(t, err)
	return p
}

func TestRunDispatchCommandHandler_Handle_AssignsPendingOrders(t *testing.T) {
	ctx := t.Context()

	orderA := pendingDispatchOrder(t, "Bandra")
	orderB := pendingDispatchOrder(t, "Bandra")
	pool := []*partner.Partner{allDayDispatchPartner(t, "Bandra")}

	orderRepo := new(MockDispatchOrderRepository)
	partnerRepo := new(MockDispatchPartnerRepository)
	ledger := new(MockDispatchAssignmentRepository)
	uow := new(MockDispatchUoW)
	factory := new(MockDispatchUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PartnerRepository").Return(partnerRepo)
	uow.On("AssignmentRepository").Return(ledger)

	orderRepo.On("GetAllPending", ctx).Return([]*order.Order{orderA, orderB}, nil).Once()
	orderRepo.On("Get", ctx, orderA.ID()).Return(orderA, nil).Once()
	orderRepo.On("Get", ctx, orderB.ID()).Return(orderB, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
	partnerRepo.On("GetAll", ctx).Return(pool, nil).Twice()
	partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Twice()
	ledger.On("Add", ctx, mock.AnythingOfType("*assignment.Entry")).Return(nil).Twice()

	recorder := &recordingDispatchRecorder{}
	handler := commands.NewRunDispatchCommandHandler(factory, recorder)

	entries, err := handler.Handle(ctx, commands.NewRunDispatchCommand())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].IsSuccess())
	assert.True(t, entries[1].IsSuccess())
	assert.True(t, entries[0].OrderID().IsEqual(orderA.ID()))
	assert.True(t, entries[1].OrderID().IsEqual(orderB.ID()))

	// both orders left the pending state and the partner took both slots
	assert.Equal(t, order.Assigned, orderA.Status())
	assert.Equal(t, order.Assigned, orderB.Status())
	assert.Equal(t, 2, pool[0].CurrentLoad())

	// every produced entry reached the metrics recorder
	assert.Equal(t, entries, recorder.entries)

	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestRunDispatchCommandHandler_Handle_CapacityExhaustedMidRun(t *testing.T) {
	ctx := t.Context()

	orderA := pendingDispatchOrder(t, "Bandra")
	orderB := pendingDispatchOrder(t, "Bandra")

	// one slot left before the cap
	carrier := allDayDispatchPartner(t, "Bandra")
	require.NoError(t, carrier.TakeOrder())
	require.NoError(t, carrier.TakeOrder())
	pool := []*partner.Partner{carrier}

	orderRepo := new(MockDispatchOrderRepository)
	partnerRepo := new(MockDispatchPartnerRepository)
	ledger := new(MockDispatchAssignmentRepository)
	uow := new(MockDispatchUoW)
	factory := new(MockDispatchUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PartnerRepository").Return(partnerRepo)
	uow.On("AssignmentRepository").Return(ledger)

	orderRepo.On("GetAllPending", ctx).Return([]*order.Order{orderA, orderB}, nil).Once()
	orderRepo.On("Get", ctx, orderA.ID()).Return(orderA, nil).Once()
	orderRepo.On("Get", ctx, orderB.ID()).Return(orderB, nil).Once()
	// only the first order lands an assignment
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	partnerRepo.On("GetAll", ctx).Return(pool, nil).Twice()
	partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Once()
	ledger.On("Add", ctx, mock.AnythingOfType("*assignment.Entry")).Return(nil).Twice()

	handler := commands.NewRunDispatchCommandHandler(factory, nil)

	entries, err := handler.Handle(ctx, commands.NewRunDispatchCommand())

	require.NoError(t, err)
	require.Len(t, entries, 2)

	// first order takes the last slot
	assert.True(t, entries[0].IsSuccess())
	assert.True(t, entries[0].OrderID().IsEqual(orderA.ID()))
	assert.Equal(t, order.Assigned, orderA.Status())
	assert.Equal(t, partner.MaxConcurrentLoad, carrier.CurrentLoad())

	// second order finds the partner at cap and fails with the specific reason
	assert.False(t, entries[1].IsSuccess())
	assert.True(t, entries[1].OrderID().IsEqual(orderB.ID()))
	require.NotNil(t, entries[1].Reason())
	assert.True(t, entries[1].Reason().IsEqual(assignment.ReasonCapacityExceeded))
	assert.Equal(t, order.Pending, orderB.Status())

	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestRunDispatchCommandHandler_Handle_RecordsClassifiedFailure(t *testing.T) {
	ctx := t.Context()

	pending := pendingDispatchOrder(t, "Powai")
	// covers a different area only
	pool := []*partner.Partner{allDayDispatchPartner(t, "Bandra")}

	orderRepo := new(MockDispatchOrderRepository)
	partnerRepo := new(MockDispatchPartnerRepository)
	ledger := new(MockDispatchAssignmentRepository)
	uow := new(MockDispatchUoW)
	factory := new(MockDispatchUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PartnerRepository").Return(partnerRepo)
	uow.On("AssignmentRepository").Return(ledger)

	orderRepo.On("GetAllPending", ctx).Return([]*order.Order{pending}, nil).Once()
	orderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once()
	partnerRepo.On("GetAll", ctx).Return(pool, nil).Once()
	ledger.On("Add", ctx, mock.AnythingOfType("*assignment.Entry")).Return(nil).Once()

	handler := commands.NewRunDispatchCommandHandler(factory, nil)

	entries, err := handler.Handle(ctx, commands.NewRunDispatchCommand())

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsSuccess())
	require.NotNil(t, entries[0].Reason())
	assert.True(t, entries[0].Reason().IsEqual(assignment.ReasonAreaMismatch))

	// the order stays pending and no entity update was attempted
	assert.Equal(t, order.Pending, pending.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	partnerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	orderRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestRunDispatchCommandHandler_Handle_SkipsOrdersNoLongerPending(t *testing.T) {
	ctx := t.Context()

	pending := pendingDispatchOrder(t, "Bandra")
	raced := pendingDispatchOrder(t, "Bandra")
	require.NoError(t, raced.Assign(kernel.NewUUID(), time.Now().UTC()))

	pool := []*partner.Partner{allDayDispatchPartner(t, "Bandra")}

	orderRepo := new(MockDispatchOrderRepository)
	partnerRepo := new(MockDispatchPartnerRepository)
	ledger := new(MockDispatchAssignmentRepository)
	uow := new(MockDispatchUoW)
	factory := new(MockDispatchUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PartnerRepository").Return(partnerRepo)
	uow.On("AssignmentRepository").Return(ledger)

	orderRepo.On("GetAllPending", ctx).Return([]*order.Order{raced, pending}, nil).Once()
	orderRepo.On("Get", ctx, raced.ID()).Return(raced, nil).Once()
	orderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	partnerRepo.On("GetAll", ctx).Return(pool, nil).Once()
	partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Once()
	ledger.On("Add", ctx, mock.AnythingOfType("*assignment.Entry")).Return(nil).Once()

	handler := commands.NewRunDispatchCommandHandler(factory, nil)

	entries, err := handler.Handle(ctx, commands.NewRunDispatchCommand())

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].OrderID().IsEqual(pending.ID()))
}

func TestRunDispatchCommandHandler_Handle_AbortsRunOnInfrastructureError(t *testing.T) {
	ctx := t.Context()

	orderA := pendingDispatchOrder(t, "Bandra")
	orderB := pendingDispatchOrder(t, "Bandra")
	pool := []*partner.Partner{allDayDispatchPartner(t, "Bandra")}
	bang := errors.New("connection reset")

	orderRepo := new(MockDispatchOrderRepository)
	partnerRepo := new(MockDispatchPartnerRepository)
	ledger := new(MockDispatchAssignmentRepository)
	uow := new(MockDispatchUoW)
	factory := new(MockDispatchUoWFactory)

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("PartnerRepository").Return(partnerRepo)
	uow.On("AssignmentRepository").Return(ledger)

	orderRepo.On("GetAllPending", ctx).Return([]*order.Order{orderA, orderB}, nil).Once()
	orderRepo.On("Get", ctx, orderA.ID()).Return(orderA, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	partnerRepo.On("GetAll", ctx).Return(pool, nil).Once()
	partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Once()
	ledger.On("Add", ctx, mock.AnythingOfType("*assignment.Entry")).Return(nil).Once()

	// the second order's transaction blows up
	orderRepo.On("Get", ctx, orderB.ID()).Return(nil, bang).Once()

	handler := commands.NewRunDispatchCommandHandler(factory, nil)

	entries, err := handler.Handle(ctx, commands.NewRunDispatchCommand())

	require.ErrorIs(t, err, bang)
	// the first attempt was committed before the abort and is reported
	require.Len(t, entries, 1)
	assert.True(t, entries[0].OrderID().IsEqual(orderA.ID()))
}
