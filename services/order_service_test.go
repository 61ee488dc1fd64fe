package services

import (
	"testing"

	"github.com/cooper235/Canteen-project-sub000/entity"
	"github.com/cooper235/Canteen-project-sub000/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrder(t *testing.T, env *testEnv) *entity.Order {
	t.Helper()
	order, err := env.orders.Create(env.buyer.ID, &CreateOrderReq{
		CanteenID: env.canteen.ID,
		Items: []OrderLineIn{
			{MenuItemID: env.dosa.ID, Qty: 2},
			{MenuItemID: env.chai.ID, Qty: 1},
		},
		PaymentMethod:  "upi",
		FulfilmentType: "pickup",
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrderTotalsAndEvent(t *testing.T) {
	env := newTestEnv(t)

	order := createTestOrder(t, env)

	// 2×50 + 1×30
	assert.Equal(t, int64(130), order.Total)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentUnpaid, order.PaymentStatus)
	assert.Equal(t, uint(1), order.OrderNumber)
	require.Len(t, order.Items, 2)

	// exactly one order:created, to the canteen room only
	require.Len(t, env.notifier.events, 1)
	ev := env.notifier.events[0]
	assert.Equal(t, ws.CanteenRoom(env.canteen.ID), ev.Room)
	assert.Equal(t, ws.EventOrderCreated, ev.Event)
	payload := ev.Payload.(ws.OrderCreatedPayload)
	assert.Equal(t, order.ID, payload.OrderID)
	assert.Contains(t, payload.Summary, "2× Masala Dosa")
	assert.Contains(t, payload.Summary, "1× Chai")
}

func TestOrderNumbersAreSequential(t *testing.T) {
	env := newTestEnv(t)

	first := createTestOrder(t, env)
	second := createTestOrder(t, env)
	assert.Equal(t, first.OrderNumber+1, second.OrderNumber)
}

func TestCreateOrderValidation(t *testing.T) {
	env := newTestEnv(t)

	// unknown canteen
	_, err := env.orders.Create(env.buyer.ID, &CreateOrderReq{
		CanteenID: 999,
		Items:     []OrderLineIn{{MenuItemID: env.dosa.ID, Qty: 1}},
	})
	require.Error(t, err)

	// unknown item
	_, err = env.orders.Create(env.buyer.ID, &CreateOrderReq{
		CanteenID: env.canteen.ID,
		Items:     []OrderLineIn{{MenuItemID: 999, Qty: 1}},
	})
	require.Error(t, err)

	// unavailable item aborts the whole order, nothing persisted
	require.NoError(t, env.menuRepo.UpdateItem(env.chai.ID, map[string]any{"available": false}))
	_, err = env.orders.Create(env.buyer.ID, &CreateOrderReq{
		CanteenID: env.canteen.ID,
		Items: []OrderLineIn{
			{MenuItemID: env.dosa.ID, Qty: 1},
			{MenuItemID: env.chai.ID, Qty: 1},
		},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, env.db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, env.notifier.events)
}

func TestSnapshotPriceSurvivesMenuEdit(t *testing.T) {
	env := newTestEnv(t)

	order := createTestOrder(t, env)
	require.Equal(t, int64(130), order.Total)

	// vendor doubles the dosa price afterwards
	require.NoError(t, env.menuRepo.UpdateItem(env.dosa.ID, map[string]any{"price": int64(200)}))

	got, err := env.orders.DetailForUser(env.buyer.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(130), got.Total)
	for _, it := range got.Items {
		if it.MenuItemID == env.dosa.ID {
			assert.Equal(t, int64(50), it.UnitPrice)
		}
	}
}

func TestAdvanceWalksTheStateMachine(t *testing.T) {
	env := newTestEnv(t)
	order := createTestOrder(t, env)
	env.notifier.events = nil

	want := []entity.OrderStatus{
		entity.OrderConfirmed,
		entity.OrderPreparing,
		entity.OrderReady,
		entity.OrderCompleted,
	}
	for _, expect := range want {
		got, err := env.orders.Advance(env.vendor.ID, "vendor", order.ID)
		require.NoError(t, err)
		assert.Equal(t, expect, got.Status)
	}

	// terminal: one more advance fails and the stored status is untouched
	_, err := env.orders.Advance(env.vendor.ID, "vendor", order.ID)
	require.ErrorIs(t, err, ErrTerminal)
	stored, err := env.orderRepo.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, stored.Status)

	// each transition fanned out to both rooms, in commit order
	canteenEvents := env.notifier.forRoom(ws.CanteenRoom(env.canteen.ID))
	buyerEvents := env.notifier.forRoom(ws.UserRoom(env.buyer.ID))
	require.Len(t, canteenEvents, len(want))
	require.Len(t, buyerEvents, len(want))
	for i, expect := range want {
		assert.Equal(t, expect, canteenEvents[i].Payload.(ws.OrderStatusChangedPayload).NewStatus)
		assert.Equal(t, expect, buyerEvents[i].Payload.(ws.OrderStatusChangedPayload).NewStatus)
	}
}

func TestAdvanceAuthorization(t *testing.T) {
	env := newTestEnv(t)
	order := createTestOrder(t, env)

	// a stranger vendor cannot advance
	_, err := env.orders.Advance(env.buyer.ID, "vendor", order.ID)
	require.ErrorIs(t, err, ErrForbidden)

	// admin capability bypasses ownership
	got, err := env.orders.Advance(12345, "admin", order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, got.Status)

	// missing order
	_, err = env.orders.Advance(env.vendor.ID, "vendor", 999)
	require.Error(t, err)
}

func TestCancelRules(t *testing.T) {
	env := newTestEnv(t)

	// cancellable from every non-terminal state
	for advances := 0; advances <= 3; advances++ {
		order := createTestOrder(t, env)
		for i := 0; i < advances; i++ {
			_, err := env.orders.Advance(env.vendor.ID, "vendor", order.ID)
			require.NoError(t, err)
		}
		got, err := env.orders.Cancel(env.buyer.ID, "customer", order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderCancelled, got.Status)

		// cancelling again is rejected
		_, err = env.orders.Cancel(env.buyer.ID, "customer", order.ID)
		require.ErrorIs(t, err, ErrTerminal)
	}

	// completed orders cannot be cancelled
	order := createTestOrder(t, env)
	for i := 0; i < 4; i++ {
		_, err := env.orders.Advance(env.vendor.ID, "vendor", order.ID)
		require.NoError(t, err)
	}
	_, err := env.orders.Cancel(env.buyer.ID, "customer", order.ID)
	require.ErrorIs(t, err, ErrTerminal)

	// a third party may not cancel someone else's order
	other := createTestOrder(t, env)
	_, err = env.orders.Cancel(4242, "customer", other.ID)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestExampleScenario(t *testing.T) {
	// buyer orders 2× item A (₹50) + 1× item B (₹30) → total 130, pending;
	// vendor advances once → confirmed, one event in each room.
	env := newTestEnv(t)

	order := createTestOrder(t, env)
	require.Equal(t, int64(130), order.Total)
	require.Equal(t, entity.OrderPending, order.Status)
	env.notifier.events = nil

	got, err := env.orders.Advance(env.vendor.ID, "vendor", order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, got.Status)

	canteenEvents := env.notifier.forRoom(ws.CanteenRoom(env.canteen.ID))
	buyerEvents := env.notifier.forRoom(ws.UserRoom(env.buyer.ID))
	require.Len(t, canteenEvents, 1)
	require.Len(t, buyerEvents, 1)
	assert.Equal(t, entity.OrderConfirmed, buyerEvents[0].Payload.(ws.OrderStatusChangedPayload).NewStatus)
	assert.Equal(t, ws.EventOrderStatusChanged, buyerEvents[0].Event)
}

func TestPaymentStatusIndependent(t *testing.T) {
	env := newTestEnv(t)
	order := createTestOrder(t, env)

	// payment flips while the order is still pending
	got, err := env.orders.SetPaymentStatus(env.vendor.ID, "vendor", order.ID, entity.PaymentPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, entity.OrderPending, got.Status)

	_, err = env.orders.SetPaymentStatus(env.vendor.ID, "vendor", order.ID, "gifted")
	require.Error(t, err)

	_, err = env.orders.SetPaymentStatus(env.buyer.ID, "customer", order.ID, entity.PaymentPaid)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestListScopes(t *testing.T) {
	env := newTestEnv(t)
	createTestOrder(t, env)
	createTestOrder(t, env)

	mine, err := env.orders.ListForUser(env.buyer.ID, 10)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	out, err := env.orders.ListForCanteen(env.vendor.ID, "vendor", env.canteen.ID, "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.Total)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Asha Rao", out.Items[0].BuyerName)

	// status filter
	filtered, err := env.orders.ListForCanteen(env.vendor.ID, "vendor", env.canteen.ID, entity.OrderConfirmed, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, filtered.Total)

	// non-owner is refused
	_, err = env.orders.ListForCanteen(env.buyer.ID, "vendor", env.canteen.ID, "", 1, 10)
	require.ErrorIs(t, err, ErrForbidden)
}
