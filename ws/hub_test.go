package ws

import (
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu     sync.Mutex
	writes []Envelope
	fail   bool
	closed bool
}

func (c *fakeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.writes = append(c.writes, v.(Envelope))
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() []Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Envelope, len(c.writes))
	copy(out, c.writes)
	return out
}

func TestPublishTargetsOnlyRoomMembers(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	vendorConn := &fakeConn{}
	buyerConn := &fakeConn{}
	hub.Join(NewClient(vendorConn), CanteenRoom(1))
	hub.Join(NewClient(buyerConn), UserRoom(9))

	hub.Publish(CanteenRoom(1), EventOrderCreated, OrderCreatedPayload{OrderID: 42})

	got := vendorConn.received()
	require.Len(t, got, 1)
	assert.Equal(t, EventOrderCreated, got[0].Event)
	assert.Empty(t, buyerConn.received(), "user:9 must not see canteen:1 traffic")
}

func TestPublishToEmptyRoomIsSilentlyDropped(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	// no members anywhere; must not panic or error
	hub.Publish(CanteenRoom(7), EventOrderStatusChanged, OrderStatusChangedPayload{OrderID: 1})
	assert.Zero(t, hub.RoomSize(CanteenRoom(7)))
}

func TestClientMayJoinSeveralRooms(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	conn := &fakeConn{}
	client := NewClient(conn)
	hub.Join(client, UserRoom(3))
	hub.Join(client, CanteenRoom(8))

	hub.Publish(UserRoom(3), EventOrderStatusChanged, nil)
	hub.Publish(CanteenRoom(8), EventOrderCreated, nil)

	assert.Len(t, conn.received(), 2)
}

func TestRemoveEndsDeliveryEverywhere(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	conn := &fakeConn{}
	client := NewClient(conn)
	hub.Join(client, UserRoom(3))
	hub.Join(client, CanteenRoom(8))

	hub.Publish(UserRoom(3), EventOrderStatusChanged, nil)
	hub.Remove(client)
	hub.Publish(UserRoom(3), EventOrderStatusChanged, nil)
	hub.Publish(CanteenRoom(8), EventOrderCreated, nil)

	assert.Len(t, conn.received(), 1, "no delivery after removal")
	assert.True(t, conn.closed)
	assert.Zero(t, hub.RoomSize(UserRoom(3)))
	assert.Zero(t, hub.RoomSize(CanteenRoom(8)))
}

func TestDuplicateJoinIsIdempotent(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	conn := &fakeConn{}
	client := NewClient(conn)
	hub.Join(client, CanteenRoom(1))
	hub.Join(client, CanteenRoom(1))

	hub.Publish(CanteenRoom(1), EventOrderCreated, nil)
	assert.Len(t, conn.received(), 1)
	assert.Equal(t, 1, hub.RoomSize(CanteenRoom(1)))
}

func TestFailedWriteEvictsOnlyThatClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	broken := &fakeConn{fail: true}
	healthy := &fakeConn{}
	hub.Join(NewClient(broken), CanteenRoom(1))
	hub.Join(NewClient(healthy), CanteenRoom(1))

	hub.Publish(CanteenRoom(1), EventOrderCreated, nil)

	assert.Len(t, healthy.received(), 1)
	assert.True(t, broken.closed)
	assert.Equal(t, 1, hub.RoomSize(CanteenRoom(1)))

	// next publish reaches the survivor only
	hub.Publish(CanteenRoom(1), EventOrderCreated, nil)
	assert.Len(t, healthy.received(), 2)
}

func TestConcurrentJoinPublishRemove(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn := &fakeConn{}
			client := NewClient(conn)
			hub.Join(client, CanteenRoom(1))
			hub.Publish(CanteenRoom(1), EventOrderCreated, nil)
			hub.Remove(client)
		}()
	}
	wg.Wait()
	assert.Zero(t, hub.RoomSize(CanteenRoom(1)))
}
