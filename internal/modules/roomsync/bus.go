package roomsync

import (
	"sync"

	"tapechart/internal/domain"
)

// Event is the one signal this package carries: a confirmed room
// status write. It never mentions reservations, keeping scheduling
// undo/redo independent of housekeeping churn.
type Event struct {
	Room   string            `json:"room"`
	Status domain.RoomStatus `json:"status"`
}

const subscriberBuffer = 16

// Bus is the in-process publish/subscribe channel for room-status
// events. Grid views subscribe to invalidate their cached statuses;
// the websocket hub subscribes to relay the signal to other tabs.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan Event
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener. The returned cancel func must be
// called when the view closes; after cancel the channel is closed.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// PublishRoomStatus is the housekeeping-facing form of Publish.
func (b *Bus) PublishRoomStatus(room string, status domain.RoomStatus) {
	b.Publish(Event{Room: room, Status: status})
}

// Publish delivers the event to every subscriber. A subscriber that
// has fallen subscriberBuffer events behind is skipped; the periodic
// refetch catches it up.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
