package broadcast

import (
	"sync"

	"github.com/stpnv0/SpotKeeper/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const defaultSendBuffer = 16

// Subscriber is one live watcher of an event. Snapshots arrive on C until
// the hub closes it, either on Unsubscribe or because the subscriber stopped
// draining its buffer.
type Subscriber struct {
	C chan domain.StatusSnapshot

	eventID string

	mu     sync.Mutex
	userID string
}

// Associate tags the subscriber with a user identity. Used for logging only;
// snapshots are delivered regardless.
func (s *Subscriber) Associate(userID string) {
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()
}

func (s *Subscriber) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Hub maintains a subscriber set per event and fans status snapshots out to
// it. Delivery is best-effort: a subscriber that cannot accept a snapshot is
// closed and dropped, and publishing never reports failure to the caller.
type Hub struct {
	buffer int
	logger logger.Logger

	mu   sync.Mutex
	subs map[string]map[*Subscriber]struct{}
}

func NewHub(buffer int, logger logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = defaultSendBuffer
	}
	return &Hub{
		buffer: buffer,
		logger: logger,
		subs:   make(map[string]map[*Subscriber]struct{}),
	}
}

func (h *Hub) Subscribe(eventID string) *Subscriber {
	sub := &Subscriber{
		C:       make(chan domain.StatusSnapshot, h.buffer),
		eventID: eventID,
	}

	h.mu.Lock()
	set, ok := h.subs[eventID]
	if !ok {
		set = make(map[*Subscriber]struct{})
		h.subs[eventID] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	h.remove(sub)
	h.mu.Unlock()
}

// Publish sends a snapshot to every subscriber of the event. A full buffer
// means the subscriber is gone or hopelessly behind; it is dropped so one
// dead connection cannot pin memory forever.
func (h *Hub) Publish(eventID string, snapshot domain.StatusSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs[eventID] {
		select {
		case sub.C <- snapshot:
		default:
			h.remove(sub)
			h.logger.Warn("dropped lagging subscriber",
				logger.String("event_id", eventID),
				logger.String("user_id", sub.UserID()),
			)
		}
	}
}

// remove must be called with h.mu held.
func (h *Hub) remove(sub *Subscriber) {
	set, ok := h.subs[sub.eventID]
	if _, member := set[sub]; !ok || !member {
		return
	}
	delete(set, sub)
	if len(set) == 0 {
		delete(h.subs, sub.eventID)
	}
	close(sub.C)
}
