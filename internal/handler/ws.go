package handler

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/stpnv0/SpotKeeper/internal/broadcast"
	"github.com/stpnv0/SpotKeeper/internal/domain"
	"github.com/stpnv0/SpotKeeper/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/net/websocket"
)

// wsPeer serializes frame writes: the snapshot pump and the read loop may
// both answer on the same connection.
type wsPeer struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func newWSPeer(enc *json.Encoder) *wsPeer {
	return &wsPeer{enc: enc}
}

func (p *wsPeer) send(frame dto.StatusFrame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enc.Encode(frame)
}

// Watch upgrades the connection and streams status snapshots for one event:
// one frame on open, then one per state change until either side closes.
func (h *Handler) Watch(c *ginext.Context) {
	eventID, ok := h.eventID(c)
	if !ok {
		return
	}

	ws := websocket.Handler(func(conn *websocket.Conn) {
		h.serveWatch(conn, eventID)
	})
	ws.ServeHTTP(c.Writer, c.Request)
}

func (h *Handler) serveWatch(conn *websocket.Conn, eventID string) {
	defer func() {
		_ = conn.Close()
	}()

	peer := newWSPeer(json.NewEncoder(conn))

	// Subscribe before the initial snapshot so no change can fall between
	// the two.
	sub := h.hub.Subscribe(eventID)
	defer h.hub.Unsubscribe(sub)

	snap, err := h.coordinator.Status(conn.Request().Context(), eventID)
	if err != nil {
		msg := "internal server error"
		if errors.Is(err, domain.ErrNotInitialized) {
			msg = err.Error()
		}
		_ = peer.send(dto.StatusFrame{Type: "error", Error: msg})
		return
	}
	if err := h.sendStatus(peer, snap); err != nil {
		return
	}

	closed := make(chan struct{})
	go h.readFrames(conn, peer, sub, closed)

	for {
		select {
		case snapshot, open := <-sub.C:
			if !open {
				// dropped by the hub for lagging
				return
			}
			if err := h.sendStatus(peer, snapshot); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}

func (h *Handler) sendStatus(peer *wsPeer, snap domain.StatusSnapshot) error {
	data := dto.ToStatusData(snap)
	return peer.send(dto.StatusFrame{Type: "status", Data: &data})
}

// readFrames drains client frames until disconnect. The only meaningful
// frame is "subscribe", which tags the connection with a user identity.
func (h *Handler) readFrames(conn *websocket.Conn, peer *wsPeer, sub *broadcast.Subscriber, closed chan<- struct{}) {
	defer close(closed)

	dec := json.NewDecoder(conn)
	for {
		var frame dto.ClientFrame
		if err := dec.Decode(&frame); err != nil {
			return
		}

		switch frame.Type {
		case "subscribe":
			sub.Associate(frame.UserID)
			h.logger.Debug("watch connection associated",
				logger.String("user_id", frame.UserID),
			)
		default:
			_ = peer.send(dto.StatusFrame{Type: "error", Error: "unsupported frame type"})
		}
	}
}
