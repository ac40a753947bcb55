package ports

import "github.com/stpnv0/SpotKeeper/internal/domain"

// StatusBroadcaster pushes a fresh snapshot to everyone watching an event.
// Publishing is best-effort and must never block the caller.
type StatusBroadcaster interface {
	Publish(eventID string, snapshot domain.StatusSnapshot)
}
