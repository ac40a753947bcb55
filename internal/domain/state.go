package domain

import "time"

const DefaultHoldDuration = 15 * time.Minute

// ReservationHold is a time-bounded, per-user hold on one capacity unit.
// It is not yet a confirmed booking; it either converts via confirm or is
// reclaimed by release/expiry.
type ReservationHold struct {
	UserID      string    `json:"user_id"`
	PricingTier string    `json:"pricing_tier"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (h *ReservationHold) Expired(now time.Time) bool {
	return h.ExpiresAt.Before(now)
}

// CoordinatorState is the capacity bookkeeping for one event. It is owned
// exclusively by that event's actor goroutine; nothing else reads or writes it.
type CoordinatorState struct {
	EventID        string                      `json:"event_id"`
	TenantID       string                      `json:"tenant_id"`
	MaxAttendees   int                         `json:"max_attendees"`
	ConfirmedCount int                         `json:"confirmed_count"`
	PendingCount   int                         `json:"pending_count"`
	Reservations   map[string]*ReservationHold `json:"-"`
}

func NewCoordinatorState(eventID, tenantID string, maxAttendees, confirmedCount, pendingCount int) *CoordinatorState {
	return &CoordinatorState{
		EventID:        eventID,
		TenantID:       tenantID,
		MaxAttendees:   maxAttendees,
		ConfirmedCount: confirmedCount,
		PendingCount:   pendingCount,
		Reservations:   make(map[string]*ReservationHold),
	}
}

// AvailableSpots is recomputed on demand and never stored.
func (s *CoordinatorState) AvailableSpots() int {
	available := s.MaxAttendees - (s.ConfirmedCount + s.PendingCount + len(s.Reservations))
	if available < 0 {
		return 0
	}
	return available
}

// PruneExpired removes every hold whose expiry has passed and returns the
// removed holds. Expiry is judged against absolute timestamps, so a late
// prune still reclaims everything that should be gone.
func (s *CoordinatorState) PruneExpired(now time.Time) []*ReservationHold {
	var expired []*ReservationHold
	for userID, hold := range s.Reservations {
		if hold.Expired(now) {
			expired = append(expired, hold)
			delete(s.Reservations, userID)
		}
	}
	return expired
}

func (s *CoordinatorState) Snapshot() StatusSnapshot {
	return StatusSnapshot{
		AvailableSpots: s.AvailableSpots(),
		Confirmed:      s.ConfirmedCount,
		Pending:        len(s.Reservations),
	}
}

// StatusSnapshot is what status() returns and what subscribers receive.
// Pending counts active holds, not the externally-pending count from init.
type StatusSnapshot struct {
	AvailableSpots int `json:"available_spots"`
	Confirmed      int `json:"confirmed"`
	Pending        int `json:"pending"`
}

type InitInput struct {
	EventID        string
	TenantID       string
	MaxAttendees   int
	ConfirmedCount int
	PendingCount   int
}

// ReservationResult is the successful outcome of reserve. ReservationID
// equals the user id: one active hold per user.
type ReservationResult struct {
	ReservationID  string
	ExpiresAt      time.Time
	AvailableSpots int
}

// ExpiredHold is a sweep record, used for logging and alerting only.
type ExpiredHold struct {
	EventID     string
	UserID      string
	PricingTier string
	ExpiresAt   time.Time
}
