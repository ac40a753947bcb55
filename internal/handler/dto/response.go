package dto

import (
	"time"

	"github.com/stpnv0/SpotKeeper/internal/domain"
)

// Envelope is the shared response shape for every operation.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

type StatusData struct {
	AvailableSpots int `json:"available_spots"`
	Confirmed      int `json:"confirmed"`
	Pending        int `json:"pending"`
}

type ReserveData struct {
	ReservationID  string `json:"reservation_id"`
	ExpiresAt      string `json:"expires_at"`
	AvailableSpots int    `json:"available_spots"`
}

type ReleaseData struct {
	AvailableSpots int `json:"available_spots"`
}

type ConfirmData struct {
	AvailableSpots int `json:"available_spots"`
	Confirmed      int `json:"confirmed"`
}

type CancelData struct {
	AvailableSpots int `json:"available_spots"`
	Confirmed      int `json:"confirmed"`
}

func ToStatusData(s domain.StatusSnapshot) StatusData {
	return StatusData{
		AvailableSpots: s.AvailableSpots,
		Confirmed:      s.Confirmed,
		Pending:        s.Pending,
	}
}

func ToReserveData(r *domain.ReservationResult) ReserveData {
	return ReserveData{
		ReservationID:  r.ReservationID,
		ExpiresAt:      r.ExpiresAt.Format(time.RFC3339),
		AvailableSpots: r.AvailableSpots,
	}
}

// StatusFrame is the websocket message shape. The server sends type "status"
// on open and after every state change; "error" frames answer bad input.
type StatusFrame struct {
	Type  string      `json:"type"`
	Data  *StatusData `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// ClientFrame is what a websocket client may send. Only "subscribe" is
// recognized; it tags the connection with a user identity.
type ClientFrame struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
}
