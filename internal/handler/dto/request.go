package dto

type InitRequest struct {
	TenantID       string `json:"tenant_id" binding:"required"`
	MaxAttendees   int    `json:"max_attendees" binding:"min=0"`
	ConfirmedCount int    `json:"confirmed_count" binding:"min=0"`
	PendingCount   int    `json:"pending_count" binding:"min=0"`
}

type ReserveRequest struct {
	UserID      string `json:"user_id" binding:"required,uuid"`
	PricingTier string `json:"pricing_tier" binding:"required"`
	// Optional override of the default hold duration, in milliseconds.
	HoldDurationMs int64 `json:"hold_duration_ms" binding:"min=0"`
}

type ReleaseRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type ConfirmRequest struct {
	UserID    string `json:"user_id" binding:"required,uuid"`
	BookingID string `json:"booking_id" binding:"required"`
}

type CancelRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}
