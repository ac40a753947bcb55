package ports

import "context"

// OpsNotifier alerts operators about conditions that must not reach end
// users: failed persistence and confirms that arrive without a matching hold.
type OpsNotifier interface {
	NotifyPersistenceFailure(ctx context.Context, eventID, operation string, err error)
	NotifyOrphanConfirm(ctx context.Context, eventID, userID, bookingID string)
}
