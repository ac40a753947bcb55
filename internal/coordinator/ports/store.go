package ports

import (
	"context"

	"github.com/stpnv0/SpotKeeper/internal/domain"
)

// StateStore persists one capacity record per event. Load returns
// domain.ErrStateNotFound when no record exists for the event.
type StateStore interface {
	Load(ctx context.Context, eventID string) (*domain.CoordinatorState, error)
	Save(ctx context.Context, state *domain.CoordinatorState) error
}
