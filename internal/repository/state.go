package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/stpnv0/SpotKeeper/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// StateRepository stores one capacity record per event. The hold map is
// serialized as an ordered list so the persisted form is stable across
// saves of the same state.
type StateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStateRepo(db *dbpg.DB) *StateRepository {
	return &StateRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *StateRepository) Save(ctx context.Context, state *domain.CoordinatorState) error {
	holds, err := marshalHolds(state.Reservations)
	if err != nil {
		return fmt.Errorf("marshal reservations: %w", err)
	}

	query := `INSERT INTO event_capacity (event_id, tenant_id, max_attendees, confirmed_count, pending_count, reservations, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, now())
			  ON CONFLICT (event_id) DO UPDATE
			  SET tenant_id = EXCLUDED.tenant_id,
				  max_attendees = EXCLUDED.max_attendees,
				  confirmed_count = EXCLUDED.confirmed_count,
				  pending_count = EXCLUDED.pending_count,
				  reservations = EXCLUDED.reservations,
				  updated_at = now()`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		state.EventID, state.TenantID, state.MaxAttendees,
		state.ConfirmedCount, state.PendingCount, holds,
	)
	if err != nil {
		return fmt.Errorf("upsert capacity state: %w", err)
	}

	return nil
}

func (r *StateRepository) Load(ctx context.Context, eventID string) (*domain.CoordinatorState, error) {
	query := `SELECT event_id, tenant_id, max_attendees, confirmed_count, pending_count, reservations
			  FROM event_capacity
			  WHERE event_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get capacity state: %w", err)
	}

	var (
		state domain.CoordinatorState
		holds []byte
	)
	if err = row.Scan(
		&state.EventID, &state.TenantID, &state.MaxAttendees,
		&state.ConfirmedCount, &state.PendingCount, &holds,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStateNotFound
		}
		return nil, fmt.Errorf("scan capacity state: %w", err)
	}

	state.Reservations, err = unmarshalHolds(holds)
	if err != nil {
		return nil, fmt.Errorf("unmarshal reservations: %w", err)
	}

	return &state, nil
}

// marshalHolds flattens the hold map into a JSON list ordered by creation
// time, with the user id as a tie breaker.
func marshalHolds(reservations map[string]*domain.ReservationHold) ([]byte, error) {
	holds := make([]*domain.ReservationHold, 0, len(reservations))
	for _, hold := range reservations {
		holds = append(holds, hold)
	}
	sort.Slice(holds, func(i, j int) bool {
		if holds[i].CreatedAt.Equal(holds[j].CreatedAt) {
			return holds[i].UserID < holds[j].UserID
		}
		return holds[i].CreatedAt.Before(holds[j].CreatedAt)
	})

	return json.Marshal(holds)
}

func unmarshalHolds(data []byte) (map[string]*domain.ReservationHold, error) {
	reservations := make(map[string]*domain.ReservationHold)
	if len(data) == 0 {
		return reservations, nil
	}

	var holds []*domain.ReservationHold
	if err := json.Unmarshal(data, &holds); err != nil {
		return nil, err
	}
	for _, hold := range holds {
		reservations[hold.UserID] = hold
	}

	return reservations, nil
}
