package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stpnv0/SpotKeeper/internal/coordinator/ports"
	"github.com/stpnv0/SpotKeeper/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Registry maps event ids to their actors and exposes the coordinator
// operations. The mutex guards only actor lookup-or-create; capacity state is
// never touched outside an actor goroutine.
type Registry struct {
	store        ports.StateStore
	broadcaster  ports.StatusBroadcaster
	notifier     ports.OpsNotifier
	logger       logger.Logger
	holdDuration time.Duration

	mu     sync.Mutex
	actors map[string]*actor
	closed bool
}

func NewRegistry(
	store ports.StateStore,
	broadcaster ports.StatusBroadcaster,
	notifier ports.OpsNotifier,
	holdDuration time.Duration,
	logger logger.Logger,
) *Registry {
	if holdDuration <= 0 {
		holdDuration = domain.DefaultHoldDuration
	}
	return &Registry{
		store:        store,
		broadcaster:  broadcaster,
		notifier:     notifier,
		logger:       logger,
		holdDuration: holdDuration,
		actors:       make(map[string]*actor),
	}
}

func (r *Registry) actor(eventID string) (*actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, errors.New("coordinator registry is closed")
	}

	a, ok := r.actors[eventID]
	if !ok {
		a = newActor(eventID, r.store)
		r.actors[eventID] = a
	}
	return a, nil
}

// commit persists the mutated state and, on success, publishes a fresh
// snapshot. On failure the caller-supplied undo restores the in-memory state
// so memory never runs ahead of storage. Runs on the actor goroutine.
func (r *Registry) commit(ctx context.Context, a *actor, operation string, undo func()) error {
	if err := a.store.Save(ctx, a.state); err != nil {
		undo()
		r.logger.Error("failed to persist capacity state",
			logger.String("event_id", a.eventID),
			logger.String("operation", operation),
			logger.String("error", err.Error()),
		)
		go r.notifier.NotifyPersistenceFailure(context.WithoutCancel(ctx), a.eventID, operation, err)
		return fmt.Errorf("save state: %w", err)
	}

	r.broadcaster.Publish(a.eventID, a.state.Snapshot())
	return nil
}

// Init creates the capacity record for an event, or overwrites its counts if
// one already exists. Re-initialization preserves active holds: the hold map
// is only ever rebuilt from storage on cold start.
func (r *Registry) Init(ctx context.Context, input domain.InitInput) (domain.StatusSnapshot, error) {
	if input.MaxAttendees < 0 {
		return domain.StatusSnapshot{}, fmt.Errorf("%w: max_attendees must be non-negative", domain.ErrValidation)
	}
	if input.ConfirmedCount < 0 || input.PendingCount < 0 {
		return domain.StatusSnapshot{}, fmt.Errorf("%w: counts must be non-negative", domain.ErrValidation)
	}

	a, err := r.actor(input.EventID)
	if err != nil {
		return domain.StatusSnapshot{}, err
	}

	var (
		snap  domain.StatusSnapshot
		opErr error
	)
	err = a.exec(ctx, func() {
		opCtx := context.WithoutCancel(ctx)
		if opErr = a.ensureLoaded(opCtx, time.Now().UTC()); opErr != nil {
			return
		}

		prev := a.state
		if a.state == nil {
			a.state = domain.NewCoordinatorState(
				input.EventID, input.TenantID,
				input.MaxAttendees, input.ConfirmedCount, input.PendingCount,
			)
		} else {
			saved := *a.state
			prev = &saved
			a.state.TenantID = input.TenantID
			a.state.MaxAttendees = input.MaxAttendees
			a.state.ConfirmedCount = input.ConfirmedCount
			a.state.PendingCount = input.PendingCount
		}

		if opErr = r.commit(opCtx, a, "init", func() { a.state = prev }); opErr != nil {
			return
		}
		snap = a.state.Snapshot()
	})
	if err != nil {
		return domain.StatusSnapshot{}, err
	}
	if opErr != nil {
		return domain.StatusSnapshot{}, opErr
	}

	r.logger.Info("event capacity initialized",
		logger.String("event_id", input.EventID),
		logger.String("tenant_id", input.TenantID),
		logger.Int("max_attendees", input.MaxAttendees),
		logger.Int("available_spots", snap.AvailableSpots),
	)

	return snap, nil
}

// Reserve places a short-lived hold for the user while checkout completes.
// A repeated reserve for the same user returns the existing hold unchanged,
// so retries never double-count capacity. That includes a hold whose expiry
// has already passed but has not been swept yet: the retry sees the original
// expires_at, possibly in the past, until the next sweep reclaims it.
func (r *Registry) Reserve(ctx context.Context, eventID, userID, pricingTier string, holdDuration time.Duration) (*domain.ReservationResult, error) {
	if holdDuration <= 0 {
		holdDuration = r.holdDuration
	}

	a, err := r.actor(eventID)
	if err != nil {
		return nil, err
	}

	var (
		result *domain.ReservationResult
		opErr  error
	)
	err = a.exec(ctx, func() {
		opCtx := context.WithoutCancel(ctx)
		now := time.Now().UTC()
		if opErr = a.ensureLoaded(opCtx, now); opErr != nil {
			return
		}
		if a.state == nil {
			opErr = domain.ErrNotInitialized
			return
		}

		if existing, ok := a.state.Reservations[userID]; ok {
			result = &domain.ReservationResult{
				ReservationID:  userID,
				ExpiresAt:      existing.ExpiresAt,
				AvailableSpots: a.state.AvailableSpots(),
			}
			return
		}

		if a.state.AvailableSpots() <= 0 {
			opErr = domain.ErrAtCapacity
			return
		}

		hold := &domain.ReservationHold{
			UserID:      userID,
			PricingTier: pricingTier,
			CreatedAt:   now,
			ExpiresAt:   now.Add(holdDuration),
		}
		a.state.Reservations[userID] = hold

		if opErr = r.commit(opCtx, a, "reserve", func() { delete(a.state.Reservations, userID) }); opErr != nil {
			return
		}

		result = &domain.ReservationResult{
			ReservationID:  userID,
			ExpiresAt:      hold.ExpiresAt,
			AvailableSpots: a.state.AvailableSpots(),
		}
	})
	if err != nil {
		return nil, err
	}
	if opErr != nil {
		return nil, opErr
	}

	r.logger.Info("hold placed",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("pricing_tier", pricingTier),
		logger.Int("available_spots", result.AvailableSpots),
	)

	return result, nil
}

// Release frees the user's hold. Releasing a hold that does not exist is not
// an error; the state is persisted and broadcast either way.
func (r *Registry) Release(ctx context.Context, eventID, userID string) (domain.StatusSnapshot, error) {
	a, err := r.actor(eventID)
	if err != nil {
		return domain.StatusSnapshot{}, err
	}

	var (
		snap  domain.StatusSnapshot
		opErr error
	)
	err = a.exec(ctx, func() {
		opCtx := context.WithoutCancel(ctx)
		if opErr = a.ensureLoaded(opCtx, time.Now().UTC()); opErr != nil {
			return
		}
		if a.state == nil {
			opErr = domain.ErrNotInitialized
			return
		}

		removed := a.state.Reservations[userID]
		delete(a.state.Reservations, userID)

		undo := func() {
			if removed != nil {
				a.state.Reservations[userID] = removed
			}
		}
		if opErr = r.commit(opCtx, a, "release", undo); opErr != nil {
			return
		}
		snap = a.state.Snapshot()
	})
	if err != nil {
		return domain.StatusSnapshot{}, err
	}
	if opErr != nil {
		return domain.StatusSnapshot{}, opErr
	}

	r.logger.Info("hold released",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("available_spots", snap.AvailableSpots),
	)

	return snap, nil
}

// Confirm turns the user's hold into a permanent allocation. A confirm with
// no matching hold still counts: it comes from the payment workflow after
// money has moved, and rejecting it would strand a paid booking. Such orphan
// confirms inflate confirmedCount from outside any reserve, so they are
// logged and alerted.
func (r *Registry) Confirm(ctx context.Context, eventID, userID, bookingID string) (domain.StatusSnapshot, error) {
	a, err := r.actor(eventID)
	if err != nil {
		return domain.StatusSnapshot{}, err
	}

	var (
		snap   domain.StatusSnapshot
		orphan bool
		opErr  error
	)
	err = a.exec(ctx, func() {
		opCtx := context.WithoutCancel(ctx)
		if opErr = a.ensureLoaded(opCtx, time.Now().UTC()); opErr != nil {
			return
		}
		if a.state == nil {
			opErr = domain.ErrNotInitialized
			return
		}

		removed := a.state.Reservations[userID]
		orphan = removed == nil
		delete(a.state.Reservations, userID)
		a.state.ConfirmedCount++

		undo := func() {
			a.state.ConfirmedCount--
			if removed != nil {
				a.state.Reservations[userID] = removed
			}
		}
		if opErr = r.commit(opCtx, a, "confirm", undo); opErr != nil {
			return
		}
		snap = a.state.Snapshot()
	})
	if err != nil {
		return domain.StatusSnapshot{}, err
	}
	if opErr != nil {
		return domain.StatusSnapshot{}, opErr
	}

	if orphan {
		r.logger.Warn("confirm without matching hold",
			logger.String("event_id", eventID),
			logger.String("user_id", userID),
			logger.String("booking_id", bookingID),
		)
		go r.notifier.NotifyOrphanConfirm(context.WithoutCancel(ctx), eventID, userID, bookingID)
	}

	r.logger.Info("booking confirmed",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.String("booking_id", bookingID),
		logger.Int("confirmed", snap.Confirmed),
	)

	return snap, nil
}

// Cancel frees one permanently allocated spot. The confirmed count is floored
// at zero so a duplicate cancellation cannot manufacture capacity.
func (r *Registry) Cancel(ctx context.Context, eventID, bookingID string) (domain.StatusSnapshot, error) {
	a, err := r.actor(eventID)
	if err != nil {
		return domain.StatusSnapshot{}, err
	}

	var (
		snap  domain.StatusSnapshot
		opErr error
	)
	err = a.exec(ctx, func() {
		opCtx := context.WithoutCancel(ctx)
		if opErr = a.ensureLoaded(opCtx, time.Now().UTC()); opErr != nil {
			return
		}
		if a.state == nil {
			opErr = domain.ErrNotInitialized
			return
		}

		prev := a.state.ConfirmedCount
		if a.state.ConfirmedCount > 0 {
			a.state.ConfirmedCount--
		}

		if opErr = r.commit(opCtx, a, "cancel", func() { a.state.ConfirmedCount = prev }); opErr != nil {
			return
		}
		snap = a.state.Snapshot()
	})
	if err != nil {
		return domain.StatusSnapshot{}, err
	}
	if opErr != nil {
		return domain.StatusSnapshot{}, opErr
	}

	r.logger.Info("booking cancelled",
		logger.String("event_id", eventID),
		logger.String("booking_id", bookingID),
		logger.Int("available_spots", snap.AvailableSpots),
	)

	return snap, nil
}

// Status reports the current snapshot. It runs through the actor inbox like
// every other operation, so a status read never observes a half-applied
// mutation.
func (r *Registry) Status(ctx context.Context, eventID string) (domain.StatusSnapshot, error) {
	a, err := r.actor(eventID)
	if err != nil {
		return domain.StatusSnapshot{}, err
	}

	var (
		snap  domain.StatusSnapshot
		opErr error
	)
	err = a.exec(ctx, func() {
		if opErr = a.ensureLoaded(context.WithoutCancel(ctx), time.Now().UTC()); opErr != nil {
			return
		}
		if a.state == nil {
			opErr = domain.ErrNotInitialized
			return
		}
		snap = a.state.Snapshot()
	})
	if err != nil {
		return domain.StatusSnapshot{}, err
	}
	if opErr != nil {
		return domain.StatusSnapshot{}, opErr
	}

	return snap, nil
}

// SweepExpired reclaims expired holds across every live actor. State is
// persisted and broadcast only for events where at least one hold was
// removed. Per-event failures do not stop the sweep.
func (r *Registry) SweepExpired(ctx context.Context) ([]domain.ExpiredHold, error) {
	r.mu.Lock()
	actors := make([]*actor, 0, len(r.actors))
	for _, a := range r.actors {
		actors = append(actors, a)
	}
	r.mu.Unlock()

	var (
		reclaimed []domain.ExpiredHold
		errs      []error
	)
	// Sweep results are appended from the actor goroutine; the uncancellable
	// exec wait guarantees the closure finished before the next iteration.
	sweepCtx := context.WithoutCancel(ctx)
	for _, a := range actors {
		a := a
		err := a.exec(sweepCtx, func() {
			if !a.loaded || a.state == nil {
				return
			}

			expired := a.state.PruneExpired(time.Now().UTC())
			if len(expired) == 0 {
				return
			}

			undo := func() {
				for _, hold := range expired {
					a.state.Reservations[hold.UserID] = hold
				}
			}
			if err := r.commit(sweepCtx, a, "sweep", undo); err != nil {
				errs = append(errs, fmt.Errorf("event %s: %w", a.eventID, err))
				return
			}

			for _, hold := range expired {
				reclaimed = append(reclaimed, domain.ExpiredHold{
					EventID:     a.eventID,
					UserID:      hold.UserID,
					PricingTier: hold.PricingTier,
					ExpiresAt:   hold.ExpiresAt,
				})
			}
		})
		if err != nil {
			errs = append(errs, err)
		}
	}

	return reclaimed, errors.Join(errs...)
}

// Close stops all actors. In-flight operations finish; new ones are refused.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	actors := make([]*actor, 0, len(r.actors))
	for _, a := range r.actors {
		actors = append(actors, a)
	}
	r.mu.Unlock()

	for _, a := range actors {
		a.stop()
	}
}
