package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/SpotKeeper/internal/coordinator/ports"
	"github.com/stpnv0/SpotKeeper/internal/domain"
)

// actor owns all capacity bookkeeping for one event. Every operation runs as
// a closure on the actor goroutine, one at a time, so the check-then-act
// reservation decision never interleaves with another operation for the same
// event. Sweep commands travel through the same inbox as client operations.
type actor struct {
	eventID string
	inbox   chan func()
	quit    chan struct{}
	done    chan struct{}

	store ports.StateStore

	// Owned by the actor goroutine. nil state with loaded=true means no
	// record exists yet and init has not been called.
	state  *domain.CoordinatorState
	loaded bool
}

func newActor(eventID string, store ports.StateStore) *actor {
	a := &actor{
		eventID: eventID,
		inbox:   make(chan func(), 64),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		store:   store,
	}
	go a.run()
	return a
}

func (a *actor) run() {
	defer close(a.done)
	for {
		select {
		case fn := <-a.inbox:
			fn()
		case <-a.quit:
			// operations already accepted into the inbox still run; only
			// then does the goroutine stop
			for {
				select {
				case fn := <-a.inbox:
					fn()
				default:
					return
				}
			}
		}
	}
}

// exec runs fn on the actor goroutine and waits for it to finish. An
// operation accepted into the inbox runs to completion even when stop races
// the enqueue; cancellation only stops the caller from waiting on the result.
func (a *actor) exec(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	wrapped := func() {
		defer close(ran)
		fn()
	}

	select {
	case a.inbox <- wrapped:
	case <-a.quit:
		return fmt.Errorf("coordinator for event %s is stopped", a.eventID)
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-ran:
		return nil
	case <-a.done:
		// the goroutine drained its inbox and exited; the enqueue lost the
		// race with stop and fn will never run
		select {
		case <-ran:
			return nil
		default:
		}
		return fmt.Errorf("coordinator for event %s is stopped", a.eventID)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ensureLoaded restores state from storage on cold start. Holds that expired
// while no actor was alive are pruned before the state is used, so a restart
// never resurrects dead holds. Runs on the actor goroutine only.
func (a *actor) ensureLoaded(ctx context.Context, now time.Time) error {
	if a.loaded {
		return nil
	}

	state, err := a.store.Load(ctx, a.eventID)
	switch {
	case err == nil:
		state.PruneExpired(now)
		a.state = state
	case errors.Is(err, domain.ErrStateNotFound):
		a.state = nil
	default:
		return fmt.Errorf("load state: %w", err)
	}

	a.loaded = true
	return nil
}

func (a *actor) stop() {
	close(a.quit)
	<-a.done
}
