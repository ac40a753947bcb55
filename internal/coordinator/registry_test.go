package coordinator

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/SpotKeeper/internal/coordinator/ports/mocks"
	"github.com/stpnv0/SpotKeeper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestRegistry(t *testing.T, holdDuration time.Duration) (*Registry, *mocks.MockStateStore, *mocks.MockStatusBroadcaster, *mocks.MockOpsNotifier) {
	t.Helper()
	store := mocks.NewMockStateStore(t)
	broadcaster := mocks.NewMockStatusBroadcaster(t)
	notifier := mocks.NewMockOpsNotifier(t)

	r := NewRegistry(store, broadcaster, notifier, holdDuration, newTestLogger(t))
	t.Cleanup(r.Close)

	return r, store, broadcaster, notifier
}

func initEvent(t *testing.T, r *Registry, eventID string, maxAttendees, confirmed, pending int) domain.StatusSnapshot {
	t.Helper()
	snap, err := r.Init(context.Background(), domain.InitInput{
		EventID:        eventID,
		TenantID:       "t1",
		MaxAttendees:   maxAttendees,
		ConfirmedCount: confirmed,
		PendingCount:   pending,
	})
	require.NoError(t, err)
	return snap
}

func TestRegistry_InitAndStatus(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Once()

	snap := initEvent(t, r, "e1", 2, 0, 0)
	assert.Equal(t, 2, snap.AvailableSpots)

	status, err := r.Status(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSnapshot{AvailableSpots: 2, Confirmed: 0, Pending: 0}, status)
}

func TestRegistry_Init_PendingCountsAgainstCapacity(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Once()

	snap := initEvent(t, r, "e1", 10, 3, 2)
	assert.Equal(t, 5, snap.AvailableSpots)
	assert.Equal(t, 3, snap.Confirmed)
	// the status "pending" field counts holds, not the external pending count
	assert.Equal(t, 0, snap.Pending)
}

func TestRegistry_Init_RejectsNegativeCounts(t *testing.T) {
	r, _, _, _ := newTestRegistry(t, 0)

	_, err := r.Init(context.Background(), domain.InitInput{EventID: "e1", MaxAttendees: -1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistry_Reserve_UntilCapacity(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(3)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(3)

	initEvent(t, r, "e1", 2, 0, 0)

	res1, err := r.Reserve(context.Background(), "e1", "u1", "standard", 0)
	require.NoError(t, err)
	assert.Equal(t, "u1", res1.ReservationID)
	assert.Equal(t, 1, res1.AvailableSpots)

	res2, err := r.Reserve(context.Background(), "e1", "u2", "standard", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res2.AvailableSpots)

	_, err = r.Reserve(context.Background(), "e1", "u3", "standard", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAtCapacity)
}

func TestRegistry_Reserve_ZeroSpotsAlwaysFails(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Once()

	initEvent(t, r, "e1", 2, 2, 0)

	_, err := r.Reserve(context.Background(), "e1", "u1", "standard", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAtCapacity)
}

func TestRegistry_Reserve_Idempotent(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	// init + first reserve persist; the retry must not
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(2)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(2)

	initEvent(t, r, "e1", 5, 0, 0)

	first, err := r.Reserve(context.Background(), "e1", "u1", "vip", 0)
	require.NoError(t, err)

	second, err := r.Reserve(context.Background(), "e1", "u1", "vip", 0)
	require.NoError(t, err)

	assert.Equal(t, first.ExpiresAt, second.ExpiresAt)
	assert.Equal(t, first.AvailableSpots, second.AvailableSpots)
}

func TestRegistry_Reserve_DefaultHoldDuration(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(2)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(2)

	initEvent(t, r, "e1", 5, 0, 0)

	before := time.Now().UTC()
	res, err := r.Reserve(context.Background(), "e1", "u1", "standard", 0)
	require.NoError(t, err)

	expected := before.Add(domain.DefaultHoldDuration)
	assert.WithinDuration(t, expected, res.ExpiresAt, 5*time.Second)
}

func TestRegistry_Reserve_NotInitialized(t *testing.T) {
	r, store, _, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "missing").Return(nil, domain.ErrStateNotFound).Once()

	_, err := r.Reserve(context.Background(), "missing", "u1", "standard", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestRegistry_Release_FreesHold(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(3)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(3)

	initEvent(t, r, "e1", 1, 0, 0)

	_, err := r.Reserve(context.Background(), "e1", "u1", "standard", 0)
	require.NoError(t, err)

	snap, err := r.Release(context.Background(), "e1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.AvailableSpots)
	assert.Equal(t, 0, snap.Pending)

	// freed capacity is reservable again
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Once()
	_, err = r.Reserve(context.Background(), "e1", "u2", "standard", 0)
	require.NoError(t, err)
}

func TestRegistry_Release_AbsentHoldIsNoError(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(2)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(2)

	initEvent(t, r, "e1", 3, 0, 0)

	snap, err := r.Release(context.Background(), "e1", "nobody")

	require.NoError(t, err)
	assert.Equal(t, 3, snap.AvailableSpots)
}

func TestRegistry_Confirm_MovesHoldToConfirmed(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(4)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(4)

	initEvent(t, r, "e1", 2, 0, 0)

	_, err := r.Reserve(context.Background(), "e1", "u1", "standard", 0)
	require.NoError(t, err)
	_, err = r.Reserve(context.Background(), "e1", "u2", "standard", 0)
	require.NoError(t, err)

	snap, err := r.Confirm(context.Background(), "e1", "u1", "b1")
	require.NoError(t, err)

	// hold swapped for a confirmed seat, availability unchanged
	assert.Equal(t, 0, snap.AvailableSpots)
	assert.Equal(t, 1, snap.Confirmed)
	assert.Equal(t, 1, snap.Pending)
}

func TestRegistry_Confirm_WithoutHoldAlerts(t *testing.T) {
	r, store, broadcaster, notifier := newTestRegistry(t, 0)

	notified := make(chan struct{})
	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(2)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(2)
	notifier.EXPECT().NotifyOrphanConfirm(mock.Anything, "e1", "ghost", "b9").
		Run(func(context.Context, string, string, string) { close(notified) }).
		Return()

	initEvent(t, r, "e1", 2, 0, 0)

	snap, err := r.Confirm(context.Background(), "e1", "ghost", "b9")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Confirmed)
	assert.Equal(t, 1, snap.AvailableSpots)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("orphan confirm alert never fired")
	}
}

func TestRegistry_Cancel_FreesConfirmedSpot(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(2)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(2)

	initEvent(t, r, "e1", 2, 1, 0)

	snap, err := r.Cancel(context.Background(), "e1", "b1")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Confirmed)
	assert.Equal(t, 2, snap.AvailableSpots)
}

func TestRegistry_Cancel_FlooredAtZero(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(3)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(3)

	initEvent(t, r, "e1", 2, 0, 0)

	snap, err := r.Cancel(context.Background(), "e1", "b1")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Confirmed)

	snap, err = r.Cancel(context.Background(), "e1", "b1")
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Confirmed)
	assert.Equal(t, 2, snap.AvailableSpots)
}

func TestRegistry_ReInit_PreservesHolds(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(3)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(3)

	initEvent(t, r, "e1", 5, 0, 0)

	_, err := r.Reserve(context.Background(), "e1", "u1", "standard", 0)
	require.NoError(t, err)

	snap := initEvent(t, r, "e1", 10, 2, 1)

	assert.Equal(t, 2, snap.Confirmed)
	assert.Equal(t, 1, snap.Pending)
	assert.Equal(t, 10-(2+1+1), snap.AvailableSpots)
}

func TestRegistry_ColdStart_LoadsAndPrunes(t *testing.T) {
	r, store, _, _ := newTestRegistry(t, 0)

	now := time.Now().UTC()
	stored := domain.NewCoordinatorState("e1", "t1", 5, 1, 0)
	stored.Reservations["live"] = &domain.ReservationHold{
		UserID: "live", PricingTier: "standard",
		CreatedAt: now, ExpiresAt: now.Add(10 * time.Minute),
	}
	stored.Reservations["stale"] = &domain.ReservationHold{
		UserID: "stale", PricingTier: "standard",
		CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(-45 * time.Minute),
	}
	store.EXPECT().Load(mock.Anything, "e1").Return(stored, nil).Once()

	snap, err := r.Status(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, 1, snap.Pending)
	assert.Equal(t, 1, snap.Confirmed)
	assert.Equal(t, 3, snap.AvailableSpots)
}

func TestRegistry_SaveFailure_RollsBack(t *testing.T) {
	r, store, broadcaster, notifier := newTestRegistry(t, 0)

	notified := make(chan struct{})
	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Once()
	notifier.EXPECT().NotifyPersistenceFailure(mock.Anything, "e1", "reserve", mock.Anything).
		Run(func(context.Context, string, string, error) { close(notified) }).
		Return()

	initEvent(t, r, "e1", 3, 0, 0)

	_, err := r.Reserve(context.Background(), "e1", "u1", "standard", 0)
	require.Error(t, err)

	status, err := r.Status(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, 3, status.AvailableSpots)
	assert.Equal(t, 0, status.Pending)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("persistence failure alert never fired")
	}
}

func TestRegistry_SweepExpired_ReclaimsOverdueHolds(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(4)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(4)

	initEvent(t, r, "e1", 3, 0, 0)

	_, err := r.Reserve(context.Background(), "e1", "u1", "standard", 10*time.Millisecond)
	require.NoError(t, err)
	_, err = r.Reserve(context.Background(), "e1", "u2", "standard", time.Hour)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	reclaimed, err := r.SweepExpired(context.Background())
	require.NoError(t, err)
	require.Len(t, reclaimed, 1)
	assert.Equal(t, "e1", reclaimed[0].EventID)
	assert.Equal(t, "u1", reclaimed[0].UserID)

	status, err := r.Status(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, 1, status.Pending)
	assert.Equal(t, 2, status.AvailableSpots)
}

func TestRegistry_SweepExpired_NothingOverdue(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	// init + reserve only: a sweep with nothing to reclaim must not persist
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(2)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(2)

	initEvent(t, r, "e1", 3, 0, 0)

	_, err := r.Reserve(context.Background(), "e1", "u1", "standard", time.Hour)
	require.NoError(t, err)

	reclaimed, err := r.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reclaimed)
}

func TestRegistry_ConcurrentReserves_NeverOversell(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return()

	const maxAttendees = 5
	const contenders = 50

	initEvent(t, r, "e1", maxAttendees, 0, 0)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			userID := uuidLike(n)
			_, err := r.Reserve(context.Background(), "e1", userID, "standard", 0)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrAtCapacity):
				rejected++
			default:
				t.Errorf("unexpected reserve error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, maxAttendees, succeeded)
	assert.Equal(t, contenders-maxAttendees, rejected)

	status, err := r.Status(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, 0, status.AvailableSpots)
	assert.Equal(t, maxAttendees, status.Pending)
}

func TestRegistry_RoundTrip_SurvivesRestart(t *testing.T) {
	r1, store1, broadcaster1, _ := newTestRegistry(t, 0)

	var persisted *domain.CoordinatorState
	store1.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store1.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, state *domain.CoordinatorState) error {
			persisted = cloneState(t, state)
			return nil
		})
	broadcaster1.EXPECT().Publish("e1", mock.Anything).Return()

	initEvent(t, r1, "e1", 10, 2, 1)
	_, err := r1.Reserve(context.Background(), "e1", "u1", "vip", time.Hour)
	require.NoError(t, err)
	_, err = r1.Reserve(context.Background(), "e1", "u2", "standard", time.Hour)
	require.NoError(t, err)

	before, err := r1.Status(context.Background(), "e1")
	require.NoError(t, err)

	// simulate a restart: fresh registry, state comes back from storage only
	r2, store2, _, _ := newTestRegistry(t, 0)
	store2.EXPECT().Load(mock.Anything, "e1").Return(persisted, nil).Once()

	after, err := r2.Status(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRegistry_Close_RunsQueuedOperations(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return()

	initEvent(t, r, "e1", 10, 0, 0)

	a, err := r.actor("e1")
	require.NoError(t, err)

	// park the actor goroutine so the next operation queues in the inbox
	gate := make(chan struct{})
	parked := make(chan struct{})
	go func() {
		_ = a.exec(context.Background(), func() {
			close(parked)
			<-gate
		})
	}()
	<-parked

	queued := make(chan error, 1)
	go func() {
		_, err := r.Status(context.Background(), "e1")
		queued <- err
	}()
	time.Sleep(10 * time.Millisecond) // let the status op land in the inbox

	closed := make(chan struct{})
	go func() {
		r.Close()
		close(closed)
	}()
	close(gate)

	// the queued operation must complete, not hang behind the close
	select {
	case err := <-queued:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("queued operation stranded by close")
	}

	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatal("close did not finish")
	}
}

func TestRegistry_Reserve_RetryMayReturnExpiredHoldBeforeSweep(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	// init + first reserve persist; the retry returns the stale hold as is
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Times(2)
	broadcaster.EXPECT().Publish("e1", mock.Anything).Return().Times(2)

	initEvent(t, r, "e1", 3, 0, 0)

	first, err := r.Reserve(context.Background(), "e1", "u1", "standard", 10*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	second, err := r.Reserve(context.Background(), "e1", "u1", "standard", 0)
	require.NoError(t, err)
	assert.Equal(t, first.ExpiresAt, second.ExpiresAt)
	assert.True(t, second.ExpiresAt.Before(time.Now().UTC()))
}

func TestRegistry_EventsAreIndependent(t *testing.T) {
	r, store, broadcaster, _ := newTestRegistry(t, 0)

	store.EXPECT().Load(mock.Anything, "e1").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Load(mock.Anything, "e2").Return(nil, domain.ErrStateNotFound).Once()
	store.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	broadcaster.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	initEvent(t, r, "e1", 1, 0, 0)
	initEvent(t, r, "e2", 1, 0, 0)

	_, err := r.Reserve(context.Background(), "e1", "u1", "standard", 0)
	require.NoError(t, err)

	// a full e1 must not affect e2
	_, err = r.Reserve(context.Background(), "e2", "u1", "standard", 0)
	require.NoError(t, err)

	_, err = r.Reserve(context.Background(), "e1", "u2", "standard", 0)
	assert.ErrorIs(t, err, domain.ErrAtCapacity)
}

// cloneState deep-copies through JSON so the original actor keeps mutating
// its own map without touching the captured snapshot.
func cloneState(t *testing.T, state *domain.CoordinatorState) *domain.CoordinatorState {
	t.Helper()

	clone := *state
	clone.Reservations = make(map[string]*domain.ReservationHold, len(state.Reservations))
	raw, err := json.Marshal(state.Reservations)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &clone.Reservations))

	return &clone
}

func uuidLike(n int) string {
	const hex = "0123456789abcdef"
	id := []byte("00000000-0000-4000-8000-000000000000")
	for i := len(id) - 1; n > 0 && i >= 0; i-- {
		if id[i] == '-' {
			continue
		}
		id[i] = hex[n%16]
		n /= 16
	}
	return string(id)
}
