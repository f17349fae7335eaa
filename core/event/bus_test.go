package event_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/event"
	"github.com/dmitrymomot/dispatch/core/request"
)

type UserCreated struct {
	UserID string
}

type OrderPlaced struct {
	OrderID string
}

func TestBus_DispatchRunsHandlersInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	bus := event.NewBus(event.WithHandler(
		event.NewHandlerFunc(func(_ context.Context, evt UserCreated) error {
			order = append(order, "first:"+evt.UserID)
			return nil
		}),
		event.NewHandlerFunc(func(_ context.Context, evt UserCreated) error {
			order = append(order, "second:"+evt.UserID)
			return nil
		}),
	))

	require.NoError(t, bus.Dispatch(context.Background(), UserCreated{UserID: "42"}))
	assert.Equal(t, []string{"first:42", "second:42"}, order)
}

func TestBus_DispatchOnlyMatchingName(t *testing.T) {
	t.Parallel()

	var users, orders atomic.Int32
	bus := event.NewBus()
	bus.Subscribe(
		event.NewHandlerFunc(func(context.Context, UserCreated) error {
			users.Add(1)
			return nil
		}),
		event.NewHandlerFunc(func(context.Context, OrderPlaced) error {
			orders.Add(1)
			return nil
		}),
	)

	require.NoError(t, bus.Dispatch(context.Background(), OrderPlaced{OrderID: "1"}))
	assert.Equal(t, int32(0), users.Load())
	assert.Equal(t, int32(1), orders.Load())
	assert.True(t, bus.HasHandlers("UserCreated"))
	assert.False(t, bus.HasHandlers("Unknown"))
}

func TestBus_ZeroHandlers(t *testing.T) {
	t.Parallel()

	t.Run("normal mode", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, event.NewBus().Dispatch(context.Background(), UserCreated{}))
	})

	t.Run("strict mode", func(t *testing.T) {
		t.Parallel()
		err := event.NewBus(event.WithStrict()).Dispatch(context.Background(), UserCreated{})
		require.ErrorIs(t, err, event.ErrNoHandlers)
		assert.Contains(t, err.Error(), "UserCreated")
	})
}

func TestBus_NilEvent(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, event.NewBus().Dispatch(context.Background(), nil), event.ErrNilEvent)
}

func TestBus_ErrorAggregation(t *testing.T) {
	t.Parallel()

	errA := errors.New("error a")
	errB := errors.New("error b")
	var ran atomic.Int32

	bus := event.NewBus(event.WithHandler(
		event.NewHandlerFunc(func(context.Context, UserCreated) error {
			ran.Add(1)
			return errA
		}),
		event.NewHandlerFunc(func(context.Context, UserCreated) error {
			ran.Add(1)
			return nil
		}),
		event.NewHandlerFunc(func(context.Context, UserCreated) error {
			ran.Add(1)
			return errB
		}),
	))

	err := bus.Dispatch(context.Background(), UserCreated{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, int32(3), ran.Load())
}

func TestBus_PanicRecovery(t *testing.T) {
	t.Parallel()

	var after atomic.Bool
	bus := event.NewBus(event.WithHandler(
		event.NewHandlerFunc(func(context.Context, UserCreated) error {
			panic("handler panicked")
		}),
		event.NewHandlerFunc(func(context.Context, UserCreated) error {
			after.Store(true)
			return nil
		}),
	))

	err := bus.Dispatch(context.Background(), UserCreated{})
	require.ErrorIs(t, err, event.ErrHandlerPanic)
	assert.Contains(t, err.Error(), "handler panicked")
	assert.Contains(t, err.Error(), "stack trace")
	assert.True(t, after.Load())
}

func TestBus_ContextCancellation(t *testing.T) {
	t.Parallel()

	var called atomic.Bool
	bus := event.NewBus(event.WithHandler(event.NewHandlerFunc(func(context.Context, UserCreated) error {
		called.Store(true)
		return nil
	})))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, bus.Dispatch(ctx, UserCreated{}), context.Canceled)
	assert.False(t, called.Load())
}

func TestBus_EnvelopeMetadataInContext(t *testing.T) {
	t.Parallel()

	var id, name string
	bus := event.NewBus(event.WithHandler(event.NewHandlerFunc(func(ctx context.Context, _ *UserCreated) error {
		id = event.EventID(ctx)
		name = event.EventName(ctx)
		assert.False(t, event.EventTime(ctx).IsZero())
		return nil
	})))

	require.NoError(t, bus.Dispatch(context.Background(), &UserCreated{}))

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, "UserCreated", name)
}

func TestBus_Middleware(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(tag string) event.Middleware {
		return func(next event.Handler) event.Handler {
			return event.NewHandler(next.EventName(), func(ctx context.Context, payload any) error {
				order = append(order, tag)
				return next.Handle(ctx, payload)
			})
		}
	}

	bus := event.NewBus(
		event.WithMiddleware(mw("inner"), mw("outer")),
		event.WithHandler(event.NewHandlerFunc(func(context.Context, UserCreated) error {
			order = append(order, "handler")
			return nil
		})),
	)

	require.NoError(t, bus.Dispatch(context.Background(), UserCreated{}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestBus_LoggingMiddleware(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	bus := event.NewBus(
		event.WithMiddleware(event.LoggingMiddleware(logger)),
		event.WithHandler(
			event.NewHandlerFunc(func(context.Context, UserCreated) error { return nil }),
			event.NewHandlerFunc(func(context.Context, UserCreated) error { return errors.New("nope") }),
		),
	)

	require.Error(t, bus.Dispatch(context.Background(), UserCreated{}))

	out := buf.String()
	assert.Contains(t, out, "event handled")
	assert.Contains(t, out, "event handler failed")
	assert.Contains(t, out, "event=UserCreated")
	assert.Contains(t, out, "nope")
}

func TestBus_ConcurrentSubscribeAndDispatch(t *testing.T) {
	t.Parallel()

	bus := event.NewBus()
	var count atomic.Int32

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Subscribe(event.NewHandlerFunc(func(context.Context, UserCreated) error {
				count.Add(1)
				return nil
			}))
		}()
		go func() {
			defer wg.Done()
			_ = bus.Dispatch(context.Background(), UserCreated{})
		}()
	}
	wg.Wait()

	count.Store(0)
	require.NoError(t, bus.Dispatch(context.Background(), UserCreated{}))
	assert.Equal(t, int32(20), count.Load())
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	req := request.New(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NoError(t, event.Discard.Dispatch(context.Background(), event.RouteNotFound{Request: req}))
}
