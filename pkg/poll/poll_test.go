package poll

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestUntilStopsOnDone(t *testing.T) {
	calls := 0
	err := Until(context.Background(), time.Millisecond, 10, func(ctx context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestUntilTimesOut(t *testing.T) {
	calls := 0
	err := Until(context.Background(), time.Millisecond, 5, func(ctx context.Context) (bool, error) {
		calls++
		return false, nil
	})
	if !errors.Is(err, ErrTimedOut) {
		t.Fatalf("expected ErrTimedOut, got %v", err)
	}
	if calls != 5 {
		t.Fatalf("expected exactly 5 calls, got %d", calls)
	}
}

func TestUntilPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := Until(context.Background(), time.Millisecond, 5, func(ctx context.Context) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestUntilHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := Until(ctx, time.Hour, 5, func(ctx context.Context) (bool, error) {
		calls++
		return false, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call before cancellation, got %d", calls)
	}
}

func TestUntilZeroBudget(t *testing.T) {
	err := Until(context.Background(), time.Millisecond, 0, func(ctx context.Context) (bool, error) {
		t.Fatal("fn must not be called with zero budget")
		return false, nil
	})
	if !errors.Is(err, ErrTimedOut) {
		t.Fatalf("expected ErrTimedOut, got %v", err)
	}
}
