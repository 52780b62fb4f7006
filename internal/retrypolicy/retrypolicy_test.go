package retrypolicy

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(0, time.Second); err == nil {
		t.Fatal("zero attempts accepted")
	}
	if _, err := New(2, 0); err == nil {
		t.Fatal("zero delay accepted")
	}
	if _, err := New(2, -time.Second); err == nil {
		t.Fatal("negative delay accepted")
	}
	if _, err := New(1, time.Millisecond); err != nil {
		t.Fatalf("single attempt rejected: %v", err)
	}
}

func TestDoSucceedsOnRetry(t *testing.T) {
	p, err := New(2, time.Millisecond)
	if err != nil {
		t.Fatalf("new policy: %v", err)
	}

	attempts := 0
	err = p.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success on second attempt, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestDoStopsAtBudget(t *testing.T) {
	p, err := New(3, time.Millisecond)
	if err != nil {
		t.Fatalf("new policy: %v", err)
	}

	attempts := 0
	boom := errors.New("still down")
	err = p.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected last error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestDoDoesNotRetryCancellation(t *testing.T) {
	p, err := New(5, time.Millisecond)
	if err != nil {
		t.Fatalf("new policy: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err = p.Do(ctx, func(ctx context.Context) error {
		attempts++
		cancel()
		return context.Canceled
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("cancellation was retried: %d attempts", attempts)
	}
}
