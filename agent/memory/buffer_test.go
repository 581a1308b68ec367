package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestBufferStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewBufferStore()
	ctx := context.Background()

	history, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if history != "" {
		t.Fatalf("expected empty history, got %q", history)
	}

	if err := store.Append(ctx, "s1", "câu hỏi 1", "trả lời 1"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := store.Append(ctx, "s1", "câu hỏi 2", "trả lời 2"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	history, err = store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := "Human: câu hỏi 1\nAI: trả lời 1\nHuman: câu hỏi 2\nAI: trả lời 2"
	if history != want {
		t.Fatalf("Load() = %q, want %q", history, want)
	}
}

func TestBufferStoreSessionIsolation(t *testing.T) {
	t.Parallel()

	store := NewBufferStore()
	ctx := context.Background()

	_ = store.Append(ctx, "a", "qa", "ra")
	_ = store.Append(ctx, "b", "qb", "rb")

	historyA, _ := store.Load(ctx, "a")
	historyB, _ := store.Load(ctx, "b")
	if historyA == historyB {
		t.Fatalf("sessions must be isolated: %q", historyA)
	}
	if len(store.Turns("a")) != 1 || len(store.Turns("b")) != 1 {
		t.Fatalf("unexpected turn counts")
	}
}

func TestBufferStoreEmptySessionID(t *testing.T) {
	t.Parallel()

	store := NewBufferStore()
	if _, err := store.Load(context.Background(), "  "); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if err := store.Append(context.Background(), "", "q", "r"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestBufferStoreConcurrentAppends(t *testing.T) {
	t.Parallel()

	store := NewBufferStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Append(context.Background(), "s", "q", "r")
		}()
	}
	wg.Wait()

	if got := len(store.Turns("s")); got != 20 {
		t.Fatalf("expected 20 turns, got %d", got)
	}
}

func TestFormatHistoryEmpty(t *testing.T) {
	t.Parallel()

	if got := FormatHistory(nil); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
