package fanout_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/action-items/internal/app/fanout"
	"github.com/jsamuelsen11/action-items/internal/domain/extraction"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 5, []string{}, func(context.Context, string) (int, error) {
		t.Fatal("fn should not be called for empty items")
		return 0, nil
	})

	if results == nil || len(results) != 0 {
		t.Fatalf("Run(empty) = %v, want empty non-nil slice", results)
	}
}

func TestRun_PreservesOrderAndPartialFailure(t *testing.T) {
	t.Parallel()

	notes := []string{
		"- [ ] Email the vendor",
		"",
		"TODO: book the room\nNeed to order snacks",
		"nothing to do here",
	}
	errBlank := errors.New("blank note")

	results := fanout.Run(context.Background(), 2, notes, func(_ context.Context, text string) (extraction.Result, error) {
		if text == "" {
			return nil, errBlank
		}
		// Stagger completion so finishing order differs from input order.
		time.Sleep(time.Duration(len(notes)-len(text)%len(notes)) * time.Millisecond)
		return extraction.ExtractHeuristic(text), nil
	})

	want := []struct {
		items []string
		err   error
	}{
		{items: []string{"Email the vendor"}},
		{err: errBlank},
		{items: []string{"book the room", "Need to order snacks"}},
		{items: []string{}},
	}

	if len(results) != len(want) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(want))
	}
	for i, w := range want {
		r := results[i]
		if !errors.Is(r.Err, w.err) {
			t.Errorf("results[%d].Err = %v, want %v", i, r.Err, w.err)
			continue
		}
		if w.err != nil {
			continue
		}
		if strings.Join(r.Value, "|") != strings.Join(w.items, "|") {
			t.Errorf("results[%d].Value = %q, want %q", i, r.Value, w.items)
		}
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 3

	var peak, active atomic.Int32
	items := make([]int, 15)

	results := fanout.Run(context.Background(), maxWorkers, items, func(context.Context, int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)

		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}

		time.Sleep(10 * time.Millisecond)
		return 0, nil
	})

	if len(results) != len(items) {
		t.Fatalf("got %d results, want %d", len(results), len(items))
	}
	if p := peak.Load(); p > maxWorkers {
		t.Fatalf("peak concurrency %d exceeded maxWorkers %d", p, maxWorkers)
	}
}

func TestRun_NonPositiveWorkersRunsSerially(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, -4} {
		var peak, active atomic.Int32

		results := fanout.Run(context.Background(), workers, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
			cur := active.Add(1)
			defer active.Add(-1)
			if cur > peak.Load() {
				peak.Store(cur)
			}
			time.Sleep(5 * time.Millisecond)
			return n * 2, nil
		})

		if p := peak.Load(); p != 1 {
			t.Errorf("workers=%d: peak concurrency = %d, want 1", workers, p)
		}
		if results[2].Value != 6 {
			t.Errorf("workers=%d: results[2].Value = %d, want 6", workers, results[2].Value)
		}
	}
}

func TestRun_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 2, []int{1, 2, 3}, func(context.Context, int) (int, error) {
		calls.Add(1)
		return 0, nil
	})

	if n := calls.Load(); n != 0 {
		t.Errorf("fn called %d times, want 0 with a canceled context", n)
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestRun_CancelWhileWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})
	var started atomic.Int32

	done := make(chan []fanout.Result[int])
	go func() {
		done <- fanout.Run(ctx, 1, []int{1, 2, 3}, func(context.Context, int) (int, error) {
			started.Add(1)
			<-release
			return 1, nil
		})
	}()

	// Wait for the single worker to be busy, then cancel the waiters.
	for started.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	cancel()
	time.Sleep(10 * time.Millisecond)
	close(release)

	results := <-done

	var ok, canceled int
	for _, r := range results {
		switch {
		case r.Err == nil:
			ok++
		case errors.Is(r.Err, context.Canceled):
			canceled++
		}
	}
	if ok != 1 || canceled != 2 {
		t.Errorf("got %d successes and %d cancellations, want 1 and 2", ok, canceled)
	}
}

func TestRun_PanicIsolated(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 2, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			panic("bad input")
		}
		return n, nil
	})

	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("neighbours of a panicking item failed: %v, %v", results[0].Err, results[2].Err)
	}
	if results[1].Err == nil || !strings.Contains(results[1].Err.Error(), "bad input") {
		t.Errorf("results[1].Err = %v, want recovered panic", results[1].Err)
	}
}
