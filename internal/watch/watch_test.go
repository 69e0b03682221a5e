package watch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebounce_CollapsesBurst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan struct{}, 10)
	out := Debounce(ctx, in, 50*time.Millisecond)

	for range 5 {
		in <- struct{}{}
	}

	select {
	case <-out:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced signal never fired")
	}

	// The burst must have collapsed into exactly one signal.
	select {
	case <-out:
		t.Fatal("burst produced more than one rebuild signal")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDebounce_SeparateBurstsFireSeparately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan struct{}, 1)
	out := Debounce(ctx, in, 20*time.Millisecond)

	for range 2 {
		in <- struct{}{}
		select {
		case <-out:
		case <-time.After(2 * time.Second):
			t.Fatal("debounced signal never fired")
		}
	}
}

func TestDebounce_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan struct{}, 1)
	out := Debounce(ctx, in, 10*time.Millisecond)
	cancel()

	// After cancel no goroutine is left to forward triggers.
	time.Sleep(20 * time.Millisecond)
	in <- struct{}{}
	select {
	case <-out:
		t.Fatal("debouncer still running after cancel")
	case <-time.After(100 * time.Millisecond):
	}
	require.Empty(t, out)
}
