package valve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValveDoneClosesOnTrigger(t *testing.T) {
	trigger, v := New()
	require.False(t, v.Closed())
	trigger()
	require.True(t, v.Closed())

	select {
	case <-v.Done():
	default:
		t.Fatal("expected Done channel to be closed")
	}
}

func TestTriggerIsIdempotent(t *testing.T) {
	trigger, v := New()
	trigger()
	require.NotPanics(t, func() { trigger() })
	require.True(t, v.Closed())
}

func TestCancelStopsInfiniteIntervalWithinOneTick(t *testing.T) {
	trigger, v := New()
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	trigger()

	start := time.Now()
	_, ok := Cancel(v, ticker.C)
	require.False(t, ok)
	require.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestCancelPassesThroughWhenOpen(t *testing.T) {
	_, v := New()
	ch := make(chan int, 1)
	ch <- 42

	got, ok := Cancel(v, ch)
	require.True(t, ok)
	require.Equal(t, 42, got)
}
