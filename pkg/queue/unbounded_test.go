package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSendThenReceiveInOrder(t *testing.T) {
	q := New[int]()
	q.Send(1)
	q.Send(2)
	q.Send(3)

	require.Equal(t, 1, <-q.Out())
	require.Equal(t, 2, <-q.Out())
	require.Equal(t, 3, <-q.Out())
}

func TestDrainYieldsBufferedItemsThenCloses(t *testing.T) {
	q := New[string]()
	q.Send("a")
	q.Send("b")
	q.Close()

	var got []string
	for v := range q.Out() {
		got = append(got, v)
	}
	require.Equal(t, []string{"a", "b"}, got)
}

func TestCloseBeforeConsumeStillDrainsAll(t *testing.T) {
	// Mirrors stream-util's drains_receiver test: trigger fires before the
	// consumer ever reads, yet every previously-sent item is still observed.
	q := New[int]()
	q.Send(1)
	q.Send(2)
	q.Close()

	time.Sleep(10 * time.Millisecond)

	count := 0
	for range q.Out() {
		count++
	}
	require.Equal(t, 2, count)
}

func TestSendAfterCloseIsNoOp(t *testing.T) {
	q := New[int]()
	q.Close()
	require.False(t, q.Send(1))

	_, ok := <-q.Out()
	require.False(t, ok)
}
