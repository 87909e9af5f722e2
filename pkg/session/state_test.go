package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func i64p(i int64) *int64   { return &i }

func TestSetSessionChangeDetectionIdempotence(t *testing.T) {
	s := New()
	require.True(t, s.SetSession(strp("x")))
	require.False(t, s.SetSession(strp("x")))
	require.True(t, s.SetSession(strp("y")))
}

func TestReceiverConnectionRequiresBoth(t *testing.T) {
	s := New()
	_, ok := s.ReceiverConnection()
	require.False(t, ok)

	s.SetSession(strp("S"))
	_, ok = s.ReceiverConnection()
	require.False(t, ok)

	s.SetTransport(strp("T"))
	rc, ok := s.ReceiverConnection()
	require.True(t, ok)
	require.Equal(t, ReceiverConnection{Session: "S", Transport: "T"}, rc)
}

func TestLifecycleMonotonicityViaRegisterAndInvalidate(t *testing.T) {
	s := New()
	require.Equal(t, LifecycleInit, s.Lifecycle())

	s.SetSession(strp("S"))
	s.SetTransport(strp("T"))

	mc, changed := s.RegisterMediaSession(42)
	require.True(t, changed)
	require.Equal(t, LifecycleEstablished, s.Lifecycle())
	require.Equal(t, int64(42), mc.MediaSessionID)

	// re-registering the same id is a no-op (idempotent).
	_, changed = s.RegisterMediaSession(42)
	require.False(t, changed)

	s.Invalidate()
	require.Equal(t, LifecycleNoMediaSession, s.Lifecycle())
	_, ok := s.MediaConnection()
	require.False(t, ok)

	// lifecycle never returns to Init after leaving it.
	require.NotEqual(t, LifecycleInit, s.Lifecycle())
}

func TestMediaConnectionRequiresEstablished(t *testing.T) {
	s := New()
	s.SetSession(strp("S"))
	s.SetTransport(strp("T"))
	s.SetMediaSession(i64p(7))

	// media session id alone, without lifecycle=Established, is not enough.
	_, ok := s.MediaConnection()
	require.False(t, ok)
}
