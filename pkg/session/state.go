// Package session holds the Cast client's connection state machine (C3):
// the receiver session id, transport id, media session id and a tri-state
// lifecycle, guarded by a single read-write lock.
package session

import "sync"

// Lifecycle distinguishes "never had a media session" from "had one, now
// invalid" — a single nullable media session id cannot express both.
type Lifecycle int

const (
	// LifecycleInit is the state before any media session has been observed.
	LifecycleInit Lifecycle = iota
	// LifecycleEstablished means a valid media session is currently tracked.
	LifecycleEstablished
	// LifecycleNoMediaSession means a media session existed and was
	// explicitly invalidated, or the receiver reported none.
	LifecycleNoMediaSession
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleInit:
		return "init"
	case LifecycleEstablished:
		return "established"
	case LifecycleNoMediaSession:
		return "no-media-session"
	default:
		return "unknown"
	}
}

// ReceiverConnection identifies the launched app's session and transport.
type ReceiverConnection struct {
	Session   string
	Transport string
}

// MediaConnection identifies a loaded media item within a ReceiverConnection.
type MediaConnection struct {
	Receiver       ReceiverConnection
	MediaSessionID int64
}

// State is the shared, lock-protected connection state (§3's ConnectState).
type State struct {
	mu           sync.RWMutex
	session      *string
	transport    *string
	mediaSession *int64
	lifecycle    Lifecycle
}

// New returns a State in the Init lifecycle with no session identifiers.
func New() *State {
	return &State{lifecycle: LifecycleInit}
}

// SetSession assigns the receiver session id and reports whether it changed.
func (s *State) SetSession(v *string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := !stringPtrEqual(s.session, v)
	s.session = v
	return changed
}

// SetTransport assigns the transport id and reports whether it changed.
func (s *State) SetTransport(v *string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := !stringPtrEqual(s.transport, v)
	s.transport = v
	return changed
}

// SetMediaSession assigns the media session id and reports whether it changed.
func (s *State) SetMediaSession(v *int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := !int64PtrEqual(s.mediaSession, v)
	s.mediaSession = v
	return changed
}

// SetLifecycle transitions the lifecycle. Setters above never touch
// lifecycle themselves; only handlers drive this transition (§4.3).
func (s *State) SetLifecycle(l Lifecycle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lifecycle = l
}

// Lifecycle returns the current lifecycle value.
func (s *State) Lifecycle() Lifecycle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lifecycle
}

// ReceiverConnection returns the receiver connection if both session and
// transport are present.
func (s *State) ReceiverConnection() (ReceiverConnection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.receiverConnectionLocked()
}

func (s *State) receiverConnectionLocked() (ReceiverConnection, bool) {
	if s.session == nil || s.transport == nil {
		return ReceiverConnection{}, false
	}
	return ReceiverConnection{Session: *s.session, Transport: *s.transport}, true
}

// MediaConnection returns the media connection iff lifecycle is Established
// and both the receiver connection and media session id are present.
func (s *State) MediaConnection() (MediaConnection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lifecycle != LifecycleEstablished || s.mediaSession == nil {
		return MediaConnection{}, false
	}
	rc, ok := s.receiverConnectionLocked()
	if !ok {
		return MediaConnection{}, false
	}
	return MediaConnection{Receiver: rc, MediaSessionID: *s.mediaSession}, true
}

// RegisterMediaSession implements the media handler's registration rule
// (session.rs's `register`): set the media session id; if it changed, move
// the lifecycle to Established and return the resulting MediaConnection.
func (s *State) RegisterMediaSession(id int64) (MediaConnection, bool) {
	s.mu.Lock()
	changed := !int64PtrEqual(s.mediaSession, &id)
	s.mediaSession = &id
	if !changed {
		s.mu.Unlock()
		return MediaConnection{}, false
	}
	s.lifecycle = LifecycleEstablished
	rc, ok := s.receiverConnectionLocked()
	s.mu.Unlock()
	if !ok {
		return MediaConnection{}, false
	}
	return MediaConnection{Receiver: rc, MediaSessionID: id}, true
}

// Invalidate implements session.rs's `invalidate`: moves the lifecycle to
// NoMediaSession without clearing the tracked media session id eagerly.
func (s *State) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lifecycle = LifecycleNoMediaSession
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
