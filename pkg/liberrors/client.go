// Package liberrors holds the typed error taxonomy returned by this module's
// wire codec, channel handlers and client facade.
package liberrors

import "fmt"

// ErrClientTerminated reports that the client has been shut down. Client
// methods return no error, so nothing in this module returns it.
type ErrClientTerminated struct{}

// Error implements the error interface.
func (e ErrClientTerminated) Error() string {
	return "client has been shut down"
}

// ErrOversizeFrame is returned when an encoded or decoded frame exceeds the
// maximum allowed payload size.
type ErrOversizeFrame struct {
	Size    int
	MaxSize int
}

// Error implements the error interface.
func (e ErrOversizeFrame) Error() string {
	return fmt.Sprintf("frame size %d exceeds maximum of %d bytes", e.Size, e.MaxSize)
}

// ErrInvalidFrameLength is returned when the decoder reads a header whose
// declared length cannot be honored (zero, or otherwise malformed).
type ErrInvalidFrameLength struct {
	Length int
}

// Error implements the error interface.
func (e ErrInvalidFrameLength) Error() string {
	return fmt.Sprintf("invalid frame length: %d", e.Length)
}

// ErrUnknownChannel is returned when an inbound frame's namespace does not
// match any of the four known channels.
type ErrUnknownChannel struct {
	Namespace string
}

// Error implements the error interface.
func (e ErrUnknownChannel) Error() string {
	return fmt.Sprintf("unknown channel namespace: %q", e.Namespace)
}

// ErrUnknownPayload is returned when a known namespace carries an
// unrecognized "type" discriminator.
type ErrUnknownPayload struct {
	Namespace string
	Type      string
}

// Error implements the error interface.
func (e ErrUnknownPayload) Error() string {
	return fmt.Sprintf("unknown payload type %q on namespace %q", e.Type, e.Namespace)
}

// ErrParseFailed is returned when a known-namespace JSON payload fails to
// deserialize.
type ErrParseFailed struct {
	Namespace string
	Err       error
}

// Error implements the error interface.
func (e ErrParseFailed) Error() string {
	return fmt.Sprintf("parse failed on namespace %q: %v", e.Namespace, e.Err)
}

// ErrCommandSend is returned when a channel handler cannot enqueue a
// follow-up command (e.g. the command queue has already been closed).
type ErrCommandSend struct {
	Reason string
}

// Error implements the error interface.
func (e ErrCommandSend) Error() string {
	return fmt.Sprintf("command send failed: %s", e.Reason)
}

// ErrStatusSend is returned when a channel handler cannot emit a status
// value because the consumer has stopped reading the status stream.
type ErrStatusSend struct {
	Reason string
}

// Error implements the error interface.
func (e ErrStatusSend) Error() string {
	return fmt.Sprintf("status send failed: %s", e.Reason)
}
