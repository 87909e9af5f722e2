// Package wire implements the length-prefixed framing (C1) used to carry
// CastMessage protobufs over a single TLS stream: a big-endian u32 length
// followed by that many bytes of serialized protobuf.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-cast/gocast/pkg/castmessage"
	"github.com/go-cast/gocast/pkg/liberrors"
)

// DefaultMaxFrameSize is the maximum serialized CastMessage size (64 KiB)
// used when a caller doesn't override it via Option's WithMaxFrameSize.
const DefaultMaxFrameSize = 64 * 1024

const headerLength = 4

// decodeState is the two-phase decoder state machine (§4.1).
type decodeState int

const (
	stateHeader decodeState = iota
	statePayload
)

// Decoder reads length-prefixed CastMessage frames from an io.Reader,
// keeping its Header/Payload phase across calls the way the origin's
// DecodeState enum does. Each phase is read with io.ReadFull, so short reads
// within one call are absorbed; the bytes of a read that fails partway are
// not kept for the next call.
type Decoder struct {
	r       io.Reader
	maxSize int
	state   decodeState
	buf     []byte
	scratch [headerLength]byte
}

// NewDecoder returns a Decoder reading frames from r, rejecting any frame
// whose declared length exceeds maxSize.
func NewDecoder(r io.Reader, maxSize int) *Decoder {
	return &Decoder{r: r, maxSize: maxSize, state: stateHeader}
}

// ReadMessage blocks until a full frame has been read and decoded, or
// returns an error. A frame whose declared length exceeds maxSize is a
// fatal protocol violation (ErrOversizeFrame), matching §4.1's "larger
// messages are a fatal encoding/decoding error".
func (d *Decoder) ReadMessage() (castmessage.CastMessage, error) {
	if d.state == stateHeader {
		if _, err := io.ReadFull(d.r, d.scratch[:]); err != nil {
			return castmessage.CastMessage{}, err
		}
		n := int(binary.BigEndian.Uint32(d.scratch[:]))
		if n <= 0 {
			return castmessage.CastMessage{}, liberrors.ErrInvalidFrameLength{Length: n}
		}
		if n > d.maxSize {
			return castmessage.CastMessage{}, liberrors.ErrOversizeFrame{Size: n, MaxSize: d.maxSize}
		}
		d.buf = make([]byte, n)
		d.state = statePayload
	}

	if _, err := io.ReadFull(d.r, d.buf); err != nil {
		return castmessage.CastMessage{}, err
	}
	d.state = stateHeader

	msg, err := castmessage.Unmarshal(d.buf)
	if err != nil {
		return castmessage.CastMessage{}, err
	}
	return msg, nil
}

// Encoder serializes CastMessages as length-prefixed frames and assigns a
// monotonically increasing request id (§4.1: starts at 1, first assigned
// value after increment is 2).
type Encoder struct {
	w         io.Writer
	maxSize   int
	requestID int
}

// NewEncoder returns an Encoder writing frames to w, rejecting any message
// whose serialized payload exceeds maxSize.
func NewEncoder(w io.Writer, maxSize int) *Encoder {
	return &Encoder{w: w, maxSize: maxSize, requestID: 1}
}

// NextRequestID increments and returns the next request id. Receiver-
// originated messages use request id 0 and are never produced here.
func (e *Encoder) NextRequestID() int {
	e.requestID++
	return e.requestID
}

// WriteMessage serializes and writes msg as a single length-prefixed frame.
func (e *Encoder) WriteMessage(msg castmessage.CastMessage) error {
	payload := msg.Marshal()
	if len(payload) > e.maxSize {
		return liberrors.ErrOversizeFrame{Size: len(payload), MaxSize: e.maxSize}
	}

	var header [headerLength]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))

	if _, err := e.w.Write(header[:]); err != nil {
		return fmt.Errorf("wire: write header: %w", err)
	}
	if _, err := e.w.Write(payload); err != nil {
		return fmt.Errorf("wire: write payload: %w", err)
	}
	return nil
}
