package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cast/gocast/pkg/castmessage"
	"github.com/go-cast/gocast/pkg/liberrors"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, DefaultMaxFrameSize)

	msg := castmessage.CastMessage{
		ProtocolVersion: castmessage.CastV2_1_0,
		SourceID:        "sender-0",
		DestinationID:   "receiver-0",
		Namespace:       "urn:x-cast:com.google.cast.receiver",
		PayloadType:     castmessage.PayloadTypeString,
		PayloadUTF8:     `{"type":"GET_STATUS","requestId":2}`,
	}
	require.NoError(t, enc.WriteMessage(msg))

	dec := NewDecoder(&buf, DefaultMaxFrameSize)
	got, err := dec.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

func TestRequestIDMonotonicStartingAtTwo(t *testing.T) {
	enc := NewEncoder(bytes.NewBuffer(nil), DefaultMaxFrameSize)
	require.Equal(t, 2, enc.NextRequestID())
	require.Equal(t, 3, enc.NextRequestID())
	require.Equal(t, 4, enc.NextRequestID())
}

func TestWriteMessageOversizeIsFatal(t *testing.T) {
	enc := NewEncoder(bytes.NewBuffer(nil), DefaultMaxFrameSize)
	msg := castmessage.CastMessage{
		PayloadType: castmessage.PayloadTypeString,
		PayloadUTF8: string(make([]byte, DefaultMaxFrameSize+1)),
	}
	err := enc.WriteMessage(msg)
	require.Error(t, err)
	var oversize liberrors.ErrOversizeFrame
	require.ErrorAs(t, err, &oversize)
}

func TestReadMessageOversizeHeaderIsFatal(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF}) // declares ~4GiB frame
	dec := NewDecoder(&buf, DefaultMaxFrameSize)
	_, err := dec.ReadMessage()
	require.Error(t, err)
	var oversize liberrors.ErrOversizeFrame
	require.ErrorAs(t, err, &oversize)
}

func TestDecoderHandlesPartialReadsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, DefaultMaxFrameSize)
	msg := castmessage.CastMessage{
		PayloadType: castmessage.PayloadTypeString,
		Namespace:   "urn:x-cast:com.google.cast.tp.heartbeat",
		PayloadUTF8: `{"type":"PING"}`,
	}
	require.NoError(t, enc.WriteMessage(msg))

	full := buf.Bytes()
	r := &slowReader{data: full, chunk: 3}
	dec := NewDecoder(r, DefaultMaxFrameSize)
	got, err := dec.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

// slowReader returns at most `chunk` bytes per Read call, forcing the
// decoder through its two-phase state machine across multiple reads.
type slowReader struct {
	data  []byte
	chunk int
}

func (r *slowReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, bytes.ErrTooLarge
	}
	n := r.chunk
	if n > len(p) {
		n = len(p)
	}
	if n > len(r.data) {
		n = len(r.data)
	}
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}
