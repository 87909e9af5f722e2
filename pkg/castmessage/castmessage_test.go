package castmessage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := CastMessage{
		ProtocolVersion: CastV2_1_0,
		SourceID:        "sender-0",
		DestinationID:   "receiver-0",
		Namespace:       "urn:x-cast:com.google.cast.receiver",
		PayloadType:     PayloadTypeString,
		PayloadUTF8:     `{"type":"GET_STATUS","requestId":2}`,
	}

	out, err := Unmarshal(in.Marshal())
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	in := CastMessage{
		ProtocolVersion: CastV2_1_0,
		SourceID:        "sender-0",
		DestinationID:   "receiver-0",
		Namespace:       "urn:x-cast:com.google.cast.media",
		PayloadType:     PayloadTypeString,
		PayloadUTF8:     `{"type":"PING"}`,
	}
	b := in.Marshal()
	// append an unknown varint field (field 111) - must not break decoding.
	b = append(b, 0xf8, 0x06, 0x01)

	out, err := Unmarshal(b)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestUnmarshalTruncatedReturnsError(t *testing.T) {
	in := CastMessage{SourceID: "sender-0"}
	b := in.Marshal()
	_, err := Unmarshal(b[:len(b)-1])
	require.Error(t, err)
}
