package channel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cast/gocast/pkg/liberrors"
)

func TestBuildPlaySerializesExpectedFields(t *testing.T) {
	raw := BuildPlay(7, 42, nil)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "PLAY", decoded["type"])
	require.EqualValues(t, 7, decoded["requestId"])
	require.EqualValues(t, 42, decoded["mediaSessionId"])
}

func TestParseDispatchesByNamespace(t *testing.T) {
	msg, err := Parse(NamespaceHeartbeat, BuildPing())
	require.NoError(t, err)
	require.IsType(t, Ping{}, msg.Heartbeat)

	msg, err = Parse(NamespaceConnection, []byte(`{"type":"CLOSE"}`))
	require.NoError(t, err)
	require.IsType(t, Close{}, msg.Connection)
}

func TestParseUnknownNamespaceReturnsTypedError(t *testing.T) {
	_, err := Parse("urn:x-cast:com.google.cast.debug", []byte(`{}`))
	var unknownChannel liberrors.ErrUnknownChannel
	require.ErrorAs(t, err, &unknownChannel)
	require.Equal(t, "urn:x-cast:com.google.cast.debug", unknownChannel.Namespace)
}

func TestParseUnknownPayloadTypeReturnsTypedError(t *testing.T) {
	_, err := Parse(NamespaceMedia, []byte(`{"type":"SOMETHING_NEW"}`))
	var unknownPayload liberrors.ErrUnknownPayload
	require.ErrorAs(t, err, &unknownPayload)
	require.Equal(t, "SOMETHING_NEW", unknownPayload.Type)
}

func TestParseMalformedJSONReturnsParseError(t *testing.T) {
	_, err := Parse(NamespaceReceiver, []byte(`{not-json`))
	var parseFailed liberrors.ErrParseFailed
	require.ErrorAs(t, err, &parseFailed)
}

func TestParseReceiverStatusExtractsApplications(t *testing.T) {
	payload := []byte(`{"type":"RECEIVER_STATUS","status":{"applications":[
		{"appId":"CC1AD845","sessionId":"S","transportId":"T","displayName":"Music","isIdleScreen":false,"statusText":"x"}
	],"volume":{"level":0.5,"muted":false}}}`)

	msg, err := Parse(NamespaceReceiver, payload)
	require.NoError(t, err)

	status, ok := msg.Receiver.(ReceiverStatus)
	require.True(t, ok)
	app, found := ReceiverAppByID(status, DefaultMediaReceiverAppID)
	require.True(t, found)
	require.Equal(t, "S", app.SessionID)
	require.Equal(t, "T", app.TransportID)
}

func TestParseMediaStatusRoundTrip(t *testing.T) {
	payload := []byte(`{"type":"MEDIA_STATUS","status":[{"mediaSessionId":42,"playerState":"PLAYING","currentTime":1.2,"volume":{"level":1,"muted":false},"media":{"contentId":"u","contentType":"audio/mpeg","streamType":"NONE","metadata":{"metadataType":3}}}]}`)

	msg, err := Parse(NamespaceMedia, payload)
	require.NoError(t, err)

	status, ok := msg.Media.(MediaStatus)
	require.True(t, ok)
	require.Len(t, status.Status, 1)
	require.Equal(t, int64(42), status.Status[0].MediaSessionID)
}

func TestBuildSetVolumeOmitsRequestID(t *testing.T) {
	raw := BuildSetVolume(0.5, true)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "SET_VOLUME", decoded["type"])
	require.EqualValues(t, 0.5, decoded["volume"].(map[string]interface{})["level"])
	require.Equal(t, true, decoded["volume"].(map[string]interface{})["muted"])
	_, hasRequestID := decoded["requestId"]
	require.False(t, hasRequestID, "SET_VOLUME must not carry a requestId")
}

func TestBuildLoadEncodesMediaInformation(t *testing.T) {
	raw := BuildLoad(3, "S", Media{
		Title:       "Song",
		Artist:      "Artist",
		URL:         "http://example.com/a.mp3",
		ContentType: "audio/mpeg",
		Cover:       &Image{URL: "http://example.com/a.jpg", Width: 100, Height: 100},
	}, 0, nil, true)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "LOAD", decoded["type"])
	media := decoded["media"].(map[string]interface{})
	require.Equal(t, "NONE", media["streamType"])
	metadata := media["metadata"].(map[string]interface{})
	require.EqualValues(t, 3, metadata["metadataType"])
}
