// Package channel implements the four Cast v2 namespaces (C2/C4): the JSON
// request/response payload shapes exchanged on each, and the classification
// of an inbound frame's namespace into a typed ChannelMessage.
package channel

// Namespace strings, exact per the Cast v2 protocol.
const (
	NamespaceConnection = "urn:x-cast:com.google.cast.tp.connection"
	NamespaceHeartbeat  = "urn:x-cast:com.google.cast.tp.heartbeat"
	NamespaceMedia      = "urn:x-cast:com.google.cast.media"
	NamespaceReceiver   = "urn:x-cast:com.google.cast.receiver"
)

// Default sender/receiver addressing ids (§4.2).
const (
	SenderID   = "sender-0"
	ReceiverID = "receiver-0"
)

// DefaultMediaReceiverAppID is the well-known app id of the default media
// receiver ("CC1AD845").
const DefaultMediaReceiverAppID = "CC1AD845"

// PayloadHeader is embedded in every JSON request/response body as the
// {"type": ..., "requestId": ...} discriminator pair (§4.1, §6).
type PayloadHeader struct {
	Type      string `json:"type"`
	RequestID int    `json:"requestId,omitempty"`
}
