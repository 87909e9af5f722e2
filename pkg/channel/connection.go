package channel

import "encoding/json"

type connectRequest struct {
	PayloadHeader
	UserAgent string `json:"userAgent,omitempty"`
}

// BuildConnect builds a CONNECT request body for the connection namespace.
func BuildConnect(userAgent string) []byte {
	b, _ := json.Marshal(connectRequest{
		PayloadHeader: PayloadHeader{Type: "CONNECT"},
		UserAgent:     userAgent,
	})
	return b
}

// ConnectionResponse is the sum type of inbound connection-namespace
// payloads. The only variant the handler acts on today is Close; everything
// else is reported back by ParseConnectionResponse as an unknown payload.
type ConnectionResponse interface {
	isConnectionResponse()
}

// Close is sent by the receiver shortly before it tears down the TLS stream.
type Close struct{}

func (Close) isConnectionResponse() {}

// ParseConnectionResponse classifies a connection-namespace JSON payload.
func ParseConnectionResponse(payload []byte) (ConnectionResponse, string, error) {
	var hdr PayloadHeader
	if err := json.Unmarshal(payload, &hdr); err != nil {
		return nil, "", err
	}
	switch hdr.Type {
	case "CLOSE":
		return Close{}, hdr.Type, nil
	default:
		return nil, hdr.Type, nil
	}
}
