package channel

import "encoding/json"

// BuildPing builds a PING request body for the heartbeat namespace.
func BuildPing() []byte {
	b, _ := json.Marshal(PayloadHeader{Type: "PING"})
	return b
}

// BuildPong builds a PONG request body for the heartbeat namespace.
func BuildPong() []byte {
	b, _ := json.Marshal(PayloadHeader{Type: "PONG"})
	return b
}

// HeartbeatResponse is the sum type of inbound heartbeat-namespace payloads.
type HeartbeatResponse interface {
	isHeartbeatResponse()
}

// Ping is a receiver-initiated heartbeat; the handler replies with Pong.
type Ping struct{}

func (Ping) isHeartbeatResponse() {}

// Pong is the receiver's reply to our own Ping; it is ignored.
type Pong struct{}

func (Pong) isHeartbeatResponse() {}

// ParseHeartbeatResponse classifies a heartbeat-namespace JSON payload.
func ParseHeartbeatResponse(payload []byte) (HeartbeatResponse, string, error) {
	var hdr PayloadHeader
	if err := json.Unmarshal(payload, &hdr); err != nil {
		return nil, "", err
	}
	switch hdr.Type {
	case "PING":
		return Ping{}, hdr.Type, nil
	case "PONG":
		return Pong{}, hdr.Type, nil
	default:
		return nil, hdr.Type, nil
	}
}
