package channel

import "github.com/go-cast/gocast/pkg/liberrors"

// Message is the sum type of inbound, namespace-classified payloads (§3's
// ChannelMessage). Exactly one of the fields is non-nil.
type Message struct {
	Connection ConnectionResponse
	Heartbeat  HeartbeatResponse
	Media      MediaResponse
	Receiver   ReceiverResponse
}

// Parse classifies an inbound frame by namespace and parses its JSON
// payload into the matching typed response (§4.1's decoder classification
// step). An unrecognized namespace yields liberrors.ErrUnknownChannel; a
// recognized namespace with an unrecognized "type" yields
// liberrors.ErrUnknownPayload so the caller can log and drop the frame
// without treating it as fatal.
func Parse(namespace string, payload []byte) (Message, error) {
	switch namespace {
	case NamespaceConnection:
		v, typ, err := ParseConnectionResponse(payload)
		if err != nil {
			return Message{}, liberrors.ErrParseFailed{Namespace: namespace, Err: err}
		}
		if v == nil {
			return Message{}, liberrors.ErrUnknownPayload{Namespace: namespace, Type: typ}
		}
		return Message{Connection: v}, nil
	case NamespaceHeartbeat:
		v, typ, err := ParseHeartbeatResponse(payload)
		if err != nil {
			return Message{}, liberrors.ErrParseFailed{Namespace: namespace, Err: err}
		}
		if v == nil {
			return Message{}, liberrors.ErrUnknownPayload{Namespace: namespace, Type: typ}
		}
		return Message{Heartbeat: v}, nil
	case NamespaceMedia:
		v, typ, err := ParseMediaResponse(payload)
		if err != nil {
			return Message{}, liberrors.ErrParseFailed{Namespace: namespace, Err: err}
		}
		if v == nil {
			return Message{}, liberrors.ErrUnknownPayload{Namespace: namespace, Type: typ}
		}
		return Message{Media: v}, nil
	case NamespaceReceiver:
		v, typ, err := ParseReceiverResponse(payload)
		if err != nil {
			return Message{}, liberrors.ErrParseFailed{Namespace: namespace, Err: err}
		}
		if v == nil {
			return Message{}, liberrors.ErrUnknownPayload{Namespace: namespace, Type: typ}
		}
		return Message{Receiver: v}, nil
	default:
		return Message{}, liberrors.ErrUnknownChannel{Namespace: namespace}
	}
}
