// Package castmessage implements the wire encoding of the Cast v2 control
// protocol's CastMessage protobuf, field-for-field against the canonical
// cast_channel.proto tag layout, without depending on generated codegen.
package castmessage

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ProtocolVersion mirrors CastMessage.ProtocolVersion.
type ProtocolVersion int32

// CastV2_1_0 is the only protocol version in use today.
const CastV2_1_0 ProtocolVersion = 0

// PayloadType mirrors CastMessage.PayloadType.
type PayloadType int32

// Payload type variants. Only String is produced or required by this core.
const (
	PayloadTypeString PayloadType = 0
	PayloadTypeBinary PayloadType = 1
)

// Protobuf field numbers from cast_channel.proto.
const (
	fieldProtocolVersion = 1
	fieldSourceID        = 2
	fieldDestinationID   = 3
	fieldNamespace       = 4
	fieldPayloadType     = 5
	fieldPayloadUTF8     = 6
	fieldPayloadBinary   = 7
)

// CastMessage is the single message type carried by every frame (§6).
type CastMessage struct {
	ProtocolVersion ProtocolVersion
	SourceID        string
	DestinationID   string
	Namespace       string
	PayloadType     PayloadType
	PayloadUTF8     string
	PayloadBinary   []byte
}

// Marshal serializes m using the protobuf wire format.
func (m CastMessage) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldProtocolVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.ProtocolVersion))
	b = protowire.AppendTag(b, fieldSourceID, protowire.BytesType)
	b = protowire.AppendString(b, m.SourceID)
	b = protowire.AppendTag(b, fieldDestinationID, protowire.BytesType)
	b = protowire.AppendString(b, m.DestinationID)
	b = protowire.AppendTag(b, fieldNamespace, protowire.BytesType)
	b = protowire.AppendString(b, m.Namespace)
	b = protowire.AppendTag(b, fieldPayloadType, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.PayloadType))
	if m.PayloadType == PayloadTypeString {
		b = protowire.AppendTag(b, fieldPayloadUTF8, protowire.BytesType)
		b = protowire.AppendString(b, m.PayloadUTF8)
	}
	if len(m.PayloadBinary) > 0 {
		b = protowire.AppendTag(b, fieldPayloadBinary, protowire.BytesType)
		b = protowire.AppendBytes(b, m.PayloadBinary)
	}
	return b
}

// Unmarshal parses b into m, ignoring unknown fields for forward compatibility.
func Unmarshal(b []byte) (CastMessage, error) {
	var m CastMessage
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return CastMessage{}, fmt.Errorf("castmessage: invalid tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch num {
		case fieldProtocolVersion:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return CastMessage{}, fmt.Errorf("castmessage: invalid protocol_version: %w", protowire.ParseError(n))
			}
			m.ProtocolVersion = ProtocolVersion(v)
			b = b[n:]
		case fieldSourceID:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return CastMessage{}, fmt.Errorf("castmessage: invalid source_id: %w", protowire.ParseError(n))
			}
			m.SourceID = v
			b = b[n:]
		case fieldDestinationID:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return CastMessage{}, fmt.Errorf("castmessage: invalid destination_id: %w", protowire.ParseError(n))
			}
			m.DestinationID = v
			b = b[n:]
		case fieldNamespace:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return CastMessage{}, fmt.Errorf("castmessage: invalid namespace: %w", protowire.ParseError(n))
			}
			m.Namespace = v
			b = b[n:]
		case fieldPayloadType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return CastMessage{}, fmt.Errorf("castmessage: invalid payload_type: %w", protowire.ParseError(n))
			}
			m.PayloadType = PayloadType(v)
			b = b[n:]
		case fieldPayloadUTF8:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return CastMessage{}, fmt.Errorf("castmessage: invalid payload_utf8: %w", protowire.ParseError(n))
			}
			m.PayloadUTF8 = v
			b = b[n:]
		case fieldPayloadBinary:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return CastMessage{}, fmt.Errorf("castmessage: invalid payload_binary: %w", protowire.ParseError(n))
			}
			m.PayloadBinary = append([]byte(nil), v...)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return CastMessage{}, fmt.Errorf("castmessage: invalid field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return m, nil
}
