package channel

import "encoding/json"

type mediaGetStatusRequest struct {
	PayloadHeader
	MediaSessionID *int64 `json:"mediaSessionId,omitempty"`
}

// BuildMediaGetStatus builds a GET_STATUS request body for the media
// namespace. mediaSessionID may be nil before a media session exists.
func BuildMediaGetStatus(requestID int, mediaSessionID *int64) []byte {
	b, _ := json.Marshal(mediaGetStatusRequest{
		PayloadHeader:  PayloadHeader{Type: "GET_STATUS", RequestID: requestID},
		MediaSessionID: mediaSessionID,
	})
	return b
}

type loadRequest struct {
	PayloadHeader
	SessionID   string           `json:"sessionId"`
	Media       mediaInformation `json:"media"`
	CurrentTime float64          `json:"currentTime"`
	CustomData  interface{}      `json:"customData"`
	Autoplay    bool             `json:"autoplay"`
}

// BuildLoad builds a LOAD request body for the media namespace.
func BuildLoad(requestID int, sessionID string, media Media, currentTime float64, customData interface{}, autoplay bool) []byte {
	b, _ := json.Marshal(loadRequest{
		PayloadHeader: PayloadHeader{Type: "LOAD", RequestID: requestID},
		SessionID:     sessionID,
		Media:         toMediaInformation(media),
		CurrentTime:   currentTime,
		CustomData:    customData,
		Autoplay:      autoplay,
	})
	return b
}

type mediaCommandRequest struct {
	PayloadHeader
	MediaSessionID int64       `json:"mediaSessionId"`
	CustomData     interface{} `json:"customData,omitempty"`
}

func buildMediaCommand(typ string, requestID int, mediaSessionID int64, customData interface{}) []byte {
	b, _ := json.Marshal(mediaCommandRequest{
		PayloadHeader:  PayloadHeader{Type: typ, RequestID: requestID},
		MediaSessionID: mediaSessionID,
		CustomData:     customData,
	})
	return b
}

// BuildPlay builds a PLAY request body for the media namespace.
func BuildPlay(requestID int, mediaSessionID int64, customData interface{}) []byte {
	return buildMediaCommand("PLAY", requestID, mediaSessionID, customData)
}

// BuildPause builds a PAUSE request body for the media namespace.
func BuildPause(requestID int, mediaSessionID int64, customData interface{}) []byte {
	return buildMediaCommand("PAUSE", requestID, mediaSessionID, customData)
}

// BuildStop builds a STOP request body for the media namespace.
func BuildStop(requestID int, mediaSessionID int64, customData interface{}) []byte {
	return buildMediaCommand("STOP", requestID, mediaSessionID, customData)
}

type seekRequest struct {
	PayloadHeader
	MediaSessionID int64       `json:"mediaSessionId"`
	ResumeState    *string     `json:"resumeState,omitempty"`
	CurrentTime    *float64    `json:"currentTime,omitempty"`
	CustomData     interface{} `json:"customData,omitempty"`
}

// BuildSeek builds a SEEK request body for the media namespace.
func BuildSeek(requestID int, mediaSessionID int64, resumeState *string, currentTime *float64, customData interface{}) []byte {
	b, _ := json.Marshal(seekRequest{
		PayloadHeader:  PayloadHeader{Type: "SEEK", RequestID: requestID},
		MediaSessionID: mediaSessionID,
		ResumeState:    resumeState,
		CurrentTime:    currentTime,
		CustomData:     customData,
	})
	return b
}

// MediaStatusEntry is one element of a MEDIA_STATUS response's "status" array.
type MediaStatusEntry struct {
	MediaSessionID int64            `json:"mediaSessionId"`
	PlayerState    string           `json:"playerState"`
	CurrentTime    float64          `json:"currentTime"`
	IdleReason     string           `json:"idleReason,omitempty"`
	Volume         Volume           `json:"volume"`
	Media          mediaInformation `json:"media"`
}

// MediaResponse is the sum type of inbound media-namespace payloads.
type MediaResponse interface {
	isMediaResponse()
}

// MediaStatus is the MEDIA_STATUS response payload.
type MediaStatus struct {
	Status []MediaStatusEntry `json:"status"`
}

func (MediaStatus) isMediaResponse() {}

// LoadCancelled is the LOAD_CANCELLED response payload.
type LoadCancelled struct{}

func (LoadCancelled) isMediaResponse() {}

// LoadFailed is the LOAD_FAILED response payload.
type LoadFailed struct{}

func (LoadFailed) isMediaResponse() {}

// InvalidPlayerState is the INVALID_PLAYER_STATE response payload.
type InvalidPlayerState struct{}

func (InvalidPlayerState) isMediaResponse() {}

// InvalidRequest is the INVALID_REQUEST response payload.
type InvalidRequest struct {
	Reason string `json:"reason,omitempty"`
}

func (InvalidRequest) isMediaResponse() {}

type mediaStatusPayload struct {
	PayloadHeader
	Status []MediaStatusEntry `json:"status"`
}

// ParseMediaResponse classifies a media-namespace JSON payload.
func ParseMediaResponse(payload []byte) (MediaResponse, string, error) {
	var hdr PayloadHeader
	if err := json.Unmarshal(payload, &hdr); err != nil {
		return nil, "", err
	}
	switch hdr.Type {
	case "MEDIA_STATUS":
		var p mediaStatusPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, hdr.Type, err
		}
		return MediaStatus{Status: p.Status}, hdr.Type, nil
	case "LOAD_CANCELLED":
		return LoadCancelled{}, hdr.Type, nil
	case "LOAD_FAILED":
		return LoadFailed{}, hdr.Type, nil
	case "INVALID_PLAYER_STATE":
		return InvalidPlayerState{}, hdr.Type, nil
	case "INVALID_REQUEST":
		var p struct {
			PayloadHeader
			Reason string `json:"reason"`
		}
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, hdr.Type, err
		}
		return InvalidRequest{Reason: p.Reason}, hdr.Type, nil
	default:
		return nil, hdr.Type, nil
	}
}
