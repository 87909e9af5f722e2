package channel

import "encoding/json"

type launchRequest struct {
	PayloadHeader
	AppID string `json:"appId"`
}

// BuildLaunch builds a LAUNCH request body for the receiver namespace.
func BuildLaunch(requestID int, appID string) []byte {
	b, _ := json.Marshal(launchRequest{
		PayloadHeader: PayloadHeader{Type: "LAUNCH", RequestID: requestID},
		AppID:         appID,
	})
	return b
}

// BuildReceiverGetStatus builds a GET_STATUS request body for the receiver
// namespace.
func BuildReceiverGetStatus(requestID int) []byte {
	b, _ := json.Marshal(PayloadHeader{Type: "GET_STATUS", RequestID: requestID})
	return b
}

type setVolumeRequest struct {
	Type   string `json:"type"`
	Volume Volume `json:"volume"`
}

// BuildSetVolume builds a SET_VOLUME request body for the receiver
// namespace. Unlike every other receiver/media request, SET_VOLUME carries
// no requestId (spec.md's wire format has none, and the receiver never
// acknowledges it with a matching response).
func BuildSetVolume(level float64, muted bool) []byte {
	b, _ := json.Marshal(setVolumeRequest{
		Type:   "SET_VOLUME",
		Volume: Volume{Level: level, Muted: muted},
	})
	return b
}

type getAppAvailabilityRequest struct {
	PayloadHeader
	AppID []string `json:"appId"`
}

// BuildGetAppAvailability builds a GET_APP_AVAILABILITY request body.
func BuildGetAppAvailability(requestID int, appIDs []string) []byte {
	b, _ := json.Marshal(getAppAvailabilityRequest{
		PayloadHeader: PayloadHeader{Type: "GET_APP_AVAILABILITY", RequestID: requestID},
		AppID:         appIDs,
	})
	return b
}

// Volume is the receiver's {level, muted} pair, shared by receiver and
// media status payloads.
type Volume struct {
	Level float64 `json:"level"`
	Muted bool    `json:"muted"`
}

// Application describes one running receiver application.
type Application struct {
	AppID        string `json:"appId"`
	DisplayName  string `json:"displayName"`
	IsIdleScreen bool   `json:"isIdleScreen"`
	SessionID    string `json:"sessionId"`
	StatusText   string `json:"statusText"`
	TransportID  string `json:"transportId"`
}

// ReceiverResponse is the sum type of inbound receiver-namespace payloads.
type ReceiverResponse interface {
	isReceiverResponse()
}

// ReceiverStatus is the RECEIVER_STATUS response payload.
type ReceiverStatus struct {
	Applications []Application `json:"applications"`
	Volume       Volume        `json:"volume"`
}

func (ReceiverStatus) isReceiverResponse() {}

// AppAvailability is the GET_APP_AVAILABILITY response payload: appId -> "APP_AVAILABLE"/"APP_UNAVAILABLE".
type AppAvailability struct {
	Availability map[string]string `json:"availability"`
}

func (AppAvailability) isReceiverResponse() {}

type receiverStatusPayload struct {
	PayloadHeader
	Status ReceiverStatus `json:"status"`
}

type appAvailabilityPayload struct {
	PayloadHeader
	Availability map[string]string `json:"availability"`
}

// ReceiverAppByID returns the application entry with the given appId, if any.
func ReceiverAppByID(status ReceiverStatus, appID string) (Application, bool) {
	for _, app := range status.Applications {
		if app.AppID == appID {
			return app, true
		}
	}
	return Application{}, false
}

// ParseReceiverResponse classifies a receiver-namespace JSON payload.
func ParseReceiverResponse(payload []byte) (ReceiverResponse, string, error) {
	var hdr PayloadHeader
	if err := json.Unmarshal(payload, &hdr); err != nil {
		return nil, "", err
	}
	switch hdr.Type {
	case "RECEIVER_STATUS":
		var p receiverStatusPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, hdr.Type, err
		}
		return p.Status, hdr.Type, nil
	case "GET_APP_AVAILABILITY":
		var p appAvailabilityPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, hdr.Type, err
		}
		return AppAvailability{Availability: p.Availability}, hdr.Type, nil
	default:
		return nil, hdr.Type, nil
	}
}
