package model

import (
	"github.com/go-cast/gocast/pkg/channel"
	"github.com/go-cast/gocast/pkg/session"
)

// Status is the sum type of outbound observations delivered on the status
// stream (§3).
type Status interface {
	isStatus()
}

// StatusConnected reports that the receiver connection's session and
// transport ids have just been established (edge-triggered, §4.4).
type StatusConnected struct {
	Receiver session.ReceiverConnection
}

func (StatusConnected) isStatus() {}

// StatusMediaConnected reports that a media session has just been
// established (edge-triggered, §4.4).
type StatusMediaConnected struct {
	Media session.MediaConnection
}

func (StatusMediaConnected) isStatus() {}

// StatusMediaState carries the latest media status snapshot.
type StatusMediaState struct {
	Entry channel.MediaStatusEntry
}

func (StatusMediaState) isStatus() {}

// StatusLoadCancelled reports a LOAD_CANCELLED media response.
type StatusLoadCancelled struct{}

func (StatusLoadCancelled) isStatus() {}

// StatusLoadFailed reports a LOAD_FAILED media response.
type StatusLoadFailed struct{}

func (StatusLoadFailed) isStatus() {}

// StatusInvalidPlayerState reports an INVALID_PLAYER_STATE media response.
type StatusInvalidPlayerState struct{}

func (StatusInvalidPlayerState) isStatus() {}

// StatusInvalidRequest reports an INVALID_REQUEST media response.
type StatusInvalidRequest struct {
	Reason string
}

func (StatusInvalidRequest) isStatus() {}

// StatusAppAvailability reports a GET_APP_AVAILABILITY response, appId ->
// available.
type StatusAppAvailability struct {
	Availability map[string]bool
}

func (StatusAppAvailability) isStatus() {}
