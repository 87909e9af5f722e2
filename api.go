// Package gocast implements the Cast Protocol Client Core: a long-lived
// asynchronous client for the Google Cast v2 control protocol. It connects
// over TLS to a receiver, multiplexes four logical channels over a single
// length-prefixed protobuf frame stream, tracks a small session state
// machine, and exposes high-level commands plus an asynchronous status
// stream.
package gocast

import (
	"github.com/go-cast/gocast/pkg/channel"
	"github.com/go-cast/gocast/pkg/model"
	"github.com/go-cast/gocast/pkg/session"
)

// Command and Status are the public sum types exchanged with the client
// (§3). Concrete variants live in pkg/model and are re-exported here so
// callers never need to import that package directly.
type (
	Command = model.Command
	Status  = model.Status
)

// Command variants.
type (
	CommandConnect        = model.CommandConnect
	CommandLaunch         = model.CommandLaunch
	CommandLoad           = model.CommandLoad
	CommandReceiverStatus = model.CommandReceiverStatus
	CommandMediaStatus    = model.CommandMediaStatus
	CommandPlay           = model.CommandPlay
	CommandPause          = model.CommandPause
	CommandStop           = model.CommandStop
	CommandSeek           = model.CommandSeek
	CommandSetVolume      = model.CommandSetVolume
	CommandPing           = model.CommandPing
	CommandPong           = model.CommandPong
)

// Status variants.
type (
	StatusConnected          = model.StatusConnected
	StatusMediaConnected     = model.StatusMediaConnected
	StatusMediaState         = model.StatusMediaState
	StatusLoadCancelled      = model.StatusLoadCancelled
	StatusLoadFailed         = model.StatusLoadFailed
	StatusInvalidPlayerState = model.StatusInvalidPlayerState
	StatusInvalidRequest     = model.StatusInvalidRequest
	StatusAppAvailability    = model.StatusAppAvailability
)

// ReceiverConnection and MediaConnection identify, respectively, a launched
// app's session/transport and an active media item within it (§3).
type (
	ReceiverConnection = session.ReceiverConnection
	MediaConnection    = session.MediaConnection
)

// Media is the opaque media descriptor passed to Load (§3).
type Media = channel.Media

// Image is optional cover art metadata on a Media value.
type Image = channel.Image

// DefaultMediaReceiverAppID is the well-known app id of the default media
// receiver ("CC1AD845").
const DefaultMediaReceiverAppID = channel.DefaultMediaReceiverAppID
