// Package model holds the Command and Status sum types (§3) that flow
// between the client facade, the channel handlers and the worker tasks.
// They are kept in their own leaf package so that both the root Client and
// internal/handler can depend on them without an import cycle.
package model

import (
	"github.com/go-cast/gocast/pkg/channel"
	"github.com/go-cast/gocast/pkg/session"
)

// Command is the sum type of outbound intents (§3).
type Command interface {
	isCommand()
}

// CommandConnect opens a per-transport virtual connection on the connection
// namespace targeting the given receiver connection's transport id.
type CommandConnect struct {
	Receiver session.ReceiverConnection
}

func (CommandConnect) isCommand() {}

// CommandLaunch requests the receiver launch an application.
type CommandLaunch struct {
	AppID string
}

func (CommandLaunch) isCommand() {}

// CommandLoad requests the receiver load a media item into the given
// receiver connection's session.
type CommandLoad struct {
	Receiver session.ReceiverConnection
	Media    channel.Media
}

func (CommandLoad) isCommand() {}

// CommandReceiverStatus polls the receiver's application status.
type CommandReceiverStatus struct{}

func (CommandReceiverStatus) isCommand() {}

// CommandMediaStatus polls the media status of an established media
// connection.
type CommandMediaStatus struct {
	Media session.MediaConnection
}

func (CommandMediaStatus) isCommand() {}

// CommandPlay resumes playback of the given media connection.
type CommandPlay struct {
	Media session.MediaConnection
}

func (CommandPlay) isCommand() {}

// CommandPause pauses playback of the given media connection.
type CommandPause struct {
	Media session.MediaConnection
}

func (CommandPause) isCommand() {}

// CommandStop stops playback of the given media connection.
type CommandStop struct {
	Media session.MediaConnection
}

func (CommandStop) isCommand() {}

// CommandSeek seeks the given media connection to a position in seconds.
type CommandSeek struct {
	Media    session.MediaConnection
	Position float64
}

func (CommandSeek) isCommand() {}

// CommandSetVolume sets the receiver's output volume.
type CommandSetVolume struct {
	Level float64
	Muted bool
}

func (CommandSetVolume) isCommand() {}

// CommandPing is the keepalive heartbeat sent every 5 seconds (§4.5).
type CommandPing struct{}

func (CommandPing) isCommand() {}

// CommandPong replies to a receiver-initiated Ping.
type CommandPong struct{}

func (CommandPong) isCommand() {}
