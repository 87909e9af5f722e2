// Package handler implements the C4 channel handlers: per-namespace inbound
// payload handlers that mutate session state and emit follow-up commands
// and status events.
package handler

import (
	"github.com/rs/zerolog"

	"github.com/go-cast/gocast/pkg/channel"
	"github.com/go-cast/gocast/pkg/liberrors"
	"github.com/go-cast/gocast/pkg/model"
	"github.com/go-cast/gocast/pkg/queue"
	"github.com/go-cast/gocast/pkg/session"
)

// Handler dispatches typed inbound channel messages against the shared
// session state, emitting follow-up commands and status events.
type Handler struct {
	State    *session.State
	Commands *queue.Unbounded[model.Command]
	Statuses *queue.Unbounded[model.Status]
	Log      zerolog.Logger
}

// Dispatch routes msg to the handler matching its populated channel, in the
// observed-frequency order of §4.4: media, receiver, heartbeat, connection.
func (h *Handler) Dispatch(msg channel.Message) error {
	switch {
	case msg.Media != nil:
		return h.handleMedia(msg.Media)
	case msg.Receiver != nil:
		return h.handleReceiver(msg.Receiver)
	case msg.Heartbeat != nil:
		return h.handleHeartbeat(msg.Heartbeat)
	case msg.Connection != nil:
		return h.handleConnection(msg.Connection)
	default:
		return nil
	}
}

func (h *Handler) handleMedia(resp channel.MediaResponse) error {
	switch v := resp.(type) {
	case channel.MediaStatus:
		if len(v.Status) == 0 {
			h.State.Invalidate()
			return nil
		}
		entry := v.Status[0]
		mc, changed := h.State.RegisterMediaSession(entry.MediaSessionID)
		if changed {
			if !h.Statuses.Send(model.StatusMediaConnected{Media: mc}) {
				h.Log.Warn().Msg("status send failed: MediaConnected")
				return liberrors.ErrStatusSend{Reason: "status stream closed"}
			}
		}
		if !h.Statuses.Send(model.StatusMediaState{Entry: entry}) {
			h.Log.Warn().Msg("status send failed: MediaState")
			return liberrors.ErrStatusSend{Reason: "status stream closed"}
		}
		return nil
	case channel.LoadCancelled:
		h.Statuses.Send(model.StatusLoadCancelled{})
	case channel.LoadFailed:
		h.Statuses.Send(model.StatusLoadFailed{})
	case channel.InvalidPlayerState:
		h.Statuses.Send(model.StatusInvalidPlayerState{})
	case channel.InvalidRequest:
		h.Statuses.Send(model.StatusInvalidRequest{Reason: v.Reason})
	}
	return nil
}

func (h *Handler) handleReceiver(resp channel.ReceiverResponse) error {
	switch v := resp.(type) {
	case channel.ReceiverStatus:
		app, found := channel.ReceiverAppByID(v, channel.DefaultMediaReceiverAppID)
		if !found {
			return nil
		}
		sessionID, transportID := app.SessionID, app.TransportID
		sessionChanged := h.State.SetSession(&sessionID)
		transportChanged := h.State.SetTransport(&transportID)
		if !sessionChanged || !transportChanged {
			// redundant status; drop silently (§4.4).
			return nil
		}
		rc, ok := h.State.ReceiverConnection()
		if !ok {
			return nil
		}
		if !h.Statuses.Send(model.StatusConnected{Receiver: rc}) {
			h.Log.Warn().Msg("status send failed: Connected")
			return liberrors.ErrStatusSend{Reason: "status stream closed"}
		}
		if !h.Commands.Send(model.CommandConnect{Receiver: rc}) {
			h.Log.Warn().Msg("command send failed: Connect")
			return liberrors.ErrCommandSend{Reason: "command queue closed"}
		}
		return nil
	case channel.AppAvailability:
		avail := make(map[string]bool, len(v.Availability))
		for id, state := range v.Availability {
			avail[id] = state == "APP_AVAILABLE"
		}
		h.Statuses.Send(model.StatusAppAvailability{Availability: avail})
	}
	return nil
}

func (h *Handler) handleHeartbeat(resp channel.HeartbeatResponse) error {
	switch resp.(type) {
	case channel.Ping:
		if !h.Commands.Send(model.CommandPong{}) {
			h.Log.Warn().Msg("command send failed: Pong")
			return liberrors.ErrCommandSend{Reason: "command queue closed"}
		}
	case channel.Pong:
		// receiver's reply to our own keepalive ping; nothing to do.
	}
	return nil
}

func (h *Handler) handleConnection(resp channel.ConnectionResponse) error {
	switch resp.(type) {
	case channel.Close:
		h.Log.Debug().Msg("receiver closed the connection channel")
	}
	return nil
}
