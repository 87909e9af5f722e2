package gocast

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-cast/gocast/internal/handler"
	"github.com/go-cast/gocast/pkg/castmessage"
	"github.com/go-cast/gocast/pkg/channel"
	"github.com/go-cast/gocast/pkg/liberrors"
	"github.com/go-cast/gocast/pkg/model"
	"github.com/go-cast/gocast/pkg/valve"
	"github.com/go-cast/gocast/pkg/wire"
)

// runReader is the Reader worker (C5): for each inbound frame, classify it
// by namespace and dispatch it through the channel handlers. Transient
// errors (unknown channel, unknown payload, parse failure, command/status
// send failure) are logged and absorbed; only an I/O error terminates the
// worker (§7).
func (c *Client) runReader() error {
	h := &handler.Handler{
		State:    c.state,
		Commands: c.commands,
		Statuses: c.statuses,
		Log:      c.log,
	}
	// The reader is the only producer of statuses, so the status stream
	// closes when it exits.
	defer c.statuses.Close()

	for {
		msg, err := c.dec.ReadMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.log.Debug().Msg("reader: connection closed")
				return nil
			}
			c.log.Error().Err(err).Msg("reader: I/O error")
			return fmt.Errorf("gocast: reader: %w", err)
		}

		chMsg, err := channel.Parse(msg.Namespace, []byte(msg.PayloadUTF8))
		if err != nil {
			c.log.Warn().Err(err).Str("namespace", msg.Namespace).Msg("reader: dropping frame")
			continue
		}

		if err := h.Dispatch(chMsg); err != nil {
			c.log.Warn().Err(err).Msg("reader: handler error, continuing")
			continue
		}
		c.log.Debug().Str("namespace", msg.Namespace).Msg("reader: dispatched frame")
	}
}

// runWriter is the Writer worker (C5): forwards the (drain-capable) command
// queue into the framed sink. Once the queue is closed and drained, it
// closes the underlying connection; the Reader's next read then fails on
// the closed connection and the Reader exits with that error (§4.5's
// shutdown sequence).
func (c *Client) runWriter() error {
	defer func() {
		if err := c.conn.Close(); err != nil {
			c.log.Debug().Err(err).Msg("writer: close connection")
		}
	}()

	for cmd := range c.commands.Out() {
		msg, err := buildFrame(cmd, c.enc)
		if err != nil {
			c.log.Warn().Err(err).Msg("writer: failed to build frame, dropping command")
			continue
		}
		if _, ok := cmd.(model.CommandConnect); ok {
			msg.PayloadUTF8 = string(channel.BuildConnect(c.cfg.UserAgent))
		}
		if err := c.enc.WriteMessage(msg); err != nil {
			c.log.Warn().Err(err).Msg("writer: sink error, absorbed")
			continue
		}
	}
	return nil
}

// runKeepalive is the Keepalive worker (§4.5): every HeartbeatInterval,
// enqueue a Ping. It terminates as soon as the valve is triggered.
func (c *Client) runKeepalive() error {
	ticker := time.NewTicker(c.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		_, ok := valve.Cancel(c.valve, ticker.C)
		if !ok {
			return nil
		}
		c.commands.Send(model.CommandPing{})
	}
}

// runStatusPoller is the Status Poller worker (§4.5): every
// StatusPollInterval, until the valve is triggered, read the session state and
// enqueue ReceiverStatus, plus MediaStatus if a media connection exists.
func (c *Client) runStatusPoller() error {
	ticker := time.NewTicker(c.cfg.StatusPollInterval)
	defer ticker.Stop()

	for {
		_, ok := valve.Cancel(c.valve, ticker.C)
		if !ok {
			return nil
		}
		c.commands.Send(model.CommandReceiverStatus{})
		if mc, ok := c.state.MediaConnection(); ok {
			c.commands.Send(model.CommandMediaStatus{Media: mc})
		}
	}
}

// frame builds a CastMessage envelope with the given namespace, destination
// and JSON payload (§4.2).
func frame(namespace, destinationID string, payload []byte) castmessage.CastMessage {
	return castmessage.CastMessage{
		ProtocolVersion: castmessage.CastV2_1_0,
		SourceID:        channel.SenderID,
		DestinationID:   destinationID,
		Namespace:       namespace,
		PayloadType:     castmessage.PayloadTypeString,
		PayloadUTF8:     string(payload),
	}
}

// buildFrame translates a Command into its wire CastMessage, assigning the
// next monotonic request id at encode time (§4.1, §9's "request id
// assignment at encode time, not call time").
func buildFrame(cmd model.Command, enc *wire.Encoder) (castmessage.CastMessage, error) {
	switch c := cmd.(type) {
	case model.CommandConnect:
		return frame(channel.NamespaceConnection, c.Receiver.Transport, channel.BuildConnect("gocast")), nil

	case model.CommandLaunch:
		id := enc.NextRequestID()
		return frame(channel.NamespaceReceiver, channel.ReceiverID, channel.BuildLaunch(id, c.AppID)), nil

	case model.CommandLoad:
		id := enc.NextRequestID()
		return frame(channel.NamespaceMedia, c.Receiver.Transport,
			channel.BuildLoad(id, c.Receiver.Session, c.Media, 0, nil, true)), nil

	case model.CommandReceiverStatus:
		id := enc.NextRequestID()
		return frame(channel.NamespaceReceiver, channel.ReceiverID, channel.BuildReceiverGetStatus(id)), nil

	case model.CommandMediaStatus:
		id := enc.NextRequestID()
		msID := c.Media.MediaSessionID
		return frame(channel.NamespaceMedia, c.Media.Receiver.Transport,
			channel.BuildMediaGetStatus(id, &msID)), nil

	case model.CommandPlay:
		id := enc.NextRequestID()
		return frame(channel.NamespaceMedia, c.Media.Receiver.Transport,
			channel.BuildPlay(id, c.Media.MediaSessionID, nil)), nil

	case model.CommandPause:
		id := enc.NextRequestID()
		return frame(channel.NamespaceMedia, c.Media.Receiver.Transport,
			channel.BuildPause(id, c.Media.MediaSessionID, nil)), nil

	case model.CommandStop:
		id := enc.NextRequestID()
		return frame(channel.NamespaceMedia, c.Media.Receiver.Transport,
			channel.BuildStop(id, c.Media.MediaSessionID, nil)), nil

	case model.CommandSeek:
		id := enc.NextRequestID()
		pos := c.Position
		return frame(channel.NamespaceMedia, c.Media.Receiver.Transport,
			channel.BuildSeek(id, c.Media.MediaSessionID, nil, &pos, nil)), nil

	case model.CommandSetVolume:
		return frame(channel.NamespaceReceiver, channel.ReceiverID, channel.BuildSetVolume(c.Level, c.Muted)), nil

	case model.CommandPing:
		return frame(channel.NamespaceHeartbeat, channel.ReceiverID, channel.BuildPing()), nil

	case model.CommandPong:
		return frame(channel.NamespaceHeartbeat, channel.ReceiverID, channel.BuildPong()), nil

	default:
		return castmessage.CastMessage{}, liberrors.ErrUnknownPayload{Namespace: "(outbound)", Type: "unrecognized command"}
	}
}
