package gocast

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/go-cast/gocast/pkg/channel"
	"github.com/go-cast/gocast/pkg/model"
	"github.com/go-cast/gocast/pkg/queue"
	"github.com/go-cast/gocast/pkg/session"
	"github.com/go-cast/gocast/pkg/valve"
	"github.com/go-cast/gocast/pkg/wire"
)

// Client is the public entry point (C6): a connected, running Cast session.
// All methods are fire-and-forget — they enqueue a Command and return
// immediately, never blocking for the protocol round-trip (§4.6).
type Client struct {
	cfg   ClientConfig
	conn  net.Conn
	enc   *wire.Encoder
	dec   *wire.Decoder
	state *session.State

	commands *queue.Unbounded[model.Command]
	statuses *queue.Unbounded[model.Status]

	trigger valve.Trigger
	valve   valve.Valve
	group   errgroup.Group

	id  uuid.UUID
	log zerolog.Logger
}

// Connect performs the TLS handshake, constructs the framed transport,
// spawns the four worker tasks, and invokes LaunchApp (§4.6). The returned
// channel is the lossless status stream (§6); it closes once the reader
// worker exits, which Shutdown brings about after the command queue has
// drained.
func Connect(ctx context.Context, addr string, opts ...Option) (*Client, <-chan Status, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}
	if cfg.HeartbeatInterval == 0 {
		cfg.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if cfg.StatusPollInterval == 0 {
		cfg.StatusPollInterval = DefaultStatusPollInterval
	}

	id := uuid.New()
	log := resolveLogger(cfg).With().Str("connection_id", id.String()).Logger()

	dialer := &tls.Dialer{NetDialer: &net.Dialer{Timeout: cfg.DialTimeout}, Config: cfg.TLSConfig}
	rawConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("gocast: dial %s: %w", addr, err)
	}
	c := &Client{
		cfg:      cfg,
		conn:     rawConn,
		enc:      wire.NewEncoder(rawConn, cfg.MaxFrameSize),
		dec:      wire.NewDecoder(rawConn, cfg.MaxFrameSize),
		state:    session.New(),
		commands: queue.New[model.Command](),
		statuses: queue.New[model.Status](),
		id:       id,
		log:      log,
	}
	c.trigger, c.valve = valve.New()

	c.group.Go(c.runReader)
	c.group.Go(c.runWriter)
	c.group.Go(c.runKeepalive)
	c.group.Go(c.runStatusPoller)

	c.LaunchApp()

	return c, c.statuses.Out(), nil
}

// LaunchApp enqueues the startup sequence: a Connect to the receiver root,
// followed by a Launch of the default media receiver app (§4.5's "Startup
// ordering"). It is idempotent: calling it again simply re-enqueues the same
// two commands.
func (c *Client) LaunchApp() {
	root := session.ReceiverConnection{Session: channel.ReceiverID, Transport: channel.ReceiverID}
	c.commands.Send(model.CommandConnect{Receiver: root})
	c.commands.Send(model.CommandLaunch{AppID: channel.DefaultMediaReceiverAppID})
}

// Load invalidates the current media session (so the status poller stops
// chasing a stale media session id across the reload) and enqueues a Load
// command (§4.6).
func (c *Client) Load(receiver ReceiverConnection, media Media) {
	c.state.Invalidate()
	c.commands.Send(model.CommandLoad{Receiver: receiver, Media: media})
}

// Play enqueues a Play command for the given media connection.
func (c *Client) Play(mc MediaConnection) {
	c.commands.Send(model.CommandPlay{Media: mc})
}

// Pause enqueues a Pause command for the given media connection.
func (c *Client) Pause(mc MediaConnection) {
	c.commands.Send(model.CommandPause{Media: mc})
}

// Stop enqueues a Stop command for the given media connection.
func (c *Client) Stop(mc MediaConnection) {
	c.commands.Send(model.CommandStop{Media: mc})
}

// Seek enqueues a Seek command to the given position (seconds) for the
// media connection.
func (c *Client) Seek(mc MediaConnection, positionSeconds float64) {
	c.commands.Send(model.CommandSeek{Media: mc, Position: positionSeconds})
}

// SetVolume enqueues a SetVolume command.
func (c *Client) SetVolume(level float64, muted bool) {
	c.commands.Send(model.CommandSetVolume{Level: level, Muted: muted})
}

// Shutdown trips the valve's trigger and closes the command queue (§4.5).
// No further commands are accepted; commands already buffered are still
// drained to the wire by the writer before it closes the underlying
// connection. Shutdown does not block; use Wait to observe completion.
func (c *Client) Shutdown() {
	c.trigger()
	c.commands.Close()
}

// Wait blocks until all four worker tasks have exited, returning the first
// non-nil error any of them observed (typically an I/O error once the
// connection is closed, per §7).
func (c *Client) Wait() error {
	return c.group.Wait()
}

// ConnectionID returns the correlation id attached to every log line this
// client emits.
func (c *Client) ConnectionID() string {
	return c.id.String()
}
