// Package client is a Go SDK for the numsafe sync endpoint. It sends entity
// updates as binary frames and returns the server's sanitized copy.
package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zeusync/numsafe/internal/core/observability/log"
	"github.com/zeusync/numsafe/internal/core/protocol"
	"github.com/zeusync/numsafe/pkg/validation"
)

// Config holds configuration for the client
type Config struct {
	// URL of the sync endpoint, e.g. ws://localhost:8080/sync
	URL            string
	ConnectTimeout time.Duration
	MessageTimeout time.Duration
	Logger         log.Log
}

// DefaultConfig returns a default client configuration
func DefaultConfig(url string) Config {
	return Config{
		URL:            url,
		ConnectTimeout: 10 * time.Second,
		MessageTimeout: 5 * time.Second,
	}
}

// Client is a single websocket connection. Send is safe for concurrent use;
// requests are serialised since replies carry no correlation id.
type Client struct {
	conn   *websocket.Conn
	config Config
	logger log.Log

	mu     sync.Mutex
	closed atomic.Bool
}

// Dial connects to the sync endpoint.
func Dial(ctx context.Context, config Config) (*Client, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("%w: empty url", ErrInvalidConfig)
	}
	if config.Logger == nil {
		config.Logger = log.Provide()
	}

	if config.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.ConnectTimeout)
		defer cancel()
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, config.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", config.URL, err)
	}

	c := &Client{
		conn:   conn,
		config: config,
		logger: config.Logger.With(log.String("component", "client"), log.String("url", config.URL)),
	}
	c.logger.Debug("connected")
	return c, nil
}

// Send writes u and waits for the reply. A rejected update yields a
// *RejectedError; the returned update is the server's sanitized copy.
func (c *Client) Send(ctx context.Context, u protocol.Update) (protocol.Update, error) {
	if c.closed.Load() {
		return protocol.Update{}, ErrClientClosed
	}

	frame, err := protocol.Encode(u)
	if err != nil {
		return protocol.Update{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	deadline := c.deadline(ctx)
	if err = c.conn.SetWriteDeadline(deadline); err != nil {
		return protocol.Update{}, err
	}
	if err = c.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		return protocol.Update{}, fmt.Errorf("write: %w", err)
	}

	if err = c.conn.SetReadDeadline(deadline); err != nil {
		return protocol.Update{}, err
	}
	msgType, data, err := c.conn.ReadMessage()
	if err != nil {
		return protocol.Update{}, fmt.Errorf("read: %w", err)
	}

	switch msgType {
	case websocket.BinaryMessage:
		return protocol.Decode(data)
	case websocket.TextMessage:
		return protocol.Update{}, c.replyError(string(data))
	default:
		return protocol.Update{}, fmt.Errorf("%w: %d", ErrUnexpectedType, msgType)
	}
}

// Close sends a close frame and releases the connection.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	c.logger.Debug("disconnected")
	return c.conn.Close()
}

func (c *Client) deadline(ctx context.Context) time.Time {
	var deadline time.Time
	if c.config.MessageTimeout > 0 {
		deadline = time.Now().Add(c.config.MessageTimeout)
	}
	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		deadline = d
	}
	return deadline
}

func (c *Client) replyError(reply string) error {
	if rest, ok := strings.CutPrefix(reply, "reject:"); ok {
		status, known := validation.ParseStatus(rest)
		if !known {
			return fmt.Errorf("%w: %s", ErrServer, reply)
		}
		c.logger.Warn("update rejected", log.Stringer("status", status))
		return &RejectedError{Status: status}
	}
	return fmt.Errorf("%w: %s", ErrServer, strings.TrimPrefix(reply, "error:"))
}
