// SPDX-License-Identifier: MPL-2.0

// Package wsx provides a thin convenience layer over gorilla/websocket:
// context-aware dialing, JSON framing with serialized writes, and a managed
// receive loop.
package wsx

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/axlekit/axle/pkg/diag"
)

// closeGrace bounds how long Close waits for the closing handshake write.
const closeGrace = time.Second

// Conn is a websocket connection with JSON framing. Writes are serialized
// with an internal mutex so Conn is safe for concurrent senders; reads must
// stay on a single goroutine, which Listen takes care of.
type Conn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
}

// Dial connects to a websocket endpoint (ws:// or wss:// URL).
func Dial(ctx context.Context, url string) (*Conn, error) {
	ws, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, diag.WrapPath(err, "dial websocket", url)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	log.Debug("websocket connected", "url", url)
	return &Conn{ws: ws}, nil
}

// SendJSON writes v as a JSON text message.
func (c *Conn) SendJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return diag.Wrap(c.ws.WriteJSON(v), "write websocket message")
}

// RecvJSON reads the next message and decodes it into v.
func (c *Conn) RecvJSON(v any) error {
	return diag.Wrap(c.ws.ReadJSON(v), "read websocket message")
}

// Close performs the closing handshake and closes the connection.
func (c *Conn) Close() error {
	c.writeMu.Lock()
	c.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(closeGrace),
	)
	c.writeMu.Unlock()
	return c.ws.Close()
}

// Listen reads messages until the peer closes, handle fails, or ctx is
// canceled, invoking handle for each raw JSON message. A normal closure and
// a canceled context both return nil-adjacent outcomes: closure is nil,
// cancellation returns ctx.Err().
func (c *Conn) Listen(ctx context.Context, handle func(json.RawMessage) error) error {
	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		select {
		case <-ctx.Done():
			// Unblocks the reader below.
			c.ws.Close()
		case <-done:
		}
		return nil
	})

	g.Go(func() error {
		defer close(done)
		defer c.ws.Close()
		for {
			_, data, err := c.ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return nil
				}
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return diag.Wrap(err, "read websocket message")
			}
			if err := handle(json.RawMessage(data)); err != nil {
				return err
			}
		}
	})

	return g.Wait()
}
