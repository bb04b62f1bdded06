package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

const watchBuffer = 16

// Subscription is one live-update stream for a simulation. Events stops
// delivering after Unsubscribe or when the server closes the stream
// (terminal status reached).
type Subscription struct {
	Events <-chan Event

	conn *websocket.Conn
	done chan struct{}
}

// Unsubscribe closes the stream. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	select {
	case <-s.done:
	default:
		close(s.done)
		_ = s.conn.Close()
	}
}

// Subscribe opens a websocket to the simulation's watch endpoint and
// returns a stream of progress events. The bearer token is sent on the
// upgrade request.
func (c *Client) Subscribe(ctx context.Context, simulationID string) (*Subscription, error) {
	wsURL := httpToWs(c.baseURL) + "/v1/simulations/" + simulationID + "/watch"

	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil {
			return nil, normalizeError(resp.StatusCode, "")
		}
		return nil, fmt.Errorf("watch dial: %w", err)
	}

	events := make(chan Event, watchBuffer)
	sub := &Subscription{
		Events: events,
		conn:   conn,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(events)
		for {
			var event Event
			if err := conn.ReadJSON(&event); err != nil {
				return
			}
			select {
			case events <- event:
			case <-sub.done:
				return
			}
		}
	}()

	return sub, nil
}

func httpToWs(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base
}
