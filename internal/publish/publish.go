// Package publish pushes evaluation outcomes to a remote view over
// socket.io, so a separate display can mirror what the evaluator produced.
package publish

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/specialistvlad/bmicalc/internal/ctxlog"
	"github.com/specialistvlad/bmicalc/internal/render"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Event is the socket.io event name every outcome is emitted under.
const Event = "bmi:evaluated"

// Publisher delivers outcomes to a view.
type Publisher interface {
	Publish(ctx context.Context, item render.Item) error
	Close() error
}

// Nop discards everything. It is used when no view is configured.
type Nop struct{}

// Publish drops the item.
func (Nop) Publish(context.Context, render.Item) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }

// Options configures a socket.io connection.
type Options struct {
	URL                string
	Namespace          string
	// InsecureSkipVerify disables TLS certificate checks for wss/https views.
	InsecureSkipVerify bool
	// Timeout bounds the initial connection. Zero means 15s.
	Timeout time.Duration
}

// SocketIO is a Publisher backed by a connected socket.io client.
type SocketIO struct {
	io        *socket.Socket
	connected atomic.Bool
}

// Dial connects to the view and waits until the connection is established.
func Dial(ctx context.Context, opts Options) (*SocketIO, error) {
	logger := ctxlog.FromContext(ctx).With("publisher", "socketio", "url", opts.URL)

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("publish URL %q must include a scheme and host", opts.URL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	sioOpts := socket.DefaultOptions()
	sioOpts.SetPath(parsedURL.Path)
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sioOpts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sioOpts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sioOpts)
	io := manager.Socket(opts.Namespace, sioOpts)

	p := &SocketIO{io: io}
	connectChan := make(chan error, 1)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to view", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		var err error = fmt.Errorf("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", errs[0])
			}
		}
		connectChan <- err
	})
	io.On(types.EventName("connect"), func(...any) { p.connected.Store(true) })
	io.On(types.EventName("disconnect"), func(...any) { p.connected.Store(false) })

	logger.Debug("Initiating connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		p.connected.Store(true)
		return p, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// Publish emits the item as a JSON object. Delivery is not acknowledged.
func (p *SocketIO) Publish(ctx context.Context, item render.Item) error {
	if !p.connected.Load() {
		return fmt.Errorf("socket.io view is not connected")
	}

	payload, err := toPayload(item)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Emitting event", "event", Event, "name", item.Name)
	p.io.Emit(Event, payload)
	return nil
}

// Close disconnects from the view.
func (p *SocketIO) Close() error {
	p.connected.Store(false)
	p.io.Disconnect()
	return nil
}

// toPayload flattens the item into a plain map for the socket.io encoder.
func toPayload(item render.Item) (map[string]any, error) {
	raw, err := json.Marshal(render.NewJSONItem(item))
	if err != nil {
		return nil, fmt.Errorf("failed to encode outcome: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to encode outcome: %w", err)
	}
	return out, nil
}
