package server

import (
	"context"
	"errors"
	"sync"

	"github.com/germanamz/blendy/pkg/host"
	"github.com/germanamz/blendy/pkg/host/bridge"
	"github.com/germanamz/blendy/pkg/scene"
)

// dialFunc establishes a new bridge connection.
type dialFunc func(ctx context.Context) (*bridge.Bridge, error)

// hostConn is a host.Host that dials lazily and redials after the connection
// is lost. Blender may start after the MCP server (or restart under it), so
// the server never requires the host at startup; an unreachable host simply
// surfaces as host.ErrUnavailable on each call.
type hostConn struct {
	mu   sync.Mutex
	dial dialFunc
	cur  *bridge.Bridge
}

func newHostConn(dial dialFunc) *hostConn {
	return &hostConn{dial: dial}
}

// acquire returns the current connection, dialing when there is none.
func (h *hostConn) acquire(ctx context.Context) (*bridge.Bridge, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cur != nil {
		return h.cur, nil
	}

	b, err := h.dial(ctx)
	if err != nil {
		return nil, err
	}

	h.cur = b

	return b, nil
}

// drop discards a connection after a transport failure so the next call
// redials.
func (h *hostConn) drop(b *bridge.Bridge) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cur == b {
		_ = b.Close()
		h.cur = nil
	}
}

// Close closes the current connection, if any.
func (h *hostConn) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cur == nil {
		return nil
	}

	err := h.cur.Close()
	h.cur = nil

	return err
}

// checked runs one scripting call against the current connection and drops it
// on transport failure.
func (h *hostConn) checked(ctx context.Context, call func(b *bridge.Bridge) error) error {
	b, err := h.acquire(ctx)
	if err != nil {
		return err
	}

	if err := call(b); err != nil {
		if errors.Is(err, host.ErrUnavailable) {
			h.drop(b)
		}
		return err
	}

	return nil
}

// AddCube implements host.Host.
func (h *hostConn) AddCube(ctx context.Context, size float64, location scene.Location) error {
	return h.checked(ctx, func(b *bridge.Bridge) error {
		return b.AddCube(ctx, size, location)
	})
}

// ActiveObject implements host.Host.
func (h *hostConn) ActiveObject(ctx context.Context) (scene.Object, bool, error) {
	var (
		obj scene.Object
		ok  bool
	)

	err := h.checked(ctx, func(b *bridge.Bridge) error {
		var callErr error
		obj, ok, callErr = b.ActiveObject(ctx)
		return callErr
	})

	return obj, ok, err
}

// Rename implements host.Host.
func (h *hostConn) Rename(ctx context.Context, obj scene.Object, newName string) error {
	return h.checked(ctx, func(b *bridge.Bridge) error {
		return b.Rename(ctx, obj, newName)
	})
}
