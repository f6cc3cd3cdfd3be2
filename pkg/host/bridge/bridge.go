// Package bridge implements host.Host over a WebSocket connection to a
// Blender-side addon. Each scripting call is one JSON request/response
// exchange; the addon executes the corresponding bpy operation inside
// Blender's process and reports the result.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/germanamz/blendy/pkg/host"
	"github.com/germanamz/blendy/pkg/scene"
)

// DefaultCallTimeout bounds a single scripting call when Options leaves
// CallTimeout unset.
const DefaultCallTimeout = 10 * time.Second

// Options configures a Bridge.
type Options struct {
	// CallTimeout bounds each scripting call. Zero means
	// DefaultCallTimeout.
	CallTimeout time.Duration
	// HTTPClient is used for the WebSocket handshake. Nil means
	// http.DefaultClient.
	HTTPClient *http.Client
}

// Bridge is a host.Host backed by a live WebSocket connection. Calls are
// serialized: the addon processes one command at a time on Blender's main
// thread, so the bridge never pipelines.
type Bridge struct {
	mu          sync.Mutex
	conn        *websocket.Conn
	nextID      int64
	callTimeout time.Duration
}

// request is the wire envelope sent to the addon.
type request struct {
	ID     int64  `json:"id"`
	Cmd    string `json:"cmd"`
	Params any    `json:"params,omitempty"`
}

// response is the wire envelope received from the addon.
type response struct {
	ID     int64           `json:"id"`
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Dial connects to the addon at the given ws:// or wss:// URL. A handshake
// failure means the Blender host is not reachable and wraps
// host.ErrUnavailable.
func Dial(ctx context.Context, url string, opts Options) (*Bridge, error) {
	conn, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{
		HTTPClient: opts.HTTPClient,
	})
	if err != nil {
		return nil, fmt.Errorf("bridge: dial %s: %w: %w", url, host.ErrUnavailable, err)
	}

	timeout := opts.CallTimeout
	if timeout == 0 {
		timeout = DefaultCallTimeout
	}

	return &Bridge{conn: conn, callTimeout: timeout}, nil
}

// Close closes the underlying connection.
func (b *Bridge) Close() error {
	return b.conn.Close(websocket.StatusNormalClosure, "")
}

// AddCube implements host.Host.
func (b *Bridge) AddCube(ctx context.Context, size float64, location scene.Location) error {
	params := map[string]any{
		"size":     size,
		"location": [3]float64(location),
	}

	return b.call(ctx, "add_cube", params, nil)
}

// activeObjectResult is the addon's reply to active_object; null when the
// scene has no active object.
type activeObjectResult struct {
	Name string `json:"name"`
}

// ActiveObject implements host.Host.
func (b *Bridge) ActiveObject(ctx context.Context) (scene.Object, bool, error) {
	var result *activeObjectResult
	if err := b.call(ctx, "active_object", nil, &result); err != nil {
		return scene.Object{}, false, err
	}

	if result == nil {
		return scene.Object{}, false, nil
	}

	return scene.Object{Name: result.Name}, true, nil
}

// Rename implements host.Host.
func (b *Bridge) Rename(ctx context.Context, obj scene.Object, newName string) error {
	params := map[string]any{
		"from": obj.Name,
		"to":   newName,
	}

	return b.call(ctx, "rename", params, nil)
}

// call performs one request/response exchange. Transport failures wrap
// host.ErrUnavailable; addon-reported failures come back as plain errors with
// the addon's message. result may be nil when the caller ignores the payload.
func (b *Bridge) call(ctx context.Context, cmd string, params, result any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, b.callTimeout)
	defer cancel()

	b.nextID++
	req := request{ID: b.nextID, Cmd: cmd, Params: params}

	if err := wsjson.Write(ctx, b.conn, req); err != nil {
		return fmt.Errorf("bridge: %s: send: %w: %w", cmd, host.ErrUnavailable, err)
	}

	var resp response
	if err := wsjson.Read(ctx, b.conn, &resp); err != nil {
		return fmt.Errorf("bridge: %s: receive: %w: %w", cmd, host.ErrUnavailable, err)
	}

	if resp.ID != req.ID {
		return fmt.Errorf("bridge: %s: response id %d does not match request id %d", cmd, resp.ID, req.ID)
	}

	if !resp.OK {
		return fmt.Errorf("bridge: %s: %s", cmd, resp.Error)
	}

	if result != nil && len(resp.Result) > 0 {
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return fmt.Errorf("bridge: %s: decode result: %w", cmd, err)
		}
	}

	return nil
}
