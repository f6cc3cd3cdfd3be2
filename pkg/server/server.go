// Package server wires the pieces of a blendy deployment together: it turns a
// Config into a connected host bridge, the registered toolbox, and an MCP
// server ready to serve over stdio or HTTP.
package server

import (
	"context"
	"io"
	"net/http"

	"github.com/germanamz/blendy/pkg/blendydir"
	"github.com/germanamz/blendy/pkg/create"
	"github.com/germanamz/blendy/pkg/host/bridge"
	"github.com/germanamz/blendy/pkg/scene"
	"github.com/germanamz/blendy/pkg/tools/mcpserver"
	"github.com/germanamz/blendy/pkg/tools/toolbox"
)

// Defaults for the MCP server identity.
const (
	DefaultName    = "blendy"
	DefaultVersion = "0.1.0"
)

// Server is a configured blendy MCP server.
type Server struct {
	cfg  Config
	conn *hostConn
	tb   *toolbox.ToolBox
	mcp  *mcpserver.MCPServer
}

// New builds a Server from the given config. The Blender host is not dialed
// here; the connection is established lazily on the first tool call.
func New(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dialTimeout, err := cfg.DialTimeout()
	if err != nil {
		return nil, err
	}

	callTimeout, err := cfg.CallTimeout()
	if err != nil {
		return nil, err
	}

	conn := newHostConn(func(ctx context.Context) (*bridge.Bridge, error) {
		dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
		defer cancel()

		return bridge.Dial(dialCtx, cfg.Host.URL, bridge.Options{CallTimeout: callTimeout})
	})

	tb := toolbox.New()
	tb.Register(create.ObservedTool(conn, historyObserver(cfg)))
	tb = tb.Filter(cfg.Tools)

	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}

	srv := mcpserver.New(name, version)
	srv.Register(tb.Tools()...)

	return &Server{
		cfg:  cfg,
		conn: conn,
		tb:   tb,
		mcp:  srv,
	}, nil
}

// historyObserver returns the journal hook for the config, or nil when
// history is disabled.
func historyObserver(cfg Config) func(scene.CreateCubeRequest, create.Result) {
	if !cfg.History.Enabled {
		return nil
	}

	dir := blendydir.New(cfg.BlendyDir)

	return newJournal(dir.HistoryPath()).record
}

// ToolBox returns the server's registered tools.
func (s *Server) ToolBox() *toolbox.ToolBox { return s.tb }

// Serve runs the MCP server over the given byte streams (stdio transport).
// It blocks until ctx is cancelled or the transport closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return s.mcp.Serve(ctx, in, out)
}

// Handler returns the streamable HTTP handler for mounting on an http.Server.
func (s *Server) Handler() http.Handler {
	return s.mcp.Handler()
}

// Close releases the bridge connection, if one was established.
func (s *Server) Close() error {
	return s.conn.Close()
}
