package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/germanamz/blendy/pkg/create"
	"github.com/germanamz/blendy/pkg/host/bridge"
	"github.com/germanamz/blendy/pkg/scene"
)

// runCreate performs one cube creation directly against the Blender host,
// without going through an MCP transport.
func runCreate(configPath, blendyDirPath, name string, size float64, location string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loc, err := parseLocation(location)
	if err != nil {
		return err
	}

	req := scene.CreateCubeRequest{Name: name, Size: size, Location: loc}.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return err
	}

	cfg, err := loadServerConfig(configPath, blendyDirPath)
	if err != nil {
		return err
	}

	dialTimeout, err := cfg.DialTimeout()
	if err != nil {
		return err
	}

	callTimeout, err := cfg.CallTimeout()
	if err != nil {
		return err
	}

	dialCtx, dialCancel := context.WithTimeout(ctx, dialTimeout)
	defer dialCancel()

	result := create.Result{Outcome: create.OutcomeUnavailable}

	b, dialErr := bridge.Dial(dialCtx, cfg.Host.URL, bridge.Options{CallTimeout: callTimeout})
	if dialErr == nil {
		result = create.Cube(ctx, b, req)
		_ = b.Close()
	}

	fmt.Println(renderResult(result))

	if result.Outcome != create.OutcomeCreated && result.Outcome != create.OutcomeDegraded {
		os.Exit(1)
	}

	return nil
}

// renderResult styles a creation result for terminal output.
func renderResult(r create.Result) string {
	switch r.Outcome {
	case create.OutcomeCreated:
		return successStyle.Render(r.Message())
	case create.OutcomeDegraded:
		return warnStyle.Render(r.Message())
	default:
		return errorStyle.Render(r.Message())
	}
}
