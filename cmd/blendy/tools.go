package main

import (
	"context"
	"fmt"
	"os"

	"github.com/germanamz/blendy/pkg/tools/mcpclient"
)

// runTools lists the tools of an MCP server. The target is either a
// streamable HTTP endpoint (-url), a command to spawn, or — when neither is
// given — blendy's own serve command.
func runTools(url string, command []string) error {
	ctx := context.Background()

	client, err := connectTarget(ctx, url, command)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	tools, err := client.ListTools(ctx)
	if err != nil {
		return err
	}

	if len(tools) == 0 {
		fmt.Println(dimStyle.Render("no tools registered"))
		return nil
	}

	for _, t := range tools {
		fmt.Println(toolNameStyle.Render(t.Name))
		if t.Description != "" {
			fmt.Println("  " + toolDescStyle.Render(truncate(t.Description, 100)))
		}
	}

	return nil
}

func connectTarget(ctx context.Context, url string, command []string) (*mcpclient.MCPClient, error) {
	if url != "" {
		return mcpclient.NewStreamableHTTP(ctx, url)
	}

	if len(command) > 0 {
		return mcpclient.New(ctx, command[0], command[1:]...)
	}

	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve own executable: %w", err)
	}

	return mcpclient.New(ctx, exe, "serve")
}
