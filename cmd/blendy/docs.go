package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// docsMarkdown is the built-in documentation shown by "blendy docs".
const docsMarkdown = `# blendy

blendy exposes Blender object creation as typed MCP tools. An addon running
inside Blender listens on a WebSocket port; blendy validates tool input,
forwards the scripting calls over that bridge, and reports the outcome as
plain text.

## Quick start

1. Install the Blender addon and note its listen address (default
   ` + "`ws://localhost:7520/mcp`" + `).
2. Run ` + "`blendy init`" + ` to create a ` + "`.blendy/`" + ` directory with a config file.
3. Point your MCP client at ` + "`blendy serve`" + `, or run ` + "`blendy serve --http :8712`" + `
   for streamable HTTP.

## Tools

### create_cube

Creates a cube mesh and renames it.

| Field    | Rules                                              |
|----------|----------------------------------------------------|
| name     | 1-63 chars, no ` + "`/ \\ : * ? \" < > |`" + `                  |
| size     | greater than 0, at most 1000, default 2.0          |
| location | [x, y, z], each within ±10000, default [0, 0, 0]   |

The tool never fails the MCP call for host problems: an unreachable Blender
or a failed operator is reported in the result text. Only invalid input is
returned as a tool error.

## Other commands

- ` + "`blendy create -name Box -size 4 -location 1,2,3`" + ` — one-shot creation
- ` + "`blendy tools`" + ` — list the tools of an MCP server
- ` + "`blendy console`" + ` — interactive console against the Blender host
`

// runDocs renders the documentation with glamour. Falls back to the raw
// markdown if the renderer is unavailable.
func runDocs() error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(docsMarkdown)
		return nil
	}

	out, err := r.Render(docsMarkdown)
	if err != nil {
		fmt.Print(docsMarkdown)
		return nil
	}

	fmt.Println(strings.TrimRight(out, "\n"))

	return nil
}
