package create

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/germanamz/blendy/pkg/host"
	"github.com/germanamz/blendy/pkg/scene"
	"github.com/germanamz/blendy/pkg/tools/toolbox"
)

// ToolName is the MCP name of the cube creation tool.
const ToolName = "create_cube"

const toolDescription = "Create a cube mesh in the Blender scene. " +
	"The cube is added at the given location with the given edge length and renamed to the requested name."

// toolSchema mirrors scene.CreateCubeRequest's validation rules so MCP
// clients can pre-validate; the handler re-validates regardless.
const toolSchema = `{
  "type": "object",
  "properties": {
    "name": {
      "type": "string",
      "description": "Name for the cube object (1-63 chars, no / \\ : * ? \" < > |)",
      "minLength": 1,
      "maxLength": 63
    },
    "size": {
      "type": "number",
      "description": "Edge length of the cube (0 < size <= 1000, default 2.0)",
      "exclusiveMinimum": 0,
      "maximum": 1000,
      "default": 2.0
    },
    "location": {
      "type": "array",
      "description": "Location of the cube in 3D space as [x, y, z], each within ±10000 (default origin)",
      "items": {"type": "number", "minimum": -10000, "maximum": 10000},
      "minItems": 3,
      "maxItems": 3,
      "default": [0, 0, 0]
    }
  },
  "required": ["name"]
}`

// toolInput is the wire shape of the tool arguments.
type toolInput struct {
	Name     string      `json:"name"`
	Size     *float64    `json:"size,omitempty"`
	Location *[3]float64 `json:"location,omitempty"`
}

// Tool wraps the creation operation as a toolbox.Tool bound to the given
// host. Malformed arguments and validation failures are returned as handler
// errors (the MCP layer reports them as error results); once a request is
// valid the handler always succeeds and the returned text carries the
// operation's outcome.
func Tool(h host.Host) toolbox.Tool {
	return ObservedTool(h, nil)
}

// ObservedTool is Tool with a hook invoked after every completed operation,
// for callers that record outcomes (e.g. the server's history journal). A nil
// observe behaves like Tool. The observer only sees requests that passed
// validation.
func ObservedTool(h host.Host, observe func(scene.CreateCubeRequest, Result)) toolbox.Tool {
	return toolbox.Tool{
		Name:        ToolName,
		Description: toolDescription,
		InputSchema: json.RawMessage(toolSchema),
		Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
			req, err := parseRequest(input)
			if err != nil {
				return "", err
			}

			result := Cube(ctx, h, req)
			if observe != nil {
				observe(req, result)
			}

			return result.Message(), nil
		},
	}
}

// parseRequest decodes tool arguments into a validated creation request.
func parseRequest(input json.RawMessage) (scene.CreateCubeRequest, error) {
	var in toolInput
	if err := json.Unmarshal(input, &in); err != nil {
		return scene.CreateCubeRequest{}, fmt.Errorf("create: decode arguments: %w", err)
	}

	req := scene.CreateCubeRequest{Name: in.Name}
	if in.Size != nil {
		req.Size = *in.Size
	}
	if in.Location != nil {
		req.Location = scene.Location(*in.Location)
	}

	req = req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return scene.CreateCubeRequest{}, err
	}

	return req, nil
}
