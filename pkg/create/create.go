// Package create implements the cube creation operation: a single-shot,
// best-effort side effect against a Blender host that always describes its
// outcome as a value and never propagates a failure to the caller.
package create

import (
	"context"
	"errors"
	"fmt"

	"github.com/germanamz/blendy/pkg/host"
	"github.com/germanamz/blendy/pkg/scene"
)

// Outcome discriminates the possible results of a creation attempt.
type Outcome int

const (
	// OutcomeCreated means the cube exists in the scene under the
	// requested name.
	OutcomeCreated Outcome = iota
	// OutcomeDegraded means the creation call succeeded but the host
	// exposed no active object afterwards, so the cube could not be
	// renamed.
	OutcomeDegraded
	// OutcomeUnavailable means the Blender host could not be reached
	// before anything was created. Nothing exists in the scene.
	OutcomeUnavailable
	// OutcomeFailed means a host call failed mid-operation. A partially
	// created object may persist in the scene with its default name.
	OutcomeFailed
)

// unavailableMsg is the fixed message for an unreachable host.
const unavailableMsg = "Error: Blender is not available. This tool requires a running Blender host."

// degradedMsg is the fixed message for a creation without an active object.
const degradedMsg = "Cube created but could not get reference to object"

// Result describes one creation attempt. Outcome selects which of the other
// fields are meaningful: request details for Created, Err for Failed.
type Result struct {
	Outcome  Outcome
	Name     string
	Size     float64
	Location scene.Location
	Err      error
}

// Message renders the caller-facing status string for the result.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeCreated:
		return fmt.Sprintf("Successfully created cube '%s' with size %s at location %s",
			r.Name, scene.FmtFloat(r.Size), r.Location)
	case OutcomeDegraded:
		return degradedMsg
	case OutcomeUnavailable:
		return unavailableMsg
	default:
		return fmt.Sprintf("Error creating cube: %v", r.Err)
	}
}

// Cube creates a cube in the host's scene and renames the resulting active
// object to req.Name. The request must already be validated. The operation is
// non-transactional and not retried: a rename failure after creation leaves
// the cube in the scene under its default name, and the Result merely reports
// it. Cube never returns an error; every failure mode is folded into the
// Result.
func Cube(ctx context.Context, h host.Host, req scene.CreateCubeRequest) Result {
	if err := h.AddCube(ctx, req.Size, req.Location); err != nil {
		// Before the first side effect an unreachable host means
		// nothing was created; afterwards even a lost connection must
		// not claim that, since the cube may already exist.
		if errors.Is(err, host.ErrUnavailable) {
			return Result{Outcome: OutcomeUnavailable, Err: err}
		}

		return Result{Outcome: OutcomeFailed, Err: err}
	}

	obj, ok, err := h.ActiveObject(ctx)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: err}
	}

	if !ok {
		// Should not happen right after a creation, but the host owns
		// the scene graph.
		return Result{Outcome: OutcomeDegraded}
	}

	if err := h.Rename(ctx, obj, req.Name); err != nil {
		return Result{Outcome: OutcomeFailed, Err: err}
	}

	return Result{
		Outcome:  OutcomeCreated,
		Name:     req.Name,
		Size:     req.Size,
		Location: req.Location,
	}
}
