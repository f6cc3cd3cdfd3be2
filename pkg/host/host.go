// Package host abstracts the Blender scripting surface. The real surface is
// only reachable through a running Blender process; pkg/host/bridge provides
// the production implementation and tests substitute stubs.
package host

import (
	"context"
	"errors"

	"github.com/germanamz/blendy/pkg/scene"
)

// ErrUnavailable reports that the Blender host cannot be reached at all, as
// opposed to a failure of an individual scripting call.
var ErrUnavailable = errors.New("host: blender unavailable")

// Host is the slice of Blender's scripting API this tool relies on.
type Host interface {
	// AddCube adds a cube primitive to the scene with the given edge length
	// and location. The new object becomes the scene's active object.
	AddCube(ctx context.Context, size float64, location scene.Location) error

	// ActiveObject returns the host's currently active object, or ok=false
	// when the scene has none.
	ActiveObject(ctx context.Context) (obj scene.Object, ok bool, err error)

	// Rename renames an existing scene object.
	Rename(ctx context.Context, obj scene.Object, newName string) error
}
