// Package scene holds the value objects exchanged with a Blender host: the
// creation request with its validation rules, locations in 3D space, and
// references to scene objects.
package scene

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxNameLen is Blender's object name limit.
	MaxNameLen = 63
	// MaxSize is the accepted upper bound for a primitive's edge length.
	MaxSize = 1000.0
	// MaxCoordinate bounds each location axis to ±MaxCoordinate.
	MaxCoordinate = 10000.0

	// DefaultSize is used when a request leaves Size unset.
	DefaultSize = 2.0
)

// reservedNameChars are rejected in object names.
const reservedNameChars = `/\:*?"<>|`

// Location is a point in the host's 3D space.
type Location [3]float64

// X returns the first coordinate.
func (l Location) X() float64 { return l[0] }

// Y returns the second coordinate.
func (l Location) Y() float64 { return l[1] }

// Z returns the third coordinate.
func (l Location) Z() float64 { return l[2] }

// String renders the location as "(x, y, z)" with minimal float formatting.
func (l Location) String() string {
	return fmt.Sprintf("(%s, %s, %s)", FmtFloat(l[0]), FmtFloat(l[1]), FmtFloat(l[2]))
}

// Object is a reference to an object in the host's scene graph. The host
// identifies objects by name.
type Object struct {
	Name string
}

// CreateCubeRequest describes one cube to create. A request is validated once
// and never mutated afterwards.
type CreateCubeRequest struct {
	Name     string
	Size     float64
	Location Location
}

// ApplyDefaults returns a copy with unset fields filled in: a zero Size
// becomes DefaultSize. The zero Location already is the default (origin).
func (r CreateCubeRequest) ApplyDefaults() CreateCubeRequest {
	if r.Size == 0 {
		r.Size = DefaultSize
	}

	return r
}

// Validate checks every rule of the request and returns an error naming the
// first violated one, or nil when the request is acceptable.
func (r CreateCubeRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("scene: name must not be empty")
	}

	if utf8.RuneCountInString(r.Name) > MaxNameLen {
		return fmt.Errorf("scene: name exceeds %d characters", MaxNameLen)
	}

	if i := strings.IndexAny(r.Name, reservedNameChars); i >= 0 {
		return fmt.Errorf("scene: name contains reserved character %q (none of %s allowed)",
			r.Name[i], reservedNameChars)
	}

	if r.Size <= 0 {
		return fmt.Errorf("scene: size must be greater than 0")
	}

	if r.Size > MaxSize {
		return fmt.Errorf("scene: size exceeds %v", MaxSize)
	}

	for i, axis := range [3]string{"x", "y", "z"} {
		if c := r.Location[i]; c < -MaxCoordinate || c > MaxCoordinate {
			return fmt.Errorf("scene: location %s=%s outside ±%v", axis, FmtFloat(c), MaxCoordinate)
		}
	}

	return nil
}

// FmtFloat renders a float without trailing zeros ("2" not "2.000000"), for
// the user-facing messages that quote request fields.
func FmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
