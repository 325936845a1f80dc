// Package distfield computes distance fields over 2D rasters.
//
// # Overview
//
// A distance field stores, for every cell of a grid, an estimate of the
// distance to the nearest boundary between occupied and empty cells of an
// occupancy mask. Sampling such a field with bilinear filtering and a
// threshold gives anti-aliased, resolution independent masks, which is how
// text and vector shapes are rendered at arbitrary scale.
//
// # Quick Start
//
//	import "github.com/gogpu/distfield"
//
//	// Threshold an 8-bit buffer into an occupancy mask
//	m, err := distfield.MaskFromBytes(pix, width, height, 127)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Signed distance field
//	f, err := distfield.DeadReckoning(m, distfield.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Map to 8 bits, 4 cells on each side of the edge
//	img, err := f.Gray(4)
//
// # Algorithms
//
// Five independent transforms are provided:
//   - DeadReckoning: two-pass propagation of nearest points, signed output
//   - EikonalSweep: fixed number of sweeps solving |∇d| = 1
//   - LinearSweep: two or three pass nearest obstacle propagation, generic
//     over the pixel type
//   - BruteForce: exact search inside a bounded radius
//   - SignedWeightField: kernel weighted occupancy, not a metric distance
//
// Every transform returns a [Field] whose [Kind] tells the caller which
// contract the values follow.
//
// # Sign Convention
//
// Signed fields are negative inside (occupied cells) and positive outside.
// Magnitudes are in grid cells and are not normalized.
//
// # Nearest Points
//
// DeadReckoning and LinearSweep can report the nearest source cell of every
// cell. Both use the same encoding: a flat row-major index y*width+x.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package distfield

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
