package distfield

import "math"

// Options holds the parameters shared by the transforms.
// Each transform reads only the fields it documents and ignores the rest.
type Options struct {
	// Radius bounds the search of BruteForce and the kernel of
	// SignedWeightField, in cells. Cost grows with Radius².
	// Default: 4
	Radius int

	// ExtraPass enables the third, full-neighborhood pass of LinearSweep.
	// Without it only the four grid corners are patched up.
	// Default: true
	ExtraPass bool

	// Normalize makes LinearSweep return Euclidean distances. When false it
	// returns squared distances. Cells that never saw an obstacle hold
	// math.MaxFloat32 in both modes, so for them the normalized value is not
	// the square root of the squared one.
	// Default: true
	Normalize bool

	// BorderObstacles makes LinearSweep treat the area just outside the grid
	// as occupied.
	// Default: true
	BorderObstacles bool

	// Threshold is used by byte adapters: a pixel is occupied when
	// pixel > Threshold.
	// Default: 0
	Threshold byte

	// Background is the initial distance of non-boundary cells in
	// DeadReckoning. Cells that never find a boundary keep it. Zero selects
	// the default.
	// Default: math.MaxFloat32
	Background float32

	// MinWeight drops SignedWeightField kernel entries whose normalized
	// weight is below it.
	// Default: 0
	MinWeight float32

	// Workers is the number of goroutines used by BruteForce and
	// SignedWeightField. 0 means GOMAXPROCS, 1 runs on the calling goroutine.
	// Default: 0
	Workers int

	// Closest, when non-nil, receives the flat index of the nearest source
	// cell of every cell (DeadReckoning, LinearSweep). It must be
	// width*height long.
	Closest []int
}

// DefaultOptions returns the default transform options.
func DefaultOptions() Options {
	return Options{
		Radius:          4,
		ExtraPass:       true,
		Normalize:       true,
		BorderObstacles: true,
		Background:      math.MaxFloat32,
	}
}

// Validate checks the options and returns an *OptionsError if one is invalid.
// Every field is checked, including those a given transform ignores. The
// transforms check only the fields they read.
func (o *Options) Validate() error {
	return o.check(fieldRadius | fieldWorkers | fieldMinWeight | fieldBackground)
}

// Fields checked by Options.check.
const (
	fieldRadius = 1 << iota
	fieldWorkers
	fieldMinWeight
	fieldBackground
)

// check validates the fields selected by the field* bits.
func (o *Options) check(fields int) error {
	if fields&fieldRadius != 0 && o.Radius < 1 {
		return &OptionsError{Field: "Radius", Reason: "must be at least 1", Err: ErrInvalidRadius}
	}
	if fields&fieldWorkers != 0 && o.Workers < 0 {
		return &OptionsError{Field: "Workers", Reason: "must not be negative"}
	}
	if fields&fieldMinWeight != 0 && !(o.MinWeight >= 0 && o.MinWeight < 1) {
		return &OptionsError{Field: "MinWeight", Reason: "must be in [0, 1)"}
	}
	if fields&fieldBackground != 0 && !(o.Background >= 0) {
		return &OptionsError{Field: "Background", Reason: "must be a non-negative number"}
	}
	return nil
}

// OptionsError represents an option validation error.
type OptionsError struct {
	Field  string
	Reason string
	Err    error // sentinel for the field, if any
}

func (e *OptionsError) Error() string {
	return "distfield: invalid options." + e.Field + ": " + e.Reason
}

// Unwrap returns the sentinel error of the field, if any.
func (e *OptionsError) Unwrap() error {
	return e.Err
}

// background returns the Dead Reckoning sentinel.
func (o *Options) background() float32 {
	if o.Background == 0 {
		return math.MaxFloat32
	}
	return o.Background
}

// closestBuffer validates opts.Closest against g.
func (o *Options) closestBuffer(g Grid) ([]int, error) {
	if o.Closest == nil {
		return nil, nil
	}
	if len(o.Closest) != g.Len() {
		return nil, ErrClosestSize
	}
	return o.Closest, nil
}
