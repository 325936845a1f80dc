package distfield

import (
	"fmt"
	"strings"
)

// Algorithm selects a transform for Generate.
type Algorithm int

const (
	// AlgorithmSweep is SignedLinearSweep. It is the default.
	AlgorithmSweep Algorithm = iota

	// AlgorithmBrute is SignedBruteForce.
	AlgorithmBrute

	// AlgorithmDeadReckoning is DeadReckoning.
	AlgorithmDeadReckoning

	// AlgorithmSWF is SignedWeightField.
	AlgorithmSWF

	// AlgorithmEikonal is Eikonal.
	AlgorithmEikonal
)

// algorithmNames maps each algorithm to its short name.
var algorithmNames = [...]string{
	AlgorithmSweep:         "sweep",
	AlgorithmBrute:         "brute",
	AlgorithmDeadReckoning: "dr",
	AlgorithmSWF:           "swf",
	AlgorithmEikonal:       "eikonal",
}

// algorithmDescriptions holds one line per algorithm for help output.
var algorithmDescriptions = [...]string{
	AlgorithmSweep:         "Linear Sweep (default)",
	AlgorithmBrute:         "Brute Force search within the radius",
	AlgorithmDeadReckoning: "Dead Reckoning",
	AlgorithmSWF:           "Signed Weight Field",
	AlgorithmEikonal:       "Eikonal Sweep",
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmSweep, AlgorithmBrute, AlgorithmDeadReckoning, AlgorithmSWF, AlgorithmEikonal}
}

// String returns the short name used on the command line.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Description returns a human readable name.
func (a Algorithm) Description() string {
	if a < 0 || int(a) >= len(algorithmDescriptions) {
		return a.String()
	}
	return algorithmDescriptions[a]
}

// ParseAlgorithm returns the algorithm with the given short name.
// Matching is case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return AlgorithmSweep, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Generate runs the selected algorithm and returns a field ready for
// Quantize: signed for every algorithm except AlgorithmSWF, which returns
// weights.
func Generate(m *Mask, algo Algorithm, opts Options) (*Field, error) {
	switch algo {
	case AlgorithmSweep:
		return SignedLinearSweep(m, opts)
	case AlgorithmBrute:
		return SignedBruteForce(m, opts)
	case AlgorithmDeadReckoning:
		return DeadReckoning(m, opts)
	case AlgorithmSWF:
		return SignedWeightField(m, opts)
	case AlgorithmEikonal:
		return Eikonal(m)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
}
