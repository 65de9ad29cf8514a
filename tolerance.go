package draft

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerances shared by every comparison in the package. All modules agree on
// what "equal", "parallel" and "on the curve" mean by going through these
// values.
const (
	// Epsilon is the tolerance for coordinate equality, parallelism and
	// on-curve tests.
	Epsilon = 1e-10

	// GeometricEpsilon is the looser tolerance used for degeneracy checks on
	// computed geometry, such as nearly parallel fillet inputs or filtering
	// computed intersection points against an arc.
	GeometricEpsilon = 1e-6

	// KeyPrecision is the number of decimal places kept by the Key methods.
	KeyPrecision = 10

	// ExtendProbeLength is how far past each endpoint [Extend] searches for
	// a boundary.
	ExtendProbeLength = 10_000.0
)

const twoPi = 2 * math.Pi

func approxEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

func approxZero(a float64) bool {
	return math.Abs(a) < Epsilon
}

// roundKey rounds f for use in map keys. Negative zero is folded into zero so
// that equal points produce equal keys.
func roundKey(f float64) float64 {
	r := scalar.Round(f, KeyPrecision)
	if r == 0 {
		return 0
	}
	return r
}

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(th float64) float64 {
	th = math.Mod(th, twoPi)
	if th < 0 {
		th += twoPi
	}
	if th >= twoPi {
		// math.Mod of a tiny negative value plus 2π can round up to 2π.
		th = 0
	}
	return th
}

func clamp01(t float64) float64 {
	return min(max(t, 0), 1)
}

func inUnitRange(t float64) bool {
	return t >= 0 && t <= 1
}
