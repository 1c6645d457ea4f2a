// Package utility implements the continuous-input scoring half of the
// decision engine: response curves, considerations, utility actions and
// the reasoner that selects among them. This is the only place floating
// point enters the system — the behavior tree core (package bt) stays
// integer-only and ecosystem-free.
package utility

// MathCap is the floating-point capability set response curves are
// evaluated against. It exists so the curve math can run on a freestanding
// math library in environments without a full standard math runtime; the
// default implementation (StdMath) simply forwards to package math.
type MathCap interface {
	Sqrt(x float64) float64
	Exp(x float64) float64
	Ln(x float64) float64
	Pow(base, exp float64) float64
	Abs(x float64) float64
	Min(a, b float64) float64
	Max(a, b float64) float64
}

// Clamp restricts x to [lo, hi] using m's Min/Max, so callers never need to
// reach past the capability set for this one ubiquitous operation.
func Clamp(m MathCap, x, lo, hi float64) float64 {
	return m.Max(lo, m.Min(hi, x))
}
