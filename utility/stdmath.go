package utility

import "math"

// StdMath implements MathCap over the standard library's math package. It
// is the capability set NewReasoner installs, and the one a Reasoner falls
// back to when its Math field is nil.
type StdMath struct{}

// Sqrt returns math.Sqrt(x).
func (StdMath) Sqrt(x float64) float64 { return math.Sqrt(x) }

// Exp returns math.Exp(x).
func (StdMath) Exp(x float64) float64 { return math.Exp(x) }

// Ln returns math.Log(x).
func (StdMath) Ln(x float64) float64 { return math.Log(x) }

// Pow returns math.Pow(base, exp).
func (StdMath) Pow(base, exp float64) float64 { return math.Pow(base, exp) }

// Abs returns math.Abs(x).
func (StdMath) Abs(x float64) float64 { return math.Abs(x) }

// Min returns math.Min(a, b).
func (StdMath) Min(a, b float64) float64 { return math.Min(a, b) }

// Max returns math.Max(a, b).
func (StdMath) Max(a, b float64) float64 { return math.Max(a, b) }
