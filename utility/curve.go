package utility

// CurveKind tags which response-curve formula a Curve evaluates.
type CurveKind uint8

const (
	CurveLinear CurveKind = iota
	CurvePolynomial
	CurveLogistic
	CurveStep
	CurveInverse
	CurveConstant
	CurveCustomPoints
)

// Point is one (x, y) sample of a CustomPoints curve.
type Point struct {
	X, Y float64
}

// Curve is a pure function from a normalized input x (expected in [0,1])
// to a score y in [0,1]. Every variant's output is clamped to [0,1] after
// evaluation, regardless of what the raw formula produces.
type Curve struct {
	Kind CurveKind

	// Linear: slope*x + offset.
	Slope, Offset float64
	// Polynomial: max(0, x+offset)^exponent. Reuses Offset.
	Exponent float64
	// Logistic: 1 / (1 + exp(-steepness*(x-midpoint))).
	Midpoint, Steepness float64
	// Step: x >= threshold ? 1 : 0.
	Threshold float64
	// Constant: always v.
	Value float64
	// CustomPoints: piecewise-linear through Points, sorted by X;
	// outside the range clamps to the nearest endpoint's Y.
	Points []Point
}

// LinearCurve builds a Linear{slope, offset} curve.
func LinearCurve(slope, offset float64) Curve {
	return Curve{Kind: CurveLinear, Slope: slope, Offset: offset}
}

// PolynomialCurve builds a Polynomial{exponent, offset} curve.
func PolynomialCurve(exponent, offset float64) Curve {
	return Curve{Kind: CurvePolynomial, Exponent: exponent, Offset: offset}
}

// LogisticCurve builds a Logistic{midpoint, steepness} curve.
func LogisticCurve(midpoint, steepness float64) Curve {
	return Curve{Kind: CurveLogistic, Midpoint: midpoint, Steepness: steepness}
}

// StepCurve builds a Step{threshold} curve.
func StepCurve(threshold float64) Curve {
	return Curve{Kind: CurveStep, Threshold: threshold}
}

// InverseCurve builds an Inverse{offset} curve: 1/(x+offset).
func InverseCurve(offset float64) Curve {
	return Curve{Kind: CurveInverse, Offset: offset}
}

// ConstantCurve builds a Constant(v) curve.
func ConstantCurve(v float64) Curve {
	return Curve{Kind: CurveConstant, Value: v}
}

// CustomPointsCurve builds a piecewise-linear curve through pts, which must
// be sorted by X.
func CustomPointsCurve(pts []Point) Curve {
	return Curve{Kind: CurveCustomPoints, Points: pts}
}

// Evaluate computes the curve's value at x using m for the transcendental
// formulas, clamping the result to [0,1].
func (c Curve) Evaluate(m MathCap, x float64) float64 {
	var y float64

	switch c.Kind {
	case CurveLinear:
		y = c.Slope*x + c.Offset
	case CurvePolynomial:
		base := m.Max(0, x+c.Offset)
		y = m.Pow(base, c.Exponent)
	case CurveLogistic:
		y = 1 / (1 + m.Exp(-c.Steepness*(x-c.Midpoint)))
	case CurveStep:
		if x >= c.Threshold {
			y = 1
		} else {
			y = 0
		}
	case CurveInverse:
		y = 1 / (x + c.Offset)
	case CurveConstant:
		y = c.Value
	case CurveCustomPoints:
		y = evalCustomPoints(c.Points, x)
	default:
		y = 0
	}

	return Clamp(m, y, 0, 1)
}

// evalCustomPoints linearly interpolates y at x across a sorted point set,
// clamping to the nearest endpoint's y outside the covered range.
func evalCustomPoints(pts []Point, x float64) float64 {
	if len(pts) == 0 {
		return 0
	}

	if x <= pts[0].X {
		return pts[0].Y
	}

	last := len(pts) - 1
	if x >= pts[last].X {
		return pts[last].Y
	}

	for i := 0; i < last; i++ {
		a, b := pts[i], pts[i+1]
		if x >= a.X && x <= b.X {
			if b.X == a.X {
				return a.Y
			}

			t := (x - a.X) / (b.X - a.X)

			return a.Y + t*(b.Y-a.Y)
		}
	}

	return pts[last].Y
}
