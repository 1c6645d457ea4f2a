package utility

import (
	"reflect"

	"github.com/skyrocket-qy/decisiontree/bt"
)

// Consideration is one scored factor in a UtilityAction: it reads a Fixed
// blackboard value, normalizes it against [InputMin, InputMax], evaluates a
// response Curve, and scales the result by Weight.
type Consideration struct {
	InputKey int32
	InputMin float64
	InputMax float64
	Curve    Curve
	Weight   float64
}

// NewConsideration builds a Consideration.
func NewConsideration(inputKey int32, inputMin, inputMax float64, curve Curve, weight float64) Consideration {
	return Consideration{InputKey: inputKey, InputMin: inputMin, InputMax: inputMax, Curve: curve, Weight: weight}
}

// Evaluate scores the consideration against bb. A missing input key scores
// 0 — not an error.
func (c Consideration) Evaluate(m MathCap, bb *bt.Blackboard) float64 {
	raw, ok := bb.Fixed(c.InputKey)
	if !ok {
		return 0
	}

	span := c.InputMax - c.InputMin
	if span == 0 {
		return 0
	}

	u := Clamp(m, (raw.Float()-c.InputMin)/span, 0, 1)

	return c.Curve.Evaluate(m, u) * c.Weight
}

// Equal reports whether c and other are structurally identical.
func (c Consideration) Equal(other Consideration) bool {
	return reflect.DeepEqual(c, other)
}
