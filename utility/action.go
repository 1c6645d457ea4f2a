package utility

import "github.com/skyrocket-qy/decisiontree/bt"

// UtilityAction bundles an action id, the considerations that score it, a
// base weight, and a momentum bonus applied when it was the previous
// activation's winner. ID is the embedder's action tag type (typically the
// same type used for bt.Node's action payloads, but utility stays
// decoupled from bt.Node's generic parameters).
type UtilityAction[ID any] struct {
	ActionID       ID
	Considerations []Consideration
	Weight         float64
	Momentum       float64
}

// NewUtilityAction builds a UtilityAction.
func NewUtilityAction[ID any](actionID ID, considerations []Consideration, weight, momentum float64) UtilityAction[ID] {
	return UtilityAction[ID]{ActionID: actionID, Considerations: considerations, Weight: weight, Momentum: momentum}
}

// Score computes the action's utility against bb. With no considerations,
// the score is simply Weight. Otherwise every consideration is evaluated,
// their scores are combined by geometric mean (so any single consideration
// scoring 0 vetoes the whole action), and the result is scaled by Weight.
// If isCurrent is true (this action won the previous activation), Momentum
// is added after scaling.
func (a UtilityAction[ID]) Score(m MathCap, bb *bt.Blackboard, isCurrent bool) float64 {
	var base float64

	if len(a.Considerations) == 0 {
		base = a.Weight
	} else {
		product := 1.0
		for _, c := range a.Considerations {
			product *= c.Evaluate(m, bb)
		}

		geoMean := m.Pow(product, 1/float64(len(a.Considerations)))
		base = geoMean * a.Weight
	}

	if isCurrent {
		base += a.Momentum
	}

	return base
}
