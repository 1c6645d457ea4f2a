package utility

import (
	"sort"

	"github.com/skyrocket-qy/decisiontree/bt"
)

// maxUint32 is the float64 denominator used to turn an RNG draw into a
// fraction in [0,1).
const maxUint32 = 1 << 32

// SelectionMethodKind tags which algorithm Reasoner.Select uses to turn
// scores into a winning index.
type SelectionMethodKind uint8

const (
	// HighestScore picks the argmax, ties broken by the smaller index.
	HighestScore SelectionMethodKind = iota
	// WeightedRandom draws an index with probability proportional to its
	// score.
	WeightedRandom
	// TopN draws uniformly among the K highest-scoring indices.
	TopN
)

// SelectionMethod configures Reasoner.Select's algorithm.
type SelectionMethod struct {
	Kind SelectionMethodKind
	// K is the pool size for TopN; ignored otherwise.
	K int
}

// HighestScoreMethod is the HighestScore selection method.
func HighestScoreMethod() SelectionMethod { return SelectionMethod{Kind: HighestScore} }

// WeightedRandomMethod is the WeightedRandom selection method.
func WeightedRandomMethod() SelectionMethod { return SelectionMethod{Kind: WeightedRandom} }

// TopNMethod is the TopN(k) selection method.
func TopNMethod(k int) SelectionMethod { return SelectionMethod{Kind: TopN, K: k} }

// Reasoner scores a fixed list of UtilityActions against a blackboard and
// selects a winner. It implements bt.Reasoner, so a UtilitySelector node
// can delegate branch choice to it directly. A Reasoner remembers its
// previous winner internally (across activations, i.e. across many
// Select calls over the tree's lifetime) so that UtilityAction.Momentum
// can suppress thrashing between near-equal candidates.
type Reasoner[ID any] struct {
	Actions []UtilityAction[ID]
	Method  SelectionMethod
	Math    MathCap

	previous    int
	hasPrevious bool
}

// NewReasoner builds a Reasoner with the standard library math capability
// set. Use the Math field to substitute a freestanding implementation.
func NewReasoner[ID any](actions []UtilityAction[ID], method SelectionMethod) *Reasoner[ID] {
	return &Reasoner[ID]{Actions: actions, Method: method, Math: StdMath{}}
}

func (r *Reasoner[ID]) mathCap() MathCap {
	if r.Math == nil {
		return StdMath{}
	}

	return r.Math
}

// computeScores scores every action against bb without mutating momentum
// memory, so both Select and ScoreAll can share it.
func (r *Reasoner[ID]) computeScores(bb *bt.Blackboard) []float64 {
	m := r.mathCap()
	scores := make([]float64, len(r.Actions))

	for i, a := range r.Actions {
		isCurrent := r.hasPrevious && r.previous == i
		scores[i] = a.Score(m, bb, isCurrent)
	}

	return scores
}

// Select scores every action against bb and returns the winning index,
// recording it as the new "previous selection" for future momentum.
func (r *Reasoner[ID]) Select(bb *bt.Blackboard, rng bt.RNG) int {
	scores := r.computeScores(bb)

	var winner int

	switch r.Method.Kind {
	case HighestScore:
		winner = argmaxFirst(scores)
	case WeightedRandom:
		winner = weightedRandomPick(scores, rng)
	case TopN:
		winner = topNPick(scores, r.Method.K, rng)
	default:
		winner = argmaxFirst(scores)
	}

	r.previous = winner
	r.hasPrevious = true

	return winner
}

// ScoreAll returns every action's score against bb, sorted descending, for
// debugging and observer reporting. It does not mutate momentum memory.
func (r *Reasoner[ID]) ScoreAll(bb *bt.Blackboard) []bt.ScoredAction {
	scores := r.computeScores(bb)
	out := make([]bt.ScoredAction, len(scores))

	for i, s := range scores {
		out[i] = bt.ScoredAction{Index: i, Score: s}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// argmaxFirst returns the index of the largest value, ties broken by the
// smaller index. Returns 0 for an empty slice.
func argmaxFirst(scores []float64) int {
	if len(scores) == 0 {
		return 0
	}

	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	return best
}

// weightedRandomPick draws an index with probability proportional to its
// score. Scores summing to <= 0 return 0 without consuming rng.
func weightedRandomPick(scores []float64, rng bt.RNG) int {
	if len(scores) == 0 {
		return 0
	}

	if rng == nil {
		panic("utility: WeightedRandom selection requires an RNG but none was supplied")
	}

	total := 0.0
	for _, s := range scores {
		total += s
	}

	if total <= 0 {
		return 0
	}

	frac := float64(rng.NextU32()) / maxUint32
	target := frac * total

	acc := 0.0
	for i, s := range scores {
		acc += s
		if acc > target {
			return i
		}
	}

	return len(scores) - 1
}

// topNPick sorts indices by score descending, keeps the first min(k, len)
// and uniformly draws one.
func topNPick(scores []float64, k int, rng bt.RNG) int {
	if len(scores) == 0 {
		return 0
	}

	if rng == nil {
		panic("utility: TopN selection requires an RNG but none was supplied")
	}

	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})

	n := k
	if n > len(idx) {
		n = len(idx)
	}

	if n <= 0 {
		return idx[0]
	}

	pick := int(rng.NextU32() % uint32(n))

	return idx[pick]
}
