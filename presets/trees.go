package presets

import (
	"github.com/skyrocket-qy/decisiontree/bt"
	"github.com/skyrocket-qy/decisiontree/utility"
)

// PatrolEngageTree builds a Selector over condition-gated Sequences: engage
// the enemy if it's visible and in range, close the distance if it's only
// visible, otherwise patrol. Every branch bottoms out in an Action leaf, so
// the tree never runs out of fallbacks.
func PatrolEngageTree() bt.Node[ActionID, ConditionID] {
	return bt.Selector(
		bt.Sequence(
			bt.ConditionNode[ActionID, ConditionID](EnemyVisible),
			bt.ConditionNode[ActionID, ConditionID](EnemyInRange),
			bt.ActionNode[ActionID, ConditionID](Attack),
		),
		bt.Sequence(
			bt.ConditionNode[ActionID, ConditionID](EnemyVisible),
			bt.ActionNode[ActionID, ConditionID](MoveToTarget),
		),
		bt.ActionNode[ActionID, ConditionID](Patrol),
	)
}

// FleeOverrideTree wraps PatrolEngageTree's engage branch behind a
// KeyCombatEnabled Guard, and inserts a low-health flee override that takes
// priority over everything else. It demonstrates both Guard (gating the
// whole engage subtree on an embedder-controlled flag) and Inverter
// (patrol only when not already fleeing).
func FleeOverrideTree() bt.Node[ActionID, ConditionID] {
	engage := bt.Sequence(
		bt.ConditionNode[ActionID, ConditionID](EnemyVisible),
		bt.ConditionNode[ActionID, ConditionID](EnemyInRange),
		bt.ActionNode[ActionID, ConditionID](Attack),
	)

	return bt.Selector(
		bt.Sequence(
			bt.ConditionNode[ActionID, ConditionID](HealthLow),
			bt.ActionNode[ActionID, ConditionID](Flee),
		),
		bt.DecoratorNode(bt.Guard(KeyCombatEnabled), engage),
		bt.Sequence(
			bt.DecoratorNode(bt.Inverter(), bt.ConditionNode[ActionID, ConditionID](HealthLow)),
			bt.ActionNode[ActionID, ConditionID](Patrol),
		),
	)
}

// UtilityCombatTree builds a tree whose root is a UtilitySelector choosing
// between Attack, Flee and Patrol leaves. It returns both the node
// and the single utility.Reasoner it must be bound to: callers pass the
// reasoner's bt.Reasoner interface value straight through to bt.NewTree's
// reasoners slice, in tree order.
//
// Attack scores high when the enemy is close and ammo isn't empty; an empty
// magazine scores it to zero outright (geometric mean veto). Flee scores
// high as health drops. Patrol is the fallback, flat Weight with no
// considerations.
func UtilityCombatTree() (bt.Node[ActionID, ConditionID], *utility.Reasoner[ActionID]) {
	attack := utility.NewUtilityAction(
		Attack,
		[]utility.Consideration{
			utility.NewConsideration(KeyEnemyDistance, 0, 1, utility.InverseCurve(0.1), 1.0),
			utility.NewConsideration(KeyAmmo, 0, 1, utility.LinearCurve(1, 0), 1.0),
		},
		1.0,
		0.1,
	)

	flee := utility.NewUtilityAction(
		Flee,
		[]utility.Consideration{
			utility.NewConsideration(KeyHealth, 0, 1, utility.LinearCurve(-1, 1), 1.0),
		},
		1.0,
		0.15,
	)

	patrol := utility.NewUtilityAction[ActionID](
		Patrol,
		nil,
		0.3,
		0,
	)

	reasoner := utility.NewReasoner(
		[]utility.UtilityAction[ActionID]{attack, flee, patrol},
		utility.HighestScoreMethod(),
	)

	b := bt.NewBuilder[ActionID, ConditionID]()
	b.UtilitySelector().
		UtilityID(uint32(Attack)).Action(Attack).
		UtilityID(uint32(Flee)).Action(Flee).
		UtilityID(uint32(Patrol)).Action(Patrol).
		End()

	root, err := b.Build()
	if err != nil {
		// The construction above is fixed and known-balanced; a failure here
		// would mean this function itself was edited incorrectly.
		panic(err)
	}

	return root, reasoner
}
