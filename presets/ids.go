// Package presets holds the conventional action/condition id vocabulary
// and a handful of example trees built from it. This is a convention, not
// a protocol: embedders are free to use entirely different tag types with
// package bt.
package presets

// ActionID is the preset action tag type.
type ActionID int32

// Conventional preset action ids.
const (
	Idle ActionID = iota
	MoveToTarget
	Attack
	Flee
	Patrol
	WaitAtPosition
)

// ConditionID is the preset condition tag type.
type ConditionID int32

// Conventional preset condition ids.
const (
	EnemyVisible ConditionID = iota
	EnemyInRange
	HealthLow
	AtWaypoint
	HasTarget
)

// Blackboard keys used by the example trees in trees.go. These are not
// part of the bt/utility contract — they're this package's own convention
// for wiring considerations to blackboard inputs. The three consideration
// inputs are stored as Fixed values, normalized to [0,1], since
// utility.Consideration only ever reads its input key as Fixed;
// KeyCombatEnabled is a Bool read by a Guard.
const (
	KeyEnemyDistance int32 = iota // Fixed: normalized distance to nearest enemy, 0=adjacent, 1=out of range
	KeyAmmo                       // Fixed: normalized ammo fraction, 0=empty, 1=full
	KeyHealth                     // Fixed: normalized health, 0=dead, 1=full
	KeyCombatEnabled              // Bool: Guard flag gating the engage subtree
)
