// Command tickbench builds one of the preset trees and ticks it headlessly
// for a fixed number of frames against a seeded RNG, printing a trace of
// the chosen action each tick. It exists to exercise the engine's tick loop
// and the presets package outside of any game loop or rendering surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/skyrocket-qy/decisiontree/bt"
	"github.com/skyrocket-qy/decisiontree/presets"
)

// mathRand adapts math/rand.Rand to bt.RNG.
type mathRand struct {
	r *rand.Rand
}

func (m mathRand) NextU32() uint32 {
	return m.r.Uint32()
}

func main() {
	tree := flag.String("tree", "combat", "which preset tree to run: patrol, flee, combat")
	ticks := flag.Int("ticks", 20, "number of ticks to run")
	seed := flag.Int64("seed", 1, "RNG seed")
	flag.Parse()

	rng := mathRand{r: rand.New(rand.NewSource(*seed))}

	switch *tree {
	case "patrol":
		runPatrol(*ticks)
	case "flee":
		runFlee(*ticks)
	case "combat":
		runCombat(*ticks, rng)
	default:
		log.Fatalf("unknown tree %q: want patrol, flee or combat", *tree)
	}
}

func runPatrol(ticks int) {
	root := presets.PatrolEngageTree()

	tree, err := bt.NewTree[presets.ActionID, presets.ConditionID](root, bt.DefaultTreeConfig(), nil)
	if err != nil {
		log.Fatalf("build tree: %v", err)
	}

	tree.Blackboard().SetBool(presets.KeyCombatEnabled, true)

	ah := bt.ActionFunc[presets.ActionID](printAction)
	ch := bt.ConditionFunc[presets.ConditionID](func(c presets.ConditionID, ctx *bt.Context) bool {
		return c == presets.EnemyVisible
	})

	for i := 0; i < ticks; i++ {
		status, err := tree.Tick(ah, ch, nil)
		if err != nil {
			log.Fatalf("tick %d: %v", i, err)
		}

		fmt.Printf("tick %d: %s\n", i, status)
	}
}

func runFlee(ticks int) {
	root := presets.FleeOverrideTree()

	tree, err := bt.NewTree[presets.ActionID, presets.ConditionID](root, bt.DefaultTreeConfig(), nil)
	if err != nil {
		log.Fatalf("build tree: %v", err)
	}

	tree.Blackboard().SetBool(presets.KeyCombatEnabled, true)

	ah := bt.ActionFunc[presets.ActionID](printAction)
	ch := bt.ConditionFunc[presets.ConditionID](func(c presets.ConditionID, ctx *bt.Context) bool {
		return c == presets.HealthLow && ctx.Tick > 5 && ctx.Tick < 10
	})

	for i := 0; i < ticks; i++ {
		status, err := tree.Tick(ah, ch, nil)
		if err != nil {
			log.Fatalf("tick %d: %v", i, err)
		}

		fmt.Printf("tick %d: %s\n", i, status)
	}
}

func runCombat(ticks int, rng bt.RNG) {
	root, reasoner := presets.UtilityCombatTree()

	tree, err := bt.NewTree[presets.ActionID, presets.ConditionID](root, bt.DefaultTreeConfig(), []bt.Reasoner{reasoner})
	if err != nil {
		log.Fatalf("build tree: %v", err)
	}

	tree.Blackboard().SetFixed(presets.KeyEnemyDistance, bt.NewFixed(0.4))
	tree.Blackboard().SetFixed(presets.KeyAmmo, bt.NewFixed(0.8))
	tree.Blackboard().SetFixed(presets.KeyHealth, bt.NewFixed(0.9))

	ah := bt.ActionFunc[presets.ActionID](printAction)
	ch := bt.ConditionFunc[presets.ConditionID](func(presets.ConditionID, *bt.Context) bool { return false })

	for i := 0; i < ticks; i++ {
		status, err := tree.TickWith(1, rng, ah, ch, nil)
		if err != nil {
			log.Fatalf("tick %d: %v", i, err)
		}

		fmt.Printf("tick %d: %s\n", i, status)
	}
}

func printAction(a presets.ActionID, ctx *bt.Context) bt.Status {
	fmt.Printf("  action: %v\n", a)

	return bt.Success
}
