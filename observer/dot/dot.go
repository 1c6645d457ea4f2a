// Package dot renders a built bt.Node tree to Graphviz DOT, optionally
// highlighting a recorded trace path.
package dot

import (
	"fmt"

	"github.com/awalterschulze/gographviz"

	"github.com/skyrocket-qy/decisiontree/bt"
)

const graphName = "BehaviorTree"

// highlightColor is the fill color applied to nodes present in a trace path.
const highlightColor = "lightgoldenrod1"

// Export renders the tree rooted at n as a DOT graph string. trace, if
// non-nil, is the list of preorder node ids visited during some tick (see
// record.Recorder.TracePath); nodes on the path are filled with
// highlightColor. label formats a leaf's Action or Condition payload for
// display.
func Export[A comparable, C comparable](n bt.Node[A, C], trace []int, label func(bt.Node[A, C]) string) (string, error) {
	gv := gographviz.NewGraph()

	if err := gv.SetName(graphName); err != nil {
		return "", fmt.Errorf("dot: set graph name: %w", err)
	}

	if err := gv.SetDir(true); err != nil {
		return "", fmt.Errorf("dot: set directed: %w", err)
	}

	onPath := make(map[int]bool, len(trace))
	for _, id := range trace {
		onPath[id] = true
	}

	if err := addSubtree(gv, n, 0, label, onPath); err != nil {
		return "", err
	}

	return gv.String(), nil
}

func addSubtree[A comparable, C comparable](gv *gographviz.Graph, n bt.Node[A, C], id int, label func(bt.Node[A, C]) string, onPath map[int]bool) error {
	name := nodeName(id)

	attrs := map[string]string{
		"label": fmt.Sprintf("\"%s\"", nodeLabel(n, label)),
		"shape": shapeFor(n.Kind),
	}

	if onPath[id] {
		attrs["style"] = "filled"
		attrs["fillcolor"] = highlightColor
	}

	if err := gv.AddNode(graphName, name, attrs); err != nil {
		return fmt.Errorf("dot: add node %d: %w", id, err)
	}

	childBase := id + 1

	for _, child := range n.Children {
		if err := addSubtree(gv, child, childBase, label, onPath); err != nil {
			return err
		}

		if err := gv.AddEdge(name, nodeName(childBase), true, nil); err != nil {
			return fmt.Errorf("dot: add edge %d->%d: %w", id, childBase, err)
		}

		childBase += child.Size()
	}

	return nil
}

func nodeName(id int) string {
	return fmt.Sprintf("n%d", id)
}

func nodeLabel[A comparable, C comparable](n bt.Node[A, C], label func(bt.Node[A, C]) string) string {
	switch n.Kind {
	case bt.KindAction, bt.KindCondition:
		if label != nil {
			return label(n)
		}

		return n.Kind.String()
	case bt.KindDecorator:
		return fmt.Sprintf("%s(%s)", n.Kind.String(), decoratorLabel(n.Decorator))
	case bt.KindWait:
		return fmt.Sprintf("Wait(%d)", n.WaitTicks)
	default:
		return n.Kind.String()
	}
}

func decoratorLabel(d bt.Decorator) string {
	switch d.Kind {
	case bt.DecoratorRepeat:
		return fmt.Sprintf("Repeat %d", d.N)
	case bt.DecoratorRetry:
		return fmt.Sprintf("Retry %d", d.N)
	case bt.DecoratorCooldown:
		return fmt.Sprintf("Cooldown %d", d.N)
	case bt.DecoratorTimeout:
		return fmt.Sprintf("Timeout %d", d.N)
	case bt.DecoratorGuard:
		return fmt.Sprintf("Guard key=%d", d.GuardKey)
	case bt.DecoratorInverter:
		return "Inverter"
	case bt.DecoratorUntilSuccess:
		return "UntilSuccess"
	case bt.DecoratorUntilFail:
		return "UntilFail"
	case bt.DecoratorForceSuccess:
		return "ForceSuccess"
	case bt.DecoratorForceFailure:
		return "ForceFailure"
	default:
		return ""
	}
}

func shapeFor(k bt.NodeKind) string {
	switch k {
	case bt.KindAction:
		return "box"
	case bt.KindCondition:
		return "diamond"
	default:
		return "ellipse"
	}
}
