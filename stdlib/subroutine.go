package stdlib

import (
	"strings"

	"github.com/nodegraph/ssvm/core/graph"
)

// SubroutineObject is a first-class reference to a callable region of a
// program: an entry node and the exit node it must eventually reach. Text
// form "subroutine:<entry>:<exit>", where <entry>/<exit> are absolute node
// ids (themselves containing "@", never ":", so a two-way split on ":"
// after the "subroutine" tag is unambiguous). Grounded on
// original_source/src/stdlib/subroutine_type.rs.
type SubroutineObject struct {
	Entry graph.AbsoluteNodeId
	Exit  graph.AbsoluteNodeId
}

func (o SubroutineObject) Class() graph.Class { return subroutineClass }

func (o SubroutineObject) Text() string {
	return "subroutine:" + o.Entry.String() + ":" + o.Exit.String()
}

func (o SubroutineObject) Number() (float64, error) {
	return 0, &CoercionError{Class: "subroutine", Want: "number"}
}

func (o SubroutineObject) Bool() bool { return true }

func (o SubroutineObject) Field(graph.Object) (graph.Object, bool)  { return nil, false }
func (o SubroutineObject) SetField(graph.Object, graph.Object) bool { return false }

func (o SubroutineObject) Equal(other graph.Object) bool {
	if !sameClass(o, other) {
		return false
	}
	ov, ok := other.(SubroutineObject)
	return ok && o.Entry.Equal(ov.Entry) && o.Exit.Equal(ov.Exit)
}

// Compare is unsupported: subroutine references have no total order.
func (o SubroutineObject) Compare(graph.Object) (graph.Ordering, bool) {
	return graph.OrderEqual, false
}

var subroutineClass graph.Class

func init() {
	subroutineClass = graph.NewClass("subroutine", subroutineFromText)
}

func subroutineFromText(text string) (graph.Object, error) {
	const prefix = "subroutine:"
	if !strings.HasPrefix(text, prefix) {
		return nil, &CoercionError{Class: "subroutine", Want: "subroutine"}
	}
	rest := text[len(prefix):]
	entryText, exitText, found := strings.Cut(rest, ":")
	if !found {
		return nil, &CoercionError{Class: "subroutine", Want: "subroutine"}
	}
	entry, err := graph.ParseAbsoluteNodeId(entryText)
	if err != nil {
		return nil, &CoercionError{Class: "subroutine", Want: "subroutine", Cause: err}
	}
	exit, err := graph.ParseAbsoluteNodeId(exitText)
	if err != nil {
		return nil, &CoercionError{Class: "subroutine", Want: "subroutine", Cause: err}
	}
	return SubroutineObject{Entry: entry, Exit: exit}, nil
}

// sentinelPrefix tags a pseudo-class that exists only to carry an absolute
// node id through Node.Inputs()[0].Class.Name, read back by the executor's
// per-step effective-input-socket substitution (SPEC_FULL 4.G "Step"). It
// has no FromText and no prototype nodes: nothing ever constructs a real
// Object of this class, so it is built directly rather than via NewClass.
const sentinelPrefix = "subroutine_input@"

// subroutineInputSentinel tags a fixed call node's sole declared input
// socket with the entry node it targets.
func subroutineInputSentinel(entry graph.AbsoluteNodeId) graph.Class {
	return graph.Class{Name: sentinelPrefix + entry.String()}
}

// SentinelEntry reports the absolute node id tagged by a
// subroutine_input@<id> sentinel class, if c is one.
func SentinelEntry(c graph.Class) (graph.AbsoluteNodeId, bool) {
	if !strings.HasPrefix(c.Name, sentinelPrefix) {
		return graph.AbsoluteNodeId{}, false
	}
	id, err := graph.ParseAbsoluteNodeId(c.Name[len(sentinelPrefix):])
	if err != nil {
		return graph.AbsoluteNodeId{}, false
	}
	return id, true
}

// suppliedIOClass is the universal socket class a "supplied" subroutine
// call exposes for its actual call arguments/return values, since the
// concrete signature isn't known until the callee arrives at runtime
// (SPEC_FULL 4.H). One aggregate ArrayObject stands in for the whole
// argument/return list on each such socket.
var suppliedIOClass graph.Class

func init() {
	suppliedIOClass = graph.NewClass("subroutine_io", nil)
}

// SubroutineCallNode invokes a subroutine, either baked into the node
// ("subroutine:<entry>:<exit>" variant, whose sole declared input is a
// subroutine_input@<entry> sentinel that the executor expands into the
// entry node's real argument sockets) or supplied dynamically via an input
// of class "subroutine" ("supplied" variant, which also carries a
// subroutine_io-class socket for the packed argument/return values).
// Grounded on original_source/src/stdlib/subroutine.rs.
type SubroutineCallNode struct {
	supplied bool
	entry    graph.AbsoluteNodeId
	exit     graph.AbsoluteNodeId
}

func NewSubroutineCallNode() *SubroutineCallNode {
	return &SubroutineCallNode{supplied: true}
}

func (n *SubroutineCallNode) Class() graph.Class { return subroutineCallClass }

func (n *SubroutineCallNode) Variants() []string {
	return []string{"supplied", n.CurrentVariant()}
}

func (n *SubroutineCallNode) CurrentVariant() string {
	if n.supplied {
		return "supplied"
	}
	return "subroutine:" + n.entry.String() + ":" + n.exit.String()
}

func (n *SubroutineCallNode) AcceptsArbitraryVariants() bool { return true }

func (n *SubroutineCallNode) Inputs() []graph.InputSocket {
	if n.supplied {
		return []graph.InputSocket{{Class: subroutineClass}, {Class: suppliedIOClass}}
	}
	return []graph.InputSocket{{Class: subroutineInputSentinel(n.entry)}}
}

func (n *SubroutineCallNode) Outputs() []graph.OutputSocket {
	if n.supplied {
		return []graph.OutputSocket{{Class: suppliedIOClass}}
	}
	return nil
}

func (n *SubroutineCallNode) Branches() int { return 1 }

func (n *SubroutineCallNode) Clone() graph.Node {
	return &SubroutineCallNode{supplied: n.supplied, entry: n.entry, exit: n.exit}
}

// Entry reports the statically bound callee entry point, valid only when
// CurrentVariant is not "supplied".
func (n *SubroutineCallNode) Entry() (graph.AbsoluteNodeId, bool) {
	return n.entry, !n.supplied
}

func (n *SubroutineCallNode) SetVariant(v string) error {
	if v == "supplied" || v == "" {
		n.supplied, n.entry, n.exit = true, graph.AbsoluteNodeId{}, graph.AbsoluteNodeId{}
		return nil
	}
	const prefix = "subroutine:"
	if !strings.HasPrefix(v, prefix) {
		return &VariantError{Class: "subroutine", Variant: v, Reason: `must be "supplied" or "subroutine:<entry>:<exit>"`}
	}
	rest := v[len(prefix):]
	entryText, exitText, found := strings.Cut(rest, ":")
	if !found {
		return &VariantError{Class: "subroutine", Variant: v, Reason: `must be "subroutine:<entry>:<exit>"`}
	}
	entry, err := graph.ParseAbsoluteNodeId(entryText)
	if err != nil {
		return &VariantError{Class: "subroutine", Variant: v, Reason: err.Error()}
	}
	exit, err := graph.ParseAbsoluteNodeId(exitText)
	if err != nil {
		return &VariantError{Class: "subroutine", Variant: v, Reason: err.Error()}
	}
	n.supplied, n.entry, n.exit = false, entry, exit
	return nil
}

// Execute reads its effective inputs (which, for the fixed variant, the
// executor has already expanded from the subroutine_input@<entry> sentinel
// into the entry node's real argument values) and invokes the call.
func (n *SubroutineCallNode) Execute(ctx graph.ExecutionContext) (int, error) {
	inputs, err := ctx.GetInputs()
	if err != nil {
		return 0, err
	}
	if n.supplied {
		if len(inputs) < 2 {
			return 0, &CoercionError{Class: "subroutine", Want: "subroutine"}
		}
		sub, ok := inputs[0].(SubroutineObject)
		if !ok {
			return 0, &CoercionError{Class: "subroutine", Want: "subroutine"}
		}
		packed, ok := inputs[1].(ArrayObject)
		if !ok {
			return 0, &CoercionError{Class: "subroutine_io", Want: "array"}
		}
		return 0, ctx.ExecuteSubroutine(sub.Entry, packed)
	}
	return 0, ctx.ExecuteSubroutine(n.entry, inputs)
}

var subroutineCallClass graph.Class

func init() {
	subroutineCallClass = graph.NewClass("subroutine_call", nil, NewSubroutineCallNode())
}
