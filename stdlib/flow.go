package stdlib

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nodegraph/ssvm/core/graph"
)

// encodeSocketSchema renders a socket class-name list as a compact flow
// sequence, e.g. "[number, string]". This is the "<..._sockets_ron>"
// fragment embedded in start/end variant text; it is valid YAML flow-
// sequence syntax, so it round-trips through gopkg.in/yaml.v3 without a
// bespoke parser.
func encodeSocketSchema(names []string) string {
	if len(names) == 0 {
		return "[]"
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func decodeSocketSchema(s string) ([]string, error) {
	var names []string
	if err := yaml.Unmarshal([]byte(s), &names); err != nil {
		return nil, fmt.Errorf("stdlib: malformed socket schema %q: %w", s, err)
	}
	return names, nil
}

func resolveSockets(names []string) ([]graph.Class, error) {
	classes := make([]graph.Class, len(names))
	for i, name := range names {
		c, ok := ClassByName(name)
		if !ok {
			return nil, &VariantError{Class: name, Reason: "unknown socket class"}
		}
		classes[i] = c
	}
	return classes, nil
}

// StartNode is a program's or subroutine's entry point. It declares input
// sockets matching its supplied argument classes; the executor feeds call
// arguments to it as if they were ordinary inputs (GetInputs), and Execute
// forwards them unchanged to its outputs of the same classes. Grounded on
// original_source/src/stdlib/flow_nodes.rs's StartNode and
// original_source/src/program.rs's entry-point lookup, with the richer
// "start#<entry>#<sockets>" variant grammar per SPEC_FULL §6 (the entry-
// name component is absent from the draft flow_nodes.rs snapshot).
type StartNode struct {
	entry   string
	sockets []string
	classes []graph.Class
}

func NewStartNode() *StartNode { return &StartNode{} }

func (n *StartNode) Class() graph.Class { return startClass }

func (n *StartNode) Variants() []string { return []string{n.CurrentVariant()} }

func (n *StartNode) CurrentVariant() string {
	return fmt.Sprintf("start#%s#%s", n.entry, encodeSocketSchema(n.sockets))
}

func (n *StartNode) AcceptsArbitraryVariants() bool { return true }

func (n *StartNode) Inputs() []graph.InputSocket {
	inputs := make([]graph.InputSocket, len(n.classes))
	for i, c := range n.classes {
		inputs[i] = graph.InputSocket{Class: c}
	}
	return inputs
}

func (n *StartNode) Outputs() []graph.OutputSocket {
	outputs := make([]graph.OutputSocket, len(n.classes))
	for i, c := range n.classes {
		outputs[i] = graph.OutputSocket{Class: c}
	}
	return outputs
}

func (n *StartNode) Branches() int { return 1 }

func (n *StartNode) Clone() graph.Node {
	return &StartNode{entry: n.entry, sockets: append([]string(nil), n.sockets...), classes: append([]graph.Class(nil), n.classes...)}
}

// EntryName reports the declared entry point this start node answers to,
// used by Data.GetStartNode to locate it by name.
func (n *StartNode) EntryName() string { return n.entry }

func (n *StartNode) SetVariant(v string) error {
	const prefix = "start#"
	if !strings.HasPrefix(v, prefix) {
		return &VariantError{Class: "start", Variant: v, Reason: `must be "start#<entry>#<sockets>"`}
	}
	rest := v[len(prefix):]
	entry, sockRon, found := strings.Cut(rest, "#")
	if !found {
		return &VariantError{Class: "start", Variant: v, Reason: `must be "start#<entry>#<sockets>"`}
	}
	names, err := decodeSocketSchema(sockRon)
	if err != nil {
		return err
	}
	classes, err := resolveSockets(names)
	if err != nil {
		return err
	}
	n.entry, n.sockets, n.classes = entry, names, classes
	return nil
}

func (n *StartNode) Execute(ctx graph.ExecutionContext) (int, error) {
	inputs, err := ctx.GetInputs()
	if err != nil {
		return 0, err
	}
	ctx.SetOutputs(inputs)
	return 0, nil
}

var startClass graph.Class

func init() {
	startClass = graph.NewClass("start", nil, NewStartNode())
}

// EndNode is a program's or subroutine's exit point. It declares input
// sockets matching the subroutine's return values; Execute hands them to
// ExecutionContext.FinishSubroutine, which pops the call stack (or, if the
// stack is left empty, ends the program). Grounded on
// original_source/src/stdlib/flow_nodes.rs's EndNode.
type EndNode struct {
	sockets []string
	classes []graph.Class
}

func NewEndNode() *EndNode { return &EndNode{} }

func (n *EndNode) Class() graph.Class { return endClass }

func (n *EndNode) Variants() []string { return []string{n.CurrentVariant()} }

func (n *EndNode) CurrentVariant() string {
	return "end" + encodeSocketSchema(n.sockets)
}

func (n *EndNode) AcceptsArbitraryVariants() bool { return true }

func (n *EndNode) Inputs() []graph.InputSocket {
	inputs := make([]graph.InputSocket, len(n.classes))
	for i, c := range n.classes {
		inputs[i] = graph.InputSocket{Class: c}
	}
	return inputs
}

func (n *EndNode) Outputs() []graph.OutputSocket { return nil }

// Branches is nominally 1: an end node never follows a branch edge itself
// (FinishSubroutine hands control back to the caller, or ends the program),
// but the interface contract requires a positive branch count.
func (n *EndNode) Branches() int { return 1 }

func (n *EndNode) Clone() graph.Node {
	return &EndNode{sockets: append([]string(nil), n.sockets...), classes: append([]graph.Class(nil), n.classes...)}
}

func (n *EndNode) SetVariant(v string) error {
	const prefix = "end"
	if !strings.HasPrefix(v, prefix) {
		return &VariantError{Class: "end", Variant: v, Reason: `must be "end<sockets>"`}
	}
	names, err := decodeSocketSchema(v[len(prefix):])
	if err != nil {
		return err
	}
	classes, err := resolveSockets(names)
	if err != nil {
		return err
	}
	n.sockets, n.classes = names, classes
	return nil
}

func (n *EndNode) Execute(ctx graph.ExecutionContext) (int, error) {
	inputs, err := ctx.GetInputs()
	if err != nil {
		return 0, err
	}
	return 0, ctx.FinishSubroutine(inputs)
}

var endClass graph.Class

func init() {
	endClass = graph.NewClass("end", nil, NewEndNode())
}
