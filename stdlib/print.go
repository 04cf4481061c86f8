package stdlib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nodegraph/ssvm/core/graph"
)

// PrintNode writes its inputs' text forms, space-joined, to stdout.
// Variant grammar: "print" | "println" | "<kind>:<arity>" where kind is
// "print" or "println" and arity is the input count (bare forms imply
// arity 1). Grounded on original_source/src/stdlib/flow_nodes.rs's
// PrintNode, generalized to the arity-suffixed form per SPEC_FULL §6.
type PrintNode struct {
	ln    bool
	arity int
}

func NewPrintNode() *PrintNode { return &PrintNode{ln: false, arity: 1} }

func (n *PrintNode) Class() graph.Class { return printClass }

func (n *PrintNode) Variants() []string {
	return []string{"print", "println", n.CurrentVariant()}
}

func (n *PrintNode) CurrentVariant() string {
	kind := "print"
	if n.ln {
		kind = "println"
	}
	if n.arity == 1 {
		return kind
	}
	return fmt.Sprintf("%s:%d", kind, n.arity)
}

func (n *PrintNode) AcceptsArbitraryVariants() bool { return true }

func (n *PrintNode) Inputs() []graph.InputSocket {
	inputs := make([]graph.InputSocket, n.arity)
	for i := range inputs {
		inputs[i] = graph.InputSocket{Class: anyClass}
	}
	return inputs
}

func (n *PrintNode) Outputs() []graph.OutputSocket { return nil }
func (n *PrintNode) Branches() int                 { return 1 }
func (n *PrintNode) Clone() graph.Node             { return &PrintNode{ln: n.ln, arity: n.arity} }

func (n *PrintNode) SetVariant(v string) error {
	switch v {
	case "print", "":
		n.ln, n.arity = false, 1
		return nil
	case "println":
		n.ln, n.arity = true, 1
		return nil
	}
	kind, arityStr, found := strings.Cut(v, ":")
	if !found || (kind != "print" && kind != "println") {
		return &VariantError{Class: "print", Variant: v, Reason: `must be "print", "println", or "<kind>:<arity>"`}
	}
	arity, err := strconv.Atoi(arityStr)
	if err != nil || arity < 0 {
		return &VariantError{Class: "print", Variant: v, Reason: "arity must be a non-negative integer"}
	}
	n.ln = kind == "println"
	n.arity = arity
	return nil
}

func (n *PrintNode) Execute(ctx graph.ExecutionContext) (int, error) {
	inputs, err := ctx.GetInputs()
	if err != nil {
		return 0, err
	}
	parts := make([]string, len(inputs))
	for i, v := range inputs {
		parts[i] = v.Text()
	}
	out := strings.Join(parts, " ")
	if n.ln {
		fmt.Println(out)
	} else {
		fmt.Print(out)
	}
	return 0, nil
}

var printClass graph.Class

func init() {
	printClass = graph.NewClass("print", nil, NewPrintNode())
}
