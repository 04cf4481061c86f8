package stdlib

import "github.com/nodegraph/ssvm/core/graph"

// IfNode takes a single bool input and routes to branch 0 (true) or
// branch 1 (false). Grounded on original_source/src/stdlib/flow_nodes.rs's
// IfNode.
type IfNode struct{}

func NewIfNode() *IfNode { return &IfNode{} }

func (n *IfNode) Class() graph.Class            { return ifClass }
func (n *IfNode) Variants() []string             { return []string{"if"} }
func (n *IfNode) CurrentVariant() string         { return "if" }
func (n *IfNode) AcceptsArbitraryVariants() bool { return false }
func (n *IfNode) Inputs() []graph.InputSocket    { return []graph.InputSocket{{Class: boolClass}} }
func (n *IfNode) Outputs() []graph.OutputSocket  { return nil }
func (n *IfNode) Branches() int                  { return 2 }
func (n *IfNode) Clone() graph.Node              { return &IfNode{} }

func (n *IfNode) SetVariant(v string) error {
	if v != "if" && v != "" {
		return &VariantError{Class: "if", Variant: v, Reason: `must be "if"`}
	}
	return nil
}

func (n *IfNode) Execute(ctx graph.ExecutionContext) (int, error) {
	inputs, err := ctx.GetInputs()
	if err != nil {
		return 0, err
	}
	if inputs[0].Bool() {
		return 0, nil
	}
	return 1, nil
}

var ifClass graph.Class

func init() {
	ifClass = graph.NewClass("if", nil, NewIfNode())
}
