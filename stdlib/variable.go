package stdlib

import "github.com/nodegraph/ssvm/core/graph"

// VariableGetNode reads a named program-local variable from the execution
// context onto a single "any" output. Grounded on
// original_source/src/stdlib/flow_nodes.rs's VariableGetNode.
type VariableGetNode struct {
	name string
}

func NewVariableGetNode(name string) *VariableGetNode {
	return &VariableGetNode{name: name}
}

func (n *VariableGetNode) Class() graph.Class { return variableGetClass }

func (n *VariableGetNode) Variants() []string { return []string{n.CurrentVariant()} }
func (n *VariableGetNode) CurrentVariant() string { return "variable:" + n.name }
func (n *VariableGetNode) AcceptsArbitraryVariants() bool { return true }
func (n *VariableGetNode) Inputs() []graph.InputSocket { return nil }
func (n *VariableGetNode) Outputs() []graph.OutputSocket {
	return []graph.OutputSocket{{Class: anyClass}}
}
func (n *VariableGetNode) Branches() int { return 1 }
func (n *VariableGetNode) Clone() graph.Node { return &VariableGetNode{name: n.name} }

func (n *VariableGetNode) SetVariant(v string) error {
	const prefix = "variable:"
	if len(v) <= len(prefix) || v[:len(prefix)] != prefix {
		return &VariantError{Class: "variable_get", Variant: v, Reason: `must be "variable:<name>"`}
	}
	n.name = v[len(prefix):]
	return nil
}

func (n *VariableGetNode) Execute(ctx graph.ExecutionContext) (int, error) {
	v, ok := ctx.GetVariable(n.name)
	if !ok {
		return 0, &VariantError{Class: "variable_get", Variant: n.name, Reason: "variable not set"}
	}
	ctx.SetOutputs([]graph.Object{v})
	return 0, nil
}

var variableGetClass graph.Class

func init() {
	variableGetClass = graph.NewClass("variable_get", nil, NewVariableGetNode(""))
}

// VariableSetNode writes its single "any" input into a named program-local
// variable. Grounded on
// original_source/src/stdlib/flow_nodes.rs's VariableSetNode.
type VariableSetNode struct {
	name string
}

func NewVariableSetNode(name string) *VariableSetNode {
	return &VariableSetNode{name: name}
}

func (n *VariableSetNode) Class() graph.Class { return variableSetClass }

func (n *VariableSetNode) Variants() []string { return []string{n.CurrentVariant()} }
func (n *VariableSetNode) CurrentVariant() string { return "variable:" + n.name }
func (n *VariableSetNode) AcceptsArbitraryVariants() bool { return true }
func (n *VariableSetNode) Inputs() []graph.InputSocket {
	return []graph.InputSocket{{Class: anyClass}}
}
func (n *VariableSetNode) Outputs() []graph.OutputSocket { return nil }
func (n *VariableSetNode) Branches() int { return 1 }
func (n *VariableSetNode) Clone() graph.Node { return &VariableSetNode{name: n.name} }

func (n *VariableSetNode) SetVariant(v string) error {
	const prefix = "variable:"
	if len(v) <= len(prefix) || v[:len(prefix)] != prefix {
		return &VariantError{Class: "variable_set", Variant: v, Reason: `must be "variable:<name>"`}
	}
	n.name = v[len(prefix):]
	return nil
}

func (n *VariableSetNode) Execute(ctx graph.ExecutionContext) (int, error) {
	inputs, err := ctx.GetInputs()
	if err != nil {
		return 0, err
	}
	ctx.SetVariable(n.name, inputs[0])
	return 0, nil
}

var variableSetClass graph.Class

func init() {
	variableSetClass = graph.NewClass("variable_set", nil, NewVariableSetNode(""))
}
