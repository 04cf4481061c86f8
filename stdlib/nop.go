package stdlib

import "github.com/nodegraph/ssvm/core/graph"

var nopClass graph.Class

func init() {
	nopClass = graph.NewClass("nop", nil, NewNopNode())
}

// NopNode does nothing and always takes branch 0. Grounded on
// original_source/src/stdlib/nop_node.rs.
type NopNode struct{}

func NewNopNode() *NopNode { return &NopNode{} }

func (n *NopNode) Class() graph.Class               { return nopClass }
func (n *NopNode) Variants() []string                { return []string{"nop"} }
func (n *NopNode) CurrentVariant() string            { return "nop" }
func (n *NopNode) AcceptsArbitraryVariants() bool    { return false }
func (n *NopNode) Inputs() []graph.InputSocket       { return nil }
func (n *NopNode) Outputs() []graph.OutputSocket     { return nil }
func (n *NopNode) Branches() int                     { return 1 }
func (n *NopNode) Clone() graph.Node                 { return &NopNode{} }
func (n *NopNode) Execute(graph.ExecutionContext) (int, error) { return 0, nil }

func (n *NopNode) SetVariant(v string) error {
	if v != "nop" && v != "" {
		return &VariantError{Class: "nop", Variant: v, Reason: `must be "nop"`}
	}
	return nil
}
