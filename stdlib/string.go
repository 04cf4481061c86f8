package stdlib

import (
	"strconv"

	"github.com/nodegraph/ssvm/core/graph"
)

// StringObject is the text primitive. Grounded on
// original_source/src/stdlib/string_type.rs.
type StringObject string

func (o StringObject) Class() graph.Class       { return stringClass }
func (o StringObject) Text() string             { return string(o) }
func (o StringObject) Number() (float64, error) {
	v, err := strconv.ParseFloat(string(o), 64)
	if err != nil {
		return 0, &CoercionError{Class: "string", Want: "number", Cause: err}
	}
	return v, nil
}
func (o StringObject) Bool() bool { return string(o) != "" }
func (o StringObject) Field(graph.Object) (graph.Object, bool)  { return nil, false }
func (o StringObject) SetField(graph.Object, graph.Object) bool { return false }

func (o StringObject) Equal(other graph.Object) bool {
	if !sameClass(o, other) {
		return false
	}
	ov, ok := other.(StringObject)
	return ok && o == ov
}

func (o StringObject) Compare(other graph.Object) (graph.Ordering, bool) {
	if !sameClass(o, other) {
		return graph.OrderEqual, false
	}
	ov, ok := other.(StringObject)
	if !ok {
		return graph.OrderEqual, false
	}
	switch {
	case o < ov:
		return graph.OrderLess, true
	case o > ov:
		return graph.OrderGreater, true
	default:
		return graph.OrderEqual, true
	}
}

var stringClass graph.Class

func init() {
	stringClass = graph.NewClass("string", func(text string) (graph.Object, error) {
		return StringObject(text), nil
	}, NewStringNode())
}

// StringNode coerces an "any" input to a string output via its text
// rendering.
type StringNode struct{}

func NewStringNode() *StringNode { return &StringNode{} }

func (n *StringNode) Class() graph.Class            { return stringClass }
func (n *StringNode) Variants() []string             { return []string{"from-object"} }
func (n *StringNode) CurrentVariant() string         { return "from-object" }
func (n *StringNode) AcceptsArbitraryVariants() bool { return false }
func (n *StringNode) Inputs() []graph.InputSocket    { return []graph.InputSocket{{Class: anyClass}} }
func (n *StringNode) Outputs() []graph.OutputSocket  { return []graph.OutputSocket{{Class: stringClass}} }
func (n *StringNode) Branches() int                  { return 1 }
func (n *StringNode) Clone() graph.Node              { return &StringNode{} }

func (n *StringNode) SetVariant(v string) error {
	if v != "from-object" && v != "" {
		return &VariantError{Class: "string", Variant: v, Reason: `must be "from-object"`}
	}
	return nil
}

func (n *StringNode) Execute(ctx graph.ExecutionContext) (int, error) {
	inputs, err := ctx.GetInputs()
	if err != nil {
		return 0, err
	}
	ctx.SetOutputs([]graph.Object{StringObject(inputs[0].Text())})
	return 0, nil
}
