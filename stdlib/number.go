package stdlib

import (
	"strconv"

	"github.com/nodegraph/ssvm/core/graph"
)

// NumberObject is the double-precision floating-point primitive. Grounded
// on original_source/src/stdlib/number_type.rs.
type NumberObject float64

func (o NumberObject) Class() graph.Class       { return numberClass }
func (o NumberObject) Text() string             { return strconv.FormatFloat(float64(o), 'g', -1, 64) }
func (o NumberObject) Number() (float64, error) { return float64(o), nil }
func (o NumberObject) Bool() bool               { return float64(o) != 0 }
func (o NumberObject) Field(graph.Object) (graph.Object, bool)  { return nil, false }
func (o NumberObject) SetField(graph.Object, graph.Object) bool { return false }

func (o NumberObject) Equal(other graph.Object) bool {
	if !sameClass(o, other) {
		return false
	}
	ov, ok := other.(NumberObject)
	return ok && o == ov
}

func (o NumberObject) Compare(other graph.Object) (graph.Ordering, bool) {
	if !sameClass(o, other) {
		return graph.OrderEqual, false
	}
	ov, ok := other.(NumberObject)
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

var numberClass graph.Class

func init() {
	numberClass = graph.NewClass("number", func(text string) (graph.Object, error) {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, &CoercionError{Class: "number", Want: "number", Cause: err}
		}
		return NumberObject(v), nil
	}, NewNumberNode())
}

// NumberNode coerces an "any" input to a number output.
type NumberNode struct{}

func NewNumberNode() *NumberNode { return &NumberNode{} }

func (n *NumberNode) Class() graph.Class            { return numberClass }
func (n *NumberNode) Variants() []string             { return []string{"from-object"} }
func (n *NumberNode) CurrentVariant() string         { return "from-object" }
func (n *NumberNode) AcceptsArbitraryVariants() bool { return false }
func (n *NumberNode) Inputs() []graph.InputSocket    { return []graph.InputSocket{{Class: anyClass}} }
func (n *NumberNode) Outputs() []graph.OutputSocket  { return []graph.OutputSocket{{Class: numberClass}} }
func (n *NumberNode) Branches() int                  { return 1 }
func (n *NumberNode) Clone() graph.Node              { return &NumberNode{} }

func (n *NumberNode) SetVariant(v string) error {
	if v != "from-object" && v != "" {
		return &VariantError{Class: "number", Variant: v, Reason: `must be "from-object"`}
	}
	return nil
}

func (n *NumberNode) Execute(ctx graph.ExecutionContext) (int, error) {
	inputs, err := ctx.GetInputs()
	if err != nil {
		return 0, err
	}
	v, err := inputs[0].Number()
	if err != nil {
		return 0, &CoercionError{Class: "number", Want: "number", Cause: err}
	}
	ctx.SetOutputs([]graph.Object{NumberObject(v)})
	return 0, nil
}
