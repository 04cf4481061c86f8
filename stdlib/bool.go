package stdlib

import (
	"strconv"

	"github.com/nodegraph/ssvm/core/graph"
)

// BoolObject is the boolean primitive. Grounded on
// original_source/src/stdlib/bool_type.rs.
type BoolObject bool

func (o BoolObject) Class() graph.Class       { return boolClass }
func (o BoolObject) Text() string             { return strconv.FormatBool(bool(o)) }
func (o BoolObject) Number() (float64, error) {
	if o {
		return 1, nil
	}
	return 0, nil
}
func (o BoolObject) Bool() bool                                       { return bool(o) }
func (o BoolObject) Field(graph.Object) (graph.Object, bool)          { return nil, false }
func (o BoolObject) SetField(graph.Object, graph.Object) bool         { return false }

func (o BoolObject) Equal(other graph.Object) bool {
	if !sameClass(o, other) {
		return false
	}
	ov, ok := other.(BoolObject)
	return ok && o == ov
}

func (o BoolObject) Compare(other graph.Object) (graph.Ordering, bool) {
	if !sameClass(o, other) {
		return graph.OrderEqual, false
	}
	ov, ok := other.(BoolObject)
	if !ok {
		return graph.OrderEqual, false
	}
	switch {
	case o == ov:
		return graph.OrderEqual, true
	case !bool(o) && bool(ov):
		return graph.OrderLess, true
	default:
		return graph.OrderGreater, true
	}
}

var boolClass graph.Class

func init() {
	boolClass = graph.NewClass("bool", func(text string) (graph.Object, error) {
		v, err := strconv.ParseBool(text)
		if err != nil {
			return nil, &CoercionError{Class: "bool", Want: "bool", Cause: err}
		}
		return BoolObject(v), nil
	}, NewBoolNode())
}

// BoolNode coerces an "any" input to a bool output.
type BoolNode struct{}

func NewBoolNode() *BoolNode { return &BoolNode{} }

func (n *BoolNode) Class() graph.Class            { return boolClass }
func (n *BoolNode) Variants() []string             { return []string{"from-object"} }
func (n *BoolNode) CurrentVariant() string         { return "from-object" }
func (n *BoolNode) AcceptsArbitraryVariants() bool { return false }
func (n *BoolNode) Inputs() []graph.InputSocket    { return []graph.InputSocket{{Class: anyClass}} }
func (n *BoolNode) Outputs() []graph.OutputSocket  { return []graph.OutputSocket{{Class: boolClass}} }
func (n *BoolNode) Branches() int                  { return 1 }
func (n *BoolNode) Clone() graph.Node              { return &BoolNode{} }

func (n *BoolNode) SetVariant(v string) error {
	if v != "from-object" && v != "" {
		return &VariantError{Class: "bool", Variant: v, Reason: `must be "from-object"`}
	}
	return nil
}

func (n *BoolNode) Execute(ctx graph.ExecutionContext) (int, error) {
	inputs, err := ctx.GetInputs()
	if err != nil {
		return 0, err
	}
	ctx.SetOutputs([]graph.Object{BoolObject(inputs[0].Bool())})
	return 0, nil
}
