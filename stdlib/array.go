package stdlib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nodegraph/ssvm/core/graph"
	"github.com/nodegraph/ssvm/core/parse"
)

// ArrayObject is an ordered list of objects. Grounded on
// original_source/src/stdlib/array_type.rs, with field access (numeric
// index, synthetic "len") per SPEC_FULL 4.B/§12.
type ArrayObject []graph.Object

func (o ArrayObject) Class() graph.Class { return arrayClass }

func (o ArrayObject) Text() string {
	parts := make([]string, len(o))
	for i, v := range o {
		parts[i] = v.Text()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (o ArrayObject) Number() (float64, error) {
	return 0, &CoercionError{Class: "array", Want: "number"}
}

func (o ArrayObject) Bool() bool { return len(o) > 0 }

func (o ArrayObject) Field(key graph.Object) (graph.Object, bool) {
	if key.Class().Equal(stringClass) && key.Text() == "len" {
		return NumberObject(len(o)), true
	}
	if key.Class().Equal(numberClass) {
		n, err := key.Number()
		if err != nil {
			return nil, false
		}
		idx := int(n)
		if idx < 0 || idx >= len(o) {
			return nil, false
		}
		return o[idx], true
	}
	return nil, false
}

func (o ArrayObject) SetField(key, value graph.Object) bool {
	if !key.Class().Equal(numberClass) {
		return false
	}
	n, err := key.Number()
	if err != nil {
		return false
	}
	idx := int(n)
	if idx < 0 || idx >= len(o) {
		return false
	}
	o[idx] = value
	return true
}

func (o ArrayObject) Equal(other graph.Object) bool {
	if !sameClass(o, other) {
		return false
	}
	ov, ok := other.(ArrayObject)
	if !ok || len(o) != len(ov) {
		return false
	}
	for i := range o {
		if !o[i].Equal(ov[i]) {
			return false
		}
	}
	return true
}

// Compare is unsupported: arrays have no defined total order.
func (o ArrayObject) Compare(graph.Object) (graph.Ordering, bool) {
	return graph.OrderEqual, false
}

var arrayClass graph.Class

func init() {
	arrayClass = graph.NewClass("array", arrayFromText, NewArrayConstructorNode(0))
}

// arrayFromText parses a bracketed, comma-separated literal, leniently:
// strict JSON first, then jsonrepair as a fallback for near-miss input
// (trailing commas, single quotes), via core/parse.ParseStringAs's
// JSON-then-repair chain.
func arrayFromText(text string) (graph.Object, error) {
	raw, err := parse.ParseStringAs[[]interface{}](text)
	if err != nil {
		return nil, &CoercionError{Class: "array", Want: "array", Cause: err}
	}
	elems := make([]graph.Object, len(raw))
	for i, v := range raw {
		elems[i] = NewAny(fmt.Sprint(v))
	}
	return ArrayObject(elems), nil
}

// ArrayConstructorNode collects N inputs of class "any" into an ArrayObject
// output. Variant grammar: "array-<n>" (SPEC_FULL §6).
type ArrayConstructorNode struct {
	n int
}

func NewArrayConstructorNode(n int) *ArrayConstructorNode {
	return &ArrayConstructorNode{n: n}
}

func (a *ArrayConstructorNode) Class() graph.Class { return arrayClass }
func (a *ArrayConstructorNode) Variants() []string  { return []string{fmt.Sprintf("array-%d", a.n)} }
func (a *ArrayConstructorNode) CurrentVariant() string {
	return fmt.Sprintf("array-%d", a.n)
}
func (a *ArrayConstructorNode) AcceptsArbitraryVariants() bool { return true }

func (a *ArrayConstructorNode) Inputs() []graph.InputSocket {
	inputs := make([]graph.InputSocket, a.n)
	for i := range inputs {
		inputs[i] = graph.InputSocket{Class: anyClass}
	}
	return inputs
}

func (a *ArrayConstructorNode) Outputs() []graph.OutputSocket {
	return []graph.OutputSocket{{Class: arrayClass}}
}

func (a *ArrayConstructorNode) Branches() int { return 1 }
func (a *ArrayConstructorNode) Clone() graph.Node {
	return &ArrayConstructorNode{n: a.n}
}

func (a *ArrayConstructorNode) SetVariant(v string) error {
	const prefix = "array-"
	if !strings.HasPrefix(v, prefix) {
		return &VariantError{Class: "array", Variant: v, Reason: `must be "array-<n>"`}
	}
	n, err := strconv.Atoi(v[len(prefix):])
	if err != nil || n < 0 {
		return &VariantError{Class: "array", Variant: v, Reason: "n must be a non-negative integer"}
	}
	a.n = n
	return nil
}

func (a *ArrayConstructorNode) Execute(ctx graph.ExecutionContext) (int, error) {
	inputs, err := ctx.GetInputs()
	if err != nil {
		return 0, err
	}
	arr := make(ArrayObject, len(inputs))
	copy(arr, inputs)
	ctx.SetOutputs([]graph.Object{arr})
	return 0, nil
}
