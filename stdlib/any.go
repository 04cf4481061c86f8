// Package stdlib implements the standard library of built-in classes
// required by SPEC_FULL 4.B/4.D/4.H/§12: the universal any container, the
// primitive bool/number/string/array/dict objects, and the control-flow
// nodes (nop, if, print, start, end, subroutine, variable get/set).
package stdlib

import (
	"strconv"

	"github.com/nodegraph/ssvm/core/graph"
)

// sameClass implements the "classes differ => incomparable/unequal" rule
// shared by every concrete Object's Equal/Compare (SPEC_FULL 4.B).
func sameClass(a, b graph.Object) bool {
	return a.Class().Equal(b.Class())
}

// AnyObject is the universal container: it wraps a raw string and is
// convertible to any class with a from-text parser (SPEC_FULL 4.B
// cast-to-class).
type AnyObject string

func NewAny(text string) AnyObject { return AnyObject(text) }

func (o AnyObject) Class() graph.Class        { return anyClass }
func (o AnyObject) Text() string              { return string(o) }
func (o AnyObject) Number() (float64, error)  { return strconv.ParseFloat(string(o), 64) }
func (o AnyObject) Bool() bool                { return string(o) != "" }
func (o AnyObject) Field(graph.Object) (graph.Object, bool)    { return nil, false }
func (o AnyObject) SetField(graph.Object, graph.Object) bool   { return false }

func (o AnyObject) Equal(other graph.Object) bool {
	if !sameClass(o, other) {
		return false
	}
	ov, ok := other.(AnyObject)
	return ok && o == ov
}

func (o AnyObject) Compare(other graph.Object) (graph.Ordering, bool) {
	if !sameClass(o, other) {
		return graph.OrderEqual, false
	}
	ov, ok := other.(AnyObject)
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

// Cast converts this any-typed value to class target via target's from-text
// parser, applied to this object's text rendering (SPEC_FULL 4.B).
func (o AnyObject) Cast(target graph.Class) (graph.Object, error) {
	if target.FromText == nil {
		return nil, &CastError{Target: target.Name}
	}
	return target.FromText(o.Text())
}

var anyClass graph.Class

func init() {
	anyClass = graph.NewClass("any", func(text string) (graph.Object, error) {
		return NewAny(text), nil
	})
}
