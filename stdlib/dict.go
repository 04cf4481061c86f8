package stdlib

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nodegraph/ssvm/core/graph"
	"github.com/nodegraph/ssvm/core/parse"
)

// DictObject is an ordered string-keyed mapping. Grounded on
// original_source/src/stdlib/dict_type.rs, which backs its dictionary with
// a BTreeMap; Go maps don't preserve key order, so iteration order here is
// produced by sorting keys on demand rather than by insertion tracking.
type DictObject map[string]graph.Object

func (o DictObject) Class() graph.Class { return dictClass }

func (o DictObject) sortedKeys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o DictObject) Text() string {
	keys := o.sortedKeys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, o[k].Text())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (o DictObject) Number() (float64, error) {
	return 0, &CoercionError{Class: "dict", Want: "number"}
}

func (o DictObject) Bool() bool { return len(o) > 0 }

func (o DictObject) Field(key graph.Object) (graph.Object, bool) {
	if key.Class().Equal(stringClass) {
		switch key.Text() {
		case "keys":
			keys := o.sortedKeys()
			arr := make(ArrayObject, len(keys))
			for i, k := range keys {
				arr[i] = StringObject(k)
			}
			return arr, true
		case "values":
			keys := o.sortedKeys()
			arr := make(ArrayObject, len(keys))
			for i, k := range keys {
				arr[i] = o[k]
			}
			return arr, true
		}
		if v, ok := o[key.Text()]; ok {
			return v, true
		}
	}
	return nil, false
}

func (o DictObject) SetField(key, value graph.Object) bool {
	if !key.Class().Equal(stringClass) {
		return false
	}
	switch key.Text() {
	case "keys", "values":
		return false
	}
	o[key.Text()] = value
	return true
}

func (o DictObject) Equal(other graph.Object) bool {
	if !sameClass(o, other) {
		return false
	}
	ov, ok := other.(DictObject)
	if !ok || len(o) != len(ov) {
		return false
	}
	for k, v := range o {
		ovv, ok := ov[k]
		if !ok || !v.Equal(ovv) {
			return false
		}
	}
	return true
}

// Compare is unsupported: dicts have no defined total order.
func (o DictObject) Compare(graph.Object) (graph.Ordering, bool) {
	return graph.OrderEqual, false
}

var dictClass graph.Class

func init() {
	// No constructor node: the original carries no stdlib node that builds
	// a dict from sockets either, leaving dict construction to from-text
	// literals in program data and to field access for manipulation.
	dictClass = graph.NewClass("dict", dictFromText)
}

// dictFromText parses a brace-delimited key/value literal, leniently:
// strict JSON object first, then jsonrepair as a fallback, via
// core/parse.ParseStringAs's chain (same one arrayFromText uses).
func dictFromText(text string) (graph.Object, error) {
	raw, err := parse.ParseStringAs[map[string]interface{}](text)
	if err != nil {
		return nil, &CoercionError{Class: "dict", Want: "dict", Cause: err}
	}
	out := make(DictObject, len(raw))
	for k, v := range raw {
		out[k] = NewAny(fmt.Sprint(v))
	}
	return out, nil
}
