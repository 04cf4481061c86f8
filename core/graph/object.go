package graph

import "fmt"

// Ordering is the result of a partial comparison between two objects.
type Ordering int

const (
	OrderLess Ordering = -1
	OrderEqual Ordering = 0
	OrderGreater Ordering = 1
)

// FromTextFunc constructs an Object of a fixed class from its textual form.
type FromTextFunc func(text string) (Object, error)

// Object is a polymorphic runtime value carrying an intrinsic class. Every
// object must support textual rendering and coercion to number/boolean;
// field access, equality and ordering are required in shape but may report
// structured failure (not a panic) when the concrete type doesn't support
// them.
type Object interface {
	// Class reports the object's intrinsic type tag.
	Class() Class
	// Text renders the object's default display form.
	Text() string
	// Number attempts a floating-point coercion.
	Number() (float64, error)
	// Bool coerces to boolean (never fails: every class defines truthiness).
	Bool() bool
	// Field reads a value keyed by another object. ok is false when the
	// receiver's class does not support field access, or the key is invalid
	// (e.g. out-of-range array index, missing dict key).
	Field(key Object) (value Object, ok bool)
	// SetField writes a value keyed by another object. ok is false under the
	// same conditions as Field.
	SetField(key, value Object) (ok bool)
	// Equal compares against another object; always false across classes.
	Equal(other Object) bool
	// Compare orders against another object; ok is false when classes differ
	// or the concrete type has no total order for these operands.
	Compare(other Object) (order Ordering, ok bool)
}

// Class is identified by name alone; two classes are equal iff their names
// match. It carries the "new-instance palette" of prototype nodes (index 0
// is the default instantiated by the loader) and an optional parser that
// builds an Object of this class from text.
//
// Nodes is a pointer so the loader can patch a program-defined class's
// method table in place after node instantiation (component 4.E step 4)
// without every holder of a Class value needing to be informed of a new
// backing slice.
type Class struct {
	Name     string
	Nodes    *[]Node
	FromText FromTextFunc
}

// NewClass builds a class with a fixed, already-known prototype node list.
// Used by the standard library, where nodes are known up front.
func NewClass(name string, fromText FromTextFunc, nodes ...Node) Class {
	ns := append([]Node(nil), nodes...)
	return Class{Name: name, Nodes: &ns, FromText: fromText}
}

// NewEmptyClass builds a class with no prototype nodes yet, as synthesized
// by the loader for a program-defined class before its method table is
// patched (4.E step 1).
func NewEmptyClass(name string) Class {
	ns := []Node{}
	return Class{Name: name, Nodes: &ns}
}

// Equal reports whether two classes share a name.
func (c Class) Equal(other Class) bool {
	return c.Name == other.Name
}

func (c Class) String() string {
	return c.Name
}

// NodeList returns the current prototype node list (may be empty if the
// class hasn't been patched yet).
func (c Class) NodeList() []Node {
	if c.Nodes == nil {
		return nil
	}
	return *c.Nodes
}

// Prototype returns the prototype node at idx, bounds-checked.
func (c Class) Prototype(idx int) (Node, error) {
	nodes := c.NodeList()
	if idx < 0 || idx >= len(nodes) {
		return nil, fmt.Errorf("graph: class %q has no prototype node at index %d (has %d)", c.Name, idx, len(nodes))
	}
	return nodes[idx], nil
}

// SetNodeList replaces the class's prototype node list in place (4.E step 4:
// the loader fills a program-defined class's method table from instantiated
// nodes).
func (c Class) SetNodeList(nodes []Node) {
	*c.Nodes = nodes
}
