package graph

import "testing"

func TestModuleInsertAndGetClass(t *testing.T) {
	m := NewModule()
	path, _ := ParseModulePath("std.print")
	class := NewEmptyClass("print")
	if err := m.InsertClass(path, class); err != nil {
		t.Fatalf("InsertClass: %v", err)
	}
	got, ok := m.GetClass(path)
	if !ok {
		t.Fatal("expected class to be found")
	}
	if got.Name != "print" {
		t.Fatalf("got class %q, want print", got.Name)
	}
}

func TestModuleGetClassNotFound(t *testing.T) {
	m := NewModule()
	path, _ := ParseModulePath("std.missing")
	if _, ok := m.GetClass(path); ok {
		t.Fatal("expected not-found for unregistered class")
	}
}

func TestModuleNonModuleSegmentIsFatal(t *testing.T) {
	m := NewModule()
	leafPath, _ := ParseModulePath("std.print")
	if err := m.InsertClass(leafPath, NewEmptyClass("print")); err != nil {
		t.Fatalf("InsertClass: %v", err)
	}
	// "std.print" is now a class (leaf), not a module; inserting something
	// under "std.print.sub" must fail because "print" isn't a module.
	deeper, _ := ParseModulePath("std.print.sub")
	if err := m.InsertClass(deeper, NewEmptyClass("sub")); err == nil {
		t.Fatal("expected fatal structural error inserting under a non-module segment")
	}
}

func TestModuleGetClassRefPatchesInPlace(t *testing.T) {
	m := NewModule()
	path, _ := ParseModulePath("prog.Counter")
	if err := m.InsertClass(path, NewEmptyClass("Counter")); err != nil {
		t.Fatalf("InsertClass: %v", err)
	}
	ref, ok := m.GetClassRef(path)
	if !ok {
		t.Fatal("expected class ref to be found")
	}
	ref.SetNodeList([]Node{testNode{class: ref.Name}})

	got, ok := m.GetClass(path)
	if !ok {
		t.Fatal("expected class to still be found")
	}
	if len(got.NodeList()) != 1 {
		t.Fatalf("expected patched node list of length 1, got %d", len(got.NodeList()))
	}
}

func TestModuleInsertConstant(t *testing.T) {
	m := NewModule()
	path, _ := ParseModulePath("std.pi")
	if err := m.InsertConstant(path, testObject{text: "3.14"}); err != nil {
		t.Fatalf("InsertConstant: %v", err)
	}
	got, ok := m.GetConstant(path)
	if !ok {
		t.Fatal("expected constant to be found")
	}
	if got.Text() != "3.14" {
		t.Fatalf("got %q, want 3.14", got.Text())
	}
}

// testObject is a minimal Object double used only within this package's
// tests, where Object is defined.
type testObject struct{ text string }

func (o testObject) Class() Class                      { return NewEmptyClass("test") }
func (o testObject) Text() string                       { return o.text }
func (o testObject) Number() (float64, error)           { return 0, nil }
func (o testObject) Bool() bool                         { return o.text != "" }
func (o testObject) Field(Object) (Object, bool)        { return nil, false }
func (o testObject) SetField(Object, Object) bool       { return false }
func (o testObject) Equal(other Object) bool            { return o.Text() == other.Text() }
func (o testObject) Compare(Object) (Ordering, bool)    { return OrderEqual, false }

// testNode is a minimal Node double used only within this package's tests.
type testNode struct{ class string }

func (n testNode) Class() Class                              { return NewEmptyClass(n.class) }
func (n testNode) Variants() []string                        { return nil }
func (n testNode) CurrentVariant() string                     { return "" }
func (n testNode) SetVariant(string) error                    { return nil }
func (n testNode) AcceptsArbitraryVariants() bool             { return false }
func (n testNode) Inputs() []InputSocket                      { return nil }
func (n testNode) Outputs() []OutputSocket                    { return nil }
func (n testNode) Branches() int                              { return 1 }
func (n testNode) Execute(ExecutionContext) (int, error)      { return 0, nil }
func (n testNode) Clone() Node                                { return n }
