package program

import (
	"fmt"
	"testing"

	"github.com/nodegraph/ssvm/core/graph"
)

// fakeNode is a minimal graph.Node test double, used only in this package's
// tests so loader/dataflow behavior can be exercised without depending on
// the stdlib package.
type fakeNode struct {
	className string
	inputs    []graph.InputSocket
	outputs   []graph.OutputSocket
	variant   string
	branches  int
}

func (n *fakeNode) Class() graph.Class                          { return graph.NewEmptyClass(n.className) }
func (n *fakeNode) Variants() []string                           { return nil }
func (n *fakeNode) CurrentVariant() string                       { return n.variant }
func (n *fakeNode) SetVariant(v string) error                    { n.variant = v; return nil }
func (n *fakeNode) AcceptsArbitraryVariants() bool                { return true }
func (n *fakeNode) Inputs() []graph.InputSocket                   { return n.inputs }
func (n *fakeNode) Outputs() []graph.OutputSocket                 { return n.outputs }
func (n *fakeNode) Branches() int {
	if n.branches == 0 {
		return 1
	}
	return n.branches
}
func (n *fakeNode) Execute(graph.ExecutionContext) (int, error) { return 0, nil }
func (n *fakeNode) Clone() graph.Node {
	cp := *n
	return &cp
}

// fakeObject is a minimal graph.Object test double.
type fakeObject struct {
	class graph.Class
	text  string
}

func (o fakeObject) Class() graph.Class                   { return o.class }
func (o fakeObject) Text() string                          { return o.text }
func (o fakeObject) Number() (float64, error)              { return 0, fmt.Errorf("not a number") }
func (o fakeObject) Bool() bool                             { return o.text != "" }
func (o fakeObject) Field(graph.Object) (graph.Object, bool) { return nil, false }
func (o fakeObject) SetField(graph.Object, graph.Object) bool { return false }
func (o fakeObject) Equal(other graph.Object) bool          { return o.Text() == other.Text() }
func (o fakeObject) Compare(graph.Object) (graph.Ordering, bool) { return graph.OrderEqual, false }

func numberClass() graph.Class {
	return graph.NewClass("number", func(text string) (graph.Object, error) {
		return fakeObject{class: graph.NewEmptyClass("number"), text: text}, nil
	})
}

func TestLoadProgramBasic(t *testing.T) {
	d := NewData()
	basePath, _ := graph.ParseModulePath("lib.Base")
	base := graph.NewClass("Base", nil, &fakeNode{className: "Base"})
	if err := d.LoadPlugin(map[graph.ModulePath]graph.Class{basePath: base}); err != nil {
		t.Fatalf("LoadPlugin: %v", err)
	}

	progPath, _ := graph.ParseModulePath("prog")
	def := NewDef()
	def.Nodes[0] = NodeDef{Class: basePath, Idx: 0, Variant: "v1"}
	def.Classes = []ClassDef{{Name: "Derived", Nodes: []graph.NodeId{0}}}

	if err := d.LoadProgram(progPath, def); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}

	node, ok := d.GetNode(graph.AbsoluteNodeId{Program: progPath, Node: 0})
	if !ok {
		t.Fatal("expected node 0 to be loaded")
	}
	if node.CurrentVariant() != "v1" {
		t.Fatalf("got variant %q, want v1", node.CurrentVariant())
	}

	derivedPath, _ := graph.ParseModulePath("prog.Derived")
	derived, ok := d.GetClass(derivedPath)
	if !ok {
		t.Fatal("expected prog.Derived class to be registered")
	}
	if len(derived.NodeList()) != 1 {
		t.Fatalf("expected patched method table of length 1, got %d", len(derived.NodeList()))
	}
}

func TestLoadProgramPrototypeIndexOutOfRange(t *testing.T) {
	d := NewData()
	basePath, _ := graph.ParseModulePath("lib.Base")
	base := graph.NewClass("Base", nil, &fakeNode{className: "Base"})
	_ = d.LoadPlugin(map[graph.ModulePath]graph.Class{basePath: base})

	progPath, _ := graph.ParseModulePath("prog")
	def := NewDef()
	def.Nodes[0] = NodeDef{Class: basePath, Idx: 5, Variant: ""}

	if err := d.LoadProgram(progPath, def); err == nil {
		t.Fatal("expected out-of-range prototype index to error")
	}
}

func TestLoadProgramUnknownClass(t *testing.T) {
	d := NewData()
	progPath, _ := graph.ParseModulePath("prog")
	missing, _ := graph.ParseModulePath("nope.Missing")
	def := NewDef()
	def.Nodes[0] = NodeDef{Class: missing, Idx: 0, Variant: ""}

	if err := d.LoadProgram(progPath, def); err == nil {
		t.Fatal("expected unknown class reference to error")
	}
}

func TestLoadProgramDuplicateClassDeclaration(t *testing.T) {
	d := NewData()
	progPath, _ := graph.ParseModulePath("prog")
	def := NewDef()
	def.Classes = []ClassDef{{Name: "Dup"}, {Name: "Dup"}}

	if err := d.LoadProgram(progPath, def); err == nil {
		t.Fatal("expected duplicate class declaration to error")
	}
}

func TestGetStartNodeFindsMatchingEntry(t *testing.T) {
	d := NewData()
	startPath, _ := graph.ParseModulePath("std.start")
	start := graph.NewClass("start", nil, &fakeNode{className: "start"})
	_ = d.LoadPlugin(map[graph.ModulePath]graph.Class{startPath: start})

	progPath, _ := graph.ParseModulePath("__main__")
	def := NewDef()
	def.Nodes[3] = NodeDef{Class: startPath, Idx: 0, Variant: "start#main#[]"}
	if err := d.LoadProgram(progPath, def); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}

	id, ok := d.GetStartNode(progPath, "main")
	if !ok {
		t.Fatal("expected start node to be found")
	}
	if id.Node != 3 {
		t.Fatalf("got node id %d, want 3", id.Node)
	}

	if _, ok := d.GetStartNode(progPath, "other"); ok {
		t.Fatal("expected no match for a different entry name")
	}
}
