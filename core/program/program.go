// Package program implements the Program Loader (SPEC_FULL 4.E) and Data
// Flow Store (4.F): materializing a serialized graph into a runnable
// in-memory form and resolving a node's effective inputs/outputs.
package program

import (
	"github.com/nodegraph/ssvm/core/graph"
)

// ClassDef is a program-defined class declaration: a name plus the ids of
// the nodes (within the same program) that make up its method table, in
// declared order.
type ClassDef struct {
	Name  string
	Nodes []graph.NodeId
}

// NodeDef is one serialized node entry: which class to instantiate, which
// prototype index to clone, and the variant to apply to the clone.
type NodeDef struct {
	Class   graph.ModulePath
	Idx     int
	Variant string
}

// Def is the serialized, pre-load form of one program (component E's input),
// corresponding to the document schema in SPEC_FULL §6.
type Def struct {
	Imports       []string
	Nodes         map[graph.NodeId]NodeDef
	NodePositions map[graph.NodeId][3]float32
	Classes       []ClassDef
	BranchEdges   map[graph.BranchId]graph.NodeId
	Connections   []graph.Connection
	ConstInputs   map[graph.InputSocketId]string
}

// NewDef builds an empty program definition ready to be populated.
func NewDef() *Def {
	return &Def{
		Nodes:       make(map[graph.NodeId]NodeDef),
		BranchEdges: make(map[graph.BranchId]graph.NodeId),
		ConstInputs: make(map[graph.InputSocketId]string),
	}
}

// Collection is a set of program definitions keyed by their module path,
// the unit the Loader consumes to resolve cross-program references.
type Collection struct {
	Programs map[string]*Def // keyed by ModulePath.String()
	paths    map[string]graph.ModulePath
}

// NewCollection builds an empty program collection.
func NewCollection() *Collection {
	return &Collection{Programs: make(map[string]*Def), paths: make(map[string]graph.ModulePath)}
}

// Add registers a program definition under path.
func (c *Collection) Add(path graph.ModulePath, def *Def) {
	key := path.String()
	c.Programs[key] = def
	c.paths[key] = path
}

// LoadedProgram is the in-memory, runnable form of one program (4.E/4.F).
type LoadedProgram struct {
	Nodes       *graph.NodeStorage
	BranchEdges map[graph.BranchId]graph.NodeId
	Connections map[graph.Connection]graph.Object // nil value == empty slot
	ConstInputs map[graph.InputSocketId]string

	constCache map[graph.InputSocketId]graph.Object
}

func newLoadedProgram() *LoadedProgram {
	return &LoadedProgram{
		Nodes:       graph.NewNodeStorage(),
		BranchEdges: make(map[graph.BranchId]graph.NodeId),
		Connections: make(map[graph.Connection]graph.Object),
		ConstInputs: make(map[graph.InputSocketId]string),
		constCache:  make(map[graph.InputSocketId]graph.Object),
	}
}

// GetNode looks up a node by id within this program.
func (lp *LoadedProgram) GetNode(id graph.NodeId) (graph.Node, bool) {
	return lp.Nodes.Get(id)
}

// GetNextNode resolves the branch-edge table for (current, branch).
// Invariant 8.2: defined iff (current, branch) is in the table.
func (lp *LoadedProgram) GetNextNode(current graph.NodeId, branch int) (graph.NodeId, bool) {
	id, ok := lp.BranchEdges[graph.BranchId{Node: current, Branch: uint32(branch)}]
	return id, ok
}

// Data is the executor-scoped Loaded Program Data: every loaded program
// keyed by path, plus the shared Module Tree (4.E, 4.C).
type Data struct {
	programs map[string]*LoadedProgram
	paths    map[string]graph.ModulePath
	Modules  *graph.Module
}

// NewData builds an empty Loaded Program Data with a fresh Module Tree.
func NewData() *Data {
	return &Data{
		programs: make(map[string]*LoadedProgram),
		paths:    make(map[string]graph.ModulePath),
		Modules:  graph.NewModule(),
	}
}

// Program returns the loaded program at path, if any.
func (d *Data) Program(path graph.ModulePath) (*LoadedProgram, bool) {
	p, ok := d.programs[path.String()]
	return p, ok
}

// GetNode resolves an absolute node id to its Node instance.
func (d *Data) GetNode(id graph.AbsoluteNodeId) (graph.Node, bool) {
	p, ok := d.Program(id.Program)
	if !ok {
		return nil, false
	}
	return p.GetNode(id.Node)
}

// GetNextNode resolves the successor of (current, branch) within current's
// program.
func (d *Data) GetNextNode(current graph.AbsoluteNodeId, branch int) (graph.AbsoluteNodeId, bool) {
	p, ok := d.Program(current.Program)
	if !ok {
		return graph.AbsoluteNodeId{}, false
	}
	next, ok := p.GetNextNode(current.Node, branch)
	if !ok {
		return graph.AbsoluteNodeId{}, false
	}
	return graph.AbsoluteNodeId{Program: current.Program, Node: next}, true
}

// GetClass resolves a class path through the shared Module Tree.
func (d *Data) GetClass(path graph.ModulePath) (graph.Class, bool) {
	return d.Modules.GetClass(path)
}

// GetStartNode scans the named program's nodes for one whose class is the
// standard "start" class and whose variant encodes entry name name (4.G).
// The exact variant grammar ("start#<entry>#<sockets>") is interpreted by
// the stdlib package; GetStartNode only needs the entry-name component,
// which it extracts directly to avoid importing stdlib from program.
func (d *Data) GetStartNode(programPath graph.ModulePath, name string) (graph.AbsoluteNodeId, bool) {
	p, ok := d.Program(programPath)
	if !ok {
		return graph.AbsoluteNodeId{}, false
	}
	var found graph.NodeId
	var ok2 bool
	p.Nodes.Range(func(id graph.NodeId, n graph.Node) bool {
		if n.Class().Name != "start" {
			return true
		}
		if entryNameFromStartVariant(n.CurrentVariant()) == name {
			found, ok2 = id, true
			return false
		}
		return true
	})
	if !ok2 {
		return graph.AbsoluteNodeId{}, false
	}
	return graph.AbsoluteNodeId{Program: programPath, Node: found}, true
}

// entryNameFromStartVariant extracts <entry_name> from a
// "start#<entry_name>#<sockets>" variant string without needing the full
// stdlib grammar parser.
func entryNameFromStartVariant(variant string) string {
	const prefix = "start#"
	if len(variant) <= len(prefix) || variant[:len(prefix)] != prefix {
		return ""
	}
	rest := variant[len(prefix):]
	for i := 0; i < len(rest); i++ {
		if rest[i] == '#' {
			return rest[:i]
		}
	}
	return ""
}
