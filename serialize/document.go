package serialize

import (
	"github.com/nodegraph/ssvm/core/graph"
	"github.com/nodegraph/ssvm/core/program"
)

// NodeEntry is one "nodes" map entry: SPEC_FULL §6
// `node_id -> {class, idx, variant}`.
type NodeEntry struct {
	Class   string `json:"class" yaml:"class"`
	Idx     int    `json:"idx" yaml:"idx"`
	Variant string `json:"variant" yaml:"variant"`
}

// Position is a `node_positions` entry: ignored by the core (editor
// concern per SPEC_FULL §1) but round-tripped by this package so a
// document saved by the same tool that loaded it doesn't lose editor state.
type Position struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
	Z float32 `json:"z" yaml:"z"`
}

// ClassDecl is one "classes" list entry: SPEC_FULL §6
// `{name, nodes: [node_id, ...]}`.
type ClassDecl struct {
	Name  string   `json:"name" yaml:"name"`
	Nodes []uint32 `json:"nodes" yaml:"nodes"`
}

// ConnectionEntry is one "connections" set entry: SPEC_FULL §6
// `{output: packed_socket_id, input: packed_socket_id}`.
type ConnectionEntry struct {
	Output uint64 `json:"output" yaml:"output"`
	Input  uint64 `json:"input" yaml:"input"`
}

// Document is the wire-level shape of one serialized program, mirroring
// SPEC_FULL §6's field list exactly. Unlike program.Def, every id here is
// the bare numeric/packed form specified externally (NodeId as uint32,
// socket/branch ids packed into uint64) rather than the graph package's
// typed wrappers, since this is the boundary where those wrappers get
// constructed.
type Document struct {
	Imports       []string             `json:"imports,omitempty" yaml:"imports,omitempty"`
	Nodes         map[uint32]NodeEntry `json:"nodes" yaml:"nodes"`
	NodePositions map[uint32]Position  `json:"node_positions,omitempty" yaml:"node_positions,omitempty"`
	Classes       []ClassDecl          `json:"classes" yaml:"classes"`
	BranchEdges   map[uint64]uint32    `json:"branch_edges" yaml:"branch_edges"`
	Connections   []ConnectionEntry    `json:"connections" yaml:"connections"`
	ConstInputs   map[uint64]string    `json:"const_inputs" yaml:"const_inputs"`
}

// NewDocument builds an empty Document ready to be populated by FromDef or
// by hand.
func NewDocument() *Document {
	return &Document{
		Nodes:       make(map[uint32]NodeEntry),
		BranchEdges: make(map[uint64]uint32),
		ConstInputs: make(map[uint64]string),
	}
}

// ToDef converts the wire Document into a program.Def, resolving every
// textual class-path and parsing every packed id (4.A). This is a Parse
// error (SPEC_FULL §7 kind 1) boundary: a malformed class path fails here,
// before the Loader ever sees the program. idx is copied unchecked; its
// range is checked by the Loader.
func (d *Document) ToDef() (*program.Def, error) {
	def := program.NewDef()
	def.Imports = append([]string(nil), d.Imports...)

	for id, pos := range d.NodePositions {
		if def.NodePositions == nil {
			def.NodePositions = make(map[graph.NodeId][3]float32)
		}
		def.NodePositions[graph.NodeId(id)] = [3]float32{pos.X, pos.Y, pos.Z}
	}

	for id, ne := range d.Nodes {
		classPath, err := graph.ParseModulePath(ne.Class)
		if err != nil {
			return nil, &graph.ParseError{Input: ne.Class, Cause: err}
		}
		def.Nodes[graph.NodeId(id)] = program.NodeDef{
			Class:   classPath,
			Idx:     ne.Idx,
			Variant: ne.Variant,
		}
	}

	for _, cd := range d.Classes {
		nodes := make([]graph.NodeId, len(cd.Nodes))
		for i, n := range cd.Nodes {
			nodes[i] = graph.NodeId(n)
		}
		def.Classes = append(def.Classes, program.ClassDef{Name: cd.Name, Nodes: nodes})
	}

	for packed, successor := range d.BranchEdges {
		def.BranchEdges[graph.UnpackBranchId(packed)] = graph.NodeId(successor)
	}

	for _, ce := range d.Connections {
		def.Connections = append(def.Connections, graph.Connection{
			Output: graph.UnpackOutputSocketId(ce.Output),
			Input:  graph.UnpackInputSocketId(ce.Input),
		})
	}

	for packed, literal := range d.ConstInputs {
		def.ConstInputs[graph.UnpackInputSocketId(packed)] = literal
	}

	return def, nil
}

// FromDef renders a program.Def back into its wire Document form, the
// inverse of ToDef, used both to save a freshly-authored program and to
// satisfy the round-trip property in SPEC_FULL §8 scenario S6.
func FromDef(def *program.Def) *Document {
	doc := NewDocument()
	doc.Imports = append([]string(nil), def.Imports...)

	if len(def.NodePositions) > 0 {
		doc.NodePositions = make(map[uint32]Position, len(def.NodePositions))
		for id, p := range def.NodePositions {
			doc.NodePositions[uint32(id)] = Position{X: p[0], Y: p[1], Z: p[2]}
		}
	}

	for id, nd := range def.Nodes {
		doc.Nodes[uint32(id)] = NodeEntry{Class: nd.Class.String(), Idx: nd.Idx, Variant: nd.Variant}
	}

	for _, cd := range def.Classes {
		nodes := make([]uint32, len(cd.Nodes))
		for i, n := range cd.Nodes {
			nodes[i] = uint32(n)
		}
		doc.Classes = append(doc.Classes, ClassDecl{Name: cd.Name, Nodes: nodes})
	}

	for branch, successor := range def.BranchEdges {
		doc.BranchEdges[branch.Pack()] = uint32(successor)
	}

	for _, conn := range def.Connections {
		doc.Connections = append(doc.Connections, ConnectionEntry{
			Output: conn.Output.Pack(),
			Input:  conn.Input.Pack(),
		})
	}

	for sock, literal := range def.ConstInputs {
		doc.ConstInputs[sock.Pack()] = literal
	}

	return doc
}
