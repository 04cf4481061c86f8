// Package graph implements the core data model of the node-graph runtime:
// identifiers and paths, the polymorphic Object protocol, the Class registry
// and Module tree, and the Node protocol and storage. These pieces are
// mutually referential (a Class carries prototype Nodes, a Node's sockets
// carry Classes) and so live in a single package rather than being split
// across several that would otherwise form an import cycle.
package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeId uniquely identifies a node within a single program.
type NodeId uint32

// ModulePath is a hierarchical name: an ordered sequence of segments plus a
// final leaf identifier. Two paths are equal iff both components are equal.
type ModulePath struct {
	Segments []string
	Leaf     string
}

// NewModulePath builds a path directly from segments and a leaf, without
// going through text parsing.
func NewModulePath(leaf string, segments ...string) ModulePath {
	return ModulePath{Segments: append([]string(nil), segments...), Leaf: leaf}
}

// ParseModulePath splits s on '.'; the rightmost segment becomes the leaf.
// Empty input is an error.
func ParseModulePath(s string) (ModulePath, error) {
	if s == "" {
		return ModulePath{}, fmt.Errorf("graph: empty module path")
	}
	parts := strings.Split(s, ".")
	leaf := parts[len(parts)-1]
	if leaf == "" {
		return ModulePath{}, fmt.Errorf("graph: module path %q has an empty leaf segment", s)
	}
	segments := parts[:len(parts)-1]
	for _, seg := range segments {
		if seg == "" {
			return ModulePath{}, fmt.Errorf("graph: module path %q has an empty segment", s)
		}
	}
	return ModulePath{Segments: append([]string(nil), segments...), Leaf: leaf}, nil
}

// String renders the canonical dot-joined text form.
func (p ModulePath) String() string {
	if len(p.Segments) == 0 {
		return p.Leaf
	}
	return strings.Join(p.Segments, ".") + "." + p.Leaf
}

// Equal reports whether two module paths name the same location.
func (p ModulePath) Equal(other ModulePath) bool {
	if p.Leaf != other.Leaf || len(p.Segments) != len(other.Segments) {
		return false
	}
	for i := range p.Segments {
		if p.Segments[i] != other.Segments[i] {
			return false
		}
	}
	return true
}

// Join returns a new path naming leaf inside the module this path denotes,
// i.e. appends the current leaf to segments and makes leaf the new leaf.
// Used by the loader to place a program-defined class under its program's
// own path.
func (p ModulePath) Join(leaf string) ModulePath {
	segs := make([]string, 0, len(p.Segments)+1)
	segs = append(segs, p.Segments...)
	segs = append(segs, p.Leaf)
	return ModulePath{Segments: segs, Leaf: leaf}
}

// AbsoluteNodeId uniquely locates a node across all loaded programs.
type AbsoluteNodeId struct {
	Program ModulePath
	Node    NodeId
}

// String renders "<program_path>@<node_id>".
func (a AbsoluteNodeId) String() string {
	return fmt.Sprintf("%s@%d", a.Program, a.Node)
}

// ParseAbsoluteNodeId splits on the last '@'; the right side must parse as a
// non-negative integer, the left side as a module path.
func ParseAbsoluteNodeId(s string) (AbsoluteNodeId, error) {
	idx := strings.LastIndex(s, "@")
	if idx < 0 {
		return AbsoluteNodeId{}, fmt.Errorf("graph: absolute node id %q has no '@'", s)
	}
	programText, nodeText := s[:idx], s[idx+1:]
	prog, err := ParseModulePath(programText)
	if err != nil {
		return AbsoluteNodeId{}, fmt.Errorf("graph: absolute node id %q: %w", s, err)
	}
	n, err := strconv.ParseUint(nodeText, 10, 32)
	if err != nil {
		return AbsoluteNodeId{}, fmt.Errorf("graph: absolute node id %q: invalid node id: %w", s, err)
	}
	return AbsoluteNodeId{Program: prog, Node: NodeId(n)}, nil
}

// Equal reports whether two absolute node ids name the same node.
func (a AbsoluteNodeId) Equal(other AbsoluteNodeId) bool {
	return a.Node == other.Node && a.Program.Equal(other.Program)
}

// SocketId is a zero-based index into a node's input or output list, paired
// with the owning node. Input and output socket indices are independent
// namespaces; InputSocketId and OutputSocketId distinguish them at the type
// level so they cannot be confused.
type SocketId struct {
	Node  NodeId
	Index uint32
}

// Pack encodes the socket id into 64 bits as (node_id << 32) | index.
func (s SocketId) Pack() uint64 {
	return uint64(s.Node)<<32 | uint64(s.Index)
}

// UnpackSocketId decodes a packed 64-bit socket id.
func UnpackSocketId(v uint64) SocketId {
	return SocketId{Node: NodeId(v >> 32), Index: uint32(v)}
}

// InputSocketId identifies an input socket of a node.
type InputSocketId struct{ SocketId }

// OutputSocketId identifies an output socket of a node.
type OutputSocketId struct{ SocketId }

// PackInputSocketId encodes an input socket id.
func PackInputSocketId(node NodeId, index uint32) InputSocketId {
	return InputSocketId{SocketId{Node: node, Index: index}}
}

// PackOutputSocketId encodes an output socket id.
func PackOutputSocketId(node NodeId, index uint32) OutputSocketId {
	return OutputSocketId{SocketId{Node: node, Index: index}}
}

// UnpackInputSocketId decodes a packed 64-bit input socket id.
func UnpackInputSocketId(v uint64) InputSocketId {
	return InputSocketId{UnpackSocketId(v)}
}

// UnpackOutputSocketId decodes a packed 64-bit output socket id.
func UnpackOutputSocketId(v uint64) OutputSocketId {
	return OutputSocketId{UnpackSocketId(v)}
}

// BranchId identifies one of a node's outgoing branches.
type BranchId struct {
	Node   NodeId
	Branch uint32
}

// Pack encodes the branch id into 64 bits as (node_id << 32) | branch_index.
func (b BranchId) Pack() uint64 {
	return uint64(b.Node)<<32 | uint64(b.Branch)
}

// UnpackBranchId decodes a packed 64-bit branch id.
func UnpackBranchId(v uint64) BranchId {
	return BranchId{Node: NodeId(v >> 32), Branch: uint32(v)}
}

// Connection is a directed data-flow edge from an output socket to an input
// socket. It is comparable and usable as a map key.
type Connection struct {
	Output OutputSocketId
	Input  InputSocketId
}
