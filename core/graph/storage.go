package graph

import "sort"

// NodeStorage is a per-program, ordered container mapping NodeId to Node.
// Insert yields the smallest unused id via a next_vacant hint; InsertAt lets
// the loader honor serialized ids directly.
type NodeStorage struct {
	nodes      map[NodeId]Node
	nextVacant NodeId
}

// NewNodeStorage builds an empty node storage.
func NewNodeStorage() *NodeStorage {
	return &NodeStorage{nodes: make(map[NodeId]Node)}
}

// Get looks up a node by id.
func (s *NodeStorage) Get(id NodeId) (Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Len reports the number of stored nodes.
func (s *NodeStorage) Len() int {
	return len(s.nodes)
}

// Insert stores n at the smallest unused id and returns that id.
func (s *NodeStorage) Insert(n Node) NodeId {
	for {
		if _, taken := s.nodes[s.nextVacant]; !taken {
			id := s.nextVacant
			s.nodes[id] = n
			s.advanceVacant()
			return id
		}
		s.nextVacant++
	}
}

// InsertAt stores n at the given id, overwriting any existing occupant.
func (s *NodeStorage) InsertAt(id NodeId, n Node) {
	s.nodes[id] = n
	if id == s.nextVacant {
		s.advanceVacant()
	}
}

// Remove deletes the node at id, if present, and may lower next_vacant so
// that a subsequent Insert reuses the freed id.
func (s *NodeStorage) Remove(id NodeId) (Node, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, false
	}
	delete(s.nodes, id)
	if id < s.nextVacant {
		s.nextVacant = id
	}
	return n, true
}

// advanceVacant moves next_vacant forward past any ids already occupied,
// so repeated Insert calls don't re-scan from the same stale hint.
func (s *NodeStorage) advanceVacant() {
	for {
		if _, taken := s.nodes[s.nextVacant]; !taken {
			return
		}
		s.nextVacant++
	}
}

// SortedIds returns every stored NodeId in ascending order, for callers that
// need deterministic iteration (e.g. scanning for the start node).
func (s *NodeStorage) SortedIds() []NodeId {
	ids := make([]NodeId, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Range visits every stored node in ascending id order, stopping early if fn
// returns false.
func (s *NodeStorage) Range(fn func(NodeId, Node) bool) {
	for _, id := range s.SortedIds() {
		if !fn(id, s.nodes[id]) {
			return
		}
	}
}
