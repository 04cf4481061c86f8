package program

import (
	"sort"

	"github.com/nodegraph/ssvm/core/graph"
)

// SetOutputs implements 4.F: for each output index i, update every
// connection whose source is (node_id, i) to the new value.
func (lp *LoadedProgram) SetOutputs(nodeID graph.NodeId, values []graph.Object) {
	for i, v := range values {
		out := graph.PackOutputSocketId(nodeID, uint32(i))
		for conn := range lp.Connections {
			if conn.Output == out {
				lp.Connections[conn] = v
			}
		}
	}
}

// GetInputs implements 4.F: gathers a sparse mapping input_index -> value
// from every connection targeting nodeID and the constant-input table,
// parsing each constant literal via the node's declared input socket class
// on first use (cached thereafter). The result is dense from 0 to the
// highest mentioned index; unfilled slots are nil ("absent").
//
// Tie-break: when both a connection and a const_input address the same
// index, the const_input wins. This mirrors the reference implementation's
// `chain(connections, const_inputs).collect::<BTreeMap<_,_>>()`, where a
// later entry for an existing key overwrites the earlier one; see
// DESIGN.md's Open Question decisions for why this fidelity choice was made
// over the arguably more natural "connection wins" reading.
//
// If multiple connections target the same index (the Open Question in
// SPEC_FULL §9), last-writer-wins is applied over connections sorted by
// (output.Node, output.Index) for determinism, per DESIGN.md.
func (lp *LoadedProgram) GetInputs(nodeID graph.NodeId, node graph.Node) ([]graph.Object, error) {
	maxIdx := -1
	values := make(map[int]graph.Object)

	type conn struct {
		c graph.Connection
		v graph.Object
	}
	var targeting []conn
	for c, v := range lp.Connections {
		if c.Input.Node == nodeID {
			targeting = append(targeting, conn{c: c, v: v})
			if idx := int(c.Input.Index); idx > maxIdx {
				maxIdx = idx
			}
		}
	}
	sort.Slice(targeting, func(i, j int) bool {
		a, b := targeting[i].c.Output, targeting[j].c.Output
		if a.Node != b.Node {
			return a.Node < b.Node
		}
		return a.Index < b.Index
	})
	for _, t := range targeting {
		if t.v != nil {
			values[int(t.c.Input.Index)] = t.v
		}
	}

	inputs := node.Inputs()
	for sockID, literal := range lp.ConstInputs {
		if sockID.Node != nodeID {
			continue
		}
		idx := int(sockID.Index)
		if idx > maxIdx {
			maxIdx = idx
		}
		if idx >= len(inputs) {
			continue // out-of-range const entry is silently ignored, matching the reference
		}
		if cached, ok := lp.constCache[sockID]; ok {
			values[idx] = cached
			continue
		}
		class := inputs[idx].Class
		if class.FromText == nil {
			continue
		}
		obj, err := class.FromText(literal)
		if err != nil {
			return nil, err
		}
		lp.constCache[sockID] = obj
		values[idx] = obj
	}

	result := make([]graph.Object, maxIdx+1)
	for i := 0; i <= maxIdx; i++ {
		result[i] = values[i] // nil if absent
	}
	return result, nil
}

// GetInputs resolves and forwards to the owning LoadedProgram's GetInputs.
func (d *Data) GetInputs(id graph.AbsoluteNodeId) ([]graph.Object, error) {
	lp, ok := d.Program(id.Program)
	if !ok {
		return nil, &graph.ResolutionError{Path: id.Program, What: "no such program"}
	}
	node, ok := lp.GetNode(id.Node)
	if !ok {
		return nil, &graph.ResolutionError{Path: id.Program, What: "no such node"}
	}
	return lp.GetInputs(id.Node, node)
}

// SetOutputs resolves and forwards to the owning LoadedProgram's SetOutputs.
func (d *Data) SetOutputs(id graph.AbsoluteNodeId, values []graph.Object) error {
	lp, ok := d.Program(id.Program)
	if !ok {
		return &graph.ResolutionError{Path: id.Program, What: "no such program"}
	}
	lp.SetOutputs(id.Node, values)
	return nil
}
