package executor

import "github.com/nodegraph/ssvm/core/graph"

// executionContext is the concrete graph.ExecutionContext bound to one
// frame for the duration of a single Step's Execute call (4.G "Execution
// context"). pushed/popped/finished tell Step how the call stack has
// already been adjusted so it doesn't also apply the ordinary
// pop-then-follow-branch advance on top of a call/return.
type executionContext struct {
	ex         *Executor
	frameIndex int

	pushed   bool
	popped   bool
	finished bool
}

func (c *executionContext) currentFrame() frame {
	return c.ex.stack[c.frameIndex]
}

// GetInputs returns the bound node's effective input values, substituting a
// subroutine_input@<id> sentinel's referent outputs when present (4.G).
// A synthesized implicit end node (no real program entry) has no data-flow
// store slot to read, and is reported as having no inputs.
func (c *executionContext) GetInputs() ([]graph.Object, error) {
	f := c.currentFrame()
	if f.synthetic != nil {
		return nil, nil
	}
	lp, ok := c.ex.data.Program(f.id.Program)
	if !ok {
		return nil, &graph.ResolutionError{Path: f.id.Program, What: "no such program"}
	}
	node, ok := lp.GetNode(f.id.Node)
	if !ok {
		return nil, &graph.ResolutionError{Path: f.id.Program, What: "no such node"}
	}
	return lp.GetInputs(f.id.Node, effectiveInputSockets(node, c.ex.data))
}

// SetOutputs pushes values onto the bound node's output sockets, updating
// every downstream connection. A synthesized implicit end node has no
// outputs to push to.
func (c *executionContext) SetOutputs(values []graph.Object) {
	f := c.currentFrame()
	if f.synthetic != nil {
		return
	}
	lp, ok := c.ex.data.Program(f.id.Program)
	if !ok {
		return
	}
	lp.SetOutputs(f.id.Node, values)
}

// ExecuteSubroutine pushes target onto the call stack and writes args into
// target's own output slots, so downstream consumers of the entry node see
// the caller-supplied values (4.H "Call").
func (c *executionContext) ExecuteSubroutine(target graph.AbsoluteNodeId, args []graph.Object) error {
	lp, ok := c.ex.data.Program(target.Program)
	if !ok {
		return &graph.ResolutionError{Path: target.Program, What: "no such program"}
	}
	lp.SetOutputs(target.Node, args)
	c.ex.stack = append(c.ex.stack, frame{id: target})
	c.pushed = true
	return nil
}

// FinishSubroutine pops the current (end node's) frame, then writes values
// into the now-top frame's output slots and advances execution along that
// frame's own branch, exactly as if it had just finished executing (4.H
// "Return"). If popping leaves the stack empty, the program has finished —
// the ordinary termination path, not an error.
func (c *executionContext) FinishSubroutine(values []graph.Object) error {
	if len(c.ex.stack) == 0 {
		return &NotRunningError{}
	}
	c.ex.stack = c.ex.stack[:len(c.ex.stack)-1]
	if len(c.ex.stack) == 0 {
		c.finished = true
		return nil
	}
	callerIdx := len(c.ex.stack) - 1
	caller := c.ex.stack[callerIdx]
	if caller.synthetic == nil {
		if lp, ok := c.ex.data.Program(caller.id.Program); ok {
			lp.SetOutputs(caller.id.Node, values)
		}
	}
	next, err := c.ex.advanceFrom(caller, caller.pendingBranch)
	if err != nil {
		return err
	}
	c.ex.stack = c.ex.stack[:callerIdx]
	c.ex.stack = append(c.ex.stack, next)
	c.popped = true
	return nil
}

// SetVariable writes to the executor's flat, process-scoped variable map.
func (c *executionContext) SetVariable(name string, value graph.Object) {
	c.ex.vars[name] = value
}

// GetVariable reads from the flat variable map; ok is false when unset.
func (c *executionContext) GetVariable(name string) (graph.Object, bool) {
	v, ok := c.ex.vars[name]
	return v, ok
}
