// Package executor implements the Executor/Scheduler and Subroutine
// Protocol (SPEC_FULL 4.G/4.H): a single-threaded, cooperative, step-driven
// interpreter over a loaded program.Data. Grounded on patterns/graph's
// executor/state shape, with the scheduling algorithm itself rewritten
// from parallel topological levels to a single call-stack step loop per
// SPEC_FULL §5.
package executor

import (
	"context"
	"time"

	"github.com/nodegraph/ssvm/core/graph"
	"github.com/nodegraph/ssvm/core/program"
	"github.com/nodegraph/ssvm/providers/observability"
	"github.com/nodegraph/ssvm/stdlib"
)

// frame is one call-stack entry: either a real stored node (synthetic ==
// nil) or a transient node the executor synthesizes itself (the implicit
// end pushed when a branch edge is missing) that is never written to
// NodeStorage. pendingBranch records, for a frame a subroutine call has
// pushed a callee on top of, the branch index the caller's own Execute
// chose — applied once the callee returns, so the caller's branch edge is
// still followed after the call completes.
type frame struct {
	id            graph.AbsoluteNodeId
	synthetic     graph.Node
	pendingBranch int
}

// Executor runs one loaded program.Data at a time, in accordance with
// SPEC_FULL §5: no parallel steps, no implicit ordering between programs.
type Executor struct {
	data       *program.Data
	stack      []frame
	vars       map[string]graph.Object
	auto       bool
	breakpoint *graph.AbsoluteNodeId
	obs        observability.Provider
}

// New builds an Executor bound to data. obs may be nil, in which case
// instrumentation is skipped.
func New(data *program.Data, obs observability.Provider) *Executor {
	return &Executor{data: data, vars: make(map[string]graph.Object), obs: obs}
}

// Running reports whether the call stack is non-empty.
func (e *Executor) Running() bool { return len(e.stack) > 0 }

// CurrentNode reports the absolute node id at the top of the call stack.
func (e *Executor) CurrentNode() (graph.AbsoluteNodeId, bool) {
	if len(e.stack) == 0 {
		return graph.AbsoluteNodeId{}, false
	}
	return e.stack[len(e.stack)-1].id, true
}

// SetBreakpoint arms a breakpoint at id: the auto-loop halts just before
// that node executes.
func (e *Executor) SetBreakpoint(id graph.AbsoluteNodeId) { e.breakpoint = &id }

// ClearBreakpoint disarms any breakpoint.
func (e *Executor) ClearBreakpoint() { e.breakpoint = nil }

// node resolves the Node instance backing a frame, whether stored or
// synthetic.
func (e *Executor) node(f frame) (graph.Node, bool) {
	if f.synthetic != nil {
		return f.synthetic, true
	}
	return e.data.GetNode(f.id)
}

// StartExecution resolves program __main__'s start node for entry name and
// pushes it (4.G "Start"). If auto is set, runs to completion or the next
// breakpoint.
func (e *Executor) StartExecution(ctx context.Context, name string, auto bool) error {
	mainPath := graph.NewModulePath("__main__")
	if e.obs != nil {
		spanCtx, span := e.obs.StartSpan(ctx, observability.SpanStartExecution,
			observability.String(observability.AttrProgramPath, mainPath.String()),
			observability.String(observability.AttrEntryName, name),
		)
		ctx = spanCtx
		defer span.End()
	}
	start, ok := e.data.GetStartNode(mainPath, name)
	if !ok {
		return &UnknownEntryError{Program: mainPath, Entry: name}
	}
	e.stack = []frame{{id: start}}
	e.auto = auto
	if auto {
		return e.Run(ctx)
	}
	return nil
}

// ResumeAuto re-arms auto-execution and runs until the stack empties or a
// breakpoint halts it.
func (e *Executor) ResumeAuto(ctx context.Context) error {
	e.auto = true
	return e.Run(ctx)
}

// ResumeUntil arms a breakpoint at id, re-arms auto-execution, and runs.
func (e *Executor) ResumeUntil(ctx context.Context, id graph.AbsoluteNodeId) error {
	e.SetBreakpoint(id)
	return e.ResumeAuto(ctx)
}

// Run repeats Step while the stack is non-empty and auto-execution is set,
// halting (and clearing auto) if the current top equals the breakpoint,
// before that top executes (4.G "Loop").
func (e *Executor) Run(ctx context.Context) error {
	for e.auto && len(e.stack) > 0 {
		top := e.stack[len(e.stack)-1]
		if e.breakpoint != nil && top.id.Equal(*e.breakpoint) {
			e.auto = false
			return nil
		}
		if _, err := e.Step(ctx); err != nil {
			e.auto = false
			return err
		}
	}
	return nil
}

// Step executes exactly one node and advances the call stack accordingly
// (4.G "Step"). Returns done=true if the stack is empty afterward (either
// it already was, or this step's subroutine return emptied it).
func (e *Executor) Step(ctx context.Context) (done bool, err error) {
	if len(e.stack) == 0 {
		return true, nil
	}
	top := e.stack[len(e.stack)-1]
	node, ok := e.node(top)
	if !ok {
		return false, &graph.ResolutionError{Path: top.id.Program, What: "no such node"}
	}

	ec := &executionContext{ex: e, frameIndex: len(e.stack) - 1}
	spanCtx, span := e.startStepSpan(ctx, top, node)
	started := time.Now()
	branch, execErr := node.Execute(ec)
	e.stepDuration(spanCtx, started, node.Class().Name)
	if execErr != nil {
		e.recordStepError(spanCtx, span, execErr)
		return false, execErr
	}
	if span != nil {
		span.SetAttributes(observability.Int(observability.AttrNodeBranch, branch))
	}

	switch {
	case ec.finished:
		// FinishSubroutine emptied the stack: ordinary program termination.
	case ec.popped:
		// FinishSubroutine already advanced the caller past its call; nothing
		// further to do here.
	case ec.pushed:
		// A subroutine call pushed a new frame on top; remember the caller's
		// own branch choice for when the callee eventually returns.
		e.stack[len(e.stack)-2].pendingBranch = branch
	default:
		next, advErr := e.advanceFrom(top, branch)
		if advErr != nil {
			e.recordStepError(spanCtx, span, advErr)
			return false, advErr
		}
		e.stack = e.stack[:len(e.stack)-1]
		e.stack = append(e.stack, next)
	}
	e.endStepSpan(span)
	return len(e.stack) == 0, nil
}

// advanceFrom resolves the successor of (f, branch) via the branch edge
// table, synthesizing an implicit end node if none exists (4.G "Step":
// "if no successor exists, synthesize an implicit end node").
func (e *Executor) advanceFrom(f frame, branch int) (frame, error) {
	next, ok := e.data.GetNextNode(f.id, branch)
	if !ok {
		return frame{id: f.id, synthetic: stdlib.NewEndNode()}, nil
	}
	return frame{id: next}, nil
}

// effectiveInputSockets implements the subroutine-boundary substitution
// named in 4.G "Step": if a node's first declared input is a
// subroutine_input@<id> sentinel, the effective sockets are the referenced
// node's own output sockets.
func effectiveInputSockets(n graph.Node, data *program.Data) graph.Node {
	inputs := n.Inputs()
	if len(inputs) == 0 {
		return n
	}
	entry, ok := stdlib.SentinelEntry(inputs[0].Class)
	if !ok {
		return n
	}
	refNode, ok := data.GetNode(entry)
	if !ok {
		return n
	}
	outs := refNode.Outputs()
	eff := make([]graph.InputSocket, len(outs))
	for i, o := range outs {
		eff[i] = graph.InputSocket{Class: o.Class}
	}
	return effectiveInputsNode{Node: n, inputs: eff}
}

// effectiveInputsNode overrides Inputs() while delegating everything else
// to the wrapped node.
type effectiveInputsNode struct {
	graph.Node
	inputs []graph.InputSocket
}

func (e effectiveInputsNode) Inputs() []graph.InputSocket { return e.inputs }
