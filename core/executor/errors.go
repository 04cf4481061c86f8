package executor

import (
	"fmt"

	"github.com/nodegraph/ssvm/core/graph"
)

// NotRunningError reports an operation attempted against an executor with
// an empty call stack.
type NotRunningError struct{}

func (e *NotRunningError) Error() string { return "executor: no program is running" }

// UnresolvedSuccessorError reports a branch edge with no entry for
// (current, branch) and no way to synthesize an implicit end (the current
// frame is already a synthetic end node) — SPEC_FULL invariant 8.2/8.3.
type UnresolvedSuccessorError struct {
	Node   graph.AbsoluteNodeId
	Branch int
}

func (e *UnresolvedSuccessorError) Error() string {
	return fmt.Sprintf("executor: node %s has no successor for branch %d", e.Node, e.Branch)
}

// UnknownEntryError reports start_execution failing to find a start node
// for the requested entry name.
type UnknownEntryError struct {
	Program graph.ModulePath
	Entry   string
}

func (e *UnknownEntryError) Error() string {
	return fmt.Sprintf("executor: program %s has no entry point %q", e.Program, e.Entry)
}

