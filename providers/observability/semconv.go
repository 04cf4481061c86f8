package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Node Attributes ---

const (
	// AttrNodeClass is the name of a node's class (e.g. "print").
	AttrNodeClass = "node.class"

	// AttrNodeID is the absolute node id ("<program_path>@<node_id>").
	AttrNodeID = "node.id"

	// AttrNodeVariant is a node's current variant string.
	AttrNodeVariant = "node.variant"

	// AttrNodeBranch is the branch index a step chose to follow.
	AttrNodeBranch = "node.branch"
)

// --- Program Attributes ---

const (
	// AttrProgramPath is the module path of a loaded program.
	AttrProgramPath = "program.path"

	// AttrEntryName is the entry name an execution started from.
	AttrEntryName = "entry.name"

	// AttrStackDepth is the call stack depth at a given step.
	AttrStackDepth = "stack.depth"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrErrorType is the error type/class
	AttrErrorType = "error.type"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the description given with a span status
	AttrStatusDescription = "status.description"
)

// --- Span Names ---

const (
	// SpanExecutorStep is the span name for one Executor.Step call.
	SpanExecutorStep = "executor.step"

	// SpanStartExecution is the span name for Executor.StartExecution.
	SpanStartExecution = "executor.start_execution"
)

// --- Counter/Histogram Names ---

const (
	// MetricExecutorSteps counts Step calls that execute a node; it is
	// incremented as the step's span opens, so failing steps are counted too.
	MetricExecutorSteps = "executor.steps"

	// MetricExecutorStepErrors counts Step calls that returned an error.
	MetricExecutorStepErrors = "executor.step_errors"

	// MetricExecutorStepDuration records how long one Execute call took, in
	// milliseconds.
	MetricExecutorStepDuration = "executor.step.duration_ms"
)
