package graph

// InputSocket describes one of a node's input ports: the class of object it
// expects to receive.
type InputSocket struct {
	Class Class
}

// OutputSocket describes one of a node's output ports: the class of object
// it produces.
type OutputSocket struct {
	Class Class
}

// ExecutionContext is the per-step handle a Node's Execute method uses to
// read its inputs, write its outputs, invoke subroutine call/return, and
// touch the executor's flat variable scope. It is declared here, alongside
// Node, rather than in the executor package: Node.Execute's signature needs
// it, and the executor package needs Node — putting the interface at the
// narrower consumer (Node) breaks what would otherwise be an import cycle.
// The executor package supplies the concrete implementation.
type ExecutionContext interface {
	// GetInputs returns the node's effective input values. A const input's
	// literal is parsed by the declared socket class's FromText; an input
	// with neither a written connection value nor a const is returned as
	// nil (no default is synthesized).
	GetInputs() ([]Object, error)
	// SetOutputs pushes values onto the node's output sockets, updating
	// every downstream connection.
	SetOutputs(values []Object)
	// ExecuteSubroutine pushes target onto the call stack and writes args
	// into target's output slots.
	ExecuteSubroutine(target AbsoluteNodeId, args []Object) error
	// FinishSubroutine pops the current frame and writes values into the
	// new top's (the caller's) output slots.
	FinishSubroutine(values []Object) error
	// SetVariable writes to the flat, process-scoped variable map.
	SetVariable(name string, value Object)
	// GetVariable reads from the flat variable map; ok is false when unset.
	GetVariable(name string) (Object, bool)
}

// Node is a single instance of a unit of computation. Implementations
// provide a capability contract: declared sockets, a branch count, and an
// execute hook that returns the index of the chosen outgoing branch.
type Node interface {
	// Class reports the node's owning class.
	Class() Class
	// Variants enumerates the names this node's SetVariant will accept,
	// ending with the node's current variant if AcceptsArbitraryVariants is
	// true and the current variant isn't one of the fixed names.
	Variants() []string
	// CurrentVariant reports the node's current self-description string.
	CurrentVariant() string
	// SetVariant updates the node's sub-operation/schema from text. Returns
	// an error if the variant is invalid and AcceptsArbitraryVariants is
	// false and the variant isn't one of Variants().
	SetVariant(variant string) error
	// AcceptsArbitraryVariants reports whether SetVariant accepts strings
	// outside the fixed Variants() list (used by self-describing nodes such
	// as print/array/start/end/subroutine, whose variant encodes a schema).
	AcceptsArbitraryVariants() bool
	// Inputs returns the node's current input socket list; may depend on
	// variant.
	Inputs() []InputSocket
	// Outputs returns the node's current output socket list; may depend on
	// variant.
	Outputs() []OutputSocket
	// Branches reports the number of outgoing branches (>= 1).
	Branches() int
	// Execute runs one step of this node and returns the chosen branch
	// index, in [0, Branches()).
	Execute(ctx ExecutionContext) (int, error)
	// Clone produces a fresh, independent node instance carrying the same
	// class and current variant, used by the loader when instantiating a
	// prototype node (4.E step 3).
	Clone() Node
}
