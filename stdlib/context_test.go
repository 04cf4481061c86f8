package stdlib

import "github.com/nodegraph/ssvm/core/graph"

// fakeContext is a minimal graph.ExecutionContext for exercising a single
// node's Execute in isolation, without a full executor/program.Data.
type fakeContext struct {
	inputs  []graph.Object
	outputs []graph.Object
	vars    map[string]graph.Object

	subroutineTarget graph.AbsoluteNodeId
	subroutineArgs   []graph.Object
	subroutineCalled bool

	finishValues []graph.Object
	finishCalled bool
}

func newFakeContext(inputs ...graph.Object) *fakeContext {
	return &fakeContext{inputs: inputs, vars: make(map[string]graph.Object)}
}

func (c *fakeContext) GetInputs() ([]graph.Object, error) { return c.inputs, nil }
func (c *fakeContext) SetOutputs(values []graph.Object)   { c.outputs = values }

func (c *fakeContext) ExecuteSubroutine(target graph.AbsoluteNodeId, args []graph.Object) error {
	c.subroutineTarget = target
	c.subroutineArgs = args
	c.subroutineCalled = true
	return nil
}

func (c *fakeContext) FinishSubroutine(values []graph.Object) error {
	c.finishValues = values
	c.finishCalled = true
	return nil
}

func (c *fakeContext) SetVariable(name string, value graph.Object) { c.vars[name] = value }

func (c *fakeContext) GetVariable(name string) (graph.Object, bool) {
	v, ok := c.vars[name]
	return v, ok
}
