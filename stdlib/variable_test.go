package stdlib

import "testing"

func TestVariableSetThenGet(t *testing.T) {
	setNode := NewVariableSetNode("")
	if err := setNode.SetVariant("variable:counter"); err != nil {
		t.Fatalf("SetVariant: %v", err)
	}
	setCtx := newFakeContext(NumberObject(42))
	if _, err := setNode.Execute(setCtx); err != nil {
		t.Fatalf("Execute(set): %v", err)
	}

	getNode := NewVariableGetNode("")
	if err := getNode.SetVariant("variable:counter"); err != nil {
		t.Fatalf("SetVariant: %v", err)
	}
	getCtx := newFakeContext()
	getCtx.vars = setCtx.vars
	if _, err := getNode.Execute(getCtx); err != nil {
		t.Fatalf("Execute(get): %v", err)
	}
	if len(getCtx.outputs) != 1 || getCtx.outputs[0] != NumberObject(42) {
		t.Fatalf("outputs = %v, want [42]", getCtx.outputs)
	}
}

func TestVariableGetNode_Execute_UnsetIsError(t *testing.T) {
	n := NewVariableGetNode("")
	if err := n.SetVariant("variable:missing"); err != nil {
		t.Fatalf("SetVariant: %v", err)
	}
	if _, err := n.Execute(newFakeContext()); err == nil {
		t.Fatalf("expected error reading unset variable")
	}
}
