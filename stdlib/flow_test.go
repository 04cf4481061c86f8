package stdlib

import "testing"

func TestStartNode_VariantRoundTrip(t *testing.T) {
	n := NewStartNode()
	if err := n.SetVariant("start#main#[number, string]"); err != nil {
		t.Fatalf("SetVariant: %v", err)
	}
	if got, want := n.EntryName(), "main"; got != want {
		t.Fatalf("EntryName() = %q, want %q", got, want)
	}
	if got, want := n.CurrentVariant(), "start#main#[number, string]"; got != want {
		t.Fatalf("CurrentVariant() = %q, want %q", got, want)
	}
	if len(n.Outputs()) != 2 {
		t.Fatalf("Outputs() len = %d, want 2", len(n.Outputs()))
	}
}

func TestStartNode_Execute_PassesInputsThrough(t *testing.T) {
	n := NewStartNode()
	if err := n.SetVariant("start#main#[number]"); err != nil {
		t.Fatalf("SetVariant: %v", err)
	}
	ctx := newFakeContext(NumberObject(7))
	branch, err := n.Execute(ctx)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if branch != 0 {
		t.Fatalf("branch = %d, want 0", branch)
	}
	if len(ctx.outputs) != 1 || ctx.outputs[0] != NumberObject(7) {
		t.Fatalf("outputs = %v, want [7]", ctx.outputs)
	}
}

func TestEndNode_Execute_FinishesSubroutine(t *testing.T) {
	n := NewEndNode()
	if err := n.SetVariant("end[number]"); err != nil {
		t.Fatalf("SetVariant: %v", err)
	}
	ctx := newFakeContext(NumberObject(3))
	if _, err := n.Execute(ctx); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ctx.finishCalled {
		t.Fatalf("expected FinishSubroutine to be called")
	}
	if len(ctx.finishValues) != 1 || ctx.finishValues[0] != NumberObject(3) {
		t.Fatalf("finishValues = %v, want [3]", ctx.finishValues)
	}
}

func TestStartEndNode_SetVariant_Rejects(t *testing.T) {
	if err := NewStartNode().SetVariant("bogus"); err == nil {
		t.Fatalf("expected error for malformed start variant")
	}
	if err := NewEndNode().SetVariant("bogus"); err == nil {
		t.Fatalf("expected error for malformed end variant")
	}
}
