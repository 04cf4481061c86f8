package stdlib

import (
	"testing"

	"github.com/nodegraph/ssvm/core/graph"
)

func TestAnyObject_Cast(t *testing.T) {
	a := NewAny("3.5")
	obj, err := a.Cast(numberClass)
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	n, ok := obj.(NumberObject)
	if !ok || n != 3.5 {
		t.Fatalf("Cast result = %v, want NumberObject(3.5)", obj)
	}

	sentinel := subroutineInputSentinel(graph.AbsoluteNodeId{Program: graph.NewModulePath("main"), Node: 1})
	if _, err := NewAny("x").Cast(sentinel); err == nil {
		t.Fatalf("expected error casting to a class with no from-text parser")
	}
}

func TestBoolClass_FromText(t *testing.T) {
	tests := []struct {
		text    string
		want    bool
		wantErr bool
	}{
		{text: "true", want: true},
		{text: "false", want: false},
		{text: "not-a-bool", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			obj, err := boolClass.FromText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if obj.(BoolObject) != BoolObject(tt.want) {
				t.Fatalf("FromText(%q) = %v, want %v", tt.text, obj, tt.want)
			}
		})
	}
}

func TestNumberNode_Execute_CoercesAny(t *testing.T) {
	n := NewNumberNode()
	ctx := newFakeContext(NewAny("2.5"))
	if _, err := n.Execute(ctx); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ctx.outputs) != 1 || ctx.outputs[0] != NumberObject(2.5) {
		t.Fatalf("outputs = %v, want [2.5]", ctx.outputs)
	}
}

func TestStringNode_Execute_RendersText(t *testing.T) {
	n := NewStringNode()
	ctx := newFakeContext(NumberObject(9))
	if _, err := n.Execute(ctx); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ctx.outputs) != 1 || ctx.outputs[0] != StringObject("9") {
		t.Fatalf("outputs = %v, want [\"9\"]", ctx.outputs)
	}
}
