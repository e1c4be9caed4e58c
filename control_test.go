package mython

import (
	"strings"
	"testing"
)

func Test_Run_ReturnsNilOnNormalCompletion(t *testing.T) {
	var b strings.Builder
	ctx := NewContext(&b)
	scope := NewScope()
	err := Run(&Print{Items: []Node{&NumericConst{Value: 1}}}, scope, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "1\n" {
		t.Fatalf("got %q", b.String())
	}
}

func Test_Run_RecoversRuntimeErrorIntoReturnedError(t *testing.T) {
	var b strings.Builder
	ctx := NewContext(&b)
	scope := NewScope()
	err := Run(&VariableValue{Path: []string{"undef"}}, scope, ctx)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
}

func Test_Run_BareTopLevelReturn_IsNotAnError(t *testing.T) {
	var b strings.Builder
	ctx := NewContext(&b)
	scope := NewScope()
	err := Run(&Return{Expr: &NumericConst{Value: 1}}, scope, ctx)
	if err != nil {
		t.Fatalf("a bare top-level return must not surface as an error, got %v", err)
	}
}
