// integration_test.go — spec.md §8's end-to-end scenarios. The Parser is
// out of scope (spec.md §1), so each scenario's source is reproduced as a
// hand-built AST rather than parsed from text; the Lexer is exercised
// separately in lexer_test.go.
package mython

import (
	"strings"
	"testing"
)

func runProgram(t *testing.T, program Node) string {
	t.Helper()
	var b strings.Builder
	ctx := NewContext(&b)
	scope := NewScope()
	if err := Run(program, scope, ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b.String()
}

// S1: print 57 -> "57\n"
func Test_Scenario_S1_PrintNumber(t *testing.T) {
	out := runProgram(t, &Print{Items: []Node{&NumericConst{Value: 57}}})
	if out != "57\n" {
		t.Fatalf("got %q, want %q", out, "57\n")
	}
}

// S2: x = "hello"\nprint x, 42, None -> "hello 42 None\n"
func Test_Scenario_S2_AssignThenPrintMixed(t *testing.T) {
	program := &Compound{Statements: []Node{
		&Assignment{Name: "x", RHS: &StringConst{Value: "hello"}},
		&Print{Items: []Node{
			&VariableValue{Path: []string{"x"}},
			&NumericConst{Value: 42},
			&NoneConst{},
		}},
	}}
	out := runProgram(t, program)
	if out != "hello 42 None\n" {
		t.Fatalf("got %q, want %q", out, "hello 42 None\n")
	}
}

// S3: class A:\n  def __str__(self):\n    return "a"\nprint A() -> "a\n"
func Test_Scenario_S3_ClassWithStr(t *testing.T) {
	classA := NewClass("A", []Method{
		{Name: "__str__", FormalParams: nil, Body: &MethodBody{Body: &Return{Expr: &StringConst{Value: "a"}}}},
	}, nil)
	program := &Compound{Statements: []Node{
		&ClassDefinition{ClassValue: classA},
		&Print{Items: []Node{
			&NewInstance{ClassExpr: &VariableValue{Path: []string{"A"}}},
		}},
	}}
	out := runProgram(t, program)
	if out != "a\n" {
		t.Fatalf("got %q, want %q", out, "a\n")
	}
}

// S4: class B:\n  def __add__(self, r):\n    return "B+" + r\nprint B() + "x" -> "B+x\n"
func Test_Scenario_S4_ClassWithAdd(t *testing.T) {
	classB := NewClass("B", []Method{
		{Name: "__add__", FormalParams: []string{"r"}, Body: &MethodBody{Body: &Return{
			Expr: NewAdd(&StringConst{Value: "B+"}, &VariableValue{Path: []string{"r"}}),
		}}},
	}, nil)
	program := &Compound{Statements: []Node{
		&ClassDefinition{ClassValue: classB},
		&Print{Items: []Node{
			NewAdd(&NewInstance{ClassExpr: &VariableValue{Path: []string{"B"}}}, &StringConst{Value: "x"}),
		}},
	}}
	out := runProgram(t, program)
	if out != "B+x\n" {
		t.Fatalf("got %q, want %q", out, "B+x\n")
	}
}

// S5: x = 10\nif x > 3:\n  print "big"\nelse:\n  print "small" -> "big\n"
func Test_Scenario_S5_IfElse(t *testing.T) {
	program := &Compound{Statements: []Node{
		&Assignment{Name: "x", RHS: &NumericConst{Value: 10}},
		&IfElse{
			Cond: &Comparison{Op: CmpGreater, Left: &VariableValue{Path: []string{"x"}}, Right: &NumericConst{Value: 3}},
			Then: &Print{Items: []Node{&StringConst{Value: "big"}}},
			Else: &Print{Items: []Node{&StringConst{Value: "small"}}},
		},
	}}
	out := runProgram(t, program)
	if out != "big\n" {
		t.Fatalf("got %q, want %q", out, "big\n")
	}
}

// S6: class C:\n  def f(self):\n    return 1\n    print "unreachable"\nprint C().f() -> "1\n"
func Test_Scenario_S6_ReturnSkipsUnreachable(t *testing.T) {
	classC := NewClass("C", []Method{
		{Name: "f", FormalParams: nil, Body: &MethodBody{Body: &Compound{Statements: []Node{
			&Return{Expr: &NumericConst{Value: 1}},
			&Print{Items: []Node{&StringConst{Value: "unreachable"}}},
		}}}},
	}, nil)
	program := &Compound{Statements: []Node{
		&ClassDefinition{ClassValue: classC},
		&Print{Items: []Node{
			&MethodCall{Obj: &NewInstance{ClassExpr: &VariableValue{Path: []string{"C"}}}, Name: "f"},
		}},
	}}
	out := runProgram(t, program)
	if out != "1\n" {
		t.Fatalf("got %q, want %q", out, "1\n")
	}
}

// Negative: print 1 + "a" -> runtime error.
func Test_Scenario_Negative_AddNumberAndString(t *testing.T) {
	program := &Print{Items: []Node{NewAdd(&NumericConst{Value: 1}, &StringConst{Value: "a"})}}
	var b strings.Builder
	err := Run(program, NewScope(), NewContext(&b))
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
}

// Negative: print 1/0 -> runtime error.
func Test_Scenario_Negative_DivisionByZero(t *testing.T) {
	program := &Print{Items: []Node{NewDiv(&NumericConst{Value: 1}, &NumericConst{Value: 0})}}
	var b strings.Builder
	err := Run(program, NewScope(), NewContext(&b))
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
}

// Negative: print undef -> runtime error.
func Test_Scenario_Negative_UndefinedName(t *testing.T) {
	program := &Print{Items: []Node{&VariableValue{Path: []string{"undef"}}}}
	var b strings.Builder
	err := Run(program, NewScope(), NewContext(&b))
	if err == nil {
		t.Fatalf("expected a runtime error")
	}
}

// Negative: "ab\q" -> lexer error.
func Test_Scenario_Negative_BadEscapeInStringLiteral(t *testing.T) {
	_, err := NewLexerFromString(`"ab\q"`)
	if err == nil {
		t.Fatalf("expected a lexer error")
	}
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
}

// Property 7: method resolution picks the nearest override in the parent chain.
func Test_Property_MethodResolution_NearestOverrideWins(t *testing.T) {
	base := NewClass("Base", []Method{
		{Name: "m", FormalParams: nil, Body: &MethodBody{Body: &Return{Expr: &StringConst{Value: "base"}}}},
	}, nil)
	derived := NewClass("Derived", []Method{
		{Name: "m", FormalParams: nil, Body: &MethodBody{Body: &Return{Expr: &StringConst{Value: "derived"}}}},
	}, base)
	inst := NewClassInstance(derived)
	result := inst.Call("m", nil, NewContext(new(discard)))
	if result.Value().AsString() != "derived" {
		t.Fatalf("got %q, want %q", result.Value().AsString(), "derived")
	}
}
