// ast.go — Component E: the AST node set (spec.md §4.3).
//
// Each node is a small data-only struct; the Parser (out of scope per
// spec.md §1) is responsible for constructing trees of these. Execution
// follows the teacher's panic/recover control-flow idiom described in
// control.go.
package mython

import (
	"io"
	"strings"
)

// NumericConst, StringConst, BoolConst, NoneConst — spec.md §4.3: each
// returns a newly owned value.

type NumericConst struct{ Value int64 }

func (n *NumericConst) Execute(scope *Scope, ctx Context) ValueHolder {
	return Own(NumberValue(n.Value))
}

type StringConst struct{ Value string }

func (n *StringConst) Execute(scope *Scope, ctx Context) ValueHolder {
	return Own(StringValue(n.Value))
}

type BoolConst struct{ Value bool }

func (n *BoolConst) Execute(scope *Scope, ctx Context) ValueHolder {
	return Own(BoolValue(n.Value))
}

type NoneConst struct{}

func (n *NoneConst) Execute(scope *Scope, ctx Context) ValueHolder {
	return Own(NoneValue())
}

// VariableValue resolves a single name or a dotted path (spec.md §4.3):
// "a.b.c" looks up "a" in scope, then descends into successive instances'
// field scopes.
type VariableValue struct {
	Path []string // len == 1 for a plain name
}

func (n *VariableValue) Execute(scope *Scope, ctx Context) ValueHolder {
	if len(n.Path) == 0 {
		fail("empty variable path")
	}
	h, ok := scope.Get(n.Path[0])
	if !ok {
		failf("name '%s' is not defined", n.Path[0])
	}
	for _, field := range n.Path[1:] {
		v := h.Value()
		if v.Tag != TagInstance {
			failf("'%s' is not an object and has no field '%s'", n.Path[0], field)
		}
		next, ok := v.AsInstance().Fields.Get(field)
		if !ok {
			failf("object has no field '%s'", field)
		}
		h = next
	}
	return h
}

// Assignment binds a plain name in scope to the evaluated rhs and returns a
// share of the bound value.
type Assignment struct {
	Name string
	RHS  Node
}

func (n *Assignment) Execute(scope *Scope, ctx Context) ValueHolder {
	result := n.RHS.Execute(scope, ctx)
	v := result.Value()
	scope.Define(n.Name, Own(v))
	shared, _ := scope.Get(n.Name)
	return shared
}

// FieldAssignment resolves ObjectPath to an instance and sets Field on it
// to the evaluated RHS, evaluating RHS exactly once (spec.md §9 fixes the
// original's double-evaluation bug here).
type FieldAssignment struct {
	ObjectPath []string
	Field      string
	RHS        Node
}

func (n *FieldAssignment) Execute(scope *Scope, ctx Context) ValueHolder {
	target := (&VariableValue{Path: n.ObjectPath}).Execute(scope, ctx)
	tv := target.Value()
	if tv.Tag != TagInstance {
		fail("field assignment target is not an object")
	}
	inst := tv.AsInstance()

	result := n.RHS.Execute(scope, ctx)
	v := result.Value()
	inst.Fields.Define(n.Field, Own(v))
	stored, _ := inst.Fields.Get(n.Field)
	return stored
}

// arithmetic operator kind, shared by Add/Sub/Mult/Div.
type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMult
	opDiv
)

type binaryArith struct {
	Op    arithOp
	Left  Node
	Right Node
}

func (n *binaryArith) Execute(scope *Scope, ctx Context) ValueHolder {
	l := n.Left.Execute(scope, ctx)
	r := n.Right.Execute(scope, ctx)
	lv := l.Value()

	if n.Op == opAdd && lv.Tag == TagString {
		rv := r.Value()
		if rv.Tag != TagString {
			fail("cannot add a String and a non-String")
		}
		return Own(StringValue(lv.AsString() + rv.AsString()))
	}

	if n.Op == opAdd && lv.Tag == TagInstance {
		inst := lv.AsInstance()
		if !inst.HasMethod("__add__", 1) {
			fail("class instance has no __add__ method")
		}
		return inst.Call("__add__", []ValueHolder{r}, ctx)
	}

	rv := r.Value()
	if lv.Tag != TagNumber || rv.Tag != TagNumber {
		fail("arithmetic requires two Numbers")
	}
	a, b := lv.AsNumber(), rv.AsNumber()
	switch n.Op {
	case opAdd:
		return Own(NumberValue(a + b))
	case opSub:
		return Own(NumberValue(a - b))
	case opMult:
		return Own(NumberValue(a * b))
	case opDiv:
		if b == 0 {
			fail("division by zero")
		}
		return Own(NumberValue(a / b)) // truncates toward zero on int64, per SPEC_FULL.md §9
	}
	panic("unreachable arithOp")
}

func NewAdd(l, r Node) Node  { return &binaryArith{Op: opAdd, Left: l, Right: r} }
func NewSub(l, r Node) Node  { return &binaryArith{Op: opSub, Left: l, Right: r} }
func NewMult(l, r Node) Node { return &binaryArith{Op: opMult, Left: l, Right: r} }
func NewDiv(l, r Node) Node  { return &binaryArith{Op: opDiv, Left: l, Right: r} }

// Or is short-circuit: if Left is truthy, return Bool(true) without
// evaluating Right; otherwise return Bool(truthy(Right)).
type Or struct {
	Left, Right Node
}

func (n *Or) Execute(scope *Scope, ctx Context) ValueHolder {
	l := n.Left.Execute(scope, ctx)
	if Truthy(l) {
		return Own(BoolValue(true))
	}
	r := n.Right.Execute(scope, ctx)
	return Own(BoolValue(Truthy(r)))
}

// And is Or's short-circuit dual.
type And struct {
	Left, Right Node
}

func (n *And) Execute(scope *Scope, ctx Context) ValueHolder {
	l := n.Left.Execute(scope, ctx)
	if !Truthy(l) {
		return Own(BoolValue(false))
	}
	r := n.Right.Execute(scope, ctx)
	return Own(BoolValue(Truthy(r)))
}

// Not returns Bool(!truthy(x)).
type Not struct {
	Operand Node
}

func (n *Not) Execute(scope *Scope, ctx Context) ValueHolder {
	return Own(BoolValue(!Truthy(n.Operand.Execute(scope, ctx))))
}

// CompareOp identifies which of the six comparisons a Comparison node
// applies.
type CompareOp int

const (
	CmpEqual CompareOp = iota
	CmpNotEqual
	CmpLess
	CmpLessOrEqual
	CmpGreater
	CmpGreaterOrEqual
)

// Comparison applies one of the six comparison operators and returns a
// Bool.
type Comparison struct {
	Op          CompareOp
	Left, Right Node
}

func (n *Comparison) Execute(scope *Scope, ctx Context) ValueHolder {
	l := n.Left.Execute(scope, ctx)
	r := n.Right.Execute(scope, ctx)
	var result bool
	switch n.Op {
	case CmpEqual:
		result = Equal(l, r, ctx)
	case CmpNotEqual:
		result = NotEqual(l, r, ctx)
	case CmpLess:
		result = Less(l, r, ctx)
	case CmpLessOrEqual:
		result = LessOrEqual(l, r, ctx)
	case CmpGreater:
		result = Greater(l, r, ctx)
	case CmpGreaterOrEqual:
		result = GreaterOrEqual(l, r, ctx)
	}
	return Own(BoolValue(result))
}

// Stringify evaluates Operand, prints it via the value's own printing
// protocol into a buffer, and returns a new String holding that buffer. A
// null holder becomes "None".
type Stringify struct {
	Operand Node
}

func (n *Stringify) Execute(scope *Scope, ctx Context) ValueHolder {
	h := n.Operand.Execute(scope, ctx)
	var b strings.Builder
	h.Print(&b, ctx)
	return Own(StringValue(b.String()))
}

// IfElse evaluates Cond, reduces it via Truthy, and executes the matching
// branch. Else may be nil.
type IfElse struct {
	Cond Node
	Then Node
	Else Node
}

func (n *IfElse) Execute(scope *Scope, ctx Context) ValueHolder {
	if Truthy(n.Cond.Execute(scope, ctx)) {
		return n.Then.Execute(scope, ctx)
	}
	if n.Else != nil {
		return n.Else.Execute(scope, ctx)
	}
	return NullHolder()
}

// Compound executes each statement in order and returns the null holder.
type Compound struct {
	Statements []Node
}

func (n *Compound) Execute(scope *Scope, ctx Context) ValueHolder {
	for _, stmt := range n.Statements {
		stmt.Execute(scope, ctx)
	}
	return NullHolder()
}

// Return evaluates Expr, then performs the non-local exit described in
// control.go and spec.md §5.
type Return struct {
	Expr Node
}

func (n *Return) Execute(scope *Scope, ctx Context) ValueHolder {
	var v ValueHolder
	if n.Expr != nil {
		v = n.Expr.Execute(scope, ctx)
	} else {
		v = Own(NoneValue())
	}
	panic(returnSignal{value: v})
}

// MethodBody executes Body and catches the non-local return transfer,
// yielding its carried value. On normal completion it returns the null
// holder (spec.md §4.2: "If the method has no explicit return, the result
// is None").
type MethodBody struct {
	Body Node
}

func (n *MethodBody) Execute(scope *Scope, ctx Context) (result ValueHolder) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if sig, ok := r.(returnSignal); ok {
			result = sig.value
			return
		}
		panic(r)
	}()
	n.Body.Execute(scope, ctx)
	return NullHolder()
}

// ClassDefinition binds ClassValue's name in the current scope to the
// class value itself.
type ClassDefinition struct {
	ClassValue *Class
}

func (n *ClassDefinition) Execute(scope *Scope, ctx Context) ValueHolder {
	scope.Define(n.ClassValue.Name, Own(ClassValue(n.ClassValue)))
	return NullHolder()
}

// NewInstance constructs an instance of ClassExpr. If the class has an
// __init__ at the matching arity, it is invoked with the evaluated Args.
// Returns a share of the new instance.
type NewInstance struct {
	ClassExpr Node
	Args      []Node
}

func (n *NewInstance) Execute(scope *Scope, ctx Context) ValueHolder {
	cv := n.ClassExpr.Execute(scope, ctx).Value()
	if cv.Tag != TagClass {
		fail("cannot instantiate a non-class value")
	}
	inst := NewClassInstance(cv.AsClass())

	args := make([]ValueHolder, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.Execute(scope, ctx)
	}
	if inst.HasMethod("__init__", len(args)) {
		inst.Call("__init__", args, ctx)
	}
	return Share(&inst.selfValue)
}

// MethodCall evaluates Obj, evaluates Args left-to-right, and invokes
// obj.Call(Name, args, ctx) if Obj is an instance with Name defined at
// matching arity; otherwise returns the null holder (spec.md §4.3).
type MethodCall struct {
	Obj  Node
	Name string
	Args []Node
}

func (n *MethodCall) Execute(scope *Scope, ctx Context) ValueHolder {
	ov := n.Obj.Execute(scope, ctx).Value()

	args := make([]ValueHolder, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.Execute(scope, ctx)
	}

	if ov.Tag != TagInstance {
		return NullHolder()
	}
	inst := ov.AsInstance()
	if !inst.HasMethod(n.Name, len(args)) {
		return NullHolder()
	}
	return inst.Call(n.Name, args, ctx)
}

// Print evaluates each Item left-to-right and writes them to ctx's output,
// separated by a single space and followed by a single newline. A
// zero-item Print emits just the newline.
type Print struct {
	Items []Node
}

func (n *Print) Execute(scope *Scope, ctx Context) ValueHolder {
	w := ctx.Output()
	for i, item := range n.Items {
		if i > 0 {
			io.WriteString(w, " ")
		}
		item.Execute(scope, ctx).Print(w, ctx)
	}
	io.WriteString(w, "\n")
	return NullHolder()
}
