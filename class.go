// class.go — Component G: dunder dispatch & class resolution.
//
// Ported directly from original_source/mython/runtime.cpp's Class::GetMethod
// (own methods first, then recurse into the parent) and
// ClassInstance::Call (build one fresh flat closure with self + positional
// params, execute the body, no access to any outer scope).
package mython

// Method is one method of a Class: a name, its formal parameter names (not
// including the implicit self), and its body. The body is typed as Node
// rather than a concrete AST type so this file has no dependency on ast.go.
type Method struct {
	Name          string
	FormalParams  []string
	Body          Node
}

// Class is an immutable-after-construction class value: a non-empty name,
// its own methods in declaration order, and an optional non-owning parent
// reference (spec.md §3; the parent must outlive the class, guaranteed by
// the embedder keeping classes alive in a top-level scope for the whole
// program — see spec.md §9).
type Class struct {
	Name    string
	Methods []Method
	Parent  *Class
}

// NewClass constructs a class value. name must be non-empty per spec.md §3.
func NewClass(name string, methods []Method, parent *Class) *Class {
	return &Class{Name: name, Methods: methods, Parent: parent}
}

// GetMethod scans this class's own methods in declaration order, then
// recurses into the parent chain. Returns nil if no method named name
// exists anywhere in the chain.
func (c *Class) GetMethod(name string) *Method {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i]
		}
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil
}

// ClassInstance is a live object: a reference to its Class plus a field
// scope. The field scope's "self" entry is bound once, at construction, to
// a non-owning share of this very instance, and is never rebound.
type ClassInstance struct {
	Class  *Class
	Fields *Scope

	selfValue Value // backing storage so Fields["self"] can share it without heap games
}

// NewClassInstance constructs an instance of cls with an empty field map
// plus the mandatory self binding.
func NewClassInstance(cls *Class) *ClassInstance {
	inst := &ClassInstance{Class: cls, Fields: NewScope()}
	inst.selfValue = InstanceValue(inst)
	inst.Fields.Define("self", Share(&inst.selfValue))
	return inst
}

// HasMethod reports whether this instance's class chain defines method with
// exactly argCount formal parameters.
func (c *ClassInstance) HasMethod(method string, argCount int) bool {
	m := c.Class.GetMethod(method)
	return m != nil && len(m.FormalParams) == argCount
}

// Call invokes method with the given positional actual arguments. It
// builds a fresh flat scope containing self (shared) plus each formal
// parameter bound to its corresponding actual argument, executes the
// method body in that scope, and returns its result. Panics with a
// *RuntimeError if the instance has no such method at that arity — callers
// are expected to guard with HasMethod first, matching spec.md §4.2's
// "requires has_method(...)" precondition.
func (c *ClassInstance) Call(method string, args []ValueHolder, ctx Context) ValueHolder {
	if !c.HasMethod(method, len(args)) {
		failf("object has no method '%s' with %d argument(s)", method, len(args))
	}
	m := c.Class.GetMethod(method)

	scope := NewScope()
	scope.Define("self", Share(&c.selfValue))
	for i, name := range m.FormalParams {
		scope.Define(name, args[i])
	}
	return m.Body.Execute(scope, ctx)
}
