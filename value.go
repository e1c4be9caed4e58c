// value.go — Component C: the dynamic value model and its printing
// protocol (spec.md §3, §4.2).
//
// Grounded in original_source/mython/runtime.h/.cpp's ObjectHolder/Object
// hierarchy, reshaped into the teacher's tagged-union idiom
// (Value{Tag, Data} rather than a Go interface hierarchy — see
// daios-ai-msg/interpreter.go's Value/ValueTag). ValueHolder's Own/Share
// split is preserved for API fidelity with spec.md §3/§9 even though a
// single representation suffices under Go's GC; see SPEC_FULL.md §3.
package mython

import (
	"fmt"
	"io"
)

// ValueTag identifies which variant a Value holds.
type ValueTag int

const (
	TagNone ValueTag = iota
	TagBool
	TagNumber
	TagString
	TagClass
	TagInstance
)

func (t ValueTag) String() string {
	switch t {
	case TagNone:
		return "None"
	case TagBool:
		return "Bool"
	case TagNumber:
		return "Number"
	case TagString:
		return "String"
	case TagClass:
		return "Class"
	case TagInstance:
		return "ClassInstance"
	default:
		return "Unknown"
	}
}

// Value is the tagged union of every runtime value variant from spec.md §3.
// Data holds the Go-native payload for the tag: bool, int64, string,
// *Class, or *ClassInstance; it is unused (nil) for TagNone.
type Value struct {
	Tag  ValueTag
	Data any
}

func NoneValue() Value              { return Value{Tag: TagNone} }
func BoolValue(b bool) Value        { return Value{Tag: TagBool, Data: b} }
func NumberValue(n int64) Value     { return Value{Tag: TagNumber, Data: n} }
func StringValue(s string) Value    { return Value{Tag: TagString, Data: s} }
func ClassValue(c *Class) Value     { return Value{Tag: TagClass, Data: c} }
func InstanceValue(i *ClassInstance) Value { return Value{Tag: TagInstance, Data: i} }

func (v Value) AsBool() bool            { return v.Data.(bool) }
func (v Value) AsNumber() int64         { return v.Data.(int64) }
func (v Value) AsString() string        { return v.Data.(string) }
func (v Value) AsClass() *Class         { return v.Data.(*Class) }
func (v Value) AsInstance() *ClassInstance { return v.Data.(*ClassInstance) }

// Print renders v to w per spec.md §4.2's printing protocol.
func (v Value) Print(w io.Writer, ctx Context) {
	switch v.Tag {
	case TagNone:
		io.WriteString(w, "None")
	case TagBool:
		if v.AsBool() {
			io.WriteString(w, "True")
		} else {
			io.WriteString(w, "False")
		}
	case TagNumber:
		fmt.Fprintf(w, "%d", v.AsNumber())
	case TagString:
		io.WriteString(w, v.AsString())
	case TagClass:
		fmt.Fprintf(w, "Class %s", v.AsClass().Name)
	case TagInstance:
		inst := v.AsInstance()
		if inst.HasMethod("__str__", 0) {
			result := inst.Call("__str__", nil, ctx)
			result.Print(w, ctx)
			return
		}
		fmt.Fprintf(w, "%p", inst)
	}
}

// ValueHolder is the shared-ownership wrapper from spec.md §3. value == nil
// is the distinguished "null holder" state (distinct from a TagNone
// *value*, per spec.md §9's "Null-holder vs None-value"); both print as
// "None" and are both falsy.
type ValueHolder struct {
	value *Value
}

// Own returns a holder that owns a freshly created value.
func Own(v Value) ValueHolder {
	return ValueHolder{value: &v}
}

// Share returns a non-owning holder pointing at a value owned elsewhere.
// The caller must guarantee v outlives every holder built from it.
func Share(v *Value) ValueHolder {
	return ValueHolder{value: v}
}

// NullHolder returns the empty holder: no value at all.
func NullHolder() ValueHolder {
	return ValueHolder{}
}

// IsNull reports whether h is the null holder.
func (h ValueHolder) IsNull() bool {
	return h.value == nil
}

// Value returns the held value, or the None variant if h is the null
// holder — the two states print and compare alike per spec.md §9.
func (h ValueHolder) Value() Value {
	if h.value == nil {
		return NoneValue()
	}
	return *h.value
}

// Print renders h to w, routing null holders to the literal "None".
func (h ValueHolder) Print(w io.Writer, ctx Context) {
	if h.IsNull() {
		io.WriteString(w, "None")
		return
	}
	h.value.Print(w, ctx)
}
