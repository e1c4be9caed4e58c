// compare.go — Component D: comparison & truthiness helpers.
//
// Ported directly from original_source/mython/runtime.cpp's IsTrue, Equal,
// Less and their four derived comparisons.
package mython

// Truthy implements spec.md §4.2's truthiness rule: the null holder and
// None are falsy; String is truthy iff non-empty; Number is truthy iff
// non-zero; Bool is its own value; everything else (including every
// ClassInstance) is falsy.
func Truthy(h ValueHolder) bool {
	if h.IsNull() {
		return false
	}
	v := h.Value()
	switch v.Tag {
	case TagString:
		return v.AsString() != ""
	case TagNumber:
		return v.AsNumber() != 0
	case TagBool:
		return v.AsBool()
	default:
		return false
	}
}

// Equal implements spec.md §4.4's equal(l, r, ctx). Null holders compare
// via their None value (spec.md §9: the null holder and a None value print
// and behave alike), so "both null-holder" falls out of the TagNone case
// below rather than needing a special branch.
func Equal(l, r ValueHolder, ctx Context) bool {
	lv, rv := l.Value(), r.Value()
	if lv.Tag == rv.Tag {
		switch lv.Tag {
		case TagNone:
			return true
		case TagString:
			return lv.AsString() == rv.AsString()
		case TagNumber:
			return lv.AsNumber() == rv.AsNumber()
		case TagBool:
			return lv.AsBool() == rv.AsBool()
		}
	}
	if lv.Tag == TagInstance {
		inst := lv.AsInstance()
		if inst.HasMethod("__eq__", 1) {
			return Truthy(inst.Call("__eq__", []ValueHolder{r}, ctx))
		}
	}
	fail("cannot compare objects for equality")
	panic("unreachable")
}

// Less implements spec.md §4.4's less(l, r, ctx).
func Less(l, r ValueHolder, ctx Context) bool {
	lv, rv := l.Value(), r.Value()
	if lv.Tag == rv.Tag {
		switch lv.Tag {
		case TagString:
			return lv.AsString() < rv.AsString()
		case TagNumber:
			return lv.AsNumber() < rv.AsNumber()
		case TagBool:
			return !lv.AsBool() && rv.AsBool()
		}
	}
	if lv.Tag == TagInstance {
		inst := lv.AsInstance()
		if inst.HasMethod("__lt__", 1) {
			return Truthy(inst.Call("__lt__", []ValueHolder{r}, ctx))
		}
	}
	fail("cannot compare objects for order")
	panic("unreachable")
}

func NotEqual(l, r ValueHolder, ctx Context) bool      { return !Equal(l, r, ctx) }
func Greater(l, r ValueHolder, ctx Context) bool       { return !Less(l, r, ctx) && !Equal(l, r, ctx) }
func LessOrEqual(l, r ValueHolder, ctx Context) bool   { return Less(l, r, ctx) || Equal(l, r, ctx) }
func GreaterOrEqual(l, r ValueHolder, ctx Context) bool { return !Less(l, r, ctx) }
