package layers

import "strings"

// Value is one inhabited value of a compiled category: a variant, plus the
// nested value when the variant is nested.
//
// Values are only produced by a Codec (Leaf, Wrap, Lookup, Decode), so a
// value of an uninhabited category can not exist. The zero Value is invalid.
type Value struct {
	codec   *Codec
	variant int
	inner   *Value
}

// IsValid reports whether v was produced by a codec.
func (v Value) IsValid() bool { return v.codec != nil }

// Category returns the name of the category v belongs to.
func (v Value) Category() string {
	if v.codec == nil {
		return ""
	}
	return v.codec.name
}

// Variant returns the name of v's variant.
func (v Value) Variant() string {
	if v.codec == nil {
		return ""
	}
	return v.codec.variants[v.variant].name
}

// Inner returns the nested value. It reports false for a leaf.
func (v Value) Inner() (Value, bool) {
	if v.inner == nil {
		return Value{}, false
	}
	return *v.inner, true
}

// Ordinal encodes v. It panics for the zero Value.
func (v Value) Ordinal() uint64 {
	if v.codec == nil {
		invariantf("ordinal of zero value")
	}
	e := &v.codec.variants[v.variant]
	if e.sub == nil {
		return e.start
	}
	if v.inner == nil {
		invariantf("%s::%s has no nested value", v.codec.name, e.name)
	}
	return e.start + v.inner.Ordinal()
}

// Path returns the variant names from the outermost category inwards.
func (v Value) Path() []string {
	var path []string
	for cur := &v; cur != nil && cur.codec != nil; cur = cur.inner {
		path = append(path, cur.codec.variants[cur.variant].name)
	}
	return path
}

// Equal reports whether v and o are the same value of the same category
// declaration.
func (v Value) Equal(o Value) bool {
	if v.codec == nil || o.codec == nil {
		return v.codec == nil && o.codec == nil
	}
	if v.codec.decl != o.codec.decl || v.variant != o.variant {
		return false
	}
	if v.inner == nil || o.inner == nil {
		return v.inner == nil && o.inner == nil
	}
	return v.inner.Equal(*o.inner)
}

// Next returns the value with the following ordinal, if there is one.
func (v Value) Next() (Value, bool) {
	return v.codec.Decode(v.Ordinal() + 1)
}

// String renders v as nested variant names, eg Ui(Canvas(Rectangles)).
func (v Value) String() string {
	if v.codec == nil {
		return "<invalid>"
	}
	path := v.Path()
	return strings.Join(path, "(") + strings.Repeat(")", len(path)-1)
}
