package layers

import "errors"

// Category is the declaration of one node of a hierarchy.
//
// Variant order is significant: it defines ordinal order. A category must
// not be changed once it has been compiled.
type Category struct {
	Name string
	// Root marks the category as eligible to be the outermost category of a
	// hierarchy. A Root category may not be nested anywhere.
	Root     bool
	Variants []Variant
}

// Variant is one named alternative of a Category.
//
// Payload is empty for a leaf, or holds exactly one *Category for a nested
// variant. Any other payload is rejected by Compile.
type Variant struct {
	Name    string
	Payload []any
}

// Leaf declares a payload free variant.
func Leaf(name string) Variant {
	return Variant{Name: name}
}

// Nested declares a variant carrying the whole range of sub.
func Nested(name string, sub *Category) Variant {
	return Variant{Name: name, Payload: []any{sub}}
}

// IsLeaf reports whether the variant is declared without a payload.
func (v Variant) IsLeaf() bool { return len(v.Payload) == 0 }

var (
	ErrInvalidCategory = errors.New("layers: invalid category")
	ErrInvalidVariant  = errors.New("layers: invalid variant")
	ErrNestedRoot      = errors.New("layers: root category nested in another category")
	ErrCycle           = errors.New("layers: category cycle")
	ErrCountOverflow   = errors.New("layers: count overflows uint64")

	ErrNotRoot       = errors.New("layers: category is not tagged root")
	ErrDuplicateRoot = errors.New("layers: root already registered")

	ErrUnknownVariant   = errors.New("layers: unknown variant")
	ErrVariantKind      = errors.New("layers: variant kind mismatch")
	ErrCategoryMismatch = errors.New("layers: value belongs to a different category")
	ErrInvalidValue     = errors.New("layers: invalid value")

	ErrLayoutMismatch = errors.New("layers: ordinal record layout does not match codec")
	ErrOrdinalRange   = errors.New("layers: ordinal out of range")

	// ErrInvariant is the panic value (wrapped) for states the compiled
	// tables make impossible.
	ErrInvariant = errors.New("layers: internal invariant violated")
)
