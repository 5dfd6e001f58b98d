package layers

import (
	"sort"

	"github.com/google/uuid"
)

// Codec converts between the values of one compiled category and their
// ordinals. A Codec is immutable and safe for concurrent use.
type Codec struct {
	decl        *Category
	name        string
	root        bool
	count       uint64
	variants    []variantEntry
	byName      map[string]int
	fingerprint uuid.UUID
}

// variantEntry is the precomputed range [start, end) of one variant. sub is
// nil for a leaf.
type variantEntry struct {
	name  string
	start uint64
	end   uint64
	sub   *Codec
}

// VariantInfo describes one row of a codec's size and offset table.
type VariantInfo struct {
	Name  string
	Start uint64
	Size  uint64
	// Nested is the name of the nested category, empty for a leaf.
	Nested string
}

func (c *Codec) Name() string { return c.name }

// IsRoot reports whether the category was tagged Root when compiled.
func (c *Codec) IsRoot() bool { return c.root }

// Count is the number of ordinals of the category. Zero means the category is
// uninhabited.
func (c *Codec) Count() uint64 { return c.count }

// Variants returns the size and offset table in declaration order.
func (c *Codec) Variants() []VariantInfo {
	infos := make([]VariantInfo, 0, len(c.variants))
	for _, e := range c.variants {
		info := VariantInfo{Name: e.name, Start: e.start, Size: e.end - e.start}
		if e.sub != nil {
			info.Nested = e.sub.name
		}
		infos = append(infos, info)
	}
	return infos
}

// Sub returns the codec of the category nested in the named variant. Its
// ordinals start at 0 regardless of where it is embedded.
func (c *Codec) Sub(variant string) (*Codec, bool) {
	i, ok := c.byName[variant]
	if !ok || c.variants[i].sub == nil {
		return nil, false
	}
	return c.variants[i].sub, true
}

// Encode returns the ordinal of v.
//
// v must be a value of this category. Passing the zero Value, or a value of
// another category, is a programming error and panics.
func (c *Codec) Encode(v Value) uint64 {
	c.mustOwn("encode", v)
	return v.Ordinal()
}

// mustOwn panics unless v is a value of c's category declaration.
func (c *Codec) mustOwn(op string, v Value) {
	if v.codec == nil {
		invariantf("%s %s: zero value", op, c.name)
	}
	if v.codec.decl != c.decl {
		invariantf("%s %s: value of category %s", op, c.name, v.codec.name)
	}
}

// Decode returns the value whose ordinal is n. It reports false when n is
// not in [0, Count).
func (c *Codec) Decode(n uint64) (Value, bool) {
	if n >= c.count {
		return Value{}, false
	}

	// Ends are non decreasing, and n < c.count is the last end, so the first
	// variant whose end exceeds n exists and has a non empty range holding n.
	i := sort.Search(len(c.variants), func(i int) bool { return c.variants[i].end > n })
	e := &c.variants[i]

	if e.sub == nil {
		if n != e.start {
			invariantf("decode %s(%d): leaf %s has start %d", c.name, n, e.name, e.start)
		}
		return Value{codec: c, variant: i}, true
	}

	inner, ok := e.sub.Decode(n - e.start)
	if !ok {
		invariantf("decode %s(%d): %s has no value at %d", c.name, n, e.sub.name, n-e.start)
	}
	return Value{codec: c, variant: i, inner: &inner}, true
}

// Leaf returns the value of a leaf variant.
func (c *Codec) Leaf(variant string) (Value, error) {
	i, err := c.variantIndex(variant)
	if err != nil {
		return Value{}, err
	}
	if c.variants[i].sub != nil {
		return Value{}, schemaErrorf(ErrVariantKind, c.name, variant, "variant carries %s", c.variants[i].sub.name)
	}
	return Value{codec: c, variant: i}, nil
}

// Wrap returns the value of a nested variant holding inner.
func (c *Codec) Wrap(variant string, inner Value) (Value, error) {
	i, err := c.variantIndex(variant)
	if err != nil {
		return Value{}, err
	}
	sub := c.variants[i].sub
	if sub == nil {
		return Value{}, schemaErrorf(ErrVariantKind, c.name, variant, "variant is a leaf")
	}
	if !inner.IsValid() {
		return Value{}, schemaErrorf(ErrInvalidValue, c.name, variant, "zero value")
	}
	if inner.codec.decl != sub.decl {
		return Value{}, schemaErrorf(
			ErrCategoryMismatch, c.name, variant, "want %s, got %s", sub.name, inner.codec.name)
	}
	return Value{codec: c, variant: i, inner: &inner}, nil
}

// Lookup builds a value from its variant path, outermost first, eg
// Lookup("Ui", "Canvas", "Rectangles").
func (c *Codec) Lookup(path ...string) (Value, error) {
	if len(path) == 0 {
		return Value{}, schemaErrorf(ErrUnknownVariant, c.name, "", "empty path")
	}
	i, err := c.variantIndex(path[0])
	if err != nil {
		return Value{}, err
	}

	e := &c.variants[i]
	if e.sub == nil {
		if len(path) > 1 {
			return Value{}, schemaErrorf(ErrVariantKind, c.name, e.name, "leaf can not hold %v", path[1:])
		}
		return Value{codec: c, variant: i}, nil
	}
	if len(path) == 1 {
		return Value{}, schemaErrorf(ErrVariantKind, c.name, e.name, "variant needs a %s value", e.sub.name)
	}
	inner, err := e.sub.Lookup(path[1:]...)
	if err != nil {
		return Value{}, err
	}
	return Value{codec: c, variant: i, inner: &inner}, nil
}

// MustLookup is Lookup for fixed paths known to be valid.
func (c *Codec) MustLookup(path ...string) Value {
	v, err := c.Lookup(path...)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Codec) variantIndex(variant string) (int, error) {
	i, ok := c.byName[variant]
	if !ok {
		return 0, schemaErrorf(ErrUnknownVariant, c.name, variant, "")
	}
	return i, nil
}

// reaches reports whether decl is c's own declaration or is nested anywhere
// beneath it.
func (c *Codec) reaches(decl *Category) bool {
	seen := map[*Codec]bool{}
	var walk func(*Codec) bool
	walk = func(n *Codec) bool {
		if n.decl == decl {
			return true
		}
		if seen[n] {
			return false
		}
		seen[n] = true
		for _, e := range n.variants {
			if e.sub != nil && walk(e.sub) {
				return true
			}
		}
		return false
	}
	return walk(c)
}
