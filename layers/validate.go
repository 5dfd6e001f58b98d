package layers

import (
	"errors"
)

const (
	white = iota
	gray
	black
)

// compiler holds the state of one depth first walk. Every category reachable
// from target is compiled exactly once, so shared sub categories share a
// codec.
type compiler struct {
	opts   Options
	target *Category
	color  map[*Category]int
	codecs map[*Category]*Codec
	stack  []*Category
}

// Compile validates the hierarchy rooted at c and builds its codec along with
// the codecs of every nested category.
//
// c need not be tagged Root; compiling a nested-only category gives its own
// codec, whose ordinals start at 0. Any other Root tagged category reachable
// from c is rejected.
func Compile(c *Category, opts ...Option) (*Codec, error) {
	if c == nil {
		return nil, schemaErrorf(ErrInvalidCategory, "", "", "nil category")
	}
	cc := compiler{
		opts:   newOptions(opts...),
		target: c,
		color:  map[*Category]int{},
		codecs: map[*Category]*Codec{},
	}
	return cc.compile(c, "", "")
}

// MustCompile is Compile for package level declarations. It panics on a
// schema error, so a bad hierarchy fails at initialization.
func MustCompile(c *Category, opts ...Option) *Codec {
	codec, err := Compile(c, opts...)
	if err != nil {
		panic(err)
	}
	return codec
}

// compile visits c, reached through parent::variant (both empty for the
// target).
func (cc *compiler) compile(c *Category, parent, variant string) (*Codec, error) {
	switch cc.color[c] {
	case black:
		return cc.codecs[c], nil
	case gray:
		return nil, cycleError(parent, variant, cc.cyclePath(c))
	}

	if c != cc.target && c.Root {
		return nil, schemaErrorf(
			ErrNestedRoot, parent, variant, "category %q is tagged root and can not be nested", c.Name)
	}
	if c.Name == "" {
		return nil, schemaErrorf(ErrInvalidCategory, parent, variant, "category name is empty")
	}

	cc.color[c] = gray
	cc.stack = append(cc.stack, c)

	codec := &Codec{
		decl:     c,
		name:     c.Name,
		root:     c.Root,
		variants: make([]variantEntry, 0, len(c.Variants)),
		byName:   make(map[string]int, len(c.Variants)),
	}

	// Shape errors are collected for the whole category so a single compile
	// reports every malformed variant. A nested failure stops the walk but is
	// joined with the shape errors found so far.
	var errs []error
	for _, v := range c.Variants {
		if v.Name == "" {
			errs = append(errs, schemaErrorf(ErrInvalidVariant, c.Name, "", "variant name is empty"))
			continue
		}
		if _, ok := codec.byName[v.Name]; ok {
			errs = append(errs, schemaErrorf(ErrInvalidVariant, c.Name, v.Name, "duplicate variant name"))
			continue
		}

		nested, err := payload(c, v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		var sub *Codec
		if nested != nil {
			if sub, err = cc.compile(nested, c.Name, v.Name); err != nil {
				return nil, errors.Join(append(errs, err)...)
			}
		}

		start := codec.count
		end, ok := addCount(start, variantSize(sub))
		if !ok {
			return nil, schemaErrorf(ErrCountOverflow, c.Name, v.Name, "ordinal range ends beyond 2^64")
		}
		codec.byName[v.Name] = len(codec.variants)
		codec.variants = append(codec.variants, variantEntry{name: v.Name, start: start, end: end, sub: sub})
		codec.count = end
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	codec.fingerprint = layoutFingerprint(codec)

	cc.stack = cc.stack[:len(cc.stack)-1]
	cc.color[c] = black
	cc.codecs[c] = codec

	cc.opts.debugf("layers: compiled %s count=%d variants=%d", codec.name, codec.count, len(codec.variants))
	return codec, nil
}

// payload checks the variant shape and returns the nested category, or nil
// for a leaf.
func payload(c *Category, v Variant) (*Category, error) {
	switch len(v.Payload) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, schemaErrorf(
			ErrInvalidVariant, c.Name, v.Name,
			"expected empty variant or a single nested category, got %d payload fields", len(v.Payload))
	}

	sub, ok := v.Payload[0].(*Category)
	if !ok {
		return nil, schemaErrorf(
			ErrInvalidVariant, c.Name, v.Name, "payload of type %T is not a category", v.Payload[0])
	}
	if sub == nil {
		return nil, schemaErrorf(ErrInvalidVariant, c.Name, v.Name, "nested category is nil")
	}
	return sub, nil
}

// cyclePath returns the names from the first visit of c, through the current
// walk, back to c.
func (cc *compiler) cyclePath(c *Category) []string {
	var path []string
	for i := len(cc.stack) - 1; i >= 0; i-- {
		if cc.stack[i] != c {
			continue
		}
		for _, s := range cc.stack[i:] {
			path = append(path, s.Name)
		}
		break
	}
	return append(path, c.Name)
}
