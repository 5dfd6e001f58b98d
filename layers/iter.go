package layers

import "iter"

// Iterator walks the values of a category forward in ordinal order.
//
// It holds a single current value and is not safe for concurrent advancing.
// To restart, make a new Iterator.
type Iterator struct {
	codec *Codec
	cur   Value
	ok    bool
}

// Iter returns an iterator starting at ordinal 0. It is exhausted
// immediately for an uninhabited category.
func (c *Codec) Iter() *Iterator {
	v, ok := c.Decode(0)
	return &Iterator{codec: c, cur: v, ok: ok}
}

// IterFrom returns an iterator whose first value is start.
func (c *Codec) IterFrom(start Value) *Iterator {
	c.mustOwn("iterate", start)
	return &Iterator{codec: c, cur: start, ok: true}
}

// Next yields the current value and then advances to the value at the next
// ordinal. It reports false once the category is exhausted.
func (it *Iterator) Next() (Value, bool) {
	if !it.ok {
		return Value{}, false
	}
	v := it.cur
	// v.Ordinal() < Count, so the increment can not wrap.
	it.cur, it.ok = it.codec.Decode(v.Ordinal() + 1)
	return v, true
}

// All yields every ordinal of the category with its value, in order.
func (c *Codec) All() iter.Seq2[uint64, Value] {
	return func(yield func(uint64, Value) bool) {
		for n := uint64(0); n < c.count; n++ {
			v, ok := c.Decode(n)
			if !ok {
				invariantf("decode %s(%d) failed below count %d", c.name, n, c.count)
			}
			if !yield(n, v) {
				return
			}
		}
	}
}
