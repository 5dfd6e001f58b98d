package layers

/*

# Ordinal layers for nested categories

This package assigns every leaf of a tree of nested, named categories a dense
ordinal in [0, Count). The order is fixed entirely by declaration order, so a
hierarchy of draw layers (or any other set of named states) gets a total
numeric order that can not drift from the way the hierarchy is written down.

It follows the same "functional primitives" style as `go-merklelog/mmr`:
positions are derived by arithmetic over precomputed sizes, nothing is
materialised that can be computed, and the tables are immutable once built.

## Declaring a hierarchy

A Category is an ordered list of Variants. A variant is either a leaf, which
occupies exactly one ordinal, or a nested variant carrying a sub category,
which occupies the sub category's entire range.

	level := &layers.Category{Name: "Level", Variants: []layers.Variant{
		layers.Leaf("Walls"),
		layers.Leaf("Tiles"),
	}}
	main := &layers.Category{Name: "Main", Root: true, Variants: []layers.Variant{
		layers.Nested("Level", level),
		layers.Leaf("Char"),
	}}

## Sizes and offsets

	Count(c) = sum over variants of (1 if leaf else Count(sub))

The range of variant i starts at the sum of the sizes of the variants before
it. With the declaration above

	Level(Walls) = 0
	Level(Tiles) = 1
	Char         = 2

A category with no inhabited variants has Count 0. It contributes an empty
range wherever it is nested and its values can not be constructed.

## Compilation

Compile walks the hierarchy depth first before any codec exists. It rejects

1. malformed variants (payload other than nothing or a single category)
2. a Root tagged category reachable from another category
3. cycles (a category reachable from itself)
4. hierarchies whose Count does not fit in a uint64

Nothing is deferred to first use. A Codec that exists is valid.

## Encoding and decoding

	encode(v) = start(variant(v)) + encode(inner(v))   // nested
	encode(v) = start(variant(v))                      // leaf

Decode finds the variant whose [start, end) range holds n by binary search
over the precomputed end offsets (empty ranges are never selected) and
recurses with n - start. Cost is proportional to depth, times log of the
variant count at each level.

*/
