package layers_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/forestrie/go-layers/layers"
	"github.com/forestrie/go-layers/layerstesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureContext(t *testing.T) (layerstesting.TestContext, layerstesting.Fixture) {
	tc := layerstesting.NewTestContext(t, layerstesting.TestConfig{TestLabelPrefix: "layers"})
	return tc, layerstesting.NewFixture()
}

func TestCount(t *testing.T) {
	tc, f := newFixtureContext(t)

	tests := []struct {
		cat  *layers.Category
		want uint64
	}{
		{f.Main, 9},
		{f.Background, 3},
		{f.Level, 2},
		{f.Void, 0},
		{f.Ui, 3},
		{f.OnCanvas, 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s count %d", tt.cat.Name, tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, tc.Compile(tt.cat).Count())
		})
	}
}

func TestEncodeOrdered(t *testing.T) {
	tc, f := newFixtureContext(t)
	main := tc.Compile(f.Main)

	tests := []struct {
		path []string
		want uint64
	}{
		{[]string{"Background", "Static"}, 0},
		{[]string{"Background", "DynamicBack"}, 1},
		{[]string{"Background", "DynamicFront"}, 2},
		{[]string{"Level", "Walls"}, 3},
		{[]string{"Level", "Tiles"}, 4},
		{[]string{"Char"}, 5},
		{[]string{"Ui", "Back"}, 6},
		{[]string{"Ui", "Canvas", "Rectangles"}, 7},
		{[]string{"Ui", "Canvas", "Buttons"}, 8},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v = %d", tt.path, tt.want), func(t *testing.T) {
			v, err := main.Lookup(tt.path...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, main.Encode(v))
			assert.Equal(t, tt.want, v.Ordinal())
			assert.Equal(t, tt.path, v.Path())
		})
	}
}

func TestDecodeSymmetric(t *testing.T) {
	tc, f := newFixtureContext(t)
	main := tc.Compile(f.Main)

	want := []string{
		"Background(Static)",
		"Background(DynamicBack)",
		"Background(DynamicFront)",
		"Level(Walls)",
		"Level(Tiles)",
		"Char",
		"Ui(Back)",
		"Ui(Canvas(Rectangles))",
		"Ui(Canvas(Buttons))",
	}
	for n, s := range want {
		v, ok := main.Decode(uint64(n))
		require.True(t, ok, "decode %d", n)
		assert.Equal(t, s, v.String())
		assert.Equal(t, uint64(n), main.Encode(v))
		assert.True(t, v.Equal(main.MustLookup(v.Path()...)))
	}

	for _, n := range []uint64{9, 10, 1 << 32, math.MaxUint64} {
		_, ok := main.Decode(n)
		assert.False(t, ok, "decode %d", n)
	}
}

func TestRoundTripChain(t *testing.T) {
	tc := layerstesting.NewTestContext(t, layerstesting.TestConfig{TestLabelPrefix: "chain"})

	small := tc.Compile(layerstesting.Chain(4))
	require.Equal(t, uint64(32), small.Count())
	for n := uint64(0); n < small.Count(); n++ {
		v, ok := small.Decode(n)
		require.True(t, ok)
		require.Equal(t, n, v.Ordinal())
	}

	big := tc.Compile(layerstesting.Chain(62))
	require.Equal(t, uint64(1)<<63, big.Count())
	for _, n := range []uint64{0, 1, 1 << 40, 1<<62 + 12345, 1<<63 - 1} {
		v, ok := big.Decode(n)
		require.True(t, ok, "decode %d", n)
		assert.Equal(t, n, v.Ordinal())
		assert.Len(t, v.Path(), 63)
	}
	_, ok := big.Decode(1 << 63)
	assert.False(t, ok)
}

func TestNestedIndependence(t *testing.T) {
	tc, f := newFixtureContext(t)
	main := tc.Compile(f.Main)
	level := tc.Compile(f.Level)

	walls, err := level.Leaf("Walls")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), level.Encode(walls))
	assert.Equal(t, uint64(3), main.MustLookup("Level", "Walls").Ordinal())

	sub, ok := main.Sub("Level")
	require.True(t, ok)
	assert.Equal(t, uint64(0), sub.MustLookup("Walls").Ordinal())
	assert.Equal(t, level.Fingerprint(), sub.Fingerprint())

	_, ok = main.Sub("Char")
	assert.False(t, ok)
	_, ok = main.Sub("Nope")
	assert.False(t, ok)
}

func TestUninhabited(t *testing.T) {
	tc, f := newFixtureContext(t)
	main := tc.Compile(f.Main)
	void := tc.Compile(f.Void)

	assert.Equal(t, uint64(0), void.Count())
	_, ok := void.Decode(0)
	assert.False(t, ok)

	_, err := main.Lookup("Foreground")
	assert.ErrorIs(t, err, layers.ErrVariantKind)
	_, err = main.Lookup("Foreground", "Anything")
	assert.ErrorIs(t, err, layers.ErrUnknownVariant)
	_, err = main.Lookup("Ui", "Canvas", "Triangles")
	assert.ErrorIs(t, err, layers.ErrVariantKind)

	for _, v := range main.All() {
		assert.NotEqual(t, "Foreground", v.Variant())
		if inner, ok := v.Inner(); ok && inner.Variant() == "Canvas" {
			canvas, _ := inner.Inner()
			assert.NotEqual(t, "Triangles", canvas.Variant())
		}
	}

	// The empty range does not disturb the offsets around it.
	infos := main.Variants()
	require.Len(t, infos, 5)
	assert.Equal(t, layers.VariantInfo{Name: "Foreground", Start: 6, Size: 0, Nested: "Void"}, infos[3])
	assert.Equal(t, layers.VariantInfo{Name: "Ui", Start: 6, Size: 3, Nested: "Ui"}, infos[4])
}

func TestVariants(t *testing.T) {
	tc, f := newFixtureContext(t)
	main := tc.Compile(f.Main)

	assert.Equal(t, []layers.VariantInfo{
		{Name: "Background", Start: 0, Size: 3, Nested: "Background"},
		{Name: "Level", Start: 3, Size: 2, Nested: "Level"},
		{Name: "Char", Start: 5, Size: 1},
		{Name: "Foreground", Start: 6, Size: 0, Nested: "Void"},
		{Name: "Ui", Start: 6, Size: 3, Nested: "Ui"},
	}, main.Variants())
	assert.Equal(t, "Main", main.Name())
	assert.True(t, main.IsRoot())
}

func TestLeafAndWrap(t *testing.T) {
	tc, f := newFixtureContext(t)
	main := tc.Compile(f.Main)
	level := tc.Compile(f.Level)
	background := tc.Compile(f.Background)

	tiles, err := level.Leaf("Tiles")
	require.NoError(t, err)

	v, err := main.Wrap("Level", tiles)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), v.Ordinal())
	assert.True(t, v.Equal(main.MustLookup("Level", "Tiles")))
	assert.False(t, v.Equal(main.MustLookup("Level", "Walls")))

	inner, ok := v.Inner()
	require.True(t, ok)
	assert.Equal(t, "Level", inner.Category())
	assert.Equal(t, "Tiles", inner.Variant())

	char, err := main.Leaf("Char")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), char.Ordinal())
	_, ok = char.Inner()
	assert.False(t, ok)

	_, err = main.Wrap("Level", background.MustLookup("Static"))
	assert.ErrorIs(t, err, layers.ErrCategoryMismatch)
	_, err = main.Wrap("Level", layers.Value{})
	assert.ErrorIs(t, err, layers.ErrInvalidValue)
	_, err = main.Wrap("Char", tiles)
	assert.ErrorIs(t, err, layers.ErrVariantKind)
	_, err = main.Leaf("Level")
	assert.ErrorIs(t, err, layers.ErrVariantKind)
	_, err = main.Leaf("Nope")
	assert.ErrorIs(t, err, layers.ErrUnknownVariant)
	_, err = main.Lookup()
	assert.ErrorIs(t, err, layers.ErrUnknownVariant)
	_, err = main.Lookup("Char", "Walls")
	assert.ErrorIs(t, err, layers.ErrVariantKind)
}

func TestValueNext(t *testing.T) {
	tc, f := newFixtureContext(t)
	main := tc.Compile(f.Main)

	next, ok := main.MustLookup("Level", "Tiles").Next()
	require.True(t, ok)
	assert.Equal(t, "Char", next.String())

	next, ok = main.MustLookup("Char").Next()
	require.True(t, ok)
	assert.Equal(t, "Ui(Back)", next.String(), "skips the empty Foreground range")

	_, ok = main.MustLookup("Ui", "Canvas", "Buttons").Next()
	assert.False(t, ok)
}

func TestInvalidValuePanics(t *testing.T) {
	tc, f := newFixtureContext(t)
	main := tc.Compile(f.Main)
	level := tc.Compile(f.Level)

	var zero layers.Value
	assert.False(t, zero.IsValid())
	assert.Equal(t, "<invalid>", zero.String())
	assert.Empty(t, zero.Path())
	assert.True(t, zero.Equal(layers.Value{}))
	assert.False(t, zero.Equal(main.MustLookup("Char")))

	requireInvariantPanic(t, func() { main.Encode(zero) })
	requireInvariantPanic(t, func() { zero.Ordinal() })
	requireInvariantPanic(t, func() { main.Encode(level.MustLookup("Walls")) })
}

func requireInvariantPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, layers.ErrInvariant)
	}()
	fn()
}
