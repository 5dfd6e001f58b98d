package layerstesting

import (
	"strconv"

	"github.com/forestrie/go-layers/layers"
)

// Fixture is the draw layer hierarchy
//
//	Main       = Background(Background) | Level(Level) | Char | Foreground(Void) | Ui(Ui)
//	Background = Static | DynamicBack | DynamicFront
//	Level      = Walls | Tiles
//	Void       = (uninhabited)
//	Ui         = Back | Canvas(OnCanvas)
//	OnCanvas   = Rectangles | Triangles(Void) | Buttons
//
// Main is tagged Root. Its ordinals run 0..8.
type Fixture struct {
	Main       *layers.Category
	Background *layers.Category
	Level      *layers.Category
	Void       *layers.Category
	Ui         *layers.Category
	OnCanvas   *layers.Category
}

// NewFixture returns fresh declarations, so tests may alter them freely.
func NewFixture() Fixture {
	var f Fixture
	f.Background = &layers.Category{Name: "Background", Variants: []layers.Variant{
		layers.Leaf("Static"),
		layers.Leaf("DynamicBack"),
		layers.Leaf("DynamicFront"),
	}}
	f.Level = &layers.Category{Name: "Level", Variants: []layers.Variant{
		layers.Leaf("Walls"),
		layers.Leaf("Tiles"),
	}}
	f.Void = &layers.Category{Name: "Void"}
	f.OnCanvas = &layers.Category{Name: "OnCanvas", Variants: []layers.Variant{
		layers.Leaf("Rectangles"),
		layers.Nested("Triangles", f.Void),
		layers.Leaf("Buttons"),
	}}
	f.Ui = &layers.Category{Name: "Ui", Variants: []layers.Variant{
		layers.Leaf("Back"),
		layers.Nested("Canvas", f.OnCanvas),
	}}
	f.Main = &layers.Category{Name: "Main", Root: true, Variants: []layers.Variant{
		layers.Nested("Background", f.Background),
		layers.Nested("Level", f.Level),
		layers.Leaf("Char"),
		layers.Nested("Foreground", f.Void),
		layers.Nested("Ui", f.Ui),
	}}
	return f
}

// Chain returns a Root category of depth levels where every level doubles
// the count of the one below, so Count is 2^(depth+1). The levels share
// their sub category, keeping compilation linear.
func Chain(depth int) *layers.Category {
	cat := &layers.Category{Name: "C0", Variants: []layers.Variant{
		layers.Leaf("A"),
		layers.Leaf("B"),
	}}
	for i := 1; i <= depth; i++ {
		cat = &layers.Category{Name: "C" + strconv.Itoa(i), Variants: []layers.Variant{
			layers.Nested("X", cat),
			layers.Nested("Y", cat),
		}}
	}
	cat.Root = true
	return cat
}
