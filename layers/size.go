package layers

import "math/bits"

// addCount returns a+b. A carry means the hierarchy has more ordinals than a
// uint64 can address, which is a configuration defect of the declaration.
func addCount(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// variantSize is 1 for a leaf and the nested category's count otherwise.
func variantSize(sub *Codec) uint64 {
	if sub == nil {
		return 1
	}
	return sub.count
}
