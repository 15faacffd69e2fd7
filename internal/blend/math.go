package blend

// div255 divides x by 255 rounding to nearest, without a division.
//
// Formula: t = x + 128; (t + (t >> 8)) >> 8
//
// This is Alvy Ray Smith's rounding variant. It is exact for every product
// of two bytes (0..65025).
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 with rounding.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
