// Package blend implements source-over compositing for the canvas.
//
// All operations work on premultiplied alpha values in the range 0-255, the
// layout image.RGBA uses. Saturating integer arithmetic keeps every result
// inside [0, 255] and every colour channel at or below its alpha.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// SourceOver composites a premultiplied source over a premultiplied
// destination.
//
// Formula: S + D*(1-Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// Premultiply converts a straight-alpha colour scaled by a coverage value
// into premultiplied form. Coverage 255 means the pixel is fully inside the
// shape.
func Premultiply(r, g, b, a, coverage byte) (pr, pg, pb, pa byte) {
	pa = mulDiv255(a, coverage)
	return mulDiv255(r, pa), mulDiv255(g, pa), mulDiv255(b, pa), pa
}

// Unpremultiply converts a premultiplied colour back to straight alpha.
func Unpremultiply(r, g, b, a byte) (ur, ug, ub byte) {
	if a == 0 {
		return 0, 0, 0
	}
	return unpremulChannel(r, a), unpremulChannel(g, a), unpremulChannel(b, a)
}

func unpremulChannel(c, a byte) byte {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}

// OverPixel composites a straight-alpha colour with the given coverage onto
// the 4-byte premultiplied pixel at dst[0:4].
func OverPixel(dst []byte, r, g, b, a, coverage byte) {
	if coverage == 0 || a == 0 {
		return
	}
	sr, sg, sb, sa := Premultiply(r, g, b, a, coverage)
	dst[0], dst[1], dst[2], dst[3] = SourceOver(sr, sg, sb, sa, dst[0], dst[1], dst[2], dst[3])
}
