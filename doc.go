// Package fxkit provides the raster primitives behind the game's procedural
// effect sprites.
//
// # Overview
//
// A [Canvas] is a small RGBA8 pixel buffer. Effects are painted onto it with
// three layered primitives:
//
//   - [RadialGradient]: a soft blob approximated by nested flat discs
//   - [Spike]: a filled triangle radiating from a centre point
//   - [Debris]: small discs scattered at random polar offsets
//
// Every primitive composites with source-over blending, so the canvas never
// holds a channel outside [0, 255].
//
// # Quick Start
//
//	c := fxkit.NewCanvas(128, 128)
//	c.FillRadialGradient(fxkit.RadialGradient{
//	    Center: fxkit.Pt(64, 64),
//	    Radius: 30,
//	    Inner:  fxkit.RGBA(255, 200, 50, 200),
//	    Outer:  fxkit.RGBA(255, 100, 0, 0),
//	})
//	_ = c.SavePNG("glow.png")
//
// Frame recipes and whole animation sequences live in the effect package.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left, X right, Y down
//   - Pixel (x, y) covers the unit square [x, x+1) x [y, y+1)
//   - Angles in radians, 0 points right, positive turns clockwise on screen
//
// # Degenerate input
//
// Zero or negative radii, lengths and widths are no-ops rather than errors.
package fxkit
