// Package filter provides whole-canvas image filters for effect frames.
//
// The only filter today is a separable Gaussian blur, applied as the last
// step of every frame to soften the stacked primitives. It works on the
// canvas's premultiplied pixels directly, so transparent regions never bleed
// dark fringes into the blurred edge.
package filter
