package effect

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"

	"github.com/haewon/fxkit"
	"github.com/haewon/fxkit/internal/filter"
	"github.com/haewon/fxkit/internal/parallel"
)

// Op is one primitive scheduled onto a frame, in paint order.
// Exactly one of Blob, Spike or Dot is meaningful, selected by Kind.
type Op struct {
	Kind  LayerKind
	Blob  fxkit.RadialGradient
	Spike fxkit.Spike
	Dot   fxkit.Dot
}

// Paint draws the op onto c.
func (op Op) Paint(c *fxkit.Canvas) {
	switch op.Kind {
	case KindBlob:
		c.FillRadialGradient(op.Blob)
	case KindSpikes:
		c.FillSpike(op.Spike)
	case KindDebris:
		c.FillCircle(op.Dot.Pos, float64(op.Dot.Radius), op.Dot.Color)
	}
}

// frameRand returns the generator for one frame. Streams for different
// frames of the same seed are independent.
func frameRand(seed uint64, index int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(index)))
}

// PlanFrame samples every primitive of frame index without painting.
func PlanFrame(r *Recipe, index int) ([]Op, error) {
	if index < 0 || index >= len(r.Frames) {
		return nil, fmt.Errorf("effect: frame %d out of range [0, %d)", index, len(r.Frames))
	}

	rng := frameRand(r.Seed, index)
	center := fxkit.Pt(float64(r.Size/2), float64(r.Size/2))

	var ops []Op
	for j, l := range r.Frames[index].Layers {
		var err error
		switch l.Kind {
		case KindBlob:
			ops, err = planBlobs(ops, l, center, rng)
		case KindSpikes:
			ops, err = planSpikes(ops, l, center, rng)
		case KindDebris:
			ops, err = planDebris(ops, l, center, rng)
		default:
			err = fmt.Errorf("unknown layer kind %q", l.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("effect: frame %d layer %d: %w", index, j, err)
		}
	}
	return ops, nil
}

func planBlobs(ops []Op, l Layer, center fxkit.Point, rng *rand.Rand) ([]Op, error) {
	inner, err := l.Inner.Color()
	if err != nil {
		return nil, err
	}
	outer, err := l.Outer.Color()
	if err != nil {
		return nil, err
	}

	for range l.Count {
		ox := intBetween(rng, -l.Jitter, l.Jitter)
		oy := intBetween(rng, -l.Jitter, l.Jitter)
		radius := intBetween(rng, l.Radius.Min, l.Radius.Max)
		ops = append(ops, Op{
			Kind: KindBlob,
			Blob: fxkit.RadialGradient{
				Center: center.Add(fxkit.Pt(float64(ox), float64(oy))),
				Radius: float64(radius),
				Inner:  inner,
				Outer:  outer,
			},
		})
	}
	return ops, nil
}

func planSpikes(ops []Op, l Layer, center fxkit.Point, rng *rand.Rand) ([]Op, error) {
	colors := make([]fxkit.Color, len(l.Colors))
	for i, p := range l.Colors {
		c, err := p.Color()
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	if l.Count > 0 && len(colors) == 0 {
		return nil, errors.New("spikes need at least one colour")
	}

	for i := range l.Count {
		angle := float64(i) / float64(l.Count) * 2 * math.Pi
		if l.AngleJitter > 0 {
			angle += -l.AngleJitter + rng.Float64()*2*l.AngleJitter
		}
		length := floatBetween(rng, l.Length.Min, l.Length.Max)
		width := floatBetween(rng, l.Width.Min, l.Width.Max)
		ops = append(ops, Op{
			Kind: KindSpikes,
			Spike: fxkit.Spike{
				Center: center,
				Angle:  angle,
				Length: length,
				Width:  width,
				Fill:   colors[i%len(colors)],
			},
		})
	}
	return ops, nil
}

func planDebris(ops []Op, l Layer, center fxkit.Point, rng *rand.Rand) ([]Op, error) {
	var palette []fxkit.Color
	for _, p := range l.Palette {
		c, err := p.Color()
		if err != nil {
			return nil, err
		}
		palette = append(palette, c)
	}

	d := fxkit.Debris{
		Center:  center,
		Count:   l.Count,
		MaxDist: l.MaxDist,
		MinSize: l.Size.Min,
		MaxSize: l.Size.Max,
		Palette: palette,
	}
	for _, dot := range d.Scatter(rng) {
		ops = append(ops, Op{Kind: KindDebris, Dot: dot})
	}
	return ops, nil
}

// intBetween draws a uniform integer in [lo, hi]. A degenerate range
// returns lo without consuming randomness.
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// floatBetween draws lo + U(0, hi-lo). A degenerate range returns lo
// without consuming randomness.
func floatBetween(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// RenderFrame paints frame index of r onto a fresh canvas and blurs it.
func RenderFrame(r *Recipe, index int) (*fxkit.Canvas, error) {
	ops, err := PlanFrame(r, index)
	if err != nil {
		return nil, err
	}

	c := fxkit.NewCanvas(r.Size, r.Size)
	for _, op := range ops {
		op.Paint(c)
	}
	filter.Blur(c, r.Frames[index].Blur)

	fxkit.Logger().Debug("effect: frame rendered",
		"recipe", r.Name, "frame", index, "ops", len(ops), "blur", r.Frames[index].Blur)
	return c, nil
}

// Render paints every frame of r. Frames are independent, so they are
// rendered concurrently; the result is the same as rendering in order.
func Render(r *Recipe) (Sequence, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	pool := parallel.NewWorkerPool(min(len(r.Frames), runtime.GOMAXPROCS(0)))
	defer pool.Close()

	seq := make(Sequence, len(r.Frames))
	errs := make([]error, len(r.Frames))
	pool.ForEach(len(r.Frames), func(i int) {
		seq[i], errs[i] = RenderFrame(r, i)
	})
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return seq, nil
}
