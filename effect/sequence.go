package effect

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/haewon/fxkit"
	"github.com/haewon/fxkit/internal/imageio"
	"github.com/haewon/fxkit/sheet"
)

// Sequence is the ordered list of rendered frames of one effect.
type Sequence []*fxkit.Canvas

// FramePath returns the file name of frame i: <dir>/<base>_<i>.png.
func FramePath(dir, base string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d.png", base, i))
}

// Save writes every frame as <dir>/<base>_<i>.png, creating dir when
// missing, and returns the written paths in frame order.
func (s Sequence) Save(dir, base string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("effect: create output dir: %w", err)
	}

	paths := make([]string, 0, len(s))
	for i, c := range s {
		path := FramePath(dir, base, i)
		if err := imageio.SavePNG(path, c.ToImage()); err != nil {
			return paths, fmt.Errorf("effect: save frame %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Images returns the frames as standard images.
func (s Sequence) Images() []image.Image {
	out := make([]image.Image, len(s))
	for i, c := range s {
		out[i] = c.ToImage()
	}
	return out
}

// Sheet lays the frames out in one labelled row.
func (s Sequence) Sheet() (*image.RGBA, error) {
	return sheet.Join(s.Images(), len(s), sheet.JoinOptions{Labels: true})
}

// GenerateOptions controls Generate.
type GenerateOptions struct {
	// Sheet also writes <dir>/<name>_sheet.png with every frame in a row.
	Sheet bool
}

// Generate renders r and saves its frames under dir, named after the
// recipe. It returns every written path.
func Generate(r *Recipe, dir string, opts GenerateOptions) ([]string, error) {
	seq, err := Render(r)
	if err != nil {
		return nil, err
	}

	paths, err := seq.Save(dir, r.Name)
	if err != nil {
		return paths, err
	}
	for _, p := range paths {
		fxkit.Logger().Info("effect: saved frame", "path", p, "size", r.Size)
	}

	if opts.Sheet {
		img, err := seq.Sheet()
		if err != nil {
			return paths, fmt.Errorf("effect: build sheet: %w", err)
		}
		path := filepath.Join(dir, r.Name+"_sheet.png")
		if err := imageio.SavePNG(path, img); err != nil {
			return paths, fmt.Errorf("effect: save sheet: %w", err)
		}
		fxkit.Logger().Info("effect: saved sheet", "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}
