// Package sheet converts between sprite sheets and individual frames.
//
// A sheet is a grid of equally sized cells read in row-major order: for a
// 2x2 sheet the frames are top-left, top-right, bottom-left, bottom-right.
package sheet

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/haewon/fxkit"
	"github.com/haewon/fxkit/internal/imageio"
)

// Sheet errors.
var (
	// ErrAlreadySplit is returned by SplitFile when frame 0 already exists.
	ErrAlreadySplit = errors.New("sheet: already split")

	// ErrInvalidGrid is returned for a non-positive grid or one with more
	// cells than pixels.
	ErrInvalidGrid = errors.New("sheet: invalid grid")

	// ErrNoFrames is returned by Join when there is nothing to lay out.
	ErrNoFrames = errors.New("sheet: no frames")
)

// Split cuts img into cols x rows cells of (w/cols) x (h/rows) pixels.
// The last column and row extend to the right and bottom edges, so every
// pixel lands in a frame and an odd-sized sheet yields frames of unequal
// size.
func Split(img image.Image, cols, rows int) ([]*image.RGBA, error) {
	b := img.Bounds()
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, cols, rows)
	}
	cw, ch := b.Dx()/cols, b.Dy()/rows
	if cw == 0 || ch == 0 {
		return nil, fmt.Errorf("%w: %dx%d cells on a %dx%d image", ErrInvalidGrid, cols, rows, b.Dx(), b.Dy())
	}

	frames := make([]*image.RGBA, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			at := b.Min.Add(image.Pt(col*cw, row*ch))
			end := at.Add(image.Pt(cw, ch))
			if col == cols-1 {
				end.X = b.Max.X
			}
			if row == rows-1 {
				end.Y = b.Max.Y
			}
			cell := image.Rectangle{Min: at, Max: end}

			dst := image.NewRGBA(image.Rect(0, 0, cell.Dx(), cell.Dy()))
			xdraw.Copy(dst, image.Point{}, img, cell, xdraw.Src, nil)
			frames = append(frames, dst)
		}
	}
	return frames, nil
}

// FramePaths returns the output paths SplitFile uses for a sheet at path:
// <dir>/<base>_<i>.png for every cell.
func FramePaths(path string, n int) []string {
	dir := filepath.Dir(path)
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := make([]string, n)
	for i := range out {
		out[i] = filepath.Join(dir, fmt.Sprintf("%s_%d.png", base, i))
	}
	return out
}

// SplitFile splits the sheet stored at path and writes each frame next to
// it. When the first frame file already exists nothing is written and
// ErrAlreadySplit is returned.
func SplitFile(path string, cols, rows int) ([]string, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, cols, rows)
	}
	paths := FramePaths(path, cols*rows)
	if _, err := os.Stat(paths[0]); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadySplit, paths[0])
	}

	img, _, err := imageio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}
	b := img.Bounds()
	fxkit.Logger().Debug("sheet: splitting", "path", path,
		"size", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()), "grid", fmt.Sprintf("%dx%d", cols, rows))

	frames, err := Split(img, cols, rows)
	if err != nil {
		return nil, err
	}
	for i, f := range frames {
		if err := imageio.SavePNG(paths[i], f); err != nil {
			return paths[:i], fmt.Errorf("sheet: write frame %d: %w", i, err)
		}
	}
	return paths, nil
}
