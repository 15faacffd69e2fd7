package sfx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/haewon/fxkit"
	"github.com/haewon/fxkit/internal/synth"
)

// Format is the WAV format of every rendered effect: 44.1 kHz, mono,
// 16-bit.
var Format = beep.Format{SampleRate: synth.SampleRate, NumChannels: 1, Precision: 2}

// Render encodes p as a WAV stream into w.
func Render(p Preset, w io.WriteSeeker) error {
	if err := p.Tone().Validate(); err != nil {
		return err
	}
	if err := wav.Encode(w, p.Tone().Streamer(Format.SampleRate), Format); err != nil {
		return fmt.Errorf("sfx: encode %s: %w", p.File, err)
	}
	return nil
}

// RenderFile writes p to <dir>/<p.File>. An existing file is kept unless
// force is set; written reports whether the file was (re)created.
func RenderFile(dir string, p Preset, force bool) (path string, written bool, err error) {
	path = filepath.Join(dir, p.File)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, false, nil
		}
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return path, false, fmt.Errorf("sfx: create file: %w", err)
	}
	if err := Render(p, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return path, false, err
	}
	if err := f.Close(); err != nil {
		return path, false, fmt.Errorf("sfx: close %s: %w", path, err)
	}
	return path, true, nil
}

// Generate renders every preset into dir, creating it when missing. A
// failing preset does not stop the rest; all failures are joined into the
// returned error. The written paths are returned in preset order.
func Generate(dir string, presets []Preset, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sfx: create output dir: %w", err)
	}

	var (
		written []string
		errs    []error
	)
	for _, p := range presets {
		path, ok, err := RenderFile(dir, p, force)
		switch {
		case err != nil:
			fxkit.Logger().Warn("sfx: render failed", "file", p.File, "error", err)
			errs = append(errs, err)
		case ok:
			fxkit.Logger().Info("sfx: rendered", "path", path,
				"wave", p.Wave.String(), "duration", p.Duration)
			written = append(written, path)
		default:
			fxkit.Logger().Debug("sfx: exists, skipped", "path", path)
		}
	}
	return written, errors.Join(errs...)
}
