package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/haewon/fxkit"
	"github.com/haewon/fxkit/internal/imageio"
)

// Manifest lists the assets the game references.
//
//	directories: [bg, heroes, fx]
//	assets:
//	  - heroes/kkaebi.png
//	  - {path: fx/fx_hit_physical_0.png, width: 128, height: 128}
type Manifest struct {
	Directories []string `yaml:"directories"`
	Assets      []Asset  `yaml:"assets"`
}

// Asset is one referenced file. Zero Width and Height skip the size check.
type Asset struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Asset) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		a.Path = node.Value
		return nil
	}
	type plain Asset
	return node.Decode((*plain)(a))
}

// ErrEmptyPath is returned for a manifest asset without a path.
var ErrEmptyPath = errors.New("inventory: asset with empty path")

// LoadManifest reads a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("inventory: load manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("inventory: parse manifest: %w", err)
	}
	for i, a := range m.Assets {
		if a.Path == "" {
			return nil, fmt.Errorf("%w (assets[%d])", ErrEmptyPath, i)
		}
	}
	return &m, nil
}

// Paths returns the referenced asset paths.
func (m *Manifest) Paths() []string {
	out := make([]string, len(m.Assets))
	for i, a := range m.Assets {
		out[i] = a.Path
	}
	return out
}

// Verify scans root and checks it against m: presence of every asset,
// dimensions where the manifest gives them and presence of every required
// directory.
func Verify(root string, m *Manifest) (*Report, error) {
	entries, err := Scan(root)
	if err != nil {
		return nil, err
	}
	report := Compare(m.Paths(), Paths(entries))

	present := make(map[string]bool, len(report.Matched))
	for _, p := range report.Matched {
		present[p] = true
	}

	for _, a := range m.Assets {
		p := normalize(a.Path)
		if !present[p] || (a.Width == 0 && a.Height == 0) {
			continue
		}
		cfg, _, err := imageio.LoadConfig(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			fxkit.Logger().Debug("inventory: undecodable asset", "path", p, "error", err)
			report.Broken = append(report.Broken, p)
			continue
		}
		if (a.Width != 0 && cfg.Width != a.Width) || (a.Height != 0 && cfg.Height != a.Height) {
			report.SizeMismatches = append(report.SizeMismatches, SizeMismatch{
				Path:      p,
				WantWidth: a.Width, WantHeight: a.Height,
				GotWidth: cfg.Width, GotHeight: cfg.Height,
			})
		}
	}

	for _, dir := range m.Directories {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(dir)))
		if err != nil || !info.IsDir() {
			report.MissingDirs = append(report.MissingDirs, dir)
		}
	}

	fxkit.Logger().Debug("inventory: verified", "root", root,
		"referenced", report.Referenced, "actual", report.Actual, "missing", len(report.Missing))
	return &report, nil
}
