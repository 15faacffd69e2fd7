// Package inventory checks the image assets on disk against the list the
// game references.
//
// Paths are always relative to the asset root and use forward slashes, so
// reports are identical on every platform.
package inventory

import (
	"cmp"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Report is the result of comparing referenced and actual assets.
type Report struct {
	Referenced int
	Actual     int

	Matched []string // referenced and present
	Missing []string // referenced but absent
	Unused  []string // present but never referenced

	SizeMismatches []SizeMismatch // present with unexpected dimensions
	Broken         []string       // present but not decodable
	MissingDirs    []string       // required directories absent under the root
}

// SizeMismatch records an asset whose pixel size differs from the manifest.
type SizeMismatch struct {
	Path                  string
	WantWidth, WantHeight int
	GotWidth, GotHeight   int
}

func (m SizeMismatch) String() string {
	return fmt.Sprintf("%s: want %dx%d, got %dx%d", m.Path, m.WantWidth, m.WantHeight, m.GotWidth, m.GotHeight)
}

// OK reports whether nothing referenced is absent or wrong. Unused files
// are not an error.
func (r *Report) OK() bool {
	return len(r.Missing) == 0 && len(r.SizeMismatches) == 0 && len(r.Broken) == 0 && len(r.MissingDirs) == 0
}

// Compare diffs two path lists with set semantics. Duplicates collapse and
// every output list is sorted.
func Compare(referenced, actual []string) Report {
	ref := toSet(referenced)
	act := toSet(actual)

	r := Report{Referenced: len(ref), Actual: len(act)}
	for p := range ref {
		if act[p] {
			r.Matched = append(r.Matched, p)
		} else {
			r.Missing = append(r.Missing, p)
		}
	}
	for p := range act {
		if !ref[p] {
			r.Unused = append(r.Unused, p)
		}
	}
	slices.Sort(r.Matched)
	slices.Sort(r.Missing)
	slices.Sort(r.Unused)
	return r
}

func toSet(paths []string) map[string]bool {
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		set[normalize(p)] = true
	}
	return set
}

func normalize(p string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "./")
}

// Entry is one asset file found by Scan.
type Entry struct {
	Path    string // relative, forward slashes
	Size    int64
	ModTime time.Time
}

// Scan walks root and returns every .png file, sorted by path.
func Scan(root string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".png") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Path: filepath.ToSlash(rel), Size: info.Size(), ModTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inventory: scan %s: %w", root, err)
	}
	slices.SortFunc(entries, func(a, b Entry) int { return cmp.Compare(a.Path, b.Path) })
	return entries, nil
}

// Paths returns the paths of entries.
func Paths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

// SplitByTime separates entries modified before cutoff from the rest.
// Both halves keep the input order.
func SplitByTime(entries []Entry, cutoff time.Time) (older, newer []Entry) {
	for _, e := range entries {
		if e.ModTime.Before(cutoff) {
			older = append(older, e)
		} else {
			newer = append(newer, e)
		}
	}
	return older, newer
}
