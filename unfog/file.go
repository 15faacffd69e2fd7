package unfog

import (
	"fmt"

	"github.com/haewon/fxkit"
	"github.com/haewon/fxkit/internal/imageio"
)

// Per-file decision thresholds, as fractions of the pixel count.
const (
	// Files already more transparent than this are left alone.
	SkipTransparentRatio = 0.60

	// A result is only written back when it clears more than this many
	// additional pixels.
	MinImprovement = 0.01
)

// Action is the outcome of processing one file.
type Action int

// Actions.
const (
	// ActionSkipped means the file was already mostly transparent.
	ActionSkipped Action = iota
	// ActionUnchanged means the pass made too little difference to keep.
	ActionUnchanged
	// ActionSaved means the file was rewritten.
	ActionSaved
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionSkipped:
		return "skipped"
	case ActionUnchanged:
		return "unchanged"
	case ActionSaved:
		return "saved"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Decide chooses what to do with a file given its transparent ratio before
// and after the pass.
func Decide(before, after float64) Action {
	if before > SkipTransparentRatio {
		return ActionSkipped
	}
	if after-before > MinImprovement {
		return ActionSaved
	}
	return ActionUnchanged
}

// Result reports what ProcessFile did.
type Result struct {
	Path        string
	Action      Action
	Before      float64 // transparent ratio before
	After       float64 // transparent ratio after; equals Before when skipped
	Improvement float64 // After - Before
}

// ProcessFile defogs the image at path and overwrites it as PNG when the
// improvement is worth keeping.
func ProcessFile(path string) (Result, error) {
	img, _, err := imageio.Load(path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("unfog: %w", err)
	}

	src := imageio.ToNRGBA(img)
	res := Result{Path: path, Before: TransparentRatio(src)}
	if res.Before > SkipTransparentRatio {
		res.After = res.Before
		res.Action = ActionSkipped
		fxkit.Logger().Debug("unfog: already transparent", "path", path, "ratio", res.Before)
		return res, nil
	}

	out := Process(src)
	res.After = TransparentRatio(out)
	res.Improvement = res.After - res.Before
	res.Action = Decide(res.Before, res.After)

	if res.Action == ActionSaved {
		if err := imageio.SavePNG(path, out); err != nil {
			return res, fmt.Errorf("unfog: %w", err)
		}
	}
	fxkit.Logger().Debug("unfog: processed", "path", path,
		"action", res.Action.String(), "improvement", res.Improvement)
	return res, nil
}
