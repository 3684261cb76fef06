package columns

// Mode controls how detection results translate into a page layout.
type Mode string

const (
	// ModeAuto splits only when detection is confident enough.
	ModeAuto Mode = "auto"
	// ModeForce always splits, falling back to an even split when no gap
	// was found.
	ModeForce Mode = "force_columns"
	// ModeSingle skips detection and processes the page as one block.
	ModeSingle Mode = "single"
)

// Script tags the typeface family a column is expected to carry. Rashi
// detection is an extension point; everything currently resolves to square.
type Script string

const (
	ScriptSquare Script = "square"
	ScriptRashi  Script = "rashi"
)

// minAutoConfidence is the detection confidence below which auto mode falls
// back to single-column processing.
const minAutoConfidence = 0.3

// forcedConfidence is reported when a forced split had no detected gap.
const forcedConfidence = 0.3

// Layout is the resolved column structure for one page.
type Layout struct {
	Columns    bool
	Separator  int
	Right      Bounds
	Left       Bounds
	Confidence float64
	Script     Script
}

// Resolve applies the processing-mode policy to a detection result for a page
// of the given pixel width.
func Resolve(det Detection, mode Mode, width int) Layout {
	single := Layout{Columns: false, Script: ScriptSquare, Confidence: det.Confidence}
	switch mode {
	case ModeSingle:
		return Layout{Columns: false, Script: ScriptSquare}
	case ModeForce:
		if det.HasColumns {
			return Layout{
				Columns:    true,
				Separator:  det.Separator,
				Right:      det.Right,
				Left:       det.Left,
				Confidence: det.Confidence,
				Script:     ScriptSquare,
			}
		}
		sep := width / 2
		return Layout{
			Columns:    true,
			Separator:  sep,
			Right:      Bounds{X0: sep, X1: width},
			Left:       Bounds{X0: 0, X1: sep},
			Confidence: forcedConfidence,
			Script:     ScriptSquare,
		}
	default: // ModeAuto
		if !det.HasColumns || det.Confidence < minAutoConfidence {
			return single
		}
		return Layout{
			Columns:    true,
			Separator:  det.Separator,
			Right:      det.Right,
			Left:       det.Left,
			Confidence: det.Confidence,
			Script:     ScriptSquare,
		}
	}
}
