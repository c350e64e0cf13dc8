package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Header  *color.Color
	Case    *color.Color
	Muted   *color.Color
	Success *color.Color
	Error   *color.Color
	Path    *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:  color.New(color.FgCyan, color.Bold),
		Case:    color.New(color.Bold),
		Muted:   color.New(color.FgHiBlack),
		Success: color.New(color.FgGreen),
		Error:   color.New(color.FgRed),
		Path:    color.New(color.FgCyan),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Header.DisableColor()
	scheme.Case.DisableColor()
	scheme.Muted.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Path.DisableColor()

	return scheme
}

// ForcedColorScheme returns the default scheme with colors enabled even when
// the process output is not a terminal.
func ForcedColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Header.EnableColor()
	scheme.Case.EnableColor()
	scheme.Muted.EnableColor()
	scheme.Success.EnableColor()
	scheme.Error.EnableColor()
	scheme.Path.EnableColor()

	return scheme
}
