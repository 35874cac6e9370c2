//go:build !nogui

package gui

import (
	"unicode/utf8"

	"calcd/internal/keypad"

	"fyne.io/fyne/v2/widget"
)

// displayTextSize shrinks the display font as the expression grows.
func displayTextSize(display string) float32 {
	n := utf8.RuneCountInString(display)
	switch {
	case n > 20:
		return 20
	case n > 15:
		return 24
	default:
		return 32
	}
}

// importanceFor styles a button by its role on the keypad.
func importanceFor(kind keypad.Kind) widget.Importance {
	switch kind {
	case keypad.Operation:
		return widget.HighImportance
	case keypad.Function:
		return widget.WarningImportance
	case keypad.Equals:
		return widget.SuccessImportance
	default:
		return widget.MediumImportance
	}
}
