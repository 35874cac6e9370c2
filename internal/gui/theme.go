//go:build !nogui

package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	themeVariantDark     = theme.VariantDark
	themeColorForeground = theme.ColorNameForeground
)

// calcTheme is the default fyne theme pinned to one variant, so the stored
// preference wins over the desktop setting.
type calcTheme struct {
	variant fyne.ThemeVariant
}

var _ fyne.Theme = (*calcTheme)(nil)

func newCalcTheme(dark bool) *calcTheme {
	return &calcTheme{variant: variantFor(dark)}
}

func variantFor(dark bool) fyne.ThemeVariant {
	if dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// IsDark reports which variant the theme is pinned to.
func (t *calcTheme) IsDark() bool {
	return t.variant == theme.VariantDark
}

func (t *calcTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}

func (t *calcTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *calcTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *calcTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
