// Package ui provides the TrayCalc application UI components.
//
// This file defines the compact navy theme used by the desktop calculator.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Result colours shared by the results panel.
var (
	colorWarning = color.NRGBA{R: 0xff, G: 0x4d, B: 0x4d, A: 0xff}
	colorOK      = color.NRGBA{R: 0x7c, G: 0xd6, B: 0x7c, A: 0xff}
	colorText    = color.NRGBA{R: 0xf0, G: 0xf4, B: 0xff, A: 0xff}
	colorIdle    = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// Dark palette.
var (
	colorBackground = color.NRGBA{R: 0x0b, G: 0x1f, B: 0x3b, A: 0xff}
	colorAltBase    = color.NRGBA{R: 0x12, G: 0x28, B: 0x4a, A: 0xff}
	colorPanel      = color.NRGBA{R: 0x16, G: 0x24, B: 0x3a, A: 0xff}
	colorAccent     = color.NRGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}
	colorBorder     = color.NRGBA{R: 0x2b, G: 0x3f, B: 0x5f, A: 0xff}
	colorHighlight  = color.NRGBA{R: 0x28, G: 0x54, B: 0xa0, A: 0xff}
)

// TrayCalcTheme wraps the default Fyne theme. In the dark variant it
// applies the navy/orange palette; light and system defer to Fyne.
type TrayCalcTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	navy    bool
}

// NewTrayCalcTheme creates a theme for the given config value
// ("light", "dark" or "system").
func NewTrayCalcTheme(name string) *TrayCalcTheme {
	t := &TrayCalcTheme{base: theme.DefaultTheme()}
	t.SetName(name)
	return t
}

// SetName switches the variant from a config value.
func (t *TrayCalcTheme) SetName(name string) {
	switch name {
	case "light":
		t.variant = theme.VariantLight
		t.navy = false
	case "system":
		t.variant = 0
		t.navy = false
	default:
		t.variant = theme.VariantDark
		t.navy = true
	}
}

func (t *TrayCalcTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != 0 {
		variant = t.variant
	}
	if t.navy {
		switch name {
		case theme.ColorNameBackground:
			return colorBackground
		case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
			return colorPanel
		case theme.ColorNameHeaderBackground, theme.ColorNameButton:
			return colorAltBase
		case theme.ColorNameForeground:
			return colorText
		case theme.ColorNamePrimary:
			return colorAccent
		case theme.ColorNameInputBorder, theme.ColorNameSeparator:
			return colorBorder
		case theme.ColorNameSelection, theme.ColorNameFocus:
			return colorHighlight
		}
	}
	return t.base.Color(name, variant)
}

func (t *TrayCalcTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *TrayCalcTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *TrayCalcTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
