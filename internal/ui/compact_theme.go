package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/yt-remote/internal/model"
)

// Palette shared by the theme and the status pills
var (
	colorOK       = color.RGBA{R: 46, G: 160, B: 67, A: 255}   // green
	colorBad      = color.RGBA{R: 183, G: 28, B: 28, A: 255}   // red
	colorNeutral  = color.RGBA{R: 117, G: 117, B: 117, A: 255} // gray
	colorPrimary  = color.RGBA{R: 25, G: 118, B: 210, A: 255}  // blue
	colorWarning  = color.RGBA{R: 255, G: 193, B: 7, A: 255}   // amber
	colorPillText = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// CompactTheme defines a compact theme for the UI with reduced padding and font sizes
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return colorOK
	case theme.ColorNameError:
		return colorBad
	case theme.ColorNameWarning:
		return colorWarning
	case theme.ColorNamePrimary:
		return colorPrimary
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText, theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

// toneColor returns the pill background for a tool status tone
func toneColor(tone model.PillTone) color.Color {
	switch tone {
	case model.PillOK:
		return colorOK
	case model.PillBad:
		return colorBad
	default:
		return colorNeutral
	}
}
