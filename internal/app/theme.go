package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"integral-calculator/pkg/colorutil"
)

// CalculatorTheme is the light cream theme with royal-blue accents.
type CalculatorTheme struct{}

var _ fyne.Theme = (*CalculatorTheme)(nil)

func (t *CalculatorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return colorutil.Cream
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorutil.RoyalBlue
	case theme.ColorNameForeground:
		return colorutil.Ink
	case theme.ColorNameInputBackground, theme.ColorNameButton:
		return colorutil.White
	case theme.ColorNamePlaceHolder:
		return colorutil.Faint
	case theme.ColorNameError:
		return colorutil.Alert
	default:
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
}

func (t *CalculatorTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CalculatorTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *CalculatorTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 16
	default:
		return theme.DefaultTheme().Size(name)
	}
}
