package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AppTheme wraps the default Fyne theme with compact sizing and a fixed
// light or dark variant chosen in the preferences.
type AppTheme struct {
	base         fyne.Theme
	variant      fyne.ThemeVariant
	followSystem bool
}

// NewAppTheme follows the system variant.
func NewAppTheme() *AppTheme {
	return &AppTheme{
		base:         theme.DefaultTheme(),
		followSystem: true,
	}
}

// NewAppThemeWithVariant pins the theme to a light or dark variant.
func NewAppThemeWithVariant(variant fyne.ThemeVariant) *AppTheme {
	return &AppTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
	}
}

// SetVariant pins the theme to a light or dark variant.
func (t *AppTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
	t.followSystem = false
}

// themeForPreference maps the "light", "dark" or "system" preference to a theme.
func themeForPreference(pref string) *AppTheme {
	switch pref {
	case "light":
		return NewAppThemeWithVariant(theme.VariantLight)
	case "dark":
		return NewAppThemeWithVariant(theme.VariantDark)
	default:
		return NewAppTheme()
	}
}

// Color delegates to the base theme with the stored variant, or the
// requested one when following the system.
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if !t.followSystem {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
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
