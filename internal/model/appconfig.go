package model

// AppConfig holds application-wide preferences and default form values.
type AppConfig struct {
	// Defaults applied to a fresh input form
	DefaultLength           float64 `json:"default_length" mapstructure:"default_length"`
	DefaultWidth            float64 `json:"default_width" mapstructure:"default_width"`
	DefaultWallHeight       float64 `json:"default_wall_height" mapstructure:"default_wall_height"`
	DefaultPitch            float64 `json:"default_pitch" mapstructure:"default_pitch"`
	DefaultOverhangInches   float64 `json:"default_overhang_inches" mapstructure:"default_overhang_inches"`
	DefaultSheetWidthInches float64 `json:"default_sheet_width_inches" mapstructure:"default_sheet_width_inches"`

	// Application preferences
	Theme         string    `json:"theme" mapstructure:"theme"`                   // "light", "dark", "system"
	ExportDir     string    `json:"export_dir" mapstructure:"export_dir"`         // Last directory used for exports
	RecentExports []string  `json:"recent_exports" mapstructure:"recent_exports"` // Most recent first
	CompareWidths []float64 `json:"compare_widths" mapstructure:"compare_widths"` // Sheet widths (in) offered in the compare view
}

// MaxRecentExports bounds AppConfig.RecentExports.
const MaxRecentExports = 10

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultInputs().
func DefaultAppConfig() AppConfig {
	defaults := DefaultInputs()
	return AppConfig{
		DefaultLength:           defaults.Length,
		DefaultWidth:            defaults.Width,
		DefaultWallHeight:       defaults.WallHeight,
		DefaultPitch:            defaults.Pitch,
		DefaultOverhangInches:   defaults.OverhangInches,
		DefaultSheetWidthInches: defaults.SheetWidthInches,
		Theme:                   "system",
		RecentExports:           []string{},
		CompareWidths:           []float64{24, 32, 36, 38, 40, 48},
	}
}

// ApplyToInputs copies the default values into an Inputs record. Attachment
// fields are left alone.
func (c AppConfig) ApplyToInputs(in *Inputs) {
	in.Length = c.DefaultLength
	in.Width = c.DefaultWidth
	in.WallHeight = c.DefaultWallHeight
	in.Pitch = c.DefaultPitch
	in.OverhangInches = c.DefaultOverhangInches
	in.SheetWidthInches = c.DefaultSheetWidthInches
}

// AddRecentExport records path as the most recent export, dropping any
// earlier occurrence and trimming the list to MaxRecentExports.
func (c *AppConfig) AddRecentExport(path string) {
	recent := make([]string, 0, len(c.RecentExports)+1)
	recent = append(recent, path)
	for _, p := range c.RecentExports {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > MaxRecentExports {
		recent = recent[:MaxRecentExports]
	}
	c.RecentExports = recent
}
