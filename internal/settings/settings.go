// Package settings holds the single record of every user configurable
// appearance and behaviour field of the new-tab page, its defaults and the
// rules that keep every field inside its domain.
package settings

import (
	"regexp"
	"slices"
)

// Background types.
const (
	BackgroundTheme  = "theme"
	BackgroundColor  = "color"
	BackgroundCustom = "custom"
)

// Numeric field bounds.
const (
	OpacityMin     = 0
	OpacityMax     = 100
	GridColumnsMin = 2
	GridColumnsMax = 8
	RadiusMin      = 0
	RadiusMax      = 24
	FontSizeMin    = 12
	FontSizeMax    = 24
)

// Allowed values of the enum fields. The first entry is not necessarily the default.
var (
	SearchEngines       = []string{"google", "bing"}
	Themes              = []string{"light", "dark", "ocean", "forest", "sunset", "midnight"}
	BackgroundTypes     = []string{BackgroundTheme, BackgroundColor, BackgroundCustom}
	BackgroundSizes     = []string{"cover", "contain", "auto", "100% 100%"}
	BackgroundPositions = []string{"center", "top", "bottom", "left", "right"}
	AnimationSpeeds     = []string{"0s", "0.15s", "0.3s", "0.5s", "0.8s"}
	FontFamilies        = []string{"Inter", "Roboto", "Open Sans", "Lato", "Poppins", "system-ui"}
)

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Settings is the customization record. JSON names are the persisted layout.
type Settings struct {
	SearchEngine       string  `json:"searchEngine"       yaml:"searchEngine"`
	Theme              string  `json:"theme"              yaml:"theme"`
	BackgroundType     string  `json:"backgroundType"     yaml:"backgroundType"`
	CustomBackground   *string `json:"customBackground"   yaml:"customBackground"`
	BackgroundColor    string  `json:"backgroundColor"    yaml:"backgroundColor"`
	BackgroundSize     string  `json:"backgroundSize"     yaml:"backgroundSize"`
	BackgroundPosition string  `json:"backgroundPosition" yaml:"backgroundPosition"`
	BackgroundOpacity  int     `json:"backgroundOpacity"  yaml:"backgroundOpacity"`
	GridColumns        int     `json:"gridColumns"        yaml:"gridColumns"`
	BorderRadius       int     `json:"borderRadius"       yaml:"borderRadius"`
	AnimationSpeed     string  `json:"animationSpeed"     yaml:"animationSpeed"`
	FontFamily         string  `json:"fontFamily"         yaml:"fontFamily"`
	FontSize           int     `json:"fontSize"           yaml:"fontSize"`
}

// Defaults returns a fresh record holding every default value.
func Defaults() Settings {
	return Settings{
		SearchEngine:       "google",
		Theme:              "light",
		BackgroundType:     BackgroundTheme,
		CustomBackground:   nil,
		BackgroundColor:    "#ffffff",
		BackgroundSize:     "cover",
		BackgroundPosition: "center",
		BackgroundOpacity:  100,
		GridColumns:        6,
		BorderRadius:       8,
		AnimationSpeed:     "0.3s",
		FontFamily:         "Inter",
		FontSize:           16,
	}
}

// Normalized returns a copy of s with every field moved back into its domain:
// enum values outside their set fall back to the default, numbers are clamped.
func (s Settings) Normalized() Settings {
	d := Defaults()

	s.SearchEngine = oneOf(s.SearchEngine, SearchEngines, d.SearchEngine)
	s.Theme = oneOf(s.Theme, Themes, d.Theme)
	s.BackgroundType = oneOf(s.BackgroundType, BackgroundTypes, d.BackgroundType)
	s.BackgroundSize = oneOf(s.BackgroundSize, BackgroundSizes, d.BackgroundSize)
	s.BackgroundPosition = oneOf(s.BackgroundPosition, BackgroundPositions, d.BackgroundPosition)
	s.AnimationSpeed = oneOf(s.AnimationSpeed, AnimationSpeeds, d.AnimationSpeed)
	s.FontFamily = oneOf(s.FontFamily, FontFamilies, d.FontFamily)

	if !colorPattern.MatchString(s.BackgroundColor) {
		s.BackgroundColor = d.BackgroundColor
	}

	s.BackgroundOpacity = clamp(s.BackgroundOpacity, OpacityMin, OpacityMax)
	s.GridColumns = clamp(s.GridColumns, GridColumnsMin, GridColumnsMax)
	s.BorderRadius = clamp(s.BorderRadius, RadiusMin, RadiusMax)
	s.FontSize = clamp(s.FontSize, FontSizeMin, FontSizeMax)

	if s.CustomBackground != nil && *s.CustomBackground == "" {
		s.CustomBackground = nil
	}

	return s
}

// HasCustomImage reports whether a custom background image is set.
func (s Settings) HasCustomImage() bool {
	return s.CustomBackground != nil && *s.CustomBackground != ""
}

func oneOf(v string, allowed []string, def string) string {
	if slices.Contains(allowed, v) {
		return v
	}

	return def
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
