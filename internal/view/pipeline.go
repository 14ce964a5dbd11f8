package view

import (
	"strconv"

	"github.com/newtab-go/newtab/internal/search"
	"github.com/newtab-go/newtab/internal/settings"
)

// Apply derives every settings-dependent region of v from s. It runs the
// theme, background, layout and typography steps, then resynchronizes the
// settings panel. Each step owns a disjoint region of the view, and running
// Apply twice with the same settings leaves v unchanged.
func Apply(v *View, s settings.Settings) {
	s = s.Normalized()
	v.ensure()

	applyTheme(v, s)
	applyBackground(v, s)
	applyLayout(v, s)
	applyTypography(v, s)
	syncControls(v, s)
}

func applyTheme(v *View, s settings.Settings) {
	v.Root.Theme = s.Theme
	v.ThemeOptions = options(settings.Themes, s.Theme)
}

func applyBackground(v *View, s settings.Settings) {
	v.Background = nil

	opacity := float64(s.BackgroundOpacity) / 100

	switch {
	case s.BackgroundType == settings.BackgroundCustom && s.HasCustomImage():
		v.Background = &Layer{
			Class:    ClassBackground,
			Image:    *s.CustomBackground,
			Size:     s.BackgroundSize,
			Position: s.BackgroundPosition,
			Opacity:  opacity,
		}
	case s.BackgroundType == settings.BackgroundColor:
		v.Background = &Layer{
			Class:   ClassBackground,
			Color:   s.BackgroundColor,
			Opacity: opacity,
		}
	}
}

func applyLayout(v *View, s settings.Settings) {
	v.GridClass = "bookmarks-grid grid-" + strconv.Itoa(s.GridColumns)
	v.Root.Vars[VarBorderRadius] = strconv.Itoa(s.BorderRadius) + "px"
	v.Root.Vars[VarAnimationSpeed] = s.AnimationSpeed

	for _, g := range RadiusElements {
		v.elements(g).Add(ClassRadius)
	}
	v.Body.Add(ClassAnimation)
}

func applyTypography(v *View, s settings.Settings) {
	v.Root.Vars[VarFontFamily] = s.FontFamily
	v.Root.Vars[VarFontSize] = strconv.Itoa(s.FontSize) + "px"

	v.Body.Add(ClassFont)
	for _, g := range FontSizeElements {
		v.elements(g).Add(ClassFontSize)
	}
}

func syncControls(v *View, s settings.Settings) {
	c := &v.Controls

	c.SearchEngine = s.SearchEngine
	c.EngineLabel = search.Lookup(s.SearchEngine).Name

	c.BackgroundType = s.BackgroundType
	c.BackgroundColor = s.BackgroundColor
	c.BackgroundSize = s.BackgroundSize
	c.BackgroundPosition = s.BackgroundPosition
	c.BackgroundOpacity = s.BackgroundOpacity
	c.OpacityLabel = strconv.Itoa(s.BackgroundOpacity) + "%"
	c.HasCustomImage = s.HasCustomImage()

	c.GridColumns = s.GridColumns
	c.ColumnsLabel = strconv.Itoa(s.GridColumns)
	c.BorderRadius = s.BorderRadius
	c.RadiusLabel = strconv.Itoa(s.BorderRadius) + "px"
	c.AnimationSpeed = s.AnimationSpeed

	c.FontFamily = s.FontFamily
	c.FontSize = s.FontSize
	c.FontSizeLabel = strconv.Itoa(s.FontSize) + "px"

	c.ShowUpload = s.BackgroundType == settings.BackgroundCustom
	c.ShowColorPicker = s.BackgroundType == settings.BackgroundColor
	c.ShowBackgroundControls = c.ShowUpload || c.ShowColorPicker

	c.Options[settings.KeySearchEngine] = options(settings.SearchEngines, s.SearchEngine)
	c.Options[settings.KeyBackgroundType] = options(settings.BackgroundTypes, s.BackgroundType)
	c.Options[settings.KeyBackgroundSize] = options(settings.BackgroundSizes, s.BackgroundSize)
	c.Options[settings.KeyBackgroundPosition] = options(settings.BackgroundPositions, s.BackgroundPosition)
	c.Options[settings.KeyAnimationSpeed] = options(settings.AnimationSpeeds, s.AnimationSpeed)
	c.Options[settings.KeyFontFamily] = options(settings.FontFamilies, s.FontFamily)
}

func (v *View) elements(group string) ClassSet {
	set, ok := v.Elements[group]
	if !ok {
		set = make(ClassSet)
		v.Elements[group] = set
	}

	return set
}

func (v *View) ensure() {
	if v.Root.Vars == nil {
		v.Root.Vars = make(map[string]string)
	}
	if v.Body == nil {
		v.Body = make(ClassSet)
	}
	if v.Elements == nil {
		v.Elements = make(map[string]ClassSet)
	}
	if v.Controls.Options == nil {
		v.Controls.Options = make(map[string][]Option)
	}
}
