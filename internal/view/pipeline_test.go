package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtab-go/newtab/internal/settings"
)

func withColor(color string, opacity int) settings.Settings {
	s := settings.Defaults()
	s.BackgroundType = settings.BackgroundColor
	s.BackgroundColor = color
	s.BackgroundOpacity = opacity

	return s
}

func withImage(img string) settings.Settings {
	s := settings.Defaults()
	s.BackgroundType = settings.BackgroundCustom
	s.CustomBackground = &img
	s.BackgroundSize = "contain"
	s.BackgroundPosition = "top"
	s.BackgroundOpacity = 40

	return s
}

func TestApplyIsIdempotent(t *testing.T) {
	cases := map[string]settings.Settings{
		"defaults": settings.Defaults(),
		"color":    withColor("#00ff00", 70),
		"custom":   withImage("data:image/png;base64,AAAA"),
	}

	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			v := New()
			Apply(v, s)
			first := v.Clone()

			Apply(v, s)
			assert.Equal(t, first, v)
		})
	}
}

func TestApplyThemeMarksExactlyOneOption(t *testing.T) {
	v := New()
	for _, theme := range settings.Themes {
		s := settings.Defaults()
		s.Theme = theme
		Apply(v, s)

		assert.Equal(t, theme, v.Root.Theme)

		active := 0
		for _, o := range v.ThemeOptions {
			if o.Active {
				active++
				assert.Equal(t, theme, o.Value)
			}
		}
		assert.Equal(t, 1, active)
	}
}

func TestApplyBackground(t *testing.T) {
	t.Run("color at full opacity", func(t *testing.T) {
		v := New()
		Apply(v, withColor("#ff0000", 100))

		require.NotNil(t, v.Background)
		assert.Equal(t, ClassBackground, v.Background.Class)
		assert.Equal(t, "#ff0000", v.Background.Color)
		assert.InDelta(t, 1.0, v.Background.Opacity, 1e-9)
		assert.Empty(t, v.Background.Image)
	})

	t.Run("custom image", func(t *testing.T) {
		v := New()
		Apply(v, withImage("data:image/png;base64,AAAA"))

		require.NotNil(t, v.Background)
		assert.Equal(t, "data:image/png;base64,AAAA", v.Background.Image)
		assert.Equal(t, "contain", v.Background.Size)
		assert.Equal(t, "top", v.Background.Position)
		assert.InDelta(t, 0.4, v.Background.Opacity, 1e-9)
	})

	t.Run("custom without image injects nothing", func(t *testing.T) {
		s := settings.Defaults()
		s.BackgroundType = settings.BackgroundCustom

		v := New()
		Apply(v, s)
		assert.Nil(t, v.Background)
	})

	t.Run("theme type removes any previous layer", func(t *testing.T) {
		for _, prior := range []settings.Settings{withColor("#123456", 50), withImage("data:image/gif;base64,R0lG")} {
			v := New()
			Apply(v, prior)
			require.NotNil(t, v.Background)

			Apply(v, settings.Defaults())
			assert.Nil(t, v.Background)
		}
	})
}

func TestApplyLayoutAndTypography(t *testing.T) {
	s := settings.Defaults()
	s.GridColumns = 4
	s.BorderRadius = 12
	s.AnimationSpeed = "0.5s"
	s.FontFamily = "Lato"
	s.FontSize = 18

	v := New()
	Apply(v, s)

	assert.Equal(t, "bookmarks-grid grid-4", v.GridClass)
	assert.Equal(t, "12px", v.Root.Vars[VarBorderRadius])
	assert.Equal(t, "0.5s", v.Root.Vars[VarAnimationSpeed])
	assert.Equal(t, "Lato", v.Root.Vars[VarFontFamily])
	assert.Equal(t, "18px", v.Root.Vars[VarFontSize])

	assert.True(t, v.Body.Has(ClassAnimation))
	assert.True(t, v.Body.Has(ClassFont))
	assert.Equal(t, ClassRadius, v.Class("modal"))
	assert.Equal(t, ClassFontSize, v.Class("bookmark-name"))

	assert.Equal(t,
		"--dynamic-animation-speed: 0.5s; --dynamic-border-radius: 12px; --dynamic-font-family: Lato; --dynamic-font-size: 18px;",
		string(v.Root.Style()))
}

func TestApplyClampsOutOfRangeValues(t *testing.T) {
	s := settings.Defaults()
	s.GridColumns = 42
	s.Theme = "neon"

	v := &View{}
	Apply(v, s)

	assert.Equal(t, "bookmarks-grid grid-8", v.GridClass)
	assert.Equal(t, "light", v.Root.Theme)
}

func TestSyncControls(t *testing.T) {
	tests := []struct {
		bgType                        string
		upload, picker, sharedVisible bool
	}{
		{bgType: settings.BackgroundTheme},
		{bgType: settings.BackgroundColor, picker: true, sharedVisible: true},
		{bgType: settings.BackgroundCustom, upload: true, sharedVisible: true},
	}

	for _, tc := range tests {
		t.Run(tc.bgType, func(t *testing.T) {
			s := settings.Defaults()
			s.BackgroundType = tc.bgType
			s.SearchEngine = "bing"

			v := New()
			Apply(v, s)

			c := v.Controls
			assert.Equal(t, tc.upload, c.ShowUpload)
			assert.Equal(t, tc.picker, c.ShowColorPicker)
			assert.Equal(t, tc.sharedVisible, c.ShowBackgroundControls)
			assert.Equal(t, "Bing", c.EngineLabel)
			assert.Equal(t, "100%", c.OpacityLabel)
			assert.Equal(t, "6", c.ColumnsLabel)
			assert.Equal(t, "8px", c.RadiusLabel)
			assert.Equal(t, "16px", c.FontSizeLabel)

			for _, o := range c.Options[settings.KeyBackgroundType] {
				assert.Equal(t, o.Value == tc.bgType, o.Active, o.Value)
			}
		})
	}
}

func TestLayerStyle(t *testing.T) {
	var none *Layer
	assert.Empty(t, none.Style())

	l := &Layer{Color: "#ff0000", Opacity: 0.5}
	assert.Equal(t, "background-color: #ff0000; opacity: 0.5;", string(l.Style()))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Stretch", Label("100% 100%"))
	assert.Equal(t, "Midnight", Label("midnight"))
	assert.Equal(t, "Open Sans", Label("Open Sans"))
	assert.Empty(t, Label(""))
}
