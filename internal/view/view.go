// Package view models the rendered new-tab document as plain data. The page
// templates only read a View; every change to it goes through Apply.
package view

import (
	"html/template"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Shared style variables published on the root element.
const (
	VarBorderRadius   = "--dynamic-border-radius"
	VarAnimationSpeed = "--dynamic-animation-speed"
	VarFontFamily     = "--dynamic-font-family"
	VarFontSize       = "--dynamic-font-size"
)

// Marker classes added to style-sensitive elements.
const (
	ClassRadius     = "dynamic-radius"
	ClassAnimation  = "dynamic-animation"
	ClassFont       = "dynamic-font"
	ClassFontSize   = "dynamic-font-size"
	ClassBackground = "custom-background-overlay"
)

// Element groups that consume the shared radius and font-size variables.
var (
	RadiusElements   = []string{"bookmark-item", "modal", "search-wrapper", "theme-option"}
	FontSizeElements = []string{"bookmark-name", "setting-label", "form-label"}
)

// ClassSet is an unordered set of CSS class names.
type ClassSet map[string]struct{}

// Add inserts class names.
func (c ClassSet) Add(names ...string) {
	for _, n := range names {
		c[n] = struct{}{}
	}
}

// Has reports whether name is present.
func (c ClassSet) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// String returns the class attribute value, sorted.
func (c ClassSet) String() string {
	return strings.Join(slices.Sorted(maps.Keys(c)), " ")
}

// Option is one choice of a radio group, select or theme picker.
type Option struct {
	Value  string
	Label  string
	Active bool
}

// Layer is the injected background overlay.
type Layer struct {
	Class    string
	Image    string
	Color    string
	Size     string
	Position string
	Opacity  float64
}

// Style renders the layer's inline style.
func (l *Layer) Style() template.CSS {
	if l == nil {
		return ""
	}

	var b strings.Builder
	if l.Image != "" {
		b.WriteString("background-image: url(" + strconv.Quote(l.Image) + "); ")
		b.WriteString("background-size: " + l.Size + "; ")
		b.WriteString("background-position: " + l.Position + "; ")
	}
	if l.Color != "" {
		b.WriteString("background-color: " + l.Color + "; ")
	}
	b.WriteString("opacity: " + strconv.FormatFloat(l.Opacity, 'f', -1, 64) + ";")

	return template.CSS(b.String()) //nolint:gosec
}

// Root is the document element.
type Root struct {
	Theme string
	Vars  map[string]string
}

// Style renders the published variables as an inline style, sorted by name.
func (r Root) Style() template.CSS {
	parts := make([]string, 0, len(r.Vars))
	for _, k := range slices.Sorted(maps.Keys(r.Vars)) {
		parts = append(parts, k+": "+r.Vars[k]+";")
	}

	return template.CSS(strings.Join(parts, " ")) //nolint:gosec
}

// Controls mirrors every settings-panel control.
type Controls struct {
	SearchEngine string
	EngineLabel  string

	BackgroundType     string
	BackgroundColor    string
	BackgroundSize     string
	BackgroundPosition string
	BackgroundOpacity  int
	OpacityLabel       string
	HasCustomImage     bool

	GridColumns    int
	ColumnsLabel   string
	BorderRadius   int
	RadiusLabel    string
	AnimationSpeed string

	FontFamily    string
	FontSize      int
	FontSizeLabel string

	ShowUpload             bool
	ShowColorPicker        bool
	ShowBackgroundControls bool

	// Options holds the choices of every enum control keyed by settings field.
	Options map[string][]Option
}

// View is the whole derived document state.
type View struct {
	Root         Root
	ThemeOptions []Option
	Background   *Layer
	GridClass    string
	Body         ClassSet
	Elements     map[string]ClassSet
	Controls     Controls
}

// New returns an empty view. Apply must run before it is rendered.
func New() *View {
	v := &View{
		Root:     Root{Vars: make(map[string]string)},
		Body:     make(ClassSet),
		Elements: make(map[string]ClassSet),
		Controls: Controls{Options: make(map[string][]Option)},
	}
	for _, g := range slices.Concat(RadiusElements, FontSizeElements) {
		v.Elements[g] = make(ClassSet)
	}

	return v
}

// Class returns the marker classes of an element group.
func (v *View) Class(group string) string {
	return v.Elements[group].String()
}

// Clone returns a deep copy.
func (v *View) Clone() *View {
	c := *v
	c.Root.Vars = maps.Clone(v.Root.Vars)
	c.ThemeOptions = slices.Clone(v.ThemeOptions)
	c.Body = maps.Clone(v.Body)

	c.Elements = make(map[string]ClassSet, len(v.Elements))
	for k, set := range v.Elements {
		c.Elements[k] = maps.Clone(set)
	}

	if v.Background != nil {
		layer := *v.Background
		c.Background = &layer
	}

	c.Controls.Options = make(map[string][]Option, len(v.Controls.Options))
	for k, opts := range v.Controls.Options {
		c.Controls.Options[k] = slices.Clone(opts)
	}

	return &c
}
