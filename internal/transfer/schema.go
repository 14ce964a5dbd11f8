package transfer

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"

	"github.com/newtab-go/newtab/internal/settings"
)

// Schema returns the JSON Schema of the export document.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}

	s := r.Reflect(&Document{})
	s.Title = "New tab settings export"

	if props, ok := s.Properties.Get("settings"); ok && props.Properties != nil {
		setEnum(props, settings.KeySearchEngine, settings.SearchEngines)
		setEnum(props, settings.KeyTheme, settings.Themes)
		setEnum(props, settings.KeyBackgroundType, settings.BackgroundTypes)
		setEnum(props, settings.KeyBackgroundSize, settings.BackgroundSizes)
		setEnum(props, settings.KeyBackgroundPosition, settings.BackgroundPositions)
		setEnum(props, settings.KeyAnimationSpeed, settings.AnimationSpeeds)
		setEnum(props, settings.KeyFontFamily, settings.FontFamilies)
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "encode schema")
	}

	return out, nil
}

func setEnum(parent *jsonschema.Schema, key string, values []string) {
	prop, ok := parent.Properties.Get(key)
	if !ok {
		return
	}

	prop.Enum = make([]any, 0, len(values))
	for _, v := range values {
		prop.Enum = append(prop.Enum, v)
	}
}
