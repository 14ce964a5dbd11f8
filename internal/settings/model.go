package settings

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/newtab-go/newtab/internal/store"
)

// ErrUnknownSetting is returned by Set for keys that name no field.
var ErrUnknownSetting = errors.New("unknown setting")

// Applier re-derives every view region from a settings record.
type Applier func(Settings)

// Model owns the current settings record. Every mutation stores the value,
// runs the full Applier and persists the whole record, in that order.
type Model struct {
	store   store.Store
	apply   Applier
	current Settings
}

// NewModel returns a model holding the defaults. Call Load to merge persisted values.
func NewModel(s store.Store, apply Applier) *Model {
	if apply == nil {
		apply = func(Settings) {}
	}

	return &Model{
		store:   s,
		apply:   apply,
		current: Defaults(),
	}
}

// Load merges the persisted record over the defaults and applies it.
// A missing or malformed blob leaves the defaults in place.
func (m *Model) Load() {
	m.current = Defaults()

	raw, err := m.store.Get(store.KeySettings)
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Debug().Msg("no stored settings, using defaults")
	case err != nil:
		log.Error().Err(err).Msg("failed to read settings, using defaults")
	default:
		if m.current, err = Decode(raw); err != nil {
			log.Warn().Err(err).Msg("failed to load settings, using defaults")
		}
	}

	m.apply(m.current)
}

// Get returns a copy of the current record.
func (m *Model) Get() Settings {
	return m.current
}

// Apply re-runs the applier without changing anything.
func (m *Model) Apply() {
	m.apply(m.current)
}

// Set changes one field. The value is coerced into the field's domain.
func (m *Model) Set(key string, value any) error {
	next, ok := m.current.With(key, value)
	if !ok {
		return errors.Wrap(ErrUnknownSetting, key)
	}

	return m.commit(next)
}

// Reset restores every default.
func (m *Model) Reset() error {
	return m.commit(Defaults())
}

// Merge overlays the fields present in a partial JSON object.
func (m *Model) Merge(fields map[string]json.RawMessage) error {
	return m.commit(m.current.MergeJSON(fields))
}

// Replace swaps in a complete record, normalizing it first.
func (m *Model) Replace(s Settings) error {
	return m.commit(s.Normalized())
}

func (m *Model) commit(next Settings) error {
	m.current = next
	m.apply(m.current)

	if err := store.SaveJSON(m.store, store.KeySettings, m.current); err != nil {
		log.Error().Err(err).Msg("failed to persist settings")
		return errors.Wrap(err, "persist settings")
	}

	return nil
}
