package daemon

import (
	"github.com/rs/zerolog/log"

	"github.com/newtab-go/newtab/internal/bookmark"
	"github.com/newtab-go/newtab/internal/store"
)

// seed stores the default bookmarks on first start.
func seed(s store.Store) error {
	seeded, err := bookmark.NewStore(s).Seed()
	if err != nil {
		return err
	}

	if seeded {
		log.Info().Msg("stored default bookmarks")
	}

	return nil
}
