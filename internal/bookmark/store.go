package bookmark

import (
	"slices"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/newtab-go/newtab/internal/store"
)

// Store is the bookmark collection. Every mutation writes the whole list back.
type Store struct {
	store  store.Store
	items  []Bookmark
	lastID int64
	now    func() time.Time
}

// NewStore returns an empty collection backed by s. Call Load to read it.
func NewStore(s store.Store) *Store {
	return &Store{store: s, now: time.Now}
}

// Load reads the persisted list. A missing or malformed blob yields an empty list.
func (b *Store) Load() {
	b.items = nil

	var items []Bookmark
	err := store.LoadJSON(b.store, store.KeyBookmarks, &items)
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Debug().Msg("no stored bookmarks")
	case err != nil:
		log.Warn().Err(err).Msg("failed to load bookmarks, starting empty")
	default:
		b.items = sanitize(items)
	}
}

// Seed stores the default bookmarks when no list has ever been persisted.
// It reports whether it did.
func (b *Store) Seed() (bool, error) {
	_, err := b.store.Get(store.KeyBookmarks)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, errors.Wrap(err, "seed bookmarks")
	}

	b.items = Defaults()

	return true, b.save()
}

// List returns a copy of the collection in display order.
func (b *Store) List() []Bookmark {
	return slices.Clone(b.items)
}

// Len returns the number of bookmarks.
func (b *Store) Len() int {
	return len(b.items)
}

// Get finds a bookmark by id.
func (b *Store) Get(id string) (Bookmark, bool) {
	i := b.index(id)
	if i < 0 {
		return Bookmark{}, false
	}

	return b.items[i], true
}

// Add appends a new bookmark with a fresh id.
func (b *Store) Add(name, rawURL string) (Bookmark, error) {
	f, err := Form{Name: name, URL: rawURL}.Normalize()
	if err != nil {
		log.Debug().Msg("ignoring bookmark without name or url")
		return Bookmark{}, err
	}

	bm := Bookmark{
		ID:   b.nextID(),
		Name: f.Name,
		URL:  CoerceURL(f.URL),
		Icon: Icon(f.Name),
	}
	b.items = append(b.items, bm)

	return bm, b.save()
}

// Edit overwrites the name, url and icon of an existing bookmark.
func (b *Store) Edit(id, name, rawURL string) (Bookmark, error) {
	f, err := Form{Name: name, URL: rawURL}.Normalize()
	if err != nil {
		log.Debug().Str("id", id).Msg("ignoring bookmark edit without name or url")
		return Bookmark{}, err
	}

	i := b.index(id)
	if i < 0 {
		return Bookmark{}, errors.Wrap(ErrNotFound, id)
	}

	b.items[i].Name = f.Name
	b.items[i].URL = CoerceURL(f.URL)
	b.items[i].Icon = Icon(f.Name)

	return b.items[i], b.save()
}

// Delete removes a bookmark.
func (b *Store) Delete(id string) error {
	i := b.index(id)
	if i < 0 {
		return errors.Wrap(ErrNotFound, id)
	}

	b.items = slices.Delete(b.items, i, i+1)

	return b.save()
}

// Replace swaps in a whole new list, as an import does.
func (b *Store) Replace(items []Bookmark) error {
	b.items = sanitize(items)

	return b.save()
}

// Append adds several bookmarks at once. Entries without a name or url are skipped.
// It returns the number added.
func (b *Store) Append(items []Bookmark) (int, error) {
	added := 0
	for _, in := range items {
		f, err := Form{Name: in.Name, URL: in.URL}.Normalize()
		if err != nil {
			continue
		}

		b.items = append(b.items, Bookmark{
			ID:   b.nextID(),
			Name: f.Name,
			URL:  CoerceURL(f.URL),
			Icon: Icon(f.Name),
		})
		added++
	}

	if added == 0 {
		return 0, nil
	}

	return added, b.save()
}

func (b *Store) save() error {
	if err := store.SaveJSON(b.store, store.KeyBookmarks, b.items); err != nil {
		log.Error().Err(err).Msg("failed to persist bookmarks")
		return errors.Wrap(err, "persist bookmarks")
	}

	return nil
}

func (b *Store) index(id string) int {
	return slices.IndexFunc(b.items, func(bm Bookmark) bool { return bm.ID == id })
}

// nextID derives an id from the clock in milliseconds, bumped until unused.
func (b *Store) nextID() string {
	n := max(b.now().UnixMilli(), b.lastID+1)
	for b.index(strconv.FormatInt(n, 10)) >= 0 {
		n++
	}
	b.lastID = n

	return strconv.FormatInt(n, 10)
}

// sanitize restores the record invariants on data that came from outside:
// entries missing a name or url are dropped, urls get a scheme, icons and ids are filled in.
func sanitize(items []Bookmark) []Bookmark {
	out := make([]Bookmark, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for i, in := range items {
		f, err := Form{Name: in.Name, URL: in.URL}.Normalize()
		if err != nil {
			continue
		}

		bm := Bookmark{ID: in.ID, Name: f.Name, URL: CoerceURL(f.URL), Icon: in.Icon}
		if bm.Icon == "" {
			bm.Icon = Icon(bm.Name)
		}
		if _, dup := seen[bm.ID]; bm.ID == "" || dup {
			bm.ID = freeID(seen, i)
		}
		seen[bm.ID] = struct{}{}

		out = append(out, bm)
	}

	return out
}

// freeID returns the first "import-N" id, N >= from, not in seen.
func freeID(seen map[string]struct{}, from int) string {
	for n := from; ; n++ {
		id := "import-" + strconv.Itoa(n)
		if _, taken := seen[id]; !taken {
			return id
		}
	}
}
