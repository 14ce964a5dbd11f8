package bookmark

// Placeholder is shown in place of an empty grid.
const Placeholder = `No bookmarks yet. Click "Add Site" to get started!`

// IconResolver maps a bookmark url to a favicon image url. ok is false when
// no icon can be derived, in which case the fallback glyph is shown.
type IconResolver interface {
	URL(target string) (iconURL string, ok bool)
}

// Cell is one rendered grid item.
type Cell struct {
	ID      string
	Name    string
	URL     string
	Icon    string
	Favicon string
	EditURL string
}

// Grid is the rendered bookmark area.
type Grid struct {
	Placeholder string
	Cells       []Cell
}

// Empty reports whether the placeholder is shown.
func (g Grid) Empty() bool {
	return len(g.Cells) == 0
}

// Render builds the grid from the current list. The resolver may be nil.
func (b *Store) Render(icons IconResolver) Grid {
	if len(b.items) == 0 {
		return Grid{Placeholder: Placeholder}
	}

	cells := make([]Cell, 0, len(b.items))
	for _, bm := range b.items {
		c := Cell{
			ID:      bm.ID,
			Name:    bm.Name,
			URL:     bm.URL,
			Icon:    bm.Icon,
			EditURL: "/bookmarks/" + bm.ID + "/edit",
		}
		if icons != nil {
			if u, ok := icons.URL(bm.URL); ok {
				c.Favicon = u
			}
		}
		cells = append(cells, c)
	}

	return Grid{Cells: cells}
}
