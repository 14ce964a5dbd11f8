package newtab

import (
	"github.com/newtab-go/newtab/internal/bookmark"
	"github.com/newtab-go/newtab/internal/hub"
	"github.com/newtab-go/newtab/internal/modal"
	"github.com/newtab-go/newtab/internal/view"
)

// LetterItem is an alphabet cell.
type LetterItem struct {
	Index    int
	Letter   hub.Letter
	Mastered bool
}

// PhraseItem is an example cell.
type PhraseItem struct {
	Index    int
	Phrase   hub.Phrase
	Mastered bool
}

// HubState is the rendered learning panel.
type HubState struct {
	Open         bool
	Tab          string
	Tabs         []string
	CardIndex    int
	CardCount    int
	Card         hub.Flashcard
	Flipped      bool
	CardMastered bool
	Letters      []LetterItem
	Phrases      []PhraseItem
	Progress     hub.Progress
}

// ModalState is the rendered dialog state.
type ModalState struct {
	Active       map[string]bool
	Focus        string
	ScrollLocked bool
	AddForm      bookmark.Form
	EditForm     bookmark.Form
	EditID       string
}

// State is everything a render needs, copied out of the page.
type State struct {
	View        *view.View
	Grid        bookmark.Grid
	Hub         HubState
	Modals      ModalState
	Notices     []string
	Confirm     *Confirm
	Speech      *hub.Utterance
	ClearSearch bool
}

// Snapshot copies the page state for rendering. Queued acknowledgements,
// a pending speech request and the search clear flag are handed out once.
func (p *Page) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := State{
		View:        p.view.Clone(),
		Grid:        p.grid,
		Hub:         p.hubState(),
		Modals:      p.modalState(),
		Notices:     p.notices,
		Speech:      p.speech,
		ClearSearch: p.clearSearch,
	}
	if p.confirm != nil {
		c := *p.confirm
		s.Confirm = &c
	}

	p.notices = nil
	p.speech = nil
	p.clearSearch = false

	return s
}

func (p *Page) hubState() HubState {
	idx, card := p.hub.Card()

	hs := HubState{
		Open:         p.hub.IsOpen(),
		Tab:          p.hub.Tab(),
		Tabs:         hub.Tabs,
		CardIndex:    idx,
		CardCount:    len(hub.Flashcards()),
		Card:         card,
		Flipped:      p.hub.Flipped(),
		CardMastered: p.hub.IsMastered(hub.CategoryFlashcard, idx),
		Progress:     p.hub.Progress(),
	}

	for i, l := range hub.Alphabet() {
		hs.Letters = append(hs.Letters, LetterItem{Index: i, Letter: l, Mastered: p.hub.IsMastered(hub.CategoryAlphabet, i)})
	}
	for i, ph := range hub.Phrases() {
		hs.Phrases = append(hs.Phrases, PhraseItem{Index: i, Phrase: ph, Mastered: p.hub.IsMastered(hub.CategoryExample, i)})
	}

	return hs
}

func (p *Page) modalState() ModalState {
	ms := ModalState{
		Active:       make(map[string]bool),
		Focus:        p.modals.Focus(),
		ScrollLocked: p.modals.ScrollLocked(),
		AddForm:      p.drafts[modal.AddBookmark],
		EditForm:     p.drafts[modal.EditBookmark],
		EditID:       p.editing,
	}
	for _, id := range p.modals.Active() {
		ms.Active[id] = true
	}

	return ms
}
