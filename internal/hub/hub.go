// Package hub implements the Russian learning side panel: the alphabet, a
// circular flash card deck, common phrases and the mastery progress across all three.
package hub

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/newtab-go/newtab/internal/store"
)

// Tabs.
const (
	TabAlphabet   = "alphabet"
	TabFlashcards = "flashcards"
	TabExamples   = "examples"
)

// Mastery key categories.
const (
	CategoryAlphabet  = "alphabet"
	CategoryFlashcard = "flashcard"
	CategoryExample   = "example"
)

// Speech parameters for letter pronunciation.
const (
	SpeechLang = "ru-RU"
	SpeechRate = 0.7
)

var (
	// ErrUnknownTab is returned by SwitchTab.
	ErrUnknownTab = errors.New("unknown hub tab")
	// ErrIndex is returned for item indexes outside their content set.
	ErrIndex = errors.New("item index out of range")
)

// Tabs lists the hub tabs in display order.
var Tabs = []string{TabAlphabet, TabFlashcards, TabExamples}

// Utterance is a text-to-speech request carried out by the browser.
type Utterance struct {
	Text string  `json:"text"`
	Lang string  `json:"lang"`
	Rate float64 `json:"rate"`
}

// Progress is the share of mastered items.
type Progress struct {
	Mastered int
	Total    int
	Percent  float64
}

// Label formats the percentage with one decimal.
func (p Progress) Label() string {
	return strconv.FormatFloat(p.Percent, 'f', 1, 64) + "%"
}

// Hub is the learning panel state.
type Hub struct {
	store    store.Store
	mastered map[string]bool
	open     bool
	tab      string
	card     int
	flipped  bool
}

// New returns a closed hub on the alphabet tab.
func New(s store.Store) *Hub {
	return &Hub{
		store:    s,
		mastered: make(map[string]bool),
		tab:      TabAlphabet,
	}
}

// MasteryKey builds the key of an item in the mastery map.
func MasteryKey(category string, index int) string {
	return category + "-" + strconv.Itoa(index)
}

// Load reads the mastery map. Missing or malformed data leaves it empty.
func (h *Hub) Load() {
	h.mastered = make(map[string]bool)

	var stored map[string]bool
	err := store.LoadJSON(h.store, store.KeyMastery, &stored)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		log.Warn().Err(err).Msg("failed to load mastery map")
	default:
		for k, v := range stored {
			if v {
				h.mastered[k] = true
			}
		}
	}
}

func (h *Hub) Open()        { h.open = true }
func (h *Hub) Close()       { h.open = false }
func (h *Hub) IsOpen() bool { return h.open }
func (h *Hub) Tab() string  { return h.tab }

// SwitchTab activates one of Tabs.
func (h *Hub) SwitchTab(tab string) error {
	for _, t := range Tabs {
		if t == tab {
			h.tab = tab
			return nil
		}
	}

	return errors.Wrap(ErrUnknownTab, tab)
}

// Card returns the current flash card and its index.
func (h *Hub) Card() (int, Flashcard) {
	return h.card, flashcards[h.card]
}

// Flipped reports whether the current card shows its back side.
func (h *Hub) Flipped() bool { return h.flipped }

// Flip turns the current card over.
func (h *Hub) Flip() { h.flipped = !h.flipped }

// Next moves to the following card, wrapping to the first.
func (h *Hub) Next() {
	h.card = (h.card + 1) % len(flashcards)
	h.flipped = false
}

// Prev moves to the preceding card, wrapping to the last.
func (h *Hub) Prev() {
	h.card = (h.card - 1 + len(flashcards)) % len(flashcards)
	h.flipped = false
}

// IsMastered reports whether the item is in the mastery map.
func (h *Hub) IsMastered(category string, index int) bool {
	return h.mastered[MasteryKey(category, index)]
}

// MarkMastered records the current flash card as mastered.
func (h *Hub) MarkMastered() error {
	h.mastered[MasteryKey(CategoryFlashcard, h.card)] = true
	return h.save()
}

// MarkNeedsPractice removes the current flash card from the mastery map.
func (h *Hub) MarkNeedsPractice() error {
	delete(h.mastered, MasteryKey(CategoryFlashcard, h.card))
	return h.save()
}

// ToggleLetter flips the mastery of an alphabet letter.
func (h *Hub) ToggleLetter(index int) error {
	if index < 0 || index >= len(alphabet) {
		return errors.Wrapf(ErrIndex, "letter %d", index)
	}

	return h.toggle(MasteryKey(CategoryAlphabet, index))
}

// ToggleExample flips the mastery of a phrase.
func (h *Hub) ToggleExample(index int) error {
	if index < 0 || index >= len(phrases) {
		return errors.Wrapf(ErrIndex, "example %d", index)
	}

	return h.toggle(MasteryKey(CategoryExample, index))
}

// Progress is recomputed from the mastery map on every call.
func (h *Hub) Progress() Progress {
	total := TotalItems()
	p := Progress{Mastered: len(h.mastered), Total: total}
	p.Percent = float64(p.Mastered) / float64(total) * 100

	return p
}

// LetterDetails is the acknowledgement text shown for a letter.
func LetterDetails(index int) (string, error) {
	if index < 0 || index >= len(alphabet) {
		return "", errors.Wrapf(ErrIndex, "letter %d", index)
	}

	l := alphabet[index]

	return fmt.Sprintf("%s (%s)\nSound: [%s]\nExample: %s", l.Char, l.Name, l.Sound, l.Example), nil
}

// Speech returns the pronunciation request for a letter.
func Speech(index int) (Utterance, error) {
	if index < 0 || index >= len(alphabet) {
		return Utterance{}, errors.Wrapf(ErrIndex, "letter %d", index)
	}

	return Utterance{Text: alphabet[index].Sound, Lang: SpeechLang, Rate: SpeechRate}, nil
}

// HandleKey runs the hub keyboard shortcuts while the hub is open.
// It reports whether the key was consumed.
func (h *Hub) HandleKey(key string) bool {
	if !h.open {
		return false
	}

	switch key {
	case "ArrowLeft":
		h.Prev()
	case "ArrowRight":
		h.Next()
	case " ", "Space":
		h.Flip()
	default:
		return false
	}

	return true
}

func (h *Hub) toggle(key string) error {
	if h.mastered[key] {
		delete(h.mastered, key)
	} else {
		h.mastered[key] = true
	}

	return h.save()
}

func (h *Hub) save() error {
	if err := store.SaveJSON(h.store, store.KeyMastery, h.mastered); err != nil {
		log.Error().Err(err).Msg("failed to persist mastery map")
		return errors.Wrap(err, "persist mastery map")
	}

	return nil
}
