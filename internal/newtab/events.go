package newtab

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/newtab-go/newtab/internal/modal"
	"github.com/newtab-go/newtab/internal/settings"
)

// UI element ids that are not settings fields.
const (
	EventSearchEngineBtn   = "searchEngineBtn"
	EventSettingsBtn       = "settingsBtn"
	EventCloseSettings     = "closeSettingsBtn"
	EventAddBookmarkBtn    = "addBookmarkBtn"
	EventCloseAddBookmark  = "closeAddBookmarkBtn"
	EventCancelAddBookmark = "cancelAddBookmark"
	EventCloseEditBookmark = "closeEditBookmarkBtn"
	EventCancelEdit        = "cancelEditBookmark"
	EventDeleteBookmark    = "deleteBookmark"
	EventModalOverlay      = "modalOverlay"

	EventResetSettings = "resetSettings"
	EventConfirmReset  = "confirmReset"
	EventCancelConfirm = "cancelConfirm"
	EventDismissNotice = "dismissNotice"

	EventHubBtn         = "russianHubBtn"
	EventCloseHub       = "closeRussianHubBtn"
	EventHubOverlay     = "russianHubOverlay"
	EventHubTab         = "hubTab"
	EventFlipFlashcard  = "flipFlashcard"
	EventPrevFlashcard  = "prevFlashcard"
	EventNextFlashcard  = "nextFlashcard"
	EventMastered       = "masteredBtn"
	EventNeedPractice   = "needPracticeBtn"
	EventLetter         = "letter"
	EventLetterMastery  = "letterMastery"
	EventExampleMastery = "exampleMastery"
)

// ErrUnknownEvent is returned by Dispatch for elements without a handler.
var ErrUnknownEvent = errors.New("unknown ui element")

// EventHandler reacts to one UI element. value carries the element's value,
// if it has one: the chosen option, the slider position or an item index.
type EventHandler func(value string) error

// Confirm is a pending yes/no question.
type Confirm struct {
	Text   string
	Accept string
	Cancel string
}

// Dispatch routes a UI event to its handler.
func (p *Page) Dispatch(element, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.routes[element]
	if !ok {
		return errors.Wrap(ErrUnknownEvent, element)
	}

	return h(value)
}

// Events lists every routed element id.
func (p *Page) Events() []string {
	out := make([]string, 0, len(p.routes))
	for k := range p.routes {
		out = append(out, k)
	}

	return out
}

// buildRoutes creates the routing table once, at construction.
func (p *Page) buildRoutes() map[string]EventHandler {
	routes := map[string]EventHandler{
		EventSearchEngineBtn:   p.open(modal.Settings),
		EventSettingsBtn:       p.open(modal.Settings),
		EventCloseSettings:     p.close(modal.Settings),
		EventAddBookmarkBtn:    p.open(modal.AddBookmark),
		EventCloseAddBookmark:  p.close(modal.AddBookmark),
		EventCancelAddBookmark: p.close(modal.AddBookmark),
		EventCloseEditBookmark: p.close(modal.EditBookmark),
		EventCancelEdit:        p.close(modal.EditBookmark),

		EventDeleteBookmark: func(string) error {
			if p.editing == "" {
				return nil
			}

			return p.deleteBookmark(p.editing)
		},
		EventModalOverlay: func(id string) error {
			p.modals.Dismiss(id, id)
			return nil
		},

		EventResetSettings: func(string) error {
			p.confirm = &Confirm{Text: MsgResetConfirm, Accept: EventConfirmReset, Cancel: EventCancelConfirm}
			return nil
		},
		EventConfirmReset: func(string) error {
			if p.confirm == nil {
				return nil
			}
			p.confirm = nil

			if err := p.settings.Reset(); err != nil {
				return err
			}
			p.notify(MsgResetDone)

			return nil
		},
		EventCancelConfirm: func(string) error {
			p.confirm = nil
			return nil
		},
		EventDismissNotice: func(string) error {
			if len(p.notices) > 0 {
				p.notices = p.notices[1:]
			}

			return nil
		},

		EventHubBtn:        func(string) error { p.hub.Open(); return nil },
		EventCloseHub:      func(string) error { p.hub.Close(); return nil },
		EventHubOverlay:    func(string) error { p.hub.Close(); return nil },
		EventHubTab:        p.hub.SwitchTab,
		EventFlipFlashcard: func(string) error { p.hub.Flip(); return nil },
		EventPrevFlashcard: func(string) error { p.hub.Prev(); return nil },
		EventNextFlashcard: func(string) error { p.hub.Next(); return nil },
		EventMastered:      func(string) error { return p.hub.MarkMastered() },
		EventNeedPractice:  func(string) error { return p.hub.MarkNeedsPractice() },

		EventLetter: withIndex(func(i int) error {
			_, err := p.letter(i)
			return err
		}),
		EventLetterMastery:  withIndex(p.hub.ToggleLetter),
		EventExampleMastery: withIndex(p.hub.ToggleExample),
	}

	for _, key := range settings.Keys() {
		if key == settings.KeyCustomBackground {
			continue
		}

		routes[key] = func(value string) error {
			return p.settings.Set(key, value)
		}
	}

	return routes
}

func (p *Page) open(id string) EventHandler {
	return func(string) error { return p.modals.Open(id) }
}

func (p *Page) close(id string) EventHandler {
	return func(string) error { return p.modals.Close(id) }
}

func withIndex(fn func(int) error) EventHandler {
	return func(value string) error {
		i, err := cast.ToIntE(value)
		if err != nil {
			return errors.Wrapf(err, "item index %q", value)
		}

		return fn(i)
	}
}
