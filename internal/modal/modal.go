// Package modal tracks which dialog is open and where keyboard focus goes
// when dialogs open and close.
package modal

import (
	"slices"

	"github.com/pkg/errors"
)

// Dialog ids.
const (
	Settings     = "settingsModal"
	AddBookmark  = "addBookmarkModal"
	EditBookmark = "editBookmarkModal"
)

// SearchInput is the element that regains focus after a dialog closes.
const SearchInput = "searchInput"

// ErrUnknownDialog is returned for ids that are not registered.
var ErrUnknownDialog = errors.New("unknown dialog")

// Dialog describes a registered modal.
type Dialog struct {
	ID         string
	FirstInput string
}

// DefaultDialogs are the page's three modals.
var DefaultDialogs = []Dialog{
	{ID: Settings, FirstInput: "searchEngineGoogle"},
	{ID: AddBookmark, FirstInput: "bookmarkName"},
	{ID: EditBookmark, FirstInput: "editBookmarkName"},
}

// Controller is the open/close state of every dialog.
type Controller struct {
	dialogs    map[string]Dialog
	order      []string
	active     map[string]bool
	focus      string
	scrollLock bool
	onReset    func(id string)
}

// New returns a controller with every dialog closed and focus on the search box.
// onReset is called with the id of each dialog whose form draft must be discarded.
func New(dialogs []Dialog, onReset func(id string)) *Controller {
	if onReset == nil {
		onReset = func(string) {}
	}

	c := &Controller{
		dialogs: make(map[string]Dialog, len(dialogs)),
		active:  make(map[string]bool, len(dialogs)),
		focus:   SearchInput,
		onReset: onReset,
	}
	for _, d := range dialogs {
		c.dialogs[d.ID] = d
		c.order = append(c.order, d.ID)
	}

	return c
}

// Open activates a dialog, locks page scrolling and focuses its first input.
func (c *Controller) Open(id string) error {
	d, ok := c.dialogs[id]
	if !ok {
		return errors.Wrap(ErrUnknownDialog, id)
	}

	c.active[id] = true
	c.scrollLock = true
	if d.FirstInput != "" {
		c.focus = d.FirstInput
	}

	return nil
}

// Close deactivates a dialog, resets its form and returns focus to the search box.
func (c *Controller) Close(id string) error {
	if _, ok := c.dialogs[id]; !ok {
		return errors.Wrap(ErrUnknownDialog, id)
	}

	delete(c.active, id)
	c.scrollLock = len(c.active) > 0
	c.onReset(id)
	c.focus = SearchInput

	return nil
}

// CloseAll closes every open dialog.
func (c *Controller) CloseAll() {
	for _, id := range c.order {
		if c.active[id] {
			_ = c.Close(id)
		}
	}
}

// Dismiss handles a click on a dialog's overlay. Clicks inside the dialog
// body (target != id) are ignored.
func (c *Controller) Dismiss(id, target string) bool {
	if id != target || !c.active[id] {
		return false
	}

	return c.Close(id) == nil
}

// IsOpen reports whether any dialog is open.
func (c *Controller) IsOpen() bool {
	return len(c.active) > 0
}

// IsActive reports whether one dialog is open.
func (c *Controller) IsActive(id string) bool {
	return c.active[id]
}

// Active returns the open dialogs in registration order.
func (c *Controller) Active() []string {
	return slices.DeleteFunc(slices.Clone(c.order), func(id string) bool { return !c.active[id] })
}

// Focus returns the element that holds keyboard focus.
func (c *Controller) Focus() string {
	return c.focus
}

// ScrollLocked reports whether page scrolling is disabled.
func (c *Controller) ScrollLocked() bool {
	return c.scrollLock
}

// FocusSearch moves focus to the search box.
func (c *Controller) FocusSearch() {
	c.focus = SearchInput
}
