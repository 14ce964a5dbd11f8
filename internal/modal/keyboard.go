package modal

// KeyResult tells the caller what a global key press did.
type KeyResult struct {
	Handled     bool
	ClearSearch bool
}

// HandleKey runs the page-wide shortcuts: Escape closes every dialog, and "/"
// focuses and clears the search box when no dialog and no overlay is open.
func (c *Controller) HandleKey(key string, overlayOpen bool) KeyResult {
	switch key {
	case "Escape":
		open := c.IsOpen()
		c.CloseAll()

		return KeyResult{Handled: open}
	case "/":
		if c.IsOpen() || overlayOpen {
			return KeyResult{}
		}
		c.FocusSearch()

		return KeyResult{Handled: true, ClearSearch: true}
	}

	return KeyResult{}
}
