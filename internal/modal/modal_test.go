package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) (*Controller, *[]string) {
	t.Helper()

	var resets []string
	c := New(DefaultDialogs, func(id string) { resets = append(resets, id) })

	return c, &resets
}

func TestOpenClose(t *testing.T) {
	c, resets := newController(t)

	require.NoError(t, c.Open(AddBookmark))
	assert.True(t, c.IsOpen())
	assert.True(t, c.IsActive(AddBookmark))
	assert.True(t, c.ScrollLocked())
	assert.Equal(t, "bookmarkName", c.Focus())

	require.NoError(t, c.Close(AddBookmark))
	assert.False(t, c.IsOpen())
	assert.False(t, c.ScrollLocked())
	assert.Equal(t, SearchInput, c.Focus())
	assert.Equal(t, []string{AddBookmark}, *resets)
}

func TestUnknownDialog(t *testing.T) {
	c, _ := newController(t)

	require.ErrorIs(t, c.Open("helpModal"), ErrUnknownDialog)
	require.ErrorIs(t, c.Close("helpModal"), ErrUnknownDialog)
	assert.False(t, c.IsOpen())
}

func TestCloseAll(t *testing.T) {
	c, resets := newController(t)

	require.NoError(t, c.Open(Settings))
	require.NoError(t, c.Open(EditBookmark))
	assert.Equal(t, []string{Settings, EditBookmark}, c.Active())

	c.CloseAll()
	assert.Empty(t, c.Active())
	assert.Equal(t, []string{Settings, EditBookmark}, *resets)
}

func TestDismiss(t *testing.T) {
	c, _ := newController(t)
	require.NoError(t, c.Open(Settings))

	assert.False(t, c.Dismiss(Settings, "themeOption"))
	assert.True(t, c.IsActive(Settings))

	assert.True(t, c.Dismiss(Settings, Settings))
	assert.False(t, c.IsOpen())

	assert.False(t, c.Dismiss(Settings, Settings))
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name        string
		open        string
		overlayOpen bool
		key         string
		want        KeyResult
		stillOpen   bool
	}{
		{name: "slash focuses search", key: "/", want: KeyResult{Handled: true, ClearSearch: true}},
		{name: "slash ignored with dialog", open: Settings, key: "/", stillOpen: true},
		{name: "slash ignored with overlay", overlayOpen: true, key: "/"},
		{name: "escape closes dialogs", open: AddBookmark, key: "Escape", want: KeyResult{Handled: true}},
		{name: "escape without dialogs", key: "Escape"},
		{name: "other keys ignored", open: Settings, key: "a", stillOpen: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newController(t)
			if tc.open != "" {
				require.NoError(t, c.Open(tc.open))
			}

			assert.Equal(t, tc.want, c.HandleKey(tc.key, tc.overlayOpen))
			assert.Equal(t, tc.stillOpen, c.IsOpen())
		})
	}
}
