package transfer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newtab-go/newtab/internal/bookmark"
)

const netscapeFile = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3 ADD_DATE="1700000000">Dev</H3>
    <DL><p>
        <DT><A HREF="https://go.dev/" ADD_DATE="1700000000">The Go
            Programming Language</A>
        <DT><A HREF="https://pkg.go.dev">  </A>
        <DT><A HREF="javascript:alert(1)">Bookmarklet</A>
        <DT><A HREF="place:sort=8">Recent</A>
    </DL><p>
    <DT><A HREF="http://example.com/a?b=c">Example</A>
</DL><p>`

func TestParseNetscape(t *testing.T) {
	got, err := ParseNetscape(strings.NewReader(netscapeFile))
	require.NoError(t, err)

	assert.Equal(t, []bookmark.Bookmark{
		{Name: "The Go Programming Language", URL: "https://go.dev/"},
		{Name: "pkg.go.dev", URL: "https://pkg.go.dev"},
		{Name: "Example", URL: "http://example.com/a?b=c"},
	}, got)
}

func TestParseNetscapeNoLinks(t *testing.T) {
	_, err := ParseNetscape(strings.NewReader("<html><body><p>nothing</p></body></html>"))
	require.ErrorIs(t, err, ErrInvalidFormat)
}
