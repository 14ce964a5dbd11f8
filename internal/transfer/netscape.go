package transfer

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"github.com/newtab-go/newtab/internal/bookmark"
)

// ParseNetscape reads a Netscape bookmark file, the bookmarks.html every
// browser exports. Only http and https links are returned, in file order.
func ParseNetscape(r io.Reader) ([]bookmark.Bookmark, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse bookmark file")
	}

	var out []bookmark.Bookmark

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)

		u, err := url.Parse(href)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return
		}

		name := strings.Join(strings.Fields(a.Text()), " ")
		if name == "" {
			name = u.Hostname()
		}

		out = append(out, bookmark.Bookmark{Name: name, URL: href})
	})

	if len(out) == 0 {
		return nil, errors.Wrap(ErrInvalidFormat, "no links found")
	}

	return out, nil
}
