package newtab

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// ErrNotImage is returned for background uploads that are not images.
var ErrNotImage = errors.New("uploaded file is not an image")

// DataURL encodes an uploaded image the way a browser file reader does.
func DataURL(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.Wrap(ErrNotImage, "empty file")
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", errors.Wrap(ErrNotImage, mt.String())
	}

	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
