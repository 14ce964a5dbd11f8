package transfer

import (
	"bytes"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ExportYAML encodes the document as YAML.
func ExportYAML(d Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(err, "encode yaml export")
	}

	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encode yaml export")
	}

	return buf.Bytes(), nil
}
