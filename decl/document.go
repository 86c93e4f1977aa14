package decl

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/declgen/declgen/errors"
)

// Document is a translated declaration document: the output of the upstream
// translator, serialized so it can cross a process boundary. Components is
// the root of the reusable-components declaration tree.
type Document struct {
	Components *Declaration `json:"components" yaml:"components"`
}

// LoadDocument reads a declaration document from disk. Files ending in
// .json are decoded as JSON; everything else is decoded as YAML.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", path)
	}

	var doc Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode JSON document %s", path)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode YAML document %s", path)
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that the document carries a components tree and that the
// tree holds the invariants the in-process translator guarantees.
func (doc *Document) Validate() error {
	if doc.Components == nil {
		return errors.Wrap(errors.ErrInvalidDocument, "document has no components tree")
	}
	return doc.Components.Validate()
}
