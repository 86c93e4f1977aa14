package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declgen/declgen/errors"
	"github.com/declgen/declgen/filegen"
)

const testDocument = `
components:
  kind: choice_type
  choice:
    name: Components
    members:
      - decl:
          kind: type_record
          record:
            name: Error
`

func TestDocumentTranslator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "components.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDocument), 0644))

	root, err := documentTranslator(path)()
	require.NoError(t, err)
	assert.Equal(t, "Components", root.Identifier())
}

func TestDocumentTranslatorFailureIsTranslationError(t *testing.T) {
	// A missing or malformed document surfaces as a translation failure,
	// which the generator propagates without partial output.
	_, err := documentTranslator(filepath.Join(t.TempDir(), "missing.yaml"))()

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTranslation))
}

func TestWriteManifest(t *testing.T) {
	files := []filegen.OutputFile{
		{Name: "Error.swift", Header: filegen.FileHeader{LeadingComment: filegen.LeadingComment, Imports: []string{"Foundation"}}},
	}
	path := filepath.Join(t.TempDir(), "manifest.json")

	require.NoError(t, writeManifest(files, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []filegen.OutputFile
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Error.swift", decoded[0].Name)
	assert.Equal(t, filegen.LeadingComment, decoded[0].Header.LeadingComment)
}
