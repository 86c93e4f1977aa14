package filegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declgen/declgen/config"
	"github.com/declgen/declgen/decl"
)

func fileNames(files []OutputFile) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}

func TestAssembleWithoutNamespace(t *testing.T) {
	units := []Unit{
		{Name: "Error", Decl: record("Error")},
		{Name: "Widget", Decl: record("Widget")},
	}

	files := Assemble(units, config.Generation{})

	assert.Equal(t, []string{"Error.swift", "Widget.swift"}, fileNames(files))
	for _, f := range files {
		assert.Equal(t, LeadingComment, f.Header.LeadingComment)
		assert.Equal(t, []string{"OpenAPIRuntime", "Foundation"}, f.Header.Imports)
	}
}

func TestAssembleWithNamespace(t *testing.T) {
	units := []Unit{{Name: "Error", Decl: record("Error")}}

	files := Assemble(units, config.Generation{Namespace: "API"})

	// Anchor file first, then one file per unit in split order.
	require.Equal(t, []string{"API.swift", "API_Error.swift"}, fileNames(files))

	anchor := files[0]
	assert.Empty(t, anchor.Header.Imports, "anchor file intentionally imports nothing")
	assert.Equal(t, LeadingComment, anchor.Header.LeadingComment)
	require.NotNil(t, anchor.Body.Decl)
	assert.Equal(t, decl.KindChoiceType, anchor.Body.Decl.Kind)
	assert.Equal(t, "API", anchor.Body.Decl.Choice.Name)
	assert.Empty(t, anchor.Body.Decl.Choice.Members, "anchor body is an empty namespace declaration")

	assert.Same(t, units[0].Decl, files[1].Body.Decl)
}

func TestAssembleSingleDeclarationInvariant(t *testing.T) {
	// Every body holds exactly one declaration: never an expression, never
	// nothing.
	units := []Unit{
		{Name: "A", Decl: record("A")},
		{Name: "B", Decl: capability("B")},
	}

	for _, cfg := range []config.Generation{{}, {Namespace: "API"}} {
		for _, f := range Assemble(units, cfg) {
			require.NotNil(t, f.Body.Decl, "file %s", f.Name)
			assert.Empty(t, f.Body.Expression, "file %s", f.Name)
		}
	}
}

func TestAssembleImportOrderAndNoDeduplication(t *testing.T) {
	// Built-ins first, then configured extras in their given order.
	// Duplicates are kept as written.
	cfg := config.Generation{
		AdditionalImports: []string{"Logging", "Foundation", "Logging"},
	}

	files := Assemble([]Unit{{Name: "A", Decl: record("A")}}, cfg)

	require.Len(t, files, 1)
	assert.Equal(t,
		[]string{"OpenAPIRuntime", "Foundation", "Logging", "Foundation", "Logging"},
		files[0].Header.Imports)
}

func TestAssembleCollidingNamesNotMerged(t *testing.T) {
	// Unit-name uniqueness is a caller precondition. Two sibling
	// declarations with the same identifier produce two files with the
	// same name; the assembler must not merge or deduplicate them.
	units := []Unit{
		{Name: "Error", Decl: record("Error")},
		{Name: "Error", Decl: capability("Error")},
	}

	files := Assemble(units, config.Generation{Namespace: "API"})

	require.Len(t, files, 3)
	assert.Equal(t, "API_Error.swift", files[1].Name)
	assert.Equal(t, "API_Error.swift", files[2].Name)
	assert.NotSame(t, files[1].Body.Decl, files[2].Body.Decl)
}

func TestAssembleEmptyUnits(t *testing.T) {
	// No units, no namespace: nothing at all.
	assert.Empty(t, Assemble(nil, config.Generation{}))

	// No units with a namespace: the anchor file is still emitted.
	files := Assemble(nil, config.Generation{Namespace: "API"})
	assert.Equal(t, []string{"API.swift"}, fileNames(files))
}
