// Package filegen splits a translated declaration tree into named,
// independently-compilable output files.
//
// # Architecture
//
// The package uses a two-stage design:
//  1. The splitter (splitter.go) flattens the declaration tree into an
//     ordered sequence of (name, declaration) units, eliding transparent
//     namespace wrappers along the way.
//  2. The assembler (assembler.go) wraps each unit in a complete output-file
//     descriptor with the shared header metadata and computes final file
//     names, including the optional root-namespace anchor file.
//
// Generate ties the stages together: it obtains the tree from the upstream
// translator, runs both stages, and returns the ordered file sequence plus
// any diagnostics collected for nodes that produced no output.
//
// # Design Decisions
//
//   - Splitting and assembly are pure functions over immutable input; running
//     them twice on the same tree yields identical output, which enables CI
//     validation via git diff.
//   - A choice type is a namespace when, and only when, none of its members
//     carries a value case. The rule is structural; naming conventions play
//     no part in it.
//   - Nodes the splitter does not handle degrade to a diagnostic rather than
//     an error: generation is best-effort, and callers that need fidelity
//     inspect Result.Diagnostics.
//   - Name collisions between units are a caller precondition. The assembler
//     never merges or deduplicates; colliding file names surface downstream.
package filegen

import (
	"github.com/declgen/declgen/config"
	"github.com/declgen/declgen/decl"
)

// Translator yields the reusable-components declaration tree of a parsed
// interface document. It is supplied by the upstream translation layer and
// may fail on malformed or unsupported documents.
type Translator func() (*decl.Declaration, error)

// Result holds the ordered output files of one generation run together with
// the diagnostics collected while splitting.
type Result struct {
	Files       []OutputFile
	Diagnostics []Diagnostic
}

// Generate runs one translation pass: translate, split, assemble.
//
// A translation failure is returned verbatim with no partial output. The
// pass itself has no failure modes; nodes that produce no output are
// reported through Result.Diagnostics instead.
func Generate(translate Translator, cfg config.Generation) (*Result, error) {
	root, err := translate()
	if err != nil {
		return nil, err
	}

	units, diags := Split(root)
	files := Assemble(units, cfg)

	return &Result{Files: files, Diagnostics: diags}, nil
}
