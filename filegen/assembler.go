package filegen

import (
	"github.com/declgen/declgen/config"
	"github.com/declgen/declgen/decl"
)

// LeadingComment heads every generated file.
const LeadingComment = "Generated by declgen. DO NOT EDIT."

// FileExtension is the source extension of the target language.
const FileExtension = "swift"

// builtinImports is the fixed import list shared by all generated files.
// Configured additional imports are appended after it, order preserved,
// duplicates kept as written.
var builtinImports = []string{"OpenAPIRuntime", "Foundation"}

// FileHeader is the shared header metadata of one generation run.
type FileHeader struct {
	LeadingComment string   `json:"leading_comment"`
	Imports        []string `json:"imports"`
}

// OutputFile is the final artifact: a file name and a body holding exactly
// one declaration under the shared header. It is constructed once per run
// and handed straight to the writer.
type OutputFile struct {
	Name   string         `json:"name"`
	Header FileHeader     `json:"header"`
	Body   decl.CodeBlock `json:"body"`
}

// Assemble wraps each unit into a complete output-file descriptor.
//
// With a root namespace N configured, the sequence opens with an anchor file
// N.swift whose body is an empty namespace declaration and whose import list
// is intentionally empty, followed by one N_<unit>.swift file per unit in
// split order. Without a namespace, each unit becomes <unit>.swift. Every
// body holds exactly one declaration.
func Assemble(units []Unit, cfg config.Generation) []OutputFile {
	header := FileHeader{
		LeadingComment: LeadingComment,
		Imports:        runImports(cfg.AdditionalImports),
	}

	if cfg.Namespace == "" {
		files := make([]OutputFile, 0, len(units))
		for _, u := range units {
			files = append(files, OutputFile{
				Name:   u.Name + "." + FileExtension,
				Header: header,
				Body:   decl.CodeBlock{Decl: u.Decl},
			})
		}
		return files
	}

	files := make([]OutputFile, 0, len(units)+1)

	// The anchor file declares the namespace itself and imports nothing.
	files = append(files, OutputFile{
		Name:   cfg.Namespace + "." + FileExtension,
		Header: FileHeader{LeadingComment: LeadingComment, Imports: []string{}},
		Body:   decl.CodeBlock{Decl: decl.NewNamespace(cfg.Namespace)},
	})

	for _, u := range units {
		files = append(files, OutputFile{
			Name:   cfg.Namespace + "_" + u.Name + "." + FileExtension,
			Header: header,
			Body:   decl.CodeBlock{Decl: u.Decl},
		})
	}
	return files
}

// runImports builds the shared import list: built-ins first, then configured
// extras in their given order. The result is a fresh slice so callers cannot
// alias the built-in list.
func runImports(additional []string) []string {
	imports := make([]string, 0, len(builtinImports)+len(additional))
	imports = append(imports, builtinImports...)
	imports = append(imports, additional...)
	return imports
}
