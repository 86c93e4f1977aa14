package filegen

import (
	"github.com/declgen/declgen/decl"
)

// Unit is one flattened (name, declaration) pair destined for exactly one
// output file. It has no identity beyond this pairing; the assembler
// consumes it once and discards it.
type Unit struct {
	Name string
	Decl *decl.Declaration
}

// Split flattens a declaration tree into an ordered sequence of units.
// Document member order is the ordering key throughout, so the result is
// deterministic and stable across runs on identical input.
//
// Split is total: it never fails. Declarations it does not handle contribute
// no unit and are reported through the returned diagnostics.
func Split(d *decl.Declaration) ([]Unit, []Diagnostic) {
	s := &splitter{}
	s.split(d)
	return s.units, s.diags
}

// SplitBlock splits a top-level code block. Expression-only blocks produce
// no units.
func SplitBlock(b decl.CodeBlock) ([]Unit, []Diagnostic) {
	if b.Decl == nil {
		return nil, []Diagnostic{expressionBlock(b.Expression)}
	}
	return Split(b.Decl)
}

type splitter struct {
	units []Unit
	diags []Diagnostic
}

// split applies the splitting rules to one declaration, appending units
// depth-first in document order.
func (s *splitter) split(d *decl.Declaration) {
	switch d.Kind {
	case decl.KindTypeRecord:
		// A record is always its own unit. Fields are opaque here.
		s.emit(d.Record.Name, d)

	case decl.KindChoiceType:
		if !d.Choice.IsNamespace() {
			// At least one value case: a genuine data type, emitted whole.
			s.emit(d.Choice.Name, d)
			return
		}
		// Every member is a nested declaration: a transparent namespace.
		// The wrapper's own identifier is discarded; it contributes no
		// unit and no name prefix to its children.
		for _, m := range d.Choice.Members {
			s.split(m.Decl)
		}

	case decl.KindCapability:
		s.emit(d.Capability.Name, d)

	case decl.KindAnnotated:
		// The inner declaration splits by its own rule. The note is not
		// attached at the unit level; record the elision so callers can
		// see the information loss.
		s.diags = append(s.diags, elidedAnnotation(d.Annotated.Note, d.Identifier()))
		s.split(d.Annotated.Decl)

	default:
		// Kinds not handled above produce no output file.
		s.diags = append(s.diags, unhandledDeclaration(d.Kind, d.Identifier()))
	}
}

func (s *splitter) emit(name string, d *decl.Declaration) {
	s.units = append(s.units, Unit{Name: name, Decl: d})
}
