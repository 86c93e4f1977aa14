package decl

import (
	"github.com/declgen/declgen/errors"
)

// Validate checks the structural invariants the upstream translator
// guarantees: a known kind, exactly one payload matching that kind, and a
// non-empty identifier on every named node. It exists for the CLI boundary,
// where trees arrive from disk instead of from the in-process translator.
func (d *Declaration) Validate() error {
	switch d.Kind {
	case KindTypeRecord:
		if d.Record == nil {
			return errors.Wrapf(errors.ErrInvalidDocument, "declaration of kind %q has no record payload", d.Kind)
		}
		if d.Record.Name == "" {
			return errors.Wrap(errors.ErrInvalidDocument, "type record has empty name")
		}

	case KindChoiceType:
		if d.Choice == nil {
			return errors.Wrapf(errors.ErrInvalidDocument, "declaration of kind %q has no choice payload", d.Kind)
		}
		if d.Choice.Name == "" {
			return errors.Wrap(errors.ErrInvalidDocument, "choice type has empty name")
		}
		for i, m := range d.Choice.Members {
			if (m.Case == nil) == (m.Decl == nil) {
				return errors.Wrapf(errors.ErrInvalidDocument,
					"choice type %q member %d must carry exactly one of case or decl", d.Choice.Name, i)
			}
			if m.Case != nil && m.Case.Name == "" {
				return errors.Wrapf(errors.ErrInvalidDocument,
					"choice type %q member %d has empty case name", d.Choice.Name, i)
			}
			if m.Decl != nil {
				if err := m.Decl.Validate(); err != nil {
					return err
				}
			}
		}

	case KindCapability:
		if d.Capability == nil {
			return errors.Wrapf(errors.ErrInvalidDocument, "declaration of kind %q has no capability payload", d.Kind)
		}
		if d.Capability.Name == "" {
			return errors.Wrap(errors.ErrInvalidDocument, "capability has empty name")
		}

	case KindAnnotated:
		if d.Annotated == nil || d.Annotated.Decl == nil {
			return errors.Wrap(errors.ErrInvalidDocument, "annotated declaration has no inner declaration")
		}
		return d.Annotated.Decl.Validate()

	case KindTypeAlias, KindFunction, KindVariable, KindExtension:
		// Unhandled kinds pass through the splitter unsplit; a payload is
		// not required for them.

	default:
		return errors.Wrapf(errors.ErrInvalidDocument, "unknown declaration kind %q", d.Kind)
	}
	return nil
}

// Validate checks that a code block carries a declaration or an expression,
// not both and not neither, and validates the declaration when present.
func (b *CodeBlock) Validate() error {
	if (b.Decl == nil) == (b.Expression == "") {
		return errors.Wrap(errors.ErrInvalidDocument, "code block must carry exactly one of decl or expression")
	}
	if b.Decl != nil {
		return b.Decl.Validate()
	}
	return nil
}
