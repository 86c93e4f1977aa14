// Package decl defines the abstract declaration tree consumed by the file
// generator. The upstream translator turns an API-interface document into a
// single nested tree of these declarations; declgen only reads the tree, it
// never mutates it.
//
// Declaration is a closed tagged variant: Kind selects which payload is set,
// and exactly one payload is set per node. Consumers switch on Kind with an
// explicit default arm so that adding a new kind is a compile-visible
// decision, not a silent fallthrough.
package decl

// Kind identifies the variant of a Declaration.
type Kind string

const (
	// KindTypeRecord is a named product type with fields (struct-like).
	KindTypeRecord Kind = "type_record"

	// KindChoiceType is a named sum type. Its members are either value
	// cases (making it a data enum) or nested declarations (making it a
	// namespace-shaped grouping scope).
	KindChoiceType Kind = "choice_type"

	// KindCapability is a named protocol-like contract.
	KindCapability Kind = "capability"

	// KindAnnotated wraps exactly one inner declaration with a
	// deprecation or documentation note.
	KindAnnotated Kind = "annotated"

	// Kinds below are carried through the tree but not individually
	// handled by the splitter. They produce no output files.
	KindTypeAlias Kind = "type_alias"
	KindFunction  Kind = "function"
	KindVariable  Kind = "variable"
	KindExtension Kind = "extension"
)

// Declaration is one node of the translated declaration tree.
// Exactly one payload pointer is non-nil, matching Kind.
type Declaration struct {
	Kind Kind `json:"kind" yaml:"kind"`

	Record     *TypeRecord `json:"record,omitempty" yaml:"record,omitempty"`
	Choice     *ChoiceType `json:"choice,omitempty" yaml:"choice,omitempty"`
	Capability *Capability `json:"capability,omitempty" yaml:"capability,omitempty"`
	Annotated  *Annotated  `json:"annotated,omitempty" yaml:"annotated,omitempty"`

	// Other carries the payload for kinds the splitter does not handle
	// (type_alias, function, variable, extension).
	Other *OtherDecl `json:"other,omitempty" yaml:"other,omitempty"`
}

// TypeRecord is a named product type. The splitter emits it whole; fields
// are opaque at this stage.
type TypeRecord struct {
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Field is one member of a TypeRecord.
type Field struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Optional bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// ChoiceType is a named sum type with ordered members. Member order is the
// document order and is the ordering key for all downstream output.
type ChoiceType struct {
	Name    string         `json:"name" yaml:"name"`
	Members []ChoiceMember `json:"members,omitempty" yaml:"members,omitempty"`
}

// ChoiceMember is either a value case or a nested declaration, never both.
type ChoiceMember struct {
	Case *ValueCase   `json:"case,omitempty" yaml:"case,omitempty"`
	Decl *Declaration `json:"decl,omitempty" yaml:"decl,omitempty"`
}

// ValueCase is a data-carrying case of a ChoiceType.
type ValueCase struct {
	Name     string `json:"name" yaml:"name"`
	RawValue string `json:"raw_value,omitempty" yaml:"raw_value,omitempty"`
}

// Capability is a named protocol-like contract with opaque requirements.
type Capability struct {
	Name         string   `json:"name" yaml:"name"`
	Requirements []string `json:"requirements,omitempty" yaml:"requirements,omitempty"`
}

// NoteKind distinguishes annotation notes.
type NoteKind string

const (
	NoteDeprecated NoteKind = "deprecated"
	NoteDoc        NoteKind = "doc"
)

// Note is a deprecation or documentation annotation.
type Note struct {
	Kind NoteKind `json:"kind" yaml:"kind"`
	Text string   `json:"text,omitempty" yaml:"text,omitempty"`
}

// Annotated wraps exactly one inner declaration with a note.
type Annotated struct {
	Note Note         `json:"note" yaml:"note"`
	Decl *Declaration `json:"decl" yaml:"decl"`
}

// OtherDecl is the shared payload for declaration kinds the splitter drops.
type OtherDecl struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// CodeBlock is a single top-level item: either a declaration or a
// free-standing expression. Expressions never produce output files.
type CodeBlock struct {
	Decl       *Declaration `json:"decl,omitempty" yaml:"decl,omitempty"`
	Expression string       `json:"expression,omitempty" yaml:"expression,omitempty"`
}

// IsNamespace reports whether the choice type is used purely as a grouping
// scope: no member carries a value case. The check is structural on purpose;
// naming conventions play no part in it. An empty choice type counts as a
// namespace and flattens to nothing.
func (c *ChoiceType) IsNamespace() bool {
	for _, m := range c.Members {
		if m.Case != nil {
			return false
		}
	}
	return true
}

// Identifier returns the name carried by the declaration's payload, or ""
// for kinds without one. Annotated declarations answer with the inner
// declaration's identifier.
func (d *Declaration) Identifier() string {
	switch d.Kind {
	case KindTypeRecord:
		if d.Record != nil {
			return d.Record.Name
		}
	case KindChoiceType:
		if d.Choice != nil {
			return d.Choice.Name
		}
	case KindCapability:
		if d.Capability != nil {
			return d.Capability.Name
		}
	case KindAnnotated:
		if d.Annotated != nil && d.Annotated.Decl != nil {
			return d.Annotated.Decl.Identifier()
		}
	default:
		if d.Other != nil {
			return d.Other.Name
		}
	}
	return ""
}

// NewNamespace returns an empty namespace-shaped choice type. The assembler
// uses it as the body of the anchor file when a root namespace is configured.
func NewNamespace(name string) *Declaration {
	return &Declaration{
		Kind:   KindChoiceType,
		Choice: &ChoiceType{Name: name},
	}
}
