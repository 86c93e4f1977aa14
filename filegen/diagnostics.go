package filegen

import "github.com/declgen/declgen/decl"

// DiagnosticCode classifies why a node produced no output, or what
// information was lost while splitting.
type DiagnosticCode string

const (
	// DiagUnhandledDeclaration marks a declaration kind the splitter has
	// no rule for. The node is dropped from the output.
	DiagUnhandledDeclaration DiagnosticCode = "unhandled-declaration"

	// DiagExpressionBlock marks a free-standing expression code block.
	// Expressions never produce output files.
	DiagExpressionBlock DiagnosticCode = "expression-block"

	// DiagElidedAnnotation marks a deprecation or doc note that was not
	// carried onto the emitted unit.
	DiagElidedAnnotation DiagnosticCode = "elided-annotation"
)

// Diagnostic reports a node that contributed no output or lost information
// during splitting. Diagnostics are collected alongside the output sequence,
// never instead of it.
type Diagnostic struct {
	Code DiagnosticCode `json:"code"`

	// Identifier names the declaration involved, when it has one.
	Identifier string `json:"identifier,omitempty"`

	Message string `json:"message"`
}

func unhandledDeclaration(kind decl.Kind, identifier string) Diagnostic {
	return Diagnostic{
		Code:       DiagUnhandledDeclaration,
		Identifier: identifier,
		Message:    "declaration of kind " + string(kind) + " produces no output file",
	}
}

func expressionBlock(expression string) Diagnostic {
	msg := "expression-only code block produces no output file"
	if expression != "" {
		msg += ": " + expression
	}
	return Diagnostic{Code: DiagExpressionBlock, Message: msg}
}

func elidedAnnotation(note decl.Note, identifier string) Diagnostic {
	return Diagnostic{
		Code:       DiagElidedAnnotation,
		Identifier: identifier,
		Message:    string(note.Kind) + " annotation is not carried onto the emitted unit",
	}
}
