package semantic

import (
	"fmt"

	"github.com/Scoutboy06/tsc-go/internal/atom"
	"github.com/Scoutboy06/tsc-go/internal/helpers"
	"github.com/Scoutboy06/tsc-go/internal/span"
)

// DiagnosticKind classifies a semantic diagnostic. Unlike a parser Error,
// diagnostics accumulate: the analyzer keeps visiting the rest of the tree
// after emitting one.
type DiagnosticKind uint8

const (
	UnknownVariable DiagnosticKind = iota
	UseBeforeInit
	TypeMismatch
	InvalidNumberOfArguments
	InternalError
)

// Severity distinguishes diagnostics that indicate definitely-broken code
// from advisory ones.
type Severity uint8

const (
	Critical Severity = iota
	Warning
)

// Diagnostic is one accumulated semantic finding.
type Diagnostic struct {
	Kind         DiagnosticKind
	Span         span.Span
	Severity     Severity
	Identifier   atom.Atom
	Expected     ResolvedType
	Received     ResolvedType
	ExpectedArgs int
	ReceivedArgs int
}

// Message renders the diagnostic's human-readable text, independent of its
// source-position prefix.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case UnknownVariable:
		return fmt.Sprintf("unknown variable %s", helpers.QuoteSingle(d.Identifier.String(), false))
	case UseBeforeInit:
		return fmt.Sprintf("%s is used before it is initialized", helpers.QuoteSingle(d.Identifier.String(), false))
	case TypeMismatch:
		return fmt.Sprintf("type mismatch: expected %s, received %s", d.Expected.String(), d.Received.String())
	case InvalidNumberOfArguments:
		return fmt.Sprintf("expected %d arguments, received %d", d.ExpectedArgs, d.ReceivedArgs)
	case InternalError:
		return "internal error"
	default:
		return "unknown diagnostic"
	}
}
