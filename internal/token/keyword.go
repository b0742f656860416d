package token

// Keyword enumerates every reserved word the lexer recognizes. `true`,
// `false` and `null` are not listed here: the lexer folds them directly
// into Boolean/Null literal tokens instead of a generic KeywordTok, the
// same way the teacher's source treats boolean literals.
type Keyword uint8

const (
	Var Keyword = iota
	Let
	Const
	Function
	Return
	Async
	Await
	Static
	If
	Else
	Try
	Catch
	Finally
	While
	Do
	For
	In
	Of
	Break
	Continue
	Throw
	Debugger
	Class
	Abstract
	Extends
	Implements
	New
	This
	Super
	Private
	Protected
	Switch
	Case
	Default
	Type
	Interface
	Typeof
	Enum
	Declare
	Import
	Export
	From
	As

	// Type keywords. These double as identifiers in value position (e.g. an
	// object literal key) and as primitive type annotations in type position.
	StringType
	NumberType
	BooleanType
)

var keywordText = map[Keyword]string{
	Var:         "var",
	Let:         "let",
	Const:       "const",
	Function:    "function",
	Return:      "return",
	Async:       "async",
	Await:       "await",
	Static:      "static",
	If:          "if",
	Else:        "else",
	Try:         "try",
	Catch:       "catch",
	Finally:     "finally",
	While:       "while",
	Do:          "do",
	For:         "for",
	In:          "in",
	Of:          "of",
	Break:       "break",
	Continue:    "continue",
	Throw:       "throw",
	Debugger:    "debugger",
	Class:       "class",
	Abstract:    "abstract",
	Extends:     "extends",
	Implements:  "implements",
	New:         "new",
	This:        "this",
	Super:       "super",
	Private:     "private",
	Protected:   "protected",
	Switch:      "switch",
	Case:        "case",
	Default:     "default",
	Type:        "type",
	Interface:   "interface",
	Typeof:      "typeof",
	Enum:        "enum",
	Declare:     "declare",
	Import:      "import",
	Export:      "export",
	From:        "from",
	As:          "as",
	StringType:  "string",
	NumberType:  "number",
	BooleanType: "boolean",
}

// Keywords maps source text to its Keyword value. Built once from
// keywordText so the two never drift apart.
var Keywords = func() map[string]Keyword {
	m := make(map[string]Keyword, len(keywordText))
	for k, text := range keywordText {
		m[text] = k
	}
	return m
}()

func (k Keyword) String() string {
	if text, ok := keywordText[k]; ok {
		return text
	}
	return "unknown"
}

// AsTypeKeyword returns k itself and true when k is one of the
// primitive type keywords (string/number/boolean), usable both as an
// object-literal key and as a type annotation.
func (k Keyword) AsTypeKeyword() (Keyword, bool) {
	switch k {
	case StringType, NumberType, BooleanType:
		return k, true
	default:
		return 0, false
	}
}
