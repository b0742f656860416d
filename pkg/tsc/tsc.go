// Package tsc is the public API surface of the module: a thin re-export
// over the internal lexer/parser/semantic packages, the same layering
// esbuild uses between its pkg/api and internal packages.
package tsc

import (
	"github.com/Scoutboy06/tsc-go/internal/ast"
	"github.com/Scoutboy06/tsc-go/internal/batch"
	"github.com/Scoutboy06/tsc-go/internal/lexer"
	"github.com/Scoutboy06/tsc-go/internal/parser"
	"github.com/Scoutboy06/tsc-go/internal/semantic"
	"github.com/Scoutboy06/tsc-go/internal/token"
)

// Program is a parsed source file's syntax tree.
type Program = ast.Program

// Diagnostic is one accumulated semantic finding.
type Diagnostic = semantic.Diagnostic

// ParseError is a fatal syntax error encountered while parsing.
type ParseError = parser.Error

// Lex tokenizes source into a Lexer usable for incremental/streaming
// token-by-token consumption.
func Lex(source string) *lexer.Lexer {
	return lexer.New(source)
}

// Tokenize lexes source to completion and returns every token, including
// the final Eof token.
func Tokenize(source string) []token.Token {
	l := lexer.New(source)
	var tokens []token.Token
	for {
		t := l.NextToken()
		tokens = append(tokens, t)
		if t.Kind == token.Eof {
			break
		}
	}
	return tokens
}

// Parse parses source into a Program, or returns the first fatal syntax
// error encountered.
func Parse(source string) (*Program, error) {
	return parser.Parse(source)
}

// Analyze runs the two-pass semantic checker over an already-parsed
// Program, returning every diagnostic found.
func Analyze(prog *Program) []Diagnostic {
	return semantic.Analyze(prog)
}

// Check parses and analyzes source in one step.
func Check(source string) (*Program, []Diagnostic, error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, nil, err
	}
	return prog, Analyze(prog), nil
}

// BatchFile is one input to CheckAll.
type BatchFile = batch.File

// BatchResult is the outcome of checking one BatchFile.
type BatchResult = batch.Result

// CheckAll runs Check over many files concurrently across a bounded
// worker pool. poolSize <= 0 uses batch.DefaultPoolSize.
func CheckAll(files []BatchFile, poolSize int) ([]BatchResult, error) {
	return batch.Run(files, poolSize)
}
