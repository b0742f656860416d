// Package batch runs lex/parse/analyze over many source files concurrently
// using a bounded worker pool, so a CLI invocation given hundreds of files
// doesn't spin up hundreds of goroutines at once.
package batch

import (
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/Scoutboy06/tsc-go/internal/ast"
	"github.com/Scoutboy06/tsc-go/internal/parser"
	"github.com/Scoutboy06/tsc-go/internal/semantic"
)

// File is one input to a Run: a path (used only for error/diagnostic
// attribution) and its source text.
type File struct {
	Path   string
	Source string
}

// Result is the outcome of checking one File: either a fatal parse error,
// or a program plus whatever diagnostics the analyzer accumulated.
type Result struct {
	Path        string
	Program     *ast.Program
	Diagnostics []semantic.Diagnostic
	Err         error
}

// DefaultPoolSize is used when Run is called with size <= 0.
const DefaultPoolSize = 8

// Run lexes, parses and analyzes every file concurrently across a worker
// pool of the given size, returning one Result per input in the same
// order as files.
func Run(files []File, poolSize int) ([]Result, error) {
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}

	results := make([]Result, len(files))
	var wg sync.WaitGroup

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	for i, f := range files {
		i, f := i, f
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i] = checkOne(f)
		})
		if submitErr != nil {
			wg.Done()
			results[i] = Result{Path: f.Path, Err: submitErr}
		}
	}

	wg.Wait()
	return results, nil
}

func checkOne(f File) Result {
	prog, err := parser.Parse(f.Source)
	if err != nil {
		return Result{Path: f.Path, Err: err}
	}
	diags := semantic.Analyze(prog)
	return Result{Path: f.Path, Program: prog, Diagnostics: diags}
}
