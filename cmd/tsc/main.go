// Command tsc is the CLI entry point: it lexes, parses and type-checks
// TypeScript source files and reports diagnostics, mirroring the logging
// and flag conventions of the pack's other spf13/cobra-based CLIs.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/Scoutboy06/tsc-go/internal/batch"
	"github.com/Scoutboy06/tsc-go/internal/diag"
	"github.com/Scoutboy06/tsc-go/internal/parser"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	root := &cobra.Command{
		Use:   "tsc",
		Short: "Lex, parse and type-check TypeScript source files",
	}
	root.AddCommand(newCheckCommand())
	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version.String())
			return nil
		},
	}
}

func newCheckCommand() *cobra.Command {
	var asJSON bool
	var poolSize int

	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Parse and type-check one or more source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, asJSON, poolSize)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit diagnostics as JSON instead of text")
	cmd.Flags().IntVar(&poolSize, "concurrency", batch.DefaultPoolSize, "number of files to check concurrently")
	return cmd
}

type jsonReport struct {
	RunID       string          `json:"run_id"`
	File        string          `json:"file"`
	Error       string          `json:"error,omitempty"`
	Diagnostics []jsonDiagnostic `json:"diagnostics,omitempty"`
}

type jsonDiagnostic struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func runCheck(paths []string, asJSON bool, poolSize int) error {
	runID := uuid.NewString()
	logger.Info("starting check run", "run_id", runID, "files", len(paths))

	files := make([]batch.File, len(paths))
	sources := make(map[string]string, len(paths))
	for i, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		files[i] = batch.File{Path: p, Source: string(src)}
		sources[p] = string(src)
	}

	results, err := batch.Run(files, poolSize)
	if err != nil {
		return fmt.Errorf("running batch: %w", err)
	}

	useColor := diag.IsColorTerminal(os.Stdout)
	exitCode := 0

	for _, r := range results {
		if r.Err != nil {
			exitCode = 1
		} else if len(r.Diagnostics) > 0 {
			exitCode = 1
		}

		if asJSON {
			report := jsonReport{RunID: runID, File: r.Path}
			if r.Err != nil {
				report.Error = r.Err.Error()
			}
			for _, d := range r.Diagnostics {
				line, col := diag.LineCol(sources[r.Path], d.Span.Start)
				sev := "error"
				if d.Severity != 0 {
					sev = "warning"
				}
				report.Diagnostics = append(report.Diagnostics, jsonDiagnostic{
					Line: line, Column: col, Severity: sev, Message: d.Message(),
				})
			}
			enc, _ := json.Marshal(report)
			fmt.Println(string(enc))
			continue
		}

		if r.Err != nil {
			var parseErr *parser.Error
			if errors.As(r.Err, &parseErr) {
				fmt.Fprintf(os.Stderr, "%s:\n%s", r.Path, parseErr.Print())
			} else {
				fmt.Fprintf(os.Stderr, "%s: %s\n", r.Path, r.Err)
			}
			continue
		}
		if len(r.Diagnostics) == 0 {
			continue
		}
		fmt.Print(diag.FormatAll(r.Path, sources[r.Path], r.Diagnostics, useColor))
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}
