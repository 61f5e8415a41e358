package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberlang/emberc/internal/astjson"
	"github.com/emberlang/emberc/internal/config"
	"github.com/emberlang/emberc/internal/diagnostics"
	"github.com/emberlang/emberc/internal/semantic"
)

var checkCmd = &cobra.Command{
	Use:   "check [ast.json]",
	Short: "Type-check a JSON-encoded AST",
	Long: `check loads the documented JSON AST interchange format an external
lexer/parser would emit, runs the semantic checker over it, and prints
any diagnostics.

Examples:
  emberc check program.ast.json
  emberc check --no-color program.ast.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read AST file %s: %w", path, err)
	}

	doc, root, err := astjson.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode AST: %w", err)
	}

	color := config.ResolveColor(cfg, noColor, false)
	reporter := diagnostics.New(os.Stdout, doc.Source, color)
	reporter.RunID = runID
	reporter.MaxErrors = cfg.MaxErrors

	checker := semantic.NewChecker(reporter, doc.Source, doc.File)
	checker.Check(root)

	if verbose {
		fmt.Fprintf(os.Stderr, "[%s] %d warning(s), %d error(s)\n", runID, reporter.Warnings(), reporter.Errors())
	}

	if hasErrors(reporter) {
		return fmt.Errorf("semantic analysis failed with %d error(s)", reporter.Errors())
	}
	return nil
}

// hasErrors folds the project config's escalate_warnings setting into
// the reporter's own HasErrors(), without changing how anything rendered.
func hasErrors(r *diagnostics.Reporter) bool {
	if r.HasErrors() {
		return true
	}
	return cfg.EscalateWarnings && r.Warnings() > 0
}
