// Package cmd implements the emberc command-line tree, one Cobra
// command per file, registered via init()+rootCmd.AddCommand, the same
// shape as the teacher's cmd/dwscript/cmd.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/emberlang/emberc/internal/config"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose      bool
	noColor      bool
	configPath   string

	// runID tags this invocation in verbose/trace lines, so multiple
	// --verbose runs piped into one log stay distinguishable.
	runID string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "emberc",
	Short: "emberc semantic checker",
	Long: `emberc is the semantic analysis core of a small statically-typed
imperative language: a lexically scoped symbol table, a three-valued
type-compatibility lattice, and a source-location-aware diagnostic
reporter. It consumes an AST produced by an external lexer/parser and
never parses source text itself.`,
	Version:           Version,
	PersistentPreRunE: loadRunConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in diagnostics")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "path to .emberc.yaml")
}

// loadRunConfig runs before every subcommand: it sources .env overrides
// (NO_COLOR, EMBERC_CONFIG), loads .emberc.yaml, and stamps the
// invocation with a run ID for verbose/trace correlation. A missing
// .env file is not an error — it is common for dev environments to
// have none.
func loadRunConfig(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if override := os.Getenv("EMBERC_CONFIG"); override != "" && !cmd.Flags().Changed("config") {
		configPath = override
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	runID = uuid.NewString()
	if verbose {
		fmt.Fprintf(os.Stderr, "[%s] emberc %s starting\n", runID, Version)
	}
	return nil
}
