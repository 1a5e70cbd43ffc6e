package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexrr04/mini-scheme-interpreter/internal/interp"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "scheme [file]",
	Short: "Mini Scheme interpreter",
	Long: `scheme is a tree-walking interpreter for mini-scheme, a small
dialect of Scheme with integers, floats, strings, booleans, lists,
user-defined functions, conditionals and recursion.

Without arguments it starts an interactive REPL. With a file argument it
evaluates the file's top-level forms and then invokes (main).`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runScriptFile(args[0])
		}
		return runREPL()
	},
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
}

// runScriptFile evaluates a whole file in script mode and then invokes
// (main). Top-level results are suppressed; a missing main is an error.
func runScriptFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	it := interp.New(interp.DefaultConfig())
	if err := it.RunProgram(string(content)); err != nil {
		return err
	}
	if !it.HasMain() {
		return fmt.Errorf("no main function defined")
	}
	return it.CallMain()
}

// runREPL starts the interactive loop. The prompt is suppressed when
// stdin is not a terminal, so piped input does not echo prompts. SIGINT
// and EOF both exit cleanly with status 0.
func runREPL() error {
	cfg := interp.DefaultConfig()
	cfg.Interactive = true
	it := interp.New(cfg)

	showPrompt := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	handleInterrupt()
	return it.RunREPL(os.Stderr, showPrompt)
}
