package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexrr04/mini-scheme-interpreter/internal/interp"
	"github.com/alexrr04/mini-scheme-interpreter/internal/lexer"
	"github.com/alexrr04/mini-scheme-interpreter/internal/parser"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a mini-scheme file or expression",
	Long: `Evaluate a mini-scheme program from a file or inline expression.

Unlike plain 'scheme FILE', run does not require a main function: the
top-level forms are evaluated and (main) is invoked only when defined.

Examples:
  # Run a script file
  scheme run program.scm

  # Evaluate an inline expression
  scheme run -e "(display (+ 2 3)) (newline)"

  # Dump the parse tree before running
  scheme run --dump-ast program.scm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parse tree (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	input, _, err := sourceFromArgs(args)
	if err != nil {
		return err
	}

	if dumpAST {
		p := parser.New(lexer.New(input))
		program := p.ParseProgram()
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	it := interp.New(interp.DefaultConfig())
	if err := it.RunProgram(input); err != nil {
		return err
	}
	if it.HasMain() {
		return it.CallMain()
	}
	return nil
}

// sourceFromArgs resolves the program text from either the -e flag or a
// file argument.
func sourceFromArgs(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
