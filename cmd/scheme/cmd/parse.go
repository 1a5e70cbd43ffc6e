package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexrr04/mini-scheme-interpreter/internal/lexer"
	"github.com/alexrr04/mini-scheme-interpreter/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a mini-scheme file or expression",
	Long: `Parse the input and print the tree rendered back as scheme
syntax. Syntax errors are listed with their count and make the command
exit non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		input, _, err := sourceFromArgs(args)
		if err != nil {
			return err
		}
		p := parser.New(lexer.New(input))
		program := p.ParseProgram()
		if n := len(p.Errors()); n > 0 {
			fmt.Printf("Syntax errors found: %d\n", n)
			for _, msg := range p.Errors() {
				fmt.Println("  " + msg)
			}
			if dump := program.String(); dump != "" {
				fmt.Println(dump)
			}
			return fmt.Errorf("parsing failed with %d error(s)", n)
		}
		fmt.Println(program.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}
