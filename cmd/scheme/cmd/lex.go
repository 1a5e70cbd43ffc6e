package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexrr04/mini-scheme-interpreter/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a mini-scheme file or expression",
	Long: `Print the token stream produced by the lexer, one token per line
with its source position. Useful when debugging the grammar.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		input, _, err := sourceFromArgs(args)
		if err != nil {
			return err
		}
		for _, tok := range lexer.New(input).Tokens() {
			fmt.Printf("%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}
