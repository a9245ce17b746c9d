package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/lexer61"
)

func init() {
	rootCmd.AddCommand(newLexCmd())
}

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex <command-line>",
		Short: "Split a command-line string into argument tokens",
		Long: `The lex command splits a single command-line string into its
argument tokens, honoring quotes and backslash escapes.

Example:
  cartonctl lex "foo 'a b' c\\ d"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLex(args[0])
		},
	}
}

func runLex(cmdline string) error {
	tokens, err := lexer61.Lex(cmdline)
	if err != nil {
		return fmt.Errorf("cannot lex %q: %w", cmdline, err)
	}
	for i, token := range tokens {
		printInfo("%d\t%s\n", i, token)
	}
	printVerbose("%d tokens\n", len(tokens))
	return nil
}
