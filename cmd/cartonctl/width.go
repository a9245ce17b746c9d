package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/wcwidth"
)

func init() {
	rootCmd.AddCommand(newWidthCmd())
}

func newWidthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "width <string>...",
		Short: "Measure terminal display width of strings",
		Long: `The width command measures how many terminal cells each string
occupies, honoring East Asian wide characters, zero-width joiners, VS16
promotion and ANSI escape sequences.

Example:
  cartonctl width hello 你好`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidth(args)
		},
	}
}

func runWidth(args []string) error {
	for _, arg := range args {
		w, err := wcwidth.Wcswidth(arg)
		if err != nil {
			return fmt.Errorf("cannot measure %q: %w", arg, err)
		}
		printInfo("%d\t%s\n", w, arg)
	}
	return nil
}
