package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yyc12345/YYCCommonplace-sub000/encoding/pycodec"
)

var (
	convertFrom string
	convertTo   string
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertFrom, "from", "utf-8", "Source encoding name")
	cmd.Flags().StringVar(&convertTo, "to", "utf-8", "Destination encoding name")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert",
		Short: "Recode stdin between encodings",
		Long: `The convert command reads bytes from stdin, decodes them with the
--from encoding and writes them to stdout in the --to encoding. Encoding
names follow the Python codec registry ("utf-8", "gbk", "cp1252", ...).

Example:
  cartonctl convert --from gbk --to utf-8 < legacy.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert()
		},
	}
}

func runConvert() error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	decoded, err := pycodec.NewCharToUtf8(convertFrom).ToUtf8(input)
	if err != nil {
		return fmt.Errorf("cannot decode from %s: %w", convertFrom, err)
	}

	output, err := pycodec.NewUtf8ToChar(convertTo).ToChar(decoded)
	if err != nil {
		return fmt.Errorf("cannot encode to %s: %w", convertTo, err)
	}

	if _, err := os.Stdout.Write(output); err != nil {
		return fmt.Errorf("failed to write stdout: %w", err)
	}
	printVerbose("%d bytes in, %d bytes out\n", len(input), len(output))
	return nil
}
