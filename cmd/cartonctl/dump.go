package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/tabulate"
	"github.com/yyc12345/YYCCommonplace-sub000/internal/buf"
	"github.com/yyc12345/YYCCommonplace-sub000/internal/format"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the records of a binstore settings file",
		Long: `The dump command reads a binstore settings file and lists its
version and records without interpreting the payloads.

Example:
  cartonctl dump settings.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if !buf.Has(data, 0, format.HeaderSize) {
		return fmt.Errorf("file too short for a version header")
	}
	version := format.ReadU64(data, 0)

	printHeading(fmt.Sprintf("binstore file %s (version %d)", path, version))

	table := tabulate.New(3)
	table.SetHeader([]string{"NAME", "SIZE", "PREVIEW"})

	records := 0
	off := format.HeaderSize
	for off < len(data) {
		name, next, err := dumpField(data, off)
		if err != nil {
			return err
		}
		payload, next, err := dumpField(data, next)
		if err != nil {
			return err
		}
		off = next
		records++

		table.AddRow([]string{
			string(name),
			fmt.Sprintf("%d", len(payload)),
			previewPayload(payload),
		})
	}

	if err := table.Print(os.Stdout); err != nil {
		return err
	}
	printVerbose("%d records, %d bytes\n", records, len(data))
	return nil
}

func dumpField(data []byte, off int) ([]byte, int, error) {
	if !buf.Has(data, off, format.U64Size) {
		return nil, 0, fmt.Errorf("truncated record at offset %d", off)
	}
	length := format.ReadU64(data, off)
	if length > format.MaxFieldLen {
		return nil, 0, fmt.Errorf("unreasonable field length %d at offset %d", length, off)
	}
	field, ok := buf.Slice(data, off+format.U64Size, int(length))
	if !ok {
		return nil, 0, fmt.Errorf("truncated field at offset %d", off)
	}
	return field, off + format.U64Size + int(length), nil
}

// previewPayload renders a payload as text when printable, else as hex.
func previewPayload(payload []byte) string {
	const maxPreview = 24
	trimmed := payload
	if len(trimmed) > maxPreview {
		trimmed = trimmed[:maxPreview]
	}
	if utf8.Valid(trimmed) && printable(trimmed) {
		return string(trimmed)
	}
	return fmt.Sprintf("% x", trimmed)
}

func printable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 && c != '\t' {
			return false
		}
	}
	return true
}
