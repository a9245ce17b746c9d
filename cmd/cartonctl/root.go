// Command cartonctl exercises the carton toolkit from the command line:
// inspecting binstore files, measuring display widths, lexing command
// lines and recoding text between encodings.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/termcolor"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "cartonctl",
	Short: "Inspect and exercise carton toolkit data",
	Long: `cartonctl is a command-line companion for the carton toolkit.

It dumps binstore settings files, measures the terminal display width of
strings, splits shell-like command lines into arguments, and recodes
text between legacy encodings and UTF-8.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether stdout is attached to a terminal.
func isTerminal() bool {
	_, err := unix.IoctlGetTermios(int(os.Stdout.Fd()), unix.TCGETS)
	return err == nil
}

// colorEnabled gates every colored write.
func colorEnabled() bool {
	return !noColor && isTerminal()
}

func printInfo(format string, args ...any) {
	fmt.Printf(format, args...)
}

func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Printf(format, args...)
	}
}

// printHeading writes a heading line, bold and colored when allowed.
func printHeading(text string) {
	if colorEnabled() {
		_ = termcolor.Cprintln(os.Stdout, text, termcolor.Cyan, termcolor.Default, termcolor.Bold)
		return
	}
	fmt.Println(text)
}
