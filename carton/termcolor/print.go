package termcolor

import (
	"fmt"
	"io"
	"os"
)

// Cprint writes the colored form of words to dst.
func Cprint(dst io.Writer, words string, foreground, background Color, styles Attribute) error {
	_, err := io.WriteString(dst, Colored(words, foreground, background, styles))
	return err
}

// Cprintln writes the colored form of words to dst, followed by a newline.
func Cprintln(dst io.Writer, words string, foreground, background Color, styles Attribute) error {
	if err := Cprint(dst, words, foreground, background, styles); err != nil {
		return err
	}
	_, err := fmt.Fprintln(dst)
	return err
}

// Ceprint writes the colored form of words to stderr.
func Ceprint(words string, foreground, background Color, styles Attribute) error {
	return Cprint(os.Stderr, words, foreground, background, styles)
}

// Ceprintln writes the colored form of words to stderr, followed by a newline.
func Ceprintln(words string, foreground, background Color, styles Attribute) error {
	return Cprintln(os.Stderr, words, foreground, background, styles)
}
