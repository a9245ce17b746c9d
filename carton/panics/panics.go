// Package panics is the abort-with-context primitive used on
// unrecoverable invariant violations.
//
// There is no unwinding, no registered handler and no resume: the banner
// and note go to stderr, the stack trace follows, stderr is flushed and
// the process exits non-zero. It is safe to call from multiple
// goroutines; the exit is the only ordering requirement.
package panics

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/yyc12345/YYCCommonplace-sub000/carton/termcolor"
)

// exitCode is the process exit status after a panic.
const exitCode = 101

// osExit and stderr are swapped out by tests.
var (
	osExit = os.Exit
	stderr = os.Stderr
)

// Panicf formats a note, reports the caller's file and line, and aborts
// the process.
func Panicf(format string, args ...any) {
	file, line := caller(2)
	abort(file, line, fmt.Sprintf(format, args...))
}

// Occur reports file and line explicitly and aborts the process.
func Occur(file string, line int, msg string) {
	abort(file, line, msg)
}

func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "<unknown>", 0
	}
	return file, line
}

func abort(file string, line int, msg string) {
	dst := stderr

	banner := fmt.Sprintf("program paniked at %s:Ln%d", file, line)
	_ = termcolor.Cprintln(dst, banner, termcolor.Red, termcolor.Default, termcolor.AttrDefault)
	fmt.Fprintf(dst, "note: %s\n", msg)
	fmt.Fprintln(dst, "stacktrace: ")
	dst.Write(debug.Stack())

	// Make sure all messages reach the screen before exit.
	_ = dst.Sync()

	osExit(exitCode)
}
