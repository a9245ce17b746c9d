package panics

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureAbort swaps the exit hook and stderr for one abort call,
// returning the exit code and everything that was written.
func captureAbort(t *testing.T, f func()) (int, string) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	oldExit, oldStderr := osExit, stderr
	code := -1
	osExit = func(c int) { code = c }
	stderr = w
	defer func() {
		osExit, stderr = oldExit, oldStderr
	}()

	f()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return code, string(out)
}

func TestPanicfExitsNonZero(t *testing.T) {
	code, out := captureAbort(t, func() {
		Panicf("boom %d", 42)
	})

	assert.NotZero(t, code)
	assert.True(t, strings.Contains(out, "program paniked at"))
	assert.True(t, strings.Contains(out, "panics_test.go"))
	assert.True(t, strings.Contains(out, "note: boom 42"))
	assert.True(t, strings.Contains(out, "stacktrace:"))
}

func TestOccurReportsCallSite(t *testing.T) {
	code, out := captureAbort(t, func() {
		Occur("somefile.go", 61, "invariant violated")
	})

	assert.NotZero(t, code)
	assert.True(t, strings.Contains(out, "somefile.go"))
	assert.True(t, strings.Contains(out, "Ln61"))
	assert.True(t, strings.Contains(out, "note: invariant violated"))
}
