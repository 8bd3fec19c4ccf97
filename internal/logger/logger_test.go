package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects logger output to a buffer for one test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return &buf
}

func TestVerboseGating(t *testing.T) {
	t.Run("gated levels are silent by default", func(t *testing.T) {
		buf := capture(t)

		Debug("debug %d", 1)
		Info("info")
		Warn("warn")

		assert.Empty(t, buf.String())
	})

	t.Run("gated levels print when verbose", func(t *testing.T) {
		buf := capture(t)
		SetVerbose(true)

		Debug("searching %q", "pizza")
		Info("ready")
		Warn("slow")

		out := buf.String()
		assert.Contains(t, out, "[DEBUG] searching \"pizza\"\n")
		assert.Contains(t, out, "[INFO] ready\n")
		assert.Contains(t, out, "[WARN] slow\n")
	})
}

func TestError(t *testing.T) {
	t.Run("prints regardless of verbose mode", func(t *testing.T) {
		buf := capture(t)

		Error("failed: %v", "boom")

		assert.Equal(t, "[ERROR] failed: boom\n", buf.String())
	})
}
