package retag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressTracker(t *testing.T) {
	t.Run("reports at the configured interval", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 100, 10)
		tracker.Start()

		tracker.Increment(5)
		assert.Empty(t, buf.String(), "below the interval, nothing reported")

		tracker.Increment(5)
		assert.Contains(t, buf.String(), "10/100")
		assert.Contains(t, buf.String(), "10.0%")
	})

	t.Run("finish prints the final line", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 50, 10)
		tracker.Start()
		tracker.Increment(3)
		tracker.Finish()

		out := buf.String()
		assert.Contains(t, out, "50/50")
		assert.Contains(t, out, "100.0%")
		assert.True(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("current is capped at total", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 10, 1)
		tracker.Start()
		tracker.Increment(25)
		assert.Contains(t, buf.String(), "10/10")
	})

	t.Run("no output before start", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 10, 1)
		tracker.Increment(5)
		tracker.Finish()
		assert.Empty(t, buf.String())
		assert.Zero(t, tracker.Elapsed())
	})

	t.Run("elapsed runs from start", func(t *testing.T) {
		var buf bytes.Buffer
		tracker := NewProgressTracker(&buf, 10, 1)
		tracker.Start()
		require.GreaterOrEqual(t, tracker.Elapsed().Nanoseconds(), int64(0))
	})
}
