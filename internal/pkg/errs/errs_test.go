//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rolloff-core/internal/pkg/errs"
)

func TestWrapKeepsSentinelVisible(t *testing.T) {
	t.Run("Wrap", func(t *testing.T) {
		err := errs.Wrap(errs.ErrInvalidPolygon, "polygon has no rings")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInvalidPolygon))
	})

	t.Run("Wrapf", func(t *testing.T) {
		err := errs.Wrapf(errs.ErrMalformedDate, "parse date %q", "2025-13-40")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrMalformedDate))
		assert.Contains(t, err.Error(), "2025-13-40")
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
		assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
	})
}

func TestExtractStackLines(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 10))
	})

	t.Run("truncates to maxLines", func(t *testing.T) {
		err := errs.Wrap(errs.ErrInvalidPolygon, "ring too short")
		lines := errs.ExtractStackLines(err, 3)
		require.NotEmpty(t, lines)
		assert.LessOrEqual(t, len(lines), 3)
		assert.Contains(t, lines[0], "ring too short")
	})

	t.Run("zero keeps everything", func(t *testing.T) {
		err := errs.Wrap(errs.ErrInvalidPolygon, "ring too short")
		all := errs.ExtractStackLines(err, 0)
		capped := errs.ExtractStackLines(err, 1)
		assert.GreaterOrEqual(t, len(all), len(capped))
	})
}
