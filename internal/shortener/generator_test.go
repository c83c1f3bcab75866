package shortener_test

import (
	"testing"

	"github.com/serroba/link-form/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(v float64) func() float64 {
	return func() float64 { return v }
}

func TestBase36(t *testing.T) {
	t.Run("drops the leading characters of the base-36 fraction", func(t *testing.T) {
		gen := shortener.Base36(fixed(0.123456789))

		assert.Equal(t, "zxjylrx", gen())
	})

	t.Run("keeps interior zero digits", func(t *testing.T) {
		gen := shortener.Base36(fixed(0.987654321))

		assert.Equal(t, "000ytu", gen())
	})

	t.Run("rounds the last digit up", func(t *testing.T) {
		gen := shortener.Base36(fixed(0.1))

		assert.Equal(t, "llllllm", gen())
	})

	t.Run("short expansions yield short slugs", func(t *testing.T) {
		gen := shortener.Base36(fixed(0.6682160363230731))

		assert.Equal(t, "cgi", gen())
	})

	t.Run("long expansions yield long slugs", func(t *testing.T) {
		gen := shortener.Base36(fixed(0.0001))

		assert.Equal(t, "ym8equapq", gen())
	})

	t.Run("short expansions yield an empty slug", func(t *testing.T) {
		assert.Empty(t, shortener.Base36(fixed(0.5))())
		assert.Empty(t, shortener.Base36(fixed(0.25))())
		assert.Empty(t, shortener.Base36(fixed(0))())
	})

	t.Run("only uses lowercase alphanumerics", func(t *testing.T) {
		gen, err := shortener.NewGenerator(shortener.GeneratorBase36, 0)
		require.NoError(t, err)

		for range 50 {
			assert.Regexp(t, `^[0-9a-z]*$`, gen())
		}
	})
}

func TestNanoid(t *testing.T) {
	t.Run("generates codes of the configured length", func(t *testing.T) {
		gen, err := shortener.Nanoid(10)
		require.NoError(t, err)

		assert.Len(t, gen(), 10)
	})

	t.Run("rejects an invalid length", func(t *testing.T) {
		_, err := shortener.Nanoid(0)

		assert.Error(t, err)
	})
}

func TestNewGenerator(t *testing.T) {
	t.Run("defaults to base36", func(t *testing.T) {
		gen, err := shortener.NewGenerator("", 0)

		require.NoError(t, err)
		assert.NotNil(t, gen)
	})

	t.Run("builds nanoid", func(t *testing.T) {
		gen, err := shortener.NewGenerator(shortener.GeneratorNanoid, 6)

		require.NoError(t, err)
		assert.Len(t, gen(), 6)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := shortener.NewGenerator("uuid", 8)

		assert.ErrorIs(t, err, shortener.ErrUnknownGenerator)
	})
}

func TestCompose(t *testing.T) {
	assert.Equal(t, "https://sho.rt/abc", shortener.Compose("https://sho.rt/", "abc"))
}
