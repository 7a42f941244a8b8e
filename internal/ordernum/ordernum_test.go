package ordernum

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var pattern = regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{6}$`)

func TestNextFormat(t *testing.T) {
	g := NewGenerator()
	n, err := g.Next()
	require.NoError(t, err)
	require.Regexp(t, pattern, n)
}

func TestNextDeterministicWithFixedSources(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	g := &Generator{
		Now:  func() time.Time { return at },
		Rand: bytes.NewReader([]byte{0, 1, 2, 3, 4, 5}),
	}

	n, err := g.Next()
	require.NoError(t, err)
	require.Equal(t, "ORD-1700000000000-012345", n)
}

func TestNextRandExhausted(t *testing.T) {
	g := &Generator{
		Now:  time.Now,
		Rand: bytes.NewReader([]byte{1, 2}),
	}
	_, err := g.Next()
	require.Error(t, err)
}

func TestNextUniqueness(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]struct{}, 2000)
	for i := 0; i < 2000; i++ {
		n, err := g.Next()
		require.NoError(t, err)
		_, dup := seen[n]
		require.False(t, dup, "duplicate order number %s after %d generations", n, i)
		seen[n] = struct{}{}
	}
}
