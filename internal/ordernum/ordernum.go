// Package ordernum generates human-scannable order numbers of the form
// ORD-<unix-millis>-<6 uppercase base36 chars>. Uniqueness is statistical;
// collisions are not actively checked.
package ordernum

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

const (
	alphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixLength = 6
)

// Generator produces order numbers from an injected clock and random source,
// so tests can pin both.
type Generator struct {
	Now  func() time.Time
	Rand io.Reader
}

func NewGenerator() *Generator {
	return &Generator{Now: time.Now, Rand: rand.Reader}
}

func (g *Generator) Next() (string, error) {
	buf := make([]byte, suffixLength)
	if _, err := io.ReadFull(g.Rand, buf); err != nil {
		return "", fmt.Errorf("read random suffix: %w", err)
	}

	suffix := make([]byte, suffixLength)
	for i, b := range buf {
		suffix[i] = alphabet[int(b)%len(alphabet)]
	}

	return fmt.Sprintf("ORD-%d-%s", g.Now().UnixMilli(), suffix), nil
}
