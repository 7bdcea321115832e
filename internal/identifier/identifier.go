package identifier

import (
	"encoding/hex"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Generator produces prefixed, unguessable identifiers such as BK1A2B3C4D.
// The random part is taken from a v4 UUID; issued values are remembered for
// the lifetime of the generator so an unlucky collision can never hand out
// the same id twice.
type Generator struct {
	mu     sync.Mutex
	issued map[string]struct{}
}

func NewGenerator() *Generator {
	return &Generator{
		issued: make(map[string]struct{}),
	}
}

func (g *Generator) New(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		u := uuid.New()
		id := prefix + strings.ToUpper(hex.EncodeToString(u[:4]))
		if _, dup := g.issued[id]; dup {
			continue
		}
		g.issued[id] = struct{}{}
		return id
	}
}
