// Package runid generates identifiers for solver runs.
//
// Run ids travel in the JSON envelope's trace_id field so a result can be
// matched to the log lines of the run that produced it.
package runid

import (
	"sync"

	"github.com/google/uuid"
)

// Generator produces run identifiers.
type Generator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run ids.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
//
// Format: "0190f4a2-6b1c-7d3e-8f00-123456789abc" (36 characters)
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined ids, for deterministic tests.
//
// Once the list is exhausted it keeps returning the last id. An empty list
// yields "test-run-default".
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
//
//	gen := NewFixedGenerator("run-1", "run-2")
//	gen.Generate() // "run-1"
//	gen.Generate() // "run-2"
//	gen.Generate() // "run-2"
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined id.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.ids) == 0 {
		return "test-run-default"
	}
	id := g.ids[min(g.idx, len(g.ids)-1)]
	if g.idx < len(g.ids) {
		g.idx++
	}
	return id
}
