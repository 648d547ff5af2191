// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/sptforge/questforge/internal/pkg/clock"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/sptforge/questforge/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// ObjectIDGenerator generates 24-hex-character ids in the MongoDB ObjectId
// layout: 8 hex chars of the current Unix timestamp in seconds, then
// 6+4+6 hex chars of randomness. Collision probability is astronomically
// low; generated ids are never checked against existing ones.
type ObjectIDGenerator struct {
	clock clock.Clock
}

// NewObjectID creates a generator reading time from the given clock.
func NewObjectID(clk clock.Clock) *ObjectIDGenerator {
	return &ObjectIDGenerator{clock: clk}
}

// Generate creates a new 24-character hexadecimal id.
func (g *ObjectIDGenerator) Generate() string {
	ts := uint32(g.clock.Now().Unix()) // #nosec G115 -- wraps in 2106, matches the on-disk format

	return fmt.Sprintf("%08x%06x%04x%06x",
		ts,
		randUint32()%(1<<24),
		randUint32()%(1<<16),
		randUint32()%(1<<24),
	)
}

func randUint32() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read should never fail on a properly configured system
		// If it does, it indicates a catastrophic system failure
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	return binary.BigEndian.Uint32(buf[:])
}

// SequentialGenerator generates sequential ids for testing. Ids are padded
// to the same 24-character width as ObjectIDGenerator output.
type SequentialGenerator struct {
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential() *SequentialGenerator {
	return &SequentialGenerator{}
}

// Generate creates a new sequential 24-hex-character id.
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	return fmt.Sprintf("%024x", n)
}
