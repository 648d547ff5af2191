package idgen_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sptforge/questforge/internal/pkg/clock"
	"github.com/sptforge/questforge/internal/pkg/idgen"
)

func TestObjectIDLength(t *testing.T) {
	gen := idgen.NewObjectID(clock.New())

	id := gen.Generate()
	assert.Len(t, id, 24)
	assert.Regexp(t, "^[0-9a-f]{24}$", id)
}

func TestObjectIDTimestampPrefix(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	gen := idgen.NewObjectID(clock.NewFixed(now))

	id := gen.Generate()
	require.Len(t, id, 24)
	assert.Equal(t, fmt.Sprintf("%08x", now.Unix()), id[:8])
}

func TestObjectIDUnique(t *testing.T) {
	gen := idgen.NewObjectID(clock.New())

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.Generate()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSequentialPadding(t *testing.T) {
	gen := idgen.NewSequential()

	assert.Equal(t, "000000000000000000000001", gen.Generate())
	assert.Equal(t, "000000000000000000000002", gen.Generate())
}
