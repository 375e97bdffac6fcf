package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokedex/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("req")

	first := gen.Generate()
	second := gen.Generate()

	require.True(t, strings.HasPrefix(first, "req_"))
	_, err := uuid.Parse(strings.TrimPrefix(first, "req_"))
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = uuid.Parse(idgen.NewUUID("").Generate())
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("req")
	assert.Equal(t, "req_1", gen.Generate())
	assert.Equal(t, "req_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
