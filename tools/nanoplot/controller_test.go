package nanoplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlotKinds(t *testing.T) {
	kinds, err := parsePlotKinds("dot,kde")
	require.NoError(t, err)
	assert.True(t, kinds.Dot)
	assert.True(t, kinds.Kde)
	assert.False(t, kinds.Hex)
}

func TestParsePlotKindsCaseAndSpaces(t *testing.T) {
	kinds, err := parsePlotKinds("HEX, Dot")
	require.NoError(t, err)
	assert.True(t, kinds.Hex)
	assert.True(t, kinds.Dot)
	assert.False(t, kinds.Kde)
}

func TestParsePlotKindsUnknown(t *testing.T) {
	_, err := parsePlotKinds("dot,triangle")
	assert.Error(t, err)
}

func TestParsePlotKindsEmpty(t *testing.T) {
	kinds, err := parsePlotKinds("")
	require.NoError(t, err)
	assert.False(t, kinds.Dot || kinds.Kde || kinds.Hex)
}
