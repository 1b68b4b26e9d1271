package secret

import (
	"errors"
	"testing"

	"github.com/arijitp/notekeeper/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("Passw0rd!")
	require.NoError(t, err)
	require.NotEqual(t, "Passw0rd!", hash)

	assert.NoError(t, Compare("Passw0rd!", hash))
	assert.True(t, errors.Is(Compare("wrong", hash), shared.ErrIncorrectPassword))
}

func TestHash_Empty(t *testing.T) {
	_, err := Hash("")
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestCompare_EmptyInputs(t *testing.T) {
	hash, err := Hash("Passw0rd!")
	require.NoError(t, err)

	assert.True(t, errors.Is(Compare("", hash), shared.ErrInvalidInput))
	assert.True(t, errors.Is(Compare("Passw0rd!", ""), shared.ErrInvalidInput))
}
