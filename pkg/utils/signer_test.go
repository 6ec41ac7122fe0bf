package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundtrip(t *testing.T) {
	signed := Sign("some-token-value", "secret-key")

	value, err := Verify(signed, "secret-key")
	require.NoError(t, err)
	assert.Equal(t, "some-token-value", value)
}

func TestVerifyRejectsTampering(t *testing.T) {
	signed := Sign("some-token-value", "secret-key")

	_, err := Verify("x"+signed, "secret-key")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = Verify(signed, "other-key")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = Verify("no-signature-here", "secret-key")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
