package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier(bcrypt.MinCost)

	digest, err := v.Hash("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", digest, "digest must not be the plaintext")

	t.Run("matching password", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, v.Compare(digest, "p1"))
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		err := v.Compare(digest, "wrong")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("plaintext stored as digest", func(t *testing.T) {
		t.Parallel()
		err := v.Compare("p1", "p1")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})
}

func TestBcryptVerifierCost(t *testing.T) {
	t.Parallel()

	v := NewBcryptVerifier(bcrypt.MinCost)
	digest, err := v.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptVerifier(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptVerifier(99).cost)
}

func TestBcryptVerifierRejectsLongPassword(t *testing.T) {
	t.Parallel()

	_, err := NewBcryptVerifier(bcrypt.MinCost).Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
