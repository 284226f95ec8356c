package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/web420/restapi/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("hashes arguments", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		require.NoError(t, run(&out, strings.NewReader(""), bcrypt.MinCost, []string{"p1", "p2"}))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(lines[0]), []byte("p1")))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(lines[1]), []byte("p2")))
	})

	t.Run("reads standard input when no arguments are given", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		require.NoError(t, run(&out, strings.NewReader("first\n\nsecond\n"), bcrypt.MinCost, nil))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(lines[1]), []byte("second")))
	})

	t.Run("rejects an out of range cost", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, run(&bytes.Buffer{}, strings.NewReader(""), 2, []string{"p"}))
	})

	t.Run("rejects passwords bcrypt would truncate", func(t *testing.T) {
		t.Parallel()
		err := run(&bytes.Buffer{}, strings.NewReader(""), bcrypt.MinCost, []string{strings.Repeat("x", 73)})
		assert.ErrorIs(t, err, auth.ErrPasswordTooLong)
	})
}
