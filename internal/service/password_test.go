package service

import (
	"context"
	"errors"
	"testing"

	"userhub/internal/model"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restorePasswordGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)

	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NotEmpty(t, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "wrong"))

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)

	hash, err := HashPassword("pw")
	require.NoError(t, err)

	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(context.Background(), u, "pw"))

	err = AuthenticateUser(context.Background(), u, "bad")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// No stored hash never authenticates.
	err = AuthenticateUser(context.Background(), model.User{}, "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
