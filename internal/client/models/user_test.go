package models

import (
	"testing"

	"github.com/akulinin/campusmarket/internal/common"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	base := RegisterRequest{
		Email:    "alice@x.edu",
		Name:     "Alice",
		Password: "secret",
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, base.Validate("secret"))
	})

	t.Run("missing email", func(t *testing.T) {
		r := base
		r.Email = ""
		require.ErrorIs(t, r.Validate("secret"), common.ErrValidation)
	})

	t.Run("missing name", func(t *testing.T) {
		r := base
		r.Name = ""
		require.ErrorIs(t, r.Validate("secret"), common.ErrValidation)
	})

	t.Run("short password", func(t *testing.T) {
		r := base
		r.Password = "12345"
		require.ErrorIs(t, r.Validate("12345"), common.ErrPasswordTooShort)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		require.ErrorIs(t, base.Validate("something-else"), common.ErrPasswordMismatch)
	})
}
