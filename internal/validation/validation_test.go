package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestStruct(t *testing.T) {
	t.Parallel()

	v := New()

	t.Run("valid payload", func(t *testing.T) {
		fieldErrs, ok := v.Struct(sample{Email: "a@x.com", Password: "password"})
		assert.True(t, ok)
		assert.Empty(t, fieldErrs)
	})

	t.Run("every failed rule is reported", func(t *testing.T) {
		fieldErrs, ok := v.Struct(sample{Email: "nope", Password: "pw"})
		assert.False(t, ok)
		require.Len(t, fieldErrs, 2)
		assert.Equal(t, "Email", fieldErrs[0].Field)
		assert.Equal(t, "Password", fieldErrs[1].Field)
		assert.NotEmpty(t, fieldErrs[0].Message)
	})
}
