package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)

	assert.True(t, CheckPassword("Str0ng!pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.NoError(t, ValidatePasswordStrength("Str0ng!pass"))
	assert.NoError(t, ValidatePasswordStrength("Another#1A"))

	weak := []string{
		"alllowercase1!", // no uppercase
		"ALLUPPERCASE1!", // no lowercase
		"NoDigits!!",     // no digit
		"NoSymbols11",    // no symbol
		"Ab1!",           // too short
	}
	for _, password := range weak {
		err := ValidatePasswordStrength(password)
		assert.Error(t, err, "password %q should be rejected", password)
		assert.True(t, errors.Is(err, ErrWeakPassword))
	}

	// Minimum length with every class present passes.
	assert.NoError(t, ValidatePasswordStrength("short1!A"))
}

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken(32)
	require.NoError(t, err)
	b, err := GenerateRandomToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 64) // hex encoded
}
