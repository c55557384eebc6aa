package entity

import (
	"strings"
	"testing"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReferralCode(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := NewReferralCode()
		require.NoError(t, err)
		require.Len(t, code, ReferralCodeLength)

		for _, r := range code {
			assert.True(t, strings.ContainsRune(ReferralCodeAlphabet, r), "unexpected symbol %q in %s", r, code)
		}
		assert.NotContains(t, code, "I")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "1")
		assert.True(t, IsGeneratedReferralCode(code))
	}
}

func TestValidateReferralCode(t *testing.T) {
	testCases := []struct {
		code  string
		valid bool
	}{
		{"AB23CD", true},
		{"ABCDE0", true},
		{"ab23cd", false},
		{"AB23C", false},
		{"AB23CDE", false},
		{"AB-3CD", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			err := ValidateReferralCode(tc.code)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errs.ErrInvalidReferralCode)
			}
		})
	}

	assert.False(t, IsGeneratedReferralCode("ABCDE0"), "0 is outside the generation alphabet")
}
