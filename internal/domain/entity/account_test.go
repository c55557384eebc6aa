package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid account creation", func(t *testing.T) {
		account, err := NewAccount("user-1", StartingCredits, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "user-1", account.UserID)
		assert.Equal(t, int64(5), account.Credits())
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.False(t, account.HasReferralCode())
	})

	t.Run("Empty user ID should return error", func(t *testing.T) {
		account, err := NewAccount("", StartingCredits, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, account)
	})

	t.Run("Negative balance should return error", func(t *testing.T) {
		account, err := NewAccount("user-1", -1, mockTime)

		assert.ErrorIs(t, err, errs.ErrNegativeCredits)
		assert.Nil(t, account)
	})
}
