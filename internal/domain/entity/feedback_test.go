package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credit-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeedback(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Maybe()

	fb, err := NewFeedback(5, "great", "user-1", "", "10.0.0.1", mockTime)
	require.NoError(t, err)
	assert.NotEmpty(t, fb.ID)

	_, err = NewFeedback(0, "", "", "", "", mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = NewFeedback(6, "", "", "", "", mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = NewFeedback(3, strings.Repeat("x", 1001), "", "", "", mockTime)
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = NewFeedback(3, strings.Repeat("é", 1000), "", "", "", mockTime)
	assert.NoError(t, err)
}
