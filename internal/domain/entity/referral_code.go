package entity

import (
	"crypto/rand"
	"math/big"
	"strings"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

// Referral code format
const (
	ReferralCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	ReferralCodeLength   = 6
)

// NewReferralCode samples a random code from the referral alphabet
func NewReferralCode() (string, error) {
	var sb strings.Builder
	sb.Grow(ReferralCodeLength)

	max := big.NewInt(int64(len(ReferralCodeAlphabet)))
	for i := 0; i < ReferralCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(ReferralCodeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// IsGeneratedReferralCode reports whether code could have been produced by NewReferralCode
func IsGeneratedReferralCode(code string) bool {
	if len(code) != ReferralCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(ReferralCodeAlphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}

// ValidateReferralCode checks the public format: six uppercase alphanumeric characters
func ValidateReferralCode(code string) error {
	if len(code) != ReferralCodeLength {
		return errs.ErrInvalidReferralCode
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return errs.ErrInvalidReferralCode
		}
	}
	return nil
}
