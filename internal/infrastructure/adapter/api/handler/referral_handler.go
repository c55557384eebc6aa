package handler

import (
	"net/http"
	"strings"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReferralHandler handles referral code issuance and tracking
type ReferralHandler struct {
	referrals usecase.ReferralUseCase
	logger    coreport.Logger
}

// NewReferralHandler creates a new referral handler instance
func NewReferralHandler(referrals usecase.ReferralUseCase, logger coreport.Logger) *ReferralHandler {
	return &ReferralHandler{
		referrals: referrals,
		logger:    logger,
	}
}

// GenerateCode handles GET /api/referral/generate
func (h *ReferralHandler) GenerateCode(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	summary, err := h.referrals.GenerateCode(c.Request.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("Referral code issuance failed", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReferralCodeResponse{
		ReferralCode:  summary.ReferralCode,
		ReferralCount: summary.ReferralCount,
		CreditsEarned: summary.CreditsEarned,
	})
}

// Track handles POST /api/referral/track
func (h *ReferralHandler) Track(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	var req dto.TrackReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, false)
		return
	}

	referrerID, err := h.referrals.TrackReferral(c.Request.Context(), identity.UserID, strings.TrimSpace(req.ReferralCode))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TrackReferralResponse{
		Success:    true,
		ReferrerID: referrerID,
	})
}
