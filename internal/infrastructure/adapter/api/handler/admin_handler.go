package handler

import (
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the operator and cron surface
type AdminHandler struct {
	credits   usecase.CreditUseCase
	payments  usecase.PaymentUseCase
	referrals usecase.ReferralUseCase
	retention usecase.RetentionUseCase
	logger    coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	credits usecase.CreditUseCase,
	payments usecase.PaymentUseCase,
	referrals usecase.ReferralUseCase,
	retention usecase.RetentionUseCase,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		credits:   credits,
		payments:  payments,
		referrals: referrals,
		retention: retention,
		logger:    logger,
	}
}

// AdjustCredits handles POST /api/admin/credits
func (h *AdminHandler) AdjustCredits(c *gin.Context) {
	var req dto.AdjustCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, true)
		return
	}
	if (req.Set == nil) == (req.Delta == nil) {
		respondAdminError(c, errs.NewValidationError("set", "exactly one of set or delta is required"))
		return
	}

	adj := usecase.CreditAdjustment{Set: req.Set, Note: req.Note}
	if req.Delta != nil {
		adj.Delta = *req.Delta
	}

	credits, err := h.credits.Adjust(c.Request.Context(), req.UserID, adj)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	h.logger.Info("Operator adjusted credits", map[string]any{
		"operator": c.GetString(middleware.OperatorKey),
		"user_id":  req.UserID,
		"credits":  credits,
	})
	c.JSON(http.StatusOK, dto.AdjustCreditsResponse{UserID: req.UserID, Credits: credits})
}

// RepairPayment handles POST /api/admin/payments/repair
func (h *AdminHandler) RepairPayment(c *gin.Context) {
	var req dto.RepairPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, true)
		return
	}

	outcome, err := h.payments.RepairPayment(c.Request.Context(), req.SessionID, req.CreditsOverride)
	if err != nil {
		h.logger.Error("Payment repair failed", map[string]any{
			"operator":   c.GetString(middleware.OperatorKey),
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
		respondAdminError(c, err)
		return
	}

	h.logger.Info("Operator repaired payment", map[string]any{
		"operator":   c.GetString(middleware.OperatorKey),
		"session_id": req.SessionID,
		"status":     string(outcome.Status),
		"credits":    outcome.CreditsGranted,
	})
	c.JSON(http.StatusOK, toReconciliationResponse(outcome))
}

// RepairReferral handles POST /api/admin/referrals/repair
func (h *AdminHandler) RepairReferral(c *gin.Context) {
	var req dto.RepairReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, true)
		return
	}
	if req.ReferrerID == "" && req.ReferralCode == "" {
		respondAdminError(c, errs.NewValidationError("referrerId", "referrerId or referralCode is required"))
		return
	}

	result, err := h.referrals.ForceReferral(c.Request.Context(), usecase.ForceReferralRequest{
		ReferrerID:     req.ReferrerID,
		ReferralCode:   req.ReferralCode,
		ReferredUserID: req.ReferredUserID,
	})
	if err != nil {
		respondAdminError(c, err)
		return
	}

	h.logger.Info("Operator repaired referral", map[string]any{
		"operator":         c.GetString(middleware.OperatorKey),
		"referred_user_id": req.ReferredUserID,
		"referrer_id":      result.ReferrerID,
		"awarded":          result.Awarded,
	})
	c.JSON(http.StatusOK, toAwardResponse(result))
}

// ListReferrals handles GET /api/admin/referrals/:userId
func (h *AdminHandler) ListReferrals(c *gin.Context) {
	referrerID := c.Param("userId")

	referrals, err := h.referrals.ListByReferrer(c.Request.Context(), referrerID)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	records := make([]dto.ReferralRecord, 0, len(referrals))
	for _, r := range referrals {
		records = append(records, toReferralRecord(r))
	}
	c.JSON(http.StatusOK, dto.ReferralListResponse{ReferrerID: referrerID, Referrals: records})
}

// WebhookDiagnostics handles GET /api/admin/webhooks/diagnostics
func (h *AdminHandler) WebhookDiagnostics(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 200 {
			respondAdminError(c, errs.NewValidationError("limit", "must be between 1 and 200"))
			return
		}
		limit = parsed
	}

	diag, err := h.payments.Diagnostics(c.Request.Context(), limit)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	counts := make(map[string]int64, len(diag.CountsByStatus))
	for status, n := range diag.CountsByStatus {
		counts[string(status)] = n
	}
	recent := make([]dto.PurchaseRecord, 0, len(diag.Recent))
	for _, p := range diag.Recent {
		recent = append(recent, toPurchaseRecord(p))
	}

	c.JSON(http.StatusOK, dto.WebhookDiagnosticsResponse{
		SigningSecretConfigured: diag.SigningSecretConfigured,
		APIKeyConfigured:        diag.APIKeyConfigured,
		CountsByStatus:          counts,
		Recent:                  recent,
	})
}

// SweepAnonymousAccounts handles the operator and cron retention sweep routes
func (h *AdminHandler) SweepAnonymousAccounts(c *gin.Context) {
	result, err := h.retention.SweepAnonymousAccounts(c.Request.Context())
	if err != nil {
		h.logger.Error("Anonymous account sweep failed", map[string]any{
			"operator": c.GetString(middleware.OperatorKey),
			"error":    err.Error(),
		})
		if result == nil {
			respondAdminError(c, err)
			return
		}
		// Partial results are still reported
		c.JSON(http.StatusInternalServerError, toSweepResponse(result))
		return
	}

	c.JSON(http.StatusOK, toSweepResponse(result))
}
