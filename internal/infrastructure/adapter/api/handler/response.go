package handler

import (
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// respondError writes the public error body for err
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(dto.StatusCode(err), dto.NewErrorResponse(err, false))
}

// respondAdminError writes the error body with details for operators
func respondAdminError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(dto.StatusCode(err), dto.NewErrorResponse(err, true))
}

// badRequest reports a malformed request body
func badRequest(c *gin.Context, err error, withDetails bool) {
	wrapped := errs.NewValidationError("body", err.Error())
	_ = c.Error(wrapped)
	c.JSON(dto.StatusCode(wrapped), dto.NewErrorResponse(wrapped, withDetails))
}

// caller returns the authenticated identity or writes a 401
func caller(c *gin.Context) (*entity.Identity, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		respondError(c, errs.ErrUnauthorized)
		return nil, false
	}
	return identity, true
}

func toReferralRecord(r *entity.Referral) dto.ReferralRecord {
	return dto.ReferralRecord{
		ID:             r.ID,
		ReferrerID:     r.ReferrerID,
		ReferredUserID: r.ReferredUserID,
		ReferralCode:   r.ReferralCode,
		Status:         string(r.Status),
		CreditsAwarded: r.CreditsAwarded,
		CreatedAt:      r.CreatedAt,
		CompletedAt:    r.CompletedAt,
	}
}

func toPurchaseRecord(p *entity.Purchase) dto.PurchaseRecord {
	return dto.PurchaseRecord{
		SessionID:   p.SessionID,
		EventID:     p.EventID,
		UserID:      p.UserID,
		Credits:     p.Credits,
		AmountTotal: p.AmountTotal.StringFixed(2),
		Currency:    p.Currency,
		Status:      string(p.Status),
		Source:      string(p.Source),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toReconciliationResponse(o *usecase.ReconciliationOutcome) dto.ReconciliationResponse {
	return dto.ReconciliationResponse{
		EventID:         o.EventID,
		SessionID:       o.SessionID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		CreditsGranted:  o.CreditsGranted,
		ReferralAwarded: o.ReferralAwarded,
	}
}

func toAwardResponse(r *usecase.AwardResult) dto.AwardResponse {
	return dto.AwardResponse{
		Awarded:    r.Awarded,
		ReferralID: r.ReferralID,
		ReferrerID: r.ReferrerID,
		Bonus:      r.Bonus,
	}
}

func toSweepResponse(r *usecase.SweepResult) dto.SweepResponse {
	messages := r.Errors
	if messages == nil {
		messages = []string{}
	}
	return dto.SweepResponse{
		Scanned:         r.Scanned,
		Anonymous:       r.Anonymous,
		Expired:         r.Expired,
		Deleted:         r.Deleted,
		AccountsDeleted: r.AccountsDeleted,
		Errors:          messages,
		ErrorCount:      r.ErrorCount,
	}
}
