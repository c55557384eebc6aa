package handler

import (
	"errors"
	"io"
	"net/http"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account and balance HTTP requests
type AccountHandler struct {
	accounts usecase.AccountUseCase
	credits  usecase.CreditUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, credits usecase.CreditUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		credits:  credits,
		logger:   logger,
	}
}

// Init handles POST /api/account/init
func (h *AccountHandler) Init(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	// The body is optional
	var req dto.AccountInitRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err, false)
		return
	}

	result, err := h.accounts.Signup(c.Request.Context(), identity, req.ReferralCode)
	if err != nil {
		h.logger.Error("Account initialization failed", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.AccountInitResponse{
		UserID:        result.Account.UserID,
		Credits:       result.Account.Credits(),
		Created:       result.Created,
		ReferralCode:  result.Account.ReferralCode,
		ReferredBy:    result.Account.ReferredBy,
		ReferralError: result.ReferralError,
	})
}

// GetCredits handles GET /api/credits
func (h *AccountHandler) GetCredits(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	credits, err := h.credits.GetBalance(c.Request.Context(), identity.UserID)
	if err != nil {
		h.logger.Error("Failed to read balance", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreditsResponse{Credits: credits})
}
