package handler

import (
	"casino-wallet-gateway/internal/core/ports"
	"casino-wallet-gateway/pkg/apperror"
	"casino-wallet-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler exposes the wallet engine to the integration channels. The
// payloads are the standardized shape the channel adapters produce; upstream
// concerns (provider authentication, rate limiting) live in front of the
// gateway.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

type walletOperationRequest struct {
	UserID        uuid.UUID `json:"user_id" binding:"required"`
	Amount        int64     `json:"amount" binding:"required"`
	TransactionID string    `json:"transaction_id" binding:"required"`
	GameID        string    `json:"game_id"`
	OperatorID    string    `json:"operator_id"`
	CorrelationID string    `json:"correlation_id"`
}

type depositRequest struct {
	UserID        uuid.UUID `json:"user_id" binding:"required"`
	Amount        int64     `json:"amount" binding:"required"`
	Method        string    `json:"method"`
	OperatorID    string    `json:"operator_id"`
	CorrelationID string    `json:"correlation_id"`
}

type bonusCreditRequest struct {
	UserID        uuid.UUID `json:"user_id" binding:"required"`
	Amount        int64     `json:"amount" binding:"required"`
	BonusCode     string    `json:"bonus_code" binding:"required"`
	OperatorID    string    `json:"operator_id"`
	CorrelationID string    `json:"correlation_id"`
}

// Debit handles POST /integration/v1/wallet/debit.
func (h *WalletHandler) Debit(c *gin.Context) {
	var req walletOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	c.Set("correlation_id", req.CorrelationID)

	result, err := h.walletSvc.Debit(c.Request.Context(), ports.DebitRequest{
		UserID:        req.UserID,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		GameID:        req.GameID,
		OperatorID:    req.OperatorID,
		CorrelationID: req.CorrelationID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Credit handles POST /integration/v1/wallet/credit.
func (h *WalletHandler) Credit(c *gin.Context) {
	var req walletOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	c.Set("correlation_id", req.CorrelationID)

	result, err := h.walletSvc.Credit(c.Request.Context(), ports.CreditRequest{
		UserID:        req.UserID,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		GameID:        req.GameID,
		OperatorID:    req.OperatorID,
		CorrelationID: req.CorrelationID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Deposit handles POST /integration/v1/wallet/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	c.Set("correlation_id", req.CorrelationID)

	result, err := h.walletSvc.Deposit(c.Request.Context(), ports.DepositRequest{
		UserID:        req.UserID,
		Amount:        req.Amount,
		Method:        req.Method,
		OperatorID:    req.OperatorID,
		CorrelationID: req.CorrelationID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// BonusCredit handles POST /integration/v1/wallet/bonus.
func (h *WalletHandler) BonusCredit(c *gin.Context) {
	var req bonusCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	c.Set("correlation_id", req.CorrelationID)

	result, err := h.walletSvc.CreditBonus(c.Request.Context(), ports.BonusCreditRequest{
		UserID:        req.UserID,
		Amount:        req.Amount,
		BonusCode:     req.BonusCode,
		OperatorID:    req.OperatorID,
		CorrelationID: req.CorrelationID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
