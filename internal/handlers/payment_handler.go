package handlers

import (
	"net/http"

	"clevercash/internal/dto"
	"clevercash/internal/errors"
	"clevercash/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const defaultPageLimit = 20

// PaymentHandler books ad-hoc payments and reads the ledger.
type PaymentHandler struct {
	transactions services.TransactionServiceInterface
}

func NewPaymentHandler(transactions services.TransactionServiceInterface) *PaymentHandler {
	return &PaymentHandler{transactions: transactions}
}

// CreatePayment POST /accounts/:accountId/payments
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	var req dto.NewPaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	entry, err := h.transactions.CreatePayment(c.Request().Context(), accountID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusCreated, entry)
}

// ListTransactions GET /accounts/:accountId/transactions?offset=&limit=
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", defaultPageLimit)

	entries, total, err := h.transactions.ListTransactions(c.Request().Context(), accountID, offset, limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusOK, dto.TransactionListResponse{
		Transactions: entries,
		Total:        total,
		Offset:       offset,
		Limit:        limit,
	})
}

// GetTransaction GET /accounts/:accountId/transactions/:transactionId
func (h *PaymentHandler) GetTransaction(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}
	transactionID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	entry, err := h.transactions.GetTransaction(c.Request().Context(), accountID, transactionID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusOK, entry)
}
