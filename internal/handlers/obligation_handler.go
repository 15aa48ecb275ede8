package handlers

import (
	"net/http"

	"clevercash/internal/dto"
	"clevercash/internal/errors"
	"clevercash/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ObligationHandler manages an account's installments and saving plan.
type ObligationHandler struct {
	installments services.InstallmentServiceInterface
	savings      services.SavingServiceInterface
}

func NewObligationHandler(installments services.InstallmentServiceInterface, savings services.SavingServiceInterface) *ObligationHandler {
	return &ObligationHandler{
		installments: installments,
		savings:      savings,
	}
}

// ListInstallments GET /accounts/:accountId/installments
func (h *ObligationHandler) ListInstallments(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	installments, err := h.installments.ListInstallments(c.Request().Context(), accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusOK, dto.NewInstallmentListResponse(installments))
}

// AddInstallment POST /accounts/:accountId/installments
func (h *ObligationHandler) AddInstallment(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	var req dto.NewInstallmentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	installment, err := h.installments.AddInstallment(c.Request().Context(), accountID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusCreated, installment)
}

// GetInstallment GET /accounts/:accountId/installments/:installmentId
func (h *ObligationHandler) GetInstallment(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}
	installmentID, err := uuid.Parse(c.Param("installmentId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid installment ID"))
	}

	installment, err := h.installments.GetInstallment(c.Request().Context(), accountID, installmentID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusOK, installment)
}

// RemoveInstallment DELETE /accounts/:accountId/installments/:installmentId
func (h *ObligationHandler) RemoveInstallment(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}
	installmentID, err := uuid.Parse(c.Param("installmentId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid installment ID"))
	}

	if err := h.installments.RemoveInstallment(c.Request().Context(), accountID, installmentID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetActiveSaving GET /accounts/:accountId/saving
func (h *ObligationHandler) GetActiveSaving(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	saving, err := h.savings.GetActiveSaving(c.Request().Context(), accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusOK, saving)
}

// AddSaving POST /accounts/:accountId/savings
func (h *ObligationHandler) AddSaving(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	var req dto.NewSavingRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	saving, err := h.savings.AddSaving(c.Request().Context(), accountID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusCreated, saving)
}

// RemoveActiveSaving DELETE /accounts/:accountId/saving
func (h *ObligationHandler) RemoveActiveSaving(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	removed, err := h.savings.RemoveActiveSaving(c.Request().Context(), accountID)
	if err != nil {
		return SendServiceError(c, err)
	}
	if !removed {
		return SendError(c, errors.SavingNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveSaving DELETE /accounts/:accountId/savings/:savingId
func (h *ObligationHandler) RemoveSaving(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}
	savingID, err := uuid.Parse(c.Param("savingId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid saving ID"))
	}

	if err := h.savings.RemoveSaving(c.Request().Context(), accountID, savingID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// WithdrawSavings POST /accounts/:accountId/savings/withdrawals
func (h *ObligationHandler) WithdrawSavings(c echo.Context) error {
	accountID, err := getAccountID(c)
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	var req dto.SavingsWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	entry, err := h.savings.TransferSavingsToBalance(c.Request().Context(), accountID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendData(c, http.StatusCreated, entry)
}
