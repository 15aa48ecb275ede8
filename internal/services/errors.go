package services

import (
	apperrors "clevercash/internal/errors"
)

var (
	ErrAccountNotFound     = apperrors.NewDomainError(apperrors.KindNotFound, apperrors.AccountNotFound, "account not found")
	ErrInsufficientSavings = apperrors.NewDomainError(apperrors.KindNotAdmitted, apperrors.AccountInsufficientSavings, "insufficient savings")

	ErrInstallmentNotFound  = apperrors.NewDomainError(apperrors.KindNotFound, apperrors.InstallmentNotFound, "installment not found")
	ErrInstallmentNameTaken = apperrors.NewDomainError(apperrors.KindAlreadyExists, apperrors.InstallmentNameTaken, "an active installment with this name already exists")
	ErrInvalidInstallment   = apperrors.NewDomainError(apperrors.KindInvalidInput, apperrors.InstallmentInvalid, "invalid installment")

	ErrSavingNotFound     = apperrors.NewDomainError(apperrors.KindNotFound, apperrors.SavingNotFound, "saving not found")
	ErrActiveSavingExists = apperrors.NewDomainError(apperrors.KindAlreadyExists, apperrors.SavingAlreadyActive, "account already has an active saving")
	ErrInvalidSaving      = apperrors.NewDomainError(apperrors.KindInvalidInput, apperrors.SavingInvalid, "invalid saving")

	ErrTransactionNotFound    = apperrors.NewDomainError(apperrors.KindNotFound, apperrors.TransactionNotFound, "transaction not found")
	ErrTransactionNotAdmitted = apperrors.NewDomainError(apperrors.KindNotAdmitted, apperrors.TransactionNotAdmitted, "transaction exceeds balance or daily limit")
	ErrInvalidPayment         = apperrors.NewDomainError(apperrors.KindInvalidInput, apperrors.TransactionInvalidAmount, "invalid payment")

	ErrUnknownJob          = apperrors.NewDomainError(apperrors.KindInvalidInput, apperrors.JobUnknown, "unknown job")
	ErrDispatchRunNotFound = apperrors.NewDomainError(apperrors.KindNotFound, apperrors.JobRunNotFound, "dispatch run not found")
)

var (
	ErrInstallmentInactive = apperrors.NewDomainError(apperrors.KindInvalidInput, apperrors.InstallmentInactive, "installment is not active")
	ErrSavingInactive      = apperrors.NewDomainError(apperrors.KindInvalidInput, apperrors.SavingInactive, "saving is not active")
)
