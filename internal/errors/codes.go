package errors

// ErrorCode represents a standardized error code used throughout the engine
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound            ErrorCode = "ACCOUNT_001"
	AccountInsufficientSavings ErrorCode = "ACCOUNT_002"
	AccountInvalidID           ErrorCode = "ACCOUNT_003"
	AccountDailyLimitExceeded  ErrorCode = "ACCOUNT_004"
	AccountInsufficientBalance ErrorCode = "ACCOUNT_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionNotAdmitted   ErrorCode = "TRANSACTION_003"
	TransactionInvalidType   ErrorCode = "TRANSACTION_004"
	TransactionImmutable     ErrorCode = "TRANSACTION_005"
)

// Installment error codes (INSTALLMENT_*)
const (
	InstallmentNotFound  ErrorCode = "INSTALLMENT_001"
	InstallmentNameTaken ErrorCode = "INSTALLMENT_002"
	InstallmentInvalid   ErrorCode = "INSTALLMENT_003"
	InstallmentInactive  ErrorCode = "INSTALLMENT_004"
)

// Saving error codes (SAVING_*)
const (
	SavingNotFound      ErrorCode = "SAVING_001"
	SavingAlreadyActive ErrorCode = "SAVING_002"
	SavingInvalid       ErrorCode = "SAVING_003"
	SavingInactive      ErrorCode = "SAVING_004"
)

// Dispatch job error codes (JOB_*)
const (
	JobUnknown     ErrorCode = "JOB_001"
	JobRunFailed   ErrorCode = "JOB_002"
	JobRunNotFound ErrorCode = "JOB_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	AccountNotFound:            "Account not found",
	AccountInsufficientSavings: "Insufficient savings for this withdrawal",
	AccountInvalidID:           "Invalid account ID format",
	AccountDailyLimitExceeded:  "Daily limit exceeded",
	AccountInsufficientBalance: "Insufficient account balance",

	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Invalid transaction amount",
	TransactionNotAdmitted:   "Transaction rejected by balance or daily limit check",
	TransactionInvalidType:   "Invalid transaction type",
	TransactionImmutable:     "Ledger entries cannot be changed",

	InstallmentNotFound:  "Installment not found",
	InstallmentNameTaken: "An active installment with this name already exists",
	InstallmentInvalid:   "Invalid installment",
	InstallmentInactive:  "Installment is not active",

	SavingNotFound:      "Saving not found",
	SavingAlreadyActive: "The account already has an active saving",
	SavingInvalid:       "Invalid saving",
	SavingInactive:      "Saving is not active",

	JobUnknown:     "Unknown dispatch job",
	JobRunFailed:   "Dispatch run failed",
	JobRunNotFound: "Dispatch run not found",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
