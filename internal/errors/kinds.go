package errors

import (
	stderrors "errors"
)

// Kind classifies domain failures independently of their concrete sentinel.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindAlreadyExists
	KindInvalidInput
	KindNotAdmitted
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidInput:
		return "invalid_input"
	case KindNotAdmitted:
		return "not_admitted"
	default:
		return "internal"
	}
}

// DomainError is a sentinel-style error carrying a Kind and an ErrorCode.
// Services declare them as package variables and wrap them with %w.
type DomainError struct {
	Kind    Kind
	Code    ErrorCode
	Message string
}

func NewDomainError(kind Kind, code ErrorCode, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

func (e *DomainError) Error() string {
	return e.Message
}

// AsDomainError finds the first DomainError in err's chain.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// KindOf returns the Kind of the first DomainError in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	if de, ok := AsDomainError(err); ok {
		return de.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
