package util

import "errors"

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrDisbursementNotFound = errors.New("disbursement not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrUnknownDocumentType  = errors.New("unknown document type")
	ErrAnswerCountMismatch  = errors.New("answer count does not match question count")
	ErrValidation           = errors.New("validation failed")
)
