package intern

import "errors"

var (
	ErrInternNotFound   = errors.New("intern not found")
	ErrProfileNotFound  = errors.New("intern profile not found")
	ErrEmailMismatch    = errors.New("email mismatch between candidate and offer records")
	ErrPhoneMismatch    = errors.New("phone number mismatch between candidate and offer records")
	ErrAlreadyConverted = errors.New("candidate has already been converted to an intern")
)
