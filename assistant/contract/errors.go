package contract

import "errors"

var (
	ErrEmptySubmission = errors.New("submission is empty")
	ErrBusy            = errors.New("a submission is already being processed")
	ErrCompose         = errors.New("response composition failed")
	ErrValidation      = errors.New("validation failed")
)
