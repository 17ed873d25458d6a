package repository

import "errors"

// Errors returned by guarded conditional writes. Domains translate them into
// business-rule violations.
var (
	ErrInsufficientPoints   = errors.New("insufficient points")
	ErrTaskCapacityFull     = errors.New("task capacity reached")
	ErrAlreadyDecided       = errors.New("transaction already decided")
	ErrBonusAlreadyReceived = errors.New("onboarding bonus already received")
)
