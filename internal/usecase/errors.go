package usecase

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. The adaptor maps them to HTTP
// statuses with errors.Is; everything wrapping ErrValidation becomes a 400.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")

	ErrEmailTaken      = fmt.Errorf("%w: email already registered", ErrValidation)
	ErrUsernameTaken   = fmt.Errorf("%w: username already taken", ErrValidation)
	ErrSlugTaken       = fmt.Errorf("%w: slug already in use", ErrValidation)
	ErrUnknownSlug     = fmt.Errorf("%w: referenced slug does not exist", ErrValidation)
	ErrYearInFuture    = fmt.Errorf("%w: year cannot be greater than the current year", ErrValidation)
	ErrAlreadyReviewed = fmt.Errorf("%w: you have already reviewed this title", ErrValidation)

	// Deliberately generic: reveals nothing about which check failed.
	ErrInvalidCode = fmt.Errorf("%w: invalid confirmation code", ErrValidation)
)
