package errs

import "errors"

// Domain-specific sentinel errors for the digest pipeline
var (
	// Directory errors
	ErrFirmNotFound      = errors.New("firm not found")
	ErrFirmInactive      = errors.New("firm inactive")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrRecipientInactive = errors.New("recipient inactive")

	// Job errors
	ErrJobNotFound   = errors.New("notification job not found")
	ErrJobNotClaimed = errors.New("notification job not claimed by this worker")

	// Permanent marks a failure that retrying cannot fix
	ErrPermanent = errors.New("permanent failure")

	// Validation errors
	ErrInvalidDate = errors.New("invalid date")

	// Operation errors
	ErrDeliveryFailed = errors.New("delivery failed")
)
