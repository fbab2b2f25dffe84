package errs

import "errors"

// Vendor error taxonomy. Every failure coming out of the vendor gateway is
// marked with exactly one of these so the workflow and recovery layers
// handle a single error shape.
var (
	// Token acquisition
	ErrVendorAuth = errors.New("vendor rejected credentials")

	// Transport-level failure (timeout, connection refused, DNS)
	ErrNetwork = errors.New("vendor network failure")

	// Response arrived but could not be interpreted
	ErrProtocol = errors.New("malformed vendor response")

	// 422-class rejection of our request payload
	ErrValidation = errors.New("vendor validation error")

	// Any other non-success vendor status
	ErrVendorAPI = errors.New("vendor api error")
)
