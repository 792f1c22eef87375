package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("email already registered")
	ErrForbidden          = errors.New("access forbidden")

	ErrPageNotFound = errors.New("page not found")
	ErrPageExists   = errors.New("page slug already in use")

	ErrDonationNotFound  = errors.New("donation not found")
	ErrInvalidTransition = errors.New("invalid donation status transition")

	ErrGatewayNotFound = errors.New("payment gateway not found")
	ErrGatewayExists   = errors.New("payment gateway already configured for provider")

	ErrGalleryItemNotFound = errors.New("gallery item not found")
)
