package service

import "errors"

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrPrimaryPack is returned when attempting to delete a shipment's primary submission pack
	ErrPrimaryPack = errors.New("primary submission pack cannot be deleted")

	// ErrCounterUnavailable is returned alongside a fallback number when the
	// counter store cannot be read or written
	ErrCounterUnavailable = errors.New("document number counter unavailable")

	// ErrInvalidCredentials is returned when authentication fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotActive is returned when a workspace account is deactivated
	ErrAccountNotActive = errors.New("account is not active")
)
