package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения

// Gateway errors
var (
	ErrNoResponse     = errors.New("no response")
	ErrSessionExpired = errors.New("session expired")
	ErrNotFound       = errors.New("resource not found")
	ErrBackend        = errors.New("backend rejected request")
)

// Session errors
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyToken         = errors.New("empty token")
)

// Entity errors
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrRentalNotFound  = errors.New("rental not found")
	ErrInvalidStatus   = errors.New("invalid vehicle status")
	ErrInvalidFuel     = errors.New("invalid fuel level")
)

// Form errors
var (
	ErrValidation = errors.New("validation failed")
)
