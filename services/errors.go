package services

import "errors"

// Common service-level errors
var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrDiagnosisNotFound = errors.New("diagnosis not found")
)
