package domain

import "errors"

var (
	// ErrIncompleteService is returned when a treatment or delivery mode is missing
	ErrIncompleteService = errors.New("domain: incomplete service identification")
)
