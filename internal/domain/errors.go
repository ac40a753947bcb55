package domain

import "errors"

var (
	ErrNotInitialized = errors.New("event capacity not initialized")
	ErrStateNotFound  = errors.New("capacity state not found")
)

var (
	ErrAtCapacity = errors.New("no available spots")
)

var (
	ErrValidation = errors.New("validation error")
)
