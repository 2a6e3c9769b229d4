package database

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrInvalidPropertyType = errors.New("invalid property type")
)
