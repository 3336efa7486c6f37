package models

import "errors"

var (
	ErrUnauthorized   = errors.New("not authorized")
	ErrMethodNotFound = errors.New("method not found")
)
