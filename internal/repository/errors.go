package repository

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	ErrUpstream = errors.New("record store request failed")
)
