package service

import "errors"

var (
	ErrMissingFields = errors.New("required fields are missing")
	ErrWrongEmail    = errors.New("wrong email")
	ErrWrongPassword = errors.New("wrong password")
	ErrUnknownUser   = errors.New("unknown user")

	ErrHashingFailed = errors.New("password hashing failed")
)
