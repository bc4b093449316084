package user

import "errors"

var (
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrUnknownRole      = errors.New("unknown role")
	ErrPermissionDenied = errors.New("insufficient permissions")
)
