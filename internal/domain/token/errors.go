package token

import "errors"

// Token domain errors
var (
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenDisabled = errors.New("token disabled")
)
