package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrStoreUnavailable = errors.New("address store unavailable")
	ErrSearchFailed     = errors.New("address search failed")
)
