package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrTermTooShort   = errors.New("search term is too short")
	ErrTermTooLong    = errors.New("search term is too long")
	ErrInvalidTerm    = errors.New("invalid search term")
	ErrInvalidLimit   = errors.New("invalid result limit")
	ErrInvalidAddress = errors.New("invalid address")
)
