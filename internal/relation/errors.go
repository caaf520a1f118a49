package relation

import "errors"

var (
	ErrSchema            = errors.New("malformed schema specification")
	ErrUnknownAttribute  = errors.New("unknown attribute")
	ErrTupleTypeMismatch = errors.New("tuple type mismatch")
	ErrIncompatible      = errors.New("incompatible tables")
	ErrCondition         = errors.New("malformed condition")
)
