package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDomain   = errors.New("unknown domain type")
	ErrValueConversion = errors.New("value conversion error")
	ErrDomainMismatch  = errors.New("domain mismatch")
)

// Type identifies the scalar kind a column may hold.
type Type int

const (
	Int32 Type = iota
	Int64
	Float32
	Float64
	Char
	String
)

// TypeOf resolves a domain token from a schema specification string.
// Each type accepts its canonical name and one alias (e.g. "Int32" or "Integer").
func TypeOf(token string) (Type, error) {
	switch token {
	case "Int32", "Integer":
		return Int32, nil
	case "Int64", "Long":
		return Int64, nil
	case "Float32", "Float":
		return Float32, nil
	case "Float64", "Double":
		return Float64, nil
	case "Char", "Character":
		return Char, nil
	case "String":
		return String, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDomain, token)
	}
}

// String returns the canonical name of the type.
func (t Type) String() string {
	switch t {
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Char:
		return "Char"
	case String:
		return "String"
	default:
		return "Unknown"
	}
}
