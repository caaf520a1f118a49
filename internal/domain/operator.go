package domain

import (
	"errors"
	"fmt"
)

var ErrUnsupportedOperator = errors.New("unsupported operator")

// Operator is one of the six comparison operators of the condition
// mini-language.
type Operator int

const (
	Eq Operator = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// OperatorOf resolves an operator token.
func OperatorOf(token string) (Operator, error) {
	switch token {
	case "==":
		return Eq, nil
	case "!=":
		return Ne, nil
	case "<":
		return Lt, nil
	case "<=":
		return Le, nil
	case ">":
		return Gt, nil
	case ">=":
		return Ge, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, token)
	}
}

// Satisfied applies the operator to a three-way comparison result, i.e.
// it reports whether "a op b" holds given cmp = CompareTo(a, b).
func (op Operator) Satisfied(cmp int) bool {
	switch op {
	case Eq:
		return cmp == 0
	case Ne:
		return cmp != 0
	case Lt:
		return cmp < 0
	case Le:
		return cmp <= 0
	case Gt:
		return cmp > 0
	default:
		return cmp >= 0
	}
}

// String returns the operator token.
func (op Operator) String() string {
	switch op {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	default:
		return ">="
	}
}
