package domain

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// Value is a scalar of one of the six domain types. The zero value is an
// Int32 zero. Values are immutable; tables share them freely across rows.
type Value struct {
	kind Type
	i    int64
	f    float64
	s    string
}

// NewInt32 creates an Int32 value.
func NewInt32(v int32) Value {
	return Value{kind: Int32, i: int64(v)}
}

// NewInt64 creates an Int64 value.
func NewInt64(v int64) Value {
	return Value{kind: Int64, i: v}
}

// NewFloat32 creates a Float32 value.
func NewFloat32(v float32) Value {
	return Value{kind: Float32, f: float64(v)}
}

// NewFloat64 creates a Float64 value.
func NewFloat64(v float64) Value {
	return Value{kind: Float64, f: v}
}

// NewChar creates a Char value.
func NewChar(v rune) Value {
	return Value{kind: Char, i: int64(v)}
}

// NewString creates a String value.
func NewString(v string) Value {
	return Value{kind: String, s: v}
}

// Type returns the domain type of the value.
func (v Value) Type() Type {
	return v.kind
}

// Equals checks if the value has the same type and payload as other.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Int32, Int64, Char:
		return v.i == other.i
	case Float32, Float64:
		return v.f == other.f
	default:
		return v.s == other.s
	}
}

// CompareTo returns -1, 0, or 1 if the value is less than, equal to, or
// greater than other under the domain's natural ordering. Values of
// differing types do not compare.
func (v Value) CompareTo(other Value) (int, error) {
	if v.kind != other.kind {
		return 0, fmt.Errorf("%w: cannot compare %v with %v", ErrDomainMismatch, v.kind, other.kind)
	}
	switch v.kind {
	case Int32, Int64, Char:
		return compareOrdered(v.i, other.i), nil
	case Float32, Float64:
		return compareOrdered(v.f, other.f), nil
	default:
		return compareOrdered(v.s, other.s), nil
	}
}

func compareOrdered[T int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Key returns a canonical type-tagged encoding of the value. Two values
// have equal keys exactly when Equals reports true, so keys can serve as
// set-membership map keys.
func (v Value) Key() string {
	switch v.kind {
	case Int32, Int64, Char:
		return fmt.Sprintf("%d#%d", v.kind, v.i)
	case Float32, Float64:
		return fmt.Sprintf("%d#%x", v.kind, math.Float64bits(v.f))
	default:
		return fmt.Sprintf("%d#%s", v.kind, strconv.Quote(v.s))
	}
}

// String returns the display form of the value.
func (v Value) String() string {
	switch v.kind {
	case Int32, Int64:
		return strconv.FormatInt(v.i, 10)
	case Float32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Char:
		return string(rune(v.i))
	default:
		return v.s
	}
}

// Parse converts a literal token into a value of type t.
func Parse(tok string, t Type) (Value, error) {
	switch t {
	case Int32:
		n, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an Int32", ErrValueConversion, tok)
		}
		return NewInt32(int32(n)), nil
	case Int64:
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not an Int64", ErrValueConversion, tok)
		}
		return NewInt64(n), nil
	case Float32:
		f, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a Float32", ErrValueConversion, tok)
		}
		return NewFloat32(float32(f)), nil
	case Float64:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q is not a Float64", ErrValueConversion, tok)
		}
		return NewFloat64(f), nil
	case Char:
		r, size := utf8.DecodeRuneInString(tok)
		if size == 0 || r == utf8.RuneError {
			return Value{}, fmt.Errorf("%w: %q is not a Char", ErrValueConversion, tok)
		}
		return NewChar(r), nil
	default:
		return NewString(tok), nil
	}
}
