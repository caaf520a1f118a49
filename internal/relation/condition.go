package relation

import (
	"fmt"
	"strings"

	"minirel/internal/domain"
)

// splitCondition tokenizes a condition of the mini-language: exactly
// three tokens separated by single spaces, "attr op operand".
func splitCondition(cond string) (attr, opTok, operand string, err error) {
	tokens := strings.Split(cond, " ")
	if len(tokens) != 3 {
		return "", "", "", fmt.Errorf("%w: want \"attr op value\", got %q", ErrCondition, cond)
	}
	return tokens[0], tokens[1], tokens[2], nil
}

// stripQuotes removes the surrounding single quotes of a string literal,
// if present.
func stripQuotes(tok string) string {
	if len(tok) >= 2 && strings.HasPrefix(tok, "'") && strings.HasSuffix(tok, "'") {
		return tok[1 : len(tok)-1]
	}
	return tok
}

// compileCondition resolves a selection condition against the schema:
// the attribute to its column, the operator token, and the literal to a
// value of the column's domain.
func (s *Schema) compileCondition(cond string) (col int, op domain.Operator, lit domain.Value, err error) {
	attr, opTok, litTok, err := splitCondition(cond)
	if err != nil {
		return 0, 0, domain.Value{}, err
	}
	col, ok := s.col[attr]
	if !ok {
		return 0, 0, domain.Value{}, fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}
	op, err = domain.OperatorOf(opTok)
	if err != nil {
		return 0, 0, domain.Value{}, err
	}
	lit, err = domain.Parse(stripQuotes(litTok), s.domains[col])
	if err != nil {
		return 0, 0, domain.Value{}, err
	}
	return col, op, lit, nil
}
