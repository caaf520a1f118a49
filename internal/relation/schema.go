package relation

import (
	"fmt"
	"strings"

	"minirel/internal/domain"
)

// Schema describes a relation: ordered attribute names, their domains,
// the key attributes, and a name-to-position index.
type Schema struct {
	attrs   []string
	domains []domain.Type
	key     []string
	col     map[string]int
}

// NewSchema creates a schema from parallel attribute and domain lists and
// a key designation. The key may be empty; every key name must be an
// attribute, and attribute names must be unique.
func NewSchema(attrs []string, domains []domain.Type, key []string) (*Schema, error) {
	if len(attrs) != len(domains) {
		return nil, fmt.Errorf("%w: %d attributes but %d domains", ErrSchema, len(attrs), len(domains))
	}
	col := make(map[string]int, len(attrs))
	for i, a := range attrs {
		if _, exists := col[a]; exists {
			return nil, fmt.Errorf("%w: duplicate attribute %q", ErrSchema, a)
		}
		col[a] = i
	}
	for _, k := range key {
		if _, exists := col[k]; !exists {
			return nil, fmt.Errorf("%w: key attribute %q not in attributes", ErrSchema, k)
		}
	}
	return &Schema{
		attrs:   append([]string(nil), attrs...),
		domains: append([]domain.Type(nil), domains...),
		key:     append([]string(nil), key...),
		col:     col,
	}, nil
}

// ParseSchema creates a schema from raw specification strings, each a
// sequence of tokens separated by single spaces (e.g. "bname accno",
// "String Integer", "accno"). An empty key string designates no key.
func ParseSchema(attrText, domainText, keyText string) (*Schema, error) {
	attrs := splitSpec(attrText)
	domTokens := splitSpec(domainText)
	domains := make([]domain.Type, len(domTokens))
	for i, tok := range domTokens {
		t, err := domain.TypeOf(tok)
		if err != nil {
			return nil, err
		}
		domains[i] = t
	}
	return NewSchema(attrs, domains, splitSpec(keyText))
}

// splitSpec splits a specification string on single spaces; an empty
// string yields no tokens.
func splitSpec(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, " ")
}

// Arity returns the number of attributes.
func (s *Schema) Arity() int {
	return len(s.attrs)
}

// Attributes returns a copy of the attribute names in order.
func (s *Schema) Attributes() []string {
	return append([]string(nil), s.attrs...)
}

// Domains returns a copy of the domain tags in attribute order.
func (s *Schema) Domains() []domain.Type {
	return append([]domain.Type(nil), s.domains...)
}

// Key returns a copy of the key attribute names.
func (s *Schema) Key() []string {
	return append([]string(nil), s.key...)
}

// Col returns the position of the named attribute.
func (s *Schema) Col(name string) (int, bool) {
	i, ok := s.col[name]
	return i, ok
}

// HasAttr checks if the schema contains the named attribute.
func (s *Schema) HasAttr(name string) bool {
	_, ok := s.col[name]
	return ok
}

// clone returns an independent copy of the schema. Derived tables never
// share schema storage with their operands.
func (s *Schema) clone() *Schema {
	c, _ := NewSchema(s.attrs, s.domains, s.key)
	return c
}

// locate resolves attribute names to positions, failing on the first
// name not present in the schema.
func (s *Schema) locate(names []string) ([]int, error) {
	positions := make([]int, len(names))
	for i, name := range names {
		pos, ok := s.col[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
		}
		positions[i] = pos
	}
	return positions, nil
}
