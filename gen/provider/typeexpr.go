package provider

import (
	"fmt"
	"strings"

	"github.com/shiftgen/shiftgen/ir"
)

// ParseTypeExpr parses a schema-language type expression into a
// descriptor. Supported forms:
//
//	i32, string, binary, ...      primitives
//	list<T>                       ordered collection
//	map<K, V>                     key-value mapping
//	Nested2                       reference within currentSchema
//	other.Person                  cross-schema reference
func ParseTypeExpr(currentSchema, expr string) (ir.TypeDescriptor, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty type expression")
	}

	if inner, ok := containerArg(expr, "list"); ok {
		elem, err := ParseTypeExpr(currentSchema, inner)
		if err != nil {
			return nil, fmt.Errorf("list element: %w", err)
		}
		return ir.List(elem), nil
	}

	if inner, ok := containerArg(expr, "map"); ok {
		keyExpr, valExpr, err := splitMapArgs(inner)
		if err != nil {
			return nil, err
		}
		key, err := ParseTypeExpr(currentSchema, keyExpr)
		if err != nil {
			return nil, fmt.Errorf("map key: %w", err)
		}
		val, err := ParseTypeExpr(currentSchema, valExpr)
		if err != nil {
			return nil, fmt.Errorf("map value: %w", err)
		}
		return ir.Map(key, val), nil
	}

	if kind, ok := ir.ParsePrimitive(expr); ok {
		return &ir.PrimitiveDescriptor{PrimitiveKind: kind}, nil
	}

	if strings.ContainsAny(expr, "<>,") {
		return nil, fmt.Errorf("malformed type expression %q", expr)
	}

	if schema, name, ok := strings.Cut(expr, "."); ok {
		if schema == "" || name == "" || strings.Contains(name, ".") {
			return nil, fmt.Errorf("malformed type reference %q", expr)
		}
		return ir.Ref(schema, name), nil
	}
	return ir.Ref(currentSchema, expr), nil
}

// containerArg returns the bracketed argument of container<...> if expr
// uses the given container keyword.
func containerArg(expr, keyword string) (string, bool) {
	if !strings.HasPrefix(expr, keyword+"<") || !strings.HasSuffix(expr, ">") {
		return "", false
	}
	return expr[len(keyword)+1 : len(expr)-1], true
}

// splitMapArgs splits "K, V" at the top-level comma, respecting nested
// angle brackets.
func splitMapArgs(inner string) (string, string, error) {
	depth := 0
	for i, r := range inner {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return inner[:i], inner[i+1:], nil
			}
		}
	}
	return "", "", fmt.Errorf("map type needs two arguments: map<%s>", inner)
}

// RenderTypeExpr is the inverse of ParseTypeExpr: it renders a
// descriptor back to its schema-language spelling.
func RenderTypeExpr(d ir.TypeDescriptor) string {
	return ir.ExprString(d)
}
