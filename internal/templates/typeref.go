package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/toyz/ifacegen/internal/models"
)

// TypeRefExpr maps a Go type expression to the gqlparser ast constructor
// expression registered for it. Non-pointer types register as non-null;
// pointers and slices of pointers stay nullable.
func TypeRefExpr(goType string) string {
	goType = strings.TrimSpace(goType)

	nonNull := true
	if strings.HasPrefix(goType, "*") {
		goType = goType[1:]
		nonNull = false
	}

	if strings.HasPrefix(goType, "[]") {
		inner := TypeRefExpr(goType[2:])
		if nonNull {
			return fmt.Sprintf("ast.NonNullListType(%s, nil)", inner)
		}
		return fmt.Sprintf("ast.ListType(%s, nil)", inner)
	}

	name := graphQLTypeName(goType)
	if nonNull {
		return fmt.Sprintf("ast.NonNullNamedType(%q, nil)", name)
	}
	return fmt.Sprintf("ast.NamedType(%q, nil)", name)
}

// graphQLTypeName maps Go scalar types to the builtin GraphQL scalars and
// strips package qualifiers from everything else.
func graphQLTypeName(goType string) string {
	switch goType {
	case "string":
		return "String"
	case "bool":
		return "Boolean"
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64":
		return "Int"
	case "float32", "float64":
		return "Float"
	}
	return models.VariantName(goType)
}

// defaultValueKind classifies a default expression into the ast value kind
// registered alongside it. The raw form drops Go string quoting.
func defaultValueKind(expr string) (raw, kind string) {
	if expr == "nil" {
		return "null", "NullValue"
	}
	if expr == "true" || expr == "false" {
		return expr, "BooleanValue"
	}
	if unquoted, err := strconv.Unquote(expr); err == nil && strings.HasPrefix(expr, `"`) {
		return unquoted, "StringValue"
	}
	if _, err := strconv.ParseInt(expr, 10, 64); err == nil {
		return expr, "IntValue"
	}
	if _, err := strconv.ParseFloat(expr, 64); err == nil {
		return expr, "FloatValue"
	}
	return expr, "StringValue"
}

// zeroExpr is the Go zero value expression for a type, used when an
// argument declares a bare default.
func zeroExpr(goType string) string {
	switch goType {
	case "string":
		return `""`
	case "bool":
		return "false"
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64", "byte", "rune", "uintptr":
		return "0"
	case "any", "error", "interface{}":
		return "nil"
	}
	switch {
	case strings.HasPrefix(goType, "*"), strings.HasPrefix(goType, "[]"),
		strings.HasPrefix(goType, "map["), strings.HasPrefix(goType, "chan "),
		strings.HasPrefix(goType, "func("):
		return "nil"
	}
	return goType + "{}"
}
