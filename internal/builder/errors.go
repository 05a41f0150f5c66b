package builder

import (
	"fmt"

	"github.com/toyz/ifacegen/internal/annotations"
)

// SemanticErrorCode classifies builder-stage failures. All of them are
// fatal to the interface being compiled; no partial artifact is emitted.
type SemanticErrorCode int

const (
	UnresolvableImplementerCode SemanticErrorCode = iota
	EmptyImplementerSetCode
	ArgumentClassificationCode
	NameCollisionCode
	InvalidDowncastCode
	MissingResultCode
	DuplicateFieldCode
)

func (c SemanticErrorCode) String() string {
	switch c {
	case UnresolvableImplementerCode:
		return "UnresolvableImplementer"
	case EmptyImplementerSetCode:
		return "EmptyImplementerSet"
	case ArgumentClassificationCode:
		return "ArgumentClassification"
	case NameCollisionCode:
		return "NameCollision"
	case InvalidDowncastCode:
		return "InvalidDowncast"
	case MissingResultCode:
		return "MissingResult"
	case DuplicateFieldCode:
		return "DuplicateField"
	default:
		return "Semantic"
	}
}

// SemanticError is a validation failure attributed to the most specific
// source span available.
type SemanticError struct {
	Code SemanticErrorCode
	Msg  string
	Loc  annotations.SourceLocation
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Loc, e.Code, e.Msg)
}

func (e *SemanticError) Location() annotations.SourceLocation { return e.Loc }

func semanticErrf(code SemanticErrorCode, loc annotations.SourceLocation, format string, args ...any) *SemanticError {
	return &SemanticError{Code: code, Msg: fmt.Sprintf(format, args...), Loc: loc}
}
