package annotations

import (
	"fmt"
	"strings"
)

// AnnotationError is the common surface of all annotation-stage errors.
type AnnotationError interface {
	error
	Location() SourceLocation
	Code() ErrorCode
}

// ErrorCode classifies annotation-stage failures.
type ErrorCode int

const (
	SyntaxErrorCode ErrorCode = iota
	DuplicateOptionErrorCode
	UnknownOptionErrorCode
	ComposabilityErrorCode
	ValueErrorCode
)

func (e ErrorCode) String() string {
	switch e {
	case SyntaxErrorCode:
		return "SyntaxError"
	case DuplicateOptionErrorCode:
		return "DuplicateOptionError"
	case UnknownOptionErrorCode:
		return "UnknownOptionError"
	case ComposabilityErrorCode:
		return "ComposabilityError"
	case ValueErrorCode:
		return "ValueError"
	default:
		return "UnknownError"
	}
}

// SyntaxError reports a malformed annotation comment.
type SyntaxError struct {
	Msg string
	Loc SourceLocation
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s", e.Loc, e.Msg)
}

func (e *SyntaxError) Location() SourceLocation { return e.Loc }
func (e *SyntaxError) Code() ErrorCode          { return SyntaxErrorCode }

// DuplicateOptionError reports the same option set at two annotation sites
// of one declaration. Prior is the site that set it first. An empty Option
// means the positional target itself was re-listed.
type DuplicateOptionError struct {
	Kind   Kind
	Option string
	Entry  string // offending list/map entry, when the option holds a set
	Loc    SourceLocation
	Prior  SourceLocation
}

func (e *DuplicateOptionError) Error() string {
	var b strings.Builder
	if e.Option == "" {
		fmt.Fprintf(&b, "%s: duplicate graphql::%s annotation (%q listed again)", e.Loc, e.Kind, e.Entry)
	} else {
		fmt.Fprintf(&b, "%s: duplicate option -%s on graphql::%s annotation", e.Loc, e.Option, e.Kind)
		if e.Entry != "" {
			fmt.Fprintf(&b, " (entry %q listed again)", e.Entry)
		}
	}
	if e.Prior.File != "" {
		fmt.Fprintf(&b, ", first set at %s", e.Prior)
	}
	return b.String()
}

func (e *DuplicateOptionError) Location() SourceLocation { return e.Loc }
func (e *DuplicateOptionError) Code() ErrorCode          { return DuplicateOptionErrorCode }

// UnknownOptionError reports an option key the annotation kind does not accept.
type UnknownOptionError struct {
	Kind   Kind
	Option string
	Loc    SourceLocation
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("%s: unknown option -%s for graphql::%s annotation", e.Loc, e.Option, e.Kind)
}

func (e *UnknownOptionError) Location() SourceLocation { return e.Loc }
func (e *UnknownOptionError) Code() ErrorCode          { return UnknownOptionErrorCode }

// ComposabilityError reports two options that cannot be combined on one
// fully merged annotation.
type ComposabilityError struct {
	Kind   Kind
	Option string // the option that excludes others
	Other  string
	Loc    SourceLocation
}

func (e *ComposabilityError) Error() string {
	return fmt.Sprintf("%s: option -%s on graphql::%s annotation is not composable with -%s",
		e.Loc, e.Option, e.Kind, e.Other)
}

func (e *ComposabilityError) Location() SourceLocation { return e.Loc }
func (e *ComposabilityError) Code() ErrorCode          { return ComposabilityErrorCode }

// ValueError reports an option value of the wrong shape.
type ValueError struct {
	Kind   Kind
	Option string
	Msg    string
	Loc    SourceLocation
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: invalid value for -%s on graphql::%s annotation: %s",
		e.Loc, e.Option, e.Kind, e.Msg)
}

func (e *ValueError) Location() SourceLocation { return e.Loc }
func (e *ValueError) Code() ErrorCode          { return ValueErrorCode }
