// Package gqlruntime is the support surface that generated interface
// dispatch code compiles against. It defines the contracts an external
// GraphQL executor consumes (field resolution, type narrowing, type
// metadata) without implementing the executor itself.
package gqlruntime

import (
	"context"
)

// Thunk is a suspended field resolution. The executor may invoke it on any
// worker after the call that produced it has returned; the producing value
// must therefore be safe to share until the Thunk completes.
type Thunk func() (any, error)

// Ready wraps an already-computed result into an immediately-complete Thunk.
// Async entry points use it so that synchronous methods present the same
// call-site contract as genuinely asynchronous ones.
func Ready(value any, err error) Thunk {
	return func() (any, error) {
		return value, err
	}
}

// FieldResolver is the synchronous resolution entry point of a generated
// interface value. Resolving an unknown field name panics: it signals drift
// between the registered schema and the generated dispatch code, not a
// request-level failure.
type FieldResolver interface {
	ResolveField(ctx context.Context, field string, args Arguments, ex Executor) (any, error)
}

// AsyncFieldResolver is the asynchronous resolution entry point. It always
// returns a Thunk, even for fields backed by synchronous methods.
type AsyncFieldResolver interface {
	ResolveFieldAsync(ctx context.Context, field string, args Arguments, ex Executor) Thunk
}

// TypeResolver narrows a polymorphic interface value to one of its concrete
// implementer types at the schema boundary.
type TypeResolver interface {
	// ConcreteTypeName reports the GraphQL type name of the concrete value.
	ConcreteTypeName(ctx context.Context, ex Executor) string

	// ResolveIntoType returns the value narrowed to the implementer
	// registered under typeName, or nil if the value is not of that type.
	ResolveIntoType(ctx context.Context, typeName string, ex Executor) (any, error)
}

// AsyncTypeResolver is the suspended counterpart of TypeResolver.
type AsyncTypeResolver interface {
	ResolveIntoTypeAsync(ctx context.Context, typeName string, ex Executor) Thunk
}

// MarkInput records a compile-time obligation that T is usable as a GraphQL
// input (argument) type. The call itself does nothing; generated code names
// every argument type through it so that a missing or renamed type fails
// compilation instead of surfacing at request time.
func MarkInput[T any]() {}

// MarkOutput records a compile-time obligation that T is usable as a GraphQL
// output type. See MarkInput.
func MarkOutput[T any]() {}

// ContextValue extracts the application context value carried by the
// executor, narrowed to T. It panics if the executor carries a different
// context type: generated code only requests the type the interface was
// compiled against.
func ContextValue[T any](ex Executor) T {
	v, ok := ex.ContextValue().(T)
	if !ok {
		panic("gqlruntime: executor carries a different context type than the interface was compiled with")
	}
	return v
}
