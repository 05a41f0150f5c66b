package gqlruntime

import (
	"github.com/google/uuid"
)

// Executor is the per-resolution handle an external GraphQL executor passes
// into every generated resolution call. Generated code never implements it;
// it only reads from it. The executor guarantees the handle stays valid for
// the duration of the call and, for async fields, until the returned Thunk
// completes.
type Executor interface {
	// ContextValue returns the application context value the interface was
	// compiled against. Generated code narrows it with ContextValue[T].
	ContextValue() any

	// OperationID identifies the GraphQL operation this resolution belongs
	// to, stable across every field resolved for the same request.
	OperationID() string

	// LookAhead lists the child field names selected under the field being
	// resolved, in query order. Empty for leaf fields.
	LookAhead() []string
}

// ExecInfo is a minimal Executor implementation. Executor runtimes can embed
// it and tests use it directly.
type ExecInfo struct {
	Ctx       any
	ID        string
	Selection []string
}

// NewExecInfo builds an ExecInfo with a fresh operation identity.
func NewExecInfo(ctxValue any) *ExecInfo {
	return &ExecInfo{
		Ctx: ctxValue,
		ID:  uuid.NewString(),
	}
}

func (e *ExecInfo) ContextValue() any { return e.Ctx }

func (e *ExecInfo) OperationID() string { return e.ID }

func (e *ExecInfo) LookAhead() []string { return e.Selection }
