package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toyz/ifacegen/internal/annotations"
)

func TestParseSourceInterface(t *testing.T) {
	decls, err := NewParser().ParseSource("model.go", `package model

import "context"

// Character is anyone appearing in an episode.
//graphql::interface -Name=Character -Implementers=Human,Droid
type StarWarsCharacter interface {
	// ID returns the unique identifier.
	ID(ctx context.Context) string

	//graphql::arg limit -Default=10
	Friends(ctx context.Context, limit int) ([]string, error)
}
`)
	require.NoError(t, err)
	require.Equal(t, "model", decls.PackageName)
	require.Len(t, decls.Interfaces, 1)

	iface := decls.Interfaces[0]
	require.Equal(t, "StarWarsCharacter", iface.Name)
	require.True(t, iface.Exported)
	require.Equal(t, "Character is anyone appearing in an episode.", iface.Doc)
	require.Equal(t, "Character", iface.Meta.Name)
	require.Equal(t, []string{"Human", "Droid"}, iface.Meta.Implementers)

	require.Len(t, iface.Methods, 2)

	id := iface.Methods[0]
	require.Equal(t, "ID", id.Name)
	require.Equal(t, "string", id.Result)
	require.False(t, id.HasError)
	require.Len(t, id.Params, 1)
	require.Equal(t, "context.Context", id.Params[0].Type)
	require.Equal(t, "ID returns the unique identifier.", id.Field.Description)

	friends := iface.Methods[1]
	require.Equal(t, "[]string", friends.Result)
	require.True(t, friends.HasError)
	require.Contains(t, friends.Args, "limit")
	require.Equal(t, "10", friends.Args["limit"].Default.Expr)
}

func TestParseSourceImplementationSites(t *testing.T) {
	decls, err := NewParser().ParseSource("model.go", `package model

//graphql::interface
type Node interface {
	ID() string
}

//graphql::implements Node
type User struct{ id string }

//graphql::implements Node -Scalar=MyScalar
type Post struct{ id string }

type Unrelated struct{}
`)
	require.NoError(t, err)

	impls := decls.Implementers["Node"]
	require.Len(t, impls, 2)
	require.Equal(t, "User", impls[0].TypeName)
	require.Equal(t, "Post", impls[1].TypeName)
	require.Equal(t, "MyScalar", impls[1].Meta.Scalar)

	require.True(t, decls.DeclaredTypes["Unrelated"])
	require.True(t, decls.DeclaredTypes["Node"])
}

func TestParseSourceRejectsRepeatedImplementsSite(t *testing.T) {
	_, err := NewParser().ParseSource("model.go", `package model

//graphql::interface
type Node interface {
	ID() string
}

//graphql::implements Node
//graphql::implements Node
type User struct{ id string }
`)
	require.Error(t, err)

	var dup *annotations.DuplicateOptionError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "Node", dup.Entry)
	require.NotZero(t, dup.Prior.Line)
}

func TestParseSourceImplementsMultipleInterfaces(t *testing.T) {
	decls, err := NewParser().ParseSource("model.go", `package model

//graphql::interface
type Node interface {
	ID() string
}

//graphql::interface
type Character interface {
	ID() string
	Name() string
}

//graphql::implements Node
//graphql::implements Character -Async
type Human struct{ id string }
`)
	require.NoError(t, err)

	require.Len(t, decls.Implementers["Node"], 1)
	require.False(t, decls.Implementers["Node"][0].Meta.Async)

	require.Len(t, decls.Implementers["Character"], 1)
	require.Equal(t, "Human", decls.Implementers["Character"][0].TypeName)
	require.True(t, decls.Implementers["Character"][0].Meta.Async)
}

func TestParseSourceIgnoresUnannotatedInterfaces(t *testing.T) {
	decls, err := NewParser().ParseSource("model.go", `package model

type Plain interface {
	ID() string
}
`)
	require.NoError(t, err)
	require.Empty(t, decls.Interfaces)
}

func TestParseSourceRejectsEmbeddedInterfaces(t *testing.T) {
	_, err := NewParser().ParseSource("model.go", `package model

//graphql::interface
type Node interface {
	Plain
	ID() string
}
`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "embed")
}

func TestParseSourceRejectsUnnamedParams(t *testing.T) {
	_, err := NewParser().ParseSource("model.go", `package model

//graphql::interface
type Node interface {
	ID(string) string
}
`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be named")
}

func TestParseSourceRejectsBadResultShape(t *testing.T) {
	_, err := NewParser().ParseSource("model.go", `package model

//graphql::interface
type Node interface {
	ID() (string, int)
}
`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must return nothing, T, error, or (T, error)")
}

func TestParseSourceRejectsUnknownArgTarget(t *testing.T) {
	_, err := NewParser().ParseSource("model.go", `package model

//graphql::interface
type Node interface {
	//graphql::arg nope -Name=x
	ID(id string) string
}
`)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown parameter "nope"`)
}

func TestParseSourceGenDeclDoc(t *testing.T) {
	// The annotation may sit on the surrounding type block.
	decls, err := NewParser().ParseSource("model.go", `package model

//graphql::interface -Implementers=User
type (
	Node interface {
		ID() string
	}
)
`)
	require.NoError(t, err)
	require.Len(t, decls.Interfaces, 1)
}
