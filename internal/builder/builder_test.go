package builder

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/toyz/ifacegen/internal/models"
	"github.com/toyz/ifacegen/internal/parser"
)

func parsePackage(t *testing.T, source string) *models.PackageDecls {
	t.Helper()
	decls, err := parser.NewParser().ParseSource("node.go", source)
	require.NoError(t, err)
	return decls
}

func buildFirst(t *testing.T, source string) (*models.Definition, error) {
	t.Helper()
	decls := parsePackage(t, source)
	require.NotEmpty(t, decls.Interfaces, "no annotated interfaces found")
	decl := &decls.Interfaces[0]
	return Build(decl, decls.Implementers[decl.Name], decls.DeclaredTypes)
}

const nodeSource = `package testdata

import "context"

// Node is anything with an identity.
//graphql::interface -Implementers=User,Post
type Node interface {
	// ID returns the globally unique id.
	ID(ctx context.Context) string
}
`

func TestBuildNodeExample(t *testing.T) {
	def, err := buildFirst(t, nodeSource)
	require.NoError(t, err)

	require.Equal(t, "Node", def.Name)
	require.Equal(t, "Node is anything with an identity.", def.Description)
	require.Equal(t, DefaultContextType, def.Context)
	require.Equal(t, models.EnumRepresentation, def.Kind)
	require.Equal(t, "NodeValue", def.Enum.Name)

	require.Len(t, def.Fields, 1)
	field := def.Fields[0]
	require.Equal(t, "id", field.Name)
	require.Equal(t, "string", field.Type)
	require.Equal(t, "ID returns the globally unique id.", field.Description)
	require.Len(t, field.Arguments, 1)
	require.Equal(t, models.ContextArgument, field.Arguments[0].Kind)

	// Variant count equals |implementers|, variant order equals listing order.
	require.Equal(t, []string{"User", "Post"}, def.Enum.Variants)
	require.Len(t, def.Implementers, 2)
	for _, impl := range def.Implementers {
		require.Nil(t, impl.Downcast, "tagged-union backend identifies variants structurally")
	}
}

func TestBuildFieldOrderFollowsDeclaration(t *testing.T) {
	def, err := buildFirst(t, `package testdata

//graphql::interface -Implementers=Droid
type Character interface {
	Name() string
	AppearsIn() []string
	Friends() []string
}
`)
	require.NoError(t, err)

	var names []string
	for _, f := range def.Fields {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"name", "appearsIn", "friends"}, names); diff != "" {
		t.Errorf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDynRequiresDowncastStrategy(t *testing.T) {
	const source = `package testdata

//graphql::interface -Dyn=NodeDyn -Implementers=User,Post -On=User:ResolveUser
type Node interface {
	ID() string
}
`
	_, err := buildFirst(t, source)
	var semErr *SemanticError
	require.ErrorAs(t, err, &semErr)
	require.Equal(t, UnresolvableImplementerCode, semErr.Code)
	require.Contains(t, semErr.Msg, "Post")

	// The same declaration succeeds under the tagged-union backend.
	enumSource := `package testdata

//graphql::interface -Implementers=User,Post -On=User:ResolveUser
type Node interface {
	ID() string
}
`
	def, err := buildFirst(t, enumSource)
	require.NoError(t, err)
	require.Equal(t, models.EnumRepresentation, def.Kind)
	require.NotNil(t, def.Implementers[0].Downcast)
	require.Equal(t, models.DowncastViaFunc, def.Implementers[0].Downcast.Kind)
	require.Nil(t, def.Implementers[1].Downcast)
}

func TestBuildDowncastMethodResolution(t *testing.T) {
	def, err := buildFirst(t, `package testdata

import "context"

//graphql::interface -Dyn=CharacterDyn -Implementers=Human,Droid
type Character interface {
	ID() string

	//graphql::field -Downcast
	AsHuman(ctx context.Context) *Human

	//graphql::field -Downcast
	AsDroid() *Droid
}
`)
	require.NoError(t, err)
	require.Equal(t, models.DynRepresentation, def.Kind)
	require.Equal(t, "CharacterDyn", def.Dyn.Name)

	// Downcast methods never become fields.
	require.Len(t, def.Fields, 1)
	require.Equal(t, "id", def.Fields[0].Name)

	human := def.Implementers[0]
	require.Equal(t, models.DowncastViaMethod, human.Downcast.Kind)
	require.Equal(t, "AsHuman", human.Downcast.Method)
	require.True(t, human.Downcast.WithContext)
	require.Equal(t, DefaultContextType, human.ContextType)

	droid := def.Implementers[1]
	require.Equal(t, "AsDroid", droid.Downcast.Method)
	require.False(t, droid.Downcast.WithContext)
}

func TestBuildEmptyImplementerSet(t *testing.T) {
	const source = `package testdata

//graphql::interface
type Node interface {
	ID() string
}
`
	_, err := buildFirst(t, source)
	var semErr *SemanticError
	require.ErrorAs(t, err, &semErr)
	require.Equal(t, EmptyImplementerSetCode, semErr.Code)
}

func TestBuildDiscoversImplementationSites(t *testing.T) {
	def, err := buildFirst(t, `package testdata

//graphql::interface
type Node interface {
	ID() string
}

//graphql::implements Node
type User struct{ id string }

//graphql::implements Node
type Post struct{ id string }
`)
	require.NoError(t, err)
	require.Equal(t, []string{"User", "Post"}, def.Enum.Variants)
}

func TestBuildAsyncDefaults(t *testing.T) {
	def, err := buildFirst(t, `package testdata

//graphql::interface -Async -Implementers=User
type Node interface {
	ID() string

	//graphql::field -Async
	Version() int
}
`)
	require.NoError(t, err)
	require.True(t, def.Fields[0].IsAsync, "interface-level -Async applies to every field")
	require.True(t, def.Fields[1].IsAsync)
	require.Equal(t, []string{"id", "version"}, def.AsyncFields())
}

func TestBuildImplementerAsyncMarksFields(t *testing.T) {
	def, err := buildFirst(t, `package testdata

//graphql::interface
type Node interface {
	ID() string
}

//graphql::implements Node -Async
type User struct{ id string }

//graphql::implements Node
type Post struct{ id string }
`)
	require.NoError(t, err)
	require.True(t, def.Fields[0].IsAsync, "an async implementation site widens the async default")
	require.Equal(t, []string{"id"}, def.AsyncFields())
}

func TestBuildDynImplementerOptIn(t *testing.T) {
	def, err := buildFirst(t, `package testdata

//graphql::interface -Dyn=NodeDyn
type Node interface {
	ID() string
}

//graphql::implements Node -Dyn
type User struct{ id string }
`)
	require.NoError(t, err)
	require.Equal(t, models.DynRepresentation, def.Kind)
	require.Nil(t, def.Implementers[0].Downcast, "-Dyn sites narrow by type assertion")

	// Without the opt-in the same site stays unresolvable.
	_, err = buildFirst(t, `package testdata

//graphql::interface -Dyn=NodeDyn
type Node interface {
	ID() string
}

//graphql::implements Node
type User struct{ id string }
`)
	var semErr *SemanticError
	require.ErrorAs(t, err, &semErr)
	require.Equal(t, UnresolvableImplementerCode, semErr.Code)
	require.Contains(t, semErr.Msg, "User")
}

func TestBuildDowncastMethodQualifiedResult(t *testing.T) {
	def, err := buildFirst(t, `package testdata

import "example.com/app/characters"

//graphql::interface -Dyn=CharacterDyn -Implementers=characters.Human
type Character interface {
	ID() string

	//graphql::field -Downcast
	AsHuman() *characters.Human
}
`)
	require.NoError(t, err)

	human := def.Implementers[0]
	require.Equal(t, "Human", human.GraphQLName)
	require.NotNil(t, human.Downcast)
	require.Equal(t, models.DowncastViaMethod, human.Downcast.Kind)
	require.Equal(t, "AsHuman", human.Downcast.Method)
}

func TestBuildArgumentClassification(t *testing.T) {
	def, err := buildFirst(t, `package testdata

//graphql::interface -Context=ResolverCtx -Implementers=Query
type Search interface {
	//graphql::arg q -Name=query -Description="Search terms"
	//graphql::arg limit -Default=25
	//graphql::arg rc -Context
	//graphql::arg ex -Executor
	Results(q string, limit int, rc ResolverCtx, ex any) ([]string, error)
}
`)
	require.NoError(t, err)
	require.Equal(t, "ResolverCtx", def.Context)

	field := def.Fields[0]
	require.True(t, field.HasError)
	require.Len(t, field.Arguments, 4)

	require.Equal(t, models.RegularArgument, field.Arguments[0].Kind)
	require.Equal(t, "query", field.Arguments[0].Name)
	require.Equal(t, "Search terms", field.Arguments[0].Description)

	require.Equal(t, "limit", field.Arguments[1].Name)
	require.NotNil(t, field.Arguments[1].Default)
	require.Equal(t, "25", field.Arguments[1].Default.Expr)

	require.Equal(t, models.ContextArgument, field.Arguments[2].Kind)
	require.Equal(t, models.ExecutorArgument, field.Arguments[3].Kind)
}

func TestBuildRejectsExcessContextParams(t *testing.T) {
	_, err := buildFirst(t, `package testdata

import "context"

//graphql::interface -Implementers=User
type Node interface {
	//graphql::arg a -Context
	ID(a context.Context, b context.Context) string
}
`)
	var semErr *SemanticError
	require.ErrorAs(t, err, &semErr)
	require.Equal(t, ArgumentClassificationCode, semErr.Code)
}

func TestBuildIgnoreSkipsMethod(t *testing.T) {
	def, err := buildFirst(t, `package testdata

//graphql::interface -Implementers=User
type Node interface {
	ID() string

	//graphql::field -Ignore
	Internal() string
}
`)
	require.NoError(t, err)
	require.Len(t, def.Fields, 1)
}

func TestBuildSynthesizedNameCollision(t *testing.T) {
	_, err := buildFirst(t, `package testdata

//graphql::interface -Implementers=User
type Node interface {
	ID() string
}

type NodeValue struct{}
`)
	var semErr *SemanticError
	require.ErrorAs(t, err, &semErr)
	require.Equal(t, NameCollisionCode, semErr.Code)
}

func TestBuildDeprecationFromDocConvention(t *testing.T) {
	def, err := buildFirst(t, `package testdata

//graphql::interface -Implementers=User
type Node interface {
	// LegacyID is the old identifier format.
	//
	// Deprecated: use ID instead.
	LegacyID() string

	//graphql::field -Deprecated
	OldName() string
}
`)
	require.NoError(t, err)

	legacy := def.Fields[0]
	require.NotNil(t, legacy.Deprecated)
	require.True(t, legacy.Deprecated.HasReason)
	require.Equal(t, "use ID instead.", legacy.Deprecated.Reason)
	require.Equal(t, "LegacyID is the old identifier format.", legacy.Description)

	old := def.Fields[1]
	require.NotNil(t, old.Deprecated)
	require.False(t, old.Deprecated.HasReason)
}

func TestExposedName(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{"ID", "id"},
		{"Name", "name"},
		{"HomePlanet", "homePlanet"},
		{"HTMLBody", "htmlBody"},
		{"URL", "url"},
		{"AppearsIn", "appearsIn"},
	}
	for _, tt := range tests {
		if got := exposedName(tt.method); got != tt.want {
			t.Errorf("exposedName(%q) = %q, want %q", tt.method, got, tt.want)
		}
	}
}

func TestBuildErrorIsSemanticNotPartial(t *testing.T) {
	// A failing build returns no definition at all.
	def, err := buildFirst(t, `package testdata

//graphql::interface -Dyn=NodeDyn -Implementers=Orphan
type Node interface {
	ID() string
}
`)
	require.Error(t, err)
	require.Nil(t, def)
	require.False(t, errors.Is(err, nil))
}
