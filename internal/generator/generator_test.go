package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toyz/ifacegen/internal/builder"
	"github.com/toyz/ifacegen/internal/models"
	"github.com/toyz/ifacegen/internal/parser"
	"github.com/toyz/ifacegen/internal/utils"
)

func compile(t *testing.T, source string) *models.Definition {
	t.Helper()
	decls, err := parser.NewParser().ParseSource("source.go", source)
	require.NoError(t, err)
	require.NotEmpty(t, decls.Interfaces)
	decl := &decls.Interfaces[0]
	def, err := builder.Build(decl, decls.Implementers[decl.Name], decls.DeclaredTypes)
	require.NoError(t, err)
	return def
}

func TestGenerateInterfaceFile(t *testing.T) {
	def := compile(t, `package model

import "context"

// Node is anything with an identity.
//graphql::interface -Implementers=User,Post
type Node interface {
	// ID returns the globally unique id.
	ID(ctx context.Context) string
}
`)

	file, err := NewGenerator().GenerateInterfaceFile(def)
	require.NoError(t, err)

	require.Equal(t, "Node", file.Interface)
	require.Equal(t, "model", file.PackageName)
	require.Equal(t, "autogen_node_graphql.go", file.FilePath)

	require.True(t, strings.HasPrefix(file.Content, "// Code generated by ifacegen. DO NOT EDIT."))
	require.Contains(t, file.Content, "package model")
	require.NoError(t, utils.ValidateGoCode(file.Content))

	// All six artifacts land in the same file.
	for _, want := range []string{
		"type NodeValue struct {",
		"var _ Node = (*NodeValue)(nil)",
		"func RegisterNodeType(reg gqlruntime.TypeRegistry) *ast.Definition {",
		") ResolveField(",
		") ResolveFieldAsync(",
		") ConcreteTypeName(",
		") ResolveIntoType(",
		") ResolveIntoTypeAsync(",
	} {
		require.Contains(t, file.Content, want)
	}
}

func TestGenerateInterfaceFileDynBackend(t *testing.T) {
	def := compile(t, `package model

//graphql::interface -Dyn=CharacterDyn -Implementers=Human
type Character interface {
	ID() string

	//graphql::field -Downcast
	AsHuman() *Human
}
`)

	file, err := NewGenerator().GenerateInterfaceFile(def)
	require.NoError(t, err)
	require.Equal(t, "autogen_character_graphql.go", file.FilePath)
	require.Contains(t, file.Content, "type CharacterDyn struct {")
	require.Contains(t, file.Content, "func (v CharacterDyn) ResolveField(")
	require.NoError(t, utils.ValidateGoCode(file.Content))
}

func TestFileName(t *testing.T) {
	require.Equal(t, "autogen_node_graphql.go", FileName("Node"))
	require.Equal(t, "autogen_starwarscharacter_graphql.go", FileName("StarWarsCharacter"))
}
