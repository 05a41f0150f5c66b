package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"sort"

	"github.com/toyz/ifacegen/internal/annotations"
	"github.com/toyz/ifacegen/internal/models"
)

// Parser scans Go source for graphql:: annotated interface declarations and
// implementation sites.
type Parser struct {
	fileSet  *token.FileSet
	registry *annotations.SchemaRegistry
	ann      *annotations.Parser
}

// NewParser creates a scanner with the builtin annotation schemas.
func NewParser() *Parser {
	registry := annotations.NewSchemaRegistry()
	if err := annotations.RegisterBuiltinSchemas(registry); err != nil {
		panic(fmt.Sprintf("builtin annotation schemas: %v", err))
	}
	return &Parser{
		fileSet:  token.NewFileSet(),
		registry: registry,
		ann:      annotations.NewParser(registry),
	}
}

// ParseSource scans a single source string. Used by tests.
func (p *Parser) ParseSource(filename, source string) (*models.PackageDecls, error) {
	file, err := parser.ParseFile(p.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return p.parseFiles(file.Name.Name, "./", map[string]*ast.File{filename: file})
}

// ParseDirectory scans every Go file of the single package in path.
func (p *Parser) ParseDirectory(path string) (*models.PackageDecls, error) {
	pkgs, err := parser.ParseDir(p.fileSet, path, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory %s: %w", path, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go packages found in directory %s", path)
	}
	if len(pkgs) > 1 {
		return nil, fmt.Errorf("multiple packages found in directory %s", path)
	}
	for name, pkg := range pkgs {
		return p.parseFiles(name, path, pkg.Files)
	}
	return nil, nil // unreachable
}

func (p *Parser) parseFiles(pkgName, pkgPath string, files map[string]*ast.File) (*models.PackageDecls, error) {
	decls := &models.PackageDecls{
		PackageName:   pkgName,
		PackagePath:   pkgPath,
		Implementers:  make(map[string][]models.ImplementerDecl),
		DeclaredTypes: make(map[string]bool),
	}

	// Deterministic file order keeps declaration order stable across runs.
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := p.scanFile(files[name], decls); err != nil {
			return nil, err
		}
	}
	return decls, nil
}

func (p *Parser) scanFile(file *ast.File, decls *models.PackageDecls) error {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			decls.DeclaredTypes[typeSpec.Name.Name] = true

			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}
			if err := p.scanTypeSpec(typeSpec, doc, decls); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Parser) scanTypeSpec(spec *ast.TypeSpec, doc *ast.CommentGroup, decls *models.PackageDecls) error {
	sites, err := p.annotationSites(doc)
	if err != nil {
		return err
	}

	if iface, ok := spec.Type.(*ast.InterfaceType); ok {
		ifaceSites := sites[annotations.InterfaceKind]
		if len(ifaceSites) == 0 {
			return nil
		}
		decl, err := p.buildInterfaceDecl(spec, doc, iface, ifaceSites, decls)
		if err != nil {
			return err
		}
		decls.Interfaces = append(decls.Interfaces, *decl)
		return nil
	}

	// Implements sites are grouped by target interface and merged as one
	// annotation per interface; re-listing an interface on the same type is
	// a duplicate, not a second implementer.
	groups := make(map[string][]*annotations.ParsedAnnotation)
	var targets []string
	for _, site := range sites[annotations.ImplementsKind] {
		if prior := groups[site.Target]; len(prior) > 0 {
			return &annotations.DuplicateOptionError{
				Kind:  annotations.ImplementsKind,
				Entry: site.Target,
				Loc:   site.Location,
				Prior: prior[0].Location,
			}
		}
		groups[site.Target] = append(groups[site.Target], site)
		targets = append(targets, site.Target)
	}

	schema, _ := p.registry.Schema(annotations.ImplementsKind)
	for _, target := range targets {
		group := groups[target]
		merged, err := annotations.Merge(schema, group)
		if err != nil {
			return err
		}
		decls.Implementers[target] = append(decls.Implementers[target], models.ImplementerDecl{
			TypeName:  spec.Name.Name,
			Interface: target,
			Loc:       p.location(spec.Pos()),
			Meta:      models.ImplementerMetaFromMerged(merged, group[0].Location),
		})
	}
	return nil
}

func (p *Parser) buildInterfaceDecl(
	spec *ast.TypeSpec,
	doc *ast.CommentGroup,
	iface *ast.InterfaceType,
	sites []*annotations.ParsedAnnotation,
	decls *models.PackageDecls,
) (*models.InterfaceDecl, error) {
	schema, _ := p.registry.Schema(annotations.InterfaceKind)
	merged, err := annotations.Merge(schema, sites)
	if err != nil {
		return nil, err
	}

	decl := &models.InterfaceDecl{
		Name:        spec.Name.Name,
		PackageName: decls.PackageName,
		PackagePath: decls.PackagePath,
		Exported:    ast.IsExported(spec.Name.Name),
		Loc:         p.location(spec.Pos()),
		Meta:        models.InterfaceMetaFromMerged(merged, p.location(spec.Pos())),
	}
	if doc != nil {
		decl.Doc = ExtractDescription(doc.Text())
	}

	for _, field := range iface.Methods.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("%s: interface %s embeds another interface; embedded interfaces are not supported",
				p.location(field.Pos()), decl.Name)
		}
		funcType, ok := field.Type.(*ast.FuncType)
		if !ok {
			continue
		}
		method, err := p.buildMethodDecl(field.Names[0].Name, field, funcType)
		if err != nil {
			return nil, fmt.Errorf("interface %s: %w", decl.Name, err)
		}
		decl.Methods = append(decl.Methods, *method)
	}
	return decl, nil
}

func (p *Parser) buildMethodDecl(name string, field *ast.Field, funcType *ast.FuncType) (*models.MethodDecl, error) {
	method := &models.MethodDecl{
		Name: name,
		Loc:  p.location(field.Pos()),
		Args: make(map[string]*models.ArgMeta),
	}

	sites, err := p.annotationSites(field.Doc)
	if err != nil {
		return nil, err
	}

	fieldSchema, _ := p.registry.Schema(annotations.FieldKind)
	mergedField, err := annotations.Merge(fieldSchema, sites[annotations.FieldKind])
	if err != nil {
		return nil, err
	}
	method.Field = models.FieldMetaFromMerged(mergedField, method.Loc)

	// Doc-comment defaults: description and Deprecated: convention apply
	// only when no explicit option was given.
	if field.Doc != nil {
		method.Doc = ExtractDescription(field.Doc.Text())
		if method.Field.Description == "" {
			method.Field.Description = method.Doc
		}
		if method.Field.Deprecated == nil {
			method.Field.Deprecated = ExtractDeprecation(field.Doc.Text())
		}
	}

	if funcType.Params != nil {
		for _, param := range funcType.Params.List {
			typeExpr := types.ExprString(param.Type)
			if len(param.Names) == 0 {
				return nil, fmt.Errorf("%s: method %s has an unnamed parameter of type %s; parameters must be named",
					method.Loc, name, typeExpr)
			}
			for _, ident := range param.Names {
				method.Params = append(method.Params, models.ParamDecl{Name: ident.Name, Type: typeExpr})
			}
		}
	}

	if err := p.mergeArgSites(method, sites[annotations.ArgKind]); err != nil {
		return nil, err
	}

	return method, p.recordResults(method, funcType)
}

func (p *Parser) mergeArgSites(method *models.MethodDecl, sites []*annotations.ParsedAnnotation) error {
	byParam := make(map[string][]*annotations.ParsedAnnotation)
	for _, site := range sites {
		byParam[site.Target] = append(byParam[site.Target], site)
	}
	argSchema, _ := p.registry.Schema(annotations.ArgKind)
	for param, group := range byParam {
		found := false
		for _, decl := range method.Params {
			if decl.Name == param {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s: graphql::arg targets unknown parameter %q of method %s",
				group[0].Location, param, method.Name)
		}
		merged, err := annotations.Merge(argSchema, group)
		if err != nil {
			return err
		}
		method.Args[param] = models.ArgMetaFromMerged(merged, group[0].Location)
	}
	return nil
}

func (p *Parser) recordResults(method *models.MethodDecl, funcType *ast.FuncType) error {
	if funcType.Results == nil || len(funcType.Results.List) == 0 {
		return nil
	}
	var results []string
	for _, res := range funcType.Results.List {
		expr := types.ExprString(res.Type)
		n := len(res.Names)
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			results = append(results, expr)
		}
	}
	switch {
	case len(results) == 1 && results[0] == "error":
		method.HasError = true
	case len(results) == 1:
		method.Result = results[0]
	case len(results) == 2 && results[1] == "error":
		method.Result = results[0]
		method.HasError = true
	default:
		return fmt.Errorf("%s: method %s must return nothing, T, error, or (T, error)",
			method.Loc, method.Name)
	}
	return nil
}

// annotationSites parses every annotation line of a comment group, grouped
// by kind.
func (p *Parser) annotationSites(doc *ast.CommentGroup) (map[annotations.Kind][]*annotations.ParsedAnnotation, error) {
	sites := make(map[annotations.Kind][]*annotations.ParsedAnnotation)
	if doc == nil {
		return sites, nil
	}
	for _, comment := range doc.List {
		if !annotations.IsAnnotation(comment.Text) {
			continue
		}
		parsed, err := p.ann.Parse(comment.Text, p.location(comment.Pos()))
		if err != nil {
			return nil, err
		}
		sites[parsed.Kind] = append(sites[parsed.Kind], parsed)
	}
	return sites, nil
}

func (p *Parser) location(pos token.Pos) annotations.SourceLocation {
	position := p.fileSet.Position(pos)
	return annotations.SourceLocation{
		File:   position.Filename,
		Line:   position.Line,
		Column: position.Column,
	}
}
