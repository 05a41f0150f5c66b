package annotations

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Prefix is the comment marker that introduces an annotation.
const Prefix = "graphql::"

// annotationBody is the grammar for everything after `graphql::<kind>`:
// positional tokens first, then `-Key` / `-Key=Value` options.
type annotationBody struct {
	Positional []string    `parser:"@Atom*"`
	Options    []rawOption `parser:"@@*"`
}

type rawOption struct {
	Pos   lexer.Position
	Key   string  `parser:"Dash @Atom"`
	Value *string `parser:"(Equals @(String | Atom | Number))?"`
}

// Parser parses single annotation comments against a schema registry.
type Parser struct {
	parser   *participle.Parser[annotationBody]
	registry *SchemaRegistry
}

// NewParser creates an annotation parser backed by the given schemas.
func NewParser(registry *SchemaRegistry) *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Number", Pattern: `-[0-9]+(\.[0-9]+)?|[0-9]+(\.[0-9]+)?`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Atom", Pattern: `[A-Za-z_][\w.,:()\[\]{}]*`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	return &Parser{
		parser: participle.MustBuild[annotationBody](
			participle.Lexer(lex),
			participle.Elide("Whitespace"),
		),
		registry: registry,
	}
}

// IsAnnotation reports whether a comment line carries the annotation prefix.
func IsAnnotation(comment string) bool {
	content := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	return strings.HasPrefix(content, Prefix)
}

// Parse parses one annotation comment. loc is the position of the comment in
// its source file and anchors every reported option span.
func (p *Parser) Parse(comment string, loc SourceLocation) (*ParsedAnnotation, error) {
	trimmed := strings.TrimSpace(comment)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, &SyntaxError{Msg: "annotation must be a line comment", Loc: loc}
	}
	content := strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))
	if !strings.HasPrefix(content, Prefix) {
		return nil, &SyntaxError{Msg: "annotation must start with " + Prefix, Loc: loc}
	}
	content = strings.TrimPrefix(content, Prefix)

	kindToken := content
	body := ""
	if i := strings.IndexAny(content, " \t"); i >= 0 {
		kindToken, body = content[:i], content[i+1:]
	}
	kind, err := ParseKind(kindToken)
	if err != nil {
		return nil, &SyntaxError{Msg: err.Error(), Loc: loc}
	}
	schema, err := p.registry.Schema(kind)
	if err != nil {
		return nil, &SyntaxError{Msg: err.Error(), Loc: loc}
	}

	parsed := &ParsedAnnotation{
		Kind:       kind,
		Location:   loc,
		RawComment: comment,
	}

	var ast *annotationBody
	if strings.TrimSpace(body) != "" {
		ast, err = p.parser.ParseString(loc.File, body)
		if err != nil {
			return nil, &SyntaxError{Msg: err.Error(), Loc: loc}
		}
	} else {
		ast = &annotationBody{}
	}

	if schema.TakesTarget {
		if len(ast.Positional) != 1 {
			return nil, &SyntaxError{
				Msg: "graphql::" + kind.String() + " requires exactly one target",
				Loc: loc,
			}
		}
		parsed.Target = ast.Positional[0]
	} else if len(ast.Positional) > 0 {
		return nil, &SyntaxError{
			Msg: "graphql::" + kind.String() + " does not take positional arguments",
			Loc: loc,
		}
	}

	for _, raw := range ast.Options {
		opt, err := p.checkOption(schema, raw, loc)
		if err != nil {
			return nil, err
		}
		parsed.Options = append(parsed.Options, opt)
	}

	return parsed, nil
}

// checkOption validates one raw option against the schema and resolves its
// source span.
func (p *Parser) checkOption(schema *Schema, raw rawOption, base SourceLocation) (Option, error) {
	optLoc := SourceLocation{
		File:   base.File,
		Line:   base.Line,
		Column: base.Column + raw.Pos.Column - 1,
	}

	spec, known := schema.Options[raw.Key]
	if !known {
		return Option{}, &UnknownOptionError{Kind: schema.Kind, Option: raw.Key, Loc: optLoc}
	}

	opt := Option{Key: raw.Key, Loc: optLoc}
	if raw.Value != nil {
		opt.HasValue = true
		opt.Raw = unquote(*raw.Value)
	}

	switch spec.Type {
	case FlagOption:
		if opt.HasValue {
			return Option{}, &ValueError{
				Kind: schema.Kind, Option: raw.Key, Loc: optLoc,
				Msg: "option is a bare flag and takes no value",
			}
		}
	case OptValueOption:
		// value optional
	default:
		if !opt.HasValue || opt.Raw == "" {
			return Option{}, &ValueError{
				Kind: schema.Kind, Option: raw.Key, Loc: optLoc,
				Msg: "option requires a value",
			}
		}
	}

	return opt, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		inner := s[1 : len(s)-1]
		return strings.ReplaceAll(inner, `\"`, `"`)
	}
	return s
}

// SplitList splits a ListOption value into its entries.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitPairs splits a PairsOption value into its Type:funcPath entries,
// preserving order.
func SplitPairs(raw string) ([][2]string, error) {
	var out [][2]string
	for _, entry := range SplitList(raw) {
		ty, fn, ok := strings.Cut(entry, ":")
		if !ok || ty == "" || fn == "" {
			return nil, &SyntaxError{Msg: "expected Type:funcPath pair, got " + entry}
		}
		out = append(out, [2]string{ty, fn})
	}
	return out, nil
}
