package annotations

import (
	"errors"
	"testing"
)

func parseSites(t *testing.T, parser *Parser, comments ...string) []*ParsedAnnotation {
	t.Helper()
	sites := make([]*ParsedAnnotation, 0, len(comments))
	for i, c := range comments {
		parsed, err := parser.Parse(c, SourceLocation{File: "node.go", Line: i + 1, Column: 1})
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", c, err)
		}
		sites = append(sites, parsed)
	}
	return sites
}

func TestMergeAcrossSites(t *testing.T) {
	parser := newTestParser(t)
	schema := interfaceSchema()

	sites := parseSites(t, parser,
		"//graphql::interface -Name=Node",
		"//graphql::interface -Context=ResolverCtx -Implementers=User,Post",
	)

	merged, err := Merge(schema, sites)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if name, _ := merged.GetString("Name"); name != "Node" {
		t.Errorf("Name = %q, want Node", name)
	}
	if ctx, _ := merged.GetString("Context"); ctx != "ResolverCtx" {
		t.Errorf("Context = %q, want ResolverCtx", ctx)
	}
	implementers := merged.ListValues("Implementers")
	if len(implementers) != 2 || implementers[0] != "User" || implementers[1] != "Post" {
		t.Errorf("Implementers = %v, want [User Post]", implementers)
	}
}

func TestMergeDuplicateOptionIsOrderIndependent(t *testing.T) {
	parser := newTestParser(t)
	schema := interfaceSchema()

	a := "//graphql::interface -Name=Node"
	b := "//graphql::interface -Name=Entity"

	for _, order := range [][]string{{a, b}, {b, a}} {
		sites := parseSites(t, parser, order...)
		_, err := Merge(schema, sites)
		if err == nil {
			t.Fatalf("Merge(%v) succeeded, want duplicate-option error", order)
		}
		var dup *DuplicateOptionError
		if !errors.As(err, &dup) {
			t.Fatalf("error %T, want *DuplicateOptionError", err)
		}
		if dup.Option != "Name" {
			t.Errorf("duplicate option = %q, want Name", dup.Option)
		}
		if dup.Prior.Line == 0 || dup.Loc.Line == 0 {
			t.Errorf("duplicate error lacks spans: %v", dup)
		}
	}
}

func TestMergeImplementerSetSemantics(t *testing.T) {
	parser := newTestParser(t)
	schema := interfaceSchema()

	// Re-listing an implementer, even at another site, is a duplicate.
	sites := parseSites(t, parser,
		"//graphql::interface -Implementers=User,Post",
		"//graphql::interface -Implementers=User",
	)
	_, err := Merge(schema, sites)
	var dup *DuplicateOptionError
	if !errors.As(err, &dup) {
		t.Fatalf("error %T (%v), want *DuplicateOptionError", err, err)
	}
	if dup.Entry != "User" {
		t.Errorf("duplicate entry = %q, want User", dup.Entry)
	}
}

func TestMergeExternalDowncastPairs(t *testing.T) {
	parser := newTestParser(t)
	schema := interfaceSchema()

	sites := parseSites(t, parser,
		"//graphql::interface -On=User:ResolveUser",
		"//graphql::interface -On=Post:post.Resolve",
	)
	merged, err := Merge(schema, sites)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	pairs := merged.Pairs["On"]
	if len(pairs) != 2 {
		t.Fatalf("got %d downcast pairs, want 2", len(pairs))
	}
	if pairs[0].Key != "User" || pairs[0].Value != "ResolveUser" {
		t.Errorf("first pair = %+v", pairs[0])
	}

	// Same target type registered twice is a duplicate.
	sites = parseSites(t, parser,
		"//graphql::interface -On=User:ResolveUser",
		"//graphql::interface -On=User:OtherResolve",
	)
	_, err = Merge(schema, sites)
	var dup *DuplicateOptionError
	if !errors.As(err, &dup) {
		t.Fatalf("error %T (%v), want *DuplicateOptionError", err, err)
	}
}

func TestMergeBackendConflict(t *testing.T) {
	parser := newTestParser(t)
	schema := interfaceSchema()

	sites := parseSites(t, parser,
		"//graphql::interface -Dyn=NodeDyn",
		"//graphql::interface -Enum=NodeValue",
	)
	_, err := Merge(schema, sites)
	var comp *ComposabilityError
	if !errors.As(err, &comp) {
		t.Fatalf("error %T (%v), want *ComposabilityError", err, err)
	}
	if comp.Option != "Dyn" || comp.Other != "Enum" {
		t.Errorf("conflict reported as -%s vs -%s, want -Dyn vs -Enum", comp.Option, comp.Other)
	}
}

func TestMergeFieldExclusiveOptions(t *testing.T) {
	parser := newTestParser(t)
	schema := fieldSchema()

	tests := []struct {
		name     string
		comments []string
	}{
		{
			name:     "ignore with name",
			comments: []string{"//graphql::field -Ignore -Name=id"},
		},
		{
			name:     "downcast with description across sites",
			comments: []string{"//graphql::field -Downcast", `//graphql::field -Description="nope"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sites := parseSites(t, parser, tt.comments...)
			_, err := Merge(schema, sites)
			var comp *ComposabilityError
			if !errors.As(err, &comp) {
				t.Fatalf("error %T (%v), want *ComposabilityError", err, err)
			}
		})
	}
}

func TestMergeArgContextExclusive(t *testing.T) {
	parser := newTestParser(t)
	schema := argSchema()

	sites := parseSites(t, parser, `//graphql::arg ctx -Context -Default=nil`)
	_, err := Merge(schema, sites)
	var comp *ComposabilityError
	if !errors.As(err, &comp) {
		t.Fatalf("error %T (%v), want *ComposabilityError", err, err)
	}
	if comp.Option != "Context" {
		t.Errorf("conflict option = %q, want Context", comp.Option)
	}
}

func TestMergeDeprecatedOptionalValue(t *testing.T) {
	parser := newTestParser(t)
	schema := fieldSchema()

	merged, err := Merge(schema, parseSites(t, parser, "//graphql::field -Deprecated"))
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if _, hasValue, present := merged.GetOptValue("Deprecated"); !present || hasValue {
		t.Errorf("bare -Deprecated: present=%v hasValue=%v, want present without value", present, hasValue)
	}

	merged, err = Merge(schema, parseSites(t, parser, `//graphql::field -Deprecated="use uuid instead"`))
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if reason, hasValue, _ := merged.GetOptValue("Deprecated"); !hasValue || reason != "use uuid instead" {
		t.Errorf("reason = %q hasValue=%v", reason, hasValue)
	}
}
