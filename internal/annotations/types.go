package annotations

import "fmt"

// Kind identifies which declaration site an annotation applies to.
type Kind int

const (
	InterfaceKind Kind = iota
	ImplementsKind
	FieldKind
	ArgKind
)

// String returns the DSL keyword for the kind.
func (k Kind) String() string {
	switch k {
	case InterfaceKind:
		return "interface"
	case ImplementsKind:
		return "implements"
	case FieldKind:
		return "field"
	case ArgKind:
		return "arg"
	default:
		return "unknown"
	}
}

// ParseKind converts a DSL keyword to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "interface":
		return InterfaceKind, nil
	case "implements":
		return ImplementsKind, nil
	case "field":
		return FieldKind, nil
	case "arg":
		return ArgKind, nil
	default:
		return 0, fmt.Errorf("unknown annotation kind: %s", s)
	}
}

// SourceLocation is where an annotation (or one of its options) appears.
type SourceLocation struct {
	File   string // file path
	Line   int    // line number (1-based)
	Column int    // column number (1-based)
}

func (s SourceLocation) String() string {
	if s.File == "" {
		return "unknown location"
	}
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// Option is one `-Key` or `-Key=Value` occurrence inside an annotation.
type Option struct {
	Key      string
	Raw      string // value with quotes stripped; empty for bare flags
	HasValue bool
	Loc      SourceLocation
}

// ParsedAnnotation is a single annotation site, before merging.
type ParsedAnnotation struct {
	Kind       Kind
	Target     string // positional target (interface name for implements, param name for arg)
	Options    []Option
	Location   SourceLocation
	RawComment string
}

// findOption returns the first occurrence of key, if any.
func (p *ParsedAnnotation) findOption(key string) (Option, bool) {
	for _, opt := range p.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return Option{}, false
}

// OptionType constrains what shape of value an option accepts.
type OptionType int

const (
	FlagOption   OptionType = iota // bare `-Key`
	StringOption                   // `-Key=value` or `-Key="quoted value"`
	IdentOption                    // `-Key=Some.Type`
	ListOption                     // `-Key=A,B,C` (set semantics under merge)
	PairsOption                    // `-Key=Type:func,Type:func` (map semantics under merge)
	OptValueOption                 // `-Key` or `-Key=value` (Deprecated, Default)
)

// OptionSpec describes one option an annotation kind accepts.
type OptionSpec struct {
	Type        OptionType
	Description string
}

// Schema describes the option surface of one annotation kind.
type Schema struct {
	Kind        Kind
	TakesTarget bool // consumes one positional token
	Options     map[string]OptionSpec

	// Exclusive lists option keys that cannot be combined with any other
	// option on the fully merged annotation.
	Exclusive []string

	// MutuallyExclusive lists option pairs that cannot both be present on
	// the fully merged annotation.
	MutuallyExclusive [][2]string
}
