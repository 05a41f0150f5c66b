package annotations

// Merging of multiple annotation sites on one declaration. The fold is pure
// and associative up to error reporting: an option set at two sites is a
// duplicate no matter which site is folded first.

// ListEntry is one element of a merged set-valued option.
type ListEntry struct {
	Value string
	Loc   SourceLocation
}

// PairEntry is one element of a merged map-valued option.
type PairEntry struct {
	Key   string
	Value string
	Loc   SourceLocation
}

// MergedAnnotation is the result of folding every annotation site of one
// declaration into a single record.
type MergedAnnotation struct {
	Kind   Kind
	Target string

	// Options holds flag- and value-options, each set at most once.
	Options map[string]Option
	// Lists holds set-valued options; re-listing an entry is a duplicate
	// error, not a silent dedup.
	Lists map[string][]ListEntry
	// Pairs holds map-valued options keyed by entry key.
	Pairs map[string][]PairEntry

	// Sites are the source locations folded in, in input order.
	Sites []SourceLocation
}

// Merge folds parsed annotation sites (all of the same kind, on the same
// declaration) into one MergedAnnotation, enforcing the schema's duplicate
// and composability rules.
func Merge(schema *Schema, sites []*ParsedAnnotation) (*MergedAnnotation, error) {
	merged := &MergedAnnotation{
		Kind:    schema.Kind,
		Options: make(map[string]Option),
		Lists:   make(map[string][]ListEntry),
		Pairs:   make(map[string][]PairEntry),
	}

	for _, site := range sites {
		if site.Kind != schema.Kind {
			return nil, &SyntaxError{
				Msg: "cannot merge graphql::" + site.Kind.String() + " site into graphql::" + schema.Kind.String(),
				Loc: site.Location,
			}
		}
		if merged.Target == "" {
			merged.Target = site.Target
		}
		merged.Sites = append(merged.Sites, site.Location)

		for _, opt := range site.Options {
			if err := merged.fold(schema, opt); err != nil {
				return nil, err
			}
		}
	}

	if err := merged.checkComposability(schema); err != nil {
		return nil, err
	}
	return merged, nil
}

func (m *MergedAnnotation) fold(schema *Schema, opt Option) error {
	switch schema.Options[opt.Key].Type {
	case ListOption:
		for _, entry := range SplitList(opt.Raw) {
			for _, prior := range m.Lists[opt.Key] {
				if prior.Value == entry {
					return &DuplicateOptionError{
						Kind: m.Kind, Option: opt.Key, Entry: entry,
						Loc: opt.Loc, Prior: prior.Loc,
					}
				}
			}
			m.Lists[opt.Key] = append(m.Lists[opt.Key], ListEntry{Value: entry, Loc: opt.Loc})
		}
	case PairsOption:
		pairs, err := SplitPairs(opt.Raw)
		if err != nil {
			return &ValueError{Kind: m.Kind, Option: opt.Key, Msg: err.Error(), Loc: opt.Loc}
		}
		for _, pair := range pairs {
			for _, prior := range m.Pairs[opt.Key] {
				if prior.Key == pair[0] {
					return &DuplicateOptionError{
						Kind: m.Kind, Option: opt.Key, Entry: pair[0],
						Loc: opt.Loc, Prior: prior.Loc,
					}
				}
			}
			m.Pairs[opt.Key] = append(m.Pairs[opt.Key], PairEntry{Key: pair[0], Value: pair[1], Loc: opt.Loc})
		}
	default:
		if prior, exists := m.Options[opt.Key]; exists {
			return &DuplicateOptionError{
				Kind: m.Kind, Option: opt.Key,
				Loc: opt.Loc, Prior: prior.Loc,
			}
		}
		m.Options[opt.Key] = opt
	}
	return nil
}

func (m *MergedAnnotation) checkComposability(schema *Schema) error {
	for _, excl := range schema.Exclusive {
		opt, present := m.Options[excl]
		if !present {
			continue
		}
		for key := range m.Options {
			if key != excl {
				return &ComposabilityError{Kind: m.Kind, Option: excl, Other: key, Loc: opt.Loc}
			}
		}
		for key := range m.Lists {
			return &ComposabilityError{Kind: m.Kind, Option: excl, Other: key, Loc: opt.Loc}
		}
		for key := range m.Pairs {
			return &ComposabilityError{Kind: m.Kind, Option: excl, Other: key, Loc: opt.Loc}
		}
	}

	for _, pair := range schema.MutuallyExclusive {
		first, firstPresent := m.Options[pair[0]]
		_, secondPresent := m.Options[pair[1]]
		if firstPresent && secondPresent {
			return &ComposabilityError{Kind: m.Kind, Option: pair[0], Other: pair[1], Loc: first.Loc}
		}
	}
	return nil
}

// GetString returns a value-option's string, if set.
func (m *MergedAnnotation) GetString(key string) (string, bool) {
	opt, ok := m.Options[key]
	if !ok || !opt.HasValue {
		return "", false
	}
	return opt.Raw, true
}

// HasFlag reports whether a flag option is present.
func (m *MergedAnnotation) HasFlag(key string) bool {
	_, ok := m.Options[key]
	return ok
}

// GetOptValue returns an optional-value option: present reports whether the
// option appeared at all, hasValue whether it carried a value.
func (m *MergedAnnotation) GetOptValue(key string) (value string, hasValue, present bool) {
	opt, ok := m.Options[key]
	if !ok {
		return "", false, false
	}
	return opt.Raw, opt.HasValue, true
}

// ListValues returns the merged entries of a set-valued option, in listing
// order.
func (m *MergedAnnotation) ListValues(key string) []string {
	entries := m.Lists[key]
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}
