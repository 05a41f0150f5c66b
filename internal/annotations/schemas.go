package annotations

// Builtin option schemas for the four annotation kinds. The merger enforces
// "set at most once" for every option across all annotation sites of one
// declaration; set/map-valued options additionally reject re-listed entries.

func interfaceSchema() *Schema {
	return &Schema{
		Kind: InterfaceKind,
		Options: map[string]OptionSpec{
			"Name":         {Type: StringOption, Description: "Exposed GraphQL interface name (defaults to the Go type name)"},
			"Description":  {Type: StringOption, Description: "Interface description (defaults to the doc comment)"},
			"Context":      {Type: IdentOption, Description: "Context type injected into resolution calls"},
			"Scalar":       {Type: IdentOption, Description: "Concrete scalar value type (generic when absent)"},
			"Implementers": {Type: ListOption, Description: "Concrete types satisfying the interface"},
			"Enum":         {Type: IdentOption, Description: "Name of the generated tagged-union value type"},
			"Dyn":          {Type: IdentOption, Description: "Name of the generated dynamic-dispatch handle type"},
			"Async":        {Type: FlagOption, Description: "Treat every field as asynchronous by default"},
			"On":           {Type: PairsOption, Description: "External downcast functions, as Type:funcPath pairs"},
		},
		MutuallyExclusive: [][2]string{{"Dyn", "Enum"}},
	}
}

func implementsSchema() *Schema {
	return &Schema{
		Kind:        ImplementsKind,
		TakesTarget: true,
		Options: map[string]OptionSpec{
			"Scalar": {Type: IdentOption, Description: "Scalar value type override for this implementer"},
			"Async":  {Type: FlagOption, Description: "Mark this implementer's resolution asynchronous"},
			"Dyn":    {Type: FlagOption, Description: "Opt this implementer into the dynamic-dispatch handle"},
		},
	}
}

func fieldSchema() *Schema {
	return &Schema{
		Kind: FieldKind,
		Options: map[string]OptionSpec{
			"Name":        {Type: StringOption, Description: "Exposed field name (defaults to the lowerCamel method name)"},
			"Description": {Type: StringOption, Description: "Field description (defaults to the method doc comment)"},
			"Deprecated":  {Type: OptValueOption, Description: "Deprecation marker with optional reason"},
			"Async":       {Type: FlagOption, Description: "Mark this field's resolution asynchronous"},
			"Ignore":      {Type: FlagOption, Description: "Exclude this method from field generation"},
			"Downcast":    {Type: FlagOption, Description: "Use this method as an implementer downcast, not a field"},
		},
		Exclusive: []string{"Ignore", "Downcast"},
	}
}

func argSchema() *Schema {
	return &Schema{
		Kind:        ArgKind,
		TakesTarget: true,
		Options: map[string]OptionSpec{
			"Name":        {Type: StringOption, Description: "Exposed argument name (defaults to the parameter name)"},
			"Description": {Type: StringOption, Description: "Argument description"},
			"Default":     {Type: OptValueOption, Description: "Default value expression (zero value when bare)"},
			"Context":     {Type: FlagOption, Description: "Inject the resolution context into this parameter"},
			"Executor":    {Type: FlagOption, Description: "Inject the executor handle into this parameter"},
		},
		Exclusive: []string{"Context", "Executor"},
	}
}

// RegisterBuiltinSchemas installs the four annotation kinds into a registry.
func RegisterBuiltinSchemas(r *SchemaRegistry) error {
	for _, s := range []*Schema{
		interfaceSchema(),
		implementsSchema(),
		fieldSchema(),
		argSchema(),
	} {
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}
