package annotations

import "fmt"

// SchemaRegistry maps annotation kinds to their option schemas.
type SchemaRegistry struct {
	schemas map[Kind]*Schema
}

// NewSchemaRegistry creates an empty schema registry.
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{schemas: make(map[Kind]*Schema)}
}

// Register installs a schema. Registering the same kind twice is an error.
func (r *SchemaRegistry) Register(s *Schema) error {
	if s == nil {
		return fmt.Errorf("cannot register nil schema")
	}
	if _, exists := r.schemas[s.Kind]; exists {
		return fmt.Errorf("schema for annotation kind %q already registered", s.Kind)
	}
	r.schemas[s.Kind] = s
	return nil
}

// Schema returns the schema for a kind.
func (r *SchemaRegistry) Schema(k Kind) (*Schema, error) {
	s, ok := r.schemas[k]
	if !ok {
		return nil, fmt.Errorf("no schema registered for annotation kind %q", k)
	}
	return s, nil
}

// IsRegistered checks whether a kind has a schema.
func (r *SchemaRegistry) IsRegistered(k Kind) bool {
	_, ok := r.schemas[k]
	return ok
}
