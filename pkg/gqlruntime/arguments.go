package gqlruntime

import "fmt"

// Arguments carries coerced field arguments, keyed by exposed argument name.
// Coercion and validation happen upstream in the executor; generated code
// only reads values out.
type Arguments map[string]any

// Get returns the raw argument value and whether it was present.
func (a Arguments) Get(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}

// Has checks whether an argument was provided.
func (a Arguments) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// MustGet returns the argument narrowed to T. A missing argument or a type
// mismatch panics: the executor validates arguments against the registered
// schema before dispatch, so either condition means the schema and the
// generated code have drifted apart.
func MustGet[T any](a Arguments, name string) T {
	raw, ok := a[name]
	if !ok {
		panic(fmt.Sprintf("internal error: missing argument %q - validation must have failed", name))
	}
	v, ok := raw.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: argument %q has type %T, schema expected %T", name, raw, v))
	}
	return v
}

// GetOr returns the argument narrowed to T, or fallback when it is absent.
// Generated code uses it for arguments declared with a default expression.
func GetOr[T any](a Arguments, name string, fallback T) T {
	raw, ok := a[name]
	if !ok {
		return fallback
	}
	v, ok := raw.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: argument %q has type %T, schema expected %T", name, raw, v))
	}
	return v
}

// GetString returns a string argument with an optional default.
func (a Arguments) GetString(name string, defaultValue ...string) string {
	if v, ok := a[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetBool returns a boolean argument with an optional default.
func (a Arguments) GetBool(name string, defaultValue ...bool) bool {
	if v, ok := a[name]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetInt returns an integer argument with an optional default.
func (a Arguments) GetInt(name string, defaultValue ...int) int {
	if v, ok := a[name]; ok {
		switch n := v.(type) {
		case int:
			return n
		case int32:
			return int(n)
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}
