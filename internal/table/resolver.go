package table

// Resolver supplies a value for a key that is missing from a table.
type Resolver interface {
	Resolve(t *Table, key any) (any, error)
}

// Origin is implemented by resolvers that were built from a user-visible
// value (a default value, a delegate table or a function) and can report it.
type Origin interface {
	Origin() any
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(t *Table, key any) (any, error)

// Resolve calls f(t, key).
func (f ResolverFunc) Resolve(t *Table, key any) (any, error) {
	return f(t, key)
}

type defaultResolver struct {
	value any
}

// Default returns a resolver answering every miss with v.
func Default(v any) Resolver {
	return defaultResolver{value: v}
}

func (d defaultResolver) Resolve(*Table, any) (any, error) { return d.value, nil }

func (d defaultResolver) Origin() any { return d.value }

type delegateResolver struct {
	source *Table
}

// Delegate returns a resolver that reads missing keys from source. The read
// is raw: the source's own fallback is not consulted.
func Delegate(source *Table) Resolver {
	return delegateResolver{source: source}
}

func (d delegateResolver) Resolve(_ *Table, key any) (any, error) {
	return d.source.RawGet(key), nil
}

func (d delegateResolver) Origin() any { return d.source }
