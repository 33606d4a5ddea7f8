package logo

// PrimitiveFunc is the signature every built-in procedure implements:
// given the evaluator (for access to every component store) and its
// already-evaluated arguments, produce a Result: StatusOk carrying
// the computed value for an operation, StatusOk with no value for a
// command, or an error/throw/control status (resultAsValue accepts
// both this StatusOk form and a user procedure's StatusOutput).
type PrimitiveFunc func(ev *Evaluator, args []Value) Result

// PrimitiveEntry is one built-in's registration: its default arity
// (how many expressions dispatchCall reads for it outside of a
// `(...)` form) and its implementation.
type PrimitiveEntry struct {
	Name        string
	DefaultArgs int
	Fn          PrimitiveFunc
}

// PrimitiveRegistry is the fixed, case-insensitive table of built-ins,
// populated once at interpreter construction by NewCorePrimitiveRegistry
// (spec.md §4.10).
type PrimitiveRegistry struct {
	byName map[string]PrimitiveEntry
	order  []string
}

func NewPrimitiveRegistry() *PrimitiveRegistry {
	return &PrimitiveRegistry{byName: make(map[string]PrimitiveEntry, 128)}
}

func foldKey(name string) string {
	b := []byte(name)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Register installs a primitive (or an alias of one, if the caller
// passes the same Fn under a different name, e.g. `bf` for
// `butfirst`).
func (r *PrimitiveRegistry) Register(name string, defaultArgs int, fn PrimitiveFunc) {
	key := foldKey(name)
	if _, exists := r.byName[key]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[key] = PrimitiveEntry{Name: name, DefaultArgs: defaultArgs, Fn: fn}
}

// Find looks up a primitive by case-insensitive name.
func (r *PrimitiveRegistry) Find(name string) (PrimitiveEntry, bool) {
	e, ok := r.byName[foldKey(name)]
	return e, ok
}

// Exists reports whether name is a registered primitive (used to
// refuse `to name ... end` redefinitions).
func (r *PrimitiveRegistry) Exists(name string) bool {
	_, ok := r.byName[foldKey(name)]
	return ok
}

// Names returns every registered primitive name in registration order.
func (r *PrimitiveRegistry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// NewCorePrimitiveRegistry builds a registry with every primitive
// family spec.md §4.10 enumerates.
func NewCorePrimitiveRegistry() *PrimitiveRegistry {
	r := NewPrimitiveRegistry()
	RegisterArithmeticPrimitives(r)
	RegisterListPrimitives(r)
	RegisterControlPrimitives(r)
	RegisterVariablePrimitives(r)
	RegisterWorkspacePrimitives(r)
	RegisterPropertyPrimitives(r)
	RegisterIOPrimitives(r)
	return r
}
