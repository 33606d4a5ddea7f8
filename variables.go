package logo

import "strings"

// Default capacity ceilings per spec.md §4.5 / §6.
const (
	DefaultMaxGlobalVariables = 128
	DefaultMaxLocalVariables  = 64
	DefaultMaxScopeDepth      = 32
)

// binding is a single {name, value, has_value, buried} slot.
type binding struct {
	name     string
	value    Value
	hasValue bool
	buried   bool
}

// scope is one nested local-variable frame in the scope stack.
type scope struct {
	bindings []binding
}

// Variables is the global table plus a stack of nested local scopes,
// case-insensitive throughout, with fixed capacity ceilings and a
// shared TEST cell (spec.md §4.5 and §4.7).
type Variables struct {
	globals []binding
	scopes  []scope

	maxGlobals int
	maxLocals  int
	maxDepth   int

	testValid bool
	testValue bool
}

// NewVariables creates a Variables store with the given capacity
// ceilings.
func NewVariables(maxGlobals, maxLocals, maxDepth int) *Variables {
	return &Variables{
		maxGlobals: maxGlobals,
		maxLocals:  maxLocals,
		maxDepth:   maxDepth,
	}
}

func sameName(a, b string) bool { return strings.EqualFold(a, b) }

func findBinding(bindings []binding, name string) int {
	for i := range bindings {
		if sameName(bindings[i].name, name) {
			return i
		}
	}
	return -1
}

// Get searches innermost scope to outermost, then globals, returning
// the value and whether it was found.
func (v *Variables) Get(name string) (Value, bool) {
	for i := len(v.scopes) - 1; i >= 0; i-- {
		if idx := findBinding(v.scopes[i].bindings, name); idx >= 0 {
			b := v.scopes[i].bindings[idx]
			if b.hasValue {
				return b.value, true
			}
			return NoneValue, false
		}
	}
	if idx := findBinding(v.globals, name); idx >= 0 && v.globals[idx].hasValue {
		return v.globals[idx].value, true
	}
	return NoneValue, false
}

// Exists reports whether name is bound anywhere in the search chain.
func (v *Variables) Exists(name string) bool {
	_, ok := v.Get(name)
	return ok
}

// Set implements write-through assignment: innermost scope to
// outermost is searched for an existing binding of name; if none is
// found anywhere, a new global binding is created. set never creates
// a local.
func (v *Variables) Set(name string, val Value) bool {
	for i := len(v.scopes) - 1; i >= 0; i-- {
		if idx := findBinding(v.scopes[i].bindings, name); idx >= 0 {
			v.scopes[i].bindings[idx].value = val
			v.scopes[i].bindings[idx].hasValue = true
			return true
		}
	}
	if idx := findBinding(v.globals, name); idx >= 0 {
		v.globals[idx].value = val
		v.globals[idx].hasValue = true
		return true
	}
	if len(v.globals) >= v.maxGlobals {
		return false
	}
	v.globals = append(v.globals, binding{name: name, value: val, hasValue: true})
	return true
}

// SetLocal shadows: it assigns into the current (innermost) scope,
// declaring the binding there if it doesn't already exist in that
// scope.
func (v *Variables) SetLocal(name string, val Value) bool {
	if len(v.scopes) == 0 {
		return false
	}
	cur := &v.scopes[len(v.scopes)-1]
	idx := findBinding(cur.bindings, name)
	if idx < 0 {
		if len(cur.bindings) >= v.maxLocals {
			return false
		}
		cur.bindings = append(cur.bindings, binding{name: name})
		idx = len(cur.bindings) - 1
	}
	cur.bindings[idx].value = val
	cur.bindings[idx].hasValue = true
	return true
}

// DeclareLocal introduces name as a local in the current scope with
// no value yet (used by `local "x`), returning false if there is no
// current scope or capacity is exhausted. A binding that already
// exists there is left as it is and reported as success.
func (v *Variables) DeclareLocal(name string) bool {
	if len(v.scopes) == 0 {
		return false
	}
	cur := &v.scopes[len(v.scopes)-1]
	if idx := findBinding(cur.bindings, name); idx >= 0 {
		return true
	}
	if len(cur.bindings) >= v.maxLocals {
		return false
	}
	cur.bindings = append(cur.bindings, binding{name: name})
	return true
}

// PushScope pushes a new, empty local scope. Returns false if
// MAX_SCOPE_DEPTH would be exceeded.
func (v *Variables) PushScope() bool {
	if len(v.scopes) >= v.maxDepth {
		return false
	}
	v.scopes = append(v.scopes, scope{})
	return true
}

// PopScope pops the innermost local scope, discarding its bindings.
func (v *Variables) PopScope() {
	if len(v.scopes) == 0 {
		return
	}
	v.scopes = v.scopes[:len(v.scopes)-1]
}

// ScopeDepth reports the current nested-scope depth.
func (v *Variables) ScopeDepth() int { return len(v.scopes) }

// Erase removes a single binding wherever it is found in the search
// chain.
func (v *Variables) Erase(name string) {
	for i := len(v.scopes) - 1; i >= 0; i-- {
		if idx := findBinding(v.scopes[i].bindings, name); idx >= 0 {
			v.scopes[i].bindings = append(v.scopes[i].bindings[:idx], v.scopes[i].bindings[idx+1:]...)
			return
		}
	}
	if idx := findBinding(v.globals, name); idx >= 0 {
		v.globals = append(v.globals[:idx], v.globals[idx+1:]...)
	}
}

// EraseAll clears every global binding; no primitive calls it.
func (v *Variables) EraseAll() {
	v.globals = v.globals[:0]
}

// Bury / Unbury hide/reveal a global name from workspace listings
// without affecting whether it can be read or called.
func (v *Variables) Bury(name string) {
	if idx := findBinding(v.globals, name); idx >= 0 {
		v.globals[idx].buried = true
	}
}

func (v *Variables) Unbury(name string) {
	if idx := findBinding(v.globals, name); idx >= 0 {
		v.globals[idx].buried = false
	}
}

// GlobalCount / GlobalAt iterate every global, buried ones included;
// GlobalAt reports each one's buried flag for the caller to filter.
// No listing or workspace-save primitive exists.
func (v *Variables) GlobalCount() int { return len(v.globals) }

func (v *Variables) GlobalAt(i int) (name string, val Value, buried bool, ok bool) {
	if i < 0 || i >= len(v.globals) {
		return "", NoneValue, false, false
	}
	b := v.globals[i]
	return b.name, b.value, b.buried, true
}

// SetTest / GetTest / ResetTest implement the shared TEST cell of
// spec.md §4.5. Frames (§4.7) keep their own per-call TEST state in
// FrameArena.SetTest/GetTest; nothing in the package consults this
// cell when a frame has none, and no primitive reads or writes either.
func (v *Variables) SetTest(val bool) {
	v.testValid = true
	v.testValue = val
}

func (v *Variables) GetTest() (bool, bool) {
	return v.testValue, v.testValid
}

func (v *Variables) ResetTest() {
	v.testValid = false
}

// GCRootValues returns every value currently reachable from this
// store, for the GC mark pass.
func (v *Variables) GCRootValues() []Value {
	var out []Value
	for _, b := range v.globals {
		if b.hasValue {
			out = append(out, b.value)
		}
	}
	for _, s := range v.scopes {
		for _, b := range s.bindings {
			if b.hasValue {
				out = append(out, b.value)
			}
		}
	}
	return out
}
