package logo

// RegisterVariablePrimitives installs spec.md §4.10's variable
// access primitives layered over the Variables store (globals plus
// nested local scopes) and the current frame's parameter bindings.
func RegisterVariablePrimitives(r *PrimitiveRegistry) {
	r.Register("make", 2, primMake)
	r.Register("thing", 1, primThing)
	r.Register("local", 1, primLocal)
	r.Register("global", 1, primGlobal)
}

func primMake(ev *Evaluator, args []Value) Result {
	name, res := wordText(ev, "make", args[0])
	if res.IsErrorLike() {
		return res
	}
	if !ev.Frames.Empty() {
		if _, slot, ok := ev.Frames.FindBindingInChain(name); ok {
			ev.Frames.SetBindingValue(slot, args[1])
			return OkResult(NoneValue)
		}
	}
	if !ev.Vars.Set(name, args[1]) {
		return ErrorResult(ErrOutOfSpace, "make", name)
	}
	return OkResult(NoneValue)
}

func primThing(ev *Evaluator, args []Value) Result {
	name, res := wordText(ev, "thing", args[0])
	if res.IsErrorLike() {
		return res
	}
	v, ok := ev.lookupVariable(name)
	if !ok {
		return ErrorResult(ErrNoValue, name, "")
	}
	return OkResult(v)
}

func primLocal(ev *Evaluator, args []Value) Result {
	name, res := wordText(ev, "local", args[0])
	if res.IsErrorLike() {
		return res
	}
	if !ev.Vars.DeclareLocal(name) {
		return ErrorResult(ErrAtToplevel, "local", name)
	}
	return OkResult(NoneValue)
}

func primGlobal(ev *Evaluator, args []Value) Result {
	name, res := wordText(ev, "global", args[0])
	if res.IsErrorLike() {
		return res
	}
	if !ev.Vars.Exists(name) {
		ev.Vars.Set(name, NoneValue)
	}
	return OkResult(NoneValue)
}
