package logo

// RegisterWorkspacePrimitives installs spec.md §4.10's workspace-
// management primitives: bury/unbury act on both the procedure table
// and the variable table since a single name can refer to either,
// trace/untrace/step/unstep set flags on procedures only, and erase
// removes a procedure definition outright.
func RegisterWorkspacePrimitives(r *PrimitiveRegistry) {
	r.Register("bury", 1, primBury)
	r.Register("unbury", 1, primUnbury)
	r.Register("trace", 1, primTrace)
	r.Register("untrace", 1, primUntrace)
	r.Register("step", 1, primStep)
	r.Register("unstep", 1, primUnstep)
	r.Register("erase", 1, primErase)
	r.Register("er", 1, primErase)
}

// eachName applies fn to every word in v: a bare word names one
// thing, a list names several, matching the way these primitives
// accept either `bury "fd` or `bury [fd bk]`.
func eachName(ev *Evaluator, proc string, v Value, fn func(string)) Result {
	switch v.Kind {
	case ValueWord:
		fn(ev.Mem.WordString(v.Node))
		return OkResult(NoneValue)
	case ValueList:
		n := v.Node
		for !n.IsNil() {
			elem := ev.Mem.Car(n)
			if elem.IsWord() {
				fn(ev.Mem.WordString(elem))
			}
			n = ev.Mem.Cdr(n)
		}
		return OkResult(NoneValue)
	default:
		return ErrorResult(ErrDoesntLikeInput, proc, ev.printValue(v))
	}
}

func primBury(ev *Evaluator, args []Value) Result {
	return eachName(ev, "bury", args[0], func(name string) {
		ev.Procs.Bury(name)
		ev.Vars.Bury(name)
	})
}

func primUnbury(ev *Evaluator, args []Value) Result {
	return eachName(ev, "unbury", args[0], func(name string) {
		ev.Procs.Unbury(name)
		ev.Vars.Unbury(name)
	})
}

func primTrace(ev *Evaluator, args []Value) Result {
	return eachName(ev, "trace", args[0], func(name string) { ev.Procs.Trace(name) })
}

func primUntrace(ev *Evaluator, args []Value) Result {
	return eachName(ev, "untrace", args[0], func(name string) { ev.Procs.Untrace(name) })
}

func primStep(ev *Evaluator, args []Value) Result {
	return eachName(ev, "step", args[0], func(name string) { ev.Procs.Step(name) })
}

func primUnstep(ev *Evaluator, args []Value) Result {
	return eachName(ev, "unstep", args[0], func(name string) { ev.Procs.Unstep(name) })
}

func primErase(ev *Evaluator, args []Value) Result {
	return eachName(ev, "erase", args[0], func(name string) { ev.Procs.Erase(name) })
}
