package logo

// RegisterPropertyPrimitives installs spec.md §4.10's property-list
// primitives over the Properties store (C6): each name can carry an
// arbitrary set of property/value pairs independent of its variable
// or procedure bindings.
func RegisterPropertyPrimitives(r *PrimitiveRegistry) {
	r.Register("pprop", 3, primPprop)
	r.Register("gprop", 2, primGprop)
	r.Register("remprop", 2, primRemprop)
	r.Register("plist", 1, primPlist)
}

func primPprop(ev *Evaluator, args []Value) Result {
	name, res := wordText(ev, "pprop", args[0])
	if res.IsErrorLike() {
		return res
	}
	prop, res := wordText(ev, "pprop", args[1])
	if res.IsErrorLike() {
		return res
	}
	ev.Props.Put(name, prop, args[2])
	return OkResult(NoneValue)
}

func primGprop(ev *Evaluator, args []Value) Result {
	name, res := wordText(ev, "gprop", args[0])
	if res.IsErrorLike() {
		return res
	}
	prop, res := wordText(ev, "gprop", args[1])
	if res.IsErrorLike() {
		return res
	}
	v, ok := ev.Props.Get(name, prop)
	if !ok {
		return OkResult(WordValue(ev.Mem.AtomString("")))
	}
	return OkResult(v)
}

func primRemprop(ev *Evaluator, args []Value) Result {
	name, res := wordText(ev, "remprop", args[0])
	if res.IsErrorLike() {
		return res
	}
	prop, res := wordText(ev, "remprop", args[1])
	if res.IsErrorLike() {
		return res
	}
	ev.Props.Remove(name, prop)
	return OkResult(NoneValue)
}

func primPlist(ev *Evaluator, args []Value) Result {
	name, res := wordText(ev, "plist", args[0])
	if res.IsErrorLike() {
		return res
	}
	entries := ev.Props.GetList(name)
	var elems []Node
	for _, e := range entries {
		elems = append(elems, ev.Mem.AtomString(e.prop))
		elems = append(elems, nodeForValue(ev, e.value))
	}
	return OkResult(ListValue(buildListFromSlice(ev.Mem, elems)))
}
