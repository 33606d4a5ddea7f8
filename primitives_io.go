package logo

// RegisterIOPrimitives installs spec.md §4.10's character I/O
// primitives, the only capability the interpreter core delegates to
// Host (spec.md §5's explicit Non-goals exclude any richer device
// surface).
func RegisterIOPrimitives(r *PrimitiveRegistry) {
	r.Register("print", 1, primPrint)
	r.Register("pr", 1, primPrint)
	r.Register("type", 1, primType)
	r.Register("show", 1, primShow)
	r.Register("readword", 0, primReadword)
	r.Register("rw", 0, primReadword)
	r.Register("readlist", 0, primReadlist)
	r.Register("rl", 0, primReadlist)
	r.Register("readchar", 0, primReadchar)
	r.Register("rc", 0, primReadchar)
}

// printableText renders v the way `print` does: a list's outer
// brackets are stripped (its members printed space-separated), since
// `print` exists to produce readable transcript output rather than
// re-parsable source, unlike `show`.
func printableText(ev *Evaluator, v Value) string {
	if v.Kind == ValueList {
		s := ev.printList(v.Node)
		return s[1 : len(s)-1]
	}
	return ev.printValue(v)
}

func primPrint(ev *Evaluator, args []Value) Result {
	return HostErrorResult("print", ev.Host.WriteString(printableText(ev, args[0])+"\n"))
}

func primType(ev *Evaluator, args []Value) Result {
	return HostErrorResult("type", ev.Host.WriteString(printableText(ev, args[0])))
}

func primShow(ev *Evaluator, args []Value) Result {
	return HostErrorResult("show", ev.Host.WriteString(ev.printValue(args[0])+"\n"))
}

func primReadword(ev *Evaluator, args []Value) Result {
	line, ok, err := ev.Host.ReadLine()
	if err != nil {
		return HostErrorResult("readword", err)
	}
	if !ok {
		return OkResult(WordValue(ev.Mem.AtomString("")))
	}
	return OkResult(WordValue(ev.Mem.AtomString(line)))
}

func primReadlist(ev *Evaluator, args []Value) Result {
	line, ok, err := ev.Host.ReadLine()
	if err != nil {
		return HostErrorResult("readlist", err)
	}
	if !ok {
		return OkResult(ListValue(Nil))
	}
	return OkResult(ListValue(ParseWordsLine(ev.Mem, []byte(line))))
}

func primReadchar(ev *Evaluator, args []Value) Result {
	c, ok, err := ev.Host.ReadChar()
	if err != nil {
		return HostErrorResult("readchar", err)
	}
	if !ok {
		return OkResult(WordValue(ev.Mem.AtomString("")))
	}
	return OkResult(WordValue(ev.Mem.AtomString(string(rune(c)))))
}
