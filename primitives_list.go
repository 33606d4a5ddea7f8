package logo

// RegisterListPrimitives installs spec.md §4.10's word/list
// operations: the selectors, constructors and predicates every Logo
// program relies on for non-numeric data.
func RegisterListPrimitives(r *PrimitiveRegistry) {
	r.Register("first", 1, primFirst)
	r.Register("last", 1, primLast)
	r.Register("butfirst", 1, primButfirst)
	r.Register("bf", 1, primButfirst)
	r.Register("butlast", 1, primButlast)
	r.Register("bl", 1, primButlast)
	r.Register("fput", 2, primFput)
	r.Register("lput", 2, primLput)
	r.Register("word", 2, primWord)
	r.Register("sentence", 2, primSentence)
	r.Register("se", 2, primSentence)
	r.Register("list", 2, primList)
	r.Register("count", 1, primCount)
	r.Register("item", 2, primItem)
	r.Register("emptyp", 1, primEmptyp)
	r.Register("empty?", 1, primEmptyp)
	r.Register("wordp", 1, primWordp)
	r.Register("word?", 1, primWordp)
	r.Register("listp", 1, primListp)
	r.Register("list?", 1, primListp)
	r.Register("numberp", 1, primNumberp)
	r.Register("number?", 1, primNumberp)
	r.Register("memberp", 2, primMemberp)
	r.Register("member?", 2, primMemberp)
}

func wordText(ev *Evaluator, proc string, v Value) (string, Result) {
	if v.Kind != ValueWord {
		return "", ErrorResult(ErrDoesntLikeInput, proc, ev.printValue(v))
	}
	return ev.Mem.WordString(v.Node), OkResult(NoneValue)
}

func primFirst(ev *Evaluator, args []Value) Result {
	v := args[0]
	switch v.Kind {
	case ValueWord:
		s := ev.Mem.WordString(v.Node)
		if len(s) == 0 {
			return ErrorResult(ErrDoesntLikeInput, "first", ev.printValue(v))
		}
		return OkResult(WordValue(ev.Mem.AtomString(s[:1])))
	case ValueList:
		if v.Node.IsNil() {
			return ErrorResult(ErrDoesntLikeInput, "first", ev.printValue(v))
		}
		elem := ev.Mem.Car(v.Node)
		return OkResult(elemValue(elem))
	default:
		return ErrorResult(ErrDoesntLikeInput, "first", ev.printValue(v))
	}
}

func primLast(ev *Evaluator, args []Value) Result {
	v := args[0]
	switch v.Kind {
	case ValueWord:
		s := ev.Mem.WordString(v.Node)
		if len(s) == 0 {
			return ErrorResult(ErrDoesntLikeInput, "last", ev.printValue(v))
		}
		return OkResult(WordValue(ev.Mem.AtomString(s[len(s)-1:])))
	case ValueList:
		n := v.Node
		if n.IsNil() {
			return ErrorResult(ErrDoesntLikeInput, "last", ev.printValue(v))
		}
		var elem Node
		for !n.IsNil() {
			elem = ev.Mem.Car(n)
			n = ev.Mem.Cdr(n)
		}
		return OkResult(elemValue(elem))
	default:
		return ErrorResult(ErrDoesntLikeInput, "last", ev.printValue(v))
	}
}

func primButfirst(ev *Evaluator, args []Value) Result {
	v := args[0]
	switch v.Kind {
	case ValueWord:
		s := ev.Mem.WordString(v.Node)
		if len(s) == 0 {
			return ErrorResult(ErrDoesntLikeInput, "butfirst", ev.printValue(v))
		}
		return OkResult(WordValue(ev.Mem.AtomString(s[1:])))
	case ValueList:
		if v.Node.IsNil() {
			return ErrorResult(ErrDoesntLikeInput, "butfirst", ev.printValue(v))
		}
		return OkResult(ListValue(ev.Mem.Cdr(v.Node)))
	default:
		return ErrorResult(ErrDoesntLikeInput, "butfirst", ev.printValue(v))
	}
}

func primButlast(ev *Evaluator, args []Value) Result {
	v := args[0]
	switch v.Kind {
	case ValueWord:
		s := ev.Mem.WordString(v.Node)
		if len(s) == 0 {
			return ErrorResult(ErrDoesntLikeInput, "butlast", ev.printValue(v))
		}
		return OkResult(WordValue(ev.Mem.AtomString(s[:len(s)-1])))
	case ValueList:
		if v.Node.IsNil() {
			return ErrorResult(ErrDoesntLikeInput, "butlast", ev.printValue(v))
		}
		var elems []Node
		n := v.Node
		for {
			rest := ev.Mem.Cdr(n)
			if rest.IsNil() {
				break
			}
			elems = append(elems, ev.Mem.Car(n))
			n = rest
		}
		return OkResult(ListValue(buildListFromSlice(ev.Mem, elems)))
	default:
		return ErrorResult(ErrDoesntLikeInput, "butlast", ev.printValue(v))
	}
}

func elemValue(n Node) Value {
	if n.IsList() {
		return ListValue(n)
	}
	if n.IsNewline() {
		return NewlineValue
	}
	return WordValue(n)
}

func primFput(ev *Evaluator, args []Value) Result {
	thing, lst := args[0], args[1]
	if lst.Kind != ValueList {
		return ErrorResult(ErrDoesntLikeInput, "fput", ev.printValue(lst))
	}
	node := nodeForValue(ev, thing)
	return OkResult(ListValue(ev.Mem.Cons(node, lst.Node)))
}

func primLput(ev *Evaluator, args []Value) Result {
	thing, lst := args[0], args[1]
	if lst.Kind != ValueList {
		return ErrorResult(ErrDoesntLikeInput, "lput", ev.printValue(lst))
	}
	var elems []Node
	n := lst.Node
	for !n.IsNil() {
		elems = append(elems, ev.Mem.Car(n))
		n = ev.Mem.Cdr(n)
	}
	elems = append(elems, nodeForValue(ev, thing))
	return OkResult(ListValue(buildListFromSlice(ev.Mem, elems)))
}

// nodeForValue converts a Value into the Node a list should hold for
// it: words and lists already carry one, a number is printed and
// interned the way typing it as a literal word would intern it.
func nodeForValue(ev *Evaluator, v Value) Node {
	switch v.Kind {
	case ValueWord, ValueList:
		return v.Node
	case ValueNumber:
		return ev.Mem.AtomString(FormatNumber(v.Number))
	case ValueNewline:
		return Newline
	default:
		return ev.Mem.AtomString("")
	}
}

func primWord(ev *Evaluator, args []Value) Result {
	a, r := wordText(ev, "word", args[0])
	if r.IsErrorLike() {
		return r
	}
	b, r := wordText(ev, "word", args[1])
	if r.IsErrorLike() {
		return r
	}
	return OkResult(WordValue(ev.Mem.AtomString(a + b)))
}

func primSentence(ev *Evaluator, args []Value) Result {
	var elems []Node
	for _, v := range args {
		switch v.Kind {
		case ValueList:
			n := v.Node
			for !n.IsNil() {
				elems = append(elems, ev.Mem.Car(n))
				n = ev.Mem.Cdr(n)
			}
		default:
			elems = append(elems, nodeForValue(ev, v))
		}
	}
	return OkResult(ListValue(buildListFromSlice(ev.Mem, elems)))
}

func primList(ev *Evaluator, args []Value) Result {
	elems := make([]Node, len(args))
	for i, v := range args {
		elems[i] = nodeForValue(ev, v)
	}
	return OkResult(ListValue(buildListFromSlice(ev.Mem, elems)))
}

func primCount(ev *Evaluator, args []Value) Result {
	v := args[0]
	switch v.Kind {
	case ValueWord:
		return OkResult(NumberValue(float32(len(ev.Mem.WordString(v.Node)))))
	case ValueList:
		n := v.Node
		count := 0
		for !n.IsNil() {
			count++
			n = ev.Mem.Cdr(n)
		}
		return OkResult(NumberValue(float32(count)))
	default:
		return ErrorResult(ErrDoesntLikeInput, "count", ev.printValue(v))
	}
}

func primItem(ev *Evaluator, args []Value) Result {
	idxV, v := args[0], args[1]
	if idxV.Kind != ValueNumber {
		return ErrorResult(ErrDoesntLikeInput, "item", ev.printValue(idxV))
	}
	idx := int(idxV.Number)
	switch v.Kind {
	case ValueWord:
		s := ev.Mem.WordString(v.Node)
		if idx < 1 || idx > len(s) {
			return ErrorResult(ErrDoesntLikeInput, "item", ev.printValue(idxV))
		}
		return OkResult(WordValue(ev.Mem.AtomString(s[idx-1 : idx])))
	case ValueList:
		n := v.Node
		for i := 1; !n.IsNil(); i++ {
			if i == idx {
				return OkResult(elemValue(ev.Mem.Car(n)))
			}
			n = ev.Mem.Cdr(n)
		}
		return ErrorResult(ErrDoesntLikeInput, "item", ev.printValue(idxV))
	default:
		return ErrorResult(ErrDoesntLikeInput, "item", ev.printValue(v))
	}
}

func primEmptyp(ev *Evaluator, args []Value) Result {
	v := args[0]
	switch v.Kind {
	case ValueWord:
		return OkResult(BoolValue(ev.Mem, ev.Mem.WordString(v.Node) == ""))
	case ValueList:
		return OkResult(BoolValue(ev.Mem, v.Node.IsNil()))
	default:
		return ErrorResult(ErrDoesntLikeInput, "emptyp", ev.printValue(v))
	}
}

func primWordp(ev *Evaluator, args []Value) Result {
	return OkResult(BoolValue(ev.Mem, args[0].Kind == ValueWord || args[0].Kind == ValueNumber))
}

func primListp(ev *Evaluator, args []Value) Result {
	return OkResult(BoolValue(ev.Mem, args[0].Kind == ValueList))
}

func primNumberp(ev *Evaluator, args []Value) Result {
	return OkResult(BoolValue(ev.Mem, args[0].Kind == ValueNumber))
}

func primMemberp(ev *Evaluator, args []Value) Result {
	needle, haystack := args[0], args[1]
	if haystack.Kind != ValueList {
		return ErrorResult(ErrDoesntLikeInput, "memberp", ev.printValue(haystack))
	}
	n := haystack.Node
	for !n.IsNil() {
		if Equal(ev.Mem, needle, elemValue(ev.Mem.Car(n))) {
			return OkResult(BoolValue(ev.Mem, true))
		}
		n = ev.Mem.Cdr(n)
	}
	return OkResult(BoolValue(ev.Mem, false))
}
