package logo

// Binding powers for the Pratt parser of spec.md §4.9: comparison
// binds loosest, then additive, then multiplicative; a right-hand
// side is parsed with bp+1 so same-precedence chains associate left
// (`1-2-3` is `(1-2)-3`).
const (
	bpComparison   = 10
	bpAdditive     = 20
	bpMultiplicative = 30
	bpUnary        = 40
)

func infixBindingPower(t TokenType) (int, bool) {
	switch t {
	case TokEquals, TokLess, TokGreater:
		return bpComparison, true
	case TokPlus, TokMinus:
		return bpAdditive, true
	case TokStar, TokSlash:
		return bpMultiplicative, true
	default:
		return 0, false
	}
}

// Evaluator is the tree-walking core of spec.md §4.9: a Pratt parser
// over a TokenSource that dispatches words to primitives or user
// procedures, threading every component store together.
type Evaluator struct {
	Mem    *Memory
	Vars   *Variables
	Props  *Properties
	Procs  *ProcedureTable
	Frames *FrameArena
	Prims  *PrimitiveRegistry
	Host   Host
	Config *Config

	TailSlot TailCallSlot

	// Pause, when set by a REPL, is invoked synchronously for a
	// `pause` instruction: the Go call stack already sitting under
	// this point is exactly the suspended computation, so blocking
	// here in a nested read-eval-print loop until it returns is the
	// whole implementation of spec.md §5's "pause blocks the outer
	// evaluator until a sub-REPL returns". Left nil, `pause` instead
	// reports StatusPause directly to its caller, for embeddings with
	// no REPL attached.
	Pause func(ev *Evaluator, procName string) Result
}

// NewEvaluator wires the component stores into one Evaluator, the way
// api.go's Interpreter constructor assembles them.
func NewEvaluator(mem *Memory, vars *Variables, props *Properties, procs *ProcedureTable, frames *FrameArena, prims *PrimitiveRegistry, host Host, cfg *Config) *Evaluator {
	return &Evaluator{Mem: mem, Vars: vars, Props: props, Procs: procs, Frames: frames, Prims: prims, Host: host, Config: cfg}
}

// RunList executes a sequence of instructions read from ts until it
// is exhausted or an error-like Result (stop/output/throw/error/
// pause/call) is produced. tailPosition is true when the caller
// itself is in tail position (the last line of a procedure body),
// which lets the final instruction on the list become eligible for
// tail-call handling.
func (ev *Evaluator) RunList(ts TokenSource, tailPosition bool) Result {
	last := NoneResult()
	for {
		if ts.AtEnd() {
			return last
		}
		peeked, _ := ts.Peek()
		if peeked.Type == TokEOF {
			return last
		}
		if peeked.Type == TokNewline {
			ts.Next()
			continue
		}
		res := ev.evalInstruction(ts, tailPosition)
		if res.IsErrorLike() {
			return res
		}
		last = res
	}
}

// evalInstruction reads one instruction (a command word plus its
// fixed-arity arguments, each itself a full expression) and executes
// it, or reports an error for anything that isn't a valid instruction
// head.
func (ev *Evaluator) evalInstruction(ts TokenSource, tailPosition bool) Result {
	tok, _ := ts.Next()
	switch tok.Type {
	case TokEOF:
		return NoneResult()
	case TokWord, TokNumber:
		name := string(ts.Text(tok))
		return ev.dispatchCall(ts, name, tailPosition, true)
	case TokLeftParen:
		return ev.reportStrayValue(ev.evalParenInstruction(ts, tailPosition))
	default:
		return ErrorResult(ErrDontKnowWhat, "", printedToken(ts, tok))
	}
}

// dispatchCall resolves name to a primitive or user procedure, reads
// its default number of arguments as expressions (the `(...)` form is
// read by evalParenInstruction and parsePrimary instead), and invokes
// it. When
// tailPosition is true and the last token has been consumed, a call
// to a user procedure is handed to the trampoline instead of
// recursing directly, so a chain of tail calls runs in bounded Go
// stack depth (spec.md §4.9's CPS bailout, §4.7's frame reuse).
//
// atInstructionPosition marks a call reached directly from
// evalInstruction rather than from inside an enclosing expression
// (parsePrimary). Only then does a value the call computes go
// unconsumed, so only then is reportStrayValue applied; the
// evalControlWord branch is exempt either way; since output/stop/
// throw/pause are control-flow signals that must keep propagating
// through RunList/runBody/ProcCall, never values sitting unused.
func (ev *Evaluator) dispatchCall(ts TokenSource, name string, tailPosition, atInstructionPosition bool) Result {
	if ctrl, handled := ev.evalControlWord(ts, name); handled {
		return ctrl
	}

	if entry, ok := ev.Prims.Find(name); ok {
		args := make([]Value, 0, entry.DefaultArgs)
		for i := 0; i < entry.DefaultArgs; i++ {
			v, res := ev.parseExpr(ts, 0)
			if res.IsErrorLike() {
				return res
			}
			args = append(args, v)
		}
		res := entry.Fn(ev, args).SetErrorProc(name)
		if atInstructionPosition {
			return ev.reportStrayValue(res)
		}
		return res
	}

	if proc, ok := ev.Procs.Find(name); ok {
		args := make([]Value, 0, len(proc.Params))
		for range proc.Params {
			v, res := ev.parseExpr(ts, 0)
			if res.IsErrorLike() {
				return res
			}
			args = append(args, v)
		}

		atEnd := ts.AtEnd()
		if peeked, _ := ts.Peek(); peeked.Type == TokEOF {
			atEnd = true
		}
		if tailPosition && atEnd {
			return CallResult(proc, args)
		}
		res := ev.ProcCall(proc, args)
		if atInstructionPosition {
			return ev.reportStrayValue(res)
		}
		return res
	}

	return ErrorResult(ErrDontKnowHow, name, "")
}

// evalParenInstruction handles the `(name arg1 arg2 ...)` variadic
// call form at instruction position: every token up to the matching
// `)` is consumed as an argument regardless of the callee's default
// arity.
func (ev *Evaluator) evalParenInstruction(ts TokenSource, tailPosition bool) Result {
	tok, _ := ts.Next()
	if tok.Type != TokWord {
		v, res := ev.parseExprFromToken(ts, tok, 0)
		if res.IsErrorLike() {
			return res
		}
		if close, _ := ts.Next(); close.Type != TokRightParen {
			return ErrorResult(ErrParenMismatch, "", "")
		}
		return OkResult(v)
	}
	name := string(ts.Text(tok))

	var args []Value
	for {
		peeked, _ := ts.Peek()
		if peeked.Type == TokRightParen || peeked.Type == TokEOF {
			break
		}
		v, res := ev.parseExpr(ts, 0)
		if res.IsErrorLike() {
			return res
		}
		args = append(args, v)
	}
	if close, _ := ts.Next(); close.Type != TokRightParen {
		return ErrorResult(ErrParenMismatch, "", "")
	}

	if entry, ok := ev.Prims.Find(name); ok {
		return entry.Fn(ev, args).SetErrorProc(name)
	}
	if proc, ok := ev.Procs.Find(name); ok {
		if len(args) != len(proc.Params) {
			return ErrorResult(ErrNotEnoughInputs, name, "")
		}
		if tailPosition {
			peeked, _ := ts.Peek()
			if peeked.Type == TokEOF {
				return CallResult(proc, args)
			}
		}
		return ev.ProcCall(proc, args)
	}
	return ErrorResult(ErrDontKnowHow, name, "")
}

// evalControlWord handles the fixed set of control instructions whose
// behaviour is "produce a non-Ok Result that unwinds" rather than
// ordinary computation: stop, output, throw/catch's throw half, and
// their argument expressions.
func (ev *Evaluator) evalControlWord(ts TokenSource, name string) (Result, bool) {
	switch {
	case sameName(name, "stop"):
		return StopResult(), true
	case sameName(name, "output") || sameName(name, "op"):
		v, res := ev.parseExpr(ts, 0)
		if res.IsErrorLike() {
			return res, true
		}
		return OutputResult(v), true
	case sameName(name, "throw"):
		tagV, res := ev.parseExpr(ts, 0)
		if res.IsErrorLike() {
			return res, true
		}
		tag := ev.printValue(tagV)
		peeked, _ := ts.Peek()
		if peeked.Type != TokEOF {
			valV, res2 := ev.parseExpr(ts, 0)
			if res2.IsErrorLike() {
				return res2, true
			}
			return ThrowResult(tag, valV, true), true
		}
		return ThrowResult(tag, NoneValue, false), true
	case sameName(name, "pause"):
		procName := ev.currentProcName()
		if ev.Pause != nil {
			return ev.Pause(ev, procName), true
		}
		return PauseResult(procName), true
	default:
		return Result{}, false
	}
}

func (ev *Evaluator) currentProcName() string {
	if p := ev.Frames.CurrentProc(); p != nil {
		return p.Name
	}
	return ""
}

// parseExpr parses one expression with Pratt precedence climbing
// starting at minBP.
func (ev *Evaluator) parseExpr(ts TokenSource, minBP int) (Value, Result) {
	if ev.Config.GetBool("eval.use_vm") {
		if bc, ok := CompileExpr(ev, ts, minBP); ok {
			res := NewVM(ev).Run(bc)
			if res.IsErrorLike() {
				return NoneValue, res
			}
			return res.Value, res
		}
	}
	tok, _ := ts.Next()
	return ev.parseExprFromToken(ts, tok, minBP)
}

func (ev *Evaluator) parseExprFromToken(ts TokenSource, tok Token, minBP int) (Value, Result) {
	lhs, res := ev.parsePrimary(ts, tok)
	if res.IsErrorLike() {
		return NoneValue, res
	}
	for {
		peeked, _ := ts.Peek()
		bp, ok := infixBindingPower(peeked.Type)
		if !ok || bp < minBP {
			return lhs, OkResult(lhs)
		}
		opTok, _ := ts.Next()
		rhs, res := ev.parseExpr(ts, bp+1)
		if res.IsErrorLike() {
			return NoneValue, res
		}
		lhs, res = ev.applyBinary(opTok.Type, lhs, rhs)
		if res.IsErrorLike() {
			return NoneValue, res
		}
	}
}

// parsePrimary handles one already-consumed leading token of a
// primary expression: literals, variable references, bracketed
// lists, parenthesised sub-expressions, unary minus, and value-
// producing calls (a word used where a value is expected dispatches
// the same as an instruction, but its result must carry a value, as
// resultAsValue decides).
func (ev *Evaluator) parsePrimary(ts TokenSource, tok Token) (Value, Result) {
	switch tok.Type {
	case TokNumber:
		f, ok := ParseNumber(ts.Text(tok))
		if !ok {
			return NoneValue, ErrorResult(ErrDoesntLikeInput, "", string(ts.Text(tok)))
		}
		return NumberValue(f), OkResult(NoneValue)

	case TokQuoted:
		text := ts.Text(tok)
		word := unescapeWord(text[1:])
		return WordValue(ev.Mem.Atom(word)), OkResult(NoneValue)

	case TokColon:
		name := string(ts.Text(tok)[1:])
		v, ok := ev.lookupVariable(name)
		if !ok {
			return NoneValue, ErrorResult(ErrNoValue, name, "")
		}
		return v, OkResult(NoneValue)

	case TokLeftBracket:
		if sub, ok := ts.GetSublist(); ok {
			ts.ConsumeSublist()
			return ListValue(sub), OkResult(NoneValue)
		}
		node, res := ev.parseBracketedList(ts)
		if res.IsErrorLike() {
			return NoneValue, res
		}
		return ListValue(node), OkResult(NoneValue)

	case TokLeftParen:
		inner, _ := ts.Next()
		if inner.Type == TokWord {
			name := string(ts.Text(inner))
			if entry, ok := ev.Prims.Find(name); ok {
				var args []Value
				for {
					peeked, _ := ts.Peek()
					if peeked.Type == TokRightParen || peeked.Type == TokEOF {
						break
					}
					v, res := ev.parseExpr(ts, 0)
					if res.IsErrorLike() {
						return NoneValue, res
					}
					args = append(args, v)
				}
				if close, _ := ts.Next(); close.Type != TokRightParen {
					return NoneValue, ErrorResult(ErrParenMismatch, "", "")
				}
				r := entry.Fn(ev, args).SetErrorProc(name)
				if v, ok := resultAsValue(r); ok {
					return v, OkResult(NoneValue)
				}
				return NoneValue, r
			}
			if proc, ok := ev.Procs.Find(name); ok {
				var args []Value
				for {
					peeked, _ := ts.Peek()
					if peeked.Type == TokRightParen || peeked.Type == TokEOF {
						break
					}
					v, res := ev.parseExpr(ts, 0)
					if res.IsErrorLike() {
						return NoneValue, res
					}
					args = append(args, v)
				}
				if close, _ := ts.Next(); close.Type != TokRightParen {
					return NoneValue, ErrorResult(ErrParenMismatch, "", "")
				}
				r := ev.ProcCall(proc, args)
				if v, ok := resultAsValue(r); ok {
					return v, OkResult(NoneValue)
				}
				if r.IsErrorLike() {
					return NoneValue, r
				}
				return NoneValue, ErrorResult(ErrNoValue, name, "")
			}
			return NoneValue, ErrorResult(ErrDontKnowHow, name, "")
		}
		v, res := ev.parseExprFromToken(ts, inner, 0)
		if res.IsErrorLike() {
			return NoneValue, res
		}
		if close, _ := ts.Next(); close.Type != TokRightParen {
			return NoneValue, ErrorResult(ErrParenMismatch, "", "")
		}
		return v, OkResult(NoneValue)

	case TokUnaryMinus:
		v, res := ev.parseExpr(ts, bpUnary)
		if res.IsErrorLike() {
			return NoneValue, res
		}
		if v.Kind != ValueNumber {
			return NoneValue, ErrorResult(ErrDoesntLikeInput, "-", ev.printValue(v))
		}
		return NumberValue(-v.Number), OkResult(NoneValue)

	case TokWord:
		name := string(ts.Text(tok))
		r := ev.dispatchCall(ts, name, false, false)
		if v, ok := resultAsValue(r); ok {
			return v, OkResult(NoneValue)
		}
		if r.IsErrorLike() {
			return NoneValue, r
		}
		return NoneValue, ErrorResult(ErrNoValue, name, "")

	case TokRightBracket:
		return NoneValue, ErrorResult(ErrBracketMismatch, "", "")
	case TokRightParen:
		return NoneValue, ErrorResult(ErrParenMismatch, "", "")

	default:
		return NoneValue, ErrorResult(ErrDontKnowWhat, "", printedToken(ts, tok))
	}
}

// parseBracketedList reads tokens from a Lexer-backed source until the
// matching `]`, building the same list-of-tokens structure
// ParseProcedureBody builds for stored procedure bodies, so a literal
// list typed at the prompt and one read back out of a definition are
// indistinguishable in memory.
func (ev *Evaluator) parseBracketedList(ts TokenSource) (Node, Result) {
	var elems []Node
	for {
		tok, _ := ts.Next()
		switch tok.Type {
		case TokEOF:
			return Nil, ErrorResult(ErrBracketMismatch, "", "")
		case TokRightBracket:
			return buildListFromSlice(ev.Mem, elems), OkResult(NoneValue)
		case TokNewline:
			elems = append(elems, Newline)
		case TokLeftBracket:
			if sub, ok := ts.GetSublist(); ok {
				ts.ConsumeSublist()
				elems = append(elems, sub)
				continue
			}
			sub, res := ev.parseBracketedList(ts)
			if res.IsErrorLike() {
				return Nil, res
			}
			elems = append(elems, sub)
		default:
			elems = append(elems, ev.Mem.Atom(ts.Text(tok)))
		}
	}
}

// lookupVariable checks the current frame's binding chain first (a
// procedure's parameters and locals shadow globals), then falls back
// to the global Variables store.
func (ev *Evaluator) lookupVariable(name string) (Value, bool) {
	if !ev.Frames.Empty() {
		if _, slot, ok := ev.Frames.FindBindingInChain(name); ok {
			if v, has := ev.Frames.BindingValue(slot); has {
				return v, true
			}
			return NoneValue, false
		}
	}
	return ev.Vars.Get(name)
}

// applyBinary evaluates one infix operator application, the four
// arithmetic operators plus the three comparisons of spec.md §4.9.
func (ev *Evaluator) applyBinary(op TokenType, lhs, rhs Value) (Value, Result) {
	switch op {
	case TokPlus, TokMinus, TokStar, TokSlash:
		if lhs.Kind != ValueNumber {
			return NoneValue, ErrorResult(ErrDoesntLikeInput, operatorName(op), ev.printValue(lhs))
		}
		if rhs.Kind != ValueNumber {
			return NoneValue, ErrorResult(ErrDoesntLikeInput, operatorName(op), ev.printValue(rhs))
		}
		switch op {
		case TokPlus:
			return NumberValue(lhs.Number + rhs.Number), OkResult(NoneValue)
		case TokMinus:
			return NumberValue(lhs.Number - rhs.Number), OkResult(NoneValue)
		case TokStar:
			return NumberValue(lhs.Number * rhs.Number), OkResult(NoneValue)
		case TokSlash:
			if rhs.Number == 0 {
				return NoneValue, ErrorResult(ErrDivideByZero, "/", "")
			}
			return NumberValue(lhs.Number / rhs.Number), OkResult(NoneValue)
		}
	case TokEquals:
		return BoolValue(ev.Mem, Equal(ev.Mem, lhs, rhs)), OkResult(NoneValue)
	case TokLess, TokGreater:
		if lhs.Kind != ValueNumber || rhs.Kind != ValueNumber {
			return NoneValue, ErrorResult(ErrDoesntLikeInput, operatorName(op), ev.printValue(lhs))
		}
		if op == TokLess {
			return BoolValue(ev.Mem, lhs.Number < rhs.Number), OkResult(NoneValue)
		}
		return BoolValue(ev.Mem, lhs.Number > rhs.Number), OkResult(NoneValue)
	}
	return NoneValue, ErrorResult(ErrDontKnowWhat, "", "")
}

func operatorName(t TokenType) string {
	switch t {
	case TokPlus:
		return "+"
	case TokMinus:
		return "-"
	case TokStar:
		return "*"
	case TokSlash:
		return "/"
	case TokEquals:
		return "="
	case TokLess:
		return "<"
	case TokGreater:
		return ">"
	default:
		return "?"
	}
}

func printedToken(ts TokenSource, tok Token) string {
	if txt := ts.Text(tok); txt != nil {
		return string(txt)
	}
	return ""
}

// unescapeWord strips backslash-escapes from a quoted word's text,
// the way the lexer leaves them for later resolution rather than
// resolving them during scanning.
func unescapeWord(s []byte) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			out = append(out, s[i])
			continue
		}
		out = append(out, s[i])
	}
	return out
}

// ProcCall implements spec.md §4.8's call loop: push (or, on a
// detected self-recursive tail call, reuse) a frame, iterate the
// body's lines through RunList with tail-call detection enabled on
// the body's final line, and loop on a pending tail call instead of
// recursing, so a chain of tail calls — self- or mutually-recursive —
// runs in O(1) Go stack depth regardless of length.
func (ev *Evaluator) ProcCall(proc *Procedure, args []Value) Result {
	if !ev.Frames.Push(proc, args) {
		return ErrorResult(ErrOutOfSpace, proc.Name, "")
	}
	ev.Vars.PushScope()

	for {
		res := ev.runBody(proc)

		if res.Status == StatusCall {
			next := res.Call
			ev.Vars.PopScope()
			if ev.Frames.TailCallReuse(next.Proc, next.Args) {
				proc = next.Proc
				ev.Vars.PushScope()
				continue
			}
			// Different arity/capacity than the current frame can hold
			// in place: pop and push fresh, but keep trampolining
			// rather than recursing, so a long A-tail-calls-B chain
			// still runs in bounded Go stack depth.
			ev.Frames.Pop()
			if !ev.Frames.Push(next.Proc, next.Args) {
				return ErrorResult(ErrOutOfSpace, next.Proc.Name, "")
			}
			proc = next.Proc
			ev.Vars.PushScope()
			continue
		}

		ev.Vars.PopScope()
		switch res.Status {
		case StatusOutput:
			ev.Frames.Pop()
			return OutputResult(res.Value)
		case StatusStop, StatusNone, StatusOk:
			ev.Frames.Pop()
			return NoneResult()
		default: // StatusThrow, StatusError, StatusPause, StatusGoto
			ev.Frames.Pop()
			return res
		}
	}
}

// runBody walks proc's stored line-list, running each through
// RunList; the last line runs with tailPosition=true so a call to a
// user procedure positioned there (and nothing else following) can
// bail out via StatusCall instead of recursing.
func (ev *Evaluator) runBody(proc *Procedure) Result {
	line := proc.Body
	for !line.IsNil() {
		elem := ev.Mem.Car(line)
		rest := ev.Mem.Cdr(line)
		isLast := rest.IsNil()

		if elem.IsNewline() {
			line = rest
			continue
		}

		it := NewNodeIterator(ev.Mem, elem)
		res := ev.RunList(it, isLast)
		if res.IsErrorLike() {
			return res
		}
		line = rest
	}
	return NoneResult()
}

// resultAsValue reports whether r carries a usable expression value: a
// user procedure signals this with StatusOutput (the `output`
// command), while a primitive that computes a value directly returns
// StatusOk with a non-none Value — both count as "this call produced
// something an enclosing expression can consume".
func resultAsValue(r Result) (Value, bool) {
	if r.Status == StatusOutput {
		return r.Value, true
	}
	if r.Status == StatusOk && !r.Value.IsNone() {
		return r.Value, true
	}
	return NoneValue, false
}

// reportStrayValue turns a call result carrying a real value into the
// "I don't know what to do with it" error when that call was made at
// instruction position rather than as a sub-expression: a bare `sum 1
// 2` or `(3 + 4)` typed as a whole line computes a value nobody
// consumes, matching the VM's OpEndInstr check.
func (ev *Evaluator) reportStrayValue(r Result) Result {
	if v, ok := resultAsValue(r); ok {
		return ErrorResult(ErrDontKnowWhat, "", ev.printValue(v))
	}
	return r
}

// printValue renders a Value the way `print`/`throw` tag comparison
// need it: numbers through FormatNumber, words/lists through their
// Memory-backed text.
func (ev *Evaluator) printValue(v Value) string {
	switch v.Kind {
	case ValueNumber:
		return FormatNumber(v.Number)
	case ValueWord:
		return ev.Mem.WordString(v.Node)
	case ValueList:
		return ev.printList(v.Node)
	case ValueNewline:
		return "\n"
	default:
		return ""
	}
}

func (ev *Evaluator) printList(n Node) string {
	s := "["
	first := true
	for !n.IsNil() {
		elem := ev.Mem.Car(n)
		if !first {
			s += " "
		}
		first = false
		if elem.IsList() {
			s += ev.printList(elem)
		} else if elem.IsNewline() {
			s = s[:len(s)-1] + "\n"
			first = true
		} else {
			s += ev.Mem.WordString(elem)
		}
		n = ev.Mem.Cdr(n)
	}
	return s + "]"
}
