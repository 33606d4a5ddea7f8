package logo

// CompileExpr attempts to compile one expression from ts into
// bytecode the VM can run directly. It supports exactly the subset
// spec.md §4.10 allows a minimal compiler to leave out nothing else
// for: number/word literals, `:var` loads, unary minus, the four
// arithmetic operators, the three comparisons, and primitive calls
// whose arguments are themselves compilable — anything else (user
// procedure calls, list literals, parenthesized forms) makes
// CompileExpr give up and rewind ts so the tree-walk evaluator can
// take over from the same position.
func CompileExpr(ev *Evaluator, ts TokenSource, minBP int) (*Bytecode, bool) {
	start := ts.GetPosition()
	bc := NewBytecode()
	if !compileExprBP(ev, ts, bc, minBP) {
		ts.SetPosition(start)
		return nil, false
	}
	return bc, true
}

func compileExprBP(ev *Evaluator, ts TokenSource, bc *Bytecode, minBP int) bool {
	tok, err := ts.Next()
	if err != nil {
		return false
	}
	if !compilePrimary(ev, ts, bc, tok) {
		return false
	}

	for {
		peeked, _ := ts.Peek()
		bp, ok := infixBindingPower(peeked.Type)
		if !ok || bp < minBP {
			return true
		}
		opTok, _ := ts.Next()
		if !compileExprBP(ev, ts, bc, bp+1) {
			return false
		}
		op, ok := tokenToBinaryOp(opTok.Type)
		if !ok {
			return false
		}
		bc.emit(op, 0, 0)
	}
}

func compilePrimary(ev *Evaluator, ts TokenSource, bc *Bytecode, tok Token) bool {
	switch tok.Type {
	case TokNumber:
		n, ok := ParseNumber(ts.Text(tok))
		if !ok {
			return false
		}
		bc.emit(OpPushConst, bc.addConst(NumberValue(n)), 0)
		return true

	case TokQuoted:
		word := unescapeWord(ts.Text(tok))
		bc.emit(OpPushConst, bc.addConst(WordValue(ev.Mem.Atom(word))), 0)
		return true

	case TokColon:
		name := string(ts.Text(tok))[1:]
		bc.emit(OpLoadVar, bc.addConst(WordValue(ev.Mem.AtomString(name))), 0)
		return true

	case TokUnaryMinus:
		opTok, err := ts.Next()
		if err != nil {
			return false
		}
		if !compilePrimary(ev, ts, bc, opTok) {
			return false
		}
		bc.emit(OpNeg, 0, 0)
		return true

	case TokWord:
		name := string(ts.Text(tok))
		entry, ok := ev.Prims.Find(name)
		if !ok {
			return false
		}
		for i := 0; i < entry.DefaultArgs; i++ {
			if !compileExprBP(ev, ts, bc, 0) {
				return false
			}
		}
		bc.emit(OpCallPrim, bc.addConst(WordValue(ev.Mem.AtomString(name))), uint16(entry.DefaultArgs))
		return true

	default:
		return false
	}
}

func tokenToBinaryOp(t TokenType) (Opcode, bool) {
	switch t {
	case TokPlus:
		return OpAdd, true
	case TokMinus:
		return OpSub, true
	case TokStar:
		return OpMul, true
	case TokSlash:
		return OpDiv, true
	case TokEquals:
		return OpEq, true
	case TokLess:
		return OpLt, true
	case TokGreater:
		return OpGt, true
	default:
		return OpNop, false
	}
}
