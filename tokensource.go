package logo

// TokenSource is the common contract both token producers satisfy:
// a lexer over text, and an iterator over a cons list (list-as-code
// execution re-enters the evaluator through this same interface
// instead of serializing the list back to text). See spec.md §4.4
// and §9 "Polymorphic token source".
type TokenSource interface {
	Next() (Token, error)
	Peek() (Token, error)
	AtEnd() bool

	// Text returns the literal text backing a token previously
	// returned by this source. For a NodeIterator this is the word's
	// printed form, not a slice of any original buffer.
	Text(Token) []byte

	// GetSublist/ConsumeSublist expose the pending embedded list
	// when the most recently returned token was TokLeftBracket and
	// this source is a NodeIterator over pre-existing list
	// structure — the evaluator splices the sublist in directly
	// rather than re-lexing bracket text.
	GetSublist() (Node, bool)
	ConsumeSublist() Node

	// GetPosition/SetPosition save and restore a cursor, used by
	// CompileExpr to rewind when it gives up. The evaluator does not
	// save a position into a frame's line cursor when it returns a
	// StatusCall result.
	GetPosition() int
	SetPosition(int)

	// Copy returns an independent source positioned identically to
	// this one.
	Copy() TokenSource
}

// LexerTokenSource adapts a Lexer to the TokenSource contract.
type LexerTokenSource struct {
	lex *Lexer
}

func NewLexerTokenSource(lex *Lexer) *LexerTokenSource {
	return &LexerTokenSource{lex: lex}
}

func (s *LexerTokenSource) Next() (Token, error) { return s.lex.Next() }
func (s *LexerTokenSource) Peek() (Token, error) { return s.lex.Peek() }
func (s *LexerTokenSource) AtEnd() bool          { return s.lex.AtEnd() }
func (s *LexerTokenSource) Text(t Token) []byte  { return s.lex.Text(t) }

func (s *LexerTokenSource) GetSublist() (Node, bool) { return Nil, false }
func (s *LexerTokenSource) ConsumeSublist() Node     { return Nil }

func (s *LexerTokenSource) GetPosition() int  { return s.lex.pos }
func (s *LexerTokenSource) SetPosition(p int) { s.lex.pos = p }

func (s *LexerTokenSource) Copy() TokenSource {
	cp := *s.lex
	return &LexerTokenSource{lex: &cp}
}

// NodeIterator walks a cons list, classifying each element into a
// Token the same way the Lexer would, so stored procedure bodies
// round-trip through execution without ever being reprinted to text.
type NodeIterator struct {
	mem *Memory

	// list is the remaining tail of the list being walked; cur holds
	// the element last classified by Next/Peek so GetSublist can
	// expose it.
	list Node
	cur  Node

	atStart  bool
	prevType TokenType
	prevWasDelimiterAdjacent bool

	pendingSublist Node
	hasPending     bool

	// for Peek save/restore
	savedList, savedCur     Node
	savedAtStart            bool
	savedPrevType           TokenType
	savedPendingSublist     Node
	savedHasPending         bool
}

// NewNodeIterator creates a NodeIterator over list (the list's
// elements are consumed front to back; list itself is not mutated).
func NewNodeIterator(mem *Memory, list Node) *NodeIterator {
	return &NodeIterator{mem: mem, list: list, atStart: true}
}

func (it *NodeIterator) AtEnd() bool { return it.list.IsNil() }

func (it *NodeIterator) save() {
	it.savedList, it.savedCur = it.list, it.cur
	it.savedAtStart = it.atStart
	it.savedPrevType = it.prevType
	it.savedPendingSublist = it.pendingSublist
	it.savedHasPending = it.hasPending
}

func (it *NodeIterator) restore() {
	it.list, it.cur = it.savedList, it.savedCur
	it.atStart = it.savedAtStart
	it.prevType = it.savedPrevType
	it.pendingSublist = it.savedPendingSublist
	it.hasPending = it.savedHasPending
}

func (it *NodeIterator) Peek() (Token, error) {
	it.save()
	tok, err := it.Next()
	it.restore()
	return tok, err
}

// Next classifies the next element of the list. A list cell returns
// TokLeftBracket and stashes the sub-list for GetSublist/
// ConsumeSublist; a word is classified by inspecting its first
// character exactly as spec.md §4.4 prescribes, and the iterator
// applies the same unary-minus rule as the Lexer so text stored
// inside procedure bodies round-trips identically.
func (it *NodeIterator) Next() (Token, error) {
	if it.list.IsNil() {
		it.atStart = false
		return Token{Type: TokEOF}, nil
	}
	elem := it.mem.Car(it.list)
	it.cur = elem
	it.list = it.mem.Cdr(it.list)
	it.hasPending = false

	if elem.IsNewline() {
		it.recordPrev(TokNewline, false)
		return Token{Type: TokNewline}, nil
	}

	if elem.IsList() {
		it.pendingSublist = elem
		it.hasPending = true
		it.recordPrev(TokLeftBracket, false)
		return Token{Type: TokLeftBracket}, nil
	}

	text := it.mem.WordBytes(elem)
	typ, adjacent := it.classifyWord(text)
	it.recordPrev(typ, adjacent)
	return Token{Type: typ}, nil
}

func (it *NodeIterator) recordPrev(t TokenType, adjacent bool) {
	it.atStart = false
	it.prevType = t
	it.prevWasDelimiterAdjacent = adjacent
}

// classifyWord mirrors the Lexer's per-character dispatch: quote,
// colon and single-char operators are recognised from the first
// byte, a number-shaped word becomes NUMBER, anything else is WORD.
// Because list elements never carry surrounding whitespace
// information, unary-minus classification here uses "no preceding
// token was an operand" as its only signal (there is no whitespace
// to observe between cons cells).
func (it *NodeIterator) classifyWord(text []byte) (TokenType, bool) {
	if len(text) == 0 {
		return TokWord, false
	}
	switch text[0] {
	case '"':
		return TokQuoted, false
	case ':':
		return TokColon, false
	case '-':
		if len(text) > 1 {
			// A stored "-5" or "-foo" atom is already a single
			// token (it was interned as one word); the sign was
			// already folded in by whoever built the list, so this
			// is a unary/negative-literal token, not a binary
			// minus. looksLikeNumber handles the '-digits' case.
			if looksLikeNumber(text) {
				return TokNumber, false
			}
			return TokUnaryMinus, false
		}
		prevIsOperand := !it.atStart && it.prevType.isDelimiterForUnaryMinus()
		if prevIsOperand {
			return TokMinus, false
		}
		return TokUnaryMinus, false
	}
	if typ, ok := singleCharOperatorType(text[0]); ok && len(text) == 1 {
		return typ, false
	}
	if looksLikeNumber(text) {
		return TokNumber, false
	}
	return TokWord, false
}

// Text returns the word content backing a classified token. For
// TokLeftBracket it is empty; use GetSublist instead.
func (it *NodeIterator) Text(Token) []byte {
	if it.cur.IsWord() {
		return it.mem.WordBytes(it.cur)
	}
	return nil
}

func (it *NodeIterator) GetSublist() (Node, bool) {
	if it.hasPending {
		return it.pendingSublist, true
	}
	return Nil, false
}

func (it *NodeIterator) ConsumeSublist() Node {
	n := it.pendingSublist
	it.hasPending = false
	return n
}

// GetPosition/SetPosition address the remaining list directly: since
// Node values are stable arena references, the "position" is simply
// the remaining-tail node.
func (it *NodeIterator) GetPosition() int {
	return int(it.list)
}

func (it *NodeIterator) SetPosition(p int) {
	it.list = Node(p)
}

func (it *NodeIterator) Copy() TokenSource {
	cp := *it
	return &cp
}
