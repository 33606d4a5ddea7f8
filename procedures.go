package logo

// Procedure is a user-defined procedure: {name, params, body, flags}
// of spec.md §3. The body is stored as a list of lines — each line
// itself a list of tokens (words/numbers/quoted atoms, nested
// bracket sub-lists, and Newline markers preserving the original
// line breaks) — so printing a stored definition reproduces its
// original line structure.
type Procedure struct {
	Name    string
	Params  []string
	Body    Node
	Buried  bool
	Traced  bool
	Stepped bool
}

// ProcedureTable is the fixed-capacity, case-insensitive-lookup table
// of user procedures (spec.md §4.8).
type ProcedureTable struct {
	procs    []*Procedure
	maxProcs int
}

func NewProcedureTable(maxProcs int) *ProcedureTable {
	return &ProcedureTable{maxProcs: maxProcs}
}

func (t *ProcedureTable) indexOf(name string) int {
	for i, p := range t.procs {
		if sameName(p.Name, name) {
			return i
		}
	}
	return -1
}

// Find looks up a procedure by case-insensitive name.
func (t *ProcedureTable) Find(name string) (*Procedure, bool) {
	if i := t.indexOf(name); i >= 0 {
		return t.procs[i], true
	}
	return nil, false
}

func (t *ProcedureTable) Exists(name string) bool {
	_, ok := t.Find(name)
	return ok
}

// Define installs proc, replacing any existing procedure of the same
// name. Returns false if the table is at capacity and name is new.
func (t *ProcedureTable) Define(proc *Procedure) bool {
	if i := t.indexOf(proc.Name); i >= 0 {
		t.procs[i] = proc
		return true
	}
	if len(t.procs) >= t.maxProcs {
		return false
	}
	t.procs = append(t.procs, proc)
	return true
}

// Erase removes a procedure definition by name.
func (t *ProcedureTable) Erase(name string) {
	if i := t.indexOf(name); i >= 0 {
		t.procs = append(t.procs[:i], t.procs[i+1:]...)
	}
}

func (t *ProcedureTable) EraseAll() {
	t.procs = t.procs[:0]
}

func (t *ProcedureTable) setFlag(name string, set func(*Procedure, bool), on bool) {
	if p, ok := t.Find(name); ok {
		set(p, on)
	}
}

func (t *ProcedureTable) Bury(name string) {
	t.setFlag(name, func(p *Procedure, b bool) { p.Buried = b }, true)
}
func (t *ProcedureTable) Unbury(name string) {
	t.setFlag(name, func(p *Procedure, b bool) { p.Buried = b }, false)
}
func (t *ProcedureTable) Trace(name string) {
	t.setFlag(name, func(p *Procedure, b bool) { p.Traced = b }, true)
}
func (t *ProcedureTable) Untrace(name string) {
	t.setFlag(name, func(p *Procedure, b bool) { p.Traced = b }, false)
}
func (t *ProcedureTable) Step(name string) {
	t.setFlag(name, func(p *Procedure, b bool) { p.Stepped = b }, true)
}
func (t *ProcedureTable) Unstep(name string) {
	t.setFlag(name, func(p *Procedure, b bool) { p.Stepped = b }, false)
}

// Count / At iterate every procedure in definition order, buried ones
// included (callers check Procedure.Buried); api.go walks them to
// collect GC roots. No listing or workspace-save primitive exists.
func (t *ProcedureTable) Count() int { return len(t.procs) }

func (t *ProcedureTable) At(i int) (*Procedure, bool) {
	if i < 0 || i >= len(t.procs) {
		return nil, false
	}
	return t.procs[i], true
}

// TailCallSlot holds one pending tail call (procedure plus arguments)
// with read-and-clear access through TakeAndClear. The evaluator does
// not use it: tail calls reach ProcCall's loop as StatusCall results.
type TailCallSlot struct {
	isSet bool
	proc  *Procedure
	args  []Value
}

func (s *TailCallSlot) Set(proc *Procedure, args []Value) {
	s.isSet = true
	s.proc = proc
	s.args = args
}

// TakeAndClear returns the pending tail call, if any, and clears the
// slot.
func (s *TailCallSlot) TakeAndClear() (*Procedure, []Value, bool) {
	if !s.isSet {
		return nil, nil, false
	}
	proc, args := s.proc, s.args
	s.isSet = false
	s.proc = nil
	s.args = nil
	return proc, args, true
}

// buildListFromSlice folds a slice of Nodes into a cons list via mem,
// right to left, the standard way to build a list once its elements
// are known up front.
func buildListFromSlice(mem *Memory, elems []Node) Node {
	result := Nil
	for i := len(elems) - 1; i >= 0; i-- {
		result = mem.Cons(elems[i], result)
	}
	return result
}

// ParseWordsLine tokenizes one line of external text (data mode) into
// a single flat list of elements — the structure `readlist` needs,
// as opposed to ParseProcedureBody's list-of-lines.
func ParseWordsLine(mem *Memory, lineText []byte) Node {
	lex := NewLexer(lineText, ModeData)
	var elems []Node
	for {
		tok, _ := lex.Next()
		switch tok.Type {
		case TokEOF, TokNewline:
			return buildListFromSlice(mem, elems)
		case TokLeftBracket:
			elems = append(elems, parseBracketGroup(mem, lex))
		default:
			elems = append(elems, mem.Atom(lex.Text(tok)))
		}
	}
}

// ParseProcedureBody lexes bodyText (everything between a `to`
// header line and the matching `end`, in data mode per spec.md
// §4.8) into the list-of-lines structure Procedure.Body expects:
// each physical line becomes one list element (a sub-list of that
// line's tokens), blank lines become a bare Newline element, and a
// bracketed group that spans multiple physical lines is itself one
// nested list element whose internal Newline elements mark where the
// source broke.
func ParseProcedureBody(mem *Memory, bodyText []byte) Node {
	lex := NewLexer(bodyText, ModeData)
	var lines []Node
	var current []Node

	flushLine := func() {
		if len(current) == 0 {
			lines = append(lines, Newline)
		} else {
			lines = append(lines, buildListFromSlice(mem, current))
		}
		current = nil
	}

	for {
		tok, _ := lex.Next()
		switch tok.Type {
		case TokEOF:
			if len(current) > 0 {
				flushLine()
			}
			return buildListFromSlice(mem, lines)
		case TokNewline:
			flushLine()
		case TokLeftBracket:
			current = append(current, parseBracketGroup(mem, lex))
		default:
			current = append(current, mem.Atom(lex.Text(tok)))
		}
	}
}

// parseBracketGroup reads tokens until the matching `]`, building a
// flat list for this nesting level; embedded newlines become Newline
// elements and nested `[` recurse.
func parseBracketGroup(mem *Memory, lex *Lexer) Node {
	var elems []Node
	for {
		tok, _ := lex.Next()
		switch tok.Type {
		case TokEOF, TokRightBracket:
			return buildListFromSlice(mem, elems)
		case TokNewline:
			elems = append(elems, Newline)
		case TokLeftBracket:
			elems = append(elems, parseBracketGroup(mem, lex))
		default:
			elems = append(elems, mem.Atom(lex.Text(tok)))
		}
	}
}

// DefineFromText implements spec.md §4.8's define_from_text: header
// is the `to` line's remainder (name followed by zero or more
// `:param` words, already split from the `to` keyword and the
// trailing newline by the REPL's accumulator), bodyText is everything
// up to (not including) the matching `end` line. isPrimitive reports
// whether a name collides with a built-in, so redefinition of a
// primitive is refused with the offending name as the error's arg.
func (t *ProcedureTable) DefineFromText(mem *Memory, header, bodyText []byte, maxParams int, isPrimitive func(string) bool) (*Procedure, Result) {
	lex := NewLexer(header, ModeData)

	nameTok, _ := lex.Next()
	if nameTok.Type != TokWord && nameTok.Type != TokNumber {
		return nil, ErrorResult(ErrDontKnowHow, "to", string(lex.Text(nameTok)))
	}
	name := string(lex.Text(nameTok))

	if isPrimitive != nil && isPrimitive(name) {
		return nil, ErrorResult(ErrIsPrimitive, "to", name)
	}

	var params []string
	for {
		tok, _ := lex.Next()
		if tok.Type == TokEOF {
			break
		}
		if tok.Type != TokColon {
			return nil, ErrorResult(ErrDontKnowHow, "to", string(lex.Text(tok)))
		}
		if len(params) >= maxParams {
			return nil, ErrorResult(ErrOutOfSpace, name, "")
		}
		params = append(params, string(lex.Text(tok))[1:])
	}

	body := ParseProcedureBody(mem, bodyText)
	proc := &Procedure{Name: name, Params: params, Body: body}
	if !t.Define(proc) {
		return nil, ErrorResult(ErrOutOfSpace, name, "")
	}
	return proc, OkResult(NoneValue)
}
