package logo

import "encoding/binary"

// Node is a 32-bit tagged reference into the unified arena: two high
// bits select nil, list (a pool index) or word (an atom offset). Cons
// cells and atom bytes are kept in two separate slices, not in one
// shared buffer; each is the same flat-buffer-addressed-by-small-
// integers shape as db47h/ngaro's Cell memory.
type Node uint32

const (
	nodeTagNil  uint32 = 0
	nodeTagList uint32 = 1 << 30
	nodeTagWord uint32 = 2 << 30
	nodeTagMask uint32 = 3 << 30
)

// Nil is the sentinel node; car(Nil) and cdr(Nil) both return Nil.
const Nil Node = Node(nodeTagNil)

// Newline (tag newlineTag) is a distinguished node kind used only to preserve
// visual line breaks inside stored procedure bodies; it carries no
// payload and is skipped by execution.
const newlineTag uint32 = 3 << 30
const Newline Node = Node(newlineTag)

func (n Node) IsNil() bool {
	return n == Nil
}

func (n Node) IsList() bool {
	return n != Nil && uint32(n)&nodeTagMask == nodeTagList
}

func (n Node) IsWord() bool {
	return uint32(n)&nodeTagMask == nodeTagWord
}

func (n Node) IsNewline() bool {
	return n == Newline
}

func (n Node) index() uint32 {
	return uint32(n) &^ nodeTagMask
}

func listNode(idx uint32) Node {
	return Node(nodeTagList | idx)
}

func wordNode(off uint32) Node {
	return Node(nodeTagWord | off)
}

// atomAlignment is the byte alignment consecutive atom entries are
// padded to, so offsets can be compared and stepped cheaply.
const atomAlignment = 4

// maxAtomOffset is the encoding limit: atom offsets above 32K do not
// fit in the word-tagged reference's available bits for this build
// (a conservative, documented ceiling rather than the full 30 bits,
// matching the 16-bit-handle budget spec.md §3 calls for).
const maxAtomOffset = 1 << 15

// cell is a cons cell: a pair of 16-bit child references. Both car
// and cdr are full Nodes at rest in Go (no need to hand-pack bits the
// way a C port would), but only the low 16 bits of the pool index
// portion are ever populated, matching the spec's 16-bit pool index
// budget.
type cell struct {
	car, cdr Node
}

// Memory is the unified arena: cons-cell pool plus interned atom
// table, with a mark-sweep GC over the pool.
type Memory struct {
	cells    []cell
	freeHead uint32 // 0 means empty; index 0 is reserved and never allocated
	freeLen  int

	atoms    []byte
	atomOff  map[string]uint32 // interned offset by case-sensitive bytes
	marks    []bool
}

// NewMemory allocates a Memory arena with room for poolCells cons
// cells and atomBytes bytes of interned atom storage.
func NewMemory(poolCells, atomBytes int) *Memory {
	m := &Memory{
		cells:   make([]cell, poolCells),
		atoms:   make([]byte, 0, atomBytes),
		atomOff: make(map[string]uint32, 256),
		marks:   make([]bool, poolCells),
	}
	// index 0 is reserved (acts as "no cell"); seed the free list
	// starting from index 1.
	m.freeHead = 0
	for i := poolCells - 1; i >= 1; i-- {
		m.cells[i].cdr = Node(m.freeHead)
		m.freeHead = uint32(i)
		m.freeLen++
	}
	return m
}

// FreeCells returns the number of cons cells currently on the free list.
func (m *Memory) FreeCells() int { return m.freeLen }

// TotalCells returns the pool's total cons-cell capacity.
func (m *Memory) TotalCells() int { return len(m.cells) }

// FreeAtomBytes returns the remaining capacity in the atom table.
func (m *Memory) FreeAtomBytes() int { return cap(m.atoms) - len(m.atoms) }

func alignUp(n int) int {
	return (n + atomAlignment - 1) &^ (atomAlignment - 1)
}

// Cons allocates a new cons cell from the free list. Returns Nil on
// allocation failure; callers must check.
func (m *Memory) Cons(car, cdr Node) Node {
	if m.freeLen == 0 {
		return Nil
	}
	idx := m.freeHead
	m.freeHead = uint32(m.cells[idx].cdr)
	m.freeLen--
	m.cells[idx] = cell{car: car, cdr: cdr}
	return listNode(idx)
}

// Car returns the car of n, or Nil if n is not a list node or is out
// of range.
func (m *Memory) Car(n Node) Node {
	if !n.IsList() {
		return Nil
	}
	idx := n.index()
	if int(idx) >= len(m.cells) {
		return Nil
	}
	return m.cells[idx].car
}

// Cdr returns the cdr of n, or Nil if n is not a list node or is out
// of range.
func (m *Memory) Cdr(n Node) Node {
	if !n.IsList() {
		return Nil
	}
	idx := n.index()
	if int(idx) >= len(m.cells) {
		return Nil
	}
	return m.cells[idx].cdr
}

// SetCar mutates the car of n in place; a no-op on an out-of-range or
// non-list node.
func (m *Memory) SetCar(n, v Node) {
	if !n.IsList() {
		return
	}
	idx := n.index()
	if int(idx) >= len(m.cells) {
		return
	}
	m.cells[idx].car = v
}

// SetCdr mutates the cdr of n in place.
func (m *Memory) SetCdr(n, v Node) {
	if !n.IsList() {
		return
	}
	idx := n.index()
	if int(idx) >= len(m.cells) {
		return
	}
	m.cells[idx].cdr = v
}

// Atom interns bytes, returning a stable word Node. Equal byte
// sequences (case-sensitive compare at insertion) always intern to
// the same node; callers that want case-folded identity must fold
// before calling Atom. Atoms are never freed. Returns Nil if the atom
// table is full or the offset would exceed the encoding limit.
func (m *Memory) Atom(s []byte) Node {
	key := string(s)
	if off, ok := m.atomOff[key]; ok {
		return wordNode(off)
	}
	entryLen := alignUp(1 + len(s) + 1)
	off := len(m.atoms)
	if off+entryLen > cap(m.atoms) {
		return Nil
	}
	if off > maxAtomOffset {
		return Nil
	}
	buf := make([]byte, entryLen)
	buf[0] = byte(len(s))
	copy(buf[1:], s)
	buf[1+len(s)] = 0
	m.atoms = append(m.atoms, buf...)
	m.atomOff[key] = uint32(off)
	return wordNode(uint32(off))
}

// AtomString is a convenience wrapper around Atom for Go strings.
func (m *Memory) AtomString(s string) Node {
	return m.Atom([]byte(s))
}

// WordBytes returns the byte content of a word node. Returns nil for
// a node that is not a word.
func (m *Memory) WordBytes(n Node) []byte {
	if !n.IsWord() {
		return nil
	}
	off := n.index()
	if int(off) >= len(m.atoms) {
		return nil
	}
	length := int(m.atoms[off])
	start := int(off) + 1
	if start+length > len(m.atoms) {
		return nil
	}
	return m.atoms[start : start+length]
}

// WordString is a convenience wrapper around WordBytes.
func (m *Memory) WordString(n Node) string {
	return string(m.WordBytes(n))
}

// GCRoots is the set of root references a mark pass must preserve:
// globals, the property store, procedure bodies, and every live
// frame's bindings, expression stacks and body/line cursors. The
// caller (typically the Interpreter) assembles this from its
// component stores before invoking GC.
type GCRoots struct {
	Nodes []Node
}

// GC runs a full mark-sweep pass rooted at roots. It is a stop-the-
// world pass that runs only when called explicitly (Interpreter.GC);
// no primitive calls it, and a failed allocation returns Nil without
// triggering it. Running it twice in a row with the same roots is a
// no-op on the free-cell count.
func (m *Memory) GC(roots GCRoots) {
	for i := range m.marks {
		m.marks[i] = false
	}
	for _, n := range roots.Nodes {
		m.mark(n)
	}
	m.sweep()
}

// mark follows car then cdr recursively, skipping word-tag children
// since atoms are permanent and never need marking.
func (m *Memory) mark(n Node) {
	if !n.IsList() {
		return
	}
	idx := n.index()
	if int(idx) >= len(m.cells) || m.marks[idx] {
		return
	}
	m.marks[idx] = true
	m.mark(m.cells[idx].car)
	m.mark(m.cells[idx].cdr)
}

// sweep rebuilds the free list from every unmarked cell in one pass,
// then clears the marks for the next cycle.
func (m *Memory) sweep() {
	m.freeHead = 0
	m.freeLen = 0
	for i := len(m.cells) - 1; i >= 1; i-- {
		if m.marks[i] {
			continue
		}
		m.cells[i] = cell{cdr: Node(m.freeHead)}
		m.freeHead = uint32(i)
		m.freeLen++
	}
	for i := range m.marks {
		m.marks[i] = false
	}
}

// decodeU16/writeU16 are little-endian helpers, same idiom as the
// teacher's vm.go; the bytecode in bytecode.go is not byte-encoded,
// and nothing in the package calls them.
var decodeU16 = binary.LittleEndian.Uint16
var writeU16 = binary.LittleEndian.PutUint16
