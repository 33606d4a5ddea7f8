package logo

// vmStackSize is the VM's small fixed operand stack of spec.md §4.10.
const vmStackSize = 64

// VM is the stack machine executing a Bytecode unit against one
// Evaluator's component stores. It never recurses into user
// procedures itself — CALL_PRIM is the only way a VM program touches
// the wider interpreter, and CALL_USER* compilation is left to the
// tree-walk path (see Compiler's fallback contract).
type VM struct {
	ev    *Evaluator
	stack [vmStackSize]Value
	sp    int
}

func NewVM(ev *Evaluator) *VM {
	return &VM{ev: ev}
}

func (vm *VM) push(v Value) bool {
	if vm.sp >= vmStackSize {
		return false
	}
	vm.stack[vm.sp] = v
	vm.sp++
	return true
}

func (vm *VM) pop() (Value, bool) {
	if vm.sp == 0 {
		return NoneValue, false
	}
	vm.sp--
	return vm.stack[vm.sp], true
}

// Run executes bc to completion, reporting the same Result shape the
// tree-walk evaluator would for the equivalent expression/instruction.
func (vm *VM) Run(bc *Bytecode) Result {
	vm.sp = 0
	tailPosition := false

	for pc := 0; pc < len(bc.Code); pc++ {
		instr := bc.Code[pc]
		switch instr.Op {
		case OpNop:

		case OpPushConst:
			if !vm.push(bc.Constants[instr.A]) {
				return ErrorResult(ErrOutOfSpace, "vm", "")
			}

		case OpLoadVar:
			name := vm.ev.Mem.WordString(bc.Constants[instr.A].Node)
			v, ok := vm.ev.lookupVariable(name)
			if !ok {
				return ErrorResult(ErrNoValue, name, "")
			}
			if !vm.push(v) {
				return ErrorResult(ErrOutOfSpace, "vm", "")
			}

		case OpCallPrim, OpCallPrimInstr:
			name := vm.ev.Mem.WordString(bc.Constants[instr.A].Node)
			argc := int(instr.B)
			args := make([]Value, argc)
			for i := argc - 1; i >= 0; i-- {
				v, ok := vm.pop()
				if !ok {
					return ErrorResult(ErrNotEnoughInputs, name, "")
				}
				args[i] = v
			}
			entry, ok := vm.ev.Prims.Find(name)
			if !ok {
				return ErrorResult(ErrDontKnowHow, name, "")
			}
			res := entry.Fn(vm.ev, args).SetErrorProc(entry.Name)
			if res.IsErrorLike() && res.Status != StatusOk {
				return res
			}
			if instr.Op == OpCallPrimInstr {
				if !res.Value.IsNone() {
					if !vm.push(res.Value) {
						return ErrorResult(ErrOutOfSpace, "vm", "")
					}
				}
				continue
			}
			if !vm.push(res.Value) {
				return ErrorResult(ErrOutOfSpace, "vm", "")
			}

		case OpNeg:
			a, _ := vm.pop()
			v, res := vm.ev.applyBinary(TokMinus, NumberValue(0), a)
			if res.IsErrorLike() {
				return res
			}
			if !vm.push(v) {
				return ErrorResult(ErrOutOfSpace, "vm", "")
			}

		case OpAdd, OpSub, OpMul, OpDiv, OpEq, OpLt, OpGt:
			b, _ := vm.pop()
			a, _ := vm.pop()
			v, res := vm.ev.applyBinary(opcodeToToken(instr.Op), a, b)
			if res.IsErrorLike() {
				return res
			}
			if !vm.push(v) {
				return ErrorResult(ErrOutOfSpace, "vm", "")
			}

		case OpBeginInstr:
			tailPosition = instr.A != 0
			_ = tailPosition

		case OpEndInstr:
			if vm.sp > 0 {
				v, _ := vm.pop()
				return ErrorResult(ErrDontKnowWhat, vm.ev.printValue(v), "")
			}
		}
	}

	if vm.sp > 0 {
		v, _ := vm.pop()
		return OkResult(v)
	}
	return NoneResult()
}

func opcodeToToken(op Opcode) TokenType {
	switch op {
	case OpAdd:
		return TokPlus
	case OpSub:
		return TokMinus
	case OpMul:
		return TokStar
	case OpDiv:
		return TokSlash
	case OpEq:
		return TokEquals
	case OpLt:
		return TokLess
	case OpGt:
		return TokGreater
	default:
		return TokEOF
	}
}
