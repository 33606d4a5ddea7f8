package logo

// RegisterArithmeticPrimitives installs spec.md §4.10's numeric and
// logical operations (the prefix-call forms mirroring the infix
// operators the Pratt parser already handles, plus the boolean
// connectives and comparisons that have no infix spelling).
func RegisterArithmeticPrimitives(r *PrimitiveRegistry) {
	r.Register("sum", 2, primSum)
	r.Register("difference", 2, primDifference)
	r.Register("product", 2, primProduct)
	r.Register("quotient", 2, primQuotient)
	r.Register("remainder", 2, primRemainder)
	r.Register("minus", 1, primMinus)
	r.Register("equalp", 2, primEqualp)
	r.Register("equal?", 2, primEqualp)
	r.Register("notequalp", 2, primNotEqualp)
	r.Register("lessp", 2, primLessp)
	r.Register("less?", 2, primLessp)
	r.Register("greaterp", 2, primGreaterp)
	r.Register("greater?", 2, primGreaterp)
	r.Register("and", 2, primAnd)
	r.Register("or", 2, primOr)
	r.Register("not", 1, primNot)
}

func numArg(ev *Evaluator, proc string, v Value) (float32, Result) {
	if v.Kind != ValueNumber {
		return 0, ErrorResult(ErrDoesntLikeInput, proc, ev.printValue(v))
	}
	return v.Number, OkResult(NoneValue)
}

func primSum(ev *Evaluator, args []Value) Result {
	a, r := numArg(ev, "sum", args[0])
	if r.IsErrorLike() {
		return r
	}
	b, r := numArg(ev, "sum", args[1])
	if r.IsErrorLike() {
		return r
	}
	return OkResult(NumberValue(a + b))
}

func primDifference(ev *Evaluator, args []Value) Result {
	a, r := numArg(ev, "difference", args[0])
	if r.IsErrorLike() {
		return r
	}
	b, r := numArg(ev, "difference", args[1])
	if r.IsErrorLike() {
		return r
	}
	return OkResult(NumberValue(a - b))
}

func primProduct(ev *Evaluator, args []Value) Result {
	a, r := numArg(ev, "product", args[0])
	if r.IsErrorLike() {
		return r
	}
	b, r := numArg(ev, "product", args[1])
	if r.IsErrorLike() {
		return r
	}
	return OkResult(NumberValue(a * b))
}

func primQuotient(ev *Evaluator, args []Value) Result {
	a, r := numArg(ev, "quotient", args[0])
	if r.IsErrorLike() {
		return r
	}
	b, r := numArg(ev, "quotient", args[1])
	if r.IsErrorLike() {
		return r
	}
	if b == 0 {
		return ErrorResult(ErrDivideByZero, "quotient", "")
	}
	return OkResult(NumberValue(a / b))
}

func primRemainder(ev *Evaluator, args []Value) Result {
	a, r := numArg(ev, "remainder", args[0])
	if r.IsErrorLike() {
		return r
	}
	b, r := numArg(ev, "remainder", args[1])
	if r.IsErrorLike() {
		return r
	}
	if b == 0 {
		return ErrorResult(ErrDivideByZero, "remainder", "")
	}
	ai, bi := int64(a), int64(b)
	return OkResult(NumberValue(float32(ai % bi)))
}

func primMinus(ev *Evaluator, args []Value) Result {
	a, r := numArg(ev, "minus", args[0])
	if r.IsErrorLike() {
		return r
	}
	return OkResult(NumberValue(-a))
}

func primEqualp(ev *Evaluator, args []Value) Result {
	return OkResult(BoolValue(ev.Mem, Equal(ev.Mem, args[0], args[1])))
}

func primNotEqualp(ev *Evaluator, args []Value) Result {
	return OkResult(BoolValue(ev.Mem, !Equal(ev.Mem, args[0], args[1])))
}

func primLessp(ev *Evaluator, args []Value) Result {
	a, r := numArg(ev, "lessp", args[0])
	if r.IsErrorLike() {
		return r
	}
	b, r := numArg(ev, "lessp", args[1])
	if r.IsErrorLike() {
		return r
	}
	return OkResult(BoolValue(ev.Mem, a < b))
}

func primGreaterp(ev *Evaluator, args []Value) Result {
	a, r := numArg(ev, "greaterp", args[0])
	if r.IsErrorLike() {
		return r
	}
	b, r := numArg(ev, "greaterp", args[1])
	if r.IsErrorLike() {
		return r
	}
	return OkResult(BoolValue(ev.Mem, a > b))
}

func boolArg(ev *Evaluator, proc string, v Value) (bool, Result) {
	b, ok := AsBool(ev.Mem, v)
	if !ok {
		return false, ErrorResult(ErrNotBool, ev.printValue(v), "")
	}
	return b, OkResult(NoneValue)
}

func primAnd(ev *Evaluator, args []Value) Result {
	a, r := boolArg(ev, "and", args[0])
	if r.IsErrorLike() {
		return r
	}
	b, r := boolArg(ev, "and", args[1])
	if r.IsErrorLike() {
		return r
	}
	return OkResult(BoolValue(ev.Mem, a && b))
}

func primOr(ev *Evaluator, args []Value) Result {
	a, r := boolArg(ev, "or", args[0])
	if r.IsErrorLike() {
		return r
	}
	b, r := boolArg(ev, "or", args[1])
	if r.IsErrorLike() {
		return r
	}
	return OkResult(BoolValue(ev.Mem, a || b))
}

func primNot(ev *Evaluator, args []Value) Result {
	a, r := boolArg(ev, "not", args[0])
	if r.IsErrorLike() {
		return r
	}
	return OkResult(BoolValue(ev.Mem, !a))
}
