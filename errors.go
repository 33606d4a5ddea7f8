package logo

import "github.com/pkg/errors"

// HostError wraps a failure that crossed the Host boundary (a read or
// write that failed against the real terminal) with the operation
// that triggered it. Error formats it as "op: cause" through
// pkg/errors' Wrap and Unwrap returns the original cause, without
// letting that detail leak into the EvalError taxonomy a running
// program sees.
type HostError struct {
	Op  string
	Err error
}

func (e *HostError) Error() string {
	return errors.Wrap(e.Err, e.Op).Error()
}

func (e *HostError) Unwrap() error { return e.Err }

// WrapHostError annotates err (if non-nil) with the Host operation
// that produced it.
func WrapHostError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &HostError{Op: op, Err: err}
}

// HostErrorResult turns a Host-boundary failure into the Result a
// primitive should return: spec.md §6's taxonomy has no "I/O failed"
// entry of its own, so a host error surfaces as
// ErrUnsupportedOnDevice — the same code a primitive (still) not
// implemented by an embedding Host would report.
func HostErrorResult(procName string, err error) Result {
	if err == nil {
		return OkResult(NoneValue)
	}
	return ErrorResult(ErrUnsupportedOnDevice, procName, err.Error())
}
