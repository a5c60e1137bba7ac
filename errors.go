package fse

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies why a core operation failed. It mirrors the error
// taxonomy of the reference FSE implementation: a small, closed set of
// failure kinds rather than one error type per call site.
type ErrorKind int

const (
	// ErrGenericError is reserved for defensive checks that indicate a
	// programming bug rather than bad input.
	ErrGenericError ErrorKind = iota
	// ErrDstTooSmall means the destination buffer cannot hold the
	// required output, or the bitstream register's residual flush.
	ErrDstTooSmall
	// ErrSrcSizeWrong means the source was truncated or otherwise
	// inconsistent with its declared size.
	ErrSrcSizeWrong
	// ErrCorruptionDetected means the bitstream reader overflowed, the
	// symbol spread did not terminate at position 0, or the end marker
	// was missing.
	ErrCorruptionDetected
	// ErrTableLogTooLarge means the requested or decoded tableLog is
	// outside the range the operation accepts: MinTableLog..MaxTableLog
	// for the table builders, MinTableLog..TableLogAbsMax for the NCount
	// header.
	ErrTableLogTooLarge
	// ErrMaxSymbolValueTooLarge means a symbol above the configured
	// maximum was encountered.
	ErrMaxSymbolValueTooLarge
	// ErrNormalizeError means the histogram could not be normalized
	// under the chosen tableLog (e.g. too many low-probability slots).
	ErrNormalizeError
)

func (k ErrorKind) String() string {
	switch k {
	case ErrDstTooSmall:
		return "dst too small"
	case ErrSrcSizeWrong:
		return "src size wrong"
	case ErrCorruptionDetected:
		return "corruption detected"
	case ErrTableLogTooLarge:
		return "tableLog too large"
	case ErrMaxSymbolValueTooLarge:
		return "maxSymbolValue too large"
	case ErrNormalizeError:
		return "normalize error"
	default:
		return "generic error"
	}
}

// Error is the concrete error type returned by this package. Kind lets
// callers branch on the failure category with errors.As, the same way the
// reference implementation's isError predicate let callers branch on the
// numeric error range.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Kind returns the ErrorKind carried by err, or ErrGenericError if err is
// nil or was not produced by this package.
func Kind(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrGenericError
}

func newError(kind ErrorKind, format string, args ...any) error {
	return errors.WithStack(&Error{Kind: kind, msg: fmt.Sprintf("fse: %s: %s", kind, fmt.Sprintf(format, args...))})
}
