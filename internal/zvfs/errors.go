package zvfs

import "golang.org/x/xerrors"

// Kind classifies an Error so callers (in particular cmd/zvfs) can pick an
// exit code without string-matching messages.
type Kind int

const (
	// KindUnknown is the zero value; Error values returned by this
	// package always carry a more specific Kind.
	KindUnknown Kind = iota
	KindNotFound
	KindMalformed
	KindNameTooLong
	KindDuplicateName
	KindNoFreeSlot
	KindAlreadyDeleted
	KindEmpty
	KindHostIo
	KindBadArguments
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindMalformed:
		return "Malformed"
	case KindNameTooLong:
		return "NameTooLong"
	case KindDuplicateName:
		return "DuplicateName"
	case KindNoFreeSlot:
		return "NoFreeSlot"
	case KindAlreadyDeleted:
		return "AlreadyDeleted"
	case KindEmpty:
		return "Empty"
	case KindHostIo:
		return "HostIo"
	case KindBadArguments:
		return "BadArguments"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every operation in this package.
type Error struct {
	Kind Kind
	Op   string
	err  error
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + ": " + e.Kind.String() + ": " + e.err.Error()
}

func (e *Error) Unwrap() error { return e.err }

// newErr builds an *Error, wrapping cause (if any) with xerrors so that
// %+v formatting (used by cmd/zvfs --debug) retains a stack trace.
func newErr(op string, kind Kind, cause error) *Error {
	if cause == nil {
		return &Error{Kind: kind, Op: op}
	}
	return &Error{Kind: kind, Op: op, err: xerrors.Errorf("%s: %w", op, cause)}
}

// NewError is newErr's exported counterpart, for the cmd/zvfs shell
// layer to build its own BadArguments errors without reaching into
// Error's unexported fields.
func NewError(kind Kind, op string, cause error) *Error {
	return newErr(op, kind, cause)
}

// Is reports whether err is a *Error of the given kind, unwrapping as
// necessary. It lets callers write `zvfs.Is(err, zvfs.KindNotFound)`.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// KindOf returns err's Kind, or KindUnknown if err is not (or does not
// wrap) a *Error.
func KindOf(err error) Kind {
	var e *Error
	if xerrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
