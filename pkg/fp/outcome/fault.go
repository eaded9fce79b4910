package outcome

import "errors"

// Kind discriminates the failure categories surfaced by this package.
type Kind int

const (
	KindUnknown Kind = iota
	// KindUnsatisfied marks a value rejected by Filter.
	KindUnsatisfied
	// KindMissing marks a required input that was absent.
	KindMissing
	// KindMalformed marks an input that was present but unparsable.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindUnsatisfied:
		return "unsatisfied"
	case KindMissing:
		return "missing"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Fault is a structured failure description: a discriminant plus a
// human-readable message.
type Fault struct {
	Kind    Kind
	Message string
}

func NewFault(kind Kind, message string) Fault {
	return Fault{Kind: kind, Message: message}
}

func (f Fault) Error() string {
	return f.Message
}

// AsFault reports whether err carries a Fault, unwrapping as needed.
func AsFault(err error) (Fault, bool) {
	var f Fault
	if errors.As(err, &f) {
		return f, true
	}
	return Fault{}, false
}

// Reasons splits an error joined from several causes into its parts; a
// plain error yields a single-element slice and nil yields none.
func Reasons(err error) []error {
	if err == nil {
		return nil
	}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return []error{err}
}
