// Package fault classifies the errors that stop the history crawler.
package fault

import (
	"errors"
	"fmt"
)

// Kind is the class of a fault.
type Kind int

const (
	// Unknown is returned by KindOf for errors that carry no fault.
	Unknown Kind = iota
	// TransportKind: a node query did not succeed.
	TransportKind
	// IntegrityKind: fetched data or reconciliation results violate an invariant.
	IntegrityKind
	// StoreKind: a ledger store read or write failed.
	StoreKind
)

func (k Kind) String() string {
	switch k {
	case TransportKind:
		return "transport"
	case IntegrityKind:
		return "integrity"
	case StoreKind:
		return "store"
	default:
		return "unknown"
	}
}

// Error is a classified fault raised while crawling.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s fault: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Transport wraps err as a transport fault unless it already carries a fault.
func Transport(op string, err error) error {
	return wrap(TransportKind, op, err)
}

// Store wraps err as a store fault unless it already carries a fault.
func Store(op string, err error) error {
	return wrap(StoreKind, op, err)
}

// Integrity builds an integrity fault from a formatted message.
func Integrity(op, format string, args ...any) error {
	return &Error{Kind: IntegrityKind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first fault in err's chain.
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.Kind
	}
	return Unknown
}

// Is reports whether err carries a fault of kind k.
func Is(err error, k Kind) bool {
	return KindOf(err) == k
}

func wrap(k Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != Unknown {
		return err
	}
	return &Error{Kind: k, Op: op, Err: err}
}
