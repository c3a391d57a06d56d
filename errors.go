// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import (
	"errors"
	"fmt"
)

// Error kinds from spec section 7. Callers distinguish them with
// errors.Is, the same pattern the teacher this package grew out of used
// for its single errMemory/errResize/errReset sentinels.
var (
	// ErrOutOfNodes is returned when the node pool is exhausted and no
	// further slab growth is permitted (Maxnodesize reached).
	ErrOutOfNodes = errors.New("mvdd: out of nodes")

	// ErrInvalidArgument flags a bad variable index, a value outside a
	// variable's domain, an empty fold sequence, or a truth-vector whose
	// length does not match the domain product.
	ErrInvalidArgument = errors.New("mvdd: invalid argument")

	// ErrPrecondViolation flags a request the manager cannot honour:
	// OpMaxBounded on a heterogeneous manager, swapping adjacent levels of
	// different domain sizes, or SatisfyOne for a value the diagram never
	// reaches. GetProbability does not check that CalculateProbabilities
	// has run.
	ErrPrecondViolation = errors.New("mvdd: precondition violated")
)

// wrapf wraps one of the sentinel kinds above with a formatted message,
// preserving errors.Is(err, kind).
func wrapf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}

// Error returns the error status of the manager, or the empty string if
// there is none. Mirrors the teacher's habit of keeping a sticky error on
// the manager in addition to returning errors from individual calls.
func (m *Manager) Error() string {
	if m.err == nil {
		return ""
	}
	return m.err.Error()
}

// Errored reports whether an operation has previously failed on m.
func (m *Manager) Errored() bool {
	return m.err != nil
}

func (m *Manager) seterror(err error) error {
	m.err = err
	if m.logger != nil {
		logError(m, err)
	}
	return err
}
