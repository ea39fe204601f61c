// Package list implements generic singly and doubly linked lists.
package list

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrIndexOutOfRange is returned when an index falls outside the valid bounds of an operation.
	ErrIndexOutOfRange = ierrors.New("index out of range")
	// ErrNoSuchElement is returned when a value is not part of the list.
	ErrNoSuchElement = ierrors.New("element does not exist")
	// ErrEmptyList is returned when an element is taken from an empty list.
	ErrEmptyList = ierrors.New("list is empty")
	// ErrInvalidArgument is returned when an argument can never be valid, e.g. a non-positive step.
	ErrInvalidArgument = ierrors.New("invalid argument")
)

// copyStep extracts the optional step of a Copy call.
func copyStep(optStep []int) (int, error) {
	if len(optStep) == 0 {
		return 1, nil
	}

	if optStep[0] < 1 {
		return 0, ierrors.Wrapf(ErrInvalidArgument, "step must be positive, got %d", optStep[0])
	}

	return optStep[0], nil
}

// checkCopyBounds validates the [from, to) window of a Copy call against a list of the given size.
func checkCopyBounds(from, to, size int) error {
	if from >= to {
		return nil
	}

	if from < 0 || to > size {
		return ierrors.Wrapf(ErrIndexOutOfRange, "range [%d, %d) given, but size is %d", from, to, size)
	}

	return nil
}
