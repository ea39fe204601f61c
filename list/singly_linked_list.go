package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// SinglyLinkedList is a forward-only list of values.
//
// Only the head is tracked: appending and measuring the length walk the whole chain. The zero value is an empty list
// ready to use. A SinglyLinkedList is not safe for concurrent use.
type SinglyLinkedList[T comparable] struct {
	head *singlyLinkedListEntry[T]
}

// NewSinglyLinkedList creates a new SinglyLinkedList that holds the given values in order.
func NewSinglyLinkedList[T comparable](values ...T) *SinglyLinkedList[T] {
	list := &SinglyLinkedList[T]{}

	// build back to front to avoid walking the chain for every value
	for i := len(values) - 1; i >= 0; i-- {
		list.AddFirst(values[i])
	}

	return list
}

// AddFirst inserts the given value at the front of the list.
func (list *SinglyLinkedList[T]) AddFirst(value T) {
	list.head = &singlyLinkedListEntry[T]{value: value, next: list.head}
}

// AddLast appends the given value to the end of the list.
func (list *SinglyLinkedList[T]) AddLast(value T) {
	entry := &singlyLinkedListEntry[T]{value: value}
	if list.head == nil {
		list.head = entry

		return
	}

	list.last().next = entry
}

// DeleteElement removes the first element equal to the given value and reports whether one was found.
func (list *SinglyLinkedList[T]) DeleteElement(value T) bool {
	var previous *singlyLinkedListEntry[T]
	for current := list.head; current != nil; previous, current = current, current.next {
		if current.value != value {
			continue
		}

		if previous == nil {
			list.head = current.next
		} else {
			previous.next = current.next
		}
		current.next = nil

		return true
	}

	return false
}

// Clear removes all elements from the list.
func (list *SinglyLinkedList[T]) Clear() {
	list.head = nil
}

// GetLength counts the elements of the list.
func (list *SinglyLinkedList[T]) GetLength() int {
	length := 0
	for entry := list.head; entry != nil; entry = entry.next {
		length++
	}

	return length
}

// IsEmpty returns true if the list holds no elements.
func (list *SinglyLinkedList[T]) IsEmpty() bool {
	return list.head == nil
}

// Get returns the value at the given index.
func (list *SinglyLinkedList[T]) Get(index int) (value T, err error) {
	if index < 0 {
		return value, ierrors.Wrapf(ErrIndexOutOfRange, "index %d given", index)
	}

	entry := list.head
	for i := 0; entry != nil && i < index; i++ {
		entry = entry.next
	}

	if entry == nil {
		return value, ierrors.Wrapf(ErrIndexOutOfRange, "index %d given, but the list ends before", index)
	}

	return entry.value, nil
}

// IndexOf returns the index of the first element equal to the given value or -1 if there is none.
func (list *SinglyLinkedList[T]) IndexOf(value T) int {
	index := 0
	for entry := list.head; entry != nil; entry = entry.next {
		if entry.value == value {
			return index
		}
		index++
	}

	return -1
}

// Contains returns true if an element equal to the given value exists.
func (list *SinglyLinkedList[T]) Contains(value T) bool {
	return list.IndexOf(value) != -1
}

// Copy returns a new list holding the values at the indices from, from+step, from+2*step, ... that are smaller than
// to. The step is optional and defaults to 1. A window with from >= to results in an empty list.
func (list *SinglyLinkedList[T]) Copy(from, to int, optStep ...int) (*SinglyLinkedList[T], error) {
	step, err := copyStep(optStep)
	if err != nil {
		return nil, err
	}

	if err = checkCopyBounds(from, to, list.GetLength()); err != nil {
		return nil, err
	}

	result := NewSinglyLinkedList[T]()
	if from >= to {
		return result, nil
	}

	entry := list.head
	for i := 0; i < from; i++ {
		entry = entry.next
	}

	// keep a tail pointer for the result so the copy stays linear
	var tail *singlyLinkedListEntry[T]
	for i := from; i < to; i += step {
		copied := &singlyLinkedListEntry[T]{value: entry.value}
		if tail == nil {
			result.head = copied
		} else {
			tail.next = copied
		}
		tail = copied

		for j := 0; j < step && entry != nil; j++ {
			entry = entry.next
		}
	}

	return result, nil
}

// MergeByCreatingNewList replaces the contents of this list with a freshly built list holding the values of this list
// followed by the values of the other list. The other list is not modified.
func (list *SinglyLinkedList[T]) MergeByCreatingNewList(other *SinglyLinkedList[T]) {
	merged := NewSinglyLinkedList(list.Values()...)
	if other != nil {
		merged.appendValues(other.Values())
	}

	list.head = merged.head
}

// MergeWithoutCreatingNewList appends all values of the other list to the end of this list. The other list is not
// modified.
func (list *SinglyLinkedList[T]) MergeWithoutCreatingNewList(other *SinglyLinkedList[T]) {
	if other == nil {
		return
	}

	// the length is captured up front so merging a list with itself terminates
	for i, entry := other.GetLength(), other.head; i > 0; i, entry = i-1, entry.next {
		list.AddLast(entry.value)
	}
}

// All returns an iterator over the values from front to back.
func (list *SinglyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for entry := list.head; entry != nil; entry = entry.next {
			if !yield(entry.value) {
				return
			}
		}
	}
}

// ForEach executes the given callback for the value of each element. The iteration is aborted if the callback
// returns an error.
func (list *SinglyLinkedList[T]) ForEach(callback func(value T) error) error {
	for value := range list.All() {
		if err := callback(value); err != nil {
			return err
		}
	}

	return nil
}

// Values returns a slice of all values in the list.
func (list *SinglyLinkedList[T]) Values() []T {
	values := make([]T, 0)
	for value := range list.All() {
		values = append(values, value)
	}

	return values
}

// String renders every value followed by a single space, e.g. "1 2 3 ".
func (list *SinglyLinkedList[T]) String() string {
	var builder strings.Builder
	for value := range list.All() {
		fmt.Fprint(&builder, value)
		builder.WriteByte(' ')
	}

	return builder.String()
}

func (list *SinglyLinkedList[T]) last() *singlyLinkedListEntry[T] {
	entry := list.head
	for entry != nil && entry.next != nil {
		entry = entry.next
	}

	return entry
}

// appendValues appends the values with a single walk to the current tail.
func (list *SinglyLinkedList[T]) appendValues(values []T) {
	if len(values) == 0 {
		return
	}

	tail := list.last()
	for _, value := range values {
		entry := &singlyLinkedListEntry[T]{value: value}
		if tail == nil {
			list.head = entry
		} else {
			tail.next = entry
		}
		tail = entry
	}
}
