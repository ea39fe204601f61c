package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// DoublyLinkedList is a list of values that can be traversed in both directions.
//
// The zero value is an empty list ready to use. A DoublyLinkedList is not safe for concurrent use: callers that share
// a list between goroutines need to synchronize access themselves, and a list must not be modified while one of its
// iterators is running.
type DoublyLinkedList[T comparable] struct {
	head *doublyLinkedListEntry[T]
	tail *doublyLinkedListEntry[T]
	size int
}

// NewDoublyLinkedList creates a new DoublyLinkedList that holds the given values in order.
func NewDoublyLinkedList[T comparable](values ...T) *DoublyLinkedList[T] {
	list := &DoublyLinkedList[T]{}
	for _, value := range values {
		list.PushBack(value)
	}

	return list
}

// region insertion ////////////////////////////////////////////////////////////////////////////////////////////////////

// PushFront inserts the given value at the front of the list.
func (list *DoublyLinkedList[T]) PushFront(value T) {
	entry := &doublyLinkedListEntry[T]{value: value}
	if list.head == nil {
		list.tail = entry
	} else {
		list.head.prev = entry
		entry.next = list.head
	}

	list.head = entry
	list.size++
}

// PushBack inserts the given value at the back of the list.
func (list *DoublyLinkedList[T]) PushBack(value T) {
	entry := &doublyLinkedListEntry[T]{value: value}
	if list.tail == nil {
		list.head = entry
	} else {
		list.tail.next = entry
		entry.prev = list.tail
	}

	list.tail = entry
	list.size++
}

// Insert inserts the value so that it ends up at the given index, shifting the element currently at that index (and
// all following ones) one position to the back. Valid indices are 0 to Size() inclusive.
func (list *DoublyLinkedList[T]) Insert(value T, index int) error {
	if index < 0 || index > list.size {
		return ierrors.Wrapf(ErrIndexOutOfRange, "index %d given, but size is %d", index, list.size)
	}

	if index == 0 {
		list.PushFront(value)

		return nil
	}

	if index == list.size {
		list.PushBack(value)

		return nil
	}

	successor := list.entryAt(index)
	entry := &doublyLinkedListEntry[T]{value: value, prev: successor.prev, next: successor}
	successor.prev.next = entry
	successor.prev = entry
	list.size++

	return nil
}

// MergeWith appends all values of the other list to the back of this list. The other list is not modified.
func (list *DoublyLinkedList[T]) MergeWith(other *DoublyLinkedList[T]) {
	if other == nil {
		return
	}

	// the size is captured up front so merging a list with itself terminates
	for i, entry := other.size, other.head; i > 0; i, entry = i-1, entry.next {
		list.PushBack(entry.value)
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region removal //////////////////////////////////////////////////////////////////////////////////////////////////////

// PopFront removes the first element of the list and returns its value.
func (list *DoublyLinkedList[T]) PopFront() (value T, err error) {
	if list.head == nil {
		return value, ierrors.Wrap(ErrEmptyList, "failed to pop front")
	}

	entry := list.head
	list.removeEntry(entry)

	return entry.value, nil
}

// PopBack removes the last element of the list and returns its value.
func (list *DoublyLinkedList[T]) PopBack() (value T, err error) {
	if list.tail == nil {
		return value, ierrors.Wrap(ErrEmptyList, "failed to pop back")
	}

	entry := list.tail
	list.removeEntry(entry)

	return entry.value, nil
}

// Remove removes the first element (seen from the front) that is equal to the given value.
func (list *DoublyLinkedList[T]) Remove(value T) error {
	entry, _ := list.find(value)
	if entry == nil {
		return ierrors.Wrapf(ErrNoSuchElement, "failed to remove %v", value)
	}

	list.removeEntry(entry)

	return nil
}

// Replace puts newValue at the position of the first occurrence of oldValue, which is removed from the list.
func (list *DoublyLinkedList[T]) Replace(newValue, oldValue T) error {
	entry, _ := list.find(oldValue)
	if entry == nil {
		return ierrors.Wrapf(ErrNoSuchElement, "failed to replace %v", oldValue)
	}

	entry.value = newValue

	return nil
}

// Clear removes all elements from the list.
func (list *DoublyLinkedList[T]) Clear() {
	list.head = nil
	list.tail = nil
	list.size = 0
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region access ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Size returns the number of elements in the list.
func (list *DoublyLinkedList[T]) Size() int {
	return list.size
}

// IsEmpty returns true if the list holds no elements.
func (list *DoublyLinkedList[T]) IsEmpty() bool {
	return list.head == nil
}

// Front returns the value of the first element.
func (list *DoublyLinkedList[T]) Front() (value T, err error) {
	if list.head == nil {
		return value, ErrEmptyList
	}

	return list.head.value, nil
}

// Back returns the value of the last element.
func (list *DoublyLinkedList[T]) Back() (value T, err error) {
	if list.tail == nil {
		return value, ErrEmptyList
	}

	return list.tail.value, nil
}

// Get returns the value at the given index. The walk starts at whichever end of the list is closer.
func (list *DoublyLinkedList[T]) Get(index int) (value T, err error) {
	if index < 0 || index >= list.size {
		return value, ierrors.Wrapf(ErrIndexOutOfRange, "index %d given, but size is %d", index, list.size)
	}

	return list.entryAt(index).value, nil
}

// IndexOf returns the index of the first element equal to the given value or -1 if there is none.
func (list *DoublyLinkedList[T]) IndexOf(value T) int {
	_, index := list.find(value)

	return index
}

// Contains returns true if an element equal to the given value exists.
func (list *DoublyLinkedList[T]) Contains(value T) bool {
	return list.IndexOf(value) != -1
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region copying //////////////////////////////////////////////////////////////////////////////////////////////////////

// Copy returns a new list holding the values at the indices from, from+step, from+2*step, ... that are smaller than
// to. The step is optional and defaults to 1. A window with from >= to results in an empty list.
func (list *DoublyLinkedList[T]) Copy(from, to int, optStep ...int) (*DoublyLinkedList[T], error) {
	step, err := copyStep(optStep)
	if err != nil {
		return nil, err
	}

	if err = checkCopyBounds(from, to, list.size); err != nil {
		return nil, err
	}

	result := NewDoublyLinkedList[T]()
	if from >= to {
		return result, nil
	}

	entry := list.entryAt(from)
	for i := from; i < to; i += step {
		result.PushBack(entry.value)

		for j := 0; j < step && entry != nil; j++ {
			entry = entry.next
		}
	}

	return result, nil
}

// Slice returns a copy of the elements in [start, end). If start is greater than end, the slice reaches from start to
// the end of the list, so Slice(0, Size()) as well as Slice(start, -1) copy everything from start on.
func (list *DoublyLinkedList[T]) Slice(start, end int) (*DoublyLinkedList[T], error) {
	if start > end {
		return list.Copy(start, list.size)
	}

	return list.Copy(start, end)
}

// Clone returns a copy of the whole list in linear time.
func (list *DoublyLinkedList[T]) Clone() *DoublyLinkedList[T] {
	clone := NewDoublyLinkedList[T]()
	for entry := list.head; entry != nil; entry = entry.next {
		clone.PushBack(entry.value)
	}

	return clone
}

// Merge returns a new list that holds the values of this list followed by the values of the other list. Neither of
// the two lists is modified.
func (list *DoublyLinkedList[T]) Merge(other *DoublyLinkedList[T]) *DoublyLinkedList[T] {
	result := list.Clone()
	result.MergeWith(other)

	return result
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region iteration ////////////////////////////////////////////////////////////////////////////////////////////////////

// All returns an iterator over the values from front to back.
func (list *DoublyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for entry := list.head; entry != nil; entry = entry.next {
			if !yield(entry.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from back to front.
func (list *DoublyLinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for entry := list.tail; entry != nil; entry = entry.prev {
			if !yield(entry.value) {
				return
			}
		}
	}
}

// ForEach executes the given callback for the value of each element. The iteration is aborted if the callback
// returns an error.
func (list *DoublyLinkedList[T]) ForEach(callback func(value T) error) error {
	for value := range list.All() {
		if err := callback(value); err != nil {
			return err
		}
	}

	return nil
}

// Values returns a slice of all values in the list.
func (list *DoublyLinkedList[T]) Values() []T {
	values := make([]T, 0, list.size)
	for value := range list.All() {
		values = append(values, value)
	}

	return values
}

// String renders every value followed by a single space, e.g. "1 2 3 ".
func (list *DoublyLinkedList[T]) String() string {
	var builder strings.Builder
	for value := range list.All() {
		fmt.Fprint(&builder, value)
		builder.WriteByte(' ')
	}

	return builder.String()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// entryAt returns the entry at the given index, which must be in [0, size).
func (list *DoublyLinkedList[T]) entryAt(index int) *doublyLinkedListEntry[T] {
	if index < list.size/2 {
		entry := list.head
		for i := 0; i < index; i++ {
			entry = entry.next
		}

		return entry
	}

	entry := list.tail
	for i := list.size - 1; i > index; i-- {
		entry = entry.prev
	}

	return entry
}

// find returns the first entry holding the given value and its index, or nil and -1.
func (list *DoublyLinkedList[T]) find(value T) (*doublyLinkedListEntry[T], int) {
	index := 0
	for entry := list.head; entry != nil; entry = entry.next {
		if entry.value == value {
			return entry, index
		}
		index++
	}

	return nil, -1
}

// removeEntry unlinks the given entry and repairs the neighbours' links.
func (list *DoublyLinkedList[T]) removeEntry(entry *doublyLinkedListEntry[T]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		list.head = entry.next
	}

	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		list.tail = entry.prev
	}

	entry.unlink()
	list.size--
}
