package list

// singlyLinkedListEntry is a single node of a SinglyLinkedList.
type singlyLinkedListEntry[T comparable] struct {
	value T
	next  *singlyLinkedListEntry[T]
}
