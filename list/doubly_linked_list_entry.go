package list

// doublyLinkedListEntry is a single node of a DoublyLinkedList.
type doublyLinkedListEntry[T comparable] struct {
	value T
	next  *doublyLinkedListEntry[T]
	// prev is only used to walk backwards, the entry is owned by its predecessor's next.
	prev *doublyLinkedListEntry[T]
}

func (entry *doublyLinkedListEntry[T]) unlink() {
	entry.next = nil
	entry.prev = nil
}
