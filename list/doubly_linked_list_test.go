package list

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ds"
	"github.com/iotaledger/hive.go/ierrors"
)

func TestDoublyLinkedList_PushAndRender(t *testing.T) {
	testList := NewDoublyLinkedList[int]()
	testList.PushBack(1)
	testList.PushBack(2)
	testList.PushBack(3)
	require.Equal(t, "1 2 3 ", testList.String())

	testList.PushFront(0)
	require.Equal(t, "0 1 2 3 ", testList.String())
	require.Equal(t, 4, testList.Size())

	requireDoublyLinks(t, testList)
}

func TestDoublyLinkedList_ZeroValue(t *testing.T) {
	var testList DoublyLinkedList[string]
	require.True(t, testList.IsEmpty())
	require.Equal(t, "", testList.String())

	testList.PushFront("b")
	testList.PushFront("a")
	requireValues(t, &testList, []string{"a", "b"})
}

func TestDoublyLinkedList_Get(t *testing.T) {
	testList := NewDoublyLinkedList(10, 20, 30, 40, 50)

	for i, expected := range []int{10, 20, 30, 40, 50} {
		value, err := testList.Get(i)
		require.NoError(t, err)
		require.Equal(t, expected, value)
	}

	_, err := testList.Get(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = testList.Get(testList.Size())
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = NewDoublyLinkedList[int]().Get(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDoublyLinkedList_Insert(t *testing.T) {
	testList := NewDoublyLinkedList(10, 20, 30)
	require.NoError(t, testList.Insert(99, 1))
	requireValues(t, testList, []int{10, 99, 20, 30})

	require.NoError(t, testList.Insert(5, 0))
	require.NoError(t, testList.Insert(35, testList.Size()))
	require.NoError(t, testList.Insert(25, 4))
	requireValues(t, testList, []int{5, 10, 99, 20, 25, 30, 35})
	requireDoublyLinks(t, testList)

	require.ErrorIs(t, testList.Insert(1, -1), ErrIndexOutOfRange)
	require.ErrorIs(t, testList.Insert(1, testList.Size()+1), ErrIndexOutOfRange)
	requireValues(t, testList, []int{5, 10, 99, 20, 25, 30, 35})

	emptyList := NewDoublyLinkedList[int]()
	require.NoError(t, emptyList.Insert(7, 0))
	requireValues(t, emptyList, []int{7})
}

func TestDoublyLinkedList_Pop(t *testing.T) {
	testList := NewDoublyLinkedList(1, 2, 3)

	value, err := testList.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, value)

	value, err = testList.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, value)
	requireValues(t, testList, []int{2})

	value, err = testList.PopBack()
	require.NoError(t, err)
	require.Equal(t, 2, value)
	require.True(t, testList.IsEmpty())
	requireDoublyLinks(t, testList)

	_, err = testList.PopFront()
	require.ErrorIs(t, err, ErrEmptyList)

	_, err = testList.PopBack()
	require.ErrorIs(t, err, ErrEmptyList)
	require.Equal(t, 0, testList.Size())
}

func TestDoublyLinkedList_PopFrontPushFrontRestores(t *testing.T) {
	testList := NewDoublyLinkedList(4, 8, 15, 16, 23, 42)
	size := testList.Size()

	value, err := testList.PopFront()
	require.NoError(t, err)
	testList.PushFront(value)

	front, err := testList.Front()
	require.NoError(t, err)
	require.Equal(t, 4, front)
	require.Equal(t, size, testList.Size())
}

func TestDoublyLinkedList_Remove(t *testing.T) {
	testList := NewDoublyLinkedList(5, 6, 7)
	require.NoError(t, testList.Remove(6))
	requireValues(t, testList, []int{5, 7})

	err := testList.Remove(100)
	require.ErrorIs(t, err, ErrNoSuchElement)
	requireValues(t, testList, []int{5, 7})

	// only the first occurrence goes, independent of its position
	testList = NewDoublyLinkedList(1, 2, 3, 2, 1)
	require.NoError(t, testList.Remove(2))
	requireValues(t, testList, []int{1, 3, 2, 1})
	require.NoError(t, testList.Remove(1))
	require.NoError(t, testList.Remove(1))
	requireValues(t, testList, []int{3, 2})
	require.NoError(t, testList.Remove(2))
	require.NoError(t, testList.Remove(3))
	require.True(t, testList.IsEmpty())
	requireDoublyLinks(t, testList)
}

func TestDoublyLinkedList_Replace(t *testing.T) {
	testList := NewDoublyLinkedList("a", "b", "c", "b")
	require.NoError(t, testList.Replace("x", "b"))
	requireValues(t, testList, []string{"a", "x", "c", "b"})

	require.ErrorIs(t, testList.Replace("y", "z"), ErrNoSuchElement)
	requireValues(t, testList, []string{"a", "x", "c", "b"})
}

func TestDoublyLinkedList_IndexOf(t *testing.T) {
	testList := NewDoublyLinkedList("hello world", "foo", "hello", "foo")

	require.Equal(t, 0, testList.IndexOf("hello world"))
	require.Equal(t, 1, testList.IndexOf("foo"))
	require.Equal(t, 2, testList.IndexOf("hello"))
	require.Equal(t, -1, testList.IndexOf("world"))
	require.True(t, testList.Contains("foo"))
	require.False(t, testList.Contains(""))
}

func TestDoublyLinkedList_Copy(t *testing.T) {
	testList := NewDoublyLinkedList(1, 2, 3, 4, 5)

	copied, err := testList.Copy(1, 4)
	require.NoError(t, err)
	requireValues(t, copied, []int{2, 3, 4})

	sliced, err := testList.Slice(1, 4)
	require.NoError(t, err)
	requireValues(t, sliced, copied.Values())

	stepped, err := testList.Copy(0, 5, 2)
	require.NoError(t, err)
	requireValues(t, stepped, []int{1, 3, 5})

	stepped, err = testList.Copy(1, 5, 3)
	require.NoError(t, err)
	requireValues(t, stepped, []int{2, 5})

	empty, err := testList.Copy(3, 3)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = testList.Copy(0, 6)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = testList.Copy(-1, 2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = testList.Copy(0, 2, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDoublyLinkedList_Slice(t *testing.T) {
	testList := NewDoublyLinkedList(1, 2, 3, 4, 5)

	full, err := testList.Slice(0, testList.Size())
	require.NoError(t, err)
	requireValues(t, full, testList.Values())

	tail, err := testList.Slice(3, 1)
	require.NoError(t, err)
	requireValues(t, tail, []int{4, 5})

	_, err = testList.Slice(2, 9)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDoublyLinkedList_CopyDoesNotAlias(t *testing.T) {
	testList := NewDoublyLinkedList(1, 2, 3)

	copied, err := testList.Copy(0, testList.Size())
	require.NoError(t, err)
	requireValues(t, copied, testList.Values())

	copied.PushBack(4)
	require.NoError(t, copied.Replace(10, 1))
	_, err = copied.PopBack()
	require.NoError(t, err)
	_, err = copied.PopBack()
	require.NoError(t, err)

	requireValues(t, testList, []int{1, 2, 3})
	requireValues(t, copied, []int{10, 2})
}

func TestDoublyLinkedList_Merge(t *testing.T) {
	first := NewDoublyLinkedList(1, 2)
	second := NewDoublyLinkedList(3, 4, 5)

	merged := first.Merge(second)
	requireValues(t, merged, []int{1, 2, 3, 4, 5})
	requireValues(t, first, []int{1, 2})
	requireValues(t, second, []int{3, 4, 5})
	requireDoublyLinks(t, merged)

	first.MergeWith(second)
	requireValues(t, first, []int{1, 2, 3, 4, 5})
	requireValues(t, second, []int{3, 4, 5})

	first.MergeWith(first)
	requireValues(t, first, []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5})
	requireDoublyLinks(t, first)

	first.MergeWith(nil)
	require.Equal(t, 10, first.Size())
}

func TestDoublyLinkedList_Iteration(t *testing.T) {
	testList := NewDoublyLinkedList(1, 2, 3, 4)

	require.Equal(t, slices.Collect(testList.All()), slices.Collect(testList.All()))
	require.Equal(t, []int{4, 3, 2, 1}, slices.Collect(testList.Backward()))

	var visited []int
	for value := range testList.All() {
		if value == 3 {
			break
		}
		visited = append(visited, value)
	}
	require.Equal(t, []int{1, 2}, visited)

	errStop := ierrors.New("stop")
	visited = visited[:0]
	err := testList.ForEach(func(value int) error {
		if value == 2 {
			return errStop
		}
		visited = append(visited, value)

		return nil
	})
	require.ErrorIs(t, err, errStop)
	require.Equal(t, []int{1}, visited)

	testList.Clear()
	require.Empty(t, slices.Collect(testList.All()))
	require.Equal(t, 0, testList.Size())
}

func TestDoublyLinkedList_RandomizedAgainstReference(t *testing.T) {
	random := rand.New(rand.NewPCG(1, 2))
	testList := NewDoublyLinkedList[int]()
	referenceList := ds.NewList[int](true)

	for range 2000 {
		value := random.IntN(20)

		switch random.IntN(6) {
		case 0:
			testList.PushFront(value)
			referenceList.PushFront(value)
		case 1:
			testList.PushBack(value)
			referenceList.PushBack(value)
		case 2:
			index := random.IntN(testList.Size() + 1)
			require.NoError(t, testList.Insert(value, index))
			if position := referenceElementAt(referenceList, index); position != nil {
				referenceList.InsertBefore(value, position)
			} else {
				referenceList.PushBack(value)
			}
		case 3:
			popped, err := testList.PopFront()
			if referenceList.Len() == 0 {
				require.ErrorIs(t, err, ErrEmptyList)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, referenceList.Remove(referenceList.Front()), popped)
		case 4:
			popped, err := testList.PopBack()
			if referenceList.Len() == 0 {
				require.ErrorIs(t, err, ErrEmptyList)
				continue
			}
			require.NoError(t, err)
			require.Equal(t, referenceList.Remove(referenceList.Back()), popped)
		case 5:
			err := testList.Remove(value)
			if element := referenceElementOf(referenceList, value); element != nil {
				require.NoError(t, err)
				referenceList.Remove(element)
			} else {
				require.ErrorIs(t, err, ErrNoSuchElement)
			}
		}

		requireValues(t, testList, referenceList.Values())
	}

	requireDoublyLinks(t, testList)
}

func requireValues[T comparable](t *testing.T, testList interface {
	Values() []T
	String() string
}, expectedValues []T) {
	t.Helper()

	require.Equal(t, len(expectedValues), len(testList.Values()))
	for i, value := range testList.Values() {
		require.Equal(t, expectedValues[i], value, "value at index %d of %q", i, testList.String())
	}

	if doublyList, isDoubly := testList.(*DoublyLinkedList[T]); isDoubly {
		require.Equal(t, len(expectedValues), doublyList.Size())
	}
	if singlyList, isSingly := testList.(*SinglyLinkedList[T]); isSingly {
		require.Equal(t, len(expectedValues), singlyList.GetLength())
	}
}

// requireDoublyLinks checks that the forward and the backward chain agree with the cached size.
func requireDoublyLinks[T comparable](t *testing.T, testList *DoublyLinkedList[T]) {
	t.Helper()

	if testList.size == 0 {
		require.Nil(t, testList.head)
		require.Nil(t, testList.tail)

		return
	}

	require.Nil(t, testList.head.prev)
	require.Nil(t, testList.tail.next)

	forward := 0
	for entry := testList.head; entry != nil; entry = entry.next {
		if entry.next != nil {
			require.Same(t, entry, entry.next.prev)
		}
		forward++
	}
	require.Equal(t, testList.size, forward)

	backward := 0
	for entry := testList.tail; entry != nil; entry = entry.prev {
		backward++
	}
	require.Equal(t, testList.size, backward)
}

func referenceElementAt(referenceList ds.List[int], index int) ds.ListElement[int] {
	element := referenceList.Front()
	for i := 0; element != nil && i < index; i++ {
		element = element.Next()
	}

	return element
}

func referenceElementOf(referenceList ds.List[int], value int) ds.ListElement[int] {
	for element := referenceList.Front(); element != nil; element = element.Next() {
		if element.Value() == value {
			return element
		}
	}

	return nil
}
