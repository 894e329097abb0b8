package list

// Iterator walks a List by position. Each step re-resolves the current
// index against the list, so no node reference is held between calls.
// Results are unspecified if the list is mutated during iteration.
type Iterator[T any] struct {
	list  *List[T]
	index int
	valid bool
}

func (list *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: list, index: -1}
}

// Next advances to the following position and reports whether it holds
// a value. An exhausted iterator stays on the last position, so values
// appended later are still reached.
func (it *Iterator[T]) Next() bool {
	if it.list == nil {
		return false
	}
	if it.index+1 < it.list.Length() {
		it.index++
		it.valid = true
		return true
	}
	it.valid = false
	return false
}

// Value returns the value at the current position, or the zero value when
// there is none.
func (it *Iterator[T]) Value() T {
	var zero T
	if it.list == nil || !it.valid {
		return zero
	}
	val, err := it.list.Get(it.index)
	if err != nil {
		return zero
	}
	return val
}

func (it *Iterator[T]) Index() int {
	return it.index
}

func (it *Iterator[T]) Reset() {
	it.index = -1
	it.valid = false
}

// Close releases the list. Next returns false afterwards.
func (it *Iterator[T]) Close() {
	it.list = nil
	it.Reset()
}
