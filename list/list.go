// Package list implements a generic doubly linked list with positional
// access. A List is not safe for concurrent use.
package list

import (
	"fmt"
	"io"
)

type ListType[T any] struct {
	EqualFunc func(a, b T) bool
}

type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
	ListType[T]
}

// New creates a list comparing values with ==.
func New[T comparable]() *List[T] {
	return Create(ListType[T]{EqualFunc: func(a, b T) bool { return a == b }})
}

// From creates a list holding values in order.
func From[T comparable](values ...T) *List[T] {
	list := New[T]()
	for _, v := range values {
		list.AddLast(v)
	}
	return list
}

// Create creates a list using the equality of listType.
func Create[T any](listType ListType[T]) *List[T] {
	if listType.EqualFunc == nil {
		panic("list: nil EqualFunc")
	}
	var list List[T]
	list.ListType = listType
	return &list
}

func (list *List[T]) Length() int {
	return list.length
}

func (list *List[T]) IsReadOnly() bool {
	return false
}

func (list *List[T]) Add(val T) {
	list.AddLast(val)
}

func (list *List[T]) AddFirst(val T) {
	node := newNode(val)
	if list.head == nil {
		list.head = node
		list.tail = node
	} else {
		node.next = list.head
		list.head.prev = node
		list.head = node
	}
	list.length++
}

func (list *List[T]) AddLast(val T) {
	node := newNode(val)
	if list.head == nil {
		list.head = node
		list.tail = node
	} else {
		node.prev = list.tail
		list.tail.next = node
		list.tail = node
	}
	list.length++
}

// Insert places val so that it ends up at index. Valid indices are
// 0 through Length() inclusive.
func (list *List[T]) Insert(index int, val T) error {
	if index < 0 || index > list.length {
		return outOfRange(index, list.length+1)
	}
	switch index {
	case 0:
		list.AddFirst(val)
	case list.length:
		list.AddLast(val)
	default:
		at := list.nodeAt(index)
		node := newNode(val)
		node.prev = at.prev
		node.next = at
		at.prev.next = node
		at.prev = node
		list.length++
	}
	return nil
}

func (list *List[T]) Get(index int) (T, error) {
	if err := list.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return list.nodeAt(index).Val, nil
}

// Set overwrites the value stored at index.
func (list *List[T]) Set(index int, val T) error {
	if err := list.checkIndex(index); err != nil {
		return err
	}
	list.nodeAt(index).Val = val
	return nil
}

func (list *List[T]) First() (T, bool) {
	if list.head == nil {
		var zero T
		return zero, false
	}
	return list.head.Val, true
}

func (list *List[T]) Last() (T, bool) {
	if list.tail == nil {
		var zero T
		return zero, false
	}
	return list.tail.Val, true
}

// IndexOf returns the position of the first value equal to val, or
// NOT_FOUND.
func (list *List[T]) IndexOf(val T) int {
	index := 0
	for p := list.head; p != nil; p = p.next {
		if list.EqualFunc(val, p.Val) {
			return index
		}
		index++
	}
	return NOT_FOUND
}

func (list *List[T]) Contains(val T) bool {
	return list.IndexOf(val) != NOT_FOUND
}

// CopyTo copies every value in order into dst starting at offset.
// An empty list copies nothing and only rejects a nil dst.
func (list *List[T]) CopyTo(dst []T, offset int) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination", INVALID_ARGUMENT_ERR)
	}
	if list.length == 0 {
		return nil
	}
	if offset < 0 || offset > len(dst) {
		return fmt.Errorf("%w: offset %d outside destination of length %d", INVALID_ARGUMENT_ERR, offset, len(dst))
	}
	if len(dst)-offset < list.length {
		return fmt.Errorf("%w: destination has room for %d values, need %d", INVALID_ARGUMENT_ERR, len(dst)-offset, list.length)
	}
	for p := list.head; p != nil; p = p.next {
		dst[offset] = p.Val
		offset++
	}
	return nil
}

func (list *List[T]) ToSlice() []T {
	values := make([]T, 0, list.length)
	for p := list.head; p != nil; p = p.next {
		values = append(values, p.Val)
	}
	return values
}

// Each calls fn for every value from head to tail until fn returns false.
// fn must not mutate the list.
func (list *List[T]) Each(fn func(index int, val T) bool) {
	index := 0
	for p := list.head; p != nil; p = p.next {
		if !fn(index, p.Val) {
			return
		}
		index++
	}
}

// Clear drops every node and cuts their links.
func (list *List[T]) Clear() {
	p := list.head
	for p != nil {
		next := p.next
		p.unlink()
		p = next
	}
	list.head = nil
	list.tail = nil
	list.length = 0
}

// Remove deletes the first value equal to val and reports whether one
// was found.
func (list *List[T]) Remove(val T) bool {
	index := list.IndexOf(val)
	if index == NOT_FOUND {
		return false
	}
	return list.RemoveAt(index) == nil
}

func (list *List[T]) RemoveAt(index int) error {
	if err := list.checkIndex(index); err != nil {
		return err
	}
	switch index {
	case 0:
		list.RemoveFirst()
	case list.length - 1:
		list.RemoveLast()
	default:
		list.delNode(list.nodeAt(index))
	}
	return nil
}

func (list *List[T]) RemoveFirst() {
	list.delNode(list.head)
}

func (list *List[T]) RemoveLast() {
	list.delNode(list.tail)
}

func (list *List[T]) PopFirst() (T, bool) {
	val, ok := list.First()
	if ok {
		list.RemoveFirst()
	}
	return val, ok
}

func (list *List[T]) PopLast() (T, bool) {
	val, ok := list.Last()
	if ok {
		list.RemoveLast()
	}
	return val, ok
}

// Print writes every value, one per line, to w.
func (list *List[T]) Print(w io.Writer) error {
	for p := list.head; p != nil; p = p.next {
		if _, err := fmt.Fprintln(w, p.Val); err != nil {
			return err
		}
	}
	return nil
}

func (list *List[T]) delNode(node *Node[T]) {
	if node == nil {
		return
	}
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		list.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		list.tail = node.prev
	}
	node.unlink()
	list.length--
}

// nodeAt walks from the nearer end. index must already be validated.
func (list *List[T]) nodeAt(index int) *Node[T] {
	if index < list.length/2 {
		p := list.head
		for i := 0; i < index; i++ {
			p = p.next
		}
		return p
	}
	p := list.tail
	for i := list.length - 1; i > index; i-- {
		p = p.prev
	}
	return p
}

func (list *List[T]) checkIndex(index int) error {
	if index < 0 || index >= list.length {
		return outOfRange(index, list.length)
	}
	return nil
}

func outOfRange(index, bound int) error {
	return fmt.Errorf("%w: index %d, valid range [0, %d)", INDEX_OUT_OF_RANGE_ERR, index, bound)
}
