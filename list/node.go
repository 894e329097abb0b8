package list

// Node is one cell of a List. Links are owned by the List and are never
// handed out across mutations.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]
	Val  T
}

func newNode[T any](val T) *Node[T] {
	return &Node[T]{Val: val}
}

func (node *Node[T]) unlink() {
	node.prev = nil
	node.next = nil
}
