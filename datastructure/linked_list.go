package datastructure

import (
	"errors"
	"fmt"
	"strings"
)

var (
	NegativeIndex = errors.New("Negative index")
	OutOfRange    = errors.New("Index out of range")
)

type Node[T comparable] struct {
	Value T
	next  *Node[T]
}

func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// 单向链表，tail只做O(1)尾部插入用，不持有节点。
// 注意Append插入到表头，Prepend插入到表尾，与常规命名相反，调用方依赖此行为。
// 非线程安全
type LinkedList[T comparable] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Append inserts value at the front of the list.
func (l *LinkedList[T]) Append(value T) {
	l.PushFront(value)
}

// Prepend inserts value at the end of the list.
func (l *LinkedList[T]) Prepend(value T) {
	l.PushBack(value)
}

func (l *LinkedList[T]) PushFront(value T) {
	l.head = &Node[T]{Value: value, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.length++
}

func (l *LinkedList[T]) PushBack(value T) {
	if l.tail == nil {
		l.PushFront(value)
		return
	}
	node := &Node[T]{Value: value}
	l.tail.next = node
	l.tail = node
	l.length++
}

func (l *LinkedList[T]) Size() int {
	return l.length
}

func (l *LinkedList[T]) Head() *Node[T] {
	return l.head
}

func (l *LinkedList[T]) Tail() *Node[T] {
	return l.tail
}

// At returns nil when index is outside [0, Size()).
func (l *LinkedList[T]) At(index int) *Node[T] {
	if index < 0 || index >= l.length {
		return nil
	}
	node := l.head
	for i := 0; i < index; i++ {
		node = node.next
	}
	return node
}

// Pop removes the last node and returns its value.
func (l *LinkedList[T]) Pop() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	if l.head.next == nil {
		value := l.head.Value
		l.head, l.tail = nil, nil
		l.length--
		return value, true
	}

	newTail := l.At(l.length - 2)
	value := newTail.next.Value
	newTail.next = nil
	l.tail = newTail
	l.length--
	return value, true
}

func (l *LinkedList[T]) PopFront() (T, bool) {
	return l.RemoveAt(0)
}

func (l *LinkedList[T]) Contains(value T) bool {
	_, ok := l.Find(value)
	return ok
}

func (l *LinkedList[T]) Find(value T) (int, bool) {
	return l.FindFunc(func(v T) bool { return v == value })
}

func (l *LinkedList[T]) FindFunc(match func(T) bool) (int, bool) {
	i := 0
	for node := l.head; node != nil; node = node.next {
		if match(node.Value) {
			return i, true
		}
		i++
	}
	return -1, false
}

func (l *LinkedList[T]) InsertAt(value T, index int) error {
	if index < 0 {
		return NegativeIndex
	}
	if index > l.length {
		return OutOfRange
	}
	if index == 0 {
		l.PushFront(value)
		return nil
	}

	prev := l.At(index - 1)
	prev.next = &Node[T]{Value: value, next: prev.next}
	if prev == l.tail {
		l.tail = prev.next
	}
	l.length++
	return nil
}

func (l *LinkedList[T]) RemoveAt(index int) (T, bool) {
	var zero T
	if l.length == 0 || index < 0 || index >= l.length {
		return zero, false
	}

	if index == 0 {
		node := l.head
		l.head = node.next
		if l.head == nil {
			l.tail = nil
		}
		l.length--
		return node.Value, true
	} else if index == l.length-1 {
		return l.Pop()
	}

	prev := l.At(index - 1)
	node := prev.next
	prev.next = node.next
	l.length--
	return node.Value, true
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.length)
	for node := l.head; node != nil; node = node.next {
		values = append(values, node.Value)
	}
	return values
}

func (l *LinkedList[T]) Clear() {
	l.head, l.tail = nil, nil
	l.length = 0
}

func (l *LinkedList[T]) String() string {
	return l.StringFrom(l.head)
}

// StringFrom renders the chain starting at node, e.g. "( 1 ) => ( 2 ) => null".
func (l *LinkedList[T]) StringFrom(node *Node[T]) string {
	sb := strings.Builder{}
	for ; node != nil; node = node.next {
		fmt.Fprintf(&sb, "( %v ) => ", node.Value)
	}
	sb.WriteString("null")
	return sb.String()
}

type Iterator[T comparable] struct {
	prev    *Node[T]
	current *Node[T]
}

func (l *LinkedList[T]) Iterator() Iterator[T] {
	return Iterator[T]{current: l.head}
}

func (it *Iterator[T]) Empty() bool {
	return it.current == nil
}

func (it *Iterator[T]) Value() T {
	return it.current.Value
}

func (it *Iterator[T]) Next() {
	if it.current == nil {
		return
	}
	it.prev = it.current
	it.current = it.current.next
}

// Remove unlinks the node under it and moves it to the successor.
func (l *LinkedList[T]) Remove(it *Iterator[T]) (T, bool) {
	var zero T
	node := it.current
	if node == nil {
		return zero, false
	}
	if it.prev == nil {
		l.head = node.next
	} else {
		it.prev.next = node.next
	}
	if node == l.tail {
		l.tail = it.prev
	}
	it.current = node.next
	l.length--
	return node.Value, true
}
