// Package boundedslice provides an ordered container with a fixed upper bound on the number of elements it can hold.
package boundedslice

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrCapacityExceeded is returned when an element is appended to a full BoundedSlice.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrIndexOutOfRange is returned when an index does not address an element of the BoundedSlice.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// region BoundedSlice /////////////////////////////////////////////////////////////////////////////////////////////////

// BoundedSlice is an ordered sequence of elements whose length can never exceed its capacity. The capacity is enforced
// by TryAppend and not by silently truncating the sequence.
type BoundedSlice[T any] struct {
	elements []T
	capacity int
}

// New returns an empty BoundedSlice with the given capacity.
func New[T any](capacity int) (new *BoundedSlice[T]) {
	if capacity < 0 {
		capacity = 0
	}

	return &BoundedSlice[T]{
		elements: make([]T, 0, capacity),
		capacity: capacity,
	}
}

// FromSlice returns a BoundedSlice with the given capacity that holds a copy of the given elements. It fails if the
// elements do not fit.
func FromSlice[T any](capacity int, elements []T) (new *BoundedSlice[T], err error) {
	new = New[T](capacity)
	if len(elements) > new.capacity {
		return nil, errors.Errorf("%d elements do not fit into a capacity of %d: %w", len(elements), new.capacity, ErrCapacityExceeded)
	}
	new.elements = append(new.elements, elements...)

	return new, nil
}

// TryAppend adds the element at the end of the sequence. The BoundedSlice is left untouched if it is full.
func (b *BoundedSlice[T]) TryAppend(element T) (err error) {
	if len(b.elements) >= b.capacity {
		return errors.Errorf("failed to append element (capacity %d): %w", b.capacity, ErrCapacityExceeded)
	}
	b.elements = append(b.elements, element)

	return nil
}

// SwapRemove removes the element at the given index by replacing it with the last element and shrinking the sequence
// by one. It runs in constant time but does not preserve the order of the remaining elements.
func (b *BoundedSlice[T]) SwapRemove(index int) (removed T, err error) {
	if index < 0 || index >= len(b.elements) {
		return removed, errors.Errorf("failed to remove element %d of %d: %w", index, len(b.elements), ErrIndexOutOfRange)
	}

	lastIndex := len(b.elements) - 1
	removed = b.elements[index]
	b.elements[index] = b.elements[lastIndex]

	var zero T
	b.elements[lastIndex] = zero
	b.elements = b.elements[:lastIndex]

	return removed, nil
}

// IndexFunc returns the index of the first element that satisfies the predicate or -1 if there is none.
func (b *BoundedSlice[T]) IndexFunc(predicate func(element T) bool) (index int) {
	for i, element := range b.elements {
		if predicate(element) {
			return i
		}
	}

	return -1
}

// Len returns the number of elements.
func (b *BoundedSlice[T]) Len() int {
	return len(b.elements)
}

// IsFull returns true if no further element can be appended.
func (b *BoundedSlice[T]) IsFull() bool {
	return len(b.elements) >= b.capacity
}

// Slice returns a copy of the elements in their current order.
func (b *BoundedSlice[T]) Slice() (elements []T) {
	elements = make([]T, len(b.elements))
	copy(elements, b.elements)

	return elements
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
