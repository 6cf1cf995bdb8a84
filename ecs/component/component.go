package component

import "sync/atomic"

// ComponentID uniquely identifies a component kind at runtime.
type ComponentID uint32

// Kind erases the generic parameter so storage and queries can be keyed by
// id without knowing the component type.
type Kind interface {
	ID() ComponentID
}

type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle registers a component type; declare one package-level
// handle per component.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

var nextComponentID atomic.Uint32
