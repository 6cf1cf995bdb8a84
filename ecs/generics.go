package ecs

import "github.com/milk9111/platformer/ecs/component"

// Add attaches a component value to an entity, replacing any existing one.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.alive(e) {
		return ErrEntityNotAlive
	}
	if value == nil {
		return ErrNilComponent
	}
	w.storeFor(kind.ID()).Set(e.id(), value)
	return nil
}

// Get returns the entity's component of the given kind.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.alive(e) {
		return nil, false
	}
	v := w.store(kind.ID()).Get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the entity holds a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.alive(e) {
		return false
	}
	return w.store(kind.ID()).Has(e.id())
}

// Remove detaches the component, reporting whether it was present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.alive(e) {
		return false
	}
	return w.store(kind.ID()).Remove(e.id())
}

// First returns any single entity holding the kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	return w.First(kind)
}

// ForEach visits every entity holding the kind. Destroying or mutating the
// visited entity inside fn is allowed; the id list is snapshotted first.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	ids := append([]entityID(nil), w.store(kind.ID()).ids()...)
	for _, id := range ids {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every entity holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	ids := append([]entityID(nil), w.store(ka.ID()).ids()...)
	for _, id := range ids {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, okA := Get(w, e, ka)
		if !okA {
			continue
		}
		b, okB := Get(w, e, kb)
		if !okB {
			continue
		}
		fn(e, a, b)
	}
}
