package ecs

import (
	"errors"

	"github.com/milk9111/platformer/ecs/component"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: component is nil")
)

// World owns entities, per-kind component storage, and the event queue.
// Systems run against it through a Scheduler; the world itself holds no
// update order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
	}
}

// CreateEntity allocates a new entity handle.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components. It reports
// whether the handle was alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return true
}

// IsAlive reports whether the handle refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.alive(e)
}

// Entities returns all live entity handles.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count())
	w.entities.each(func(e Entity) {
		out = append(out, e)
	})
	return out
}

// Query returns the entities holding every listed component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	// iterate the smallest store, probe the rest
	var base *SparseSet
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok || s.Len() == 0 {
			return nil
		}
		if base == nil || s.Len() < base.Len() {
			base = s
		}
	}

	out := make([]Entity, 0, base.Len())
next:
	for _, id := range base.ids() {
		for _, k := range kinds {
			if s := w.stores[k.ID()]; s != base && !s.Has(id) {
				continue next
			}
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any single entity holding the component kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok || s.Len() == 0 {
		return 0, false
	}
	for _, id := range s.ids() {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) storeFor(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) store(id component.ComponentID) *SparseSet {
	return w.stores[id]
}
