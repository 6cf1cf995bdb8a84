package ecs

import (
	"testing"

	"github.com/milk9111/platformer/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for a live entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	DestroyEntity(w, first)
	second := CreateEntity(w)

	if first == second {
		t.Fatalf("recycled entity should differ from the destroyed handle")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle should stay dead after id reuse")
	}
	if !IsAlive(w, second) {
		t.Fatalf("recycled entity should be alive")
	}
}

func TestComponentsAndQueries(t *testing.T) {
	type position struct{ X, Y float64 }
	type velocity struct{ DX, DY float64 }
	posHandle := component.NewComponent[position]()
	velHandle := component.NewComponent[velocity]()

	w := NewWorld()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, posHandle.Kind(), &position{X: 1}); err != nil {
		t.Fatalf("add pos to e1: %v", err)
	}
	if err := Add(w, e2, posHandle.Kind(), &position{X: 2}); err != nil {
		t.Fatalf("add pos to e2: %v", err)
	}
	if err := Add(w, e2, velHandle.Kind(), &velocity{DX: 5}); err != nil {
		t.Fatalf("add vel to e2: %v", err)
	}
	if err := Add(w, e3, velHandle.Kind(), &velocity{DX: 7}); err != nil {
		t.Fatalf("add vel to e3: %v", err)
	}

	t.Run("get_returns_stored_pointer", func(t *testing.T) {
		p, ok := Get(w, e1, posHandle.Kind())
		if !ok || p.X != 1 {
			t.Fatalf("expected pos X=1, got %+v ok=%v", p, ok)
		}
		p.X = 10
		p2, _ := Get(w, e1, posHandle.Kind())
		if p2.X != 10 {
			t.Fatalf("mutation through pointer should persist, got %+v", p2)
		}
	})

	t.Run("query_intersects_kinds", func(t *testing.T) {
		got := w.Query(posHandle.Kind(), velHandle.Kind())
		if len(got) != 1 || got[0] != e2 {
			t.Fatalf("expected [%v], got %v", e2, got)
		}
	})

	t.Run("remove_detaches", func(t *testing.T) {
		if !Remove(w, e2, velHandle.Kind()) {
			t.Fatalf("remove should report presence")
		}
		if Has(w, e2, velHandle.Kind()) {
			t.Fatalf("component should be gone after remove")
		}
		if got := w.Query(posHandle.Kind(), velHandle.Kind()); len(got) != 0 {
			t.Fatalf("expected empty query, got %v", got)
		}
	})

	t.Run("destroy_drops_components", func(t *testing.T) {
		DestroyEntity(w, e3)
		if _, ok := Get(w, e3, velHandle.Kind()); ok {
			t.Fatalf("dead entity should have no components")
		}
	})

	t.Run("add_to_dead_entity_fails", func(t *testing.T) {
		if err := Add(w, e3, posHandle.Kind(), &position{}); err != ErrEntityNotAlive {
			t.Fatalf("expected ErrEntityNotAlive, got %v", err)
		}
	})
}

func TestForEachAllowsDestroyDuringIteration(t *testing.T) {
	type marker struct{ N int }
	handle := component.NewComponent[marker]()

	w := NewWorld()
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, handle.Kind(), &marker{N: i}); err != nil {
			t.Fatalf("add marker: %v", err)
		}
	}

	visited := 0
	ForEach(w, handle.Kind(), func(e Entity, m *marker) {
		visited++
		DestroyEntity(w, e)
	})

	if visited != 5 {
		t.Fatalf("expected 5 visits, got %d", visited)
	}
	if len(Entities(w)) != 0 {
		t.Fatalf("expected all entities destroyed, got %d", len(Entities(w)))
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: EventCoinCollected, Data: CoinCollected{Score: 1}})
	w.Events().Push(Event{Type: EventJumpFired})

	events := w.Events().Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventCoinCollected || events[1].Type != EventJumpFired {
		t.Fatalf("events out of order: %v", events)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("drain should clear the queue")
	}
}
