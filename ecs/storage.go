package ecs

// entityStore tracks generations and recycles freed ids.
type entityStore struct {
	gens []generation // indexed by id-1
	live []bool
	free []entityID
}

func (s *entityStore) create() Entity {
	if s == nil {
		return 0
	}
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		s.live = append(s.live, false)
		id = entityID(len(s.gens))
	}
	s.live[id-1] = true
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.alive(e) {
		return false
	}
	id := e.id()
	s.gens[id-1]++
	s.live[id-1] = false
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) alive(e Entity) bool {
	if s == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if int(id) > len(s.gens) {
		return false
	}
	return s.live[id-1] && s.gens[id-1] == e.generation()
}

// handle rebuilds the Entity for a live id, if any.
func (s *entityStore) handle(id entityID) (Entity, bool) {
	if s == nil || id == 0 || int(id) > len(s.gens) || !s.live[id-1] {
		return 0, false
	}
	return makeEntity(id, s.gens[id-1]), true
}

func (s *entityStore) count() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, l := range s.live {
		if l {
			n++
		}
	}
	return n
}

func (s *entityStore) each(fn func(Entity)) {
	if s == nil || fn == nil {
		return
	}
	for i, l := range s.live {
		if l {
			fn(makeEntity(entityID(i+1), s.gens[i]))
		}
	}
}
