package world

// Handle refers to an entity in the World. A handle goes stale when its
// entity is removed; a later entity reusing the slot gets a new generation.
// The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// Valid reports whether h was ever issued.
func (h Handle) Valid() bool { return h.gen != 0 }

type slot struct {
	gen    uint32
	entity Entity
}

// arena stores entities by slot with generation checks.
type arena struct {
	slots []slot
	free  []uint32
	live  int
}

func (a *arena) insert(e Entity) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	s.gen++
	s.entity = e
	a.live++
	return Handle{index: idx, gen: s.gen}
}

func (a *arena) get(h Handle) (Entity, bool) {
	if !h.Valid() || int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := a.slots[h.index]
	if s.gen != h.gen || s.entity == nil {
		return nil, false
	}
	return s.entity, true
}

func (a *arena) remove(h Handle) bool {
	if _, ok := a.get(h); !ok {
		return false
	}
	a.slots[h.index].entity = nil
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// snapshot returns the live entities in slot order.
func (a *arena) snapshot() []Entity {
	out := make([]Entity, 0, a.live)
	for _, s := range a.slots {
		if s.entity != nil {
			out = append(out, s.entity)
		}
	}
	return out
}

func (a *arena) len() int { return a.live }
