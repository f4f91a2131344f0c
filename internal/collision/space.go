package collision

import "github.com/vovakirdan/bacon-invasion/internal/core"

// Body is anything that can take part in collision queries.
type Body interface {
	Box() core.Box
	Lineage() Lineage
	// Solid reports whether the body currently blocks movement.
	Solid() bool
	// Mask returns the body's pixel mask, or nil when it has none.
	Mask() *Mask
}

// Query describes one collision check.
type Query struct {
	Box        core.Box
	Mover      Body
	Exceptions []Body
	Rules      Rules
	// Detailed enables mask-level checks when both sides have a mask.
	Detailed bool
	// Mask is the mover's mask at Box; it defaults to Mover.Mask().
	Mask *Mask
}

// Space is one level's registry of collision bodies.
type Space struct {
	bounds core.Box
	owner  Body
	bodies []Body
}

// NewSpace creates a space with the given bounds. owner is reported as the
// blocker when a query leaves the bounds; when nil a bounds body is used.
func NewSpace(bounds core.Box, owner Body) *Space {
	s := &Space{bounds: bounds, owner: owner}
	if s.owner == nil {
		s.owner = &boundsBody{box: bounds}
	}
	return s
}

// Bounds returns the level rectangle.
func (s *Space) Bounds() core.Box { return s.bounds }

// Owner returns the body reported for bounds violations.
func (s *Space) Owner() Body { return s.owner }

// Register adds b. Registering a body twice is a no-op.
func (s *Space) Register(b Body) {
	if s.Contains(b) {
		return
	}
	s.bodies = append(s.bodies, b)
}

// Deregister removes b, keeping the order of the rest. It reports whether b was present.
func (s *Space) Deregister(b Body) bool {
	for i, cur := range s.bodies {
		if cur == b {
			copy(s.bodies[i:], s.bodies[i+1:])
			s.bodies[len(s.bodies)-1] = nil
			s.bodies = s.bodies[:len(s.bodies)-1]
			return true
		}
	}
	return false
}

// Contains reports whether b is registered.
func (s *Space) Contains(b Body) bool {
	for _, cur := range s.bodies {
		if cur == b {
			return true
		}
	}
	return false
}

// Len returns the number of registered bodies.
func (s *Space) Len() int { return len(s.bodies) }

// Bodies returns a snapshot of the registered bodies in registration order.
func (s *Space) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// InBounds reports whether box lies inside the level rectangle.
func (s *Space) InBounds(box core.Box) bool {
	return s.bounds.ContainsBox(box)
}

// Query returns the first body blocking q, or nil.
//
// Leaving the bounds reports the owner unless q.Rules.IgnoreBounds is set.
// Otherwise candidates are tested in registration order over a snapshot, so
// bodies that deregister while the caller reacts do not disturb the walk.
func (s *Space) Query(q Query) Body {
	if !q.Rules.IgnoreBounds && !s.InBounds(q.Box) {
		return s.owner
	}

	mask := q.Mask
	if mask == nil && q.Mover != nil {
		mask = q.Mover.Mask()
	}

	for _, b := range s.Bodies() {
		if b == q.Mover || !b.Solid() || excepted(b, q.Exceptions) {
			continue
		}
		if !q.Rules.Check(b.Lineage()) {
			continue
		}
		box := b.Box()
		if !box.Intersects(q.Box) {
			continue
		}
		other := b.Mask()
		if !q.Detailed || mask == nil || other == nil {
			return b
		}
		if other.Overlap(mask, offset(q.Box.X-box.X), offset(q.Box.Y-box.Y)) {
			return b
		}
	}
	return nil
}

// Overlapping returns every registered body whose box intersects box,
// solid or not, in registration order.
func (s *Space) Overlapping(box core.Box, skip Body) []Body {
	var out []Body
	for _, b := range s.Bodies() {
		if b != skip && b.Box().Intersects(box) {
			out = append(out, b)
		}
	}
	return out
}

func excepted(b Body, exceptions []Body) bool {
	for _, e := range exceptions {
		if e == b {
			return true
		}
	}
	return false
}

type boundsBody struct {
	box core.Box
}

func (b *boundsBody) Box() core.Box    { return b.box }
func (b *boundsBody) Lineage() Lineage { return Lineage{} }
func (b *boundsBody) Solid() bool      { return true }
func (b *boundsBody) Mask() *Mask      { return nil }
