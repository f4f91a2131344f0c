// Package collision provides the per-level index of solid bodies used by the
// movement resolver: type tags, override rules, pixel masks and Space.
package collision

import "strings"

// Tag identifies one category a body belongs to.
type Tag uint8

// TagSet is a bitset of tags.
type TagSet uint64

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	return s&(1<<t) != 0
}

// With returns the set with t added.
func (s TagSet) With(t Tag) TagSet {
	return s | 1<<t
}

// Lineage lists a body's tags from most specific (its concrete kind) to most
// general, alongside the same tags as a set.
type Lineage struct {
	order []Tag
	set   TagSet
}

// NewLineage builds a lineage. Tags must be given most specific first.
func NewLineage(tags ...Tag) Lineage {
	l := Lineage{order: make([]Tag, 0, len(tags))}
	for _, t := range tags {
		if t >= 64 {
			panic("collision: tag out of range")
		}
		if l.set.Has(t) {
			continue
		}
		l.order = append(l.order, t)
		l.set = l.set.With(t)
	}
	return l
}

// Tags returns the tags most specific first.
func (l Lineage) Tags() []Tag {
	out := make([]Tag, len(l.order))
	copy(out, l.order)
	return out
}

// Kind returns the most specific tag, or false for an empty lineage.
func (l Lineage) Kind() (Tag, bool) {
	if len(l.order) == 0 {
		return 0, false
	}
	return l.order[0], true
}

// Has reports whether the lineage includes t.
func (l Lineage) Has(t Tag) bool { return l.set.Has(t) }

// Set returns the lineage as a bitset.
func (l Lineage) Set() TagSet { return l.set }

// Extend returns a new lineage with more specific tags placed in front.
func (l Lineage) Extend(specific ...Tag) Lineage {
	return NewLineage(append(append([]Tag{}, specific...), l.order...)...)
}

// Format renders the lineage using names for display and logs.
func (l Lineage) Format(name func(Tag) string) string {
	parts := make([]string, len(l.order))
	for i, t := range l.order {
		parts[i] = name(t)
	}
	return strings.Join(parts, ">")
}
