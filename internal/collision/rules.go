package collision

// Rules is a per-mover collision override table.
//
// Tags maps a tag to whether pairs involving a body carrying it are checked.
// The most specific tag of the candidate with an entry decides; candidates
// with no matching entry are checked. IgnoreBounds lets the mover leave the
// level rectangle.
type Rules struct {
	Tags         map[Tag]bool
	IgnoreBounds bool
}

// Check reports whether a candidate with lineage l should be tested.
func (r Rules) Check(l Lineage) bool {
	if len(r.Tags) == 0 {
		return true
	}
	for _, t := range l.order {
		if v, ok := r.Tags[t]; ok {
			return v
		}
	}
	return true
}

// With returns a copy of r with one more entry.
func (r Rules) With(t Tag, check bool) Rules {
	tags := make(map[Tag]bool, len(r.Tags)+1)
	for k, v := range r.Tags {
		tags[k] = v
	}
	tags[t] = check
	return Rules{Tags: tags, IgnoreBounds: r.IgnoreBounds}
}
