package world

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when the inventory holds no matching item.
	ErrItemNotFound = errors.New("world: item not found")
	// ErrInventoryFull is returned when every slot is taken.
	ErrInventoryFull = errors.New("world: inventory full")
)

// Inventory is a fixed number of slots with one selected.
type Inventory struct {
	slots    []Item
	selected int
}

// NewInventory creates an inventory with n empty slots.
func NewInventory(n int) *Inventory {
	return &Inventory{slots: make([]Item, n), selected: -1}
}

// Slots returns the number of slots.
func (inv *Inventory) Slots() int { return len(inv.slots) }

// Item returns the item in slot i, or nil.
func (inv *Inventory) Item(i int) Item {
	if i < 0 || i >= len(inv.slots) {
		return nil
	}
	return inv.slots[i]
}

// Items returns the held items in slot order.
func (inv *Inventory) Items() []Item {
	var out []Item
	for _, it := range inv.slots {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// Add stores it. Stackable items merge into an existing stack of the same id.
// The first item added becomes the selection when nothing is selected.
func (inv *Inventory) Add(it Item) error {
	if s, ok := it.(Stackable); ok {
		for _, cur := range inv.slots {
			if cs, ok := cur.(Stackable); ok && cur.ID() == it.ID() && cur.Name() == it.Name() {
				cs.Stack(s.Count())
				return nil
			}
		}
	}
	for i, cur := range inv.slots {
		if cur == nil {
			inv.slots[i] = it
			if inv.selected < 0 {
				if _, consumable := it.(Consumable); !consumable {
					inv.selected = i
				}
			}
			return nil
		}
	}
	return fmt.Errorf("%w: cannot add %s", ErrInventoryFull, it.Name())
}

// CheckForNamedItem returns the slot of the first item called name.
func (inv *Inventory) CheckForNamedItem(name string) (int, error) {
	for i, it := range inv.slots {
		if it != nil && it.Name() == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrItemNotFound, name)
}

// Gun returns the held gun called name.
func (inv *Inventory) Gun(name string) (*Gun, bool) {
	for _, it := range inv.slots {
		if g, ok := it.(*Gun); ok && g.Name() == name {
			return g, true
		}
	}
	return nil, false
}

// Selected returns the selected item, or nil.
func (inv *Inventory) Selected() Item {
	return inv.Item(inv.selected)
}

// SelectedIndex returns the selected slot, or -1.
func (inv *Inventory) SelectedIndex() int { return inv.selected }

// Select picks slot i. Selecting a consumable uses it on p instead and
// leaves the selection as it was.
func (inv *Inventory) Select(i int, p *Player) error {
	it := inv.Item(i)
	if it == nil {
		return fmt.Errorf("%w: slot %d is empty", ErrItemNotFound, i)
	}
	if c, ok := it.(Consumable); ok {
		if c.Use(p) {
			inv.RemoveIndex(i)
		}
		return nil
	}
	inv.selected = i
	return nil
}

// Cycle moves the selection dir slots, skipping empty slots and consumables.
func (inv *Inventory) Cycle(dir int) {
	n := len(inv.slots)
	if n == 0 {
		return
	}
	start := inv.selected
	if start < 0 {
		start = 0
	}
	for step := 1; step <= n; step++ {
		i := ((start+dir*step)%n + n) % n
		it := inv.slots[i]
		if it == nil {
			continue
		}
		if _, ok := it.(Consumable); ok {
			continue
		}
		inv.selected = i
		return
	}
}

// RemoveIndex takes one item out of slot i. Stacks shrink by one and the
// slot empties when the last one goes.
func (inv *Inventory) RemoveIndex(i int) {
	it := inv.Item(i)
	if it == nil {
		return
	}
	if s, ok := it.(Stackable); ok && s.Count() > 1 {
		s.Stack(-1)
		return
	}
	inv.slots[i] = nil
	if inv.selected == i {
		inv.selected = -1
		inv.Cycle(1)
	}
}

// tick advances gun cooldowns and recharges the selected gun.
func (inv *Inventory) tick(dt float64) {
	for i, it := range inv.slots {
		if g, ok := it.(*Gun); ok {
			g.tick(dt, i == inv.selected)
		}
	}
}
