package world

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bacon-invasion/internal/core"
	"github.com/vovakirdan/bacon-invasion/internal/levels"
)

func TestInventoryAdd(t *testing.T) {
	inv := NewInventory(3)
	medkit := func() Item { return &Medkit{stack: stack{id: ItemMedkit, name: "medkit", count: 1}, heal: 3} }

	if err := inv.Add(medkit()); err != nil {
		t.Fatalf("Add(medkit) failed: %v", err)
	}
	if inv.SelectedIndex() != -1 {
		t.Errorf("SelectedIndex() = %d, expected consumables never auto-selected", inv.SelectedIndex())
	}
	if err := inv.Add(medkit()); err != nil {
		t.Fatalf("Add(medkit) failed: %v", err)
	}
	if got := len(inv.Items()); got != 1 {
		t.Fatalf("Items() = %d, expected the medkits stacked in one slot", got)
	}
	if c := inv.Item(0).(Stackable).Count(); c != 2 {
		t.Errorf("Count() = %d, expected 2", c)
	}

	if err := inv.Add(&Key{id: ItemKey, name: "red"}); err != nil {
		t.Fatalf("Add(red) failed: %v", err)
	}
	if inv.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex() = %d, expected the key auto-selected", inv.SelectedIndex())
	}
	if err := inv.Add(&Key{id: ItemKey, name: "blue"}); err != nil {
		t.Fatalf("Add(blue) failed: %v", err)
	}
	if err := inv.Add(&Key{id: ItemKey, name: "green"}); !errors.Is(err, ErrInventoryFull) {
		t.Errorf("Add() to a full inventory error = %v, expected ErrInventoryFull", err)
	}
}

func TestInventoryLookup(t *testing.T) {
	inv := NewInventory(4)
	_ = inv.Add(&Key{id: ItemKey, name: "red"})
	_ = inv.Add(&Gun{id: ItemHandgun})

	tests := []struct {
		name  string
		item  string
		index int
		err   error
	}{
		{"key by name", "red", 0, nil},
		{"gun by name", "handgun", 1, nil},
		{"missing", "blue", -1, ErrItemNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			i, err := inv.CheckForNamedItem(tc.item)
			if i != tc.index || !errors.Is(err, tc.err) {
				t.Errorf("CheckForNamedItem(%s) = %d, %v, expected %d, %v", tc.item, i, err, tc.index, tc.err)
			}
		})
	}

	if _, ok := inv.Gun("handgun"); !ok {
		t.Error("Gun(handgun) not found")
	}
	if _, ok := inv.Gun("red"); ok {
		t.Error("Gun(red) found a key")
	}
	if inv.Item(-1) != nil || inv.Item(4) != nil {
		t.Error("Item() out of range returned an item")
	}
}

func TestInventoryCycle(t *testing.T) {
	inv := NewInventory(5)
	_ = inv.Add(&Gun{id: ItemHandgun})
	_ = inv.Add(&Medkit{stack: stack{id: ItemMedkit, name: "medkit", count: 1}})
	_ = inv.Add(&Gun{id: ItemShotgun})
	_ = inv.Add(&Gun{id: ItemRevolver})

	tests := []struct {
		name     string
		dir      int
		expected int
	}{
		{"skips the medkit", 1, 2},
		{"next", 1, 3},
		{"wraps forwards past the empty slot", 1, 0},
		{"wraps backwards", -1, 3},
		{"previous", -1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv.Cycle(tc.dir)
			if inv.SelectedIndex() != tc.expected {
				t.Errorf("SelectedIndex() = %d, expected %d", inv.SelectedIndex(), tc.expected)
			}
		})
	}
}

func TestInventorySelectAndRemove(t *testing.T) {
	w, _ := newTestWorld(t, testConfig(), lvl("A", 0, 0, 128, true))
	p := w.Player()
	inv := p.Inventory()
	kit, _ := w.CreateItem(ItemMedkit, ItemArgs{})
	kit.(Stackable).Stack(1)
	if err := inv.Add(kit); err != nil {
		t.Fatalf("Add(medkit) failed: %v", err)
	}
	slot, _ := inv.CheckForNamedItem("medkit")
	before := inv.SelectedIndex()

	// Full health keeps the kit.
	if err := inv.Select(slot, p); err != nil {
		t.Fatalf("Select(%d) failed: %v", slot, err)
	}
	if kit.(Stackable).Count() != 2 || inv.SelectedIndex() != before {
		t.Errorf("Count() = %d, SelectedIndex() = %d, expected 2 and %d", kit.(Stackable).Count(), inv.SelectedIndex(), before)
	}

	p.ChangeHealth(-5)
	_ = inv.Select(slot, p)
	if p.Health() != 8 || kit.(Stackable).Count() != 1 {
		t.Errorf("Health() = %v, Count() = %d, expected 8 and 1", p.Health(), kit.(Stackable).Count())
	}
	_ = inv.Select(slot, p)
	if inv.Item(slot) != nil {
		t.Error("last medkit left in its slot")
	}

	if err := inv.Select(slot, p); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Select(empty) error = %v, expected ErrItemNotFound", err)
	}

	// Removing the selected gun moves the selection on.
	sel := inv.SelectedIndex()
	inv.RemoveIndex(sel)
	if inv.Item(sel) != nil {
		t.Error("RemoveIndex() left the gun in place")
	}
	if inv.SelectedIndex() == sel || inv.Selected() == nil {
		t.Errorf("SelectedIndex() = %d, expected another gun", inv.SelectedIndex())
	}
}

func TestUseKeyConsumesFirstConsumable(t *testing.T) {
	var buf bytes.Buffer
	w, err := New(testConfig(), []levels.Level{lvl("A", 0, 0, 128, true)},
		WithLogger(log.New(&buf)), WithSeed(7))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	p := w.Player()
	inv := p.Inventory()
	kit, _ := w.CreateItem(ItemMedkit, ItemArgs{})
	if err := inv.Add(kit); err != nil {
		t.Fatalf("Add(medkit) failed: %v", err)
	}

	p.ChangeHealth(-5)
	w.Step(0.1, press(core.ActionUse))
	if p.Health() != 8 {
		t.Errorf("Health() = %v, expected 8", p.Health())
	}
	if _, err := inv.CheckForNamedItem("medkit"); err == nil {
		t.Error("medkit not used up")
	}

	// Nothing left to use.
	w.Step(0.1, core.NewInputFrame())
	w.Step(0.1, press(core.ActionUse))
	if p.Health() != 8 {
		t.Errorf("Health() = %v after an empty use, expected 8", p.Health())
	}
	if strings.Contains(buf.String(), "cannot use item") {
		t.Errorf("unexpected warning logged: %s", buf.String())
	}
}

func TestGunRecharge(t *testing.T) {
	cfg := testConfig()
	w, _ := newTestWorld(t, cfg, lvl("A", 0, 0, 128, true))
	p := w.Player()
	stun := selectGun(t, p, "stungun")
	stun.ammo = 0
	revolver, _ := p.Inventory().Gun("revolver")
	revolver.cooldown = 0.5

	steps(w, 10, press())

	if stun.Ammo() < 0.39 || stun.Ammo() > 0.41 {
		t.Errorf("stungun Ammo() = %v, expected about 0.4 after a second", stun.Ammo())
	}
	if revolver.Cooldown() != 0 {
		t.Errorf("revolver Cooldown() = %v, expected 0", revolver.Cooldown())
	}

	selectGun(t, p, "handgun")
	steps(w, 10, press())
	if stun.Ammo() > 0.41 {
		t.Errorf("stungun Ammo() = %v, expected no recharge while holstered", stun.Ammo())
	}
}
