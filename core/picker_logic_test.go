package core

import (
	"errors"
	"testing"
)

func samplePicker() *Picker {
	return NewPicker([]PickerItem{
		{ID: "aws", Label: "Amazon Web Services"},
		{ID: "azure", Label: "Microsoft Azure"},
		{ID: "gcp", Label: "Google Cloud"},
	})
}

func TestPickerNavigationClamps(t *testing.T) {
	p := samplePicker()
	if res := p.HandleKey("up"); res.Action != PickerActionNone {
		t.Fatalf("up at top should be a no-op, got %v", res.Action)
	}
	p.HandleKey("j")
	p.HandleKey("down")
	if res := p.HandleKey("down"); res.Action != PickerActionNone || p.Cursor() != 2 {
		t.Fatalf("cursor should stop at the last item, cursor=%d", p.Cursor())
	}
	p.HandleKey("home")
	if p.Cursor() != 0 {
		t.Fatalf("home should jump to first item")
	}
	p.HandleKey("end")
	item, _ := p.CurrentItem()
	if item.ID != "gcp" {
		t.Fatalf("end should select last item, got %q", item.ID)
	}
}

func TestPickerEnterSelectsCurrent(t *testing.T) {
	p := samplePicker()
	p.HandleKey("j")
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.ID != "azure" {
		t.Fatalf("result = %+v", res)
	}
	if res := p.HandleKey("esc"); res.Action != PickerActionNone {
		t.Fatalf("esc action = %v, want none", res.Action)
	}
}

func TestPickerFilter(t *testing.T) {
	p := samplePicker()
	for _, k := range []string{"z", "u"} {
		if res := p.HandleKey(k); res.Action != PickerActionFiltered {
			t.Fatalf("typing should filter")
		}
	}
	items := p.Items()
	if len(items) != 1 || items[0].ID != "azure" {
		t.Fatalf("filtered = %+v", items)
	}
	p.HandleKey("backspace")
	p.HandleKey("backspace")
	if len(p.Items()) != 3 || p.Query() != "" {
		t.Fatalf("clearing the query should restore all items")
	}
}

func TestPickerFilterNoMatch(t *testing.T) {
	p := samplePicker()
	p.SetQuery("zzz")
	if _, ok := p.CurrentItem(); ok {
		t.Fatalf("no item should be current")
	}
	if res := p.HandleKey("enter"); res.Action != PickerActionNone {
		t.Fatalf("enter with no match should be a no-op")
	}
}

func TestPickerFocus(t *testing.T) {
	if err := NewPicker(nil).Focus(); !errors.Is(err, ErrNotFocusable) {
		t.Fatalf("empty picker focus err = %v", err)
	}
	var nilPicker *Picker
	if err := nilPicker.Focus(); !errors.Is(err, ErrNotFocusable) {
		t.Fatalf("nil picker focus err = %v", err)
	}
	p := samplePicker()
	if err := p.Focus(); err != nil || !p.Focused() {
		t.Fatalf("focus failed: %v", err)
	}
	p.Blur()
	if p.Focused() {
		t.Fatalf("blur should clear focus")
	}
}

func TestPickerWindowFollowsCursor(t *testing.T) {
	items := make([]PickerItem, 10)
	for i := range items {
		items[i] = PickerItem{ID: string(rune('a' + i)), Label: string(rune('a' + i))}
	}
	p := NewPicker(items)
	if off := p.Window(3); off != 0 {
		t.Fatalf("initial offset = %d", off)
	}
	for i := 0; i < 5; i++ {
		p.CursorDown()
	}
	if off := p.Window(3); off != 3 {
		t.Fatalf("offset = %d, want 3", off)
	}
	p.SetCursor(1)
	if off := p.Window(3); off != 1 {
		t.Fatalf("offset = %d, want 1", off)
	}
	if p.SetCursor(10) {
		t.Fatalf("out of range cursor should be rejected")
	}
	if _, ok := p.ItemAt(9); !ok {
		t.Fatalf("ItemAt(9) should exist")
	}
}
