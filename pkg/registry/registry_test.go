package registry

import (
	"fmt"
	"testing"
)

type testItem struct {
	ID   string
	Name string
}

func TestBaseRegistry_Register(t *testing.T) {
	registry := NewBaseRegistry[testItem]()

	tests := []struct {
		name    string
		item    testItem
		wantErr bool
	}{
		{
			name:    "register valid item",
			item:    testItem{ID: "item-1", Name: "Item 1"},
			wantErr: false,
		},
		{
			name:    "register item with empty name",
			item:    testItem{ID: "", Name: "Item"},
			wantErr: true,
		},
		{
			name:    "register duplicate item",
			item:    testItem{ID: "item-1", Name: "Item 2"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registry.Register(tt.item.ID, tt.item)
			if (err != nil) != tt.wantErr {
				t.Errorf("BaseRegistry.Register() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBaseRegistry_Get(t *testing.T) {
	registry := NewBaseRegistry[testItem]()

	item := testItem{ID: "item-1", Name: "Item 1"}
	if err := registry.Register(item.ID, item); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	got, ok := registry.Get("item-1")
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if got.Name != "Item 1" {
		t.Errorf("Get() name = %v, want Item 1", got.Name)
	}

	if _, ok := registry.Get("missing"); ok {
		t.Error("Get() ok = true for missing item, want false")
	}
}

func TestBaseRegistry_ListAndCount(t *testing.T) {
	registry := NewBaseRegistry[testItem]()

	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("item-%d", i)
		if err := registry.Register(id, testItem{ID: id}); err != nil {
			t.Fatalf("Register(%s) error = %v", id, err)
		}
	}

	if got := registry.Count(); got != 3 {
		t.Errorf("Count() = %v, want 3", got)
	}
	if got := len(registry.List()); got != 3 {
		t.Errorf("len(List()) = %v, want 3", got)
	}
	if got := len(registry.Names()); got != 3 {
		t.Errorf("len(Names()) = %v, want 3", got)
	}
}

func TestBaseRegistry_Clear(t *testing.T) {
	registry := NewBaseRegistry[testItem]()

	if err := registry.Register("item-1", testItem{ID: "item-1"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	registry.Clear()

	if got := registry.Count(); got != 0 {
		t.Errorf("Count() after Clear() = %v, want 0", got)
	}
}
