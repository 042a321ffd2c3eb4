package tools

import (
	"testing"

	"github.com/repoqa/repoqa/pkg/llms"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	r.Register(llms.ToolDefinition{Name: "alpha", Description: "first"})

	def, ok := r.Get("alpha")
	if !ok {
		t.Fatal("Get(alpha) not found after Register")
	}
	if def.Description != "first" {
		t.Errorf("Description = %q, want %q", def.Description, "first")
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) = found, want not found")
	}
}

func TestRegistry_OverwriteKeepsSingleEntry(t *testing.T) {
	r := NewRegistry()

	r.Register(llms.ToolDefinition{Name: "alpha", Description: "first"})
	r.Register(llms.ToolDefinition{Name: "alpha", Description: "second"})

	if got := r.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}

	def, _ := r.Get("alpha")
	if def.Description != "second" {
		t.Errorf("Description = %q, want %q (last write wins)", def.Description, "second")
	}
}

func TestRegistry_AllPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()

	r.Register(llms.ToolDefinition{Name: "alpha"})
	r.Register(llms.ToolDefinition{Name: "beta"})
	r.Register(llms.ToolDefinition{Name: "gamma"})
	// Overwriting beta must not move it
	r.Register(llms.ToolDefinition{Name: "beta", Description: "updated"})

	all := r.All()
	want := []string{"alpha", "beta", "gamma"}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d tools, want %d", len(all), len(want))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("All()[%d].Name = %q, want %q", i, all[i].Name, name)
		}
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()

	r.Register(llms.ToolDefinition{Name: "alpha"})
	r.Clear()

	if got := r.Count(); got != 0 {
		t.Errorf("Count() after Clear = %d, want 0", got)
	}
	if _, ok := r.Get("alpha"); ok {
		t.Error("Get(alpha) = found after Clear, want not found")
	}
}
