package asm_test

import (
	"testing"

	"github.com/ferrocore/x86asm/internal/asm"
)

type stubProvider struct {
	name  string
	instr []asm.Instruction
}

func (p stubProvider) Group() string              { return p.name }
func (p stubProvider) Provide() []asm.Instruction { return p.instr }

func TestGroupFromSliceIndexesByMnemonic(t *testing.T) {
	g := asm.GroupFromSlice("Data Movement", []asm.Instruction{
		{Mnemonic: "MOV"},
		{Mnemonic: "XCHG"},
	})

	if g.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", g.Count())
	}
	if !g.Has("MOV") {
		t.Errorf("Has(MOV) = false, want true")
	}
	if g.Has("ADD") {
		t.Errorf("Has(ADD) = true, want false")
	}
}

func TestGroupPutAndGet(t *testing.T) {
	g := asm.GroupFromSlice("Arithmetic", nil)
	g.Put(asm.Instruction{Mnemonic: "ADD"})

	got := g.Get("ADD")
	if got == nil || got.Mnemonic != "ADD" {
		t.Fatalf("Get(ADD) = %v, want instruction ADD", got)
	}
	if g.Get("SUB") != nil {
		t.Errorf("Get(SUB) = non-nil, want nil")
	}
}

func TestGroupMerge(t *testing.T) {
	a := asm.GroupFromSlice("A", []asm.Instruction{{Mnemonic: "MOV"}})
	b := asm.GroupFromSlice("B", []asm.Instruction{{Mnemonic: "ADD"}})

	a.Merge(b)

	if !a.Has("MOV") || !a.Has("ADD") {
		t.Fatalf("merged group mnemonics = %v, want MOV and ADD", a.Mnemonics())
	}
}

func TestCatalogCollectsEveryProvider(t *testing.T) {
	catalog := asm.Catalog(
		stubProvider{name: "Data Movement", instr: []asm.Instruction{{Mnemonic: "MOV"}}},
		stubProvider{name: "Control Flow", instr: []asm.Instruction{{Mnemonic: "JMP"}}},
	)

	if len(catalog) != 2 {
		t.Fatalf("len(catalog) = %d, want 2", len(catalog))
	}
	if !catalog["Data Movement"].Has("MOV") {
		t.Errorf("Data Movement group missing MOV")
	}
	if !catalog["Control Flow"].Has("JMP") {
		t.Errorf("Control Flow group missing JMP")
	}
}
