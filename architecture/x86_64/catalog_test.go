package x86_64

import "testing"

func TestCatalogHasEveryGroup(t *testing.T) {
	catalog := Catalog()
	for _, name := range []string{"integer", "shift", "bit", "atomic", "fence", "sse", "x87", "control"} {
		group, ok := catalog[name]
		if !ok {
			t.Fatalf("catalog missing group %q", name)
		}
		if group.Count() == 0 {
			t.Errorf("group %q has no instructions", name)
		}
	}
}

func TestCatalogIntegerMOVMatchesEmit(t *testing.T) {
	catalog := Catalog()
	instr := catalog["integer"].Get("MOV")
	if instr == nil {
		t.Fatalf("catalog has no MOV entry")
	}
	if got, want := instr.Forms[0].Opcode[0], byte(0x89); got != want {
		t.Errorf("catalog MOV opcode = %#02x, want %#02x", got, want)
	}

	// EmitMOV(RAX, RBX) writes REX.W, then the opcode byte.
	b := NewBuffer()
	b.EmitMOV(RAX, RBX)
	if got, want := instr.Forms[0].Opcode[0], b.Bytes()[1]; got != want {
		t.Errorf("catalog MOV opcode = %#02x, EmitMOV wrote %#02x", got, want)
	}
}

func TestCatalogControlHasConditionalJumps(t *testing.T) {
	catalog := Catalog()
	if catalog["control"].Get("JE") == nil {
		t.Fatalf("catalog missing JE")
	}
	if catalog["control"].Get("CALL") == nil {
		t.Fatalf("catalog missing CALL")
	}
}
