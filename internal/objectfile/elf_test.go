package objectfile_test

import (
	"encoding/binary"
	"testing"

	"github.com/ferrocore/x86asm/internal/objectfile"
)

func TestWriteProducesValidELFHeader(t *testing.T) {
	obj := &objectfile.Object{
		Sections: []objectfile.Section{
			objectfile.NewProgbitsSection(".text", []byte{0x48, 0x89, 0xD8, 0xC3}, 16, objectfile.ShfAlloc|objectfile.ShfExecinstr),
		},
		Symbols: []objectfile.Symbol{
			{Name: "main", Binding: objectfile.BindGlobal, Type: objectfile.TypeFunc, Section: 1, Value: 0, Size: 4},
		},
	}

	out, err := obj.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if len(out) < 64 {
		t.Fatalf("output too short to contain an ELF header: %d bytes", len(out))
	}
	if string(out[0:4]) != "\x7FELF" {
		t.Errorf("e_ident magic = %q, want \\x7FELF", out[0:4])
	}
	if out[4] != 2 {
		t.Errorf("EI_CLASS = %d, want 2 (ELFCLASS64)", out[4])
	}
	if out[5] != 1 {
		t.Errorf("EI_DATA = %d, want 1 (ELFDATA2LSB)", out[5])
	}
	if got, want := binary.LittleEndian.Uint16(out[16:18]), uint16(1); got != want {
		t.Errorf("e_type = %d, want %d (ET_REL)", got, want)
	}
	if got, want := binary.LittleEndian.Uint16(out[18:20]), uint16(62); got != want {
		t.Errorf("e_machine = %d, want %d (EM_X86_64)", got, want)
	}
	if got, want := binary.LittleEndian.Uint16(out[58:60]), uint16(64); got != want {
		t.Errorf("e_shentsize = %d, want %d", got, want)
	}
}

func TestWriteRejectsRelocationsAgainstUnknownSection(t *testing.T) {
	obj := &objectfile.Object{
		Sections: []objectfile.Section{
			objectfile.NewProgbitsSection(".text", []byte{0x90}, 16, objectfile.ShfAlloc|objectfile.ShfExecinstr),
		},
		Relocations: map[string][]objectfile.Relocation{
			".data": {{Offset: 0, SymbolIndex: 1, Type: objectfile.RelX8664PC32, Addend: -4}},
		},
	}
	if _, err := obj.Write(); err == nil {
		t.Fatalf("expected an error for a relocation targeting an undeclared section")
	}
}

func TestWriteIncludesRelaSectionWhenRelocationsPresent(t *testing.T) {
	obj := &objectfile.Object{
		Sections: []objectfile.Section{
			objectfile.NewProgbitsSection(".text", []byte{0xE8, 0, 0, 0, 0}, 16, objectfile.ShfAlloc|objectfile.ShfExecinstr),
		},
		Symbols: []objectfile.Symbol{
			{Name: "extern_fn", Binding: objectfile.BindGlobal, Type: objectfile.TypeFunc, Section: 0},
		},
		Relocations: map[string][]objectfile.Relocation{
			".text": {{Offset: 1, SymbolIndex: 1, Type: objectfile.RelX8664PC32, Addend: -4}},
		},
	}
	out, err := obj.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty output")
	}
	// null, .text, .symtab, .strtab, .rela.text, .shstrtab
	if got, want := binary.LittleEndian.Uint16(out[60:62]), uint16(6); got != want {
		t.Errorf("e_shnum = %d, want %d (including .rela.text)", got, want)
	}
}
