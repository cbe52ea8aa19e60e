package objectfile

import "encoding/binary"

// RelX8664PC32 is R_X86_64_PC32: a PC-relative 32-bit relocation, the kind
// emitted for inter-module CALL/JMP sites whose target is an undefined
// external symbol at encode time.
const RelX8664PC32 = 2

// relocEntrySize is sizeof(Elf64_Rela).
const relocEntrySize = 24

// Relocation is one ELF64 RELA entry: the byte offset into the target
// section to patch, the symbol it resolves against (by index into the
// symbol table being built, index 0 reserved for the null symbol so real
// symbols start at 1), the relocation kind, and an addend.
//
// The PC32 convention used by inter-module CALL sites carries addend -4:
// the four placeholder bytes are read as part of the instruction that
// immediately follows them, so the relocated value must back up over
// them.
type Relocation struct {
	Offset      uint64
	SymbolIndex uint32
	Type        uint32
	Addend      int64
}

// rInfo packs a relocation's target symbol index and type into the single
// r_info field: (symbol_index << 32) | type.
func (r Relocation) rInfo() uint64 {
	return (uint64(r.SymbolIndex) << 32) | uint64(r.Type)
}

// EncodeRelocations renders relocations as a concatenation of Elf64_Rela
// entries.
func EncodeRelocations(relocations []Relocation) []byte {
	buf := make([]byte, 0, relocEntrySize*len(relocations))
	for _, r := range relocations {
		entry := make([]byte, relocEntrySize)
		binary.LittleEndian.PutUint64(entry[0:8], r.Offset)
		binary.LittleEndian.PutUint64(entry[8:16], r.rInfo())
		binary.LittleEndian.PutUint64(entry[16:24], uint64(r.Addend))
		buf = append(buf, entry...)
	}
	return buf
}
