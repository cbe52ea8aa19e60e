package objectfile

import "encoding/binary"

// Symbol binding values, packed into the high nibble of st_info.
const (
	BindLocal  = 0
	BindGlobal = 1
	BindWeak   = 2
)

// Symbol type values, packed into the low nibble of st_info.
const (
	TypeNone    = 0
	TypeObject  = 1
	TypeFunc    = 2
	TypeSection = 3
	TypeFile    = 4
)

// Symbol is one ELF64 symbol table entry, keyed by name rather than a
// pre-resolved string-table offset: the table assigns offsets when it is
// encoded.
type Symbol struct {
	Name    string
	Binding byte
	Type    byte
	Section uint16 // section header index this symbol is defined in
	Value   uint64 // offset into Section
	Size    uint64
}

// stInfo packs binding and type into the single st_info byte: (binding<<4)
// | type.
func (s Symbol) stInfo() byte {
	return (s.Binding << 4) | (s.Type & 0x0F)
}

// symtabEntrySize is sizeof(Elf64_Sym).
const symtabEntrySize = 24

// EncodeSymbolTable renders symbols as a concatenation of Elf64_Sym
// entries, resolving each name through strtab (which gains any name it did
// not already hold). The null symbol (index 0) is always emitted first, as the
// ELF format requires.
func EncodeSymbolTable(symbols []Symbol, strtab *StringTable) []byte {
	buf := make([]byte, 0, symtabEntrySize*(len(symbols)+1))
	buf = append(buf, make([]byte, symtabEntrySize)...) // null symbol

	for _, sym := range symbols {
		nameOff := strtab.Add(sym.Name)
		entry := make([]byte, symtabEntrySize)
		binary.LittleEndian.PutUint32(entry[0:4], nameOff)
		entry[4] = sym.stInfo()
		entry[5] = 0 // st_other
		binary.LittleEndian.PutUint16(entry[6:8], sym.Section)
		binary.LittleEndian.PutUint64(entry[8:16], sym.Value)
		binary.LittleEndian.PutUint64(entry[16:24], sym.Size)
		buf = append(buf, entry...)
	}
	return buf
}
