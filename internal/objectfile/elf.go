package objectfile

import (
	"encoding/binary"
	"fmt"
)

// ELF64 constants this writer needs. Only the relocatable-object subset of
// the format is implemented: one object always describes one compilation
// unit's worth of sections, symbols, and relocations.
const (
	etREL       = 1
	emX8664     = 62
	shdrSize    = 64
	ehdrSize    = 64
	shtNull     = 0
	shtProgbits = 1
	shtSymtab   = 2
	shtStrtab   = 3
	shtRela     = 4
	shtNobits   = 8

	ShfWrite     = 0x1
	ShfAlloc     = 0x2
	ShfExecinstr = 0x4
	ShfTLS       = 0x400
)

// Section is one named, byte-addressable chunk of the object: its raw
// contents (empty for .bss) and its alignment requirement.
type Section struct {
	Name     string
	Bytes    []byte
	Align    uint64
	Flags    uint64
	Type     uint32
	isBSS    bool
	reserved uint64 // for .bss/.tbss: byte size with no backing content
}

// NewProgbitsSection builds an ordinary allocated section (.text, .data,
// .tdata) carrying real bytes.
func NewProgbitsSection(name string, bytes []byte, align uint64, flags uint64) Section {
	return Section{Name: name, Bytes: bytes, Align: align, Flags: flags, Type: shtProgbits}
}

// NewNobitsSection builds a zero-initialized section (.bss, .tbss) that
// reserves size bytes without occupying file space.
func NewNobitsSection(name string, size uint64, align uint64, flags uint64) Section {
	return Section{Name: name, Align: align, Flags: flags, Type: shtNobits, isBSS: true, reserved: size}
}

// Object collects everything Write needs to serialize one relocatable
// ELF64 little-endian x86-64 object file: the caller's sections, a flat
// symbol table, and relocations keyed by the section they apply against
// (conventionally ".text", yielding ".rela.text").
type Object struct {
	Sections    []Section
	Symbols     []Symbol
	Relocations map[string][]Relocation
}

// elfHeader is Elf64_Ehdr, built once per Write call.
func elfHeader(shoff uint64, shnum, shstrndx uint16) []byte {
	buf := make([]byte, ehdrSize)
	copy(buf[0:4], []byte{0x7F, 'E', 'L', 'F'})
	buf[4] = 2 // ELFCLASS64
	buf[5] = 1 // ELFDATA2LSB
	buf[6] = 1 // EV_CURRENT
	// buf[7] EI_OSABI = 0 (System V), buf[8] EI_ABIVERSION = 0, rest padding.
	binary.LittleEndian.PutUint16(buf[16:18], etREL)
	binary.LittleEndian.PutUint16(buf[18:20], emX8664)
	binary.LittleEndian.PutUint32(buf[20:24], 1) // e_version
	// e_entry, e_phoff are 0 for a relocatable object.
	binary.LittleEndian.PutUint64(buf[40:48], shoff)
	binary.LittleEndian.PutUint16(buf[52:54], uint16(ehdrSize))
	// e_phentsize/e_phnum are 0.
	binary.LittleEndian.PutUint16(buf[58:60], uint16(shdrSize))
	binary.LittleEndian.PutUint16(buf[60:62], shnum)
	binary.LittleEndian.PutUint16(buf[62:64], shstrndx)
	return buf
}

// sectionHeader is one Elf64_Shdr.
func sectionHeader(nameOff uint32, shType uint32, flags, addr, offset, size uint64, link, info uint32, align, entsize uint64) []byte {
	buf := make([]byte, shdrSize)
	binary.LittleEndian.PutUint32(buf[0:4], nameOff)
	binary.LittleEndian.PutUint32(buf[4:8], shType)
	binary.LittleEndian.PutUint64(buf[8:16], flags)
	binary.LittleEndian.PutUint64(buf[16:24], addr)
	binary.LittleEndian.PutUint64(buf[24:32], offset)
	binary.LittleEndian.PutUint64(buf[32:40], size)
	binary.LittleEndian.PutUint32(buf[40:44], link)
	binary.LittleEndian.PutUint32(buf[44:48], info)
	binary.LittleEndian.PutUint64(buf[48:56], align)
	binary.LittleEndian.PutUint64(buf[56:64], entsize)
	return buf
}

func align(offset, alignment uint64) uint64 {
	if alignment <= 1 {
		return offset
	}
	rem := offset % alignment
	if rem == 0 {
		return offset
	}
	return offset + (alignment - rem)
}

// Write serializes the object into a complete ELF64 relocatable file. The
// section layout is: the null section, every caller-supplied section in
// the order given, then .symtab, .strtab, one .rela.<name> per non-empty
// relocation list, and finally .shstrtab.
func (o *Object) Write() ([]byte, error) {
	for name := range o.Relocations {
		found := false
		for _, s := range o.Sections {
			if s.Name == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("objectfile: relocations target unknown section %q", name)
		}
	}

	shstrtab := NewStringTable()
	strtab := NewStringTable()
	symtabBytes := EncodeSymbolTable(o.Symbols, strtab)

	type namedHeader struct {
		name    string
		shType  uint32
		flags   uint64
		content []byte
		size    uint64 // used instead of len(content) for NOBITS sections
		link    uint32
		info    uint32
		align   uint64
		entsize uint64
	}

	var headers []namedHeader
	headers = append(headers, namedHeader{}) // null section placeholder, fixed up below

	for _, s := range o.Sections {
		h := namedHeader{name: s.Name, shType: s.Type, flags: s.Flags, align: s.Align}
		if s.isBSS {
			h.size = s.reserved
		} else {
			h.content = s.Bytes
			h.size = uint64(len(s.Bytes))
		}
		headers = append(headers, h)
	}

	symtabIndex := uint32(len(headers))
	headers = append(headers, namedHeader{
		name: ".symtab", shType: shtSymtab, content: symtabBytes, size: uint64(len(symtabBytes)),
		align: 8, entsize: symtabEntrySize,
	})

	strtabIndex := uint32(len(headers))
	headers = append(headers, namedHeader{name: ".strtab", shType: shtStrtab, align: 1})

	for _, s := range o.Sections {
		relocs, ok := o.Relocations[s.Name]
		if !ok || len(relocs) == 0 {
			continue
		}
		relBytes := EncodeRelocations(relocs)
		var targetIndex uint32
		for i, h := range headers {
			if h.name == s.Name {
				targetIndex = uint32(i)
				break
			}
		}
		headers = append(headers, namedHeader{
			name: ".rela." + s.Name, shType: shtRela, content: relBytes, size: uint64(len(relBytes)),
			link: symtabIndex, info: targetIndex, align: 8, entsize: relocEntrySize,
		})
	}

	shstrtabIndex := uint32(len(headers))
	headers = append(headers, namedHeader{name: ".shstrtab", shType: shtStrtab, align: 1})

	// .symtab's sh_link names the string table it resolves against, and
	// sh_info names the index of the first global symbol; this writer
	// treats every symbol as potentially global and leaves sh_info at 0.
	headers[symtabIndex].link = strtabIndex

	nameOffsets := make([]uint32, len(headers))
	for i, h := range headers {
		if h.name != "" {
			nameOffsets[i] = shstrtab.Add(h.name)
		}
	}

	// .strtab's bytes are fixed once every symbol name has been registered
	// while encoding .symtab, above; .shstrtab's are fixed once every
	// section name has been registered, just above. Patch both headers
	// now that their real content is known, before laying anything out.
	headers[strtabIndex].content = strtab.Bytes()
	headers[strtabIndex].size = uint64(len(strtab.Bytes()))
	headers[shstrtabIndex].content = shstrtab.Bytes()
	headers[shstrtabIndex].size = uint64(len(shstrtab.Bytes()))

	// Lay out: ELF header, then every section's content (aligned; NOBITS
	// sections reserve no file space), then the section header table.
	offset := uint64(ehdrSize)
	contentOffsets := make([]uint64, len(headers))
	for i, h := range headers {
		if h.shType == shtNull {
			contentOffsets[i] = 0
			continue
		}
		a := h.align
		if a == 0 {
			a = 1
		}
		offset = align(offset, a)
		contentOffsets[i] = offset
		if h.shType != shtNobits {
			offset += h.size
		}
	}
	shoff := align(offset, 8)

	out := make([]byte, shoff)
	copy(out, elfHeader(shoff, uint16(len(headers)), uint16(shstrtabIndex)))
	for i, h := range headers {
		if h.shType == shtNull || h.shType == shtNobits {
			continue
		}
		copy(out[contentOffsets[i]:], h.content)
	}

	shdrs := make([]byte, 0, shdrSize*len(headers))
	for i, h := range headers {
		addr := uint64(0)
		fileOffset := contentOffsets[i]
		if h.shType == shtNull {
			shdrs = append(shdrs, make([]byte, shdrSize)...)
			continue
		}
		shdrs = append(shdrs, sectionHeader(nameOffsets[i], h.shType, h.flags, addr, fileOffset, h.size, h.link, h.info, h.align, h.entsize)...)
	}

	return append(out, shdrs...), nil
}
