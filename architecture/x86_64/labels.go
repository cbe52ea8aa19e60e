package x86_64

import (
	"fmt"

	"github.com/ferrocore/x86asm/internal/diagnostics"
)

// LabelID opaquely names a branch destination within one Buffer. Allocated
// by NewLabel, bound to a byte offset by DefineLabel, referenced by zero or
// more pending branches.
type LabelID int

// BranchKind enumerates every branch a Buffer can track for fix-up and
// shortening. It determines opcode selection, instruction length, and
// whether a short form exists at all.
type BranchKind int

const (
	Call BranchKind = iota
	Jmp
	Je
	Jne
	Jg
	Jl
	Jge
	Jle
	Ja
	Jb
	Jae
	Jbe
)

// String names a branch kind for diagnostics.
func (k BranchKind) String() string {
	if s, ok := branchNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

var branchNames = map[BranchKind]string{
	Call: "CALL", Jmp: "JMP",
	Je: "JE", Jne: "JNE", Jg: "JG", Jl: "JL", Jge: "JGE", Jle: "JLE",
	Ja: "JA", Jb: "JB", Jae: "JAE", Jbe: "JBE",
}

// longOpcode is the long-form (32-bit displacement) opcode sequence for a
// branch kind: one byte for CALL/JMP, two bytes (0x0F + secondary) for
// conditional jumps.
var longOpcode = map[BranchKind][]byte{
	Call: {0xE8},
	Jmp:  {0xE9},
	Je:   {0x0F, 0x84},
	Jne:  {0x0F, 0x85},
	Jg:   {0x0F, 0x8F},
	Jl:   {0x0F, 0x8C},
	Jge:  {0x0F, 0x8D},
	Jle:  {0x0F, 0x8E},
	Ja:   {0x0F, 0x87},
	Jb:   {0x0F, 0x82},
	Jae:  {0x0F, 0x83},
	Jbe:  {0x0F, 0x86},
}

// shortOpcode is the short-form (8-bit displacement) opcode byte for every
// shortenable branch kind. CALL has no entry: it never shortens.
var shortOpcode = map[BranchKind]byte{
	Jmp: 0xEB,
	Je:  0x74, Jne: 0x75, Jg: 0x7F, Jl: 0x7C, Jge: 0x7D, Jle: 0x7E,
	Ja: 0x77, Jb: 0x72, Jae: 0x73, Jbe: 0x76,
}

// shortenable reports whether kind has a documented short form. CALL is the
// one kind that never shortens regardless of computed distance.
func (k BranchKind) shortenable() bool {
	_, ok := shortOpcode[k]
	return ok
}

// longLen is the encoded length of a branch's long form: 5 bytes for
// CALL/JMP (1 opcode + 4 displacement), 6 bytes for conditional jumps (2
// opcode + 4 displacement).
func (k BranchKind) longLen() int {
	return len(longOpcode[k]) + 4
}

// PendingBranch is a fix-up site recorded when a branch targets a label
// that is not yet (or may not yet be) defined: the offset of the branch's
// first opcode byte, the label it targets, its kind, and its currently
// encoded byte length (5 or 6 until shortened to 2).
type PendingBranch struct {
	Site   int
	Target LabelID
	Kind   BranchKind
	Length int
}

// NewLabel allocates a monotonically increasing label id. It does not
// modify the byte stream.
func (b *Buffer) NewLabel() LabelID {
	id := b.nextID
	b.nextID++
	return id
}

// DefineLabel binds id to the buffer's current length. It is an error to
// define the same id twice; defining a label before any branch references
// it is not an error.
func (b *Buffer) DefineLabel(id LabelID) error {
	if _, exists := b.labels[id]; exists {
		if b.diag != nil {
			b.diag.Error(diagnostics.At(b.Len()), fmt.Sprintf("duplicate definition of label %d", id))
		}
		return fmt.Errorf("x86_64: label %d already defined", id)
	}
	b.labels[id] = b.Len()
	b.trace(fmt.Sprintf("label %d defined at offset %d", id, b.Len()))
	return nil
}

// emitBranch writes a branch's long form (opcode bytes plus four placeholder
// bytes) and records a pending fix-up entry. Every control-flow emit
// function that takes a LabelID target funnels through this helper.
func (b *Buffer) emitBranch(kind BranchKind, target LabelID) {
	site := b.Len()
	b.WriteBytes(longOpcode[kind])
	b.WriteI32LE(0) // placeholder, patched by ResolveAll/Shorten
	b.pending = append(b.pending, PendingBranch{
		Site:   site,
		Target: target,
		Kind:   kind,
		Length: kind.longLen(),
	})
}

// Pending returns the current pending-branch list, for external object-file
// emitters that need to distinguish intra-buffer fix-ups from relocations
// against undefined external symbols.
func (b *Buffer) Pending() []PendingBranch {
	result := make([]PendingBranch, len(b.pending))
	copy(result, b.pending)
	return result
}

// Labels returns the current label table, offset keyed by id.
func (b *Buffer) Labels() map[LabelID]int {
	result := make(map[LabelID]int, len(b.labels))
	for id, offset := range b.labels {
		result[id] = offset
	}
	return result
}

// ResolveAll fixes up every pending branch's displacement bytes in place.
// For each entry it computes target_offset - (site + length) and writes it
// as a little-endian signed 32-bit integer into the four bytes immediately
// before site+length, or, for a branch already shortened to 2 bytes, as a
// single signed byte at site+1. Fails if any branch's target label is
// undefined.
func (b *Buffer) ResolveAll() error {
	for _, pb := range b.pending {
		target, ok := b.labels[pb.Target]
		if !ok {
			if b.diag != nil {
				b.diag.Error(diagnostics.At(pb.Site), fmt.Sprintf("undefined label %d referenced by %s", pb.Target, pb.Kind))
			}
			return fmt.Errorf("x86_64: undefined label %d referenced by %s at offset %d", pb.Target, pb.Kind, pb.Site)
		}
		distance := target - (pb.Site + pb.Length)
		if pb.Length == 2 {
			if distance < -128 || distance > 127 {
				return fmt.Errorf("x86_64: short branch at offset %d has out-of-range distance %d", pb.Site, distance)
			}
			if err := b.PatchAt(pb.Site+1, []byte{byte(int8(distance))}); err != nil {
				return err
			}
			continue
		}
		if err := b.patchI32At(pb.Site+pb.Length-4, int32(distance)); err != nil {
			return err
		}
	}
	b.trace("resolve_all complete")
	return nil
}
