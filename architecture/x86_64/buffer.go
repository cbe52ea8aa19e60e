package x86_64

import (
	"fmt"
	"strings"

	"github.com/ferrocore/x86asm/internal/diagnostics"
)

// Buffer is an append-only sequence of machine-code bytes plus the
// bookkeeping the label and branch-shortening engine needs: a label table,
// a pending-branch list, and a label-id counter. A Buffer is an exclusive
// resource; concurrent use from multiple goroutines is undefined and must
// be serialised by the caller.
type Buffer struct {
	bytes []byte

	labels  map[LabelID]int
	nextID  LabelID
	pending []PendingBranch
	diag    *diagnostics.Context
}

// NewBuffer returns an empty Buffer ready for emit calls.
func NewBuffer() *Buffer {
	return &Buffer{
		labels: make(map[LabelID]int),
	}
}

// WithDiagnostics attaches a diagnostics context that every subsequent
// phase (encode, resolve, shorten) records entries into. Returns the
// receiver so it can be chained onto NewBuffer.
func (b *Buffer) WithDiagnostics(ctx *diagnostics.Context) *Buffer {
	b.diag = ctx
	return b
}

func (b *Buffer) trace(detail string) {
	if b.diag != nil {
		b.diag.Trace(diagnostics.At(len(b.bytes)), detail)
	}
}

// Len returns the current length of the byte stream.
func (b *Buffer) Len() int {
	return len(b.bytes)
}

// Bytes returns the current machine-code bytes. The caller must not mutate
// the returned slice.
func (b *Buffer) Bytes() []byte {
	return b.bytes
}

// FormatHex renders the buffer as space-separated uppercase two-digit hex
// pairs, preserving byte order. Used for diagnostic output only.
func (b *Buffer) FormatHex() string {
	var sb strings.Builder
	for i, by := range b.bytes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", by)
	}
	return sb.String()
}

// WriteByte appends one byte.
func (b *Buffer) WriteByte(v byte) {
	b.bytes = append(b.bytes, v)
}

// WriteBytes appends a raw byte sequence.
func (b *Buffer) WriteBytes(v []byte) {
	b.bytes = append(b.bytes, v...)
}

// WriteU16LE appends a little-endian 16-bit unsigned integer.
func (b *Buffer) WriteU16LE(v uint16) {
	b.bytes = append(b.bytes, byte(v), byte(v>>8))
}

// WriteU32LE appends a little-endian 32-bit unsigned integer.
func (b *Buffer) WriteU32LE(v uint32) {
	b.bytes = append(b.bytes, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// WriteU64LE appends a little-endian 64-bit unsigned integer.
func (b *Buffer) WriteU64LE(v uint64) {
	b.bytes = append(b.bytes,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

// WriteI32LE appends a little-endian signed 32-bit integer.
func (b *Buffer) WriteI32LE(v int32) {
	b.WriteU32LE(uint32(v))
}

// WriteI64LE appends a little-endian signed 64-bit integer.
func (b *Buffer) WriteI64LE(v int64) {
	b.WriteU64LE(uint64(v))
}

// PatchAt overwrites len(data) bytes starting at offset. The target range
// must lie entirely within the current buffer length; a patch beyond it is
// a caller bug and fails loudly rather than silently growing the buffer.
func (b *Buffer) PatchAt(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > len(b.bytes) {
		return fmt.Errorf("x86_64: patch at offset %d length %d out of range (buffer length %d)",
			offset, len(data), len(b.bytes))
	}
	copy(b.bytes[offset:], data)
	return nil
}

// patchI32At writes a little-endian signed 32-bit value at offset, used by
// ResolveAll and Shorten to fix up branch displacements.
func (b *Buffer) patchI32At(offset int, v int32) error {
	buf := [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	return b.PatchAt(offset, buf[:])
}
