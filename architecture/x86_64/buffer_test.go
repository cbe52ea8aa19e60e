package x86_64

import "testing"

func TestBufferWriteByte(t *testing.T) {
	b := NewBuffer()
	b.WriteByte(0x90)
	b.WriteByte(0xC3)
	if got, want := b.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := b.FormatHex(), "90 C3"; got != want {
		t.Errorf("FormatHex() = %q, want %q", got, want)
	}
}

func TestBufferLittleEndianWrites(t *testing.T) {
	b := NewBuffer()
	b.WriteU32LE(0x2A)
	if got, want := b.FormatHex(), "2A 00 00 00"; got != want {
		t.Errorf("WriteU32LE(0x2A) = %q, want %q", got, want)
	}

	b2 := NewBuffer()
	b2.WriteU64LE(42)
	if got, want := b2.FormatHex(), "2A 00 00 00 00 00 00 00"; got != want {
		t.Errorf("WriteU64LE(42) = %q, want %q", got, want)
	}
}

func TestBufferPatchAt(t *testing.T) {
	b := NewBuffer()
	b.WriteBytes([]byte{0x00, 0x00, 0x00, 0x00})
	if err := b.PatchAt(0, []byte{0xFF, 0xFF}); err != nil {
		t.Fatalf("PatchAt returned error: %v", err)
	}
	if got, want := b.FormatHex(), "FF FF 00 00"; got != want {
		t.Errorf("after patch = %q, want %q", got, want)
	}
}

func TestBufferPatchAtOutOfRangeFails(t *testing.T) {
	b := NewBuffer()
	b.WriteBytes([]byte{0x00, 0x00})
	if err := b.PatchAt(1, []byte{0x01, 0x02}); err == nil {
		t.Fatalf("expected an error patching beyond buffer length")
	}
	if err := b.PatchAt(-1, []byte{0x01}); err == nil {
		t.Fatalf("expected an error patching at a negative offset")
	}
}

func TestBufferBytesReflectsLength(t *testing.T) {
	b := NewBuffer()
	b.WriteByte(0x90)
	b.WriteByte(0x90)
	b.WriteByte(0x90)
	if got, want := len(b.Bytes()), 3; got != want {
		t.Errorf("len(Bytes()) = %d, want %d", got, want)
	}
}
