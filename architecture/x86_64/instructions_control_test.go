package x86_64

import "testing"

func TestEmitJmpIndirect(t *testing.T) {
	b := NewBuffer()
	b.EmitJmpIndirect(RAX)
	if got, want := b.FormatHex(), "FF E0"; got != want {
		t.Errorf("JMP RAX (indirect) = %q, want %q", got, want)
	}
	if got := len(b.Pending()); got != 0 {
		t.Errorf("indirect JMP must not be tracked as a pending branch, got %d entries", got)
	}
}

func TestEmitJccRejectsCallAndJmp(t *testing.T) {
	b := NewBuffer()
	l := b.NewLabel()
	if err := b.EmitJcc(Call, l); err == nil {
		t.Fatalf("expected EmitJcc to reject Call")
	}
	if err := b.EmitJcc(Jmp, l); err == nil {
		t.Fatalf("expected EmitJcc to reject Jmp")
	}
}

func TestEmitCallImm32BypassesLabelEngine(t *testing.T) {
	b := NewBuffer()
	b.EmitCallImm32(10)
	if got, want := b.FormatHex(), "E8 0A 00 00 00"; got != want {
		t.Errorf("EmitCallImm32(10) = %q, want %q", got, want)
	}
	if got := len(b.Pending()); got != 0 {
		t.Errorf("EmitCallImm32 must not register a pending branch, got %d entries", got)
	}
}
