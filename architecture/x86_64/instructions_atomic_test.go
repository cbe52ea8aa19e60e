package x86_64

import "testing"

func TestEmitLockADD(t *testing.T) {
	b := NewBuffer()
	b.EmitLockADD(RAX, RBX)
	if got, want := b.FormatHex(), "F0 48 01 D8"; got != want {
		t.Errorf("LOCK ADD RAX, RBX = %q, want %q", got, want)
	}
}

func TestEmitLockCMPXCHG(t *testing.T) {
	b := NewBuffer()
	b.EmitLockCMPXCHG(RAX, RBX)
	if got, want := b.FormatHex(), "F0 48 0F B1 D8"; got != want {
		t.Errorf("LOCK CMPXCHG RAX, RBX = %q, want %q", got, want)
	}
}

func TestEmitLockBTImm8RejectsBT(t *testing.T) {
	b := NewBuffer()
	if err := b.EmitLockBTImm8("BT", RAX, 3); err == nil {
		t.Fatalf("expected an error: BT has no locked form")
	}
}
