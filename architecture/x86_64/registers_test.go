package x86_64_test

import (
	"testing"

	"github.com/ferrocore/x86asm/architecture/x86_64"
)

// TestRegisterGPR tests all 16 general-purpose registers.
func TestRegisterGPR(t *testing.T) {
	tests := []struct {
		name     string
		reg      x86_64.Register
		wantName string
		wantEnc  byte
	}{
		{"RAX", x86_64.RAX, "rax", 0},
		{"RCX", x86_64.RCX, "rcx", 1},
		{"RDX", x86_64.RDX, "rdx", 2},
		{"RBX", x86_64.RBX, "rbx", 3},
		{"RSP", x86_64.RSP, "rsp", 4},
		{"RBP", x86_64.RBP, "rbp", 5},
		{"RSI", x86_64.RSI, "rsi", 6},
		{"RDI", x86_64.RDI, "rdi", 7},
		{"R8", x86_64.R8, "r8", 8},
		{"R9", x86_64.R9, "r9", 9},
		{"R10", x86_64.R10, "r10", 10},
		{"R11", x86_64.R11, "r11", 11},
		{"R12", x86_64.R12, "r12", 12},
		{"R13", x86_64.R13, "r13", 13},
		{"R14", x86_64.R14, "r14", 14},
		{"R15", x86_64.R15, "r15", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.reg.Name != tt.wantName {
				t.Errorf("Name = %v, want %v", tt.reg.Name, tt.wantName)
			}
			if tt.reg.Encoding != tt.wantEnc {
				t.Errorf("Encoding = %v, want %v", tt.reg.Encoding, tt.wantEnc)
			}
			if tt.reg.Type != x86_64.RegisterGPR {
				t.Errorf("Type = %v, want RegisterGPR", tt.reg.Type)
			}
		})
	}
}

// TestRegisterExtended verifies that only indices 8..15 are flagged extended.
func TestRegisterExtended(t *testing.T) {
	if x86_64.RAX.Extended() {
		t.Errorf("RAX.Extended() = true, want false")
	}
	if x86_64.RDI.Extended() {
		t.Errorf("RDI.Extended() = true, want false")
	}
	if !x86_64.R8.Extended() {
		t.Errorf("R8.Extended() = false, want true")
	}
	if !x86_64.R15.Extended() {
		t.Errorf("R15.Extended() = false, want true")
	}
	if !x86_64.XMM8.Extended() {
		t.Errorf("XMM8.Extended() = false, want true")
	}
}

func TestRegisterXMM(t *testing.T) {
	if x86_64.XMM0.Type != x86_64.RegisterXMM {
		t.Errorf("XMM0.Type = %v, want RegisterXMM", x86_64.XMM0.Type)
	}
	if x86_64.XMM15.Encoding != 15 {
		t.Errorf("XMM15.Encoding = %v, want 15", x86_64.XMM15.Encoding)
	}
}

func TestRegisterX87(t *testing.T) {
	if x86_64.ST0.Type != x86_64.RegisterX87 {
		t.Errorf("ST0.Type = %v, want RegisterX87", x86_64.ST0.Type)
	}
	if x86_64.ST7.Encoding != 7 {
		t.Errorf("ST7.Encoding = %v, want 7", x86_64.ST7.Encoding)
	}
	if x86_64.ST7.Extended() {
		t.Errorf("ST7.Extended() = true, want false (x87 has no REX extension)")
	}
}

func TestRegistersByName(t *testing.T) {
	if got := x86_64.RegistersByName["rax"]; got != x86_64.RAX {
		t.Errorf("RegistersByName[rax] = %v, want RAX", got)
	}
	if got := x86_64.RegistersByName["xmm8"]; got != x86_64.XMM8 {
		t.Errorf("RegistersByName[xmm8] = %v, want XMM8", got)
	}
	if got := x86_64.RegistersByName["st3"]; got != x86_64.ST3 {
		t.Errorf("RegistersByName[st3] = %v, want ST3", got)
	}
}
