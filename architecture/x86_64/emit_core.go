package x86_64

// This file holds the small set of byte-assembly helpers every Emit*
// method in this package builds on: a direct-register REX+opcode+ModR/M
// sequence, and its opcode-extension ("/digit") and mandatory-prefix
// variants. Keeping REX computed here and nowhere else means no emit
// function ever infers REX bits after the ModR/M byte has already gone out.

// emitRR writes [REX?] opcode... ModR/M(mode=11, reg, rm) for a two-register
// form, forcing REX.W when forceW is set (every 64-bit integer instruction).
func emitRR(b *Buffer, opcode []byte, reg, rm Register, forceW bool) {
	r := rexFor(reg, rm, forceW)
	if r.required() {
		b.WriteByte(r.byte())
	}
	b.WriteBytes(opcode)
	b.WriteByte(modrmReg(reg, rm))
}

// emitDigitRM writes [REX?] opcode... ModR/M(mode=11, digit, rm) for the
// "/digit" opcode-extension forms, where the reg field carries a literal
// digit instead of a register.
func emitDigitRM(b *Buffer, opcode []byte, digit byte, rm Register, forceW bool) {
	r := rexForRM(rm, forceW)
	if r.required() {
		b.WriteByte(r.byte())
	}
	b.WriteBytes(opcode)
	b.WriteByte(modrmDigit(digit, rm))
}

// emitPrefixedRR writes a mandatory legacy prefix (0x66/0xF2/0xF3) ahead of
// [REX?] opcode... ModR/M(mode=11, reg, rm), for SSE scalar/packed forms.
// REX.W is only forced when the instruction demands 64-bit GPR interaction
// (CVTSD2SI and friends); REX itself may still be required purely to reach
// an XMM8..15 operand.
func emitPrefixedRR(b *Buffer, prefix Prefix, opcode []byte, reg, rm Register, forceW bool) {
	if prefix != PrefixNone {
		b.WriteByte(byte(prefix))
	}
	emitRR(b, opcode, reg, rm, forceW)
}

// emitNoREX writes a fixed byte sequence with no REX prefix at all, for the
// handful of instructions that never take one (PAUSE, the fence family,
// SYSCALL, RET, bare NOP).
func emitNoREX(b *Buffer, opcode []byte) {
	b.WriteBytes(opcode)
}

// emitRD writes [REX?] (opcode base + register index low 3 bits), the
// "+rd" encoding used by MOV r64, imm64 and by PUSH/POP.
func emitRD(b *Buffer, base byte, reg Register, forceW bool) {
	r := rexForRM(reg, forceW)
	if r.required() {
		b.WriteByte(r.byte())
	}
	b.WriteByte(base + (reg.Encoding & 7))
}
