package x86_64

import "fmt"

// This file covers the integer arithmetic, logic, and data-movement group:
// two-register forms, the immediate forms that multiplex through a ModR/M
// /digit, and the imm64/imm32 MOV variants.

// integerRRForms names each two-register instruction's fixed opcode bytes,
// keyed by mnemonic; the emit functions below and the catalog both read it.
var integerRRForms = map[string][]byte{
	"MOV":  {0x89},
	"ADD":  {0x01},
	"SUB":  {0x29},
	"AND":  {0x21},
	"OR":   {0x09},
	"XOR":  {0x31},
	"CMP":  {0x39},
	"TEST": {0x85},
	"XCHG": {0x87},
}

// EmitMOV: dst, src -> 0x89 ModR/M(reg=src, rm=dst). MOV(RAX, RBX) moves
// RBX into RAX, matching Intel syntax with the destination first.
func (b *Buffer) EmitMOV(dst, src Register) {
	emitRR(b, integerRRForms["MOV"], src, dst, true)
}

func (b *Buffer) EmitADD(dst, src Register) { emitRR(b, integerRRForms["ADD"], src, dst, true) }
func (b *Buffer) EmitSUB(dst, src Register) { emitRR(b, integerRRForms["SUB"], src, dst, true) }
func (b *Buffer) EmitAND(dst, src Register) { emitRR(b, integerRRForms["AND"], src, dst, true) }
func (b *Buffer) EmitOR(dst, src Register)  { emitRR(b, integerRRForms["OR"], src, dst, true) }
func (b *Buffer) EmitXOR(dst, src Register) { emitRR(b, integerRRForms["XOR"], src, dst, true) }
func (b *Buffer) EmitCMP(dst, src Register) { emitRR(b, integerRRForms["CMP"], src, dst, true) }

func (b *Buffer) EmitTEST(dst, src Register) { emitRR(b, integerRRForms["TEST"], src, dst, true) }
func (b *Buffer) EmitXCHG(dst, src Register) { emitRR(b, integerRRForms["XCHG"], src, dst, true) }

// EmitIMUL: dst, src -> 0x0F 0xAF ModR/M(reg=dst, rm=src). The two-operand
// form is the only one the core emits; IMUL's other encodings (one- and
// three-operand) are out of scope.
func (b *Buffer) EmitIMUL(dst, src Register) {
	emitRR(b, []byte{0x0F, 0xAF}, dst, src, true)
}

// EmitMOVImm64 writes the 0xB8+rd family: MOV r64, imm64, the only GPR form
// that carries a full 64-bit immediate.
func (b *Buffer) EmitMOVImm64(dst Register, imm uint64) {
	emitRD(b, 0xB8, dst, true)
	b.WriteU64LE(imm)
}

// EmitMOVImm32 writes 0xC7 /0 ModR/M imm32: MOV r/m64, imm32, sign-extended
// to 64 bits by the processor at execution time.
func (b *Buffer) EmitMOVImm32(dst Register, imm int32) {
	emitDigitRM(b, []byte{0xC7}, 0, dst, true)
	b.WriteI32LE(imm)
}

// arithImmDigit maps the immediate-arithmetic mnemonics onto their /digit
// in the 0x81 opcode family.
var arithImmDigit = map[string]byte{
	"ADD": 0, "OR": 1, "AND": 4, "SUB": 5, "XOR": 6, "CMP": 7,
}

// EmitArithImm32 writes 0x81 /digit ModR/M imm32 for one of
// ADD/OR/AND/SUB/XOR/CMP against a 32-bit immediate. The core always uses
// the imm32 form, even when an imm8 form would suffice, to keep the
// encoder deterministic and to avoid a second shortening-style pass over
// immediates.
func (b *Buffer) EmitArithImm32(mnemonic string, dst Register, imm int32) error {
	digit, ok := arithImmDigit[mnemonic]
	if !ok {
		return fmt.Errorf("x86_64: %q is not a valid immediate-arithmetic mnemonic", mnemonic)
	}
	emitDigitRM(b, []byte{0x81}, digit, dst, true)
	b.WriteI32LE(imm)
	return nil
}

// unaryF7Digit maps the 0xF7 opcode-extension family.
var unaryF7Digit = map[string]byte{
	"MUL": 4, "DIV": 6, "IDIV": 7, "NOT": 2, "NEG": 3,
}

// EmitUnaryF7 writes 0xF7 /digit ModR/M for MUL/DIV/IDIV/NOT/NEG r/m64.
func (b *Buffer) EmitUnaryF7(mnemonic string, rm Register) error {
	digit, ok := unaryF7Digit[mnemonic]
	if !ok {
		return fmt.Errorf("x86_64: %q is not a valid 0xF7 unary mnemonic", mnemonic)
	}
	emitDigitRM(b, []byte{0xF7}, digit, rm, true)
	return nil
}

// EmitINC writes 0xFF /0 ModR/M: INC r/m64.
func (b *Buffer) EmitINC(rm Register) { emitDigitRM(b, []byte{0xFF}, 0, rm, true) }

// EmitDEC writes 0xFF /1 ModR/M: DEC r/m64.
func (b *Buffer) EmitDEC(rm Register) { emitDigitRM(b, []byte{0xFF}, 1, rm, true) }

// EmitBSF writes 0x0F 0xBC ModR/M(reg=dst, rm=src): BSF r64, r/m64.
func (b *Buffer) EmitBSF(dst, src Register) { emitRR(b, []byte{0x0F, 0xBC}, dst, src, true) }

// EmitBSR writes 0x0F 0xBD ModR/M(reg=dst, rm=src): BSR r64, r/m64.
func (b *Buffer) EmitBSR(dst, src Register) { emitRR(b, []byte{0x0F, 0xBD}, dst, src, true) }

// btDigit maps BT/BTS/BTR/BTC onto their /digit in the 0x0F 0xBA family.
var btDigit = map[string]byte{"BT": 4, "BTS": 5, "BTR": 6, "BTC": 7}

// EmitBTImm8 writes 0x0F 0xBA /digit ModR/M imm8: BT/BTS/BTR/BTC r/m64, imm8.
func (b *Buffer) EmitBTImm8(mnemonic string, rm Register, bitIndex uint8) error {
	digit, ok := btDigit[mnemonic]
	if !ok {
		return fmt.Errorf("x86_64: %q is not a valid bit-test mnemonic", mnemonic)
	}
	emitDigitRM(b, []byte{0x0F, 0xBA}, digit, rm, true)
	b.WriteByte(bitIndex)
	return nil
}

// EmitCMPXCHG writes 0x0F 0xB1 ModR/M(reg=src, rm=dst): CMPXCHG r/m64, r64.
func (b *Buffer) EmitCMPXCHG(dst, src Register) { emitRR(b, []byte{0x0F, 0xB1}, src, dst, true) }

// EmitXADD writes 0x0F 0xC1 ModR/M(reg=src, rm=dst): XADD r/m64, r64.
func (b *Buffer) EmitXADD(dst, src Register) { emitRR(b, []byte{0x0F, 0xC1}, src, dst, true) }

// EmitCMPXCHG8B writes 0x0F 0xC7 /1 ModR/M: CMPXCHG8B m64 (operand given in
// direct-register form per this package's direct-addressing-only scope).
func (b *Buffer) EmitCMPXCHG8B(rm Register) { emitDigitRM(b, []byte{0x0F, 0xC7}, 1, rm, true) }

// EmitSYSCALL writes the fixed SYSCALL encoding, no REX.
func (b *Buffer) EmitSYSCALL() { emitNoREX(b, []byte{0x0F, 0x05}) }

// EmitRET writes the fixed near-RET encoding, no REX.
func (b *Buffer) EmitRET() { emitNoREX(b, []byte{0xC3}) }

// EmitNOP writes the single-byte NOP. For multi-byte NOPs use EmitNOPN.
func (b *Buffer) EmitNOP() { emitNoREX(b, []byte{0x90}) }

// EmitPUSH writes [REX.B?] 0x50+rd: PUSH r64.
func (b *Buffer) EmitPUSH(r Register) { emitRD(b, 0x50, r, false) }

// EmitPOP writes [REX.B?] 0x58+rd: POP r64.
func (b *Buffer) EmitPOP(r Register) { emitRD(b, 0x58, r, false) }

// EmitINT writes 0xCD ib: software interrupt with an 8-bit vector.
func (b *Buffer) EmitINT(vector uint8) {
	b.WriteByte(0xCD)
	b.WriteByte(vector)
}

// multiByteNop holds the Intel-recommended multi-byte NOP encodings for
// lengths 1..9, used by EmitNOPN to pad without disturbing decode alignment.
var multiByteNop = [10][]byte{
	1: {0x90},
	2: {0x66, 0x90},
	3: {0x0F, 0x1F, 0x00},
	4: {0x0F, 0x1F, 0x40, 0x00},
	5: {0x0F, 0x1F, 0x44, 0x00, 0x00},
	6: {0x66, 0x0F, 0x1F, 0x44, 0x00, 0x00},
	7: {0x0F, 0x1F, 0x80, 0x00, 0x00, 0x00, 0x00},
	8: {0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	9: {0x66, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
}

// EmitNOPN pads n bytes of NOP using the Intel-recommended multi-byte
// sequences, emitting 9-byte chunks and a smaller remainder for n > 9.
func (b *Buffer) EmitNOPN(n int) {
	for n > 9 {
		b.WriteBytes(multiByteNop[9])
		n -= 9
	}
	if n > 0 {
		b.WriteBytes(multiByteNop[n])
	}
}
