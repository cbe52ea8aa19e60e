package x86_64

import "github.com/ferrocore/x86asm/internal/asm"

// This file assembles the package's instruction catalog purely for
// introspection: catalog_test.go checks that every group is present and
// non-empty, that the MOV entry's opcode matches what EmitMOV writes, and
// that the control group lists JE and CALL. The Emit* methods remain the
// only code path that actually produces bytes.

var gprForm = asm.OperandSpec{Kind: asm.OperandGPR, Bits: 64}
var xmmForm = asm.OperandSpec{Kind: asm.OperandXMM, Bits: 128}
var x87Form2 = asm.OperandSpec{Kind: asm.OperandX87, Bits: 80}
var imm32Form = asm.OperandSpec{Kind: asm.OperandImmediate, Bits: 32}
var imm64Form = asm.OperandSpec{Kind: asm.OperandImmediate, Bits: 64}
var relForm = asm.OperandSpec{Kind: asm.OperandRelative, Bits: 32}

func digitPtr(d byte) *byte { return &d }

type integerProvider struct{}

func (integerProvider) Group() string { return "integer" }

func (integerProvider) Provide() []asm.Instruction {
	instrs := make([]asm.Instruction, 0, len(integerRRForms)+4)
	for mnemonic, opcode := range integerRRForms {
		instrs = append(instrs, asm.Instruction{
			Mnemonic: mnemonic,
			Forms: []asm.InstructionForm{{
				Operands: []asm.OperandSpec{gprForm, gprForm},
				Opcode:   opcode,
				ModRM:    true,
				REXW:     true,
			}},
		})
	}
	for mnemonic, digit := range arithImmDigit {
		d := digit
		instrs = append(instrs, asm.Instruction{
			Mnemonic: mnemonic + "_IMM32",
			Forms: []asm.InstructionForm{{
				Operands: []asm.OperandSpec{gprForm, imm32Form},
				Opcode:   []byte{0x81},
				Digit:    digitPtr(d),
				ModRM:    true,
				Imm:      true,
				ImmBits:  32,
				REXW:     true,
			}},
		})
	}
	instrs = append(instrs,
		asm.Instruction{Mnemonic: "IMUL", Forms: []asm.InstructionForm{{
			Operands: []asm.OperandSpec{gprForm, gprForm}, Opcode: []byte{0x0F, 0xAF}, ModRM: true, REXW: true,
		}}},
		asm.Instruction{Mnemonic: "MOV_IMM64", Forms: []asm.InstructionForm{{
			Operands: []asm.OperandSpec{gprForm, imm64Form}, Opcode: []byte{0xB8}, Imm: true, ImmBits: 64, REXW: true,
		}}},
		asm.Instruction{Mnemonic: "MOV_IMM32", Forms: []asm.InstructionForm{{
			Operands: []asm.OperandSpec{gprForm, imm32Form}, Opcode: []byte{0xC7}, Digit: digitPtr(0), ModRM: true, Imm: true, ImmBits: 32, REXW: true,
		}}},
		asm.Instruction{Mnemonic: "RET", Forms: []asm.InstructionForm{{Opcode: []byte{0xC3}, NoREX: true}}},
		asm.Instruction{Mnemonic: "NOP", Forms: []asm.InstructionForm{{Opcode: []byte{0x90}, NoREX: true}}},
		asm.Instruction{Mnemonic: "SYSCALL", Forms: []asm.InstructionForm{{Opcode: []byte{0x0F, 0x05}, NoREX: true}}},
	)
	for mnemonic, digit := range unaryF7Digit {
		d := digit
		instrs = append(instrs, asm.Instruction{
			Mnemonic: mnemonic,
			Forms: []asm.InstructionForm{{
				Operands: []asm.OperandSpec{gprForm}, Opcode: []byte{0xF7}, Digit: digitPtr(d), ModRM: true, REXW: true,
			}},
		})
	}
	return instrs
}

type shiftProvider struct{}

func (shiftProvider) Group() string { return "shift" }

func (shiftProvider) Provide() []asm.Instruction {
	instrs := make([]asm.Instruction, 0, len(shiftDigit))
	for mnemonic, digit := range shiftDigit {
		d := digit
		instrs = append(instrs, asm.Instruction{
			Mnemonic: mnemonic,
			Forms: []asm.InstructionForm{{
				Operands: []asm.OperandSpec{gprForm, {Kind: asm.OperandImmediate, Bits: 8}},
				Opcode:   []byte{0xC1}, Digit: digitPtr(d), ModRM: true, Imm: true, ImmBits: 8, REXW: true,
			}},
		})
	}
	return instrs
}

type bitProvider struct{}

func (bitProvider) Group() string { return "bit" }

func (bitProvider) Provide() []asm.Instruction {
	instrs := []asm.Instruction{
		{Mnemonic: "BSF", Forms: []asm.InstructionForm{{Operands: []asm.OperandSpec{gprForm, gprForm}, Opcode: []byte{0x0F, 0xBC}, ModRM: true, REXW: true}}},
		{Mnemonic: "BSR", Forms: []asm.InstructionForm{{Operands: []asm.OperandSpec{gprForm, gprForm}, Opcode: []byte{0x0F, 0xBD}, ModRM: true, REXW: true}}},
	}
	for mnemonic, digit := range btDigit {
		d := digit
		instrs = append(instrs, asm.Instruction{
			Mnemonic: mnemonic,
			Forms: []asm.InstructionForm{{
				Operands: []asm.OperandSpec{gprForm, {Kind: asm.OperandImmediate, Bits: 8}},
				Opcode:   []byte{0x0F, 0xBA}, Digit: digitPtr(d), ModRM: true, Imm: true, ImmBits: 8, REXW: true,
			}},
		})
	}
	return instrs
}

type atomicProvider struct{}

func (atomicProvider) Group() string { return "atomic" }

func (atomicProvider) Provide() []asm.Instruction {
	return []asm.Instruction{
		{Mnemonic: "CMPXCHG", Forms: []asm.InstructionForm{{Operands: []asm.OperandSpec{gprForm, gprForm}, Opcode: []byte{0x0F, 0xB1}, ModRM: true, REXW: true}}},
		{Mnemonic: "XADD", Forms: []asm.InstructionForm{{Operands: []asm.OperandSpec{gprForm, gprForm}, Opcode: []byte{0x0F, 0xC1}, ModRM: true, REXW: true}}},
		{Mnemonic: "CMPXCHG8B", Forms: []asm.InstructionForm{{Operands: []asm.OperandSpec{gprForm}, Opcode: []byte{0x0F, 0xC7}, Digit: digitPtr(1), ModRM: true, REXW: true}}},
	}
}

type fenceProvider struct{}

func (fenceProvider) Group() string { return "fence" }

func (fenceProvider) Provide() []asm.Instruction {
	return []asm.Instruction{
		{Mnemonic: "MFENCE", Forms: []asm.InstructionForm{{Opcode: []byte{0x0F, 0xAE, 0xF0}, NoREX: true}}},
		{Mnemonic: "SFENCE", Forms: []asm.InstructionForm{{Opcode: []byte{0x0F, 0xAE, 0xF8}, NoREX: true}}},
		{Mnemonic: "LFENCE", Forms: []asm.InstructionForm{{Opcode: []byte{0x0F, 0xAE, 0xE8}, NoREX: true}}},
		{Mnemonic: "PAUSE", Forms: []asm.InstructionForm{{Opcode: []byte{0xF3, 0x90}, NoREX: true}}},
	}
}

type sseProvider struct{}

func (sseProvider) Group() string { return "sse" }

func (sseProvider) Provide() []asm.Instruction {
	instrs := make([]asm.Instruction, 0, len(sseForms))
	for mnemonic, form := range sseForms {
		instrs = append(instrs, asm.Instruction{
			Mnemonic: mnemonic,
			Forms: []asm.InstructionForm{{
				Operands: []asm.OperandSpec{xmmForm, xmmForm},
				Opcode:   form.opcode, ModRM: true, Prefix: byte(form.prefix),
			}},
		})
	}
	return instrs
}

type x87Provider struct{}

func (x87Provider) Group() string { return "x87" }

func (x87Provider) Provide() []asm.Instruction {
	instrs := make([]asm.Instruction, 0, len(x87Forms)+len(x87ZeroOperand))
	for mnemonic, form := range x87Forms {
		instrs = append(instrs, asm.Instruction{
			Mnemonic: mnemonic,
			Forms: []asm.InstructionForm{{
				Operands: []asm.OperandSpec{x87Form2}, Opcode: []byte{form.opcode}, Digit: digitPtr(form.digit), ModRM: true, NoREX: true,
			}},
		})
	}
	for mnemonic, second := range x87ZeroOperand {
		instrs = append(instrs, asm.Instruction{
			Mnemonic: mnemonic,
			Forms:    []asm.InstructionForm{{Opcode: []byte{0xD9, second}, NoREX: true}},
		})
	}
	return instrs
}

type controlProvider struct{}

func (controlProvider) Group() string { return "control" }

func (controlProvider) Provide() []asm.Instruction {
	instrs := []asm.Instruction{
		{Mnemonic: "CALL", Forms: []asm.InstructionForm{{Operands: []asm.OperandSpec{relForm}, Opcode: []byte{0xE8}, Imm: true, ImmBits: 32}}},
		{Mnemonic: "JMP", Forms: []asm.InstructionForm{{Operands: []asm.OperandSpec{relForm}, Opcode: []byte{0xE9}, Imm: true, ImmBits: 32}}},
	}
	for kind, opcode := range longOpcode {
		if kind == Call || kind == Jmp {
			continue
		}
		instrs = append(instrs, asm.Instruction{
			Mnemonic: kind.String(),
			Forms:    []asm.InstructionForm{{Operands: []asm.OperandSpec{relForm}, Opcode: opcode, Imm: true, ImmBits: 32}},
		})
	}
	return instrs
}

// Catalog builds the full instruction catalog by folding every group
// provider together, keyed by group name.
func Catalog() map[string]*asm.Group {
	return asm.Catalog(
		integerProvider{},
		shiftProvider{},
		bitProvider{},
		atomicProvider{},
		fenceProvider{},
		sseProvider{},
		x87Provider{},
		controlProvider{},
	)
}
