package x86_64

import "fmt"

// x87 instructions never carry a REX byte: ST(0)..ST(7) are a 3-bit stack
// index with no extended forms.

type x87Form struct {
	opcode byte
	digit  byte
}

var x87Forms = map[string]x87Form{
	"FLD":   {0xD9, 0},
	"FST":   {0xDD, 2},
	"FSTP":  {0xDD, 3},
	"FADD":  {0xD8, 0},
	"FMUL":  {0xD8, 1},
	"FCOM":  {0xD8, 2},
	"FCOMP": {0xD8, 3},
	"FSUB":  {0xD8, 4},
	"FDIV":  {0xD8, 6},
}

// EmitX87 writes one of the single-register x87 stack forms above:
// opcode ModR/M(mode=11, digit, rm=st.Encoding), no REX.
func (b *Buffer) EmitX87(mnemonic string, st Register) error {
	form, ok := x87Forms[mnemonic]
	if !ok {
		return fmt.Errorf("x86_64: %q is not a valid single-register x87 mnemonic", mnemonic)
	}
	b.WriteByte(form.opcode)
	b.WriteByte(modrmDigit(form.digit, st))
	return nil
}

// x87ZeroOperand holds the two fixed bytes of each zero-operand x87
// instruction: 0xD9 followed by a literal second byte.
var x87ZeroOperand = map[string]byte{
	"FCHS":  0xE0,
	"FABS":  0xE1,
	"FSQRT": 0xFA,
	"FSIN":  0xFE,
	"FCOS":  0xFF,
}

// EmitX87ZeroOperand writes one of FCHS/FABS/FSQRT/FSIN/FCOS.
func (b *Buffer) EmitX87ZeroOperand(mnemonic string) error {
	second, ok := x87ZeroOperand[mnemonic]
	if !ok {
		return fmt.Errorf("x86_64: %q is not a valid zero-operand x87 mnemonic", mnemonic)
	}
	b.WriteByte(0xD9)
	b.WriteByte(second)
	return nil
}
