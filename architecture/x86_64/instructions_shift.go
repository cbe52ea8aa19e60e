package x86_64

import "fmt"

// shiftDigit maps the shift/rotate mnemonics onto their /digit in the
// 0xD1/0xC1 opcode family. SAL is a second, undocumented alias the
// encoding table reserves at /6 distinct from SHL's /4.
var shiftDigit = map[string]byte{
	"SHL": 4, "SHR": 5, "SAL": 6, "SAR": 7,
	"ROL": 0, "ROR": 1, "RCL": 2, "RCR": 3,
}

// EmitShift writes a shift or rotate instruction. A count of exactly 1 uses
// the one-operand 0xD1 form; any other count uses the 0xC1 imm8 form. A
// count outside 0..63 is rejected at the emit boundary, per the error
// taxonomy's "invalid shift count" case.
func (b *Buffer) EmitShift(mnemonic string, rm Register, count uint8) error {
	digit, ok := shiftDigit[mnemonic]
	if !ok {
		return fmt.Errorf("x86_64: %q is not a valid shift/rotate mnemonic", mnemonic)
	}
	if count > 63 {
		return fmt.Errorf("x86_64: invalid shift count %d, must be in 0..63", count)
	}
	if count == 1 {
		emitDigitRM(b, []byte{0xD1}, digit, rm, true)
		return nil
	}
	emitDigitRM(b, []byte{0xC1}, digit, rm, true)
	b.WriteByte(count)
	return nil
}
