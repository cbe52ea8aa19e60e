package asm

// InstructionForm represents one concrete encoding of an instruction: its
// operand shape plus the fixed bytes the encoder must emit around the
// operand-dependent ModR/M, REX, and immediate bytes.
type InstructionForm struct {
	Operands []OperandSpec // Operand shape this form matches.
	Opcode   []byte        // Fixed opcode byte(s), not including any prefix.
	Digit    *byte         // Opcode-extension /digit carried in ModR/M.reg, nil when the reg field names a real register.
	ModRM    bool          // Whether a ModR/M byte follows the opcode.
	Imm      bool          // Whether an immediate/displacement follows.
	ImmBits  int           // Width of the trailing immediate, when Imm is set.
	REXW     bool          // Whether REX.W must be forced for this form.
	Prefix   byte          // Mandatory legacy prefix byte (0x66/0xF2/0xF3), 0 if none.
	NoREX    bool          // True for forms that must never carry a REX byte (PAUSE, fences).
}
