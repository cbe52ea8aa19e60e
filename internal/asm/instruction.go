package asm

import "strconv"

// Instruction is a catalog entry describing every encoded form of one
// mnemonic. It exists purely for introspection and cross-checking: the
// encoder's Emit* functions do the actual byte production (catalog_test.go
// in the x86_64 package spot-checks the catalog against them).
type Instruction struct {
	Mnemonic     string                       // Instruction mnemonic (e.g., "MOV", "ADD")
	Forms        []InstructionForm            // Every encoded form of this mnemonic
	formsByShape map[string][]InstructionForm // Cached forms by operand shape signature
}

// shapeKey builds a cache key from an operand shape. Two forms collide on
// this key only when they'd also be ambiguous to a caller picking a form by
// operand kinds alone.
func shapeKey(operands []OperandSpec) string {
	key := make([]byte, 0, len(operands)*6)
	for i, op := range operands {
		if i > 0 {
			key = append(key, ',')
		}
		key = append(key, op.Kind.String()...)
		key = append(key, ':')
		key = strconv.AppendInt(key, int64(op.Bits), 10)
	}
	return string(key)
}

// formsByShapeUncached - helper function to find instruction forms by operand shape.
func (instr *Instruction) formsByShapeUncached(shape []OperandSpec) []InstructionForm {
	var matched []InstructionForm
	want := shapeKey(shape)
	for _, form := range instr.Forms {
		if shapeKey(form.Operands) == want {
			matched = append(matched, form)
		}
	}
	return matched
}

// Form retrieves the instruction form matching the given operand shape.
// When no matching form is found, an empty slice is returned.
func (instr *Instruction) Form(shape ...OperandSpec) []InstructionForm {
	key := shapeKey(shape)

	if instr.formsByShape != nil {
		if cached, ok := instr.formsByShape[key]; ok {
			return cached
		}
	}

	matched := instr.formsByShapeUncached(shape)
	if instr.formsByShape == nil {
		instr.formsByShape = make(map[string][]InstructionForm)
	}
	instr.formsByShape[key] = matched

	return matched
}
