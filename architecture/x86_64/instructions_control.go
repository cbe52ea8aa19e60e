package x86_64

import "fmt"

// conditionalKinds is the set of branch kinds EmitJcc accepts; CALL and JMP
// have their own dedicated entry points.
var conditionalKinds = map[BranchKind]bool{
	Je: true, Jne: true, Jg: true, Jl: true, Jge: true, Jle: true,
	Ja: true, Jb: true, Jae: true, Jbe: true,
}

// EmitCall emits a CALL to a symbolic target, recording a pending branch
// for ResolveAll. CALL never participates in shortening.
func (b *Buffer) EmitCall(target LabelID) {
	b.emitBranch(Call, target)
}

// EmitJmp emits a JMP to a symbolic target, recording a pending branch for
// ResolveAll and Shorten.
func (b *Buffer) EmitJmp(target LabelID) {
	b.emitBranch(Jmp, target)
}

// EmitJcc emits a conditional jump of the given kind to a symbolic target.
func (b *Buffer) EmitJcc(kind BranchKind, target LabelID) error {
	if !conditionalKinds[kind] {
		return fmt.Errorf("x86_64: %s is not a conditional branch kind", kind)
	}
	b.emitBranch(kind, target)
	return nil
}

// EmitJmpIndirect writes [REX.B?] 0xFF /4 ModR/M(11, 4, reg): JMP r64. This
// form is never tracked as a pending branch and never participates in
// shortening; its target is a runtime register value, not a label.
func (b *Buffer) EmitJmpIndirect(reg Register) {
	emitDigitRM(b, []byte{0xFF}, 4, reg, false)
}

// EmitCallImm32 writes CALL rel32 with the displacement supplied directly
// rather than through a label. It is a low-level escape hatch: the core's
// label and shortening engine never sees or touches this branch, so the
// caller is responsible for computing disp correctly and this form is
// never rewritten to short form.
func (b *Buffer) EmitCallImm32(disp int32) {
	b.WriteByte(0xE8)
	b.WriteI32LE(disp)
}

// EmitJmpImm32 writes JMP rel32 with the displacement supplied directly.
// Like EmitCallImm32, this bypasses the label engine entirely.
func (b *Buffer) EmitJmpImm32(disp int32) {
	b.WriteByte(0xE9)
	b.WriteI32LE(disp)
}
