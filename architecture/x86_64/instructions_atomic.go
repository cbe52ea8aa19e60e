package x86_64

import "fmt"

// Each atomic variant in this package is the LOCK prefix byte (0xF0)
// prepended to the base encoding of the corresponding non-atomic
// instruction; LOCK itself carries no REX implications.

// EmitLockADD writes LOCK ADD r/m64, r64.
func (b *Buffer) EmitLockADD(dst, src Register) {
	b.WriteByte(byte(PrefixLock))
	b.EmitADD(dst, src)
}

// EmitLockSUB writes LOCK SUB r/m64, r64.
func (b *Buffer) EmitLockSUB(dst, src Register) {
	b.WriteByte(byte(PrefixLock))
	b.EmitSUB(dst, src)
}

// EmitLockAND writes LOCK AND r/m64, r64.
func (b *Buffer) EmitLockAND(dst, src Register) {
	b.WriteByte(byte(PrefixLock))
	b.EmitAND(dst, src)
}

// EmitLockOR writes LOCK OR r/m64, r64.
func (b *Buffer) EmitLockOR(dst, src Register) {
	b.WriteByte(byte(PrefixLock))
	b.EmitOR(dst, src)
}

// EmitLockXOR writes LOCK XOR r/m64, r64.
func (b *Buffer) EmitLockXOR(dst, src Register) {
	b.WriteByte(byte(PrefixLock))
	b.EmitXOR(dst, src)
}

// EmitLockINC writes LOCK INC r/m64.
func (b *Buffer) EmitLockINC(rm Register) {
	b.WriteByte(byte(PrefixLock))
	b.EmitINC(rm)
}

// EmitLockDEC writes LOCK DEC r/m64.
func (b *Buffer) EmitLockDEC(rm Register) {
	b.WriteByte(byte(PrefixLock))
	b.EmitDEC(rm)
}

// EmitLockXADD writes LOCK XADD r/m64, r64.
func (b *Buffer) EmitLockXADD(dst, src Register) {
	b.WriteByte(byte(PrefixLock))
	b.EmitXADD(dst, src)
}

// EmitLockCMPXCHG writes LOCK CMPXCHG r/m64, r64.
func (b *Buffer) EmitLockCMPXCHG(dst, src Register) {
	b.WriteByte(byte(PrefixLock))
	b.EmitCMPXCHG(dst, src)
}

// EmitLockCMPXCHG8B writes LOCK CMPXCHG8B m64.
func (b *Buffer) EmitLockCMPXCHG8B(rm Register) {
	b.WriteByte(byte(PrefixLock))
	b.EmitCMPXCHG8B(rm)
}

// EmitLockBTImm8 writes LOCK BTS/BTR/BTC r/m64, imm8. BT itself has no
// locked form since it never writes its operand.
func (b *Buffer) EmitLockBTImm8(mnemonic string, rm Register, bitIndex uint8) error {
	if mnemonic == "BT" {
		return fmt.Errorf("x86_64: BT has no locked form")
	}
	if _, ok := btDigit[mnemonic]; !ok {
		return fmt.Errorf("x86_64: %q is not a valid bit-test mnemonic", mnemonic)
	}
	b.WriteByte(byte(PrefixLock))
	return b.EmitBTImm8(mnemonic, rm, bitIndex)
}
