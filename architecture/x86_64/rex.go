package x86_64

// rex holds the four extension bits that, together, form an optional REX
// prefix byte. It is built fresh for every instruction emit and consulted
// exactly once; no code ever infers REX bits after the ModR/M byte has been
// written.
type rex struct {
	W bool // 64-bit operand size override
	R bool // extends ModR/M.reg
	X bool // extends SIB.index
	B bool // extends ModR/M.rm, SIB.base, or an opcode's +rd register
}

// byte returns the encoded REX prefix byte: 0x40 with W/R/X/B packed into
// bits 3..0.
func (r rex) byte() byte {
	b := byte(PrefixREXBase)
	if r.W {
		b |= 1 << 3
	}
	if r.R {
		b |= 1 << 2
	}
	if r.X {
		b |= 1 << 1
	}
	if r.B {
		b |= 1 << 0
	}
	return b
}

// required reports whether any bit is set, i.e. whether the REX byte must
// actually be emitted.
func (r rex) required() bool {
	return r.W || r.R || r.X || r.B
}

// rexFor builds the REX spec for a direct-register ModR/M instruction: reg
// names the register in ModR/M.reg, rm names the register in ModR/M.rm.
// forceW forces REX.W regardless of either register's extension bit, as
// required for every 64-bit integer operand-size instruction.
func rexFor(reg, rm Register, forceW bool) rex {
	return rex{
		W: forceW,
		R: reg.Extended(),
		B: rm.Extended(),
	}
}

// rexForRM builds the REX spec for an instruction whose ModR/M.reg field
// holds an opcode-extension digit rather than a register, so only rm.B
// participates.
func rexForRM(rm Register, forceW bool) rex {
	return rex{W: forceW, B: rm.Extended()}
}
