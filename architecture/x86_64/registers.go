package x86_64

// RegisterType represents the register file a Register value belongs to.
type RegisterType int

const (
	RegisterGPR RegisterType = iota // one of the 16 64-bit general-purpose registers
	RegisterXMM                     // one of the 16 128-bit SSE registers
	RegisterX87                     // one of the 8 x87 FPU stack registers (ST0..ST7)
)

// Register is a value type naming one physical register. Encoding is the
// 0..15 (or 0..7 for x87) index the ISA uses; indices 8..15 require a REX
// extension bit to reach from the 3-bit ModR/M/SIB fields.
type Register struct {
	Name     string
	Type     RegisterType
	Encoding byte
}

// Extended reports whether this register's encoding needs a REX extension
// bit (REX.B, REX.R, or REX.X depending on which ModR/M/SIB field it names).
func (r Register) Extended() bool {
	return r.Encoding >= 8
}

// General Purpose Registers - 64-bit
var (
	RAX = Register{Name: "rax", Type: RegisterGPR, Encoding: 0}
	RCX = Register{Name: "rcx", Type: RegisterGPR, Encoding: 1}
	RDX = Register{Name: "rdx", Type: RegisterGPR, Encoding: 2}
	RBX = Register{Name: "rbx", Type: RegisterGPR, Encoding: 3}
	RSP = Register{Name: "rsp", Type: RegisterGPR, Encoding: 4}
	RBP = Register{Name: "rbp", Type: RegisterGPR, Encoding: 5}
	RSI = Register{Name: "rsi", Type: RegisterGPR, Encoding: 6}
	RDI = Register{Name: "rdi", Type: RegisterGPR, Encoding: 7}
	R8  = Register{Name: "r8", Type: RegisterGPR, Encoding: 8}
	R9  = Register{Name: "r9", Type: RegisterGPR, Encoding: 9}
	R10 = Register{Name: "r10", Type: RegisterGPR, Encoding: 10}
	R11 = Register{Name: "r11", Type: RegisterGPR, Encoding: 11}
	R12 = Register{Name: "r12", Type: RegisterGPR, Encoding: 12}
	R13 = Register{Name: "r13", Type: RegisterGPR, Encoding: 13}
	R14 = Register{Name: "r14", Type: RegisterGPR, Encoding: 14}
	R15 = Register{Name: "r15", Type: RegisterGPR, Encoding: 15}
)

// XMM Registers (128-bit SSE)
var (
	XMM0  = Register{Name: "xmm0", Type: RegisterXMM, Encoding: 0}
	XMM1  = Register{Name: "xmm1", Type: RegisterXMM, Encoding: 1}
	XMM2  = Register{Name: "xmm2", Type: RegisterXMM, Encoding: 2}
	XMM3  = Register{Name: "xmm3", Type: RegisterXMM, Encoding: 3}
	XMM4  = Register{Name: "xmm4", Type: RegisterXMM, Encoding: 4}
	XMM5  = Register{Name: "xmm5", Type: RegisterXMM, Encoding: 5}
	XMM6  = Register{Name: "xmm6", Type: RegisterXMM, Encoding: 6}
	XMM7  = Register{Name: "xmm7", Type: RegisterXMM, Encoding: 7}
	XMM8  = Register{Name: "xmm8", Type: RegisterXMM, Encoding: 8}
	XMM9  = Register{Name: "xmm9", Type: RegisterXMM, Encoding: 9}
	XMM10 = Register{Name: "xmm10", Type: RegisterXMM, Encoding: 10}
	XMM11 = Register{Name: "xmm11", Type: RegisterXMM, Encoding: 11}
	XMM12 = Register{Name: "xmm12", Type: RegisterXMM, Encoding: 12}
	XMM13 = Register{Name: "xmm13", Type: RegisterXMM, Encoding: 13}
	XMM14 = Register{Name: "xmm14", Type: RegisterXMM, Encoding: 14}
	XMM15 = Register{Name: "xmm15", Type: RegisterXMM, Encoding: 15}
)

// x87 FPU stack registers. These never carry a REX extension bit: the ISA
// gives them only a 3-bit index with no extended forms.
var (
	ST0 = Register{Name: "st0", Type: RegisterX87, Encoding: 0}
	ST1 = Register{Name: "st1", Type: RegisterX87, Encoding: 1}
	ST2 = Register{Name: "st2", Type: RegisterX87, Encoding: 2}
	ST3 = Register{Name: "st3", Type: RegisterX87, Encoding: 3}
	ST4 = Register{Name: "st4", Type: RegisterX87, Encoding: 4}
	ST5 = Register{Name: "st5", Type: RegisterX87, Encoding: 5}
	ST6 = Register{Name: "st6", Type: RegisterX87, Encoding: 6}
	ST7 = Register{Name: "st7", Type: RegisterX87, Encoding: 7}
)

// RegistersByName is a lookup table from lower-case register name to value,
// covering every GPR, XMM and x87 register defined above.
var RegistersByName = map[string]Register{
	"rax": RAX, "rcx": RCX, "rdx": RDX, "rbx": RBX,
	"rsp": RSP, "rbp": RBP, "rsi": RSI, "rdi": RDI,
	"r8": R8, "r9": R9, "r10": R10, "r11": R11,
	"r12": R12, "r13": R13, "r14": R14, "r15": R15,

	"xmm0": XMM0, "xmm1": XMM1, "xmm2": XMM2, "xmm3": XMM3,
	"xmm4": XMM4, "xmm5": XMM5, "xmm6": XMM6, "xmm7": XMM7,
	"xmm8": XMM8, "xmm9": XMM9, "xmm10": XMM10, "xmm11": XMM11,
	"xmm12": XMM12, "xmm13": XMM13, "xmm14": XMM14, "xmm15": XMM15,

	"st0": ST0, "st1": ST1, "st2": ST2, "st3": ST3,
	"st4": ST4, "st5": ST5, "st6": ST6, "st7": ST7,
}
