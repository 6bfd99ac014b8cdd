package sampo

// InstType classifies a decoded instruction for the engine's EXECUTE dispatch.
type InstType uint8

const (
	InstALUReg   InstType = 0
	InstALUImm   InstType = 1
	InstLoad     InstType = 2
	InstStore    InstType = 3
	InstBranch   InstType = 4
	InstJump     InstType = 5
	InstJumpReg  InstType = 6
	InstShift    InstType = 7
	InstMulDiv   InstType = 8
	InstMisc     InstType = 9
	InstIO       InstType = 10
	InstSystem   InstType = 11
	InstExtended InstType = 12
	InstInvalid  InstType = 15
)

// Decoded is the full set of combinational control signals the decoder
// derives from an instruction word (and, for extended instructions, the
// second word).
type Decoded struct {
	InstType InstType

	Rd, Rs1, Rs2, Func uint8

	Imm8     int16 // sign-extended 8-bit immediate
	ImmByte  uint8 // raw unsigned low byte of the instruction (LUI)
	Offset8  int16 // sign-extended branch offset
	Offset12 int16 // sign-extended jump offset
	Imm16    uint16

	ALUOp      ALUOp
	ShiftFunc  ShiftFunc
	BranchCond BranchCond

	MemLoad, MemStore, MemByte, MemSigned bool
	RegWrite                              bool

	IsJump, IsBranch, IsCall, IsRet, IsExtended bool
	IsHalt, IsNop, IsEXX, IsEI, IsDI, IsReti     bool
	IsIOIn, IsIOOut, IOPortImm                  bool
	IsPush, IsPop                               bool
	IsLUI                                       bool
}

func sext8(b uint8) int16 { return int16(int8(b)) }

func sext12(v uint16) int16 {
	if v&0x800 != 0 {
		return int16(v | 0xF000)
	}
	return int16(v)
}

// Decode is the pure combinational decode of one instruction word. imm16 is
// the second word of an extended instruction; it is ignored otherwise.
func Decode(instr uint16, imm16 uint16) Decoded {
	opcode := Opcode((instr >> 12) & 0xF)
	rd := uint8((instr >> 8) & 0xF)
	rs1 := uint8((instr >> 4) & 0xF)
	rs2 := uint8(instr & 0xF)
	fn := uint8(instr & 0xF)
	imm8raw := uint8(instr & 0xFF)
	offset12raw := instr & 0xFFF

	d := Decoded{
		InstType:   InstInvalid,
		Rd:         rd,
		Rs1:        rs1,
		Rs2:        rs2,
		Func:       fn,
		Imm8:       sext8(imm8raw),
		ImmByte:    imm8raw,
		Offset8:    sext8(imm8raw),
		Offset12:   sext12(offset12raw),
		Imm16:      imm16,
		ALUOp:      ALUAdd,
		ShiftFunc:  ShiftFunc(fn),
		BranchCond: BranchCond(rd),
	}

	switch opcode {
	case OpADD:
		d.InstType, d.ALUOp, d.RegWrite = InstALUReg, ALUAdd, true
	case OpSUB:
		d.InstType, d.ALUOp, d.RegWrite = InstALUReg, ALUSub, true
	case OpAND:
		d.InstType, d.ALUOp, d.RegWrite = InstALUReg, ALUAnd, true
	case OpOR:
		d.InstType, d.ALUOp, d.RegWrite = InstALUReg, ALUOr, true
	case OpXOR:
		d.InstType, d.ALUOp, d.RegWrite = InstALUReg, ALUXor, true

	case OpADDI:
		d.InstType, d.ALUOp, d.RegWrite = InstALUImm, ALUAdd, true

	case OpLOAD:
		d.InstType, d.MemLoad, d.RegWrite = InstLoad, true, true
		switch LoadFunc(fn) {
		case LoadLB:
			d.MemByte, d.MemSigned = true, true
		case LoadLBU:
			d.MemByte, d.MemSigned = true, false
		case LoadLUI:
			// Documented behavior (core spec §4.1): LUI loads the byte
			// immediate into the upper half of rd rather than touching
			// memory. The original decoder instead reclassifies this as
			// a plain ALU_IMM identical to ADDI; that reading conflicts
			// with the spec's explicit prose and is not one of the
			// quirks §9 flags as intentionally preserved, so the
			// documented behavior wins here.
			d.MemLoad = false
			d.InstType = InstALUImm
			d.IsLUI = true
		}

	case OpSTORE:
		d.InstType, d.MemStore = InstStore, true
		if StoreFunc(fn) == StoreSB {
			d.MemByte = true
		}

	case OpBRANCH:
		d.InstType, d.IsBranch = InstBranch, true

	case OpJUMP:
		switch {
		case instr&0x0F0F == 0x0F00:
			d.InstType, d.IsJump = InstJumpReg, true
			if rs1 == 1 {
				d.IsRet = true
			}
		case fn == 1 && rd != 0:
			d.InstType, d.IsJump, d.IsCall, d.RegWrite = InstJumpReg, true, true, true
		default:
			d.InstType, d.IsJump = InstJump, true
		}

	case OpSHIFT:
		d.InstType, d.RegWrite = InstShift, true

	case OpMULDIV:
		d.InstType, d.RegWrite = InstMulDiv, true
		switch MulDivFunc(fn) {
		case MulDivMUL:
			d.ALUOp = ALUMul
		case MulDivMULH:
			d.ALUOp = ALUMulh
		case MulDivDIV:
			d.ALUOp = ALUDiv
		case MulDivREM:
			d.ALUOp = ALURem
		// MULHU/DIVU/REMU/DAA have no case in the original decoder and
		// fall through to the default alu_op (ADD) — preserved as-is.
		}

	case OpMISC:
		d.InstType = InstMisc
		switch MiscFunc(fn) {
		case MiscPUSH:
			d.IsPush = true
		case MiscPOP:
			d.IsPop, d.RegWrite = true, true
		case MiscCMP:
			d.ALUOp = ALUSub
		case MiscTEST:
			d.ALUOp = ALUAnd
		case MiscMOV:
			d.ALUOp, d.RegWrite = ALUPassB, true
		case MiscEXX:
			d.IsEXX = true
		case MiscGETF:
			d.RegWrite = true
		case MiscSETF:
			// handled directly by the engine; no decoder signal needed
		}

	case OpIO:
		d.InstType = InstIO
		switch IOFunc(fn) {
		case IOIni:
			d.IsIOIn, d.IOPortImm, d.RegWrite = true, true, true
		case IOOuti:
			d.IsIOOut, d.IOPortImm = true, true
		case IOIn:
			d.IsIOIn, d.RegWrite = true, true
		case IOOut:
			d.IsIOOut = true
		}

	case OpSYSTEM:
		d.InstType = InstSystem
		switch SystemFunc(rd) {
		case SysNOP:
			d.IsNop = true
		case SysHALT:
			d.IsHalt = true
		case SysDI:
			d.IsDI = true
		case SysEI:
			d.IsEI = true
		case SysRETI:
			d.IsReti = true
			// SWI/SCF/CCF recognized by nothing further: architecturally inert.
		}

	case OpEXTENDED:
		d.InstType, d.IsExtended = InstExtended, true
		switch ExtendedFunc(fn) {
		case ExtADDIX:
			d.ALUOp, d.RegWrite = ALUAdd, true
		case ExtSUBIX:
			d.ALUOp, d.RegWrite = ALUSub, true
		case ExtANDIX:
			d.ALUOp, d.RegWrite = ALUAnd, true
		case ExtORIX:
			d.ALUOp, d.RegWrite = ALUOr, true
		case ExtXORIX:
			d.ALUOp, d.RegWrite = ALUXor, true
		case ExtLWX:
			d.MemLoad, d.RegWrite = true, true
		case ExtSWX:
			d.MemStore = true
		case ExtLIX:
			d.ALUOp, d.RegWrite = ALUPassB, true
		case ExtJX:
			d.IsJump = true
		case ExtJALX:
			d.IsJump, d.IsCall, d.RegWrite = true, true, true
		case ExtCMPIX:
			d.ALUOp = ALUSub
		case ExtINX:
			d.IsIOIn, d.IOPortImm, d.RegWrite = true, true, true
		case ExtOUTX:
			d.IsIOOut, d.IOPortImm = true, true
			// ExtSLLX/ExtSRLX/ExtSRAX (0xD/0xE/0xF) and the DAA alias have
			// no case in the original decoder: they fall through to the
			// zero-value defaults above (alu_op=ADD, reg_write=false),
			// decoding identically to an inert ADDIX-shaped no-result op.
			// Preserved per core spec §9 ("treat as unspecified/reserved").
		}
	}

	return d
}

// EvalBranch evaluates the branch-taken predicate for cond given the current
// flags, per the table in core spec §4.5.
func EvalBranch(cond BranchCond, n, z, c, v bool) bool {
	switch cond {
	case BEQ:
		return z
	case BNE:
		return !z
	case BLT:
		return n != v
	case BGE:
		return n == v
	case BLTU:
		return !c
	case BGEU:
		return c
	case BMI:
		return n
	case BPL:
		return !n
	case BVS:
		return v
	case BVC:
		return !v
	case BCS:
		return c
	case BCC:
		return !c
	case BGT:
		return !z && (n == v)
	case BLE:
		return z || (n != v)
	case BHI:
		return c && !z
	case BLS:
		return !c || z
	default:
		return false
	}
}
