// Package sampo implements the Sampo 16-bit RISC CPU core: opcode tables,
// ALU, barrel shifter, register file, decoder, and the cycle-level engine
// that sequences them over a synchronous memory and I/O bus.
package sampo

// Opcode is the 4-bit primary opcode in bits [15:12] of an instruction word.
type Opcode uint8

const (
	OpADD      Opcode = 0x0
	OpSUB      Opcode = 0x1
	OpAND      Opcode = 0x2
	OpOR       Opcode = 0x3
	OpXOR      Opcode = 0x4
	OpADDI     Opcode = 0x5
	OpLOAD     Opcode = 0x6
	OpSTORE    Opcode = 0x7
	OpBRANCH   Opcode = 0x8
	OpJUMP     Opcode = 0x9
	OpSHIFT    Opcode = 0xA
	OpMULDIV   Opcode = 0xB
	OpMISC     Opcode = 0xC
	OpIO       Opcode = 0xD
	OpSYSTEM   Opcode = 0xE
	OpEXTENDED Opcode = 0xF
)

// LoadFunc selects the LOAD opcode's sub-operation (bits [3:0]).
type LoadFunc uint8

const (
	LoadLW  LoadFunc = 0x0
	LoadLB  LoadFunc = 0x1
	LoadLBU LoadFunc = 0x2
	LoadLUI LoadFunc = 0x8
)

// StoreFunc selects the STORE opcode's sub-operation.
type StoreFunc uint8

const (
	StoreSW StoreFunc = 0x0
	StoreSB StoreFunc = 0x1
)

// BranchCond is the 4-bit condition code in the rd nibble of a BRANCH instruction.
type BranchCond uint8

const (
	BEQ  BranchCond = 0x0
	BNE  BranchCond = 0x1
	BLT  BranchCond = 0x2
	BGE  BranchCond = 0x3
	BLTU BranchCond = 0x4
	BGEU BranchCond = 0x5
	BMI  BranchCond = 0x6
	BPL  BranchCond = 0x7
	BVS  BranchCond = 0x8
	BVC  BranchCond = 0x9
	BCS  BranchCond = 0xA
	BCC  BranchCond = 0xB
	BGT  BranchCond = 0xC
	BLE  BranchCond = 0xD
	BHI  BranchCond = 0xE
	BLS  BranchCond = 0xF
)

// ShiftFunc selects one of sixteen shift/rotate variants for the SHIFT opcode.
type ShiftFunc uint8

const (
	ShiftSLL1 ShiftFunc = 0x0
	ShiftSRL1 ShiftFunc = 0x1
	ShiftSRA1 ShiftFunc = 0x2
	ShiftROL1 ShiftFunc = 0x3
	ShiftROR1 ShiftFunc = 0x4
	ShiftRCL1 ShiftFunc = 0x5
	ShiftRCR1 ShiftFunc = 0x6
	ShiftSWAP ShiftFunc = 0x7
	ShiftSLL4 ShiftFunc = 0x8
	ShiftSRL4 ShiftFunc = 0x9
	ShiftSRA4 ShiftFunc = 0xA
	ShiftROL4 ShiftFunc = 0xB
	ShiftSLL8 ShiftFunc = 0xC
	ShiftSRL8 ShiftFunc = 0xD
	ShiftSRA8 ShiftFunc = 0xE
	ShiftROL8 ShiftFunc = 0xF
)

// MulDivFunc selects the MULDIV opcode's sub-operation.
type MulDivFunc uint8

const (
	MulDivMUL   MulDivFunc = 0x0
	MulDivMULH  MulDivFunc = 0x1
	MulDivMULHU MulDivFunc = 0x2
	MulDivDIV   MulDivFunc = 0x3
	MulDivDIVU  MulDivFunc = 0x4
	MulDivREM   MulDivFunc = 0x5
	MulDivREMU  MulDivFunc = 0x6
	MulDivDAA   MulDivFunc = 0x7
)

// MiscFunc selects the MISC opcode's sub-operation.
type MiscFunc uint8

const (
	MiscPUSH MiscFunc = 0x0
	MiscPOP  MiscFunc = 0x1
	MiscCMP  MiscFunc = 0x2
	MiscTEST MiscFunc = 0x3
	MiscMOV  MiscFunc = 0x4
	MiscLDI  MiscFunc = 0x5
	MiscLDD  MiscFunc = 0x6
	MiscLDIR MiscFunc = 0x7
	MiscLDDR MiscFunc = 0x8
	MiscCPIR MiscFunc = 0x9
	MiscFILL MiscFunc = 0xA
	MiscEXX  MiscFunc = 0xB
	MiscGETF MiscFunc = 0xC
	MiscSETF MiscFunc = 0xD
)

// IOFunc selects the IO opcode's sub-operation.
type IOFunc uint8

const (
	IOIni  IOFunc = 0x0
	IOOuti IOFunc = 0x1
	IOIn   IOFunc = 0x2
	IOOut  IOFunc = 0x3
)

// SystemFunc is the sub-function carried in the rd nibble of a SYSTEM instruction.
type SystemFunc uint8

const (
	SysNOP  SystemFunc = 0x0
	SysHALT SystemFunc = 0x1
	SysDI   SystemFunc = 0x2
	SysEI   SystemFunc = 0x3
	SysRETI SystemFunc = 0x4
	SysSWI  SystemFunc = 0x5
	SysSCF  SystemFunc = 0x6
	SysCCF  SystemFunc = 0x7
)

// ExtendedFunc selects the sub-operation of a 32-bit EXTENDED instruction.
// 0xD/0xE/0xF (SLLX/SRLX/SRAX) have no decoder case: see decoder.go.
type ExtendedFunc uint8

const (
	ExtADDIX ExtendedFunc = 0x0
	ExtSUBIX ExtendedFunc = 0x1
	ExtANDIX ExtendedFunc = 0x2
	ExtORIX  ExtendedFunc = 0x3
	ExtXORIX ExtendedFunc = 0x4
	ExtLWX   ExtendedFunc = 0x5
	ExtSWX   ExtendedFunc = 0x6
	ExtLIX   ExtendedFunc = 0x7
	ExtJX    ExtendedFunc = 0x8
	ExtJALX  ExtendedFunc = 0x9
	ExtCMPIX ExtendedFunc = 0xA
	ExtINX   ExtendedFunc = 0xB
	ExtOUTX  ExtendedFunc = 0xC
	ExtSLLX  ExtendedFunc = 0xD
	ExtSRLX  ExtendedFunc = 0xE
	ExtSRAX  ExtendedFunc = 0xF
)

// Flag bit positions within the 8-bit FLAGS register.
const (
	FlagN = 7 // Negative
	FlagZ = 6 // Zero
	FlagC = 5 // Carry
	FlagV = 4 // Overflow
	FlagH = 3 // Half-carry (reserved, unused)
	FlagI = 2 // Interrupt enable (reserved, unused — INT_ENABLED is tracked separately)
)

// Register aliases, purely mnemonic — the engine addresses registers by number.
const (
	RegZERO = 0
	RegRA   = 1
	RegSP   = 2
	RegGP   = 3
	RegA0   = 4
	RegA1   = 5
	RegA2   = 6
	RegA3   = 7
	RegT0   = 8
	RegT1   = 9
	RegT2   = 10
	RegT3   = 11
	RegS0   = 12
	RegS1   = 13
	RegS2   = 14
	RegS3   = 15
)

// DefaultResetVector is the PC value loaded on reset when none is configured.
const DefaultResetVector uint16 = 0x0100
