package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ajokela/sampo/internal/soc"
)

func TestMonitorBreakpointStopsRun(t *testing.T) {
	s := soc.New(0x0000, 0x0000, nil)
	// ADDI r1,r1,1 at 0x0000; ADDI r1,r1,1 at 0x0002; HALT at 0x0004.
	addi := uint16(0x5)<<12 | uint16(1)<<8 | 0x01
	halt := uint16(0xE)<<12 | uint16(1)<<8
	s.RAM.Load(0x0000, []byte{byte(addi), byte(addi >> 8), byte(addi), byte(addi >> 8), byte(halt), byte(halt >> 8)})

	var out bytes.Buffer
	m := New(s, &out)
	m.breakpoints[0x0002] = true

	m.runToBreakOrHalt()

	if s.CPU.Halted() {
		t.Fatalf("CPU halted before reaching breakpoint")
	}
	if !strings.Contains(out.String(), "breakpoint hit") {
		t.Fatalf("output = %q, want a breakpoint-hit message", out.String())
	}
}

func TestMonitorStepAdvancesOneInstruction(t *testing.T) {
	s := soc.New(0x0000, 0x0000, nil)
	addi := uint16(0x5)<<12 | uint16(1)<<8 | 0x01
	halt := uint16(0xE)<<12 | uint16(1)<<8
	s.RAM.Load(0x0000, []byte{byte(addi), byte(addi >> 8), byte(halt), byte(halt >> 8)})

	var out bytes.Buffer
	m := New(s, &out)

	// RESET, three FETCH ticks (the SoC RAM's ready lags valid by one clock),
	// DECODE, EXECUTE, WRITEBACK: seven ticks for one instruction.
	m.step(7)

	if got := s.CPU.Regs.Read(1); got != 1 {
		t.Fatalf("R1 = %d after one ADDI, want 1", got)
	}
}

func TestMonitorMemAndRegsDoNotPanic(t *testing.T) {
	s := soc.New(0x0000, 0x0000, []byte{0xAB, 0xCD})
	var out bytes.Buffer
	m := New(s, &out)
	m.printMem(0x0000, 4)
	m.printRegs()
	if !strings.Contains(out.String(), "0xCDAB") {
		t.Fatalf("mem dump = %q, want it to contain the loaded word 0xCDAB", out.String())
	}
}
