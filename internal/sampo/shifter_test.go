package sampo

import "testing"

func TestShiftAllSixteenFuncs(t *testing.T) {
	cases := []struct {
		fn         ShiftFunc
		value      uint16
		carryIn    bool
		wantResult uint16
		wantCarry  bool
	}{
		{ShiftSLL1, 0x8001, false, 0x0002, true},
		{ShiftSRL1, 0x0003, false, 0x0001, true},
		{ShiftSRA1, 0x8000, false, 0xC000, false},
		{ShiftROL1, 0x8001, false, 0x0003, true},
		{ShiftROR1, 0x0001, false, 0x8000, true},
		{ShiftRCL1, 0x8000, true, 0x0001, true},
		{ShiftRCR1, 0x0001, true, 0x8000, true},
		{ShiftSWAP, 0x1234, false, 0x3412, false},
		{ShiftSLL4, 0x1234, false, 0x2340, true},
		{ShiftSRL4, 0x1234, false, 0x0123, false},
		{ShiftSRA4, 0x8000, false, 0xF800, false},
		{ShiftROL4, 0x1234, false, 0x2341, true},
		{ShiftSLL8, 0x1234, false, 0x3400, false},
		{ShiftSRL8, 0x1234, false, 0x0012, false},
		{ShiftSRA8, 0x8000, false, 0xFF80, false},
		{ShiftROL8, 0x1234, false, 0x3412, false},
	}
	for _, c := range cases {
		got := EvalShift(c.value, c.fn, c.carryIn)
		if got.Result != c.wantResult || got.CarryOut != c.wantCarry {
			t.Errorf("EvalShift(0x%04X, %d, %v) = (0x%04X, %v), want (0x%04X, %v)",
				c.value, c.fn, c.carryIn, got.Result, got.CarryOut, c.wantResult, c.wantCarry)
		}
	}
}

func TestRotateLeft16Wraps(t *testing.T) {
	if got := rotateLeft16(0x0001, 16); got != 0x0001 {
		t.Fatalf("rotateLeft16(0x0001, 16) = 0x%04X, want 0x0001", got)
	}
}
