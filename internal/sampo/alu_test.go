package sampo

import "testing"

func requireEqualU16(t *testing.T, name string, got, want uint16) {
	t.Helper()
	if got != want {
		t.Fatalf("%s = 0x%04X, want 0x%04X", name, got, want)
	}
}

func TestALUAddFlags(t *testing.T) {
	cases := []struct {
		name       string
		a, b       uint16
		wantResult uint16
		wantN, wantZ, wantC, wantV bool
	}{
		{"simple", 0x0001, 0x0001, 0x0002, false, false, false, false},
		{"zero", 0x0000, 0x0000, 0x0000, false, true, false, false},
		{"carry out", 0xFFFF, 0x0001, 0x0000, false, true, true, false},
		{"signed overflow", 0x7FFF, 0x0001, 0x8000, true, false, false, true},
		{"negative operands overflow to zero", 0x8000, 0x8000, 0x0000, false, true, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := EvalALU(c.a, c.b, ALUAdd, 0)
			requireEqualU16(t, "Result", r.Result, c.wantResult)
			if r.N != c.wantN || r.Z != c.wantZ || r.C != c.wantC || r.V != c.wantV {
				t.Fatalf("flags = N:%v Z:%v C:%v V:%v, want N:%v Z:%v C:%v V:%v",
					r.N, r.Z, r.C, r.V, c.wantN, c.wantZ, c.wantC, c.wantV)
			}
		})
	}
}

func TestALUSubFlags(t *testing.T) {
	cases := []struct {
		name       string
		a, b       uint16
		wantResult uint16
		wantC, wantV bool
	}{
		{"no borrow", 0x0002, 0x0001, 0x0001, false, false},
		{"borrow", 0x0000, 0x0001, 0xFFFF, true, false},
		{"signed overflow", 0x8000, 0x0001, 0x7FFF, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := EvalALU(c.a, c.b, ALUSub, 0)
			requireEqualU16(t, "Result", r.Result, c.wantResult)
			if r.C != c.wantC || r.V != c.wantV {
				t.Fatalf("C=%v V=%v, want C=%v V=%v", r.C, r.V, c.wantC, c.wantV)
			}
		})
	}
}

func TestALUDivByZero(t *testing.T) {
	r := EvalALU(0x1234, 0, ALUDiv, 0)
	requireEqualU16(t, "DIV/0", r.Result, 0xFFFF)
}

func TestALURemByZero(t *testing.T) {
	r := EvalALU(0x1234, 0, ALURem, 0)
	requireEqualU16(t, "REM/0", r.Result, 0x1234)
}

func TestALUMulTruncates(t *testing.T) {
	r := EvalALU(0x1000, 0x0010, ALUMul, 0)
	requireEqualU16(t, "MUL", r.Result, 0x0000)
}

func TestALUMulhSigned(t *testing.T) {
	r := EvalALU(0xFFFF, 0xFFFF, ALUMulh, 0) // -1 * -1
	requireEqualU16(t, "MULH(-1*-1)", r.Result, 0x0000)
}

func TestALUBitwiseAndPass(t *testing.T) {
	if r := EvalALU(0xFF00, 0x0FF0, ALUAnd, 0); r.Result != 0x0F00 {
		t.Fatalf("AND = 0x%04X, want 0x0F00", r.Result)
	}
	if r := EvalALU(0x1234, 0x5678, ALUPassA, 0); r.Result != 0x1234 {
		t.Fatalf("PASS_A = 0x%04X, want 0x1234", r.Result)
	}
	if r := EvalALU(0x1234, 0x5678, ALUPassB, 0); r.Result != 0x5678 {
		t.Fatalf("PASS_B = 0x%04X, want 0x5678", r.Result)
	}
}

func TestALUNotNeg(t *testing.T) {
	if r := EvalALU(0, 0x00FF, ALUNot, 0); r.Result != 0xFF00 {
		t.Fatalf("NOT = 0x%04X, want 0xFF00", r.Result)
	}
	if r := EvalALU(0, 0x0001, ALUNeg, 0); r.Result != 0xFFFF {
		t.Fatalf("NEG = 0x%04X, want 0xFFFF", r.Result)
	}
}
