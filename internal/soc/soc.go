package soc

import (
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ajokela/sampo/internal/sampo"
)

// SoC is the complete Sampo system: one CPU core, 64KB of RAM, and one UART,
// wired exactly as the reference SoC wires them (CPU drives the memory and
// I/O buses; the UART is the only I/O-bus peripheral).
type SoC struct {
	CPU  *sampo.CPU
	RAM  *RAM
	UART *UART
}

// New returns a SoC with a fresh CPU reset to resetVector and program loaded
// into RAM at base.
func New(resetVector, base uint16, program []byte) *SoC {
	s := &SoC{
		CPU:  sampo.NewCPU(resetVector),
		RAM:  NewRAM(),
		UART: NewUART(),
	}
	s.RAM.Load(base, program)
	return s
}

// Tick advances the whole system by one clock: the CPU's bus requests from
// the previous tick are resolved by RAM/UART and fed back in.
func (s *SoC) Tick(memResp sampo.MemResponse, ioResp sampo.IOResponse) (sampo.MemResponse, sampo.IOResponse) {
	memReq, ioReq := s.CPU.Step(memResp, ioResp)
	return s.RAM.Tick(memReq), s.UART.Tick(ioReq)
}

// Status is a point-in-time snapshot of CPU debug state, exposed for the
// monitor and for host logging.
type Status struct {
	PC     uint16
	Flags  uint8
	Cycles uint32
	Halted bool
	State  sampo.State
	Regs   [16]uint16
}

// Status returns the current debug snapshot.
func (s *SoC) Status() Status {
	return Status{
		PC:     s.CPU.PC,
		Flags:  s.CPU.Flags,
		Cycles: s.CPU.Cycles,
		Halted: s.CPU.Halted(),
		State:  s.CPU.State,
		Regs:   s.CPU.Regs.Snapshot(),
	}
}

// Run drives the tick loop until the CPU halts or ctx is canceled, while
// concurrently feeding bytes from stdin into the UART's RX register and
// draining TX bytes out to stdout. The three goroutines are supervised by an
// errgroup so that a feeder/drain error (or ctx cancellation) tears down the
// whole run cleanly.
func (s *SoC) Run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer stop() // halting the CPU ends the feeder/drain goroutines too
		var memResp sampo.MemResponse
		var ioResp sampo.IOResponse
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if s.CPU.Halted() {
				return nil
			}
			memResp, ioResp = s.Tick(memResp, ioResp)
		}
	})

	g.Go(func() error { return feedInput(gctx, stdin, s.UART) })
	g.Go(func() error { return drainOutput(gctx, stdout, s.UART) })

	return g.Wait()
}

func feedInput(ctx context.Context, r io.Reader, u *UART) error {
	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		n, err := r.Read(buf)
		if n > 0 {
			u.Feed(buf[0])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func drainOutput(ctx context.Context, w io.Writer, u *UART) error {
	for {
		select {
		case <-ctx.Done():
			// Flush a byte the program wrote just before the run ended.
			if b, ok := u.DrainTX(); ok {
				_, err := w.Write([]byte{b})
				return err
			}
			return nil
		default:
		}
		if b, ok := u.DrainTX(); ok {
			if _, err := w.Write([]byte{b}); err != nil {
				return err
			}
			continue
		}
		time.Sleep(5 * time.Millisecond)
	}
}
