// Package monitor implements an interactive command-line debugger for a
// Sampo SoC: single-stepping, breakpoints, and register/memory inspection,
// in the line-oriented command-loop style of the teacher's machine monitor.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/ajokela/sampo/internal/sampo"
	"github.com/ajokela/sampo/internal/soc"
)

// Monitor is the debugger's state machine: which SoC it is attached to,
// which addresses are breakpointed, and the scrollback of commands issued.
type Monitor struct {
	mu sync.Mutex

	soc *soc.SoC

	breakpoints map[uint16]bool
	history     []string

	out io.Writer
}

// New attaches a Monitor to soc, writing all command output to out.
func New(s *soc.SoC, out io.Writer) *Monitor {
	return &Monitor{soc: s, breakpoints: make(map[uint16]bool), out: out}
}

// SetBreakpoint arms a breakpoint at addr, as if "break <addr>" had been
// typed at the prompt. Exposed so the CLI can pre-arm one from a flag.
func (m *Monitor) SetBreakpoint(addr uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.breakpoints[addr] = true
}

// Run reads commands from in line by line until "quit" or EOF. It does not
// put the terminal into raw mode itself — callers that want single-keystroke
// stepping should wrap in with a term.MakeRaw'd file descriptor and feed
// line-assembled input through a bufio.Scanner, as RunInteractive does.
func (m *Monitor) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(m.out, "sampo> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m.mu.Lock()
		m.history = append(m.history, line)
		m.mu.Unlock()
		if quit, err := m.dispatch(line); quit || err != nil {
			return err
		}
	}
}

// RunInteractive puts fd into raw mode for the duration of the session (so
// the terminal driver doesn't eat single keystrokes before the program
// sees them) and then behaves exactly like Run. The terminal state is
// restored when the session ends.
func RunInteractive(fd int, m *Monitor, in io.Reader) (err error) {
	state, rawErr := term.MakeRaw(fd)
	if rawErr != nil {
		// Not a terminal (e.g. piped input in a test): fall back to Run.
		return m.Run(in)
	}
	defer func() { _ = term.Restore(fd, state) }()
	return m.Run(in)
}

func (m *Monitor) dispatch(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "step", "s":
		n := 1
		if len(args) > 0 {
			if v, perr := strconv.Atoi(args[0]); perr == nil {
				n = v
			}
		}
		m.step(n)
	case "run", "r":
		m.runToBreakOrHalt()
	case "break", "b":
		if len(args) != 1 {
			fmt.Fprintln(m.out, "usage: break <addr>")
			return false, nil
		}
		addr, perr := parseAddr(args[0])
		if perr != nil {
			fmt.Fprintln(m.out, perr)
			return false, nil
		}
		m.mu.Lock()
		m.breakpoints[addr] = true
		m.mu.Unlock()
		fmt.Fprintf(m.out, "breakpoint set at 0x%04X\n", addr)
	case "clear", "c":
		if len(args) != 1 {
			fmt.Fprintln(m.out, "usage: clear <addr>")
			return false, nil
		}
		addr, perr := parseAddr(args[0])
		if perr != nil {
			fmt.Fprintln(m.out, perr)
			return false, nil
		}
		m.mu.Lock()
		delete(m.breakpoints, addr)
		m.mu.Unlock()
		fmt.Fprintf(m.out, "breakpoint cleared at 0x%04X\n", addr)
	case "regs":
		m.printRegs()
	case "mem":
		if len(args) < 1 {
			fmt.Fprintln(m.out, "usage: mem <addr> [len]")
			return false, nil
		}
		addr, perr := parseAddr(args[0])
		if perr != nil {
			fmt.Fprintln(m.out, perr)
			return false, nil
		}
		length := 16
		if len(args) > 1 {
			if v, perr := strconv.Atoi(args[1]); perr == nil {
				length = v
			}
		}
		m.printMem(addr, length)
	case "reset":
		m.soc.CPU.State = sampo.StateReset
		fmt.Fprintln(m.out, "reset")
	case "quit", "q":
		return true, nil
	default:
		fmt.Fprintf(m.out, "unknown command: %s\n", cmd)
	}
	return false, nil
}

func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", s, err)
	}
	return uint16(v), nil
}

func (m *Monitor) step(n int) {
	var memResp sampo.MemResponse
	var ioResp sampo.IOResponse
	for i := 0; i < n; i++ {
		if m.soc.CPU.Halted() {
			fmt.Fprintln(m.out, "halted")
			return
		}
		memResp, ioResp = m.soc.Tick(memResp, ioResp)
	}
	st := m.soc.Status()
	fmt.Fprintf(m.out, "PC=0x%04X state=%v cycles=%d\n", st.PC, st.State, st.Cycles)
}

// runToBreakOrHalt ticks until the CPU halts or its PC lands on a
// breakpointed address at the start of a FETCH, then stops.
func (m *Monitor) runToBreakOrHalt() {
	var memResp sampo.MemResponse
	var ioResp sampo.IOResponse
	const guard = 10_000_000
	for i := 0; i < guard; i++ {
		if m.soc.CPU.Halted() {
			fmt.Fprintln(m.out, "halted")
			return
		}
		m.mu.Lock()
		hit := m.soc.CPU.State == sampo.StateFetch && m.breakpoints[m.soc.CPU.PC]
		m.mu.Unlock()
		if hit {
			fmt.Fprintf(m.out, "breakpoint hit at 0x%04X\n", m.soc.CPU.PC)
			return
		}
		memResp, ioResp = m.soc.Tick(memResp, ioResp)
	}
	fmt.Fprintln(m.out, "run exceeded tick guard without halting or hitting a breakpoint")
}

func (m *Monitor) printRegs() {
	st := m.soc.Status()
	fmt.Fprintf(m.out, "PC=0x%04X FLAGS=0x%02X STATE=%v CYCLES=%d\n", st.PC, st.Flags, st.State, st.Cycles)
	for i := 0; i < 16; i += 4 {
		fmt.Fprintf(m.out, "R%-2d=0x%04X R%-2d=0x%04X R%-2d=0x%04X R%-2d=0x%04X\n",
			i, st.Regs[i], i+1, st.Regs[i+1], i+2, st.Regs[i+2], i+3, st.Regs[i+3])
	}
	if len(m.breakpoints) > 0 {
		addrs := make([]int, 0, len(m.breakpoints))
		for a := range m.breakpoints {
			addrs = append(addrs, int(a))
		}
		sort.Ints(addrs)
		fmt.Fprint(m.out, "breakpoints:")
		for _, a := range addrs {
			fmt.Fprintf(m.out, " 0x%04X", a)
		}
		fmt.Fprintln(m.out)
	}
}

func (m *Monitor) printMem(addr uint16, length int) {
	for i := 0; i < length; i += 2 {
		a := addr + uint16(i)
		fmt.Fprintf(m.out, "0x%04X: 0x%04X\n", a, m.soc.RAM.Peek(a))
	}
}
