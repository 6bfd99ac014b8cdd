// main.go - Command-line front end for the Sampo CPU/SoC simulator

/*
(c) 2024 - 2025 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ajokela/sampo/internal/monitor"
	"github.com/ajokela/sampo/internal/soc"
)

func boilerPlate() {
	fmt.Println("Sampo - a 16-bit RISC CPU and minimal SoC simulator")
	fmt.Println("(c) 2024 - 2025 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	boilerPlate()

	resetVector := flag.Uint("reset-vector", 0x0100, "initial PC on reset")
	base := flag.Uint("base", 0x0100, "byte address to load the program image at")
	interactive := flag.Bool("monitor", false, "drop into the interactive monitor instead of free-running")
	breakAt := flag.String("break", "", "breakpoint address (hex, e.g. 0x0120); only used with -monitor")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sampo [flags] <program.bin>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	program, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading program: %v\n", err)
		os.Exit(1)
	}

	s := soc.New(uint16(*resetVector), uint16(*base), program)

	if *interactive {
		m := monitor.New(s, os.Stdout)
		if *breakAt != "" {
			addr, perr := parseHexAddr(*breakAt)
			if perr != nil {
				fmt.Fprintf(os.Stderr, "bad -break address: %v\n", perr)
				os.Exit(1)
			}
			m.SetBreakpoint(addr)
		}
		if err := monitor.RunInteractive(int(os.Stdin.Fd()), m, os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "monitor session ended with error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("running %s (reset vector 0x%04X, loaded at 0x%04X)\n", filename, *resetVector, *base)
	if err := s.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		os.Exit(1)
	}

	st := s.Status()
	fmt.Printf("halted at PC=0x%04X after %d cycles\n", st.PC, st.Cycles)
}

func parseHexAddr(s string) (uint16, error) {
	var v uint
	_, err := fmt.Sscanf(s, "0x%x", &v)
	if err != nil {
		_, err = fmt.Sscanf(s, "%x", &v)
	}
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
