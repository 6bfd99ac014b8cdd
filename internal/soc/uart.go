package soc

import (
	"sync"

	"github.com/ajokela/sampo/internal/sampo"
)

const (
	uartStatusPort = 0x80
	uartDataPort   = 0x81

	uartStatusRxReady = 1 << 0
	uartStatusTxReady = 1 << 1
)

// UART is an MC6850-style serial port addressed through two I/O ports: a
// status register at 0x80 and a data register at 0x81. It owns one byte of
// TX buffering and one byte of RX buffering, guarded by a mutex since the
// host feeder/drain goroutines touch it from outside the CPU's tick loop.
type UART struct {
	mu sync.Mutex

	txBuf     byte
	txPending bool

	rxBuf   byte
	rxReady bool
}

// NewUART returns an idle UART with no pending TX or RX byte.
func NewUART() *UART {
	return &UART{}
}

// Tick resolves one I/O-bus request against the UART's two registers.
func (u *UART) Tick(req sampo.IORequest) sampo.IOResponse {
	u.mu.Lock()
	defer u.mu.Unlock()

	var resp sampo.IOResponse
	if req.Rd {
		switch req.Addr {
		case uartStatusPort:
			var status byte
			if u.rxReady {
				status |= uartStatusRxReady
			}
			if !u.txPending {
				status |= uartStatusTxReady
			}
			resp.RData = status
		case uartDataPort:
			resp.RData = u.rxBuf
			u.rxReady = false
		}
	}
	if req.Wr && req.Addr == uartDataPort {
		u.txBuf = req.WData
		u.txPending = true
	}
	return resp
}

// DrainTX reports and clears a pending transmit byte. It returns ok=false
// when nothing is pending. Call from the SoC's TX-drain goroutine.
func (u *UART) DrainTX() (b byte, ok bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.txPending {
		return 0, false
	}
	u.txPending = false
	return u.txBuf, true
}

// Feed delivers one received byte to the UART's RX register, overwriting
// any byte not yet consumed by the program (matching the reference UART,
// which has no RX overrun signaling). Call from the SoC's host-input feeder.
func (u *UART) Feed(b byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rxBuf = b
	u.rxReady = true
}
