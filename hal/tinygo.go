//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoHAL struct {
	serial *uartSerial
	logger *cdcLogger
	led    *pinLED
	t      *tinyGoTime
}

// New returns a Pico 2 (RP2350) HAL implementation.
//
// Frame UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. Logs go to the USB
// CDC port so they never interleave with frame bytes.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	return &tinyGoHAL{
		serial: &uartSerial{uart: uart},
		logger: &cdcLogger{port: machine.Serial},
		led:    &pinLED{pin: ledPin},
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Serial() Serial { return h.serial }
func (h *tinyGoHAL) Logger() Logger { return h.logger }
func (h *tinyGoHAL) LED() LED       { return h.led }
func (h *tinyGoHAL) Time() Time     { return h.t }

// uartSerial adapts the machine UART to the frame channel contract. The
// TinyGo driver blocks inside WriteByte until the FIFO drains, so the
// readiness probes can answer optimistically without losing bytes.
type uartSerial struct {
	uart *machine.UART
}

func (s *uartSerial) SpaceAvailable() bool { return true }

func (s *uartSerial) WriteByte(b byte) {
	if s.uart == nil {
		return
	}
	s.uart.WriteByte(b)
}

func (s *uartSerial) Transmitting() bool { return false }

func (s *uartSerial) ReadByte() (byte, bool) {
	if s.uart == nil || s.uart.Buffered() == 0 {
		return 0, false
	}
	b, err := s.uart.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

type cdcLogger struct {
	port machine.Serialer
}

func (l *cdcLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.port.WriteByte(s[i])
	}
	l.port.WriteByte('\r')
	l.port.WriteByte('\n')
}

func (l *cdcLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.port.WriteByte(b[i])
	}
	l.port.WriteByte('\r')
	l.port.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }
