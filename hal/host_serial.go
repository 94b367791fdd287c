//go:build !tinygo

package hal

import (
	"io"
	"sync"
)

// hostSerial plays the UART role on a desktop: TX bytes go straight to an
// io.Writer, RX bytes come from a background reader goroutine. The host pipe
// always has room, so SpaceAvailable never stalls and Transmitting is
// immediately false once Write returns.
type hostSerial struct {
	mu sync.Mutex
	w  io.Writer
	rx chan byte
}

func newHostSerial(w io.Writer, r io.Reader) *hostSerial {
	s := &hostSerial{w: w, rx: make(chan byte, 256)}
	if r != nil {
		go s.pump(r)
	}
	return s
}

func (s *hostSerial) pump(r io.Reader) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for i := 0; i < n; i++ {
			select {
			case s.rx <- buf[i]:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

// inject queues bytes on the receive side, as if the remote terminal had
// sent them. Bytes that do not fit are dropped.
func (s *hostSerial) inject(p []byte) {
	for _, b := range p {
		select {
		case s.rx <- b:
		default:
		}
	}
}

func (s *hostSerial) SpaceAvailable() bool { return true }

func (s *hostSerial) WriteByte(b byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w != nil {
		s.w.Write([]byte{b})
	}
}

func (s *hostSerial) Transmitting() bool { return false }

func (s *hostSerial) ReadByte() (byte, bool) {
	select {
	case b := <-s.rx:
		return b, true
	default:
		return 0, false
	}
}
