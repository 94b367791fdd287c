package scene

// Key is a decoded input event.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyZoomIn
	KeyZoomOut
	KeyReset
	KeyQuit
)

// parseKey reads one event from the front of b. consumed is how many bytes
// the event used; ok=false means the buffer ends inside an escape sequence
// and more bytes are needed.
func parseKey(b []byte) (consumed int, k Key, ok bool) {
	if len(b) == 0 {
		return 0, KeyNone, false
	}
	if b[0] != 0x1b {
		switch b[0] {
		case ' ':
			return 1, KeyPause, true
		case '+':
			return 1, KeyZoomIn, true
		case '-':
			return 1, KeyZoomOut, true
		case 'r':
			return 1, KeyReset, true
		case 'q':
			return 1, KeyQuit, true
		default:
			return 1, KeyNone, true
		}
	}
	if len(b) < 2 {
		return 0, KeyNone, false
	}
	if b[1] != '[' {
		return 2, KeyNone, true
	}
	if len(b) < 3 {
		return 0, KeyNone, false
	}
	switch b[2] {
	case 'A':
		return 3, KeyUp, true
	case 'B':
		return 3, KeyDown, true
	case 'C':
		return 3, KeyRight, true
	case 'D':
		return 3, KeyLeft, true
	default:
		return consumeEscape(b), KeyNone, true
	}
}

// consumeEscape skips an unrecognized escape sequence: for CSI, everything
// up to and including the final byte.
func consumeEscape(b []byte) int {
	if len(b) < 2 || b[0] != 0x1b {
		return 0
	}
	if b[1] == '[' {
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				return i + 1
			}
		}
		return len(b)
	}
	return 2
}

// Decoder accumulates raw serial bytes and yields completed key events.
// Partial escape sequences stay buffered until their remaining bytes show
// up on a later Feed.
type Decoder struct {
	buf []byte
}

// Feed appends raw bytes and returns the keys they complete, in order.
func (d *Decoder) Feed(p []byte) []Key {
	d.buf = append(d.buf, p...)

	var keys []Key
	for len(d.buf) > 0 {
		n, k, ok := parseKey(d.buf)
		if !ok || n == 0 {
			break
		}
		d.buf = d.buf[n:]
		if k != KeyNone {
			keys = append(keys, k)
		}
	}
	if len(d.buf) == 0 {
		d.buf = nil
	}
	return keys
}
