package hal

// Serial is the byte-level frame channel to the attached terminal.
//
// The display path polls SpaceAvailable before every WriteByte and never
// buffers on its own, so implementations decide the pacing. Transmitting
// reports whether previously written bytes are still on the wire; a frame
// waits it out before cursor-homing so partial frames never interleave.
// ReadByte is the non-blocking receive side, used for keyboard input coming
// back from the terminal.
type Serial interface {
	SpaceAvailable() bool
	WriteByte(b byte)
	Transmitting() bool
	ReadByte() (byte, bool)
}

// Logger writes newline-delimited log lines. Logs travel on a side channel,
// never on the frame serial.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction, used as a frame heartbeat.
type LED interface {
	High()
	Low()
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; frame pacing counts ticks rather
// than reading a clock.
type Time interface {
	Ticks() <-chan uint64
}

// HAL is the only contact point between the renderer and the outside world.
type HAL interface {
	Serial() Serial
	Logger() Logger
	LED() LED
	Time() Time
}
