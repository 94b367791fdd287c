// Package app wires the HAL, the kernel plumbing, the demo scene, and the
// renderer into one cooperative frame loop.
package app

import (
	"errors"
	"fmt"
	"strconv"

	"glint/hal"
	"glint/kernel"
	"glint/render"
	"glint/scene"
	"glint/term"
)

// ErrQuit is returned by Step when the user asks to leave.
var ErrQuit = errors.New("quit")

const (
	frameEvery = 33  // ticks between frames, about 30 fps
	ledEvery   = 500 // heartbeat half-period in ticks

	nudgeStep = 5
	pitchStep = 5
	zoomStep  = 0.25
)

// Config sizes the frame and aims the camera. Zero fields fall back to the
// defaults.
type Config struct {
	Width         int
	Height        int
	FOVHorizontal int
	FOVVertical   int
	FrameEvery    uint64
	Status        bool
}

// DefaultConfig returns the 80x24 frame and the 100x75 degree view the demo
// was written for.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 24, FOVHorizontal: 100, FOVVertical: 75, FrameEvery: frameEvery}
}

// App owns the frame loop state. Step runs one pass; the hal runners or the
// device tick loop call it once per tick.
type App struct {
	h     hal.HAL
	cfg   Config
	sys   *kernel.System
	t     *term.Terminal
	fb    *render.Framebuffer
	world *render.World
	cam   render.Camera
	orbit *scene.Orbit
	dec   scene.Decoder

	scratch []byte

	lastTick  uint64
	lastFrame uint64
	frames    uint64
	drewFrame bool
	started   bool
	ledOn     bool
	closed    bool
}

// New builds the app on h. The terminal is not touched until the first Step.
func New(h hal.HAL, cfg Config) (*App, error) {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.FOVHorizontal <= 0 {
		cfg.FOVHorizontal = def.FOVHorizontal
	}
	if cfg.FOVVertical <= 0 {
		cfg.FOVVertical = def.FOVVertical
	}
	if cfg.FrameEvery == 0 {
		cfg.FrameEvery = def.FrameEvery
	}

	fb, err := render.NewFramebuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	cam := scene.DefaultCamera()
	cam.FOVHorizontal = cfg.FOVHorizontal
	cam.FOVVertical = cfg.FOVVertical

	return &App{
		h:       h,
		cfg:     cfg,
		sys:     kernel.NewSystem(),
		t:       term.New(h.Serial()),
		fb:      fb,
		world:   scene.Pyramid(),
		cam:     cam,
		orbit:   scene.NewOrbit(),
		scratch: make([]byte, 0, 64),
	}, nil
}

// Run drives the app from the HAL tick channel and does not return. Meant
// for the device build, where there is no scheduler above us.
func Run(h hal.HAL, cfg Config) {
	defer guard(h)

	bootMark(h, "app init")
	a, err := New(h, cfg)
	if err != nil {
		fatal(h, err)
	}
	tm := h.Time()
	if tm == nil {
		fatal(h, errors.New("no time source"))
	}
	ch := tm.Ticks()
	if ch == nil {
		fatal(h, errors.New("no tick channel"))
	}
	bootMark(h, "tick loop")
	for seq := range ch {
		if seq > a.lastTick {
			a.sys.Tick(seq - a.lastTick)
			a.lastTick = seq
		}
		if err := a.Step(); err != nil {
			fatal(h, err)
		}
	}
}

// Step runs one pass of the frame loop: forward the clock, move input
// through the kernel, flush queued log lines, and render when the frame
// interval has elapsed.
func (a *App) Step() error {
	if !a.started {
		a.started = true
		a.t.HideCursor()
		a.t.SetColor(render.ColorBlack)
		a.t.ClearScreen()
	}

	a.advanceClock()
	a.pumpInput()
	if err := a.applyKeys(); err != nil {
		return err
	}
	a.drainLog()

	now := a.sys.Ticks()
	a.heartbeat(now)

	if a.drewFrame && now-a.lastFrame < a.cfg.FrameEvery {
		return nil
	}
	var delta uint64
	if a.drewFrame {
		delta = now - a.lastFrame
	}
	a.drewFrame = true
	a.lastFrame = now
	a.frame(now, delta)
	return nil
}

// Close restores the terminal: cursor to the bottom row, colors back,
// cursor visible. Safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.t.CursorTo(0, uint8(a.cfg.Height-1))
	a.t.Reset()
	a.t.ShowCursor()
	a.t.WriteString("\r\n")
}

// advanceClock forwards HAL ticks into the kernel timebase. Tick sequence
// numbers may jump when the channel overflowed; the delta covers the gap.
func (a *App) advanceClock() {
	tm := a.h.Time()
	if tm == nil {
		return
	}
	ch := tm.Ticks()
	if ch == nil {
		return
	}
	for {
		select {
		case seq := <-ch:
			if seq > a.lastTick {
				a.sys.Tick(seq - a.lastTick)
				a.lastTick = seq
			}
		default:
			return
		}
	}
}

// pumpInput moves raw serial bytes through the decoder and posts completed
// keys to the render endpoint.
func (a *App) pumpInput() {
	ser := a.h.Serial()
	if ser == nil {
		return
	}
	var raw [64]byte
	n := 0
	for n < len(raw) {
		b, ok := ser.ReadByte()
		if !ok {
			break
		}
		raw[n] = b
		n++
	}
	if n == 0 {
		return
	}
	for _, k := range a.dec.Feed(raw[:n]) {
		a.sys.TrySend(kernel.EPKernel, kernel.EPRender, kernel.MsgKey, []byte{byte(k)})
	}
}

func (a *App) applyKeys() error {
	for {
		msg, ok := a.sys.TryRecv(kernel.EPRender)
		if !ok {
			return nil
		}
		if msg.Kind != kernel.MsgKey || msg.Len < 1 {
			continue
		}
		if err := a.handleKey(scene.Key(msg.Data[0])); err != nil {
			return err
		}
	}
}

func (a *App) handleKey(k scene.Key) error {
	switch k {
	case scene.KeyLeft:
		a.orbit.Nudge(nudgeStep)
	case scene.KeyRight:
		a.orbit.Nudge(-nudgeStep)
	case scene.KeyUp:
		a.cam.Rotation.Y += pitchStep
	case scene.KeyDown:
		a.cam.Rotation.Y -= pitchStep
	case scene.KeyZoomIn:
		a.orbit.Zoom(-zoomStep)
	case scene.KeyZoomOut:
		a.orbit.Zoom(zoomStep)
	case scene.KeyPause:
		a.orbit.Paused = !a.orbit.Paused
		if a.orbit.Paused {
			a.log("orbit paused")
		} else {
			a.log("orbit resumed")
		}
	case scene.KeyReset:
		a.orbit = scene.NewOrbit()
		a.cam = scene.DefaultCamera()
		a.cam.FOVHorizontal = a.cfg.FOVHorizontal
		a.cam.FOVVertical = a.cfg.FOVVertical
		a.log("view reset")
	case scene.KeyQuit:
		a.Close()
		return ErrQuit
	}
	return nil
}

// log queues a line for the logger endpoint. Lines travel out of band so
// they land on the debug console, never inside the frame stream.
func (a *App) log(s string) {
	a.sys.TrySend(kernel.EPRender, kernel.EPLogger, kernel.MsgLog, []byte(s))
}

func (a *App) drainLog() {
	lg := a.h.Logger()
	for {
		msg, ok := a.sys.TryRecv(kernel.EPLogger)
		if !ok {
			return
		}
		if lg == nil || msg.Kind != kernel.MsgLog {
			continue
		}
		lg.WriteLineBytes(msg.Data[:msg.Len])
	}
}

// frame renders and ships one frame, then advances the orbit. A paused
// orbit still repaints so nudges show up right away.
func (a *App) frame(now, delta uint64) {
	a.orbit.Apply(&a.cam)
	render.RenderFrame(a.world, &a.cam, a.fb)
	a.t.DisplayFrame(a.fb)
	a.frames++

	if a.cfg.Status {
		a.status(delta)
	}
	a.stats(now)
	a.orbit.Step()
}

// status overwrites the bottom frame row with the loop counters. The next
// frame paints the row back before the line is drawn again.
func (a *App) status(delta uint64) {
	var fps uint64
	if delta > 0 {
		fps = 1000 / delta
	}
	line := fmt.Sprintf("frame %d  %d fps  angle %d  radius %.2f  pitch %.0f",
		a.frames, fps, a.orbit.Angle(), a.orbit.Radius(), a.cam.Rotation.Y)
	if len(line) > a.cfg.Width {
		line = line[:a.cfg.Width]
	}
	a.t.CursorTo(0, uint8(a.cfg.Height-1))
	a.t.SetColor(render.ColorBlack)
	a.t.WriteString(fmt.Sprintf("%-*s", a.cfg.Width, line))
}

// stats publishes the latest loop counters for anyone polling the
// telemetry buffer.
func (a *App) stats(now uint64) {
	buf := a.scratch[:0]
	buf = append(buf, "frames="...)
	buf = strconv.AppendUint(buf, a.frames, 10)
	buf = append(buf, " ticks="...)
	buf = strconv.AppendUint(buf, now, 10)
	buf = append(buf, " angle="...)
	buf = strconv.AppendInt(buf, int64(a.orbit.Angle()), 10)
	a.scratch = buf
	a.sys.Stats().Write(buf)
}

// heartbeat blinks the LED once a second as a liveness signal.
func (a *App) heartbeat(now uint64) {
	on := now/ledEvery%2 == 0
	if on == a.ledOn {
		return
	}
	a.ledOn = on
	led := a.h.LED()
	if led == nil {
		return
	}
	if on {
		led.High()
	} else {
		led.Low()
	}
}
