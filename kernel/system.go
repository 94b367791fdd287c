package kernel

import (
	"runtime"
	"sync/atomic"
)

// System owns the mailboxes, the telemetry buffer, and the tick counter
// shared by the frame loop and its helper tasks.
type System struct {
	mbox  [epCount]Mailbox
	stats StatsBuffer
	ticks atomic.Uint64
}

// NewSystem creates a kernel instance.
func NewSystem() *System {
	return &System{}
}

// Tick advances the kernel timebase. The app forwards HAL ticks here so
// every task reads the same clock.
func (s *System) Tick(delta uint64) {
	s.ticks.Add(delta)
}

// Ticks returns the current tick count (1ms per tick).
func (s *System) Ticks() uint64 {
	return s.ticks.Load()
}

// Stats returns the latest-value telemetry buffer.
func (s *System) Stats() *StatsBuffer {
	return &s.stats
}

// Send copies the payload into a fixed-size message and enqueues it,
// blocking while the destination mailbox is full.
func (s *System) Send(from, to Endpoint, kind uint8, payload []byte) {
	s.mbox[to].Send(makeMessage(from, to, kind, payload))
}

// TrySend is Send without blocking: a full mailbox drops the message and
// returns false. The frame loop uses it so a stalled consumer can never
// hold up rendering.
func (s *System) TrySend(from, to Endpoint, kind uint8, payload []byte) bool {
	return s.mbox[to].TrySend(makeMessage(from, to, kind, payload))
}

// Recv blocks until a message is available for the endpoint.
func (s *System) Recv(to Endpoint) Message {
	return s.mbox[to].Recv()
}

// TryRecv dequeues one pending message for the endpoint without blocking.
func (s *System) TryRecv(to Endpoint) (Message, bool) {
	return s.mbox[to].TryRecv()
}

// Yield yields execution to let other tasks run.
func (s *System) Yield() {
	runtime.Gosched()
}

func makeMessage(from, to Endpoint, kind uint8, payload []byte) Message {
	var msg Message
	msg.From = from
	msg.To = to
	msg.Kind = kind
	if len(payload) > 0 {
		if len(payload) > MaxMessageBytes {
			payload = payload[:MaxMessageBytes]
		}
		msg.Len = uint8(len(payload))
		copy(msg.Data[:], payload)
	}
	return msg
}
