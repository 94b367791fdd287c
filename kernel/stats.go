package kernel

import "sync/atomic"

// StatsBuffer is a single-writer latest-value buffer. The frame loop
// overwrites it once per frame and readers poll the sequence number for
// fresh data, so telemetry never queues up behind a slow consumer.
type StatsBuffer struct {
	seq atomic.Uint32
	n   atomic.Uint32
	buf [MaxMessageBytes]byte
}

// Write replaces the contents and bumps the sequence counter.
func (b *StatsBuffer) Write(data []byte) uint32 {
	count := uint32(len(data))
	if count > MaxMessageBytes {
		count = MaxMessageBytes
	}

	copy(b.buf[:count], data[:count])
	b.n.Store(count)
	return b.seq.Add(1)
}

// Read copies the latest contents into dst and returns the sequence number
// and byte count.
func (b *StatsBuffer) Read(dst []byte) (seq uint32, count int) {
	seq = b.seq.Load()
	n := b.n.Load()
	if n > uint32(len(dst)) {
		n = uint32(len(dst))
	}
	copy(dst[:n], b.buf[:n])
	return seq, int(n)
}
