package sink

// BufferSize is the capacity of a Buffer and the upper bound of every
// chunk it feeds.
const BufferSize = 64

// Buffer relays formatter output to a Sink in chunks of at most
// BufferSize bytes. It implements formatter.Writer.
//
// The first Feed error is sticky: every later write and Close returns it
// without feeding again.
type Buffer struct {
	sink Sink
	buf  [BufferSize]byte
	n    int
	err  error
}

// NewBuffer returns a Buffer feeding s.
func NewBuffer(s Sink) *Buffer {
	return &Buffer{sink: s}
}

// Reset discards buffered bytes and any sticky error and rebinds the
// Buffer to s.
func (b *Buffer) Reset(s Sink) {
	b.sink = s
	b.n = 0
	b.err = nil
}

// Buffered returns the number of bytes not yet fed.
func (b *Buffer) Buffered() int {
	return b.n
}

// WriteByte appends c, feeding the sink if the buffer becomes full.
func (b *Buffer) WriteByte(c byte) error {
	if b.err != nil {
		return b.err
	}
	b.buf[b.n] = c
	b.n++
	if b.n == len(b.buf) {
		return b.flush()
	}
	return nil
}

// Write appends p, feeding the sink every time the buffer fills.
func (b *Buffer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		if b.err != nil {
			return written, b.err
		}
		n := copy(b.buf[b.n:], p)
		b.n += n
		written += n
		p = p[n:]
		if b.n == len(b.buf) {
			if err := b.flush(); err != nil {
				return written, err
			}
		}
	}
	return written, b.err
}

// WriteString is Write for strings without the conversion.
func (b *Buffer) WriteString(s string) (int, error) {
	written := 0
	for len(s) > 0 {
		if b.err != nil {
			return written, b.err
		}
		n := copy(b.buf[b.n:], s)
		b.n += n
		written += n
		s = s[n:]
		if b.n == len(b.buf) {
			if err := b.flush(); err != nil {
				return written, err
			}
		}
	}
	return written, b.err
}

// Close feeds the remaining bytes, if any. It is safe to call more than
// once; later calls feed nothing.
func (b *Buffer) Close() error {
	if b.err != nil {
		return b.err
	}
	if b.n == 0 {
		return nil
	}
	return b.flush()
}

func (b *Buffer) flush() error {
	err := b.sink.Feed(b.buf[:b.n])
	b.n = 0
	if err != nil {
		b.err = err
	}
	return err
}
