package editor

import "strconv"

// RenderBuffer collects one frame so it reaches the terminal in a single
// write. Reset it before composing the next frame.
type RenderBuffer struct {
	b []byte
}

func (ab *RenderBuffer) Append(p []byte) {
	ab.b = append(ab.b, p...)
}

func (ab *RenderBuffer) AppendString(s string) {
	ab.b = append(ab.b, s...)
}

func (ab *RenderBuffer) AppendByte(c byte) {
	ab.b = append(ab.b, c)
}

func (ab *RenderBuffer) AppendInt(n int) {
	ab.b = strconv.AppendInt(ab.b, int64(n), 10)
}

func (ab *RenderBuffer) Bytes() []byte {
	return ab.b
}

func (ab *RenderBuffer) Len() int {
	return len(ab.b)
}

// Reset empties the buffer but keeps its storage for the next frame.
func (ab *RenderBuffer) Reset() {
	ab.b = ab.b[:0]
}
