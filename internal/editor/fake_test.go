package editor

import (
	"io"
)

// timeout in a script makes the source report an empty read window.
const timeout = -1

// script builds input from strings (taken byte by byte) and ints.
func script(parts ...any) []int {
	var out []int
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			for i := 0; i < len(v); i++ {
				out = append(out, int(v[i]))
			}
		case int:
			out = append(out, v)
		}
	}
	return out
}

type scriptedInput struct {
	script []int
}

func (s *scriptedInput) ReadByte() (byte, error) {
	if len(s.script) == 0 {
		return 0, io.EOF
	}
	c := s.script[0]
	s.script = s.script[1:]
	if c == timeout {
		return 0, ErrTimeout
	}
	return byte(c), nil
}

type fakeTerminal struct {
	scriptedInput
	size     Size
	enterErr error
	sizeErr  error
	writeErr error

	raw    bool
	enters int
	exits  int
	writes []string
}

func (f *fakeTerminal) EnterRawMode() error {
	f.enters++
	if f.enterErr != nil {
		return f.enterErr
	}
	f.raw = true
	return nil
}

func (f *fakeTerminal) ExitRawMode() error {
	f.exits++
	f.raw = false
	return nil
}

func (f *fakeTerminal) WindowSize() (Size, error) {
	return f.size, f.sizeErr
}

func (f *fakeTerminal) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.writes = append(f.writes, string(p))
	return len(p), nil
}
