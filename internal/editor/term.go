package editor

import (
	"errors"

	"fortio.org/log"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type Size struct {
	Rows int
	Cols int
}

// Terminal is everything the editor needs from the controlling terminal.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	WindowSize() (Size, error)
	ReadByte() (byte, error)
	Write(p []byte) (int, error)
}

// Term drives a real terminal through its file descriptors. The original
// attributes are captured by EnterRawMode and put back by ExitRawMode.
type Term struct {
	in       int
	out      int
	OrigTerm unix.Termios
	raw      bool
}

func NewTerm(in, out uintptr) *Term {
	return &Term{in: int(in), out: int(out)}
}

func (t *Term) EnterRawMode() error {
	if t.raw {
		return nil
	}
	if !term.IsTerminal(t.in) {
		return &TerminalConfigError{Op: "isatty", Err: unix.ENOTTY}
	}

	orig, err := unix.IoctlGetTermios(t.in, ioctlReadTermios)
	if err != nil {
		return &TerminalConfigError{Op: "tcgetattr", Err: err}
	}
	t.OrigTerm = *orig

	rawTerm := makeRaw(t.OrigTerm)
	if err := unix.IoctlSetTermios(t.in, ioctlWriteTermios, &rawTerm); err != nil {
		return &TerminalConfigError{Op: "tcsetattr", Err: err}
	}
	t.raw = true
	log.LogVf("raw mode enabled on fd %d", t.in)
	return nil
}

// ExitRawMode is safe to call any number of times; only the first call
// after EnterRawMode touches the terminal.
func (t *Term) ExitRawMode() error {
	if !t.raw {
		return nil
	}
	t.raw = false
	if err := unix.IoctlSetTermios(t.in, ioctlWriteTermios, &t.OrigTerm); err != nil {
		return &TerminalConfigError{Op: "tcsetattr", Err: err}
	}
	log.LogVf("raw mode disabled on fd %d", t.in)
	return nil
}

func (t *Term) WindowSize() (Size, error) {
	ws, err := unix.IoctlGetWinsize(t.out, unix.TIOCGWINSZ)
	if err != nil {
		return Size{}, &GeometryError{Op: "get_window_size", Err: err}
	}
	if ws.Col == 0 || ws.Row == 0 {
		return Size{}, &GeometryError{Op: "get_window_size", Err: errZeroSize}
	}
	return Size{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}

// ReadByte waits at most one VTIME window for a byte and returns
// ErrTimeout when none arrived.
func (t *Term) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := unix.Read(t.in, buf[:])
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EAGAIN):
			return 0, ErrTimeout
		case err != nil:
			return 0, &TerminalConfigError{Op: "read", Err: err}
		case n == 0:
			return 0, ErrTimeout
		}
		return buf[0], nil
	}
}

func (t *Term) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := unix.Write(t.out, p[written:])
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}

func makeRaw(orig unix.Termios) unix.Termios {
	raw := orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// return as soon as a byte is available, or after 100ms with nothing
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	return raw
}
