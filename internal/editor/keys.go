package editor

import (
	"errors"
	"fmt"
	"io"
)

type KeyKind int

const (
	KeyPrintable KeyKind = iota
	KeyControl
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEscape
	KeyQuit
)

var keyNames = map[KeyKind]string{
	KeyPrintable:  "printable",
	KeyControl:    "control",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyPageUp:     "pgup",
	KeyPageDown:   "pgdn",
	KeyHome:       "home",
	KeyEnd:        "end",
	KeyEscape:     "esc",
	KeyQuit:       "quit",
}

func (k KeyKind) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyKind(%d)", int(k))
}

// Key is one decoded keypress. Byte is only meaningful for KeyPrintable
// and KeyControl.
type Key struct {
	Kind KeyKind
	Byte byte
}

func (k Key) String() string {
	switch k.Kind {
	case KeyPrintable:
		return fmt.Sprintf("%d ('%c')", k.Byte, k.Byte)
	case KeyControl:
		return fmt.Sprintf("ctrl %d", k.Byte)
	}
	return k.Kind.String()
}

// IsNavigation reports whether the key moves the cursor.
func (k Key) IsNavigation() bool {
	switch k.Kind {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight,
		KeyPageUp, KeyPageDown, KeyHome, KeyEnd:
		return true
	}
	return false
}

const escape = 0x1b

func ctrlKey(k byte) byte { return k & 0x1f }

var escapeKey = Key{Kind: KeyEscape, Byte: escape}

// ESC [ <letter>
var csiFinal = map[byte]KeyKind{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// ESC [ <digit> ~
var csiTilde = map[byte]KeyKind{
	'1': KeyHome,
	'7': KeyHome,
	'4': KeyEnd,
	'8': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
}

// ESC O <letter>
var ss3Final = map[byte]KeyKind{
	'H': KeyHome,
	'E': KeyEnd,
}

type decodeState int

const (
	stateGround decodeState = iota
	stateEscape
	stateCSI
	stateCSIParam
	stateSS3
)

// ReadKey decodes the next keypress from src. src returns ErrTimeout when
// its read window passes with no input; ReadKey keeps waiting for the
// first byte but treats a timeout inside an escape sequence as a lone
// Escape. Sequences it does not know also decode to a lone Escape.
func ReadKey(src io.ByteReader) (Key, error) {
	var seq [2]byte
	state := stateGround
	for {
		switch state {
		case stateGround:
			c, err := src.ReadByte()
			if errors.Is(err, ErrTimeout) {
				continue
			}
			if err != nil {
				return Key{}, err
			}
			if c != escape {
				return classify(c), nil
			}
			state = stateEscape

		case stateEscape:
			for i := range seq {
				c, ok, err := readFollow(src)
				if err != nil {
					return Key{}, err
				}
				if !ok {
					return escapeKey, nil
				}
				seq[i] = c
			}
			switch seq[0] {
			case '[':
				state = stateCSI
			case 'O':
				state = stateSS3
			default:
				return escapeKey, nil
			}

		case stateCSI:
			if seq[1] >= '0' && seq[1] <= '9' {
				state = stateCSIParam
				continue
			}
			return lookup(csiFinal, seq[1]), nil

		case stateCSIParam:
			c, ok, err := readFollow(src)
			if err != nil {
				return Key{}, err
			}
			if !ok || c != '~' {
				return escapeKey, nil
			}
			return lookup(csiTilde, seq[1]), nil

		case stateSS3:
			return lookup(ss3Final, seq[1]), nil
		}
	}
}

// readFollow reads one byte of an escape sequence; ok is false on timeout.
func readFollow(src io.ByteReader) (c byte, ok bool, err error) {
	c, err = src.ReadByte()
	if errors.Is(err, ErrTimeout) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return c, true, nil
}

func lookup(table map[byte]KeyKind, c byte) Key {
	if kind, ok := table[c]; ok {
		return Key{Kind: kind}
	}
	return escapeKey
}

func classify(c byte) Key {
	switch {
	case c == ctrlKey('q'):
		return Key{Kind: KeyQuit, Byte: c}
	case c < 0x20 || c == 0x7f:
		return Key{Kind: KeyControl, Byte: c}
	}
	return Key{Kind: KeyPrintable, Byte: c}
}
