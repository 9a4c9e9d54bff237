package editor

import "fmt"

const Version = "0.0.1"

// VT100 sequences, see https://vt100.net/docs/vt100-ug/chapter3.html
const (
	escClearScreen = "\x1b[2J"
	escCursorHome  = "\x1b[H"
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
	escEraseLine   = "\x1b[K"
)

// Compose appends a full frame showing doc with the cursor at cur.
func Compose(ab *RenderBuffer, doc *Document, cur Cursor, size Size) {
	ab.AppendString(escHideCursor)
	ab.AppendString(escCursorHome)

	drawRows(ab, doc, size)

	ab.AppendString("\x1b[")
	ab.AppendInt(cur.Y + 1)
	ab.AppendByte(';')
	ab.AppendInt(cur.X + 1)
	ab.AppendByte('H')

	ab.AppendString(escShowCursor)
}

func drawRows(ab *RenderBuffer, doc *Document, size Size) {
	for y := 0; y < size.Rows; y++ {
		if row, ok := doc.Row(y); ok {
			chars := row.Chars
			if len(chars) > size.Cols {
				chars = chars[:size.Cols]
			}
			ab.Append(chars)
		} else if doc.NumRows() == 0 && y == size.Rows/3 {
			drawWelcome(ab, size.Cols)
		} else {
			ab.AppendByte('~')
		}

		ab.AppendString(escEraseLine)
		// a newline on the last row would scroll the screen
		if y < size.Rows-1 {
			ab.AppendString("\r\n")
		}
	}
}

func drawWelcome(ab *RenderBuffer, cols int) {
	welcome := fmt.Sprintf("Kaze editor -- version %s", Version)
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}

	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		ab.AppendByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		ab.AppendByte(' ')
	}
	ab.AppendString(welcome)
}
