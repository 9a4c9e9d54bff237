package editor

import (
	"strings"
	"testing"
)

// frameRows splits a composed frame into its screen rows with the erase
// sequence removed, and returns the trailing cursor-placement part.
func frameRows(t *testing.T, frame string) ([]string, string) {
	t.Helper()
	prefix := escHideCursor + escCursorHome
	if !strings.HasPrefix(frame, prefix) {
		t.Fatalf("frame does not start with hide+home: %q", frame)
	}
	if !strings.HasSuffix(frame, escShowCursor) {
		t.Fatalf("frame does not end with show cursor: %q", frame)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(frame, prefix), escShowCursor)

	last := strings.LastIndex(body, escEraseLine)
	if last < 0 {
		t.Fatalf("no erase-line in frame: %q", frame)
	}
	rows := strings.Split(body[:last+len(escEraseLine)], "\r\n")
	for i, row := range rows {
		if !strings.HasSuffix(row, escEraseLine) {
			t.Fatalf("row %d not terminated by erase-line: %q", i, row)
		}
		rows[i] = strings.TrimSuffix(row, escEraseLine)
	}
	return rows, body[last+len(escEraseLine):]
}

func compose(doc *Document, cur Cursor, size Size) string {
	var ab RenderBuffer
	Compose(&ab, doc, cur, size)
	return string(ab.Bytes())
}

func TestComposeEmptyDocument(t *testing.T) {
	rows, tail := frameRows(t, compose(&Document{}, Cursor{}, Size{Rows: 24, Cols: 80}))
	if len(rows) != 24 {
		t.Fatalf("got %d rows, want 24", len(rows))
	}

	welcome := "Kaze editor -- version " + Version
	for y, row := range rows {
		if y == 8 {
			padding := (80 - len(welcome)) / 2
			want := "~" + strings.Repeat(" ", padding-1) + welcome
			if row != want {
				t.Errorf("banner row = %q, want %q", row, want)
			}
			continue
		}
		if row != "~" {
			t.Errorf("row %d = %q, want ~", y, row)
		}
	}
	if tail != "\x1b[1;1H" {
		t.Errorf("cursor placement = %q", tail)
	}
}

func TestComposeNarrowBanner(t *testing.T) {
	rows, _ := frameRows(t, compose(&Document{}, Cursor{}, Size{Rows: 3, Cols: 10}))
	if rows[1] != "Kaze edito" {
		t.Errorf("banner = %q, want truncated to 10 bytes", rows[1])
	}
}

func TestComposeTruncatesRow(t *testing.T) {
	doc := NewDocument([]byte("hello"))
	rows, _ := frameRows(t, compose(doc, Cursor{}, Size{Rows: 3, Cols: 3}))
	want := []string{"hel", "~", "~"}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestComposeDocumentSuppressesBanner(t *testing.T) {
	doc := NewDocument([]byte("first line"))
	rows, _ := frameRows(t, compose(doc, Cursor{}, Size{Rows: 24, Cols: 80}))
	if rows[0] != "first line" {
		t.Errorf("row 0 = %q", rows[0])
	}
	for y := 1; y < len(rows); y++ {
		if rows[y] != "~" {
			t.Errorf("row %d = %q, want ~", y, rows[y])
		}
	}
}

func TestComposeCursorPlacement(t *testing.T) {
	frame := compose(&Document{}, Cursor{X: 4, Y: 2}, Size{Rows: 5, Cols: 10})
	_, tail := frameRows(t, frame)
	if tail != "\x1b[3;5H" {
		t.Errorf("cursor placement = %q, want ESC[3;5H", tail)
	}
	if n := strings.Count(frame, "\r\n"); n != 4 {
		t.Errorf("frame has %d line breaks, want 4", n)
	}
}

func TestRenderBufferReset(t *testing.T) {
	var ab RenderBuffer
	ab.AppendString("abc")
	ab.AppendInt(42)
	ab.AppendByte('!')
	if got := string(ab.Bytes()); got != "abc42!" {
		t.Errorf("Bytes = %q", got)
	}
	ab.Reset()
	if ab.Len() != 0 {
		t.Errorf("Len after Reset = %d", ab.Len())
	}
	ab.Append([]byte("x"))
	if got := string(ab.Bytes()); got != "x" {
		t.Errorf("Bytes after Reset = %q", got)
	}
}
