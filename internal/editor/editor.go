package editor

import (
	"fortio.org/log"
)

type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

type Editor struct {
	term     Terminal
	size     Size
	cursor   Cursor
	doc      *Document
	state    State
	restored bool
	frame    RenderBuffer
}

func New(t Terminal, doc *Document) *Editor {
	if doc == nil {
		doc = &Document{}
	}
	return &Editor{term: t, doc: doc}
}

// Init puts the terminal into raw mode and reads its size. Callers must
// arrange for Close to run once Init has been called, even if it fails.
func (e *Editor) Init() error {
	if err := e.term.EnterRawMode(); err != nil {
		return err
	}
	size, err := e.term.WindowSize()
	if err != nil {
		return err
	}
	e.size = size
	length := 0
	if row, ok := e.doc.Row(0); ok {
		length = row.Len()
	}
	log.Infof("screen is %dx%d, document has %d row(s) of %d bytes", size.Cols, size.Rows, e.doc.NumRows(), length)
	return nil
}

func (e *Editor) Size() Size     { return e.size }
func (e *Editor) Cursor() Cursor { return e.cursor }
func (e *Editor) State() State   { return e.state }

// Run redraws and handles keys until the user quits. A non-nil error
// means the terminal failed underneath us.
func (e *Editor) Run() error {
	for e.state == Running {
		e.RefreshScreen()
		k, err := ReadKey(e.term)
		if err != nil {
			return err
		}
		if err := e.ProcessKey(k); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) ProcessKey(k Key) error {
	if e.state == Terminated {
		return nil
	}
	log.Debugf("key %v", k)

	switch {
	case k.Kind == KeyQuit:
		e.state = Terminated
		log.Infof("quit requested")
		return e.Teardown()
	case k.IsNavigation():
		e.cursor = e.cursor.Apply(k, e.size)
	}
	return nil
}

// RefreshScreen draws the whole screen with one write. A frame that
// cannot be written is dropped.
func (e *Editor) RefreshScreen() {
	e.frame.Reset()
	Compose(&e.frame, e.doc, e.cursor, e.size)
	if _, err := e.term.Write(e.frame.Bytes()); err != nil {
		log.Warnf("dropping frame of %d bytes: %v", e.frame.Len(), err)
	}
	e.frame.Reset()
}

// Teardown clears the screen and restores the terminal.
func (e *Editor) Teardown() error {
	if !e.restored {
		_, _ = e.term.Write([]byte(escClearScreen + escCursorHome))
	}
	return e.Close()
}

// Close restores the terminal attributes saved by Init. Only the first
// call reaches the terminal.
func (e *Editor) Close() error {
	if e.restored {
		return nil
	}
	e.restored = true
	return e.term.ExitRawMode()
}
