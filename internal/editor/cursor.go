package editor

// Cursor is the 0-based terminal cell the user is on.
type Cursor struct {
	X int
	Y int
}

// Apply returns the cursor after k. Movement stops at the edges of size;
// keys that do not navigate leave the cursor where it is.
func (c Cursor) Apply(k Key, size Size) Cursor {
	switch k.Kind {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		return c.step(k.Kind, size)
	case KeyPageUp, KeyPageDown:
		dir := KeyArrowUp
		if k.Kind == KeyPageDown {
			dir = KeyArrowDown
		}
		for i := 0; i < size.Rows; i++ {
			c = c.step(dir, size)
		}
	case KeyHome:
		c.X = 0
	case KeyEnd:
		c.X = size.Cols - 1
	}
	return c
}

func (c Cursor) step(dir KeyKind, size Size) Cursor {
	switch dir {
	case KeyArrowUp:
		if c.Y > 0 {
			c.Y--
		}
	case KeyArrowDown:
		if c.Y < size.Rows-1 {
			c.Y++
		}
	case KeyArrowLeft:
		if c.X > 0 {
			c.X--
		}
	case KeyArrowRight:
		if c.X < size.Cols-1 {
			c.X++
		}
	}
	return c
}
