package editor

import "golang.org/x/sys/unix"

// TCSETSF is tcsetattr with TCSAFLUSH: pending input is dropped.
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
