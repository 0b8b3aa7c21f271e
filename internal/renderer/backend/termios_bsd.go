//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package backend

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TIOCGETA
	// TIOCSETAF drains output and discards pending input before applying.
	ioctlSetTermios = unix.TIOCSETAF
)
