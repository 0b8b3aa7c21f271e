//go:build linux

package backend

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TCGETS
	// TCSETSF drains output and discards pending input before applying.
	ioctlSetTermios = unix.TCSETSF
)
