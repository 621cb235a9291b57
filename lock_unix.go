//go:build unix || linux || darwin

package mtdata

import (
	"syscall"
)

func (l *fileLock) lock(mode LockMode) error {
	op := syscall.LOCK_SH
	if mode == LockExclusive {
		op = syscall.LOCK_EX
	}
	// Blocking acquire: extraction waits for the other process rather
	// than failing, so LOCK_NB is deliberately absent.
	return syscall.Flock(int(l.f.Fd()), op)
}

func (l *fileLock) unlock() error {
	return syscall.Flock(int(l.f.Fd()), syscall.LOCK_UN)
}
