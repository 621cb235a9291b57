// OS-level file locking for cross-process extraction.
//
// fileLock wraps flock(2) / LockFileEx around the archive file handle.
// Parallel test suites routinely share one installed data tree; the
// exclusive lock makes them unpack a family one at a time instead of
// interleaving partial writes. The mutex serialises syscalls on the
// same handle within a process.
package mtdata

import (
	"os"
	"sync"
)

// LockMode selects shared (read) or exclusive (write) locking.
type LockMode int

const (
	LockShared LockMode = iota
	LockExclusive
)

// fileLock holds an OS-level lock on an open file.
type fileLock struct {
	mu sync.Mutex
	f  *os.File
}

// Lock acquires a shared or exclusive flock, blocking until granted.
func (l *fileLock) Lock(mode LockMode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lock(mode)
}

// Unlock releases the flock.
func (l *fileLock) Unlock() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.unlock()
}
