//go:build !linux

package rt

import "codeberg.org/ssidwatch/ssidwatch/internal/errors"

// Non-Linux builds run without real-time guarantees; memory locking and
// pinning report ErrSchedPolicy-class failures so callers can decide
// whether to continue.

func LockMemory() error {
	return errors.New().WithMessage(errors.ErrMemoryLock, "memory locking requires Linux")
}

func PrefaultStack() {}

func PinCPU(_ int) error {
	return errors.New().WithMessage(errors.ErrCPUAffinity, "CPU affinity requires Linux")
}

func MakeRealtime(_ int) error {
	return errors.New().WithMessage(errors.ErrSchedPolicy, "SCHED_RR requires Linux")
}
