//go:build linux

package rt

import (
	"runtime"
	"unsafe"

	"codeberg.org/ssidwatch/ssidwatch/internal/errors"
	"golang.org/x/sys/unix"
)

// schedParam mirrors struct sched_param for sched_setscheduler(2), which
// has no wrapper in x/sys/unix.
type schedParam struct {
	priority int32
}

// LockMemory locks all current and future process memory into RAM so the
// workers never take a demand-paging hit.
func LockMemory() error {
	if err := unix.Mlockall(unix.MCL_CURRENT | unix.MCL_FUTURE); err != nil {
		return errors.New().Wrap(errors.ErrMemoryLock, err)
	}

	return nil
}

// PrefaultStack touches every page of a stack-resident region so the first
// deep call in a worker does not fault.
func PrefaultStack() {
	var dummy [stackPrefaultSize]byte
	for i := 0; i < len(dummy); i += pageSize {
		dummy[i] = 1
	}
	runtime.KeepAlive(&dummy)
}

// PinCPU restricts the whole process to a single core to avoid cross-core
// migration jitter.
func PinCPU(cpu int) error {
	errFactory := errors.New()

	if cpu < 0 || cpu >= maxCPU {
		return errFactory.WithData(errors.ErrCPUAffinity, cpu)
	}

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return errFactory.Wrap(errors.ErrCPUAffinity, err)
	}

	return nil
}

// MakeRealtime switches the calling thread to SCHED_RR at the given
// priority. The caller must have pinned itself with runtime.LockOSThread
// first; pid 0 addresses the current thread.
func MakeRealtime(priority int) error {
	errFactory := errors.New()

	if priority < 1 || priority > 99 {
		return errFactory.WithData(errors.ErrSchedPolicy, priority)
	}

	param := schedParam{priority: int32(priority)}
	_, _, errno := unix.Syscall(
		unix.SYS_SCHED_SETSCHEDULER,
		0,
		uintptr(unix.SCHED_RR),
		uintptr(unsafe.Pointer(&param)),
	)
	if errno != 0 {
		return errFactory.Wrap(errors.ErrSchedPolicy, errno)
	}

	return nil
}
