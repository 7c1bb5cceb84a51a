// Package rt prepares the process for soft real-time operation: memory
// locking, stack prefaulting, CPU pinning and round-robin scheduling for
// the worker threads. Both workers must run at the same priority so the
// round-robin time slice keeps either side of the sample queue from
// starving the other.
package rt

const (
	// stackPrefaultSize is the stack region guaranteed fault-free.
	stackPrefaultSize = 128 * 1024

	pageSize = 4096
	maxCPU   = 1024
)
