package scanner

import "context"

// Scanner discovers currently visible network identifiers. One blocking
// invocation per producer cycle; timeout and failure handling belong to
// the caller.
type Scanner interface {
	Scan(ctx context.Context) ([]string, error)
}
