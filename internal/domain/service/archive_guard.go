package service

import (
	"context"
	"time"
)

// ArchiveGuard narrows the window in which two reconciliation runs stage the
// same advertisement. It does not close it: the backing store has no
// compare-and-set, so duplicates stay possible when claims expire mid-run or
// the guard is unreachable.
type ArchiveGuard interface {
	// Claim tries to claim every id for ttl and returns the ids this caller owns.
	Claim(ctx context.Context, ids []string, ttl time.Duration) ([]string, error)

	// Release drops claims this caller owns.
	Release(ctx context.Context, ids []string) error
}
