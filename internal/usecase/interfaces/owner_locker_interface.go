package interfaces

import "context"

// IOwnerLocker serializes mutations of one owner's collection.
//
// Lock blocks until the owner's lock is held or ctx is done. The returned
// release func must be called exactly once.

type IOwnerLocker interface {
	Lock(ctx context.Context, ownerID string) (release func(), err error)
}
