// Package permission describes who manages what: the directory of
// collection managers and repository administrators consulted before a
// download link is issued or accepted.
package permission

import "context"

// ManagerDirectory resolves group membership, following nested groups.
// Implementations must be safe for concurrent use.
type ManagerDirectory interface {
	// ManagersOf returns the emails of every member of the collection's
	// manager group, direct or through nested groups.
	ManagersOf(ctx context.Context, collectionID string) ([]string, error)
	IsManager(ctx context.Context, email, collectionID string) (bool, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}
