package tombstone_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=tombstone_port.go -destination=../../mocks/mock_tombstone_port.go -package=mocks

// TombstonePort manages links permanently excluded from a user's timeline.
// InsertTombstone is an idempotent insert-or-noop.
type TombstonePort interface {
	ListTombstones(ctx context.Context, ownerID string) ([]string, error)
	InsertTombstone(ctx context.Context, ownerID, link string) error
}
