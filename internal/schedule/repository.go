package schedule

import "context"

// Repository is the persistence contract for planner data. Implementations
// live in internal/db (SQLite) and internal/filestore (diskv).
type Repository interface {
	// ListItems returns every stored item, in stable insertion order.
	ListItems(ctx context.Context) ([]Item, error)

	// PutItems inserts or replaces items by ID.
	PutItems(ctx context.Context, items ...Item) error

	// DeleteItem removes an item. Deleting an absent ID is not an error.
	DeleteItem(ctx context.Context, id string) error

	ListTemplates(ctx context.Context) ([]Template, error)
	PutTemplate(ctx context.Context, t Template) error
	DeleteTemplate(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]User, error)
	PutUser(ctx context.Context, u User) error

	Close() error
}
