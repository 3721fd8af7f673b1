package domain

import "context"

type BloomRepository interface {
	// Add puts the item id into the filter of its kind
	Add(ctx context.Context, kind Kind, id string) error

	// Exists reports whether the id may exist.
	// true: maybe (check cache/DB), false: definitely absent (404 straight away)
	Exists(ctx context.Context, kind Kind, id string) (bool, error)

	// BulkAdd is used when warming the filter at startup
	BulkAdd(ctx context.Context, kind Kind, ids []string) error
}
