package db

import "context"

type SchemaInterface interface {
	// Version of the schema the database is at. 0 when never upgraded.
	Version(ctx context.Context) (int, error)

	// Upgrade the database schema to the newest version in the repository.
	Upgrade(ctx context.Context) error

	// Context derives a context which gets cancelled when the schema
	// repository on disk outruns the version in the database.
	Context(ctx context.Context) (context.Context, context.CancelFunc)
}
