package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	kdb "github.com/auditline/captrack/pkg/db"
	kpgcaps "github.com/auditline/captrack/pkg/db/postgres/caps"
	kpgitems "github.com/auditline/captrack/pkg/db/postgres/items"
	kpool "github.com/auditline/captrack/pkg/db/postgres/pool"
	kpgschema "github.com/auditline/captrack/pkg/db/postgres/schema"
	kpgsteps "github.com/auditline/captrack/pkg/db/postgres/steps"
	xe "github.com/auditline/captrack/pkg/errors"
)

type capDBPostgres struct {
	pool   *pgxpool.Pool
	items  kdb.ItemInterface
	caps   kdb.CapInterface
	steps  kdb.StepInterface
	schema kdb.SchemaInterface
}

type Config struct {
	SchemaRepository string
	PoolMin          int32
	PoolMax          int32
}

func DefaultConfig() Config {
	return Config{}
}

type Option func(*Config) *Config

func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

// WithPoolSize bounds the connection pool. Zero leaves the pgxpool default.
func WithPoolSize(minConns, maxConns int32) Option {
	return func(c *Config) *Config {
		c.PoolMin = minConns
		c.PoolMax = maxConns
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (kdb.CapDatabase, error) {
	c := DefaultConfig()
	for _, option := range options {
		c = *option(&c)
	}

	conf, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	if 0 < c.PoolMin {
		conf.MinConns = c.PoolMin
	}
	if 0 < c.PoolMax {
		conf.MaxConns = c.PoolMax
	}

	pool, err := pgxpool.ConnectConfig(ctx, conf)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	p := kpool.Wrap(pool)
	var schema kdb.SchemaInterface = kpgschema.Null()
	if c.SchemaRepository != "" {
		schema = kpgschema.New(p, c.SchemaRepository)
	}

	return &capDBPostgres{
		pool:   pool,
		items:  kpgitems.New(p),
		caps:   kpgcaps.New(p),
		steps:  kpgsteps.New(p),
		schema: schema,
	}, nil
}

func (k *capDBPostgres) Items() kdb.ItemInterface {
	return k.items
}

func (k *capDBPostgres) Caps() kdb.CapInterface {
	return k.caps
}

func (k *capDBPostgres) Steps() kdb.StepInterface {
	return k.steps
}

func (k *capDBPostgres) Schema() kdb.SchemaInterface {
	return k.schema
}

func (k *capDBPostgres) Close() error {
	k.pool.Close()
	return nil
}
