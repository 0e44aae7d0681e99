package schema

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"

	kpool "github.com/auditline/captrack/pkg/db/postgres/pool"
	xe "github.com/auditline/captrack/pkg/errors"
)

// schemaPG tracks and applies schema revisions held in a repository
// directory.
//
// The repository contains one subdirectory per revision, named by its
// number, holding the *.sql files which bring the previous revision up to
// it. The revision the database is at is kept in the "schema_version" table.
type schemaPG struct { // implements kdb.SchemaInterface
	pool       kpool.Pool
	repository string
}

func New(pool kpool.Pool, repository string) *schemaPG {
	return &schemaPG{
		pool:       pool,
		repository: repository,
	}
}

type revision struct {
	Number int
	Root   string
}

func (r revision) apply(ctx context.Context, conn kpool.Queryer) error {
	return filepath.WalkDir(r.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".sql") {
			return nil
		}

		query, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		_, err = conn.Exec(ctx, string(query))
		return err
	})
}

func (s *schemaPG) Version(ctx context.Context) (int, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return -1, xe.Wrap(err)
	}
	defer conn.Release()

	var version int
	if err := conn.QueryRow(
		ctx, `select max("version") from "schema_version"`,
	).Scan(&version); err != nil {
		// a database never upgraded has no schema_version table at all.
		if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
			if pgerr.Code == pgerrcode.UndefinedTable {
				return 0, nil
			}
		}
		return -1, xe.Wrap(err)
	}

	return version, nil
}

func (s *schemaPG) Upgrade(ctx context.Context) error {
	revisions, err := s.revisions()
	if err != nil {
		return xe.Wrap(err)
	}

	current, err := s.Version(ctx)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return xe.Wrap(err)
	}
	defer tx.Rollback(ctx)

	for _, r := range revisions {
		if r.Number <= current {
			continue
		}
		if err := r.apply(ctx, tx); err != nil {
			return xe.WrapWithNote(fmt.Sprintf("schema revision %d", r.Number), err)
		}
		if _, err := tx.Exec(ctx, `delete from "schema_version"`); err != nil {
			return xe.Wrap(err)
		}
		if _, err := tx.Exec(
			ctx,
			`insert into "schema_version" ("version") values ($1)`,
			r.Number,
		); err != nil {
			return xe.Wrap(err)
		}
	}

	return tx.Commit(ctx)
}

// Context derives a context which is cancelled when the repository on disk
// holds a newer revision than the database. captrackd stops rather than run
// against tables it does not understand.
func (s *schemaPG) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	cctx, can := context.WithCancelCause(ctx)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		can(err)
		return cctx, func() {}
	}
	if err := w.Add(s.repository); err != nil {
		can(err)
		return cctx, func() {}
	}

	check := func() {
		revisions, err := s.revisions()
		if err != nil {
			can(fmt.Errorf("failed to read schema repository: %w", err))
			return
		}

		current, err := s.Version(ctx)
		if err != nil {
			can(fmt.Errorf("failed to get current schema version: %w", err))
			return
		}

		for _, r := range revisions {
			if current < r.Number {
				can(fmt.Errorf(
					"schema is outdated: %d (in db) < %d (in repository)",
					current, r.Number,
				))
				return
			}
		}
	}

	go func() {
		defer w.Close()

		for {
			select {
			case <-cctx.Done():
				return
			case ev := <-w.Events:
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) {
					continue
				}
				if s.repository != filepath.Dir(ev.Name) {
					continue
				}

				check()
			}
		}
	}()

	check()
	return cctx, func() { can(nil) }
}

// revisions found in the repository, sorted by number.
//
// Directory entries not named by an integer are ignored.
func (s *schemaPG) revisions() ([]revision, error) {
	dir, err := os.ReadDir(s.repository)
	if err != nil {
		return nil, err
	}

	revisions := make([]revision, 0, len(dir))
	for _, entry := range dir {
		if !entry.IsDir() {
			continue
		}

		n, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}

		revisions = append(revisions, revision{
			Number: n,
			Root:   filepath.Join(s.repository, entry.Name()),
		})
	}
	slices.SortFunc(
		revisions,
		func(i, j revision) int { return cmp.Compare(i.Number, j.Number) },
	)

	return revisions, nil
}

func Null() *nullSchema {
	return &nullSchema{}
}

// nullSchema is used when captrackd runs without a schema repository.
type nullSchema struct{}

func (nullSchema) Upgrade(ctx context.Context) error {
	return errors.New("no schema repository available")
}

func (nullSchema) Version(ctx context.Context) (int, error) {
	return -1, nil
}

func (nullSchema) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	return ctx, func() {}
}
