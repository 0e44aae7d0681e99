package caps

import (
	"context"
	"errors"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	kdb "github.com/auditline/captrack/pkg/db"
	kpgintr "github.com/auditline/captrack/pkg/db/postgres/internal"
	kpool "github.com/auditline/captrack/pkg/db/postgres/pool"
)

type capsPG struct { // implements kdb.CapInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *capsPG {
	return &capsPG{pool: pool}
}

func (c *capsPG) Get(ctx context.Context, checklistId string, itemNumber int) (*kdb.Cap, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	found := kdb.Cap{ChecklistId: checklistId, ItemNumber: itemNumber}
	var targetDate pgtype.Date
	if err := conn.QueryRow(
		ctx,
		`
		select "description", "owner", "target_date", "updated_at"
		from "caps"
		where "checklist_id" = $1 and "item_number" = $2
		`,
		checklistId, itemNumber,
	).Scan(
		&found.Description, &found.Owner, &targetDate, &found.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// an item without a cap is a normal state, not an error.
			return nil, nil
		}
		return nil, err
	}
	found.TargetDate = kpgintr.DateOrNil(targetDate)

	return &found, nil
}

func (c *capsPG) Upsert(ctx context.Context, checklistId string, itemNumber int, spec kdb.CapSpec) error {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// The primary key on ("checklist_id", "item_number") keeps concurrent
	// first writes from leaving two rows; the conflicting one lands on the
	// update branch. updated_at is refreshed there only, so a fresh insert
	// keeps its insert time.
	_, err = conn.Exec(
		ctx,
		`
		insert into "caps" ("checklist_id", "item_number", "description", "owner", "target_date")
		values ($1, $2, $3, $4, $5)
		on conflict ("checklist_id", "item_number") do update
		set "description" = excluded."description",
			"owner" = excluded."owner",
			"target_date" = excluded."target_date",
			"updated_at" = CURRENT_TIMESTAMP
		`,
		checklistId, itemNumber,
		spec.Description, spec.Owner, kpgintr.PgDate(spec.TargetDate),
	)
	return err
}
