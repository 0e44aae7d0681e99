package items

import (
	"context"

	"github.com/jackc/pgconn"

	kdb "github.com/auditline/captrack/pkg/db"
	kpgerr "github.com/auditline/captrack/pkg/db/postgres/errors"
	kpool "github.com/auditline/captrack/pkg/db/postgres/pool"
)

type itemsPG struct { // implements kdb.ItemInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *itemsPG {
	return &itemsPG{pool: pool}
}

func (i *itemsPG) List(ctx context.Context, checklistId string) ([]kdb.Item, error) {
	conn, err := i.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return i.list(ctx, conn, checklistId)
}

func (i *itemsPG) list(ctx context.Context, conn kpool.Queryer, checklistId string) ([]kdb.Item, error) {
	rows, err := conn.Query(
		ctx,
		`
		select
			"number", "reference", "question",
			"status", "evidence", "operator_feedback",
			"acceptance", "inspector_feedback"
		from "checklist_items"
		where "checklist_id" = $1
		order by "number"
		`,
		checklistId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []kdb.Item{}
	for rows.Next() {
		item := kdb.Item{ChecklistId: checklistId}
		if err := rows.Scan(
			&item.Number, &item.Reference, &item.Question,
			&item.Status, &item.Evidence, &item.OperatorFeedback,
			&item.Acceptance, &item.InspectorFeedback,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (i *itemsPG) UpdateOperator(ctx context.Context, checklistId string, number int, update kdb.OperatorUpdate) error {
	conn, err := i.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// Evidence is written only when the operator sent some. A resubmission
	// of status & feedback alone must not wipe evidence recorded before.
	var tag pgconn.CommandTag
	if update.Evidence != nil {
		tag, err = conn.Exec(
			ctx,
			`
			update "checklist_items"
			set "status" = $1, "evidence" = $2, "operator_feedback" = $3
			where "checklist_id" = $4 and "number" = $5
			`,
			update.Status, *update.Evidence, update.Feedback,
			checklistId, number,
		)
	} else {
		tag, err = conn.Exec(
			ctx,
			`
			update "checklist_items"
			set "status" = $1, "operator_feedback" = $2
			where "checklist_id" = $3 and "number" = $4
			`,
			update.Status, update.Feedback,
			checklistId, number,
		)
	}
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return kpgerr.NewMissing("checklist_items", checklistId, number)
	}
	return nil
}

func (i *itemsPG) UpdateInspector(ctx context.Context, checklistId string, number int, update kdb.InspectorUpdate) error {
	conn, err := i.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// both fields are overwritten. nil means "clear".
	tag, err := conn.Exec(
		ctx,
		`
		update "checklist_items"
		set "acceptance" = $1, "inspector_feedback" = $2
		where "checklist_id" = $3 and "number" = $4
		`,
		update.Acceptance, update.Feedback,
		checklistId, number,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return kpgerr.NewMissing("checklist_items", checklistId, number)
	}
	return nil
}
