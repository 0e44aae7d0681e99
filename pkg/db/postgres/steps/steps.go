package steps

import (
	"context"

	"github.com/jackc/pgtype"

	kdb "github.com/auditline/captrack/pkg/db"
	kpgintr "github.com/auditline/captrack/pkg/db/postgres/internal"
	kpool "github.com/auditline/captrack/pkg/db/postgres/pool"
	"github.com/auditline/captrack/pkg/utils/caldate"
)

type stepsPG struct { // implements kdb.StepInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *stepsPG {
	return &stepsPG{pool: pool}
}

func (s *stepsPG) Get(ctx context.Context, checklistId string, itemNumber int) ([]kdb.Step, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`
		select "step_no", "step_text", "target_date"
		from "cap_steps"
		where "checklist_id" = $1 and "item_number" = $2
		order by "step_no"
		`,
		checklistId, itemNumber,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := []kdb.Step{}
	for rows.Next() {
		step := kdb.Step{ChecklistId: checklistId, ItemNumber: itemNumber}
		var targetDate pgtype.Date
		if err := rows.Scan(&step.StepNo, &step.StepText, &targetDate); err != nil {
			return nil, err
		}
		step.TargetDate = kpgintr.DateOrNil(targetDate)
		steps = append(steps, step)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return steps, nil
}

func (s *stepsPG) Replace(ctx context.Context, checklistId string, itemNumber int, specs []kdb.StepSpec) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(
		ctx,
		`delete from "cap_steps" where "checklist_id" = $1 and "item_number" = $2`,
		checklistId, itemNumber,
	); err != nil {
		return 0, err
	}

	// step numbers restart from 1, in the order steps were sent.
	for nth, spec := range specs {
		if _, err := tx.Exec(
			ctx,
			`
			insert into "cap_steps" ("checklist_id", "item_number", "step_no", "step_text", "target_date")
			values ($1, $2, $3, $4, $5)
			`,
			checklistId, itemNumber, nth+1,
			spec.StepText, kpgintr.PgDate(spec.TargetDate),
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return len(specs), nil
}

func (s *stepsPG) FinalDate(ctx context.Context, checklistId string, itemNumber int) (*caldate.Date, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var last pgtype.Date
	if err := conn.QueryRow(
		ctx,
		`select max("target_date") from "cap_steps" where "checklist_id" = $1 and "item_number" = $2`,
		checklistId, itemNumber,
	).Scan(&last); err != nil {
		return nil, err
	}

	return kpgintr.DateOrNil(last), nil
}
