package db

import (
	"context"
	"time"

	"github.com/auditline/captrack/pkg/utils/caldate"
	"github.com/auditline/captrack/pkg/utils/cmp"
)

// Cap is the corrective action plan of a checklist item.
//
// There is at most one per item; writing again replaces the previous plan.
type Cap struct {
	ChecklistId string
	ItemNumber  int
	Description string
	Owner       *string
	TargetDate  *caldate.Date

	// UpdatedAt is set by the database: insert time at first, then the time
	// of each successful update.
	UpdatedAt time.Time
}

func (c *Cap) Equal(o *Cap) bool {
	return c.ChecklistId == o.ChecklistId &&
		c.ItemNumber == o.ItemNumber &&
		c.Description == o.Description &&
		cmp.PEqEq(c.Owner, o.Owner) &&
		c.TargetDate.Equal(o.TargetDate) &&
		c.UpdatedAt.Equal(o.UpdatedAt)
}

// CapSpec is the client-provided part of a Cap.
type CapSpec struct {
	Description string
	Owner       *string
	TargetDate  *caldate.Date
}

type CapInterface interface {
	// Get the cap of an item.
	//
	// Return
	//
	// - *Cap: the cap, or nil when the item has none. Having no cap is not
	//   an error.
	//
	// - error
	Get(ctx context.Context, checklistId string, itemNumber int) (*Cap, error)

	// Upsert writes the cap of an item: update when it exists, insert
	// otherwise, atomically.
	//
	// The updated_at timestamp is refreshed on the update path only;
	// a fresh insert keeps its insert time.
	Upsert(ctx context.Context, checklistId string, itemNumber int, spec CapSpec) error
}
