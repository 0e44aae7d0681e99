package errors

import (
	"fmt"

	kdb "github.com/auditline/captrack/pkg/db"
)

// requested record is missing.
type Missing struct {
	Table    string
	Identity string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Identity, m.Table)
}

func (m Missing) Unwrap() error {
	return kdb.ErrMissing
}

// NewMissing builds a Missing for the (checklist id, item number) keys all
// captrack tables share.
func NewMissing(table string, checklistId string, number int) Missing {
	return Missing{
		Table:    table,
		Identity: fmt.Sprintf("(checklist_id, number) = (%s, %d)", checklistId, number),
	}
}
