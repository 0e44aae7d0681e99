package internal

import (
	"github.com/jackc/pgtype"

	"github.com/auditline/captrack/pkg/utils/caldate"
)

// PgDate renders an optional calendar date as a DATE query parameter.
func PgDate(d *caldate.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Status: pgtype.Null}
	}
	return pgtype.Date{Time: d.Time(), Status: pgtype.Present}
}

// DateOrNil reads a scanned DATE column back as an optional calendar date.
func DateOrNil(d pgtype.Date) *caldate.Date {
	if d.Status != pgtype.Present {
		return nil
	}
	date := caldate.Date(d.Time)
	return &date
}
