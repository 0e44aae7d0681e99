package db

import (
	"context"

	"github.com/auditline/captrack/pkg/utils/caldate"
)

// Step is one action step of a corrective action plan.
//
// StepNo runs 1..N without gaps within an item. It is assigned by the
// database layer from the order steps are given in, never by clients.
type Step struct {
	ChecklistId string
	ItemNumber  int
	StepNo      int
	StepText    string
	TargetDate  *caldate.Date
}

func (s *Step) Equal(o *Step) bool {
	return s.ChecklistId == o.ChecklistId &&
		s.ItemNumber == o.ItemNumber &&
		s.StepNo == o.StepNo &&
		s.StepText == o.StepText &&
		s.TargetDate.Equal(o.TargetDate)
}

// StepSpec is the client-provided part of a Step.
type StepSpec struct {
	StepText   string
	TargetDate *caldate.Date
}

type StepInterface interface {
	// Get the steps of an item's cap, ordered by step number.
	//
	// Return
	//
	// - []Step: empty when the item has no steps. Not an error.
	//
	// - error
	Get(ctx context.Context, checklistId string, itemNumber int) ([]Step, error)

	// Replace all steps of an item's cap with the given ones, atomically.
	//
	// Steps are stored numbered 1..len(specs) in the order given.
	// An empty specs clears the item's steps.
	//
	// Return
	//
	// - int: number of steps stored.
	//
	// - error
	Replace(ctx context.Context, checklistId string, itemNumber int, specs []StepSpec) (int, error)

	// FinalDate is the latest target date over the steps of an item's cap.
	//
	// Return
	//
	// - *caldate.Date: nil when no step carries a target date.
	//
	// - error
	FinalDate(ctx context.Context, checklistId string, itemNumber int) (*caldate.Date, error)
}
