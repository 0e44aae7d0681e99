package db

import (
	"context"

	"github.com/auditline/captrack/pkg/utils/cmp"
)

// Item is one row of an audit checklist.
//
// Rows are loaded into the database ahead of time; captrack only annotates
// them with review results. All annotation fields are nullable.
type Item struct {
	ChecklistId string
	Number      int

	// descriptive fields, read-only for captrack
	Reference *string
	Question  *string

	// operator's side of the review
	Status           *string
	Evidence         *string
	OperatorFeedback *string

	// inspector's side of the review
	Acceptance        *string
	InspectorFeedback *string
}

func (i *Item) Equal(o *Item) bool {
	return i.ChecklistId == o.ChecklistId &&
		i.Number == o.Number &&
		cmp.PEqEq(i.Reference, o.Reference) &&
		cmp.PEqEq(i.Question, o.Question) &&
		cmp.PEqEq(i.Status, o.Status) &&
		cmp.PEqEq(i.Evidence, o.Evidence) &&
		cmp.PEqEq(i.OperatorFeedback, o.OperatorFeedback) &&
		cmp.PEqEq(i.Acceptance, o.Acceptance) &&
		cmp.PEqEq(i.InspectorFeedback, o.InspectorFeedback)
}

// OperatorUpdate is what an operator submits for an item.
type OperatorUpdate struct {
	Status   string
	Feedback string

	// Evidence, when nil, leaves the stored evidence as it is.
	Evidence *string
}

// InspectorUpdate is what an inspector submits for an item.
//
// Unlike OperatorUpdate, both fields are written unconditionally;
// nil means "clear".
type InspectorUpdate struct {
	Acceptance *string
	Feedback   *string
}

type ItemInterface interface {
	// List items of a checklist, ordered by item number.
	//
	// Args
	//
	// - context.Context
	//
	// - string: checklist id
	//
	// Return
	//
	// - []Item: items of the checklist. Empty when the checklist has none.
	//
	// - error
	List(ctx context.Context, checklistId string) ([]Item, error)

	// UpdateOperator records the operator's review of an item.
	//
	// Status and feedback are always written. Evidence is written only when
	// update.Evidence is non-nil.
	//
	// Return
	//
	// - error: ErrMissing when the item does not exist.
	UpdateOperator(ctx context.Context, checklistId string, number int, update OperatorUpdate) error

	// UpdateInspector records the inspector's review of an item.
	//
	// Both acceptance and feedback are overwritten, nils clearing the
	// stored values.
	//
	// Return
	//
	// - error: ErrMissing when the item does not exist.
	UpdateInspector(ctx context.Context, checklistId string, number int, update InspectorUpdate) error
}
