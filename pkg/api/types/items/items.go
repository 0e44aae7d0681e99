package items

import (
	kdb "github.com/auditline/captrack/pkg/db"
	"github.com/auditline/captrack/pkg/utils/cmp"
)

// Detail is a checklist item as served to clients.
type Detail struct {
	ChecklistId       string  `json:"checklist_id"`
	Number            int     `json:"number"`
	Reference         *string `json:"reference"`
	Question          *string `json:"question"`
	Status            *string `json:"status"`
	Evidence          *string `json:"evidence"`
	OperatorFeedback  *string `json:"operator_feedback"`
	Acceptance        *string `json:"acceptance"`
	InspectorFeedback *string `json:"inspector_feedback"`
}

func (d Detail) Equal(o Detail) bool {
	return d.ChecklistId == o.ChecklistId &&
		d.Number == o.Number &&
		cmp.PEqEq(d.Reference, o.Reference) &&
		cmp.PEqEq(d.Question, o.Question) &&
		cmp.PEqEq(d.Status, o.Status) &&
		cmp.PEqEq(d.Evidence, o.Evidence) &&
		cmp.PEqEq(d.OperatorFeedback, o.OperatorFeedback) &&
		cmp.PEqEq(d.Acceptance, o.Acceptance) &&
		cmp.PEqEq(d.InspectorFeedback, o.InspectorFeedback)
}

func ComposeDetail(i kdb.Item) Detail {
	return Detail{
		ChecklistId:       i.ChecklistId,
		Number:            i.Number,
		Reference:         i.Reference,
		Question:          i.Question,
		Status:            i.Status,
		Evidence:          i.Evidence,
		OperatorFeedback:  i.OperatorFeedback,
		Acceptance:        i.Acceptance,
		InspectorFeedback: i.InspectorFeedback,
	}
}

// OperatorChange is the payload recording an operator's review of an item.
type OperatorChange struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`

	// EvidencePath, when absent, keeps the evidence already stored.
	EvidencePath *string `json:"evidence_path"`
}

// InspectorChange is the payload recording an inspector's review of an item.
//
// Both fields overwrite the stored values. null clears.
type InspectorChange struct {
	Acceptance *string `json:"acceptance"`
	Feedback   *string `json:"feedback"`
}

// Ack is the body of a successful update response.
type Ack struct {
	OK bool `json:"ok"`
}
