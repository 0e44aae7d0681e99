package caps

import (
	kdb "github.com/auditline/captrack/pkg/db"
	"github.com/auditline/captrack/pkg/utils/caldate"
	"github.com/auditline/captrack/pkg/utils/cmp"
	"github.com/auditline/captrack/pkg/utils/rfctime"
)

// Detail is a corrective action plan as served to clients.
type Detail struct {
	Description string          `json:"description"`
	Owner       *string         `json:"owner"`
	TargetDate  *caldate.Date   `json:"target_date"`
	UpdatedAt   rfctime.RFC3339 `json:"updated_at"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Description == o.Description &&
		cmp.PEqEq(d.Owner, o.Owner) &&
		d.TargetDate.Equal(o.TargetDate) &&
		d.UpdatedAt.Equal(&o.UpdatedAt)
}

func ComposeDetail(c kdb.Cap) Detail {
	return Detail{
		Description: c.Description,
		Owner:       c.Owner,
		TargetDate:  c.TargetDate,
		UpdatedAt:   rfctime.RFC3339(c.UpdatedAt),
	}
}

// Spec is a corrective action plan as clients submit it.
//
// TargetDate is a dotted date expression like "31.01.2025". Malformed or
// missing dates mean "no target date"; they never fail the request.
type Spec struct {
	Description string  `json:"description"`
	Owner       *string `json:"owner"`
	TargetDate  *string `json:"target_date"`
}

// Ack is the body of a successful plan write.
type Ack struct {
	OK bool `json:"ok"`
}

// Step is one action step as served to clients.
type Step struct {
	StepNo     int           `json:"step_no"`
	StepText   string        `json:"step_text"`
	TargetDate *caldate.Date `json:"target_date"`
}

func (s Step) Equal(o Step) bool {
	return s.StepNo == o.StepNo &&
		s.StepText == o.StepText &&
		s.TargetDate.Equal(o.TargetDate)
}

func ComposeStep(s kdb.Step) Step {
	return Step{
		StepNo:     s.StepNo,
		StepText:   s.StepText,
		TargetDate: s.TargetDate,
	}
}

// StepSpec is one action step as clients submit it.
//
// StepNo is accepted for compatibility but ignored: steps are renumbered
// 1..N in the order they arrive. TargetDate follows Spec's leniency.
type StepSpec struct {
	StepNo     *int    `json:"step_no"`
	StepText   string  `json:"step_text"`
	TargetDate *string `json:"target_date"`
}

type StepsSpec struct {
	Steps []StepSpec `json:"steps"`
}

// PutResult acknowledges a steps replacement.
type PutResult struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

// FinalDate is the completion date of a plan, the latest target date over
// its steps. null when no step carries one.
type FinalDate struct {
	FinalDate *caldate.Date `json:"final_date"`
}
