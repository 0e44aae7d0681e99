package caps_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/auditline/captrack/pkg/api/types/caps"
	kdb "github.com/auditline/captrack/pkg/db"
	"github.com/auditline/captrack/pkg/utils/caldate"
	"github.com/auditline/captrack/pkg/utils/pointer"
	"github.com/auditline/captrack/pkg/utils/rfctime"
	"github.com/auditline/captrack/pkg/utils/try"
)

func TestDetail(t *testing.T) {
	t.Run("it composes from a database record", func(t *testing.T) {
		targetDate := caldate.Date(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
		record := kdb.Cap{
			ChecklistId: "audit-2024",
			ItemNumber:  3,
			Description: "renew the fire extinguisher certificates",
			Owner:       pointer.Ref("facility team"),
			TargetDate:  &targetDate,
			UpdatedAt:   time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		}

		actual := caps.ComposeDetail(record)

		expected := caps.Detail{
			Description: "renew the fire extinguisher certificates",
			Owner:       pointer.Ref("facility team"),
			TargetDate:  &targetDate,
			UpdatedAt:   rfctime.RFC3339(record.UpdatedAt),
		}
		if !actual.Equal(expected) {
			t.Errorf(
				"unexpected detail: (actual, expected) = (%+v, %+v)",
				actual, expected,
			)
		}
	})

	t.Run("it marshals missing owner and target date as null", func(t *testing.T) {
		detail := caps.Detail{
			Description: "fix it",
			UpdatedAt: rfctime.RFC3339(
				time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			),
		}

		actual := string(try.To(json.Marshal(detail)).OrFatal(t))

		expected := `{"description":"fix it","owner":null,"target_date":null,"updated_at":"2024-03-01T10:30:00+00:00"}`
		if actual != expected {
			t.Errorf(
				"unexpected json: (actual, expected) = (%s, %s)",
				actual, expected,
			)
		}
	})

	t.Run("it marshals the target date in ISO form", func(t *testing.T) {
		targetDate := caldate.Date(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
		detail := caps.Detail{
			Description: "fix it",
			Owner:       pointer.Ref("qa"),
			TargetDate:  &targetDate,
			UpdatedAt: rfctime.RFC3339(
				time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			),
		}

		actual := string(try.To(json.Marshal(detail)).OrFatal(t))

		expected := `{"description":"fix it","owner":"qa","target_date":"2025-01-31","updated_at":"2024-03-01T10:30:00+00:00"}`
		if actual != expected {
			t.Errorf(
				"unexpected json: (actual, expected) = (%s, %s)",
				actual, expected,
			)
		}
	})
}

func TestStepsSpec(t *testing.T) {
	t.Run("it takes date expressions as they are, leaving leniency to the caller", func(t *testing.T) {
		payload := `{"steps":[
			{"step_no": 7, "step_text": "contain", "target_date": "31.01.2025"},
			{"step_text": "verify", "target_date": "bogus"},
			{"step_text": "close"}
		]}`

		spec := caps.StepsSpec{}
		if err := json.Unmarshal([]byte(payload), &spec); err != nil {
			t.Fatal(err)
		}

		if len(spec.Steps) != 3 {
			t.Fatalf("unexpected steps: %+v", spec.Steps)
		}

		if spec.Steps[0].StepNo == nil || *spec.Steps[0].StepNo != 7 {
			t.Errorf("unexpected step_no: %+v", spec.Steps[0].StepNo)
		}
		if d := caldate.ParseOrNil(spec.Steps[0].TargetDate); d == nil || d.String() != "2025-01-31" {
			t.Errorf("unexpected target date: %+v", d)
		}

		// the malformed and the missing date both mean "no date"
		if d := caldate.ParseOrNil(spec.Steps[1].TargetDate); d != nil {
			t.Errorf("unexpected target date: %+v", d)
		}
		if d := caldate.ParseOrNil(spec.Steps[2].TargetDate); d != nil {
			t.Errorf("unexpected target date: %+v", d)
		}
	})
}

func TestStep(t *testing.T) {
	t.Run("it composes from a database record", func(t *testing.T) {
		targetDate := caldate.Date(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
		record := kdb.Step{
			ChecklistId: "audit-2024",
			ItemNumber:  3,
			StepNo:      1,
			StepText:    "contain",
			TargetDate:  &targetDate,
		}

		actual := caps.ComposeStep(record)

		expected := caps.Step{
			StepNo:     1,
			StepText:   "contain",
			TargetDate: &targetDate,
		}
		if !actual.Equal(expected) {
			t.Errorf(
				"unexpected step: (actual, expected) = (%+v, %+v)",
				actual, expected,
			)
		}
	})
}

func TestFinalDate(t *testing.T) {
	theory := func(when caps.FinalDate, then string) func(*testing.T) {
		return func(t *testing.T) {
			actual := string(try.To(json.Marshal(when)).OrFatal(t))
			if actual != then {
				t.Errorf(
					"unexpected json: (actual, expected) = (%s, %s)",
					actual, then,
				)
			}
		}
	}

	date := caldate.Date(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	t.Run(
		"it marshals a known date in ISO form",
		theory(caps.FinalDate{FinalDate: &date}, `{"final_date":"2025-01-31"}`),
	)
	t.Run(
		"it marshals no date as null",
		theory(caps.FinalDate{}, `{"final_date":null}`),
	)
}
