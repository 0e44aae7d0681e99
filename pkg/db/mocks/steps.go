package mocks

import (
	"context"
	"errors"

	kdb "github.com/auditline/captrack/pkg/db"
	"github.com/auditline/captrack/pkg/utils/caldate"
)

type StepInterface struct {
	Impl struct {
		Get       func(context.Context, string, int) ([]kdb.Step, error)
		Replace   func(context.Context, string, int, []kdb.StepSpec) (int, error)
		FinalDate func(context.Context, string, int) (*caldate.Date, error)
	}
	Calls struct {
		Get CallLog[struct {
			ChecklistId string
			ItemNumber  int
		}]
		Replace CallLog[struct {
			ChecklistId string
			ItemNumber  int
			Specs       []kdb.StepSpec
		}]
		FinalDate CallLog[struct {
			ChecklistId string
			ItemNumber  int
		}]
	}
}

func NewStepInterface() *StepInterface {
	return &StepInterface{}
}

var _ kdb.StepInterface = &StepInterface{}

func (m *StepInterface) Get(ctx context.Context, checklistId string, itemNumber int) ([]kdb.Step, error) {
	m.Calls.Get = append(m.Calls.Get, struct {
		ChecklistId string
		ItemNumber  int
	}{
		ChecklistId: checklistId, ItemNumber: itemNumber,
	})
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, checklistId, itemNumber)
	}
	panic(errors.New("it should not be called"))
}

func (m *StepInterface) Replace(ctx context.Context, checklistId string, itemNumber int, specs []kdb.StepSpec) (int, error) {
	m.Calls.Replace = append(m.Calls.Replace, struct {
		ChecklistId string
		ItemNumber  int
		Specs       []kdb.StepSpec
	}{
		ChecklistId: checklistId, ItemNumber: itemNumber, Specs: specs,
	})
	if m.Impl.Replace != nil {
		return m.Impl.Replace(ctx, checklistId, itemNumber, specs)
	}
	panic(errors.New("it should not be called"))
}

func (m *StepInterface) FinalDate(ctx context.Context, checklistId string, itemNumber int) (*caldate.Date, error) {
	m.Calls.FinalDate = append(m.Calls.FinalDate, struct {
		ChecklistId string
		ItemNumber  int
	}{
		ChecklistId: checklistId, ItemNumber: itemNumber,
	})
	if m.Impl.FinalDate != nil {
		return m.Impl.FinalDate(ctx, checklistId, itemNumber)
	}
	panic(errors.New("it should not be called"))
}
