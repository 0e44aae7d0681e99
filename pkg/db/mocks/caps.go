package mocks

import (
	"context"
	"errors"

	kdb "github.com/auditline/captrack/pkg/db"
)

type CapInterface struct {
	Impl struct {
		Get    func(context.Context, string, int) (*kdb.Cap, error)
		Upsert func(context.Context, string, int, kdb.CapSpec) error
	}
	Calls struct {
		Get CallLog[struct {
			ChecklistId string
			ItemNumber  int
		}]
		Upsert CallLog[struct {
			ChecklistId string
			ItemNumber  int
			Spec        kdb.CapSpec
		}]
	}
}

func NewCapInterface() *CapInterface {
	return &CapInterface{}
}

var _ kdb.CapInterface = &CapInterface{}

func (m *CapInterface) Get(ctx context.Context, checklistId string, itemNumber int) (*kdb.Cap, error) {
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

func (m *CapInterface) Upsert(ctx context.Context, checklistId string, itemNumber int, spec kdb.CapSpec) error {
	m.Calls.Upsert = append(m.Calls.Upsert, struct {
		ChecklistId string
		ItemNumber  int
		Spec        kdb.CapSpec
	}{
		ChecklistId: checklistId, ItemNumber: itemNumber, Spec: spec,
	})
	if m.Impl.Upsert != nil {
		return m.Impl.Upsert(ctx, checklistId, itemNumber, spec)
	}
	panic(errors.New("it should not be called"))
}
