package mocks

import (
	"context"
	"errors"

	kdb "github.com/auditline/captrack/pkg/db"
)

type ItemInterface struct {
	Impl struct {
		List            func(context.Context, string) ([]kdb.Item, error)
		UpdateOperator  func(context.Context, string, int, kdb.OperatorUpdate) error
		UpdateInspector func(context.Context, string, int, kdb.InspectorUpdate) error
	}
	Calls struct {
		List           CallLog[struct{ ChecklistId string }]
		UpdateOperator CallLog[struct {
			ChecklistId string
			Number      int
			Update      kdb.OperatorUpdate
		}]
		UpdateInspector CallLog[struct {
			ChecklistId string
			Number      int
			Update      kdb.InspectorUpdate
		}]
	}
}

func NewItemInterface() *ItemInterface {
	return &ItemInterface{}
}

var _ kdb.ItemInterface = &ItemInterface{}

func (m *ItemInterface) List(ctx context.Context, checklistId string) ([]kdb.Item, error) {
	m.Calls.List = append(m.Calls.List, struct{ ChecklistId string }{
		ChecklistId: checklistId,
	})
	if m.Impl.List != nil {
		return m.Impl.List(ctx, checklistId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ItemInterface) UpdateOperator(ctx context.Context, checklistId string, number int, update kdb.OperatorUpdate) error {
	m.Calls.UpdateOperator = append(m.Calls.UpdateOperator, struct {
		ChecklistId string
		Number      int
		Update      kdb.OperatorUpdate
	}{
		ChecklistId: checklistId, Number: number, Update: update,
	})
	if m.Impl.UpdateOperator != nil {
		return m.Impl.UpdateOperator(ctx, checklistId, number, update)
	}
	panic(errors.New("it should not be called"))
}

func (m *ItemInterface) UpdateInspector(ctx context.Context, checklistId string, number int, update kdb.InspectorUpdate) error {
	m.Calls.UpdateInspector = append(m.Calls.UpdateInspector, struct {
		ChecklistId string
		Number      int
		Update      kdb.InspectorUpdate
	}{
		ChecklistId: checklistId, Number: number, Update: update,
	})
	if m.Impl.UpdateInspector != nil {
		return m.Impl.UpdateInspector(ctx, checklistId, number, update)
	}
	panic(errors.New("it should not be called"))
}
