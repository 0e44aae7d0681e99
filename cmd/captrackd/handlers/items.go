package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/auditline/captrack/pkg/api/types/errors"
	apiitems "github.com/auditline/captrack/pkg/api/types/items"
	kdb "github.com/auditline/captrack/pkg/db"
	"github.com/auditline/captrack/pkg/utils"
)

func ListItemsHandler(dbItem kdb.ItemInterface, checklistIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		checklistId := c.Param(checklistIdParam)

		items, err := dbItem.List(ctx, checklistId)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, utils.Map(items, apiitems.ComposeDetail))
	}
}

func UpdateOperatorHandler(dbItem kdb.ItemInterface, checklistIdParam string, numberParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		checklistId := c.Param(checklistIdParam)
		number, err := intParam(c, numberParam)
		if err != nil {
			return err
		}

		// read request body
		change := apiitems.OperatorChange{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&change); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}

		update := kdb.OperatorUpdate{
			Status:   change.Status,
			Feedback: change.Feedback,
			Evidence: change.EvidencePath,
		}

		if err := dbItem.UpdateOperator(ctx, checklistId, number, update); errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound,
				fmt.Sprintf("checklist item %s#%d is missing", checklistId, number),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiitems.Ack{OK: true})
	}
}

func UpdateInspectorHandler(dbItem kdb.ItemInterface, checklistIdParam string, numberParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		checklistId := c.Param(checklistIdParam)
		number, err := intParam(c, numberParam)
		if err != nil {
			return err
		}

		// read request body
		change := apiitems.InspectorChange{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&change); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}

		// both fields are written as they came, absent ones clearing
		// the stored values.
		update := kdb.InspectorUpdate{
			Acceptance: change.Acceptance,
			Feedback:   change.Feedback,
		}

		if err := dbItem.UpdateInspector(ctx, checklistId, number, update); errors.Is(err, kdb.ErrMissing) {
			return apierr.NewErrorMessage(
				http.StatusNotFound,
				fmt.Sprintf("checklist item %s#%d is missing", checklistId, number),
			)
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiitems.Ack{OK: true})
	}
}
