package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	apicaps "github.com/auditline/captrack/pkg/api/types/caps"
	apierr "github.com/auditline/captrack/pkg/api/types/errors"
	kdb "github.com/auditline/captrack/pkg/db"
	"github.com/auditline/captrack/pkg/utils/caldate"
)

func GetCapHandler(dbCap kdb.CapInterface, checklistIdParam string, itemNumberParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		checklistId := c.Param(checklistIdParam)
		itemNumber, err := intParam(c, itemNumberParam)
		if err != nil {
			return err
		}

		found, err := dbCap.Get(ctx, checklistId, itemNumber)
		if err != nil {
			return apierr.InternalServerError(err)
		}
		if found == nil {
			// an item without a plan yields an empty object, not an error
			return c.JSON(http.StatusOK, struct{}{})
		}

		return c.JSON(http.StatusOK, apicaps.ComposeDetail(*found))
	}
}

func UpsertCapHandler(dbCap kdb.CapInterface, checklistIdParam string, itemNumberParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		checklistId := c.Param(checklistIdParam)
		itemNumber, err := intParam(c, itemNumberParam)
		if err != nil {
			return err
		}

		// read request body
		req := apicaps.Spec{}
		decoder := json.NewDecoder(c.Request().Body)
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(&req); err != nil {
			return apierr.NewErrorMessage(
				http.StatusBadRequest,
				"format error",
				apierr.WithAdvice(err.Error()),
				apierr.WithError(err),
			)
		}

		spec := kdb.CapSpec{
			Description: req.Description,
			Owner:       req.Owner,
			TargetDate:  caldate.ParseOrNil(req.TargetDate),
		}

		if err := dbCap.Upsert(ctx, checklistId, itemNumber, spec); err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apicaps.Ack{OK: true})
	}
}
