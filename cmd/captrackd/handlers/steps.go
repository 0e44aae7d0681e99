package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	apicaps "github.com/auditline/captrack/pkg/api/types/caps"
	apierr "github.com/auditline/captrack/pkg/api/types/errors"
	kdb "github.com/auditline/captrack/pkg/db"
	"github.com/auditline/captrack/pkg/utils"
	"github.com/auditline/captrack/pkg/utils/caldate"
)

func GetStepsHandler(dbStep kdb.StepInterface, checklistIdParam string, itemNumberParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		checklistId := c.Param(checklistIdParam)
		itemNumber, err := intParam(c, itemNumberParam)
		if err != nil {
			return err
		}

		steps, err := dbStep.Get(ctx, checklistId, itemNumber)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, utils.Map(steps, apicaps.ComposeStep))
	}
}

func PutStepsHandler(dbStep kdb.StepInterface, checklistIdParam string, itemNumberParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		checklistId := c.Param(checklistIdParam)
		itemNumber, err := intParam(c, itemNumberParam)
		if err != nil {
			return err
		}

		// read request body
		req := apicaps.StepsSpec{}
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

		// step_no in the payload is ignored; position in the list is
		// what counts.
		specs := utils.Map(req.Steps, func(s apicaps.StepSpec) kdb.StepSpec {
			return kdb.StepSpec{
				StepText:   s.StepText,
				TargetDate: caldate.ParseOrNil(s.TargetDate),
			}
		})

		count, err := dbStep.Replace(ctx, checklistId, itemNumber, specs)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apicaps.PutResult{OK: true, Count: count})
	}
}

func GetFinalDateHandler(dbStep kdb.StepInterface, checklistIdParam string, itemNumberParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		checklistId := c.Param(checklistIdParam)
		itemNumber, err := intParam(c, itemNumberParam)
		if err != nil {
			return err
		}

		finalDate, err := dbStep.FinalDate(ctx, checklistId, itemNumber)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apicaps.FinalDate{FinalDate: finalDate})
	}
}
