package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/auditline/captrack/cmd/captrackd/handlers"
	kdb "github.com/auditline/captrack/pkg/db"
	"github.com/auditline/captrack/pkg/utils/echoutil"
)

func BuildServer(db kdb.CapDatabase, loglevel string) *echo.Echo {

	e := echo.New()

	echoutil.SetLevel(e, loglevel)

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}

	e.Pre(middleware.RemoveTrailingSlash())

	// logging for server-side latency.
	e.Use(echoutil.LogHandlerFunc)

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"*"},
		AllowHeaders: []string{"*"},
	}))

	e.GET("/health", handlers.HealthHandler())

	{
		checklistId := "checklist_id"
		number := "number"

		e.GET(
			"/checklists/:checklist_id/items",
			handlers.ListItemsHandler(db.Items(), checklistId),
		)
		e.POST(
			"/items/:checklist_id/:number/operator",
			handlers.UpdateOperatorHandler(db.Items(), checklistId, number),
		)
		e.POST(
			"/items/:checklist_id/:number/inspector",
			handlers.UpdateInspectorHandler(db.Items(), checklistId, number),
		)
	}

	{
		checklistId := "checklist_id"
		itemNumber := "item_number"

		e.GET(
			"/caps/:checklist_id/:item_number",
			handlers.GetCapHandler(db.Caps(), checklistId, itemNumber),
		)
		e.POST(
			"/caps/:checklist_id/:item_number",
			handlers.UpsertCapHandler(db.Caps(), checklistId, itemNumber),
		)

		e.GET(
			"/caps/:checklist_id/:item_number/steps",
			handlers.GetStepsHandler(db.Steps(), checklistId, itemNumber),
		)
		e.PUT(
			"/caps/:checklist_id/:item_number/steps",
			handlers.PutStepsHandler(db.Steps(), checklistId, itemNumber),
		)

		e.GET(
			"/caps/:checklist_id/:item_number/final-date",
			handlers.GetFinalDateHandler(db.Steps(), checklistId, itemNumber),
		)
	}

	return e
}
