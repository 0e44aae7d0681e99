package handlers_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/auditline/captrack/cmd/captrackd/handlers"
	httptestutil "github.com/auditline/captrack/internal/testutils/http"
)

func TestHealthHandler(t *testing.T) {
	t.Run("it responds ok with the current time", func(t *testing.T) {
		e := echo.New()
		c, respRec := httptestutil.Get(e, "/health")

		before := time.Now()
		testee := handlers.HealthHandler()
		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		after := time.Now()

		expectedStatusCode := 200
		if statusCode := respRec.Result().StatusCode; statusCode != expectedStatusCode {
			t.Errorf("status code %d != %d", statusCode, expectedStatusCode)
		}
		expectedContentType := "application/json"
		contentType := strings.Split(respRec.Result().Header.Get("Content-Type"), ";")[0]
		if contentType != expectedContentType {
			t.Errorf("Content-Type: %s != %s", contentType, expectedContentType)
		}

		actual := handlers.Health{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatalf("response is not illegal. error = %v", err)
		}

		if !actual.OK {
			t.Error("ok should be true")
		}

		// the wire format keeps millisecond precision
		if at := actual.Time.Time(); at.Before(before.Truncate(time.Millisecond)) || at.After(after) {
			t.Errorf("time is out of range: %s not in [%s, %s]", at, before, after)
		}
	})
}
