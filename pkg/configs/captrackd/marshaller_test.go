package captrackd_test

import (
	"testing"

	kcc "github.com/auditline/captrack/pkg/configs/captrackd"
)

func TestLoadCaptrackConfig(t *testing.T) {

	t.Run("it can be created from a config file", func(t *testing.T) {
		result, err := kcc.LoadCaptrackConfig("./testdata/config.yaml")

		if err != nil {
			t.Errorf("failed to parse config.: %v", err)
		}
		expectedURI := "postgres://captrack-test-pgdb-svc:32555/captrack"
		if result.Cluster.DBURI != expectedURI {
			t.Errorf("unmatch dburi:%s, expected:%s", result.Cluster.DBURI, expectedURI)
		}
		if result.Port != 8081 {
			t.Errorf("unmatch port:%d, expected:%d", result.Port, 8081)
		}
		if result.LogLevel != "debug" {
			t.Errorf("unmatch loglevel:%s, expected:%s", result.LogLevel, "debug")
		}
		if result.Cluster.Pool.Min != 2 || result.Cluster.Pool.Max != 5 {
			t.Errorf("unmatch pool: %+v", result.Cluster.Pool)
		}
	})

	t.Run("it fills defaults for everything but the database", func(t *testing.T) {
		result, err := kcc.Unmarshal([]byte(`
cluster:
  dburi: postgres://localhost:5432/captrack
`))

		if err != nil {
			t.Fatalf("failed to parse config.: %v", err)
		}
		if result.Port != 8080 {
			t.Errorf("unmatch port:%d, expected:%d", result.Port, 8080)
		}
		if result.Cluster.Pool.Min != 1 || result.Cluster.Pool.Max != 10 {
			t.Errorf("unmatch pool: %+v", result.Cluster.Pool)
		}
	})

	t.Run("it rejects a config without a database", func(t *testing.T) {
		if _, err := kcc.Unmarshal([]byte(`port: 8080`)); err == nil {
			t.Error("no error is returned")
		}
	})
}
