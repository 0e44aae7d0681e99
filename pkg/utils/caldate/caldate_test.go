package caldate_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/auditline/captrack/pkg/utils/caldate"
	"github.com/auditline/captrack/pkg/utils/pointer"
)

func TestParse(t *testing.T) {
	t.Run("it parses day-first dotted dates", func(t *testing.T) {
		testee, err := caldate.Parse("01.03.2024")
		if err != nil {
			t.Fatal(err)
		}

		expected := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		if !testee.Time().Equal(expected) {
			t.Errorf(
				"unmatch: (actual, expected) = (%+v, %+v); day and month are swapped?",
				testee.Time(), expected,
			)
		}
	})

	t.Run("it should fail to parse when passed wrong format", func(t *testing.T) {
		for _, s := range []string{
			"2024-03-01", "01/03/2024", "not-a-date", "",
		} {
			if _, err := caldate.Parse(s); err == nil {
				t.Errorf("no error for %q, unexpectedly", s)
			}
		}
	})

	t.Run("it should fail to parse impossible dates", func(t *testing.T) {
		if _, err := caldate.Parse("31.02.2024"); err == nil {
			t.Error("no error for 31.02.2024, unexpectedly")
		}
	})
}

func TestParseOrNil(t *testing.T) {
	type when struct {
		arg *string
	}
	type then struct {
		expected *caldate.Date
	}

	theory := func(when when, then then) func(*testing.T) {
		return func(t *testing.T) {
			actual := caldate.ParseOrNil(when.arg)
			if !actual.Equal(then.expected) {
				t.Errorf(
					"unmatch: (actual, expected) = (%+v, %+v)",
					actual, then.expected,
				)
			}
		}
	}

	date := func(y int, m time.Month, d int) *caldate.Date {
		return pointer.Ref(caldate.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)))
	}

	t.Run("it reads a well-formed date", theory(
		when{arg: pointer.Ref("05.01.2024")},
		then{expected: date(2024, 1, 5)},
	))
	t.Run("it yields no date for nil", theory(
		when{arg: nil},
		then{expected: nil},
	))
	t.Run("it yields no date for an impossible date", theory(
		when{arg: pointer.Ref("31.02.2024")},
		then{expected: nil},
	))
	t.Run("it yields no date for garbage", theory(
		when{arg: pointer.Ref("not-a-date")},
		then{expected: nil},
	))
}

func TestDateJSON(t *testing.T) {
	t.Run("it can be marshalled into json as ISO full-date", func(t *testing.T) {
		testee, err := caldate.Parse("20.01.2024")
		if err != nil {
			t.Fatal(err)
		}

		actual, err := json.Marshal(testee)
		if err != nil {
			t.Fatal(err)
		}
		expected := `"2024-01-20"`

		if string(actual) != expected {
			t.Errorf("unmatch: json marshall: (actual, expected) = (%s, %s)", actual, expected)
		}
	})

	t.Run("it can be unmarshalled from both forms", func(t *testing.T) {
		for _, s := range []string{"2024-01-20", "20.01.2024"} {
			var actual caldate.Date
			if err := json.Unmarshal([]byte(fmt.Sprintf(`"%s"`, s)), &actual); err != nil {
				t.Fatal(err)
			}

			expected := caldate.Date(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
			if !actual.Equal(&expected) {
				t.Errorf("unmatch: json unmarshall %q: (actual, expected) = (%s, %s)", s, actual, expected)
			}
		}
	})

	t.Run("it does nothing when json.Unmarshal is passed null", func(t *testing.T) {
		expected := caldate.Date(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
		actual := caldate.Date(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
		if err := json.Unmarshal([]byte("null"), &actual); err != nil {
			t.Fatal(err)
		}

		if !actual.Equal(&expected) {
			t.Errorf("updated by unmarshalling null, unexpectedly: %s", actual)
		}
	})

	t.Run("it rejects garbage", func(t *testing.T) {
		var actual caldate.Date
		if err := json.Unmarshal([]byte(`"not-a-date"`), &actual); err == nil {
			t.Error("no error unexpectedly")
		}
	})
}
