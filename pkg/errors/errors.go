// Error wrapper which remembers where it was created.
//
//	wrapped := xe.Wrap(err)
//
// The message of `wrapped` carries filename, line and function name of the
// wrapping location, chained with "<-" per wrapping. Reading it bottom-up
// gives the path an error travelled through captrack.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

type CallerError struct {
	file     string
	line     int
	funcname string
	note     string
	err      error
}

func (e *CallerError) Error() string {
	if e.note == "" {
		return fmt.Sprintf(`@ %s "%s" l%d <- %s`, e.funcname, e.file, e.line, e.err.Error())
	}
	return fmt.Sprintf(`@ %s "%s" l%d (%s) <- %s`, e.funcname, e.file, e.line, e.note, e.err.Error())
}

func (e *CallerError) Unwrap() error {
	return e.err
}

func New(text string) error {
	return wrap("", errors.New(text), 1)
}

func Wrap(err error) error {
	return wrap("", err, 1)
}

func WrapWithNote(note string, err error) error {
	return wrap(note, err, 1)
}

func wrap(note string, err error, depth int) error {
	pc, file, line, ok := runtime.Caller(depth + 1)
	funcname := "(unknown func)"
	if !ok {
		file = "?"
		line = -1
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcname = fn.Name()
	}

	return &CallerError{
		funcname: funcname,
		file:     file,
		line:     line,
		note:     note,
		err:      err,
	}
}
