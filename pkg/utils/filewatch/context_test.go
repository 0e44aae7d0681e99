package filewatch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/auditline/captrack/pkg/utils/filewatch"
)

func TestUntilModifyContext(t *testing.T) {
	theory := func(watchTarget func(dir, file string) string, mutate func(t *testing.T, dir, file string)) func(*testing.T) {
		return func(t *testing.T) {
			dir := t.TempDir()
			file := filepath.Join(dir, "file")
			if f, err := os.Create(file); err != nil {
				t.Fatal(err)
			} else {
				f.Close()
			}

			ctx, cancel, err := filewatch.UntilModifyContext(
				context.Background(), watchTarget(dir, file),
			)
			if err != nil {
				t.Fatal(err)
			}
			defer cancel()

			if err := ctx.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			mutate(t, dir, file)

			deadlineCh := make(<-chan time.Time)
			if dl, ok := t.Deadline(); ok {
				deadlineCh = time.After(time.Until(dl) - 1*time.Second)
			}
			select {
			case <-ctx.Done():
				return
			case <-deadlineCh:
			}
			t.Fatalf("expected cancel, but context is still alive")
		}
	}

	watchDir := func(dir, _ string) string { return dir }
	watchFile := func(_, file string) string { return file }

	t.Run("when a file is created in a watched directory, it cancels context", theory(
		watchDir,
		func(t *testing.T, dir, _ string) {
			another := filepath.Join(dir, "another")
			if f, err := os.Create(another); err != nil {
				t.Fatal(err)
			} else {
				f.Close()
			}
		},
	))

	t.Run("when a file is written in a watched directory, it cancels context", theory(
		watchDir,
		func(t *testing.T, _, file string) {
			if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
				t.Fatal(err)
			}
		},
	))

	t.Run("when the watched file is written, it cancels context", theory(
		watchFile,
		func(t *testing.T, _, file string) {
			if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
				t.Fatal(err)
			}
		},
	))

	t.Run("when a file in the watched directory is deleted, it cancels context", theory(
		watchDir,
		func(t *testing.T, _, file string) {
			if err := os.Remove(file); err != nil {
				t.Fatal(err)
			}
		},
	))

	t.Run("when the watched file is deleted, it cancels context", theory(
		watchFile,
		func(t *testing.T, _, file string) {
			if err := os.Remove(file); err != nil {
				t.Fatal(err)
			}
		},
	))

	t.Run("when a file in the watched directory is renamed, it cancels context", theory(
		watchDir,
		func(t *testing.T, dir, file string) {
			if err := os.Rename(file, filepath.Join(dir, "renamed")); err != nil {
				t.Fatal(err)
			}
		},
	))

	t.Run("when the watched file mode is changed, it cancels context", theory(
		watchFile,
		func(t *testing.T, _, file string) {
			// surely change mode despite of umask.
			if err := os.Chmod(file, os.FileMode(0o700)); err != nil {
				t.Fatal(err)
			}
			if err := os.Chmod(file, os.FileMode(0o644)); err != nil {
				t.Fatal(err)
			}
		},
	))
}
