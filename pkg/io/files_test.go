package io

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestCreateAll(t *testing.T) {

	t.Run("it creates a file in directory", func(t *testing.T) {
		defaultUmask := syscall.Umask(0)
		defer syscall.Umask(defaultUmask)

		root := t.TempDir()

		f, err := CreateAll(filepath.Join(root, "foo", "bar", "targetFile"), 0700, 0707)
		if err != nil {
			t.Fatal("fail to create file.", err)
		}
		f.Close()

		fooStat, err := os.Stat(filepath.Join(root, "foo"))
		if err != nil || !fooStat.IsDir() {
			t.Fatal("cannot create directory (stat, err):", fooStat, err)
		}
		if fooStat.Mode().Perm() != 0707 {
			t.Fatal("directory mod is wrong. (actual, expected): ", fooStat.Mode(), fs.FileMode(0707))
		}

		barStat, err := os.Stat(filepath.Join(root, "foo", "bar"))
		if err != nil || !barStat.IsDir() {
			t.Fatal("cannot create directory (stat, err):", barStat, err)
		}
		if barStat.Mode().Perm() != 0707 {
			t.Fatal("directory mod is wrong. (actual, expected): ", barStat.Mode(), fs.FileMode(0707))
		}

		fStat, err := os.Stat(filepath.Join(root, "foo", "bar", "targetFile"))
		if err != nil || fStat.IsDir() {
			t.Fatal("cannot create targetFile (stat, err):", fStat, err)
		}
		if fStat.Mode().Perm() != 0700 {
			t.Fatal("target file mod is wrong. (actual, expected): ", fStat.Mode(), fs.FileMode(0700))
		}
	})

	t.Run("it creates a file directly", func(t *testing.T) {
		defaultUmask := syscall.Umask(0)
		defer syscall.Umask(defaultUmask)

		root := t.TempDir()

		f, err := CreateAll(filepath.Join(root, "targetFile"), 0777, 0700)
		if err != nil {
			t.Fatal("fail to create file.", err)
		}
		f.Close()

		fStat, err := os.Stat(filepath.Join(root, "targetFile"))
		if err != nil || fStat.IsDir() || !fStat.Mode().IsRegular() {
			t.Fatal("cannot create targetFile (stat, err):", fStat, err)
		}
		if fStat.Mode().Perm() != 0777 {
			t.Fatal("target file mod is wrong. (actual, expected): ", fStat.Mode(), fs.FileMode(0777))
		}
	})
}

func TestDirCopy(t *testing.T) {

	t.Run("it copies a directory tree", func(t *testing.T) {
		src := t.TempDir()
		dest := filepath.Join(t.TempDir(), "copied")

		files := map[string]string{
			"1/00_first.sql":  "create table a (x integer);",
			"1/01_second.sql": "create table b (y integer);",
			"2/00_alter.sql":  "alter table a add column z integer;",
		}
		for name, content := range files {
			f, err := CreateAll(filepath.Join(src, name), 0644, 0755)
			if err != nil {
				t.Fatal("fail to arrange files.", err)
			}
			if _, err := f.WriteString(content); err != nil {
				t.Fatal("fail to arrange files.", err)
			}
			f.Close()
		}

		if err := DirCopy(src, dest); err != nil {
			t.Fatal(err)
		}

		for name, content := range files {
			got, err := os.ReadFile(filepath.Join(dest, name))
			if err != nil {
				t.Fatal("copied file is missing:", name, err)
			}
			if string(got) != content {
				t.Errorf(
					"copied content does not match (%s). (actual, expected) = (%s, %s)",
					name, string(got), content,
				)
			}
		}
	})

	t.Run("it relays an error for a missing source", func(t *testing.T) {
		dest := t.TempDir()

		if err := DirCopy(filepath.Join(dest, "no-such-dir"), dest); err == nil {
			t.Error("expected error, but got nil")
		}
	})
}
