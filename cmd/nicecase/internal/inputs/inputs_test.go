package inputs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestSource_ArgsAndFiles(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a", "b", "c", "d"} {
		files = append(files, writeFile(t, dir, name+".txt", name+"_one\n"+name+"_two\n"))
	}

	src := Source{
		Args:  []string{"fooBar"},
		Files: files,
		Jobs:  2,
		Stdin: strings.NewReader("ignored\n"),
	}
	got, err := src.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{"fooBar", "a_one", "a_two", "b_one", "b_two", "c_one", "c_two", "d_one", "d_two"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSource_MissingFile(t *testing.T) {
	src := Source{Files: []string{filepath.Join(t.TempDir(), "missing.txt")}}
	if _, err := src.Read(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSource_Stdin(t *testing.T) {
	src := Source{Stdin: strings.NewReader("first name\nuser_id\n\nSCREEN_NAME")}
	got, err := src.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{"first name", "user_id", "", "SCREEN_NAME"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSource_TerminalStdin(t *testing.T) {
	orig := isTerminal
	isTerminal = func(io.Reader) bool { return true }
	defer func() { isTerminal = orig }()

	src := Source{Stdin: strings.NewReader("never read\n")}
	if _, err := src.Read(context.Background()); !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
	if _, err := (Source{}).Read(context.Background()); !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput without stdin, got %v", err)
	}
}

func TestSource_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := Source{Files: []string{writeFile(t, t.TempDir(), "a.txt", "a\n")}}
	if _, err := src.Read(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSource_LongLines(t *testing.T) {
	long := strings.Repeat("fooBar", 200*1024/6)
	path := writeFile(t, t.TempDir(), "long.txt", long+"\nshort\n")
	got, err := Source{Files: []string{path}}.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 || got[0] != long || got[1] != "short" {
		t.Errorf("expected the long line and %q, got %d lines", "short", len(got))
	}

	tooLong := strings.Repeat("x", MaxLineSize+1)
	if _, err := (Source{Stdin: strings.NewReader(tooLong)}).Read(context.Background()); err == nil {
		t.Error("expected error for a line above MaxLineSize")
	}
}
