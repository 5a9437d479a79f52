package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/ardnew/calcsheet/sheet"
)

func TestMain(m *testing.M) {
	color.NoColor = true

	os.Exit(m.Run())
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

// run returns a context whose commands read input and write to the returned
// buffer.
func run(input string) (context.Context, *bytes.Buffer) {
	var out bytes.Buffer

	return WithStreams(context.Background(), strings.NewReader(input), &out), &out
}

func TestWithSourceFiles_Empty(t *testing.T) {
	for _, sources := range [][]string{nil, {}} {
		if r := sourceFilesFrom(WithSourceFiles(context.Background(), sources)); r != nil {
			t.Errorf("WithSourceFiles(%v) stored %v, want nil", sources, r)
		}
	}

	if r := sourceFilesFrom(context.Background()); r != nil {
		t.Errorf("sourceFilesFrom(empty context) = %v, want nil", r)
	}
}

func TestWithSourceFiles_Concatenates(t *testing.T) {
	first := writeTemp(t, "first.calc", "a=1\n")
	second := writeTemp(t, "second.calc", "a+1\n")

	r := sourceFilesFrom(WithSourceFiles(context.Background(), []string{first, second}))
	if r == nil || r.IsZero() {
		t.Fatal("WithSourceFiles should return non-empty reader")
	}

	if r.Stdin() != nil {
		t.Error("Stdin() should be nil without \"-\"")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading from source files: %v", err)
	}

	if got, want := string(data), "a=1\na+1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWithSourceFiles_Deduplicates(t *testing.T) {
	path := writeTemp(t, "once.calc", "1\n")
	link := filepath.Join(t.TempDir(), "link.calc")

	if err := os.Symlink(path, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	sources := []string{path, link, path, filepath.Join(t.TempDir(), "missing.calc")}

	var buf bytes.Buffer

	r := sourceFilesFrom(WithSourceFiles(context.Background(), sources))
	if r == nil {
		t.Fatal("WithSourceFiles should return non-nil reader")
	}

	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "1\n" {
		t.Errorf("got %q, want a single copy", got)
	}
}

func TestWithSourceFiles_Stdin(t *testing.T) {
	r := sourceFilesFrom(WithSourceFiles(context.Background(), []string{"-", "-"}))
	if r == nil || r.IsZero() {
		t.Fatal("\"-\" should select stdin")
	}

	if r.Stdin() == nil {
		t.Error("Stdin() = nil, want os.Stdin")
	}
}

func TestFormatFrom(t *testing.T) {
	if got := formatFrom(context.Background()); got != sheet.DefaultFormat {
		t.Errorf("formatFrom() = %+v, want %+v", got, sheet.DefaultFormat)
	}

	opts := sheet.FormatOptions{ShowFractions: false}
	if got := formatFrom(WithFormat(context.Background(), opts)); got != opts {
		t.Errorf("formatFrom() = %+v, want %+v", got, opts)
	}
}

func TestLoadSheet_Precedence(t *testing.T) {
	path := writeTemp(t, "sheet.calc", "from=1\nfile\n")

	ctx, _ := run("from\nstdin\nstream\n")

	s, err := loadSheet(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := s.Inputs(), []string{"from", "stdin", "stream"}; !slices.Equal(got, want) {
		t.Errorf("stream Inputs() = %v, want %v", got, want)
	}

	ctx = WithSourceFiles(ctx, []string{path})

	s, err = loadSheet(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := s.Inputs(), []string{"from=1", "file"}; !slices.Equal(got, want) {
		t.Errorf("source Inputs() = %v, want %v", got, want)
	}

	s, err = loadSheet(ctx, []string{"args"})
	if err != nil {
		t.Fatal(err)
	}

	if got, want := s.Inputs(), []string{"args"}; !slices.Equal(got, want) {
		t.Errorf("args Inputs() = %v, want %v", got, want)
	}
}
