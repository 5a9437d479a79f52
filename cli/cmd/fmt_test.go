package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestFmtText(t *testing.T) {
	ctx, out := run("a=1\na+1\n")

	if err := (&Text{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	if got, want := out.String(), "a=1 │ 1\na+1 │ 2\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFmtJSON(t *testing.T) {
	for _, indent := range []int{0, 2} {
		ctx, out := run("rate=3/4\nrate*8\nb\n")

		if err := (&JSON{Indent: indent}).Run(ctx); err != nil {
			t.Fatal(err)
		}

		if indent == 0 && strings.Count(out.String(), "\n") != 1 {
			t.Errorf("compact output spans lines: %q", out.String())
		}

		var rows []struct {
			Input  string           `json:"input"`
			Result string           `json:"result"`
			Name   string           `json:"name"`
			Errors []map[string]any `json:"errors"`
		}

		if err := json.Unmarshal(out.Bytes(), &rows); err != nil {
			t.Fatalf("invalid JSON %q: %v", out.String(), err)
		}

		if len(rows) != 3 {
			t.Fatalf("got %d rows, want 3", len(rows))
		}

		if rows[0].Name != "rate" || rows[1].Result != "6" || len(rows[2].Errors) != 1 {
			t.Errorf("unexpected rows: %+v", rows)
		}
	}
}

func TestFmtYAML(t *testing.T) {
	ctx, out := run("x=1/3\nx*3\n")

	if err := (&YAML{Indent: 2}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	var rows []map[string]any
	if err := yaml.Unmarshal(out.Bytes(), &rows); err != nil {
		t.Fatalf("invalid YAML %q: %v", out.String(), err)
	}

	if len(rows) != 2 || rows[0]["result"] != "1/3" || rows[1]["result"] != "1" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestFmtAST(t *testing.T) {
	ctx, out := run("1+2\n")

	if err := (&AST{Indent: 2}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	want := "# 0: 1+2\noperation + @0..2\n  integer 1 @0..0\n  integer 2 @2..2\n"
	if got := out.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestFmt_WriteErrorIsEncodeError(t *testing.T) {
	ctx := WithStreams(t.Context(), strings.NewReader("1\n"), failWriter{})

	if err := (&Text{}).Run(ctx); !errors.Is(err, ErrEncode) {
		t.Errorf("Run() error = %v, want %v", err, ErrEncode)
	}
}
