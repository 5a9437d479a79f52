package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ardnew/calcsheet/lang"
)

func TestWriteDiagnostic(t *testing.T) {
	tests := []struct {
		name  string
		line  int
		input string
		diag  lang.Diagnostic
		want  string
	}{
		{
			name:  "span",
			line:  1,
			input: "rate*2",
			diag:  lang.Diagnostic{Message: "Name is not defined", Position: lang.Span(0, 3)},
			want:  "1:1: Name is not defined\n    rate*2\n    ^^^^\n",
		},
		{
			name:  "past_end",
			line:  3,
			input: "half+",
			diag:  lang.Diagnostic{Message: "Expected expression", Position: lang.Span(5, lang.Unbounded)},
			want:  "3:6: Expected expression\n    half+\n         ^\n",
		},
		{
			name:  "empty_gap",
			line:  2,
			input: "1 2",
			diag:  lang.Diagnostic{Message: "Expected an operator", Position: lang.Span(1, 0)},
			want:  "2:2: Expected an operator\n    1 2\n     ^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			if err := writeDiagnostic(&buf, tt.line, tt.input, tt.diag); err != nil {
				t.Fatal(err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("writeDiagnostic() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestCheckRun(t *testing.T) {
	ctx, out := run("a=1\nb+1\na*2\n")

	err := (&Check{}).Run(ctx)
	if !errors.Is(err, ErrDiagnostics) {
		t.Fatalf("Run() error = %v, want %v", err, ErrDiagnostics)
	}

	if got, want := out.String(), "2:1: Name is not defined\n    b+1\n    ^\n"; got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestCheckRun_Quiet(t *testing.T) {
	ctx, out := run("b\n")

	if err := (&Check{Quiet: true}).Run(ctx); !errors.Is(err, ErrDiagnostics) {
		t.Errorf("Run() error = %v, want %v", err, ErrDiagnostics)
	}

	if out.Len() != 0 {
		t.Errorf("quiet output = %q, want none", out.String())
	}
}

func TestCheckRun_Clean(t *testing.T) {
	ctx, out := run("a=1\na/0\n\n")

	if err := (&Check{}).Run(ctx); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}

	if out.Len() != 0 {
		t.Errorf("output = %q, want none", out.String())
	}
}
