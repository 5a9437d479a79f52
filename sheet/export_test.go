package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/calcsheet/lang"
)

func TestFormatOptions_Format(t *testing.T) {
	tests := []struct {
		name  string
		opts  FormatOptions
		value lang.Value
		want  string
	}{
		{"absent", DefaultFormat, nil, ""},
		{"error", DefaultFormat, lang.Error, ""},
		{"integer", DefaultFormat, lang.Integer(7), "7"},
		{"fraction shown", DefaultFormat, lang.Fraction{Numerator: 1, Denominator: 4}, "1/4"},
		{"fraction widened", FormatOptions{}, lang.Fraction{Numerator: 1, Denominator: 4}, "0.25"},
		{"real", FormatOptions{}, lang.Real(2), "2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Format(tt.value))
		})
	}
}

func TestSnapshot(t *testing.T) {
	s := FromInputs([]string{"half=1/2", "half+", "", "nope"})
	ids := s.Rows()

	got := s.Snapshot(DefaultFormat)
	require.Len(t, got, 4)

	assert.Equal(t, RowResult{
		ID: ids[0].ID(), Index: 0, Input: "half=1/2",
		Result: "1/2", Kind: "fraction", Name: "half",
	}, got[0])

	assert.Equal(t, RowResult{
		ID: ids[1].ID(), Index: 1, Input: "half+",
		Errors: []lang.Diagnostic{
			{Message: "Expected expression", Position: lang.Span(5, lang.Unbounded)},
		},
	}, got[1])

	assert.Equal(t, RowResult{ID: ids[2].ID(), Index: 2}, got[2])

	assert.Equal(t, "", got[3].Result)
	assert.Equal(t, "error", got[3].Kind)
	assert.Len(t, got[3].Errors, 1)

	widened := s.Snapshot(FormatOptions{})
	assert.Equal(t, "0.5", widened[0].Result)
}

func TestWriteJSON(t *testing.T) {
	s := FromInputs([]string{"a=2", "a*a"})

	for _, indent := range []int{0, 2} {
		var buf bytes.Buffer
		require.NoError(t, s.WriteJSON(&buf, DefaultFormat, indent))

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
		require.Len(t, rows, 2)

		assert.Equal(t, "a*a", rows[1]["input"])
		assert.Equal(t, "4", rows[1]["result"])
		assert.Equal(t, "integer", rows[1]["kind"])
		assert.Equal(t, rowAt(t, s, 1).ID().String(), rows[1]["id"])
		assert.NotContains(t, rows[1], "errors")
	}
}

func TestWriteYAML(t *testing.T) {
	s := FromInputs([]string{"a=2", "a/3"})

	for _, indent := range []int{0, 2} {
		var buf bytes.Buffer
		require.NoError(t, s.WriteYAML(context.Background(), &buf, DefaultFormat, indent))

		var rows []map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rows), buf.String())
		require.Len(t, rows, 2)

		assert.Equal(t, "a", rows[0]["name"])
		assert.Equal(t, "2/3", rows[1]["result"])
		assert.Equal(t, "fraction", rows[1]["kind"])
	}
}

func TestWriteText(t *testing.T) {
	s := FromInputs([]string{"a=1/2", "a*3", "b"})

	var buf bytes.Buffer
	require.NoError(t, s.WriteText(&buf, DefaultFormat))

	assert.Equal(t, "a=1/2 │ 1/2\na*3   │ 3/2\nb     │\n", buf.String())

	buf.Reset()
	require.NoError(t, s.WriteText(&buf, FormatOptions{}))
	assert.Equal(t, "a=1/2 │ 0.5\na*3   │ 1.5\nb     │\n", buf.String())
}

func TestWriteAST(t *testing.T) {
	s := FromInputs([]string{"1+2", ""})

	var buf bytes.Buffer
	require.NoError(t, s.WriteAST(&buf, 2))

	assert.Equal(t,
		"# 0: 1+2\n"+
			"operation + @0..2\n"+
			"  integer 1 @0..0\n"+
			"  integer 2 @2..2\n"+
			"# 1: \n"+
			"<none>\n",
		buf.String())
}
