package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Integer(42), "42"},
		{Integer(-7), "-7"},
		{Fraction{3, 2}, "3/2"},
		{Fraction{-1, 6}, "-1/6"},
		{Real(1.5), "1.5"},
		{Real(3), "3.0"},
		{Real(0.1), "0.1"},
		{Real(-2.25), "-2.25"},
		{Real(1e-7), "0.0000001"},
		{Error, "!ERROR!"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
			assert.Equal(t, tt.want, fmt.Sprint(tt.value))
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name      string
		value     Value
		flags     string
		width     int
		precision int
		want      string
	}{
		{"integer width", Integer(42), "", 5, -1, "   42"},
		{"integer zero pad", Integer(42), "0", 5, -1, "00042"},
		{"integer left justify", Integer(42), "-", 5, -1, "42   "},
		{"integer plus", Integer(42), "+", -1, -1, "+42"},
		{"fraction width", Fraction{3, 2}, "", 3, -1, "  3/  2"},
		{"fraction plain", Fraction{-3, 2}, "", -1, -1, "-3/2"},
		{"real precision", Real(1.5), "", 6, 2, "  1.50"},
		{"real zero pad", Real(1.5), "0", 6, 2, "001.50"},
		{"real negative zero pad", Real(-1.5), "0", 7, 2, "-001.50"},
		{"real plus", Real(2), "+", -1, -1, "+2.0"},
		{"real left justify", Real(0.5), "-", 5, -1, "0.5  "},
		{"real rounding", Real(1.0 / 3), "", -1, 3, "0.333"},
		{"error ignores spec", Error, "0", 10, 2, "!ERROR!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.value, tt.flags, tt.width, tt.precision))
		})
	}
}

func TestValue_FormatVerbs(t *testing.T) {
	assert.Equal(t, "3.00", fmt.Sprintf("%.2f", Integer(3)))
	assert.Equal(t, "ff", fmt.Sprintf("%x", Integer(255)))
	assert.Equal(t, "0.25", fmt.Sprintf("%.2f", Fraction{1, 4}))
	assert.Equal(t, "1.5e+00", fmt.Sprintf("%.1e", Real(1.5)))
	assert.Equal(t, "7/8", fmt.Sprintf("%d", Fraction{7, 8}))
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, input := range []string{"42", "3/2", "1.5", "0.25", "1/6"} {
		t.Run(input, func(t *testing.T) {
			v, ok := Calculate(input, nil).Result()
			require.True(t, ok)
			assert.Equal(t, input, Format(v, "", -1, -1))
		})
	}
}

func TestFormatTree(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, FormatTree(&buf, Parse("x = 1 + 2*y").Expression, 2))

	want := strings.Join([]string{
		"assign x @0..10",
		"  operation + @4..10",
		"    integer 1 @4..4",
		"    operation * @8..10",
		"      integer 2 @8..8",
		"      name y @10..10",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, FormatTree(&buf, nil, 2))
	assert.Equal(t, "<none>\n", buf.String())
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, FormatJSON(context.Background(), &buf, Parse("a*3/2").Expression, 0))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "/", got["operator"])
	assert.Equal(t, map[string]any{"start": 0.0, "end": 4.0}, got["position"])

	left, ok := got["left"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "*", left["operator"])
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, FormatYAML(context.Background(), &buf, Parse("n = 1.5").Expression, 2))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))

	value, ok := got["value"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "real", value["kind"])
	assert.InDelta(t, 1.5, value["literal"], 0)
}

func TestToNative(t *testing.T) {
	assert.Equal(t, int64(3), ToNative(Integer(3)))
	assert.Equal(t, "1/3", ToNative(Fraction{1, 3}))
	assert.Equal(t, 0.5, ToNative(Real(0.5)))
	assert.Nil(t, ToNative(Error))
	assert.Nil(t, ToMap(nil))
}

func TestParseResult_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Parse("1+"))
	require.NoError(t, err)

	var got struct {
		Expression map[string]any `json:"expression"`
		Errors     []Diagnostic   `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Nil(t, got.Expression)
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "Expected expression", got.Errors[0].Message)
}
